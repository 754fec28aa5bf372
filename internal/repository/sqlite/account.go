package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/centralbjl/directory/pkg/models"
)

func (r *SQLiteRepo) CreateAccount(ctx context.Context, a *models.Account) error {
	if a == nil {
		return fmt.Errorf("account is nil")
	}

	confirmed := 0
	if a.Confirmed {
		confirmed = 1
	}
	_, err := r.conn.Exec(ctx, `INSERT INTO accounts (id, email, password_hash, confirmed, created) VALUES (?, ?, ?, ?, ?)`,
		a.ID, a.Email, a.PasswordHash, confirmed, now())
	if isUniqueViolation(err) {
		return fmt.Errorf("account %s: %w", a.Email, models.ErrDuplicate)
	}
	return err
}

func (r *SQLiteRepo) GetAccountByID(ctx context.Context, id string) (*models.Account, error) {
	return r.scanAccount(r.conn.QueryRow(ctx, `SELECT id, email, password_hash, confirmed, created FROM accounts WHERE id = ?`, id))
}

func (r *SQLiteRepo) GetAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	return r.scanAccount(r.conn.QueryRow(ctx, `SELECT id, email, password_hash, confirmed, created FROM accounts WHERE email = ?`, email))
}

func (r *SQLiteRepo) ConfirmAccount(ctx context.Context, id string) error {
	res, err := r.conn.Exec(ctx, `UPDATE accounts SET confirmed = 1 WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("account %s: %w", id, models.ErrNotFound)
	}
	return nil
}

func (r *SQLiteRepo) scanAccount(row *sql.Row) (*models.Account, error) {
	var a models.Account
	var confirmed int
	if err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &confirmed, &a.Created); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	a.Confirmed = confirmed != 0
	return &a, nil
}
