package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/centralbjl/directory/pkg/models"
)

func (r *SQLiteRepo) CreateProfile(ctx context.Context, p *models.Profile) error {
	if p == nil {
		return fmt.Errorf("profile is nil")
	}

	created := p.Created
	if created == 0 {
		created = now()
	}
	_, err := r.conn.Exec(ctx, `INSERT INTO profiles (id, name, role, created) VALUES (?, ?, ?, ?)`,
		p.ID, p.Name, string(p.Role), created)
	if isUniqueViolation(err) {
		return fmt.Errorf("profile %s: %w", p.ID, models.ErrDuplicate)
	}
	return err
}

func (r *SQLiteRepo) GetProfile(ctx context.Context, id string) (*models.Profile, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, name, role, created FROM profiles WHERE id = ?`, id)
	var p models.Profile
	var role string
	if err := row.Scan(&p.ID, &p.Name, &role, &p.Created); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	p.Role = models.Role(role)
	return &p, nil
}

func (r *SQLiteRepo) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	rows, err := r.conn.Query(ctx, `SELECT id, name, role, created FROM profiles ORDER BY created DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Profile
	for rows.Next() {
		var p models.Profile
		var role string
		if err := rows.Scan(&p.ID, &p.Name, &role, &p.Created); err != nil {
			return nil, err
		}
		p.Role = models.Role(role)
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *SQLiteRepo) SetRole(ctx context.Context, id string, role models.Role) error {
	res, err := r.conn.Exec(ctx, `UPDATE profiles SET role = ? WHERE id = ?`, string(role), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("profile %s: %w", id, models.ErrNotFound)
	}
	return nil
}
