package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/centralbjl/directory/pkg/models"
	"github.com/centralbjl/directory/pkg/repository"
)

const foodColumns = `id, user_id, status, name, category, description, address, phone, whatsapp, delivery, opening_hours, cover_image, created, updated`

func (r *SQLiteRepo) CreateFood(ctx context.Context, f *models.Food) error {
	if f == nil {
		return fmt.Errorf("food is nil")
	}

	prepareMeta(&f.ListingMeta)
	delivery := 0
	if f.Delivery {
		delivery = 1
	}
	_, err := r.conn.Exec(ctx, `INSERT INTO foods (`+foodColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		f.ID, f.UserID, string(f.Status), f.Name, f.Category, f.Description, f.Address, f.Phone, f.Whatsapp, delivery, f.OpeningHours, f.CoverImage, f.Created, f.Updated)
	return err
}

func (r *SQLiteRepo) GetFood(ctx context.Context, id string) (*models.Food, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+foodColumns+` FROM foods WHERE id = ?`, id)
	f, err := scanFood(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (r *SQLiteRepo) ListFoods(ctx context.Context, q repository.ListingQuery) ([]models.Food, error) {
	var conds []string
	var args []any
	if q.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, string(q.Status))
	}
	if q.UserID != "" {
		conds = append(conds, "user_id = ?")
		args = append(args, q.UserID)
	}
	if q.Category != "" {
		conds = append(conds, "category = ?")
		args = append(args, q.Category)
	}

	query := `SELECT ` + foodColumns + ` FROM foods`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY created DESC`

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Food
	for rows.Next() {
		f, err := scanFood(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *f)
	}
	return out, rows.Err()
}

func scanFood(scan func(...any) error) (*models.Food, error) {
	var f models.Food
	var status string
	var delivery int
	if err := scan(&f.ID, &f.UserID, &status, &f.Name, &f.Category, &f.Description, &f.Address, &f.Phone, &f.Whatsapp, &delivery, &f.OpeningHours, &f.CoverImage, &f.Created, &f.Updated); err != nil {
		return nil, err
	}
	f.Status = models.Status(status)
	f.Delivery = delivery != 0
	return &f, nil
}
