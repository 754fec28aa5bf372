package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/centralbjl/directory/pkg/models"
	"github.com/centralbjl/directory/pkg/repository"
)

const companyColumns = `id, user_id, status, name, category, description, address, neighborhood, phone, whatsapp, email, cover_image, created, updated`

func (r *SQLiteRepo) CreateCompany(ctx context.Context, c *models.Company) error {
	if c == nil {
		return fmt.Errorf("company is nil")
	}

	prepareMeta(&c.ListingMeta)
	_, err := r.conn.Exec(ctx, `INSERT INTO companies (`+companyColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.UserID, string(c.Status), c.Name, c.Category, c.Description, c.Address, c.Neighborhood, c.Phone, c.Whatsapp, c.Email, c.CoverImage, c.Created, c.Updated)
	return err
}

func (r *SQLiteRepo) GetCompany(ctx context.Context, id string) (*models.Company, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = ?`, id)
	c, err := scanCompany(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *SQLiteRepo) ListCompanies(ctx context.Context, q repository.ListingQuery) ([]models.Company, error) {
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
	if q.Neighborhood != "" {
		conds = append(conds, "neighborhood = ?")
		args = append(args, q.Neighborhood)
	}

	query := `SELECT ` + companyColumns + ` FROM companies`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY created DESC`

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Company
	for rows.Next() {
		c, err := scanCompany(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func scanCompany(scan func(...any) error) (*models.Company, error) {
	var c models.Company
	var status string
	if err := scan(&c.ID, &c.UserID, &status, &c.Name, &c.Category, &c.Description, &c.Address, &c.Neighborhood, &c.Phone, &c.Whatsapp, &c.Email, &c.CoverImage, &c.Created, &c.Updated); err != nil {
		return nil, err
	}
	c.Status = models.Status(status)
	return &c, nil
}

// prepareMeta fills in the lifecycle defaults for a new listing: generated id,
// pending status, creation timestamps.
func prepareMeta(m *models.ListingMeta) {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.Status == "" {
		m.Status = models.StatusPending
	}
	ts := now()
	if m.Created == 0 {
		m.Created = ts
	}
	m.Updated = ts
}
