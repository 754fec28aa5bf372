package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/centralbjl/directory/pkg/models"
	"github.com/centralbjl/directory/pkg/repository"
)

const travelPackageColumns = `id, user_id, status, destination, departure_date, agency, price, description, cover_image, created, updated`

func (r *SQLiteRepo) CreateTravelPackage(ctx context.Context, p *models.TravelPackage) error {
	if p == nil {
		return fmt.Errorf("travel package is nil")
	}

	prepareMeta(&p.ListingMeta)
	_, err := r.conn.Exec(ctx, `INSERT INTO travel_packages (`+travelPackageColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.UserID, string(p.Status), p.Destination, p.DepartureDate, p.Agency, p.Price, p.Description, p.CoverImage, p.Created, p.Updated)
	return err
}

func (r *SQLiteRepo) GetTravelPackage(ctx context.Context, id string) (*models.TravelPackage, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+travelPackageColumns+` FROM travel_packages WHERE id = ?`, id)
	p, err := scanTravelPackage(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *SQLiteRepo) ListTravelPackages(ctx context.Context, q repository.ListingQuery) ([]models.TravelPackage, error) {
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

	query := `SELECT ` + travelPackageColumns + ` FROM travel_packages`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY created DESC`

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.TravelPackage
	for rows.Next() {
		p, err := scanTravelPackage(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func scanTravelPackage(scan func(...any) error) (*models.TravelPackage, error) {
	var p models.TravelPackage
	var status string
	if err := scan(&p.ID, &p.UserID, &status, &p.Destination, &p.DepartureDate, &p.Agency, &p.Price, &p.Description, &p.CoverImage, &p.Created, &p.Updated); err != nil {
		return nil, err
	}
	p.Status = models.Status(status)
	return &p, nil
}
