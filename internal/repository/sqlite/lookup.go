package sqlite

import (
	"context"

	"github.com/centralbjl/directory/pkg/models"
)

func (r *SQLiteRepo) ListCategories(ctx context.Context) ([]models.Lookup, error) {
	return r.listLookup(ctx, `SELECT id, name FROM business_categories ORDER BY name`)
}

func (r *SQLiteRepo) ListNeighborhoods(ctx context.Context) ([]models.Lookup, error) {
	return r.listLookup(ctx, `SELECT id, name FROM neighborhoods ORDER BY name`)
}

func (r *SQLiteRepo) listLookup(ctx context.Context, query string) ([]models.Lookup, error) {
	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Lookup
	for rows.Next() {
		var l models.Lookup
		if err := rows.Scan(&l.ID, &l.Name); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
