package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/centralbjl/directory/pkg/models"
)

// listingTables maps a listing kind to its table. Acting as a whitelist, it
// keeps kind strings out of SQL text.
var listingTables = map[models.ListingKind]string{
	models.KindCompany:       "companies",
	models.KindJob:           "jobs",
	models.KindTravelPackage: "travel_packages",
	models.KindEvent:         "events",
	models.KindFood:          "foods",
}

func tableFor(kind models.ListingKind) (string, error) {
	t, ok := listingTables[kind]
	if !ok {
		return "", fmt.Errorf("unknown listing kind %q: %w", kind, models.ErrNotFound)
	}
	return t, nil
}

func (r *SQLiteRepo) GetListingMeta(ctx context.Context, kind models.ListingKind, id string) (*models.ListingMeta, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRow(ctx, fmt.Sprintf(`SELECT id, user_id, status, created, updated FROM %s WHERE id = ?`, table), id)
	var m models.ListingMeta
	var status string
	if err := row.Scan(&m.ID, &m.UserID, &status, &m.Created, &m.Updated); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	m.Status = models.Status(status)
	return &m, nil
}

func (r *SQLiteRepo) UpdateListingStatus(ctx context.Context, kind models.ListingKind, id string, status models.Status) error {
	table, err := tableFor(kind)
	if err != nil {
		return err
	}

	res, err := r.conn.Exec(ctx, fmt.Sprintf(`UPDATE %s SET status = ?, updated = ? WHERE id = ?`, table), string(status), now(), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", kind, id, models.ErrNotFound)
	}
	return nil
}

func (r *SQLiteRepo) DeleteListing(ctx context.Context, kind models.ListingKind, id string) error {
	table, err := tableFor(kind)
	if err != nil {
		return err
	}

	res, err := r.conn.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, table), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", kind, id, models.ErrNotFound)
	}
	return nil
}
