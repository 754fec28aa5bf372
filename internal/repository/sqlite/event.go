package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/centralbjl/directory/pkg/models"
	"github.com/centralbjl/directory/pkg/repository"
)

const eventColumns = `id, user_id, status, name, event_date, location, event_type, is_free, ticket_price, age_rating, description, cover_image, created, updated`

func (r *SQLiteRepo) CreateEvent(ctx context.Context, e *models.Event) error {
	if e == nil {
		return fmt.Errorf("event is nil")
	}

	prepareMeta(&e.ListingMeta)
	isFree := 0
	if e.IsFree {
		isFree = 1
	}
	_, err := r.conn.Exec(ctx, `INSERT INTO events (`+eventColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.UserID, string(e.Status), e.Name, e.EventDate, e.Location, e.EventType, isFree, e.TicketPrice, e.AgeRating, e.Description, e.CoverImage, e.Created, e.Updated)
	return err
}

func (r *SQLiteRepo) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id = ?`, id)
	e, err := scanEvent(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *SQLiteRepo) ListEvents(ctx context.Context, q repository.ListingQuery) ([]models.Event, error) {
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

	// upcoming events first
	query := `SELECT ` + eventColumns + ` FROM events`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY event_date ASC`

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Event
	for rows.Next() {
		e, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

func scanEvent(scan func(...any) error) (*models.Event, error) {
	var e models.Event
	var status string
	var isFree int
	if err := scan(&e.ID, &e.UserID, &status, &e.Name, &e.EventDate, &e.Location, &e.EventType, &isFree, &e.TicketPrice, &e.AgeRating, &e.Description, &e.CoverImage, &e.Created, &e.Updated); err != nil {
		return nil, err
	}
	e.Status = models.Status(status)
	e.IsFree = isFree != 0
	return &e, nil
}
