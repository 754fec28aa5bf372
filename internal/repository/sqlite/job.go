package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/centralbjl/directory/pkg/models"
	"github.com/centralbjl/directory/pkg/repository"
)

const jobColumns = `id, user_id, status, title, company_name, salary, description, requirements, deadline, created, updated`

func (r *SQLiteRepo) CreateJob(ctx context.Context, j *models.Job) error {
	if j == nil {
		return fmt.Errorf("job is nil")
	}

	prepareMeta(&j.ListingMeta)
	_, err := r.conn.Exec(ctx, `INSERT INTO jobs (`+jobColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		j.ID, j.UserID, string(j.Status), j.Title, j.CompanyName, j.Salary, j.Description, j.Requirements, j.Deadline, j.Created, j.Updated)
	return err
}

func (r *SQLiteRepo) GetJob(ctx context.Context, id string) (*models.Job, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = ?`, id)
	j, err := scanJob(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return j, nil
}

func (r *SQLiteRepo) ListJobs(ctx context.Context, q repository.ListingQuery) ([]models.Job, error) {
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

	query := `SELECT ` + jobColumns + ` FROM jobs`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY created DESC`

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Job
	for rows.Next() {
		j, err := scanJob(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *j)
	}
	return out, rows.Err()
}

func scanJob(scan func(...any) error) (*models.Job, error) {
	var j models.Job
	var status string
	if err := scan(&j.ID, &j.UserID, &status, &j.Title, &j.CompanyName, &j.Salary, &j.Description, &j.Requirements, &j.Deadline, &j.Created, &j.Updated); err != nil {
		return nil, err
	}
	j.Status = models.Status(status)
	return &j, nil
}
