package sqlite

import (
	"strings"
	"time"

	"log/slog"

	"github.com/centralbjl/directory/internal/db"
	"github.com/centralbjl/directory/pkg/repository"
)

// SQLiteRepo implements repository interfaces using the internal DB wrapper.
type SQLiteRepo struct {
	conn   *db.DB
	logger *slog.Logger
}

// Ensure SQLiteRepo implements the public interfaces.
var _ repository.AccountRepo = (*SQLiteRepo)(nil)
var _ repository.ProfileRepo = (*SQLiteRepo)(nil)
var _ repository.CompanyRepo = (*SQLiteRepo)(nil)
var _ repository.JobRepo = (*SQLiteRepo)(nil)
var _ repository.TravelPackageRepo = (*SQLiteRepo)(nil)
var _ repository.EventRepo = (*SQLiteRepo)(nil)
var _ repository.FoodRepo = (*SQLiteRepo)(nil)
var _ repository.ListingLifecycleRepo = (*SQLiteRepo)(nil)
var _ repository.LookupRepo = (*SQLiteRepo)(nil)

func New(conn *db.DB, logger *slog.Logger) *SQLiteRepo {
	if logger == nil {
		logger = slog.Default()
	}
	return &SQLiteRepo{conn: conn, logger: logger}
}

func now() int64 {
	return time.Now().UTC().UnixMilli()
}

// isUniqueViolation reports whether err is a SQLite unique-constraint failure.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
