package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"log/slog"

	"github.com/centralbjl/directory/internal/config"
	"github.com/centralbjl/directory/internal/db"
	"github.com/centralbjl/directory/internal/repository/sqlite"
	"github.com/centralbjl/directory/pkg/models"
)

// promote_admin grants the admin role to an existing account, identified by
// email. Role changes happen only through this tool; no API endpoint mutates
// roles.
func main() {
	email := flag.String("email", "", "Email of the account to promote")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote_admin -email user@example.com")
		os.Exit(1)
	}

	ctx := context.Background()
	cfg, err := config.LoadConfig("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	database, err := db.New(ctx, cfg.DatabasePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "DB error: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	repo := sqlite.New(database, slog.Default())

	account, err := repo.GetAccountByEmail(ctx, *email)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Lookup error: %v\n", err)
		os.Exit(1)
	}
	if account == nil {
		fmt.Fprintf(os.Stderr, "No account found for %s\n", *email)
		os.Exit(1)
	}

	if err := repo.SetRole(ctx, account.ID, models.RoleAdmin); err != nil {
		fmt.Fprintf(os.Stderr, "Promote error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Promoted %s to admin.\n", *email)
}
