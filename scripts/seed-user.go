// Command seed-user creates an account directly in the database, for
// bootstrapping a fresh environment without going through the API.
//
// Usage:
//
//	go run ./scripts/seed-user.go -email admin@example.com -password secret1
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/skillfolio/skillfolio/internal/auth"
	"github.com/skillfolio/skillfolio/internal/migrate"
	"github.com/skillfolio/skillfolio/internal/model"
	"github.com/skillfolio/skillfolio/internal/repository"
)

type output struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
}

func main() {
	var (
		databaseURL = flag.String("database-url", os.Getenv("DATABASE_URL"), "PostgreSQL connection string")
		email       = flag.String("email", "", "Account email (required)")
		password    = flag.String("password", "", "Account password (required, min 6 characters)")
		firstName   = flag.String("first-name", "", "Optional first name")
		lastName    = flag.String("last-name", "", "Optional last name")
		runMigrate  = flag.Bool("migrate", true, "Apply schema migrations first")
		format      = flag.String("format", "plain", "Output format: plain or json")
	)
	flag.Parse()

	if *databaseURL == "" {
		fmt.Fprintln(os.Stderr, "DATABASE_URL is required")
		os.Exit(1)
	}
	if *email == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "-email and -password are required")
		os.Exit(1)
	}
	if len(*password) < 6 {
		fmt.Fprintln(os.Stderr, "password must be at least 6 characters")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if *runMigrate {
		if err := migrate.Up(*databaseURL); err != nil {
			fmt.Fprintln(os.Stderr, "run migrations:", err)
			os.Exit(1)
		}
	}

	repo, err := repository.New(ctx, *databaseURL)
	if err != nil {
		fmt.Fprintln(os.Stderr, "connect database:", err)
		os.Exit(1)
	}
	defer repo.Close()

	hash, err := auth.HashPassword(*password)
	if err != nil {
		fmt.Fprintln(os.Stderr, "hash password:", err)
		os.Exit(1)
	}

	user := &model.User{
		Email:        strings.ToLower(strings.TrimSpace(*email)),
		PasswordHash: hash,
	}
	if *firstName != "" {
		user.FirstName = firstName
	}
	if *lastName != "" {
		user.LastName = lastName
	}

	if err := repo.CreateUser(ctx, user); err != nil {
		fmt.Fprintln(os.Stderr, "create user:", err)
		os.Exit(1)
	}

	out := output{UserID: user.ID, Email: user.Email}

	switch strings.ToLower(*format) {
	case "json":
		if err := json.NewEncoder(os.Stdout).Encode(out); err != nil {
			fmt.Fprintln(os.Stderr, "encode output:", err)
			os.Exit(1)
		}
	default:
		fmt.Printf("created user %d (%s)\n", out.UserID, out.Email)
	}
}
