// Command promote sets a user's role. It is used to bootstrap the first
// editors and managers; the role takes effect on the user's next request.
//
// Usage:
//
//	promote --user-id=<uuid> --role=editor [--display-name=Mei]
//
// Reads the database settings the same way the server does.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/clubhouse-backend/internal/adapter/postgres"
	"github.com/heartmarshall/clubhouse-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/clubhouse-backend/internal/app"
	"github.com/heartmarshall/clubhouse-backend/internal/config"
	"github.com/heartmarshall/clubhouse-backend/internal/domain"
)

func main() {
	rawID := flag.String("user-id", "", "id of the user to promote")
	rawRole := flag.String("role", string(domain.UserRoleEditor), "role to grant: user, editor, manager or admin")
	displayName := flag.String("display-name", "", "display name to store when the user is not known yet")
	flag.Parse()

	userID, err := uuid.Parse(*rawID)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Usage: promote --user-id=<uuid> --role=editor [--display-name=Mei]")
		os.Exit(2)
	}
	role := domain.UserRole(*rawRole)
	if !role.IsValid() {
		fmt.Fprintf(os.Stderr, "unknown role %q\n", *rawRole)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	users := user.New(pool)
	err = users.SetRole(ctx, userID, role)
	if errors.Is(err, domain.ErrNotFound) {
		now := time.Now().UTC()
		_, err = users.Upsert(ctx, &domain.User{
			ID:          userID,
			DisplayName: *displayName,
			Role:        role,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	if err != nil {
		logger.Error("promote user", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("user promoted",
		slog.String("user_id", userID.String()),
		slog.String("role", role.String()),
	)
}
