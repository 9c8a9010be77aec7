// Command token issues an access token signed with the configured secret.
// Production tokens come from the identity service; this is for local
// development and smoke tests.
//
// Usage:
//
//	token --user-id=<uuid> [--role=user]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/heartmarshall/clubhouse-backend/internal/auth"
	"github.com/heartmarshall/clubhouse-backend/internal/config"
	"github.com/heartmarshall/clubhouse-backend/internal/domain"
)

func main() {
	rawID := flag.String("user-id", "", "token subject; a random id when empty")
	rawRole := flag.String("role", string(domain.UserRoleUser), "role claim")
	flag.Parse()

	userID := uuid.New()
	if *rawID != "" {
		id, err := uuid.Parse(*rawID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid --user-id: %v\n", err)
			os.Exit(2)
		}
		userID = id
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

	tok, err := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL).
		Issue(auth.Identity{UserID: userID, Role: role})
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}
	fmt.Println(tok)
}
