// Command seed provisions a fresh store file: the creator account and the
// facility reference set. Running it against an existing store is safe.
package main

import (
	"errors"
	"log"
	"os"

	"github.com/communityguardian/core/internal/config"
	"github.com/communityguardian/core/internal/services"
	"github.com/communityguardian/core/internal/store"
)

func main() {
	cfg := config.Load()

	st, err := store.Open(cfg.StorePath)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}

	auth := services.NewAuthService(st, cfg)
	facilities := services.NewFacilityService(st)

	log.Printf("seeding store at %s...", cfg.StorePath)

	password := os.Getenv("GUARDIAN_CREATOR_PASSWORD")
	if password == "" {
		password = "changeme"
	}

	if _, err := auth.SignUp(cfg.CreatorEmail, password, "Creator"); err != nil {
		if errors.Is(err, services.ErrDuplicateAccount) {
			log.Printf("creator account %s already present", cfg.CreatorEmail)
		} else {
			log.Fatalf("create creator account: %v", err)
		}
	} else {
		log.Printf("created creator account %s", cfg.CreatorEmail)
	}

	// Seeding must not leave a session behind.
	if err := auth.Logout(); err != nil {
		log.Fatalf("clear session: %v", err)
	}

	listed, err := facilities.List()
	if err != nil {
		log.Fatalf("seed facilities: %v", err)
	}
	log.Printf("facility listing holds %d entries", len(listed))

	log.Println("seeding completed")
}
