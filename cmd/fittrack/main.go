package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"

	adapthttp "fittrack/internal/adapter/http"
	"fittrack/internal/adapter/memory"
	"fittrack/internal/adapter/postgres"
	"fittrack/internal/app"
	"fittrack/internal/domain"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

func main() {
	addr := env("ADDR", ":8080")

	var (
		workoutRepo domain.WorkoutRepository
		userRepo    domain.UserRepository
		sessionRepo domain.SessionRepository
	)

	if os.Getenv("MEMORY") == "1" {
		log.Println("using in-memory storage")
		db := memory.New()
		workoutRepo = db
		userRepo = db
		sessionRepo = memory.NewSessionRepo(db)
	} else {
		connStr := os.Getenv("DATABASE_URL")
		if connStr == "" {
			log.Fatal("DATABASE_URL is required (or set MEMORY=1)")
		}
		db, err := postgres.Open(connStr)
		if err != nil {
			log.Fatalf("db open: %v", err)
		}
		defer func() { _ = db.Close() }()
		workoutRepo = db
		userRepo = db
		sessionRepo = postgres.NewSessionRepo(db)
	}

	workoutSvc := app.NewWorkoutService(workoutRepo)
	statsSvc := app.NewStatsService(workoutRepo)
	authSvc := app.NewAuthService(userRepo, sessionRepo)

	oidcCfg, err := loadOIDC()
	if err != nil {
		log.Fatalf("oidc setup: %v", err)
	}

	h := adapthttp.New(workoutSvc, statsSvc, authSvc, oidcCfg).Handler()
	log.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

func loadOIDC() (adapthttp.OIDCConfig, error) {
	issuer := os.Getenv("OIDC_ISSUER")
	if issuer == "" {
		return adapthttp.OIDCConfig{}, nil
	}

	provider, err := oidc.NewProvider(context.Background(), issuer)
	if err != nil {
		return adapthttp.OIDCConfig{}, err
	}

	return adapthttp.OIDCConfig{
		Enabled:  true,
		Provider: provider,
		OAuth2Config: oauth2.Config{
			ClientID:     os.Getenv("OIDC_CLIENT_ID"),
			ClientSecret: os.Getenv("OIDC_CLIENT_SECRET"),
			RedirectURL:  env("OIDC_REDIRECT_URL", "http://localhost:8080/api/auth/sso/callback"),
			Endpoint:     provider.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
		},
	}, nil
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
