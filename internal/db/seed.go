package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"ems/internal/auth"
	"ems/internal/platform/config"
)

// Seed ensures the configured admin account exists. It is a no-op when no
// seed credentials are configured.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	if cfg.SeedAdminEmail == "" || cfg.SeedAdminPassword == "" {
		return nil
	}

	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM accounts WHERE email = $1", cfg.SeedAdminEmail).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(cfg.SeedAdminPassword)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
    INSERT INTO accounts (name, email, password_hash, role)
    VALUES ($1, $2, $3, $4)
  `, cfg.SeedAdminName, cfg.SeedAdminEmail, hash, auth.RoleAdmin)
	return err
}
