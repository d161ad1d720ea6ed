package storage

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/airlineempire/cli/internal/common"
	"github.com/airlineempire/cli/internal/cryptox"
	"github.com/airlineempire/cli/internal/dbx"
	"github.com/airlineempire/cli/internal/models"
	"github.com/airlineempire/cli/internal/repositories/users"
)

// Demo credentials advertised on the sign-in screen. Intentionally trivial:
// this is a sample account for a simulation game, not real access control.
const (
	DemoUsername = "admin"
	DemoSecret   = "admin"
)

// SeedDemoAccount creates the demo administrator account if it does not
// exist yet. The check and the insert run in one transaction so concurrent
// starts cannot create duplicates.
func SeedDemoAccount(ctx context.Context, db *sql.DB) error {
	return dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := users.NewSQLiteRepository(tx)

		_, err := repo.FindByUsername(ctx, DemoUsername)
		if err == nil {
			return nil
		}
		if !errors.Is(err, common.ErrNotFound) {
			return err
		}

		salt := common.GenerateRandByteArray(cryptox.SaltSize)
		return repo.Create(ctx, &models.User{
			ID:        uuid.NewString(),
			Username:  DemoUsername,
			Salt:      salt,
			Verifier:  cryptox.HashSecret([]byte(DemoSecret), salt),
			Role:      models.RoleAdministrator,
			CreatedAt: time.Now(),
		})
	})
}
