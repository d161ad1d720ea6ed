package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airlineempire/cli/internal/cryptox"
	"github.com/airlineempire/cli/internal/models"
	"github.com/airlineempire/cli/internal/repositories/users"
)

func TestInitDatabase_AppliesMigrations(t *testing.T) {
	ctx := context.Background()

	db, err := InitDatabase(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	// both tables must exist after migration
	_, err = db.Exec(`INSERT INTO state (key, value) VALUES ('k', X'00')`)
	assert.NoError(t, err)
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&n))
	assert.Equal(t, 0, n)
}

func TestSeedDemoAccount_CreatesVerifiableAccount(t *testing.T) {
	ctx := context.Background()

	db, err := InitDatabase(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, SeedDemoAccount(ctx, db))

	repo := users.NewSQLiteRepository(db)
	u, err := repo.FindByUsername(ctx, DemoUsername)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdministrator, u.Role)
	assert.True(t, cryptox.VerifySecret([]byte(DemoSecret), u.Salt, u.Verifier))
	assert.False(t, cryptox.VerifySecret([]byte("wrong"), u.Salt, u.Verifier))
}

func TestSeedDemoAccount_Idempotent(t *testing.T) {
	ctx := context.Background()

	db, err := InitDatabase(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, SeedDemoAccount(ctx, db))

	repo := users.NewSQLiteRepository(db)
	first, err := repo.FindByUsername(ctx, DemoUsername)
	require.NoError(t, err)

	require.NoError(t, SeedDemoAccount(ctx, db))

	second, err := repo.FindByUsername(ctx, DemoUsername)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Verifier, second.Verifier)
}
