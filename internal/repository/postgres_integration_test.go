//go:build integration
// +build integration

package repository

import (
	"context"
	"errors"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/pablotanner/RocketRealtor/internal/common/database"
	"github.com/pablotanner/RocketRealtor/internal/config"
	"github.com/pablotanner/RocketRealtor/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return n
	}
	return def
}

func getTestPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := &config.DatabaseConfig{
		Driver:   "postgres",
		Host:     getEnv("TEST_DB_HOST", "localhost"),
		Port:     getEnvInt("TEST_DB_PORT", 5432),
		User:     getEnv("TEST_DB_USER", "postgres"),
		Password: getEnv("TEST_DB_PASSWORD", "postgres"),
		Database: getEnv("TEST_DB_NAME", "rocketrealtor_test"),
		SSLMode:  getEnv("TEST_DB_SSLMODE", "disable"),
	}
	db, err := database.Open(cfg, zap.NewNop())
	if err != nil {
		t.Skipf("Skipping integration test: cannot connect to database: %v", err)
		return nil
	}
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, Migrate(context.Background(), db))
	return db
}

func TestPostgresTenants_CreateWithLeaseAndConnect(t *testing.T) {
	db := getTestPostgres(t)
	if db == nil {
		return
	}
	repos := NewGormRepositories(db)
	ctx := context.Background()

	suffix := strconv.FormatInt(time.Now().UnixNano(), 10)
	realtor := &domain.User{Email: "it-" + suffix + "@example.com", Role: domain.RoleRealtor}
	other := &domain.User{Email: "it-other-" + suffix + "@example.com", Role: domain.RoleRealtor}
	require.NoError(t, repos.Users.CreateUser(ctx, realtor))
	require.NoError(t, repos.Users.CreateUser(ctx, other))
	t.Cleanup(func() {
		var tenantIDs []uint
		db.Raw(`SELECT tenant_id FROM leases WHERE realtor_id IN (?, ?) AND tenant_id IS NOT NULL`, realtor.ID, other.ID).Scan(&tenantIDs)
		db.Exec(`DELETE FROM leases WHERE realtor_id IN (?, ?)`, realtor.ID, other.ID)
		if len(tenantIDs) > 0 {
			db.Exec(`DELETE FROM tenants WHERE id IN ?`, tenantIDs)
		}
		db.Exec(`DELETE FROM users WHERE id IN (?, ?)`, realtor.ID, other.ID)
	})

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)
	first, last := "Ada", "Lovelace"

	created, err := repos.Tenants.CreateTenant(ctx, realtor.ID,
		domain.TenantInput{FirstName: &first, LastName: &last}.ToModel(),
		domain.LeaseCreate{Input: domain.LeaseInput{StartDate: &start, EndDate: &end}})
	require.NoError(t, err)
	require.Len(t, created.Leases, 1)
	assert.Equal(t, realtor.ID, created.Leases[0].RealtorID)

	// a lease owned by someone else rolls the whole create back
	foreign := domain.LeaseInput{StartDate: &start, EndDate: &end}.ToModel(other.ID)
	require.NoError(t, repos.Leases.CreateLease(ctx, foreign))

	_, err = repos.Tenants.CreateTenant(ctx, realtor.ID,
		domain.TenantInput{FirstName: &first, LastName: &last}.ToModel(),
		domain.LeaseConnect{LeaseID: foreign.ID})
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	tenants, err := repos.Tenants.ListTenants(ctx, realtor.ID)
	require.NoError(t, err)
	assert.Len(t, tenants, 1)
}
