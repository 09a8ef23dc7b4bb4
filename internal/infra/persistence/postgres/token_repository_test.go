package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"carepush/config"
	"carepush/internal/domain/entity"
	"carepush/internal/domain/repository"
	"carepush/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestToTokenDomain(t *testing.T) {
	created := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	updated := created.Add(time.Minute)

	token := toTokenDomain(&model.PushTokenModel{
		UserID:    "u1",
		Token:     "T1",
		Platform:  "ios",
		CreatedAt: created,
		UpdatedAt: updated,
	})

	assert.Equal(t, &entity.DeliveryToken{
		Value:     "T1",
		Platform:  entity.PlatformIOS,
		IssuedAt:  created,
		UpdatedAt: updated,
	}, token)
	assert.Nil(t, toTokenDomain(nil))
}

func TestIsNotNullConstraintViolation(t *testing.T) {
	assert.True(t, isNotNullConstraintViolation(errors.New(`ERROR: null value in column "token" (SQLSTATE 23502)`)))
	assert.False(t, isNotNullConstraintViolation(errors.New("connection refused")))
}

func TestGormSlogLogger_TraceLevels(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{}
	l := newGormSlogLogger(base, cfg)
	sqlFn := func() (string, int64) { return "SELECT 1", 1 }

	l.Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Empty(t, buf.String(), "fast queries are not logged at warn level")

	l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String(), "record not found is ignored")

	l.Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))
	assert.Contains(t, buf.String(), "GORM query failed")

	buf.Reset()
	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)
	assert.Contains(t, buf.String(), "GORM slow query")

	buf.Reset()
	l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))
	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_ParamsFilterDropsValues(t *testing.T) {
	l := newGormSlogLogger(slog.Default(), &config.Config{})

	filter, ok := l.(gorm.ParamsFilter)
	assert.True(t, ok)

	sql, params := filter.ParamsFilter(context.Background(), "SELECT * FROM user_push_tokens WHERE token = $1", "secret-token")
	assert.Equal(t, "SELECT * FROM user_push_tokens WHERE token = $1", sql)
	assert.Nil(t, params)
}

func TestTokenRepository_UpsertTokenUsesDatabaseClock(t *testing.T) {
	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{DSN: "host=localhost user=carepush dbname=carepush sslmode=disable"}),
		&gorm.Config{DryRun: true, DisableAutomaticPing: true, Logger: logger.Discard})
	require.NoError(t, err)

	var statement string
	require.NoError(t, db.Callback().Create().After("gorm:create").Register("test:capture_sql", func(tx *gorm.DB) {
		statement = tx.Statement.SQL.String()
	}))

	repo := NewTokenRepository(db)
	err = repo.UpsertToken(context.Background(), "u1", &entity.DeliveryToken{Value: "T1", Platform: entity.PlatformIOS})
	require.NoError(t, err)

	assert.Contains(t, statement, `INSERT INTO "user_push_tokens"`)
	assert.Contains(t, statement, `ON CONFLICT ("user_id","token") DO UPDATE SET`)
	assert.Contains(t, statement, `"updated_at"=NOW()`)
	// created_at and updated_at on insert, updated_at on conflict.
	assert.Equal(t, 3, strings.Count(statement, "NOW()"))
}

func TestTokenRepository_UpsertTokenRejectsEmptyInput(t *testing.T) {
	repo := NewTokenRepository(nil)

	assert.ErrorIs(t, repo.UpsertToken(context.Background(), "", &entity.DeliveryToken{Value: "T1"}), repository.ErrInvalidToken)
	assert.ErrorIs(t, repo.UpsertToken(context.Background(), "u1", &entity.DeliveryToken{}), repository.ErrInvalidToken)
}
