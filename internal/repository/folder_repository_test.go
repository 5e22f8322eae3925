package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"donation-web-server/config"
	"donation-web-server/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func newMockDatabase(t *testing.T) (*config.Database, sqlmock.Sqlmock) {
	t.Helper()

	mockDb, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { mockDb.Close() })

	return &config.Database{DB: sqlx.NewDb(mockDb, "sqlmock")}, mock
}

func TestFolderRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDatabase(t)
		repo := repository.NewFolderRepository(db)

		rows := sqlmock.NewRows([]string{"id", "name", "description", "min_donation_amount", "created_at", "updated_at"}).
			AddRow(2, "premium", "", 100.0, now, now)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, description, min_donation_amount, created_at, updated_at FROM folders WHERE id = $1`)).
			WithArgs(int64(2)).
			WillReturnRows(rows)

		folder, err := repo.GetByID(ctx, db, 2)
		assert.NoError(t, err)
		assert.Equal(t, "premium", folder.Name)
		assert.Equal(t, 100.0, folder.MinDonationAmount)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found returns nil without error", func(t *testing.T) {
		db, mock := newMockDatabase(t)
		repo := repository.NewFolderRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, description, min_donation_amount, created_at, updated_at FROM folders WHERE id = $1`)).
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "min_donation_amount", "created_at", "updated_at"}))

		folder, err := repo.GetByID(ctx, db, 99)
		assert.NoError(t, err)
		assert.Nil(t, folder)
	})
}

func TestFolderRepository_NameTaken(t *testing.T) {
	ctx := context.Background()

	db, mock := newMockDatabase(t)
	repo := repository.NewFolderRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM folders WHERE name = $1 AND id <> $2)`)).
		WithArgs("premium", int64(0)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	taken, err := repo.NameTaken(ctx, db, "premium", 0)
	assert.NoError(t, err)
	assert.True(t, taken)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFolderRepository_IDsWithinAmount(t *testing.T) {
	ctx := context.Background()

	db, mock := newMockDatabase(t)
	repo := repository.NewFolderRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM folders WHERE min_donation_amount <= $1 ORDER BY id`)).
		WithArgs(150.0).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2))

	ids, err := repo.IDsWithinAmount(ctx, db, 150)
	assert.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, ids)
}
