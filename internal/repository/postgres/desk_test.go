package postgres_test

import (
	"context"
	"database/sql"
	"testing"

	"prospace-backend/internal/domain"
	"prospace-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeskRepoCreate_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewDeskRepository(db)

	mock.ExpectExec("INSERT INTO desks").
		WithArgs(sqlmock.AnyArg(), "D-101", true).
		WillReturnResult(sqlmock.NewResult(0, 1))

	desk := &domain.Desk{DeskNumber: "D-101", IsActive: true}
	err := repo.Create(context.Background(), desk)

	assert.NoError(t, err)
	assert.NotEmpty(t, desk.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeskRepoCreate_DuplicateNumber(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewDeskRepository(db)

	mock.ExpectExec("INSERT INTO desks").
		WillReturnError(uniqueViolationOn("desks_desk_number_key"))

	err := repo.Create(context.Background(), &domain.Desk{DeskNumber: "D-101", IsActive: true})

	assert.True(t, domain.IsConflict(err))
	assert.Equal(t, "desk number already in use", err.Error())
}

func TestDeskRepoGetByNumber_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewDeskRepository(db)

	mock.ExpectQuery("SELECT id, desk_number, is_active FROM desks").
		WithArgs("D-404").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByNumber(context.Background(), "D-404")

	assert.True(t, domain.IsNotFound(err))
}

func TestDeskRepoList(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewDeskRepository(db)

	mock.ExpectQuery("SELECT id, desk_number, is_active FROM desks").
		WillReturnRows(sqlmock.NewRows([]string{"id", "desk_number", "is_active"}).
			AddRow("desk-1", "D-101", true).
			AddRow("desk-2", "D-102", false))

	desks, err := repo.List(context.Background())

	assert.NoError(t, err)
	require.Len(t, desks, 2)
	assert.False(t, desks[1].IsActive)
}

func TestDeskRepoUpdate_RenumberConflict(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewDeskRepository(db)

	mock.ExpectExec("UPDATE desks").
		WillReturnError(uniqueViolationOn("desks_desk_number_key"))

	err := repo.Update(context.Background(), &domain.Desk{ID: "desk-1", DeskNumber: "D-102", IsActive: true})

	assert.True(t, domain.IsConflict(err))
}
