package repositories

import (
	"context"
	"testing"

	"expense-tracker/internal/errs"
	"expense-tracker/internal/schemas"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryCreate(t *testing.T) {
	poolMock := newPoolMock(t)
	repo := NewCategoryRepository(poolMock)
	category := &schemas.Category{Name: "Food", Description: "groceries"}

	poolMock.ExpectQuery("INSERT INTO categories").
		WithArgs("Food", "groceries").
		WillReturnRows(pgxmock.NewRows([]string{"category_id"}).AddRow(int64(7)))

	require.NoError(t, repo.Create(context.Background(), category))
	assert.Equal(t, int64(7), category.ID)
}

func TestCategoryCreateDuplicate(t *testing.T) {
	poolMock := newPoolMock(t)
	repo := NewCategoryRepository(poolMock)

	poolMock.ExpectQuery("INSERT INTO categories").
		WithArgs("food", "").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	err := repo.Create(context.Background(), &schemas.Category{Name: "food"})
	assert.ErrorIs(t, err, errs.ErrCategoryExists)
}

func TestCategoryFindByIDNotFound(t *testing.T) {
	poolMock := newPoolMock(t)
	repo := NewCategoryRepository(poolMock)

	poolMock.ExpectQuery("FROM categories").
		WithArgs(int64(3)).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.FindByID(context.Background(), 3)
	assert.ErrorIs(t, err, errs.ErrCategoryNotFound)
}

func TestCategoryFindAll(t *testing.T) {
	poolMock := newPoolMock(t)
	repo := NewCategoryRepository(poolMock)

	poolMock.ExpectQuery("SELECT COUNT").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))
	poolMock.ExpectQuery("FROM categories").
		WithArgs(10, 0).
		WillReturnRows(pgxmock.NewRows([]string{"category_id", "name", "description"}).
			AddRow(int64(1), "Food", "").
			AddRow(int64(2), "Rent", "monthly"))

	categories, total, err := repo.FindAll(context.Background(), 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, categories, 2)
	assert.Equal(t, "Rent", categories[1].Name)
}

func TestCategoryUpdateMissing(t *testing.T) {
	poolMock := newPoolMock(t)
	repo := NewCategoryRepository(poolMock)

	poolMock.ExpectExec("UPDATE categories").
		WithArgs(int64(9), "Food", "").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Update(context.Background(), &schemas.Category{ID: 9, Name: "Food"})
	assert.ErrorIs(t, err, errs.ErrCategoryNotFound)
}

func TestCategoryDelete(t *testing.T) {
	testCases := []struct {
		name     string
		rows     int64
		dbErr    error
		expected error
	}{
		{"Deleted", 1, nil, nil},
		{"Missing", 0, nil, errs.ErrCategoryNotFound},
		{"InUse", 0, &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}, errs.ErrCategoryInUse},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			poolMock := newPoolMock(t)
			repo := NewCategoryRepository(poolMock)

			exec := poolMock.ExpectExec("DELETE FROM categories").WithArgs(int64(4))
			if tc.dbErr != nil {
				exec.WillReturnError(tc.dbErr)
			} else {
				exec.WillReturnResult(pgxmock.NewResult("DELETE", tc.rows))
			}

			err := repo.Delete(context.Background(), 4)
			if tc.expected == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.expected)
			}
		})
	}
}
