package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/JohnMutemi/revised-banking-cli/internal/models"
)

func TestCategoryService_SeedDefaults(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	service := NewCategoryService(db)

	for _, name := range []string{models.CategoryDeposit, models.CategoryWithdrawal, models.CategoryBillPayment} {
		mock.ExpectExec("INSERT OR IGNORE INTO categories").
			WithArgs(name, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}

	assert.NoError(t, service.SeedDefaults())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryService_IDForName(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	service := NewCategoryService(db)

	t.Run("seeded category", func(t *testing.T) {
		mock.ExpectQuery("SELECT id FROM categories WHERE name").
			WithArgs(models.CategoryDeposit).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

		id, err := service.IDForName(models.CategoryDeposit)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), id)
	})

	t.Run("absent category is an internal inconsistency", func(t *testing.T) {
		mock.ExpectQuery("SELECT id FROM categories WHERE name").
			WithArgs("Lottery").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := service.IDForName("Lottery")
		assert.ErrorIs(t, err, models.ErrCategoryNotFound)
	})
}

func TestCategoryService_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	service := NewCategoryService(db)

	mock.ExpectExec("INSERT INTO categories").
		WithArgs("Transfer", "Money moved between accounts").
		WillReturnResult(sqlmock.NewResult(4, 1))

	category, err := service.Create("Transfer", "Money moved between accounts")
	assert.NoError(t, err)
	assert.Equal(t, int64(4), category.ID)
	assert.Equal(t, "Transfer", category.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
