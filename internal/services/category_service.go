package services

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/JohnMutemi/revised-banking-cli/internal/models"
)

// CategoryService maintains the transaction category registry.
type CategoryService struct {
	db *sql.DB
}

func NewCategoryService(db *sql.DB) *CategoryService {
	return &CategoryService{db: db}
}

var defaultCategories = []models.Category{
	{Name: models.CategoryDeposit, Description: "Money added to an account"},
	{Name: models.CategoryWithdrawal, Description: "Money taken out of an account"},
	{Name: models.CategoryBillPayment, Description: "Payment of a bill from an account"},
}

// SeedDefaults inserts the default categories if they are absent. Runs on
// every start; existing rows are left untouched.
func (s *CategoryService) SeedDefaults() error {
	for _, c := range defaultCategories {
		if _, err := s.db.Exec(`
			INSERT OR IGNORE INTO categories (name, description) VALUES (?, ?)`,
			c.Name, c.Description); err != nil {
			return fmt.Errorf("error seeding category %q: %w", c.Name, err)
		}
	}
	return nil
}

// IDForName resolves a category name to its id. The match is exact. An
// absent category means seeding did not run, so callers treat it as an
// internal consistency error.
func (s *CategoryService) IDForName(name string) (int64, error) {
	var id int64
	err := s.db.QueryRow(`SELECT id FROM categories WHERE name = ?`, name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w: %s", models.ErrCategoryNotFound, name)
	}
	if err != nil {
		return 0, fmt.Errorf("error resolving category: %w", err)
	}
	return id, nil
}

// Create adds a new category.
func (s *CategoryService) Create(name, description string) (*models.Category, error) {
	result, err := s.db.Exec(`INSERT INTO categories (name, description) VALUES (?, ?)`,
		name, description)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("category %q already exists", name)
		}
		return nil, fmt.Errorf("error creating category: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &models.Category{ID: id, Name: name, Description: description}, nil
}

// ListAll returns every category ordered by id.
func (s *CategoryService) ListAll() ([]models.Category, error) {
	rows, err := s.db.Query(`SELECT id, name, description FROM categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("error listing categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, fmt.Errorf("error scanning category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}
