package repositories

import (
	"context"
	"errors"

	"expense-tracker/internal/errs"
	"expense-tracker/internal/interfaces"
	"expense-tracker/internal/schemas"
	"expense-tracker/internal/utils"

	"github.com/jackc/pgx/v5"
)

type CategoryRepo interface {
	Create(ctx context.Context, category *schemas.Category) error
	FindByID(ctx context.Context, id int64) (*schemas.Category, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	FindAll(ctx context.Context, offset, limit int) ([]*schemas.Category, int, error)
	Update(ctx context.Context, category *schemas.Category) error
	Delete(ctx context.Context, id int64) error
}

type CategoryRepository struct {
	pool interfaces.PgxPoolIface
}

func NewCategoryRepository(pool interfaces.PgxPoolIface) CategoryRepo {
	return &CategoryRepository{pool: pool}
}

// Create inserts category and sets its generated id.
func (r *CategoryRepository) Create(ctx context.Context, category *schemas.Category) error {
	err := utils.QuerierFromContext(ctx, r.pool).QueryRow(ctx, insertCategory, category.Name, category.Description).
		Scan(&category.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return errs.ErrCategoryExists
		}
		return err
	}

	return nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id int64) (*schemas.Category, error) {
	category := &schemas.Category{}
	err := utils.QuerierFromContext(ctx, r.pool).QueryRow(ctx, selectCategoryByID, id).
		Scan(&category.ID, &category.Name, &category.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrCategoryNotFound
		}
		return nil, err
	}

	return category, nil
}

func (r *CategoryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := utils.QuerierFromContext(ctx, r.pool).QueryRow(ctx, existsCategoryByName, name).Scan(&exists)
	return exists, err
}

func (r *CategoryRepository) FindAll(ctx context.Context, offset, limit int) ([]*schemas.Category, int, error) {
	querier := utils.QuerierFromContext(ctx, r.pool)

	var total int
	if err := querier.QueryRow(ctx, countCategories).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := querier.Query(ctx, selectCategories, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	categories := make([]*schemas.Category, 0, limit)
	for rows.Next() {
		category := &schemas.Category{}
		if err := rows.Scan(&category.ID, &category.Name, &category.Description); err != nil {
			return nil, 0, err
		}
		categories = append(categories, category)
	}

	return categories, total, rows.Err()
}

func (r *CategoryRepository) Update(ctx context.Context, category *schemas.Category) error {
	tag, err := utils.QuerierFromContext(ctx, r.pool).Exec(ctx, updateCategory, category.ID, category.Name, category.Description)
	if err != nil {
		if isUniqueViolation(err) {
			return errs.ErrCategoryExists
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrCategoryNotFound
	}

	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	tag, err := utils.QuerierFromContext(ctx, r.pool).Exec(ctx, deleteCategory, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return errs.ErrCategoryInUse
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrCategoryNotFound
	}

	return nil
}
