package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"handiva/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// List retrieves at most filter.EffectiveLimit() products matching filter,
// in the database's natural order.
func (r *GORMProductRepository) List(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	products := make([]models.Product, 0)
	query := applyProductFilter(r.db.WithContext(ctx).Model(&models.Product{}), filter)
	if err := query.Limit(filter.EffectiveLimit()).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID from the database.
func (r *GORMProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// Create creates a new product in the database.
func (r *GORMProductRepository) Create(ctx context.Context, product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", translateGORMError(err))
	}
	return nil
}

// searchColumns are matched by the free-text clause.
var searchColumns = []string{"title", "description", "material", "category"}

// tagsSearchClause matches the pattern against each element of the JSON
// encoded tags column, never against its punctuation.
func tagsSearchClause(dialect string) string {
	if dialect == "postgres" {
		return `EXISTS (SELECT 1 FROM json_array_elements_text(CASE WHEN json_typeof(tags::json) = 'array' THEN tags::json ELSE '[]'::json END) AS tag(value) WHERE LOWER(tag.value) LIKE ? ESCAPE '\')`
	}
	return `EXISTS (SELECT 1 FROM json_each(CASE WHEN json_valid(tags) THEN tags ELSE '[]' END) WHERE LOWER(json_each.value) LIKE ? ESCAPE '\')`
}

func applyProductFilter(db *gorm.DB, f ProductFilter) *gorm.DB {
	if f.Material != "" {
		db = db.Where("material = ?", f.Material)
	}
	if f.Category != "" {
		db = db.Where("category = ?", f.Category)
	}
	if f.TelanganaOnly {
		db = db.Where("telangana = ?", true)
	}
	if f.Search != "" {
		pattern := "%" + escapeLike(strings.ToLower(f.Search)) + "%"
		clauses := make([]string, 0, len(searchColumns)+1)
		args := make([]any, 0, len(searchColumns)+1)
		for _, col := range searchColumns {
			clauses = append(clauses, "LOWER("+col+`) LIKE ? ESCAPE '\'`)
			args = append(args, pattern)
		}
		clauses = append(clauses, tagsSearchClause(db.Dialector.Name()))
		args = append(args, pattern)
		db = db.Where("("+strings.Join(clauses, " OR ")+")", args...)
	}
	if f.MinPrice != nil {
		db = db.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		db = db.Where("price <= ?", *f.MaxPrice)
	}
	return db
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func translateGORMError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %v", ErrDuplicateKey, err)
	}
	return err
}
