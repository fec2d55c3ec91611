package services

import (
	"context"
	"errors"
	"math"
	"strings"

	"handiva/internal/models"
	"handiva/internal/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cast"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo     repositories.ProductRepository
	events   EventPublisher
	validate *validator.Validate
}

// NewProductService creates a new ProductService. events may be nil.
func NewProductService(repo repositories.ProductRepository, events EventPublisher) *ProductService {
	return &ProductService{
		repo:     repo,
		events:   events,
		validate: validator.New(),
	}
}

// ListProducts returns at most 100 products matching q.
func (s *ProductService) ListProducts(ctx context.Context, q ProductQuery) ([]models.Product, error) {
	filter, err := q.Filter()
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, filter)
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	if !validID(id) {
		return nil, ErrInvalidID
	}
	return s.repo.GetByID(ctx, id)
}

// CreateProductInput is the seller-supplied description of a new product.
// Title accepts any JSON scalar and is stored as text. Price accepts a JSON
// number or a numeric string. Telangana is true only for the exact string
// "true".
type CreateProductInput struct {
	Title       any            `json:"title"`
	Description string         `json:"description"`
	Price       any            `json:"price"`
	Material    string         `json:"material"`
	Category    string         `json:"category"`
	Images      []string       `json:"images"`
	Artisan     models.Artisan `json:"artisan"`
	Telangana   any            `json:"telangana"`
	CreatedBy   string         `json:"createdBy"`
}

type productDraft struct {
	Title     string  `validate:"required"`
	Price     float64 `validate:"required,gt=0"`
	CreatedBy string  `validate:"omitempty,uuid"`
}

const msgTitlePriceRequired = "Title and price are required"

// CreateProduct validates in and stores it as a new product with no stock
// and no tags.
func (s *ProductService) CreateProduct(ctx context.Context, in CreateProductInput) (*models.Product, error) {
	title, err := coerceTitle(in.Title)
	if err != nil {
		return nil, err
	}
	price, err := coercePrice(in.Price)
	if err != nil {
		return nil, err
	}

	draft := productDraft{Title: title, Price: price, CreatedBy: in.CreatedBy}
	if err := s.validate.Struct(draft); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, err
		}
		for _, e := range verrs {
			switch {
			case e.Tag() == "required":
				return nil, invalid(msgTitlePriceRequired)
			case e.Field() == "Price":
				return nil, invalid("price must be greater than zero")
			case e.Field() == "CreatedBy":
				return nil, invalid("createdBy must be a user id")
			}
		}
		return nil, invalid(verrs.Error())
	}

	images := in.Images
	if images == nil {
		images = []string{}
	}
	product := &models.Product{
		Title:       title,
		Description: in.Description,
		Price:       price,
		Currency:    models.DefaultCurrency,
		Images:      images,
		Material:    in.Material,
		Category:    in.Category,
		Artisan:     in.Artisan,
		Tags:        []string{},
		Telangana:   coerceFlag(in.Telangana),
		CreatedBy:   in.CreatedBy,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	publish(s.events, EventProductCreated, map[string]any{
		"id":        product.ID,
		"title":     product.Title,
		"price":     product.Price,
		"telangana": product.Telangana,
	})
	return product, nil
}

// coerceTitle renders a scalar title as text. Objects and arrays are
// rejected.
func coerceTitle(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case map[string]any, []any:
		return "", invalid("title must be a string")
	}
	title, err := cast.ToStringE(v)
	if err != nil {
		return "", invalid("title must be a string")
	}
	return title, nil
}

// coercePrice converts a loosely typed price. A missing or blank price is
// returned as zero so validation reports it as required.
func coercePrice(v any) (float64, error) {
	switch p := v.(type) {
	case nil:
		return 0, nil
	case bool:
		return 0, invalid("price must be a number")
	case string:
		p = strings.TrimSpace(p)
		if p == "" {
			return 0, nil
		}
		v = p
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, invalid("price must be a number")
	}
	return f, nil
}

func coerceFlag(v any) bool {
	s, ok := v.(string)
	return ok && s == "true"
}
