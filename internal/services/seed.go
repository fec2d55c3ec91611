package services

import (
	"context"
	"errors"
	"fmt"

	"handiva/internal/models"
	"handiva/internal/repositories"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// DemoSellerEmail identifies the seller account owning the demo catalog.
const DemoSellerEmail = "seller@handiva.local"

// Seeder populates an empty store with the storefront's highlight crafts.
type Seeder struct {
	users    repositories.UserRepository
	products repositories.ProductRepository
}

// NewSeeder creates a new Seeder.
func NewSeeder(users repositories.UserRepository, products repositories.ProductRepository) *Seeder {
	return &Seeder{users: users, products: products}
}

func demoProducts() []models.Product {
	return []models.Product{
		{
			Title:     "Pochampally Ikat Saree",
			Price:     4500,
			Images:    []string{"assets/pochampally.jpg"},
			Material:  "cotton",
			Category:  "textile",
			Artisan:   models.Artisan{Origin: "Telangana"},
			Tags:      []string{"textile", "ikat"},
			Telangana: true,
		},
		{
			Title:     "Terracotta Pot (Mud Craft)",
			Price:     350,
			Images:    []string{"assets/terracotta.jpg"},
			Material:  "clay",
			Category:  "pottery",
			Artisan:   models.Artisan{Origin: "Telangana"},
			Tags:      []string{"pottery", "mud"},
			Telangana: true,
		},
		{
			Title:     "Jute Tote Bag",
			Price:     400,
			Images:    []string{"assets/jute.jpg"},
			Material:  "jute",
			Category:  "bags",
			Artisan:   models.Artisan{Origin: "Telangana"},
			Tags:      []string{"jute", "eco"},
			Telangana: true,
		},
		{
			Title:    "Handknit Woolen Shawl",
			Price:    1800,
			Images:   []string{"assets/wool_shawl.jpg"},
			Material: "wool",
			Category: "textile",
			Artisan:  models.Artisan{Origin: "Himachal"},
			Tags:     []string{"wool", "knit"},
		},
	}
}

// SeedDemo creates the demo seller with password and the highlight
// products it lists. It reports false without writing anything when the
// seller already exists.
func (s *Seeder) SeedDemo(ctx context.Context, password string) (bool, error) {
	_, err := s.users.GetByEmail(ctx, DemoSellerEmail)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return false, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("failed to hash password: %w", err)
	}
	seller := &models.User{
		Name:         "Handiva Demo Seller",
		Email:        DemoSellerEmail,
		PasswordHash: string(hash),
		Role:         models.RoleSeller,
	}
	if err := s.users.Create(ctx, seller); err != nil {
		return false, fmt.Errorf("failed to create demo seller: %w", err)
	}

	for _, p := range demoProducts() {
		p.Currency = models.DefaultCurrency
		p.CreatedBy = seller.ID
		if err := s.products.Create(ctx, &p); err != nil {
			return false, fmt.Errorf("failed to seed product %s: %w", p.Title, err)
		}
		zap.L().Info("seeded product", zap.String("title", p.Title), zap.String("id", p.ID))
	}
	return true, nil
}
