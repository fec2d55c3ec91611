package repositories

import (
	"context"
	"errors"
	"fmt"

	"handiva/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMContactRepository is a GORM implementation of ContactRepository.
type GORMContactRepository struct {
	db *gorm.DB
}

// NewGORMContactRepository creates a new instance of GORMContactRepository.
func NewGORMContactRepository(db *gorm.DB) *GORMContactRepository {
	return &GORMContactRepository{db: db}
}

// Create stores a new contact message. CreatedAt is filled in by GORM.
func (r *GORMContactRepository) Create(ctx context.Context, msg *models.ContactMessage) error {
	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(msg).Error; err != nil {
		return fmt.Errorf("failed to create contact message: %w", translateGORMError(err))
	}
	return nil
}

// GetByID retrieves a contact message by its ID.
func (r *GORMContactRepository) GetByID(ctx context.Context, id string) (*models.ContactMessage, error) {
	var msg models.ContactMessage
	if err := r.db.WithContext(ctx).First(&msg, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("contact message with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get contact message by ID %s: %w", id, err)
	}
	return &msg, nil
}
