package services

import (
	"context"

	"handiva/internal/models"
	"handiva/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// ContactService stores messages sent through the tribal contact form.
type ContactService struct {
	repo     repositories.ContactRepository
	events   EventPublisher
	validate *validator.Validate
}

// NewContactService creates a new ContactService. events may be nil.
func NewContactService(repo repositories.ContactRepository, events EventPublisher) *ContactService {
	return &ContactService{
		repo:     repo,
		events:   events,
		validate: validator.New(),
	}
}

// ContactInput is a contact form submission.
type ContactInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email"`
	Message string `json:"message" validate:"required"`
	Region  string `json:"region"`
}

// SubmitContact stores a contact message and notifies the liaison queue.
func (s *ContactService) SubmitContact(ctx context.Context, in ContactInput) (*models.ContactMessage, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, invalid("Missing fields")
	}

	msg := &models.ContactMessage{
		Name:    in.Name,
		Email:   in.Email,
		Message: in.Message,
		Region:  in.Region,
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, err
	}

	publish(s.events, EventContactSubmitted, map[string]any{
		"id":     msg.ID,
		"name":   msg.Name,
		"email":  msg.Email,
		"region": msg.Region,
	})
	return msg, nil
}

// GetContact retrieves a stored contact message.
func (s *ContactService) GetContact(ctx context.Context, id string) (*models.ContactMessage, error) {
	if !validID(id) {
		return nil, ErrInvalidID
	}
	return s.repo.GetByID(ctx, id)
}
