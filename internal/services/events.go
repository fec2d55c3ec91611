package services

import "go.uber.org/zap"

// Event types published by the catalog.
const (
	EventProductCreated   = "product.created"
	EventContactSubmitted = "contact.submitted"
)

// EventPublisher delivers domain events to interested consumers.
type EventPublisher interface {
	Publish(eventType string, payload any) error
}

// publish sends an event if a publisher is configured. Delivery failures
// are logged and never fail the calling operation.
func publish(p EventPublisher, eventType string, payload any) {
	if p == nil {
		return
	}
	if err := p.Publish(eventType, payload); err != nil {
		zap.L().Warn("failed to publish event", zap.String("type", eventType), zap.Error(err))
	}
}
