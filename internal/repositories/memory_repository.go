package repositories

import (
	"context"
	"fmt"
	"sync"
	"time"

	"handiva/internal/models"

	"github.com/google/uuid"
)

// MemoryStore is an in-process implementation of every repository. It is
// selected with the memory:// connection string and backs local demos.
type MemoryStore struct {
	mu       sync.RWMutex
	products map[string]models.Product
	order    []string // product insertion order
	contacts map[string]models.ContactMessage
	users    map[string]models.User
	orders   map[string]models.Order
	now      func() time.Time
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		products: make(map[string]models.Product),
		contacts: make(map[string]models.ContactMessage),
		users:    make(map[string]models.User),
		orders:   make(map[string]models.Order),
		now:      time.Now,
	}
}

// Products returns the product repository view of the store.
func (s *MemoryStore) Products() ProductRepository { return memoryProducts{s} }

// Contacts returns the contact repository view of the store.
func (s *MemoryStore) Contacts() ContactRepository { return memoryContacts{s} }

// Users returns the user repository view of the store.
func (s *MemoryStore) Users() UserRepository { return memoryUsers{s} }

// Orders returns the order repository view of the store.
func (s *MemoryStore) Orders() OrderRepository { return memoryOrders{s} }

type memoryProducts struct{ s *MemoryStore }

func (r memoryProducts) List(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	limit := filter.EffectiveLimit()
	products := make([]models.Product, 0)
	for _, id := range r.s.order {
		p := r.s.products[id]
		if !filter.Matches(p) {
			continue
		}
		products = append(products, cloneProduct(p))
		if len(products) == limit {
			break
		}
	}
	return products, nil
}

func (r memoryProducts) GetByID(ctx context.Context, id string) (*models.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	product, ok := r.s.products[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
	}
	product = cloneProduct(product)
	return &product, nil
}

func (r memoryProducts) Create(ctx context.Context, product *models.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if _, exists := r.s.products[product.ID]; exists {
		return fmt.Errorf("product with ID %s: %w", product.ID, ErrDuplicateKey)
	}
	now := r.s.now()
	product.CreatedAt, product.UpdatedAt = now, now
	r.s.products[product.ID] = cloneProduct(*product)
	r.s.order = append(r.s.order, product.ID)
	return nil
}

// cloneProduct copies the slices so callers cannot mutate stored state.
func cloneProduct(p models.Product) models.Product {
	p.Images = append([]string(nil), p.Images...)
	p.Tags = append([]string(nil), p.Tags...)
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if p.Stock != nil {
		stock := *p.Stock
		p.Stock = &stock
	}
	return p
}

type memoryContacts struct{ s *MemoryStore }

func (r memoryContacts) Create(ctx context.Context, msg *models.ContactMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	msg.CreatedAt = r.s.now()
	r.s.contacts[msg.ID] = *msg
	return nil
}

func (r memoryContacts) GetByID(ctx context.Context, id string) (*models.ContactMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	msg, ok := r.s.contacts[id]
	if !ok {
		return nil, fmt.Errorf("contact message with ID %s: %w", id, ErrNotFound)
	}
	return &msg, nil
}

type memoryUsers struct{ s *MemoryStore }

func (r memoryUsers) Create(ctx context.Context, user *models.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Email == user.Email {
			return fmt.Errorf("user with email %s: %w", user.Email, ErrDuplicateKey)
		}
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.Role == "" {
		user.Role = models.RoleBuyer
	}
	now := r.s.now()
	user.CreatedAt, user.UpdatedAt = now, now
	r.s.users[user.ID] = *user
	return nil
}

func (r memoryUsers) GetByID(ctx context.Context, id string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	user, ok := r.s.users[id]
	if !ok {
		return nil, fmt.Errorf("user with ID %s: %w", id, ErrNotFound)
	}
	return &user, nil
}

func (r memoryUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user with email %s: %w", email, ErrNotFound)
}

type memoryOrders struct{ s *MemoryStore }

func (r memoryOrders) Create(ctx context.Context, order *models.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if order.Status == "" {
		order.Status = models.OrderPending
	}
	now := r.s.now()
	order.CreatedAt, order.UpdatedAt = now, now
	r.s.orders[order.ID] = *order
	return nil
}

func (r memoryOrders) GetByID(ctx context.Context, id string) (*models.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	order, ok := r.s.orders[id]
	if !ok {
		return nil, fmt.Errorf("order with ID %s: %w", id, ErrNotFound)
	}
	return &order, nil
}

func (r memoryOrders) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	order, ok := r.s.orders[id]
	if !ok {
		return fmt.Errorf("order with ID %s: %w", id, ErrNotFound)
	}
	order.Status = status
	order.UpdatedAt = r.s.now()
	r.s.orders[id] = order
	return nil
}
