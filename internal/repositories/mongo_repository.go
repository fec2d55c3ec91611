package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"handiva/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names used in the Mongo database.
const (
	ProductsCollection = "products"
	UsersCollection    = "users"
	OrdersCollection   = "orders"
	ContactsCollection = "contacts"
)

// MongoStore implements the repositories on top of a Mongo database.
// Documents use string UUIDs as _id so identifiers look the same on every
// backend.
type MongoStore struct {
	db  *mongo.Database
	now func() time.Time
}

// NewMongoStore creates a MongoStore over db.
func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db, now: time.Now}
}

// EnsureIndexes creates the text index used by product search and the
// unique index on user email.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.db.Collection(ProductsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "title", Value: "text"},
			{Key: "description", Value: "text"},
			{Key: "material", Value: "text"},
			{Key: "category", Value: "text"},
			{Key: "tags", Value: "text"},
		},
		Options: options.Index().SetName("product_text"),
	})
	if err != nil {
		return fmt.Errorf("failed to create product text index: %w", err)
	}
	_, err = s.db.Collection(UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("user_email").SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create user email index: %w", err)
	}
	return nil
}

// Products returns the product repository view of the store.
func (s *MongoStore) Products() ProductRepository { return mongoProducts{s} }

// Contacts returns the contact repository view of the store.
func (s *MongoStore) Contacts() ContactRepository { return mongoContacts{s} }

// Users returns the user repository view of the store.
func (s *MongoStore) Users() UserRepository { return mongoUsers{s} }

// Orders returns the order repository view of the store.
func (s *MongoStore) Orders() OrderRepository { return mongoOrders{s} }

// mongoProductFilter translates f into a Mongo query document.
func mongoProductFilter(f ProductFilter) bson.M {
	filter := bson.M{}
	if f.Material != "" {
		filter["material"] = f.Material
	}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.TelanganaOnly {
		filter["telangana"] = true
	}
	if f.Search != "" {
		filter["$text"] = bson.M{"$search": f.Search}
	}
	if f.MinPrice != nil || f.MaxPrice != nil {
		price := bson.M{}
		if f.MinPrice != nil {
			price["$gte"] = *f.MinPrice
		}
		if f.MaxPrice != nil {
			price["$lte"] = *f.MaxPrice
		}
		filter["price"] = price
	}
	return filter
}

func mongoInsertError(what string, err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("failed to create %s: %w: %v", what, ErrDuplicateKey, err)
	}
	return fmt.Errorf("failed to create %s: %w", what, err)
}

type mongoProducts struct{ s *MongoStore }

func (r mongoProducts) List(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	opts := options.Find().SetLimit(int64(filter.EffectiveLimit()))
	cursor, err := r.s.db.Collection(ProductsCollection).Find(ctx, mongoProductFilter(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	products := make([]models.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	return products, nil
}

func (r mongoProducts) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := r.s.db.Collection(ProductsCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

func (r mongoProducts) Create(ctx context.Context, product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	now := r.s.now()
	product.CreatedAt, product.UpdatedAt = now, now
	if _, err := r.s.db.Collection(ProductsCollection).InsertOne(ctx, product); err != nil {
		return mongoInsertError("product", err)
	}
	return nil
}

type mongoContacts struct{ s *MongoStore }

func (r mongoContacts) Create(ctx context.Context, msg *models.ContactMessage) error {
	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	msg.CreatedAt = r.s.now()
	if _, err := r.s.db.Collection(ContactsCollection).InsertOne(ctx, msg); err != nil {
		return mongoInsertError("contact message", err)
	}
	return nil
}

func (r mongoContacts) GetByID(ctx context.Context, id string) (*models.ContactMessage, error) {
	var msg models.ContactMessage
	err := r.s.db.Collection(ContactsCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&msg)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("contact message with ID %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contact message by ID %s: %w", id, err)
	}
	return &msg, nil
}

type mongoUsers struct{ s *MongoStore }

func (r mongoUsers) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.Role == "" {
		user.Role = models.RoleBuyer
	}
	now := r.s.now()
	user.CreatedAt, user.UpdatedAt = now, now
	if _, err := r.s.db.Collection(UsersCollection).InsertOne(ctx, user); err != nil {
		return mongoInsertError("user", err)
	}
	return nil
}

func (r mongoUsers) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"_id": id}, "ID "+id)
}

func (r mongoUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email}, "email "+email)
}

func (r mongoUsers) findOne(ctx context.Context, filter bson.M, desc string) (*models.User, error) {
	var user models.User
	err := r.s.db.Collection(UsersCollection).FindOne(ctx, filter).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("user with %s: %w", desc, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by %s: %w", desc, err)
	}
	return &user, nil
}

type mongoOrders struct{ s *MongoStore }

func (r mongoOrders) Create(ctx context.Context, order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if order.Status == "" {
		order.Status = models.OrderPending
	}
	now := r.s.now()
	order.CreatedAt, order.UpdatedAt = now, now
	if _, err := r.s.db.Collection(OrdersCollection).InsertOne(ctx, order); err != nil {
		return mongoInsertError("order", err)
	}
	return nil
}

func (r mongoOrders) GetByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	err := r.s.db.Collection(OrdersCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("order with ID %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order by ID %s: %w", id, err)
	}
	return &order, nil
}

func (r mongoOrders) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) error {
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": r.s.now()}}
	res, err := r.s.db.Collection(OrdersCollection).UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("order with ID %s: %w", id, ErrNotFound)
	}
	return nil
}
