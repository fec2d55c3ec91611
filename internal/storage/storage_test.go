package storage

import (
	"context"
	"fmt"
	"testing"

	"handiva/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenMemory(t *testing.T) {
	s, err := Open(context.Background(), "memory://")
	require.NoError(t, err)
	defer s.Close(context.Background())

	assert.Equal(t, "memory", s.Backend)
	assert.NoError(t, s.Ping(context.Background()))

	p := &models.Product{Title: "Jute Bag", Price: 40}
	require.NoError(t, s.Products.Create(context.Background(), p))
	got, err := s.Products.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jute Bag", got.Title)
}

func TestOpenSQLiteMigratesSchema(t *testing.T) {
	dsn := fmt.Sprintf("sqlite://file:%s?mode=memory&cache=shared", uuid.NewString())
	s, err := Open(context.Background(), dsn)
	require.NoError(t, err)
	defer s.Close(context.Background())

	assert.Equal(t, "sqlite", s.Backend)
	msg := &models.ContactMessage{Name: "Ravi", Message: "hello"}
	require.NoError(t, s.Contacts.Create(context.Background(), msg))
	_, err = s.Contacts.GetByID(context.Background(), msg.ID)
	assert.NoError(t, err)
}

func TestOpenRejectsUnknownScheme(t *testing.T) {
	_, err := Open(context.Background(), "redis://localhost:6379")
	assert.ErrorContains(t, err, "unsupported scheme")

	_, err = Open(context.Background(), "handiva.db")
	assert.ErrorContains(t, err, "no scheme")
}

func TestMongoDatabaseName(t *testing.T) {
	name, err := mongoDatabaseName("mongodb://127.0.0.1:27017/handiva")
	require.NoError(t, err)
	assert.Equal(t, "handiva", name)

	name, err = mongoDatabaseName("mongodb+srv://user:pw@cluster.example.net/?retryWrites=true")
	require.NoError(t, err)
	assert.Equal(t, DefaultMongoDatabase, name)

	name, err = mongoDatabaseName("mongodb://localhost/crafts")
	require.NoError(t, err)
	assert.Equal(t, "crafts", name)
}

func TestRedact(t *testing.T) {
	assert.Equal(t, "postgres://app:xxxxx@db:5432/handiva", redact("postgres://app:secret@db:5432/handiva"))
	assert.Equal(t, "memory://", redact("memory://"))
}
