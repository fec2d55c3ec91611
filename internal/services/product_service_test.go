package services_test

import (
	"context"
	"fmt"
	"testing"

	"handiva/internal/models"
	"handiva/internal/repositories"
	"handiva/internal/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductService_ListProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)
	ctx := context.Background()

	expected := []models.Product{
		{ID: uuid.NewString(), Title: "Wool Shawl", Price: 20, Material: "wool"},
	}
	minPrice, maxPrice := 10.0, 50.0
	wantFilter := repositories.ProductFilter{
		Material: "wool",
		MinPrice: &minPrice,
		MaxPrice: &maxPrice,
		Limit:    repositories.MaxListResults,
	}
	mockRepo.On("List", ctx, wantFilter).Return(expected, nil).Once()

	products, err := service.ListProducts(ctx, services.ProductQuery{Material: "wool", MinPrice: "10", MaxPrice: "50"})
	assert.NoError(t, err)
	assert.Equal(t, expected, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_ListProductsInvalidPrice(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	_, err := service.ListProducts(context.Background(), services.ProductQuery{MaxPrice: "lots"})
	assert.True(t, services.IsClientError(err))
	mockRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestProductService_ListProductsStoreError(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	mockRepo.On("List", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("connection reset")).Once()
	_, err := service.ListProducts(context.Background(), services.ProductQuery{})
	assert.Error(t, err)
	assert.False(t, services.IsClientError(err))
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductByID(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)
	ctx := context.Background()

	id := uuid.NewString()
	expectedProduct := &models.Product{ID: id, Title: "Jute Bag", Price: 40}

	// Test successful retrieval
	mockRepo.On("GetByID", ctx, id).Return(expectedProduct, nil).Once()
	product, err := service.GetProductByID(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, expectedProduct, product)

	// Test product not found
	missing := uuid.NewString()
	mockRepo.On("GetByID", ctx, missing).Return(nil, fmt.Errorf("product with ID %s: %w", missing, repositories.ErrNotFound)).Once()
	product, err = service.GetProductByID(ctx, missing)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.Nil(t, product)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductByIDMalformed(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	for _, id := range []string{"", "42", "64b7f0c2e13a4f0012345678", "{" + uuid.NewString() + "}"} {
		_, err := service.GetProductByID(context.Background(), id)
		assert.ErrorIs(t, err, services.ErrInvalidID, "id %q", id)
	}
	mockRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	publisher := new(MockPublisher)
	service := services.NewProductService(mockRepo, publisher)
	ctx := context.Background()

	mockRepo.On("Create", ctx, mock.AnythingOfType("*models.Product")).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Product).ID = "generated-id"
	}).Return(nil).Once()
	publisher.On("Publish", services.EventProductCreated, mock.Anything).Return(nil).Once()

	product, err := service.CreateProduct(ctx, services.CreateProductInput{
		Title:     "Shawl",
		Price:     500.0,
		Material:  "wool",
		Telangana: "true",
	})
	require.NoError(t, err)
	assert.Equal(t, "generated-id", product.ID)
	assert.Equal(t, "Shawl", product.Title)
	assert.Equal(t, 500.0, product.Price)
	assert.Equal(t, "INR", product.Currency)
	assert.True(t, product.Telangana)
	assert.Nil(t, product.Stock)
	assert.NotNil(t, product.Tags)
	assert.Empty(t, product.Tags)
	mockRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestProductService_CreateProductCoercion(t *testing.T) {
	tests := []struct {
		name      string
		price     any
		telangana any
		wantPrice float64
		wantFlag  bool
	}{
		{"numeric string price", "750", nil, 750, false},
		{"telangana false string", 10.0, "false", 10, false},
		{"telangana json bool is not the string", 10.0, true, 10, false},
		{"telangana mixed case", 10.0, "True", 10, false},
		{"telangana exact", 10.0, "true", 10, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockProductRepository)
			service := services.NewProductService(mockRepo, nil)
			mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

			product, err := service.CreateProduct(context.Background(), services.CreateProductInput{
				Title:     "Basket",
				Price:     tt.price,
				Telangana: tt.telangana,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantPrice, product.Price)
			assert.Equal(t, tt.wantFlag, product.Telangana)
		})
	}
}

func TestProductService_CreateProductRejected(t *testing.T) {
	tests := []struct {
		name    string
		input   services.CreateProductInput
		message string
	}{
		{"empty title", services.CreateProductInput{Title: "", Price: 500.0}, "Title and price are required"},
		{"missing price", services.CreateProductInput{Title: "Shawl"}, "Title and price are required"},
		{"zero price", services.CreateProductInput{Title: "Shawl", Price: 0.0}, "Title and price are required"},
		{"blank price", services.CreateProductInput{Title: "Shawl", Price: "  "}, "Title and price are required"},
		{"non-numeric price", services.CreateProductInput{Title: "Shawl", Price: "cheap"}, "price must be a number"},
		{"boolean price", services.CreateProductInput{Title: "Shawl", Price: true}, "price must be a number"},
		{"negative price", services.CreateProductInput{Title: "Shawl", Price: -5.0}, "price must be greater than zero"},
		{"bad creator", services.CreateProductInput{Title: "Shawl", Price: 5.0, CreatedBy: "me"}, "createdBy must be a user id"},
		{"object title", services.CreateProductInput{Title: map[string]any{"en": "Shawl"}, Price: 5.0}, "title must be a string"},
		{"array title", services.CreateProductInput{Title: []any{"Shawl"}, Price: 5.0}, "title must be a string"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockProductRepository)
			service := services.NewProductService(mockRepo, nil)

			product, err := service.CreateProduct(context.Background(), tt.input)
			assert.Nil(t, product)
			require.Error(t, err)
			assert.True(t, services.IsClientError(err))
			assert.Equal(t, tt.message, err.Error())
			mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestProductService_CreateProductScalarTitle(t *testing.T) {
	for _, tt := range []struct {
		title any
		want  string
	}{
		{123.0, "123"},
		{true, "true"},
	} {
		mockRepo := new(MockProductRepository)
		service := services.NewProductService(mockRepo, nil)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Product")).Return(nil).Once()

		product, err := service.CreateProduct(context.Background(), services.CreateProductInput{Title: tt.title, Price: 5.0})
		require.NoError(t, err)
		assert.Equal(t, tt.want, product.Title)
		mockRepo.AssertExpectations(t)
	}
}

func TestProductService_CreateProductStoreError(t *testing.T) {
	mockRepo := new(MockProductRepository)
	publisher := new(MockPublisher)
	service := services.NewProductService(mockRepo, publisher)

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(fmt.Errorf("database error")).Once()
	_, err := service.CreateProduct(context.Background(), services.CreateProductInput{Title: "Shawl", Price: 500.0})
	assert.ErrorContains(t, err, "database error")
	assert.False(t, services.IsClientError(err))
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestProductService_CreateProductPublishFailureIgnored(t *testing.T) {
	mockRepo := new(MockProductRepository)
	publisher := new(MockPublisher)
	service := services.NewProductService(mockRepo, publisher)

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	publisher.On("Publish", services.EventProductCreated, mock.Anything).Return(fmt.Errorf("broker down")).Once()

	product, err := service.CreateProduct(context.Background(), services.CreateProductInput{Title: "Shawl", Price: 500.0})
	assert.NoError(t, err)
	assert.NotNil(t, product)
	publisher.AssertExpectations(t)
}
