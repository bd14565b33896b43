package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tumy/models"
)

func TestNewCatalogSeedsInventory(t *testing.T) {
	cat := NewCatalog()

	assert.Len(t, cat.Services(), 13)
	assert.Len(t, cat.Products(), 5)
	assert.Len(t, cat.Providers(), 3)
	assert.Len(t, cat.Reviews(), 3)

	svc, ok := cat.ServiceByID("s1")
	require.True(t, ok)
	assert.Equal(t, "Ceramic Coating Elite", svc.Title)
	assert.Equal(t, models.CategoryVehicle, svc.Category)

	_, ok = cat.ServiceByID("nope")
	assert.False(t, ok)
}

func TestAddServiceAppliesDefaultsAndPrepends(t *testing.T) {
	cat := NewCatalog()

	svc := cat.AddService(ServiceInput{Category: models.CategoryLuxury})

	assert.Equal(t, "Untitled Service", svc.Title)
	assert.Equal(t, "1 Hour", svc.Duration)
	assert.NotEmpty(t, svc.Image)
	assert.Equal(t, 5.0, svc.AverageRating)
	assert.Zero(t, svc.ReviewCount)
	assert.True(t, strings.HasPrefix(svc.ID, "s-"))

	// Newest entry surfaces first.
	assert.Equal(t, svc.ID, cat.Services()[0].ID)

	got, ok := cat.ServiceByID(svc.ID)
	require.True(t, ok)
	assert.Equal(t, svc, got)
}

func TestAddServiceKeepsProvidedFields(t *testing.T) {
	cat := NewCatalog()

	svc := cat.AddService(ServiceInput{
		Title:       "Helicopter Detailing",
		Description: "For the executive fleet.",
		Price:       500000,
		Category:    models.CategoryLuxury,
		Duration:    "2 Days",
		PremiumOnly: true,
	})

	assert.Equal(t, "Helicopter Detailing", svc.Title)
	assert.Equal(t, 500000.0, svc.Price)
	assert.Equal(t, "2 Days", svc.Duration)
	assert.True(t, svc.PremiumOnly)
}

func TestAddProductAppliesDefaults(t *testing.T) {
	cat := NewCatalog()

	prod := cat.AddProduct(ProductInput{})

	assert.Equal(t, "Untitled Product", prod.Name)
	assert.Equal(t, "General", prod.Category)
	assert.NotEmpty(t, prod.Image)
	assert.Equal(t, 5.0, prod.Rating)
	assert.True(t, strings.HasPrefix(prod.ID, "p-"))
	assert.Equal(t, prod.ID, cat.Products()[0].ID)
}

func TestIdentifierTokensNeverCollide(t *testing.T) {
	cat := NewCatalog()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		svc := cat.AddService(ServiceInput{})
		assert.False(t, seen[svc.ID], "duplicate id %s", svc.ID)
		seen[svc.ID] = true
	}
}

func TestSnapshotsAreCopies(t *testing.T) {
	cat := NewCatalog()

	services := cat.Services()
	services[0].Title = "mutated"

	fresh, ok := cat.ServiceByID(services[0].ID)
	require.True(t, ok)
	assert.NotEqual(t, "mutated", fresh.Title)
}
