package store

import (
	"fmt"
	"sync"
	"time"

	"tumy/models"
)

// Defaults applied by the admin builders when a field is left empty.
const (
	defaultServiceTitle = "Untitled Service"
	defaultProductName  = "Untitled Product"
	defaultDuration     = "1 Hour"
	defaultCategory     = "General"
	defaultRating       = 5.0

	defaultServiceImage = "https://images.unsplash.com/photo-1601362840469-51e4d8d58785?auto=format&fit=crop&q=80&w=400"
	defaultProductImage = "https://images.unsplash.com/photo-1621905252507-b35492cc74b4?auto=format&fit=crop&q=80&w=200"
)

// Catalog is the authoritative in-memory inventory of services, products,
// providers and reviews. Services and products are append-only: admin
// builders prepend new entries (newest first) and nothing is ever mutated or
// deleted in-session.
type Catalog struct {
	mu        sync.RWMutex
	services  []models.Service
	products  []models.Product
	providers []models.ServiceProvider
	reviews   []models.Review
	lastToken int64
}

// NewCatalog returns a catalog populated with the seed inventory.
func NewCatalog() *Catalog {
	return &Catalog{
		services:  seedServices(),
		products:  seedProducts(),
		providers: seedProviders(),
		reviews:   seedReviews(),
	}
}

// Services returns a snapshot of the service list in catalog order.
func (c *Catalog) Services() []models.Service {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Service, len(c.services))
	copy(out, c.services)
	return out
}

// Products returns a snapshot of the product list in catalog order.
func (c *Catalog) Products() []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Providers returns the provider roster in canonical listing order.
func (c *Catalog) Providers() []models.ServiceProvider {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.ServiceProvider, len(c.providers))
	copy(out, c.providers)
	return out
}

// Reviews returns the review list.
func (c *Catalog) Reviews() []models.Review {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Review, len(c.reviews))
	copy(out, c.reviews)
	return out
}

// ServiceByID looks up a service by identifier.
func (c *Catalog) ServiceByID(id string) (models.Service, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, s := range c.services {
		if s.ID == id {
			return s, true
		}
	}
	return models.Service{}, false
}

// ProductByID looks up a product by identifier.
func (c *Catalog) ProductByID(id string) (models.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// ProviderByID looks up a provider by identifier.
func (c *Catalog) ProviderByID(id string) (models.ServiceProvider, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.providers {
		if p.ID == id {
			return p, true
		}
	}
	return models.ServiceProvider{}, false
}

// ServiceInput carries the admin "new service" form. Every field is
// optional; defaults are documented on AddService.
type ServiceInput struct {
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Price       float64                `json:"price"`
	Category    models.ServiceCategory `json:"category"`
	Image       string                 `json:"image"`
	Duration    string                 `json:"duration"`
	PremiumOnly bool                   `json:"premiumOnly"`
}

// AddService builds a fully-populated service from a partial input and
// prepends it to the catalog. Defaults: title "Untitled Service", empty
// description, price 0, duration "1 Hour", a fixed placeholder image,
// rating seeded at 5.0 with zero reviews. Category and the premium flag are
// preserved as given. The identifier derives from a monotonically-increasing
// time-based token.
func (c *Catalog) AddService(in ServiceInput) models.Service {
	c.mu.Lock()
	defer c.mu.Unlock()

	svc := models.Service{
		ID:            fmt.Sprintf("s-%d", c.nextTokenLocked()),
		Title:         in.Title,
		Description:   in.Description,
		Price:         in.Price,
		Category:      in.Category,
		Image:         in.Image,
		Duration:      in.Duration,
		PremiumOnly:   in.PremiumOnly,
		AverageRating: defaultRating,
		ReviewCount:   0,
	}
	if svc.Title == "" {
		svc.Title = defaultServiceTitle
	}
	if svc.Image == "" {
		svc.Image = defaultServiceImage
	}
	if svc.Duration == "" {
		svc.Duration = defaultDuration
	}

	c.services = append([]models.Service{svc}, c.services...)
	return svc
}

// ProductInput carries the admin "new product" form; all fields optional.
type ProductInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
}

// AddProduct builds a fully-populated product from a partial input and
// prepends it to the catalog. Defaults: name "Untitled Product", empty
// description, price 0, category "General", a fixed placeholder image, and
// rating fixed at 5.0.
func (c *Catalog) AddProduct(in ProductInput) models.Product {
	c.mu.Lock()
	defer c.mu.Unlock()

	prod := models.Product{
		ID:          fmt.Sprintf("p-%d", c.nextTokenLocked()),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		Image:       in.Image,
		Rating:      defaultRating,
	}
	if prod.Name == "" {
		prod.Name = defaultProductName
	}
	if prod.Category == "" {
		prod.Category = defaultCategory
	}
	if prod.Image == "" {
		prod.Image = defaultProductImage
	}

	c.products = append([]models.Product{prod}, c.products...)
	return prod
}

// nextTokenLocked returns a strictly increasing millisecond token so that
// two rapid admin additions never collide on an identifier.
func (c *Catalog) nextTokenLocked() int64 {
	now := time.Now().UnixMilli()
	if now <= c.lastToken {
		now = c.lastToken + 1
	}
	c.lastToken = now
	return now
}
