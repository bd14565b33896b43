// Package checkout drives the cart purchase flow: review, a simulated
// payment-processing phase, and success. Like the booking wizard, the relay
// submission is fire-and-forget and never gates the state machine.
package checkout

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"tumy/models"
	"tumy/services/relay"
	"tumy/store"
)

// TaxRate is the flat VAT applied to the cart subtotal.
const TaxRate = 0.16

// Step enumerates the checkout states in order.
type Step int

const (
	StepReview Step = iota
	StepProcessing
	StepSuccess
)

func (s Step) String() string {
	switch s {
	case StepReview:
		return "REVIEW"
	case StepProcessing:
		return "PROCESSING"
	case StepSuccess:
		return "SUCCESS"
	}
	return "UNKNOWN"
}

// Totals is the priced summary of the cart.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Config carries the timing knobs; tests inject short delays.
type Config struct {
	ProcessingDelay time.Duration
	CartClearDelay  time.Duration
	Now             func() time.Time
}

func (c *Config) normalize() {
	if c.Now == nil {
		c.Now = time.Now
	}
}

// Flow owns one user's checkout state over their cart register.
type Flow struct {
	mu      sync.Mutex
	cfg     Config
	cart    *store.Cart
	catalog *store.Catalog
	sink    relay.Sink
	step    Step
}

func New(cart *store.Cart, catalog *store.Catalog, sink relay.Sink, cfg Config) *Flow {
	cfg.normalize()
	return &Flow{
		cfg:     cfg,
		cart:    cart,
		catalog: catalog,
		sink:    sink,
		step:    StepReview,
	}
}

// Step returns the current step.
func (f *Flow) Step() Step {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

// Items resolves the cart's line items against the catalog, in cart order.
// Identifiers no longer present in the catalog are skipped.
func (f *Flow) Items() []models.Product {
	ids := f.cart.Items()
	out := make([]models.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := f.catalog.ProductByID(id); ok {
			out = append(out, p)
		}
	}
	return out
}

// ComputeTotals prices the cart: subtotal is the sum of line-item prices
// (duplicates count separately), tax is the flat rate on the subtotal.
func (f *Flow) ComputeTotals() Totals {
	var subtotal float64
	for _, item := range f.Items() {
		subtotal += item.Price
	}
	tax := subtotal * TaxRate
	return Totals{Subtotal: subtotal, Tax: tax, Total: subtotal + tax}
}

// RemoveItem deletes the line item at the given position. Only meaningful
// while reviewing; out-of-range indices are a no-op.
func (f *Flow) RemoveItem(index int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.step != StepReview {
		return
	}
	f.cart.RemoveAt(index)
}

// Checkout moves REVIEW -> PROCESSING, dispatches the order-intent record to
// the relay sink without waiting on it, and reaches SUCCESS after the fixed
// processing delay. A short while after SUCCESS the cart register is
// cleared. An empty cart (or a call outside REVIEW) is a guarded no-op.
func (f *Flow) Checkout(user models.UserProfile) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.step != StepReview {
		return
	}
	items := f.Items()
	if len(items) == 0 {
		return
	}

	descriptions := make([]string, len(items))
	var subtotal float64
	for i, item := range items {
		descriptions[i] = item.Name + " (KES " + strconv.FormatFloat(item.Price, 'f', -1, 64) + ")"
		subtotal += item.Price
	}
	tax := subtotal * TaxRate

	f.step = StepProcessing
	f.sink.Submit(relay.OrderRecord{
		Subject:          "New Order from " + user.Name,
		Type:             relay.TypeEcommerceOrder,
		CustomerName:     user.Name,
		CustomerLocation: user.Location,
		CustomerTier:     string(user.Tier),
		Items:            strings.Join(descriptions, ", "),
		Subtotal:         subtotal,
		Tax:              tax,
		TotalAmount:      subtotal + tax,
		OrderDate:        f.cfg.Now().Format("1/2/2006, 3:04:05 PM"),
	})
	time.AfterFunc(f.cfg.ProcessingDelay, f.finishProcessing)
}

// Done re-arms the flow at REVIEW after the success screen is dismissed; the
// caller navigates back to the marketplace since the cart is now empty. The
// clear is idempotent with the delayed one so dismissing early cannot leave
// purchased items behind.
func (f *Flow) Done() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.step != StepSuccess {
		return
	}
	f.cart.Clear()
	f.step = StepReview
}

func (f *Flow) finishProcessing() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.step != StepProcessing {
		return
	}
	f.step = StepSuccess
	time.AfterFunc(f.cfg.CartClearDelay, func() { f.cart.Clear() })
}
