package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"tumy/models"
	"tumy/services/checkout"
	"tumy/services/relay"
	"tumy/services/wizard"
	"tumy/store"
)

// Manager owns the in-memory session registry and the dependencies every
// session's flows are wired with.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	catalog     *store.Catalog
	sink        relay.Sink
	wizardCfg   wizard.Config
	checkoutCfg checkout.Config
	saveDelay   time.Duration
}

// NewManager builds a session registry. saveDelay is the simulated latency
// before a profile edit is applied.
func NewManager(cat *store.Catalog, sink relay.Sink, wizardCfg wizard.Config, checkoutCfg checkout.Config, saveDelay time.Duration) *Manager {
	return &Manager{
		sessions:    make(map[string]*Session),
		catalog:     cat,
		sink:        sink,
		wizardCfg:   wizardCfg,
		checkoutCfg: checkoutCfg,
		saveDelay:   saveDelay,
	}
}

// Create starts a fresh session seeded with the default profile.
func (m *Manager) Create() *Session {
	user := store.DefaultUser()
	cart := store.NewCart()
	sess := &Session{
		ID:       uuid.New().String(),
		user:     user,
		Wishlist: store.NewWishlist(),
		Cart:     cart,
		Browse:   newBrowse(),
		Wizard:   wizard.New(m.catalog.Providers(), m.sink, m.wizardCfg),
		Checkout: checkout.New(cart, m.catalog, m.sink, m.checkoutCfg),
		Chat:     newTranscript(user),
	}

	m.mu.Lock()
	m.sessions[sess.ID] = sess
	m.mu.Unlock()
	return sess
}

// Get looks up an existing session.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.sessions[id]
	return sess, ok
}

// Resolve returns the session for the given id, creating a new one when the
// id is empty or unknown.
func (m *Manager) Resolve(id string) *Session {
	if id != "" {
		if sess, ok := m.Get(id); ok {
			return sess
		}
	}
	return m.Create()
}

// UpdateProfile replaces the session user's name and location. The edit is
// forwarded to the relay sink immediately and applied after the simulated
// save latency, mirroring the submit-then-save flow of the client.
func (m *Manager) UpdateProfile(sess *Session, name, location string) {
	user := sess.User()
	m.sink.Submit(relay.ProfileUpdateRecord{
		Subject:          "Profile Update: " + user.Name,
		Type:             relay.TypeProfileUpdate,
		OriginalName:     user.Name,
		OriginalLocation: user.Location,
		NewName:          name,
		NewLocation:      location,
		UpdatedAt:        time.Now().Format("1/2/2006, 3:04:05 PM"),
	})
	time.AfterFunc(m.saveDelay, func() { sess.setUser(name, location) })
}

// RewardsSummary describes loyalty progress toward the next tier.
type RewardsSummary struct {
	Tier           models.LoyaltyTier `json:"tier"`
	Points         int                `json:"points"`
	NextTierPoints int                `json:"nextTierPoints"`
	Progress       float64            `json:"progress"` // percentage
}

// nextTierPoints is the fixed points target shown on the rewards view.
const nextTierPoints = 20000

// Rewards computes the loyalty progress for the session user.
func (m *Manager) Rewards(sess *Session) RewardsSummary {
	user := sess.User()
	return RewardsSummary{
		Tier:           user.Tier,
		Points:         user.Points,
		NextTierPoints: nextTierPoints,
		Progress:       float64(user.Points) / float64(nextTierPoints) * 100,
	}
}
