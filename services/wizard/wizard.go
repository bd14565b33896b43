// Package wizard drives the booking flow: service detail, schedule
// selection, submission and confirmation. The flow is linear with one back
// edge (DETAIL -> BROWSING) and one reset edge (CONFIRMED -> BROWSING); no
// other transitions exist.
package wizard

import (
	"sync"
	"time"

	"tumy/models"
	"tumy/services/relay"
)

// Step enumerates the wizard states in order.
type Step int

const (
	StepBrowsing Step = iota
	StepDetail
	StepSubmitting
	StepConfirmed
)

func (s Step) String() string {
	switch s {
	case StepBrowsing:
		return "BROWSING"
	case StepDetail:
		return "DETAIL"
	case StepSubmitting:
		return "SUBMITTING"
	case StepConfirmed:
		return "CONFIRMED"
	}
	return "UNKNOWN"
}

// Availability is the provider-availability probe state.
type Availability string

const (
	AvailabilityChecking  Availability = "CHECKING"
	AvailabilityAvailable Availability = "AVAILABLE"
	// A real probe backend may report BUSY; the simulated probe never does.
	AvailabilityBusy Availability = "BUSY"
)

// TimeSlots is the fixed daily slot grid offered for scheduling.
var TimeSlots = []string{"08:00", "09:00", "10:30", "13:00", "14:30", "16:00", "17:30"}

// Config carries the timing knobs. Tests inject short delays and a fixed
// clock.
type Config struct {
	ProbeDelay      time.Duration
	ProcessingDelay time.Duration
	Now             func() time.Time
}

func (c *Config) normalize() {
	if c.Now == nil {
		c.Now = time.Now
	}
}

// Wizard owns one user's transient booking state. All methods are safe for
// concurrent use; timer callbacks re-check the state they were started for
// so stale resolutions never land.
type Wizard struct {
	mu        sync.Mutex
	cfg       Config
	sink      relay.Sink
	providers []models.ServiceProvider

	step    Step
	service models.Service
	user    models.UserProfile

	selectedDate   time.Time
	viewYear       int
	viewMonth      time.Month
	timeSlot       string
	pickAndDrop    bool
	pickupAddress  string
	dropoffAddress string

	availability Availability
	// probeSeq keys the pending availability probe; a resolution whose
	// sequence or date no longer matches is discarded.
	probeSeq uint64
}

// New builds a wizard in BROWSING over the given provider roster.
func New(providers []models.ServiceProvider, sink relay.Sink, cfg Config) *Wizard {
	cfg.normalize()
	return &Wizard{
		cfg:       cfg,
		sink:      sink,
		providers: providers,
		step:      StepBrowsing,
	}
}

// Open moves BROWSING -> DETAIL for the given service, resetting every
// transient selection: date defaults to today, the calendar view to the
// month containing today, the time slot is cleared, pick-and-drop is off,
// both addresses default to the user's profile location, and an
// availability probe starts in CHECKING. A no-op outside BROWSING.
func (w *Wizard) Open(svc models.Service, user models.UserProfile) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step != StepBrowsing {
		return
	}

	today := w.cfg.Now()
	w.step = StepDetail
	w.service = svc
	w.user = user
	w.selectedDate = dateOnly(today)
	w.viewYear = today.Year()
	w.viewMonth = today.Month()
	w.timeSlot = ""
	w.pickAndDrop = false
	w.pickupAddress = user.Location
	w.dropoffAddress = user.Location
	w.startProbeLocked()
}

// Back moves DETAIL -> BROWSING. Any pending probe becomes stale.
func (w *Wizard) Back() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step != StepDetail {
		return
	}
	w.step = StepBrowsing
	w.probeSeq++
}

// BookAnother moves CONFIRMED -> BROWSING for a fresh flow.
func (w *Wizard) BookAnother() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step != StepConfirmed {
		return
	}
	w.step = StepBrowsing
}

// SelectDate picks a calendar day and restarts the availability probe keyed
// to it. Past days are disabled cells in the UI, so selecting one is a
// guarded no-op, as is any call outside DETAIL.
func (w *Wizard) SelectDate(year int, month time.Month, day int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step != StepDetail {
		return
	}
	if IsPastDay(year, month, day, w.cfg.Now()) {
		return
	}
	d := time.Date(year, month, day, 0, 0, 0, 0, w.cfg.Now().Location())
	if sameDay(d, w.selectedDate) {
		return
	}
	w.selectedDate = d
	w.startProbeLocked()
}

// ChangeMonth pages the calendar view without touching the selected date.
func (w *Wizard) ChangeMonth(delta int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step != StepDetail {
		return
	}
	d := time.Date(w.viewYear, w.viewMonth, 1, 0, 0, 0, 0, time.UTC).AddDate(0, delta, 0)
	w.viewYear = d.Year()
	w.viewMonth = d.Month()
}

// SelectTimeSlot picks one of the fixed slots; unknown slots are ignored.
func (w *Wizard) SelectTimeSlot(slot string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step != StepDetail {
		return
	}
	for _, s := range TimeSlots {
		if s == slot {
			w.timeSlot = slot
			return
		}
	}
}

// SetPickAndDrop toggles the pick-and-drop add-on.
func (w *Wizard) SetPickAndDrop(on bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step != StepDetail {
		return
	}
	w.pickAndDrop = on
}

// SetAddresses overrides the pickup and drop-off addresses.
func (w *Wizard) SetAddresses(pickup, dropoff string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step != StepDetail {
		return
	}
	w.pickupAddress = pickup
	w.dropoffAddress = dropoff
}

// Confirm submits the booking. Without a selected time slot (or outside
// DETAIL) it is a guarded no-op. With pick-and-drop enabled, empty addresses
// reject synchronously with ErrMissingAddresses and no transition. Otherwise
// the wizard enters SUBMITTING, dispatches the booking-intent record to the
// relay sink without waiting on it, and reaches CONFIRMED after the fixed
// processing delay regardless of the sink's outcome.
func (w *Wizard) Confirm() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step != StepDetail || w.timeSlot == "" {
		return nil
	}
	if w.pickAndDrop && (w.pickupAddress == "" || w.dropoffAddress == "") {
		return ErrMissingAddresses
	}

	w.step = StepSubmitting
	w.sink.Submit(w.bookingRecordLocked())
	time.AfterFunc(w.cfg.ProcessingDelay, w.finishSubmission)
	return nil
}

// AssignedProvider returns the provider deterministically matched to the
// selected service: the first roster entry specializing in its category,
// falling back to the first provider.
func (w *Wizard) AssignedProvider() models.ServiceProvider {
	w.mu.Lock()
	defer w.mu.Unlock()
	return assignProviderLocked(w.providers, w.service.Category)
}

func assignProviderLocked(providers []models.ServiceProvider, category models.ServiceCategory) models.ServiceProvider {
	for _, p := range providers {
		if p.Specializes(category) {
			return p
		}
	}
	if len(providers) > 0 {
		return providers[0]
	}
	return models.ServiceProvider{}
}

func (w *Wizard) bookingRecordLocked() relay.BookingRecord {
	provider := assignProviderLocked(w.providers, w.service.Category)
	pickup, dropoff, flag := "N/A", "N/A", "NO"
	if w.pickAndDrop {
		pickup, dropoff, flag = w.pickupAddress, w.dropoffAddress, "YES"
	}
	return relay.BookingRecord{
		Subject:            "New Service Booking: " + w.service.Title,
		Type:               relay.TypeServiceBooking,
		ServiceID:          w.service.ID,
		ServiceTitle:       w.service.Title,
		Price:              w.service.Price,
		PickAndDropService: flag,
		PickupAddress:      pickup,
		DropoffAddress:     dropoff,
		ProviderID:         provider.ID,
		ProviderName:       provider.Name,
		AppointmentDate:    w.selectedDate.Format("Mon, Jan 2, 2006"),
		AppointmentTime:    w.timeSlot,
		CustomerName:       w.user.Name,
		CustomerLocation:   w.user.Location,
		CustomerTier:       string(w.user.Tier),
		BookingCreated:     w.cfg.Now().Format("1/2/2006, 3:04:05 PM"),
	}
}

func (w *Wizard) finishSubmission() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step != StepSubmitting {
		return
	}
	w.step = StepConfirmed
}

// startProbeLocked begins an availability probe keyed to the current date.
func (w *Wizard) startProbeLocked() {
	w.availability = AvailabilityChecking
	w.probeSeq++
	seq := w.probeSeq
	date := w.selectedDate
	time.AfterFunc(w.cfg.ProbeDelay, func() { w.resolveProbe(seq, date) })
}

// resolveProbe lands a probe result unless it has been superseded: the
// wizard left DETAIL, a newer probe started, or the selected date changed.
func (w *Wizard) resolveProbe(seq uint64, date time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step != StepDetail || seq != w.probeSeq || !sameDay(date, w.selectedDate) {
		return
	}
	w.availability = AvailabilityAvailable
}

// State is a read-only snapshot of the wizard for rendering.
type State struct {
	Step         Step                   `json:"step"`
	StepName     string                 `json:"stepName"`
	Service      models.Service         `json:"service"`
	Provider     models.ServiceProvider `json:"provider"`
	SelectedDate string                 `json:"selectedDate"` // YYYY-MM-DD
	Calendar     MonthGrid              `json:"calendar"`
	TimeSlot     string                 `json:"timeSlot,omitempty"`
	TimeSlots    []string               `json:"timeSlots"`
	PickAndDrop  bool                   `json:"pickAndDrop"`
	Pickup       string                 `json:"pickupAddress"`
	Dropoff      string                 `json:"dropoffAddress"`
	Availability Availability           `json:"availability"`
}

// Snapshot returns the current state.
func (w *Wizard) Snapshot() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	st := State{
		Step:         w.step,
		StepName:     w.step.String(),
		TimeSlot:     w.timeSlot,
		TimeSlots:    TimeSlots,
		PickAndDrop:  w.pickAndDrop,
		Pickup:       w.pickupAddress,
		Dropoff:      w.dropoffAddress,
		Availability: w.availability,
	}
	if w.step != StepBrowsing {
		st.Service = w.service
		st.Provider = assignProviderLocked(w.providers, w.service.Category)
		st.SelectedDate = w.selectedDate.Format("2006-01-02")
		st.Calendar = GridFor(w.viewYear, w.viewMonth)
	}
	return st
}

// Step returns the current step.
func (w *Wizard) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// Availability returns the probe status.
func (w *Wizard) Availability() Availability {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.availability
}
