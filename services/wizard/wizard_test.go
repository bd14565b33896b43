package wizard

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tumy/models"
	"tumy/services/relay"
)

// captureSink records every submitted record.
type captureSink struct {
	records []any
}

func (s *captureSink) Submit(record any) {
	s.records = append(s.records, record)
}

var fixedNow = time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)

func testProviders() []models.ServiceProvider {
	return []models.ServiceProvider{
		{ID: "prov1", Name: "James O.", Specialization: []models.ServiceCategory{models.CategoryVehicle}},
		{ID: "prov2", Name: "Sarah K.", Specialization: []models.ServiceCategory{models.CategoryProperty, models.CategoryLuxury}},
		{ID: "prov3", Name: "David M.", Specialization: []models.ServiceCategory{models.CategoryCustomization}},
	}
}

func testService() models.Service {
	return models.Service{ID: "s1", Title: "Ceramic Coating Elite", Price: 25000, Category: models.CategoryVehicle}
}

func testUser() models.UserProfile {
	return models.UserProfile{ID: "u_alex", Name: "Alex Kamau", Location: "Karen, Nairobi", Tier: models.TierPlatinum}
}

// newTestWizard uses hour-long delays so no real timer fires mid-test; the
// completion callbacks are invoked directly.
func newTestWizard(sink *captureSink) *Wizard {
	return New(testProviders(), sink, Config{
		ProbeDelay:      time.Hour,
		ProcessingDelay: time.Hour,
		Now:             func() time.Time { return fixedNow },
	})
}

func TestOpenResetsTransientState(t *testing.T) {
	w := newTestWizard(&captureSink{})
	w.Open(testService(), testUser())

	st := w.Snapshot()
	assert.Equal(t, StepDetail, st.Step)
	assert.Equal(t, "2024-03-15", st.SelectedDate)
	assert.Equal(t, 2024, st.Calendar.Year)
	assert.Equal(t, time.March, st.Calendar.Month)
	assert.Empty(t, st.TimeSlot)
	assert.False(t, st.PickAndDrop)
	assert.Equal(t, "Karen, Nairobi", st.Pickup)
	assert.Equal(t, "Karen, Nairobi", st.Dropoff)
	assert.Equal(t, AvailabilityChecking, st.Availability)
}

func TestOpenIsGuardedOutsideBrowsing(t *testing.T) {
	w := newTestWizard(&captureSink{})
	w.Open(testService(), testUser())

	other := models.Service{ID: "s2", Title: "Mobile Executive Wash"}
	w.Open(other, testUser())
	assert.Equal(t, "s1", w.Snapshot().Service.ID)
}

func TestBackReturnsToBrowsing(t *testing.T) {
	w := newTestWizard(&captureSink{})
	w.Open(testService(), testUser())
	w.Back()
	assert.Equal(t, StepBrowsing, w.Step())
}

func TestMonthGrid(t *testing.T) {
	// March 2024 starts on a Friday and has 31 days.
	g := GridFor(2024, time.March)
	assert.Equal(t, 5, g.LeadingBlanks)
	assert.Equal(t, 31, g.Days)

	// February in a leap year.
	g = GridFor(2024, time.February)
	assert.Equal(t, 29, g.Days)

	g = GridFor(2023, time.February)
	assert.Equal(t, 28, g.Days)
}

func TestIsPastDayIsDateOnly(t *testing.T) {
	assert.True(t, IsPastDay(2024, time.March, 14, fixedNow))
	assert.False(t, IsPastDay(2024, time.March, 15, fixedNow))
	assert.False(t, IsPastDay(2024, time.March, 16, fixedNow))
}

func TestSelectDateRejectsPastDays(t *testing.T) {
	w := newTestWizard(&captureSink{})
	w.Open(testService(), testUser())

	w.SelectDate(2024, time.March, 10)
	assert.Equal(t, "2024-03-15", w.Snapshot().SelectedDate)

	w.SelectDate(2024, time.March, 20)
	assert.Equal(t, "2024-03-20", w.Snapshot().SelectedDate)
}

func TestChangeMonthPagesWithoutTouchingDate(t *testing.T) {
	w := newTestWizard(&captureSink{})
	w.Open(testService(), testUser())

	w.ChangeMonth(1)
	st := w.Snapshot()
	assert.Equal(t, time.April, st.Calendar.Month)
	assert.Equal(t, "2024-03-15", st.SelectedDate)

	// December wraps into the next year.
	for i := 0; i < 9; i++ {
		w.ChangeMonth(1)
	}
	st = w.Snapshot()
	assert.Equal(t, 2025, st.Calendar.Year)
	assert.Equal(t, time.January, st.Calendar.Month)
}

func TestSelectTimeSlotIgnoresUnknownSlots(t *testing.T) {
	w := newTestWizard(&captureSink{})
	w.Open(testService(), testUser())

	w.SelectTimeSlot("03:33")
	assert.Empty(t, w.Snapshot().TimeSlot)

	w.SelectTimeSlot("10:30")
	assert.Equal(t, "10:30", w.Snapshot().TimeSlot)
}

func TestProbeResolvesForCurrentSelection(t *testing.T) {
	w := newTestWizard(&captureSink{})
	w.Open(testService(), testUser())

	w.mu.Lock()
	seq, date := w.probeSeq, w.selectedDate
	w.mu.Unlock()

	w.resolveProbe(seq, date)
	assert.Equal(t, AvailabilityAvailable, w.Availability())
}

func TestStaleProbeResultIsDiscarded(t *testing.T) {
	w := newTestWizard(&captureSink{})
	w.Open(testService(), testUser())

	w.mu.Lock()
	staleSeq, staleDate := w.probeSeq, w.selectedDate
	w.mu.Unlock()

	// Picking a new date supersedes the in-flight probe.
	w.SelectDate(2024, time.March, 20)
	w.resolveProbe(staleSeq, staleDate)
	assert.Equal(t, AvailabilityChecking, w.Availability())

	w.mu.Lock()
	seq, date := w.probeSeq, w.selectedDate
	w.mu.Unlock()
	w.resolveProbe(seq, date)
	assert.Equal(t, AvailabilityAvailable, w.Availability())
}

func TestProbeDoesNotLandAfterBack(t *testing.T) {
	w := newTestWizard(&captureSink{})
	w.Open(testService(), testUser())

	w.mu.Lock()
	seq, date := w.probeSeq, w.selectedDate
	w.mu.Unlock()

	w.Back()
	w.resolveProbe(seq, date)
	assert.Equal(t, AvailabilityChecking, w.Availability())
}

func TestConfirmWithoutSlotIsNoOp(t *testing.T) {
	sink := &captureSink{}
	w := newTestWizard(sink)
	w.Open(testService(), testUser())

	require.NoError(t, w.Confirm())
	assert.Equal(t, StepDetail, w.Step())
	assert.Empty(t, sink.records)
}

func TestConfirmRequiresAddressesWithPickAndDrop(t *testing.T) {
	sink := &captureSink{}
	w := newTestWizard(sink)
	w.Open(testService(), testUser())
	w.SelectTimeSlot("09:00")
	w.SetPickAndDrop(true)
	w.SetAddresses("", "")

	err := w.Confirm()
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Please enter pickup and drop-off addresses.", verr.Message)
	assert.Equal(t, StepDetail, w.Step())
	assert.Empty(t, sink.records)
}

func TestConfirmSubmitsAndConfirms(t *testing.T) {
	sink := &captureSink{}
	w := newTestWizard(sink)
	w.Open(testService(), testUser())
	w.SelectDate(2024, time.March, 20)
	w.SelectTimeSlot("14:30")

	require.NoError(t, w.Confirm())
	assert.Equal(t, StepSubmitting, w.Step())

	require.Len(t, sink.records, 1)
	rec, ok := sink.records[0].(relay.BookingRecord)
	require.True(t, ok)
	assert.Equal(t, "New Service Booking: Ceramic Coating Elite", rec.Subject)
	assert.Equal(t, relay.TypeServiceBooking, rec.Type)
	assert.Equal(t, "prov1", rec.ProviderID)
	assert.Equal(t, "NO", rec.PickAndDropService)
	assert.Equal(t, "N/A", rec.PickupAddress)
	assert.Equal(t, "Wed, Mar 20, 2024", rec.AppointmentDate)
	assert.Equal(t, "14:30", rec.AppointmentTime)
	assert.Equal(t, "3/15/2024, 10:30:00 AM", rec.BookingCreated)

	w.finishSubmission()
	assert.Equal(t, StepConfirmed, w.Step())

	w.BookAnother()
	assert.Equal(t, StepBrowsing, w.Step())
}

func TestConfirmCarriesPickAndDropAddresses(t *testing.T) {
	sink := &captureSink{}
	w := newTestWizard(sink)
	w.Open(testService(), testUser())
	w.SelectTimeSlot("08:00")
	w.SetPickAndDrop(true)
	w.SetAddresses("Karen Office", "Westlands Garage")

	require.NoError(t, w.Confirm())
	rec := sink.records[0].(relay.BookingRecord)
	assert.Equal(t, "YES", rec.PickAndDropService)
	assert.Equal(t, "Karen Office", rec.PickupAddress)
	assert.Equal(t, "Westlands Garage", rec.DropoffAddress)
}

func TestRelayFailureNeverBlocksConfirmation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	w := New(testProviders(), relay.NewClient(srv.URL), Config{
		ProbeDelay:      time.Hour,
		ProcessingDelay: time.Hour,
		Now:             func() time.Time { return fixedNow },
	})
	w.Open(testService(), testUser())
	w.SelectTimeSlot("09:00")

	require.NoError(t, w.Confirm())
	w.finishSubmission()
	assert.Equal(t, StepConfirmed, w.Step())
}

func TestProviderAssignment(t *testing.T) {
	w := newTestWizard(&captureSink{})
	w.Open(testService(), testUser())
	assert.Equal(t, "prov1", w.AssignedProvider().ID)
	w.Back()

	// No provider specializes in the category: fall back to the roster head.
	w2 := New(testProviders(), &captureSink{}, Config{Now: func() time.Time { return fixedNow }, ProbeDelay: time.Hour, ProcessingDelay: time.Hour})
	w2.Open(models.Service{ID: "sX", Title: "Mystery", Category: models.ServiceCategory("OTHER")}, testUser())
	assert.Equal(t, "prov1", w2.AssignedProvider().ID)
}
