package wizard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SBN-BookingService/internal/domain"
	"github.com/m04kA/SBN-BookingService/internal/pricing"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

var testNow = time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC) // среда

func newTestMachine() *Machine {
	return NewMachine(pricing.NewEngine(pricing.DefaultTables()), domain.DefaultAddOns, fixedClock{now: testNow})
}

func validContact() *ContactInput {
	return &ContactInput{
		CompanyName: "Tech Corp",
		ContactName: "Marie Dupont",
		Email:       "marie@techcorp.com",
		Phone:       "06 12 34 56 78",
	}
}

// advanceToContact проводит мастер через первые три шага
func advanceToContact(t *testing.T, m *Machine) {
	t.Helper()
	require.NoError(t, m.Advance(&ServiceTypeInput{ServiceType: domain.ServiceBureau}))
	require.NoError(t, m.Advance(&DetailsInput{Surface: 200, Frequency: domain.FrequencyHebdomadaire}))
	require.NoError(t, m.Advance(&ScheduleInput{Date: testNow.AddDate(0, 0, 1), TimeSlot: "08:00"}))
	require.Equal(t, StepContact, m.Current())
}

func TestMachine_Step1GateWithoutServiceType(t *testing.T) {
	m := newTestMachine()

	err := m.Advance(&ServiceTypeInput{})

	ve, ok := IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, msgServiceTypeRequired, ve.Fields["serviceType"])
	assert.Equal(t, StepServiceType, m.Current())
}

func TestMachine_RejectsInputOfAnotherStep(t *testing.T) {
	m := newTestMachine()

	err := m.Advance(&DetailsInput{Surface: 200, Frequency: domain.FrequencyUnique})

	assert.ErrorIs(t, err, ErrStepMismatch)
	assert.Equal(t, StepServiceType, m.Current())
}

func TestMachine_FullFlow(t *testing.T) {
	m := newTestMachine()
	advanceToContact(t, m)

	estimate, ok := m.Estimate()
	require.True(t, ok)
	assert.Equal(t, 400.0, estimate.TotalPrice)
	assert.Equal(t, 400.0, m.Draft().EstimatedPrice)

	var received *domain.Draft
	gateway := GatewayFunc(func(_ context.Context, d *domain.Draft) (*domain.Booking, error) {
		received = d
		return &domain.Booking{ID: "BK-1", Draft: *d, Status: domain.StatusPending}, nil
	})

	booking, err := m.Submit(context.Background(), gateway, validContact())
	require.NoError(t, err)

	assert.Equal(t, "BK-1", booking.ID)
	assert.Equal(t, StepSubmitted, m.Current())
	require.NotNil(t, received)
	assert.Equal(t, "Tech Corp", received.CompanyName)
	assert.Equal(t, 400.0, received.EstimatedPrice)
	assert.True(t, domain.IsSameDay(testNow.AddDate(0, 0, 1), received.Date))
}

func TestMachine_ContactIsCompletedBySubmit(t *testing.T) {
	m := newTestMachine()
	advanceToContact(t, m)

	err := m.Advance(validContact())

	assert.ErrorIs(t, err, ErrSubmitRequired)
	assert.Equal(t, StepContact, m.Current())
}

func TestMachine_SubmitFailureKeepsDraftEditable(t *testing.T) {
	m := newTestMachine()
	advanceToContact(t, m)

	calls := 0
	failing := GatewayFunc(func(context.Context, *domain.Draft) (*domain.Booking, error) {
		calls++
		return nil, errors.New("connection refused")
	})

	_, err := m.Submit(context.Background(), failing, validContact())
	require.ErrorIs(t, err, ErrSubmission)
	assert.Equal(t, 1, calls)
	assert.Equal(t, StepContact, m.Current())
	assert.Nil(t, m.Booking())

	// черновик можно исправить и отправить повторно вручную
	require.NoError(t, m.Back(StepDetails))
	require.NoError(t, m.Advance(&DetailsInput{Surface: 300, Frequency: domain.FrequencyUnique}))
	require.NoError(t, m.Advance(&ScheduleInput{Date: testNow, TimeSlot: "14:00"}))

	ok := GatewayFunc(func(_ context.Context, d *domain.Draft) (*domain.Booking, error) {
		return &domain.Booking{ID: "BK-2", Draft: *d, Status: domain.StatusPending}, nil
	})
	booking, err := m.Submit(context.Background(), ok, validContact())
	require.NoError(t, err)
	assert.Equal(t, 750.0, booking.EstimatedPrice)
}

func TestMachine_SubmitValidationNeverReachesGateway(t *testing.T) {
	m := newTestMachine()
	advanceToContact(t, m)

	gateway := GatewayFunc(func(context.Context, *domain.Draft) (*domain.Booking, error) {
		t.Fatal("gateway must not be called with invalid contact data")
		return nil, nil
	})

	contact := validContact()
	contact.Email = "not-an-email"
	_, err := m.Submit(context.Background(), gateway, contact)

	ve, ok := IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, msgEmailInvalid, ve.Fields["email"])
	assert.Equal(t, StepContact, m.Current())
}

func TestMachine_SubmittedIsFrozen(t *testing.T) {
	m := newTestMachine()
	advanceToContact(t, m)

	gateway := GatewayFunc(func(_ context.Context, d *domain.Draft) (*domain.Booking, error) {
		return &domain.Booking{ID: "BK-3", Draft: *d, Status: domain.StatusPending}, nil
	})
	_, err := m.Submit(context.Background(), gateway, validContact())
	require.NoError(t, err)

	assert.ErrorIs(t, m.Back(StepServiceType), ErrSubmitted)
	assert.ErrorIs(t, m.Advance(&ServiceTypeInput{ServiceType: domain.ServiceCommerce}), ErrSubmitted)
	_, err = m.Submit(context.Background(), gateway, validContact())
	assert.ErrorIs(t, err, ErrSubmitted)
}

func TestMachine_Back(t *testing.T) {
	m := newTestMachine()
	require.NoError(t, m.Advance(&ServiceTypeInput{ServiceType: domain.ServiceCommerce}))
	require.NoError(t, m.Advance(&DetailsInput{Surface: 50, Frequency: domain.FrequencyMensuel}))

	assert.ErrorIs(t, m.Back(StepSchedule), ErrCannotGoBack)
	assert.ErrorIs(t, m.Back(StepContact), ErrCannotGoBack)

	require.NoError(t, m.Back(StepServiceType))
	assert.Equal(t, StepServiceType, m.Current())

	// вперед только через повторную проверку шага
	assert.ErrorIs(t, m.Advance(&ScheduleInput{Date: testNow, TimeSlot: "08:00"}), ErrStepMismatch)
	assert.Equal(t, domain.FrequencyMensuel, m.Draft().Frequency)
}

func TestMachine_PriceFollowsInputs(t *testing.T) {
	m := newTestMachine()

	_, ok := m.Estimate()
	assert.False(t, ok)

	require.NoError(t, m.Advance(&ServiceTypeInput{ServiceType: domain.ServiceIndustriel}))
	require.NoError(t, m.Advance(&DetailsInput{
		Surface:            100,
		Frequency:          domain.FrequencyUnique,
		AdditionalServices: []string{"vitres", "tapis"},
	}))
	assert.Equal(t, 510.0, m.Draft().EstimatedPrice)

	require.NoError(t, m.Back(StepServiceType))
	require.NoError(t, m.Advance(&ServiceTypeInput{ServiceType: domain.ServiceBureau}))
	assert.Equal(t, 360.0, m.Draft().EstimatedPrice)
}

func TestMachine_SnapshotRoundTrip(t *testing.T) {
	m := newTestMachine()
	advanceToContact(t, m)

	restored := newTestMachine()
	require.NoError(t, restored.Restore(m.Snapshot()))

	assert.Equal(t, m.Current(), restored.Current())
	assert.Equal(t, m.Draft(), restored.Draft())
}

func TestMachine_RestoreRejectsInvalidSnapshot(t *testing.T) {
	m := newTestMachine()

	assert.ErrorIs(t, m.Restore(Snapshot{Step: 9}), ErrInvalidSnapshot)
	assert.ErrorIs(t, m.Restore(Snapshot{Step: StepSubmitted}), ErrInvalidSnapshot)
}

func TestParseStep(t *testing.T) {
	step, err := ParseStep("details")
	require.NoError(t, err)
	assert.Equal(t, StepDetails, step)

	step, err = ParseStep("3")
	require.NoError(t, err)
	assert.Equal(t, StepSchedule, step)

	_, err = ParseStep("payment")
	assert.ErrorIs(t, err, ErrUnknownStep)

	_, err = ParseStep("0")
	assert.ErrorIs(t, err, ErrUnknownStep)
}
