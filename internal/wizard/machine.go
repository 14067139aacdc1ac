package wizard

import (
	"context"
	"fmt"

	"github.com/m04kA/SBN-BookingService/internal/domain"
	"github.com/m04kA/SBN-BookingService/internal/pricing"
)

// Machine конечный автомат мастера бронирования
// ServiceType → Details → Schedule → Contact → Submitted, строго по порядку.
// Назад можно вернуться на любой пройденный шаг без повторной проверки,
// вперед только через Advance с полями текущего шага.
type Machine struct {
	engine  *pricing.Engine
	addOns  []domain.AddOn
	clock   TimeProvider
	current Step
	draft   domain.Draft
	booking *domain.Booking
}

// NewMachine создает мастер на первом шаге
func NewMachine(engine *pricing.Engine, addOns []domain.AddOn, clock TimeProvider) *Machine {
	if clock == nil {
		clock = &RealTimeProvider{}
	}
	return &Machine{
		engine:  engine,
		addOns:  addOns,
		clock:   clock,
		current: StepServiceType,
	}
}

// Current возвращает текущий шаг
func (m *Machine) Current() Step {
	return m.current
}

// Draft возвращает копию черновика
func (m *Machine) Draft() domain.Draft {
	d := m.draft
	d.AdditionalServices = append([]string(nil), m.draft.AdditionalServices...)
	return d
}

// Booking возвращает созданное бронирование (nil до отправки)
func (m *Machine) Booking() *domain.Booking {
	return m.booking
}

// Estimate возвращает оценку цены, когда известны категория, площадь и частота
func (m *Machine) Estimate() (pricing.Estimate, bool) {
	if !m.hasPricingInputs() {
		return pricing.Estimate{}, false
	}
	return m.engine.ComputeDraft(&m.draft), true
}

// Advance проверяет поля текущего шага и переходит на следующий
// При ошибке валидации состояние не меняется
func (m *Machine) Advance(input StepInput) error {
	if m.current == StepSubmitted {
		return ErrSubmitted
	}
	if input.Step() != m.current {
		return fmt.Errorf("%w: current=%s, got=%s", ErrStepMismatch, m.current, input.Step())
	}
	if m.current == StepContact {
		return ErrSubmitRequired
	}

	if err := input.validate(newRules(m.addOns, m.clock.Now())); err != nil {
		return err
	}

	input.apply(&m.draft)
	m.recomputePrice()
	m.current++
	return nil
}

// Back возвращает мастер на ранее пройденный шаг
func (m *Machine) Back(target Step) error {
	if m.current == StepSubmitted {
		return ErrSubmitted
	}
	if target < StepServiceType || target >= m.current {
		return fmt.Errorf("%w: current=%s, target=%s", ErrCannotGoBack, m.current, target)
	}
	m.current = target
	return nil
}

// Submit проверяет контактные данные и отправляет черновик в шлюз
// При ошибке шлюза мастер остается на шаге Contact, черновик можно исправить и отправить снова
func (m *Machine) Submit(ctx context.Context, gateway Gateway, input *ContactInput) (*domain.Booking, error) {
	if m.current == StepSubmitted {
		return nil, ErrSubmitted
	}
	if m.current != StepContact {
		return nil, fmt.Errorf("%w: current=%s, got=%s", ErrStepMismatch, m.current, StepContact)
	}

	if err := input.validate(newRules(m.addOns, m.clock.Now())); err != nil {
		return nil, err
	}

	input.apply(&m.draft)
	m.recomputePrice()

	draft := m.Draft()
	booking, err := gateway.CreateBooking(ctx, &draft)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSubmission, err)
	}

	m.booking = booking
	m.current = StepSubmitted
	return booking, nil
}

func (m *Machine) hasPricingInputs() bool {
	return m.draft.ServiceType != "" && m.draft.Surface > 0 && m.draft.Frequency != ""
}

func (m *Machine) recomputePrice() {
	if estimate, ok := m.Estimate(); ok {
		m.draft.EstimatedPrice = estimate.TotalPrice
		return
	}
	m.draft.EstimatedPrice = 0
}
