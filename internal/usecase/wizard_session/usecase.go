package wizard_session

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"sync"

	"github.com/google/uuid"

	"github.com/m04kA/SBN-BookingService/internal/domain"
	"github.com/m04kA/SBN-BookingService/internal/infra/storage/session"
	"github.com/m04kA/SBN-BookingService/internal/pricing"
	"github.com/m04kA/SBN-BookingService/internal/wizard"
)

const (
	outcomeOK       = "ok"
	outcomeInvalid  = "invalid"
	outcomeRejected = "rejected"
	outcomeFailed   = "failed"
	stepBack        = "back"

	lockStripes = 256
)

// UseCase use case серверного мастера бронирования
// Каждая операция: загрузить снимок, восстановить автомат, выполнить переход, сохранить снимок
type UseCase struct {
	store   SessionStore
	gateway wizard.Gateway
	engine  *pricing.Engine
	addOns  []domain.AddOn
	clock   wizard.TimeProvider
	metrics Metrics
	logger  Logger
	newID   func() string

	// операции над одной сессией выполняются последовательно
	// набор мьютексов фиксирован, сессии распределяются по хешу id
	locks [lockStripes]sync.Mutex
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	store SessionStore,
	gateway wizard.Gateway,
	engine *pricing.Engine,
	addOns []domain.AddOn,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		store:   store,
		gateway: gateway,
		engine:  engine,
		addOns:  addOns,
		clock:   &wizard.RealTimeProvider{},
		metrics: metrics,
		logger:  logger,
		newID:   uuid.NewString,
	}
}

// Start создает новую сессию на первом шаге
func (uc *UseCase) Start(ctx context.Context) (*State, error) {
	id := uc.newID()
	m := uc.newMachine()

	if err := uc.save(ctx, id, m); err != nil {
		return nil, err
	}

	uc.logger.Info("WizardSession: started session %s", id)
	return uc.state(id, m), nil
}

// Get возвращает текущее состояние сессии
func (uc *UseCase) Get(ctx context.Context, id string) (*State, error) {
	m, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.state(id, m), nil
}

// Advance проверяет поля текущего шага и переходит на следующий
func (uc *UseCase) Advance(ctx context.Context, id string, input wizard.StepInput) (*State, error) {
	unlock := uc.lock(id)
	defer unlock()

	m, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}

	step := m.Current()
	if err := m.Advance(input); err != nil {
		uc.observe(step.String(), outcomeOf(err))
		uc.logger.Warn("WizardSession: session %s, advance %s rejected: %v", id, step, err)
		return nil, err
	}

	if err := uc.save(ctx, id, m); err != nil {
		return nil, err
	}

	uc.observe(step.String(), outcomeOK)
	uc.logger.Info("WizardSession: session %s advanced %s -> %s, price=%.0f", id, step, m.Current(), m.Draft().EstimatedPrice)
	return uc.state(id, m), nil
}

// Back возвращает сессию на ранее пройденный шаг
func (uc *UseCase) Back(ctx context.Context, id string, target wizard.Step) (*State, error) {
	unlock := uc.lock(id)
	defer unlock()

	m, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}

	from := m.Current()
	if err := m.Back(target); err != nil {
		uc.observe(stepBack, outcomeRejected)
		uc.logger.Warn("WizardSession: session %s, back %s -> %s rejected: %v", id, from, target, err)
		return nil, err
	}

	if err := uc.save(ctx, id, m); err != nil {
		return nil, err
	}

	uc.observe(stepBack, outcomeOK)
	uc.logger.Info("WizardSession: session %s moved back %s -> %s", id, from, target)
	return uc.state(id, m), nil
}

// Submit проверяет контактные данные и отправляет бронирование
// При ошибке шлюза введенные контактные данные сохраняются, сессия остается на шаге Contact
func (uc *UseCase) Submit(ctx context.Context, id string, input *wizard.ContactInput) (*State, error) {
	unlock := uc.lock(id)
	defer unlock()

	m, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}

	step := m.Current()
	booking, submitErr := m.Submit(ctx, uc.gateway, input)
	if submitErr != nil {
		uc.observe(step.String(), outcomeOf(submitErr))
		if !errors.Is(submitErr, wizard.ErrSubmission) {
			uc.logger.Warn("WizardSession: session %s, submit rejected: %v", id, submitErr)
			return nil, submitErr
		}

		uc.logger.Error("WizardSession: session %s, submission failed: %v", id, submitErr)
		if err := uc.save(ctx, id, m); err != nil {
			return nil, err
		}
		return nil, submitErr
	}

	// бронирование уже создано: повторяем сохранение один раз, затем фиксируем id для разбора дублей
	if err := uc.save(ctx, id, m); err != nil {
		if err = uc.save(ctx, id, m); err != nil {
			uc.logger.Error("WizardSession: session %s, booking %s created but session not saved: %v", id, booking.ID, err)
			return nil, fmt.Errorf("%w: booking %s created, session not saved", ErrInternal, booking.ID)
		}
	}

	uc.observe(step.String(), outcomeOK)
	uc.logger.Info("WizardSession: session %s submitted booking %s", id, booking.ID)
	return uc.state(id, m), nil
}

// Delete удаляет сессию
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	unlock := uc.lock(id)
	defer unlock()

	if _, err := uc.load(ctx, id); err != nil {
		return err
	}

	if err := uc.store.Delete(ctx, id); err != nil {
		uc.logger.Error("WizardSession: failed to delete session %s: %v", id, err)
		return fmt.Errorf("%w: failed to delete session: %v", ErrInternal, err)
	}

	uc.logger.Info("WizardSession: deleted session %s", id)
	return nil
}

func (uc *UseCase) newMachine() *wizard.Machine {
	return wizard.NewMachine(uc.engine, uc.addOns, uc.clock)
}

func (uc *UseCase) load(ctx context.Context, id string) (*wizard.Machine, error) {
	snapshot, err := uc.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			uc.logger.Warn("WizardSession: session %s not found", id)
			return nil, ErrSessionNotFound
		}
		uc.logger.Error("WizardSession: failed to load session %s: %v", id, err)
		return nil, fmt.Errorf("%w: failed to load session: %v", ErrInternal, err)
	}

	m := uc.newMachine()
	if err := m.Restore(snapshot); err != nil {
		uc.logger.Error("WizardSession: corrupted session %s: %v", id, err)
		return nil, fmt.Errorf("%w: failed to restore session: %v", ErrInternal, err)
	}
	return m, nil
}

func (uc *UseCase) save(ctx context.Context, id string, m *wizard.Machine) error {
	if err := uc.store.Save(ctx, id, m.Snapshot()); err != nil {
		uc.logger.Error("WizardSession: failed to save session %s: %v", id, err)
		return fmt.Errorf("%w: failed to save session: %v", ErrInternal, err)
	}
	return nil
}

func (uc *UseCase) lock(id string) func() {
	mu := &uc.locks[stripe(id)]
	mu.Lock()
	return mu.Unlock
}

func stripe(id string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	return h.Sum32() % lockStripes
}

func (uc *UseCase) state(id string, m *wizard.Machine) *State {
	s := &State{
		SessionID: id,
		Step:      m.Current(),
		Draft:     m.Draft(),
		Booking:   m.Booking(),
	}
	if estimate, ok := m.Estimate(); ok {
		s.Estimate = &estimate
	}
	return s
}

func (uc *UseCase) observe(step, outcome string) {
	if uc.metrics != nil {
		uc.metrics.ObserveTransition(step, outcome)
	}
}

func outcomeOf(err error) string {
	if _, ok := wizard.IsValidationError(err); ok {
		return outcomeInvalid
	}
	if errors.Is(err, wizard.ErrSubmission) {
		return outcomeFailed
	}
	return outcomeRejected
}
