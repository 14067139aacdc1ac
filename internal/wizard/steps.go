package wizard

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SBN-BookingService/internal/domain"
)

// Step шаг мастера бронирования
type Step int

const (
	StepServiceType Step = iota + 1
	StepDetails
	StepSchedule
	StepContact
	StepSubmitted
)

var stepNames = map[Step]string{
	StepServiceType: "service-type",
	StepDetails:     "details",
	StepSchedule:    "schedule",
	StepContact:     "contact",
	StepSubmitted:   "submitted",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsValid returns true for the four editable steps and Submitted
func (s Step) IsValid() bool {
	return s >= StepServiceType && s <= StepSubmitted
}

// ParseStep принимает имя шага ("details") или его номер ("2")
func ParseStep(value string) (Step, error) {
	if n, err := strconv.Atoi(value); err == nil {
		step := Step(n)
		if step.IsValid() {
			return step, nil
		}
		return 0, fmt.Errorf("%w: %q", ErrUnknownStep, value)
	}
	for step, name := range stepNames {
		if name == value {
			return step, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStep, value)
}

// StepInput поля одного шага мастера
// Каждая реализация содержит только те поля, которые проверяет её шаг
type StepInput interface {
	Step() Step
	validate(r *rules) error
	apply(d *domain.Draft)
}

// ServiceTypeInput шаг 1: тип помещения
type ServiceTypeInput struct {
	ServiceType domain.ServiceType `json:"serviceType"`
}

func (in *ServiceTypeInput) Step() Step { return StepServiceType }

func (in *ServiceTypeInput) apply(d *domain.Draft) {
	d.ServiceType = in.ServiceType
}

// DetailsInput шаг 2: площадь, частота и дополнительные услуги
type DetailsInput struct {
	Surface            float64          `json:"surface"`
	Frequency          domain.Frequency `json:"frequency"`
	AdditionalServices []string         `json:"additionalServices"`
}

func (in *DetailsInput) Step() Step { return StepDetails }

func (in *DetailsInput) apply(d *domain.Draft) {
	d.Surface = in.Surface
	d.Frequency = in.Frequency
	d.AdditionalServices = append([]string(nil), in.AdditionalServices...)
}

// ScheduleInput шаг 3: дата и слот
type ScheduleInput struct {
	Date     time.Time `json:"date"`
	TimeSlot string    `json:"timeSlot"`
}

func (in *ScheduleInput) Step() Step { return StepSchedule }

func (in *ScheduleInput) apply(d *domain.Draft) {
	d.Date = domain.DateOnly(in.Date)
	d.TimeSlot = in.TimeSlot
}

// ContactInput шаг 4: контактные данные
type ContactInput struct {
	CompanyName         string  `json:"companyName"`
	ContactName         string  `json:"contactName"`
	Email               string  `json:"email"`
	Phone               string  `json:"phone"`
	SpecialInstructions *string `json:"specialInstructions"`
	AccessCode          *string `json:"accessCode"`
}

func (in *ContactInput) Step() Step { return StepContact }

func (in *ContactInput) apply(d *domain.Draft) {
	d.CompanyName = in.CompanyName
	d.ContactName = in.ContactName
	d.Email = in.Email
	d.Phone = in.Phone
	d.SpecialInstructions = in.SpecialInstructions
	d.AccessCode = in.AccessCode
}
