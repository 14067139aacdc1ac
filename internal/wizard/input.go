package wizard

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/m04kA/SBN-BookingService/internal/domain"
)

// NewInput возвращает пустые поля для шага (для декодирования тела запроса)
func NewInput(step Step) (StepInput, error) {
	switch step {
	case StepServiceType:
		return &ServiceTypeInput{}, nil
	case StepDetails:
		return &DetailsInput{}, nil
	case StepSchedule:
		return &ScheduleInput{}, nil
	case StepContact:
		return &ContactInput{}, nil
	default:
		return nil, fmt.Errorf("%w: %s has no input", ErrUnknownStep, step)
	}
}

// UnmarshalJSON принимает дату как "2006-01-02" или RFC3339
func (in *ScheduleInput) UnmarshalJSON(data []byte) error {
	var raw struct {
		Date     string `json:"date"`
		TimeSlot string `json:"timeSlot"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	in.TimeSlot = raw.TimeSlot
	in.Date = time.Time{}
	if raw.Date == "" {
		return nil
	}

	date, err := time.Parse(domain.DateFormat, raw.Date)
	if err != nil {
		date, err = time.Parse(time.RFC3339, raw.Date)
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", raw.Date, err)
		}
	}
	in.Date = date
	return nil
}
