package wizard

import (
	"errors"
	"regexp"
	"sort"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/m04kA/SBN-BookingService/internal/domain"
)

const (
	msgServiceTypeRequired = "Veuillez sélectionner un type de service"
	msgSurfaceRequired     = "La surface est requise"
	msgSurfaceMin          = "La surface minimum est de 10m²"
	msgSurfaceMax          = "La surface maximum est de 5000m²"
	msgFrequencyRequired   = "Veuillez sélectionner une fréquence"
	msgUnknownAddOn        = "Service additionnel inconnu"
	msgDateRequired        = "Veuillez sélectionner une date"
	msgDateInPast          = "La date ne peut pas être dans le passé"
	msgTimeSlotRequired    = "Veuillez sélectionner un créneau horaire"
	msgCompanyNameTooShort = "Le nom de l'entreprise doit contenir au moins 2 caractères"
	msgContactNameTooShort = "Le nom doit contenir au moins 2 caractères"
	msgEmailInvalid        = "Email invalide"
	msgPhoneInvalid        = "Numéro de téléphone invalide"
	msgPhoneTooShort       = "Numéro trop court"
)

var phonePattern = regexp.MustCompile(`^[0-9+\-\s]+$`)

// rules контекст проверки: каталог дополнительных услуг и текущее время
type rules struct {
	addOnIDs []interface{}
	now      time.Time
}

func newRules(addOns []domain.AddOn, now time.Time) *rules {
	ids := make([]interface{}, len(addOns))
	for i, a := range addOns {
		ids[i] = a.ID
	}
	return &rules{addOnIDs: ids, now: now}
}

func (in *ServiceTypeInput) validate(_ *rules) error {
	err := validation.ValidateStruct(in,
		validation.Field(&in.ServiceType,
			validation.Required.Error(msgServiceTypeRequired),
			validation.In(serviceTypeValues()...).Error(msgServiceTypeRequired),
		),
	)
	return toValidationError(StepServiceType, err)
}

func (in *DetailsInput) validate(r *rules) error {
	err := validation.ValidateStruct(in,
		validation.Field(&in.Surface,
			validation.Required.Error(msgSurfaceRequired),
			validation.Min(domain.MinSurface).Error(msgSurfaceMin),
			validation.Max(domain.MaxSurface).Error(msgSurfaceMax),
		),
		validation.Field(&in.Frequency,
			validation.Required.Error(msgFrequencyRequired),
			validation.In(frequencyValues()...).Error(msgFrequencyRequired),
		),
		validation.Field(&in.AdditionalServices,
			validation.Each(validation.In(r.addOnIDs...).Error(msgUnknownAddOn)),
		),
	)
	return toValidationError(StepDetails, err)
}

func (in *ScheduleInput) validate(r *rules) error {
	err := validation.ValidateStruct(in,
		validation.Field(&in.Date,
			validation.Required.Error(msgDateRequired),
			validation.By(notInPast(r.now)),
		),
		validation.Field(&in.TimeSlot,
			validation.Required.Error(msgTimeSlotRequired),
			validation.In(timeSlotValues()...).Error(msgTimeSlotRequired),
		),
	)
	return toValidationError(StepSchedule, err)
}

func (in *ContactInput) validate(_ *rules) error {
	err := validation.ValidateStruct(in,
		validation.Field(&in.CompanyName,
			validation.Required.Error(msgCompanyNameTooShort),
			validation.RuneLength(domain.MinNameLength, 0).Error(msgCompanyNameTooShort),
		),
		validation.Field(&in.ContactName,
			validation.Required.Error(msgContactNameTooShort),
			validation.RuneLength(domain.MinNameLength, 0).Error(msgContactNameTooShort),
		),
		validation.Field(&in.Email,
			validation.Required.Error(msgEmailInvalid),
			is.EmailFormat.Error(msgEmailInvalid),
		),
		validation.Field(&in.Phone,
			validation.Required.Error(msgPhoneInvalid),
			validation.Match(phonePattern).Error(msgPhoneInvalid),
			validation.RuneLength(domain.MinPhoneLength, 0).Error(msgPhoneTooShort),
		),
	)
	return toValidationError(StepContact, err)
}

// notInPast дата допустима, если она сегодня или позже
func notInPast(now time.Time) validation.RuleFunc {
	return func(value interface{}) error {
		date, ok := value.(time.Time)
		if !ok || date.IsZero() {
			return errors.New(msgDateRequired)
		}
		if domain.IsDateInPast(date, now) {
			return errors.New(msgDateInPast)
		}
		return nil
	}
}

// toValidationError переводит ошибки ozzo-validation в ValidationError
func toValidationError(step Step, err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	fields := make(map[string]string, len(fieldErrs))
	for field, fieldErr := range fieldErrs {
		if fieldErr == nil {
			continue
		}
		fields[field] = messageOf(fieldErr)
	}
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Step: step, Fields: fields}
}

// messageOf берет первое сообщение из вложенных ошибок (например, для элементов списка)
func messageOf(err error) string {
	var nested validation.Errors
	if errors.As(err, &nested) {
		keys := make([]string, 0, len(nested))
		for k := range nested {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if nested[k] != nil {
				return messageOf(nested[k])
			}
		}
	}
	return err.Error()
}

func serviceTypeValues() []interface{} {
	values := make([]interface{}, len(domain.ServiceTypes))
	for i, st := range domain.ServiceTypes {
		values[i] = st
	}
	return values
}

func frequencyValues() []interface{} {
	values := make([]interface{}, len(domain.Frequencies))
	for i, f := range domain.Frequencies {
		values[i] = f
	}
	return values
}

func timeSlotValues() []interface{} {
	values := make([]interface{}, len(domain.TimeSlots))
	for i, slot := range domain.TimeSlots {
		values[i] = slot.Value
	}
	return values
}
