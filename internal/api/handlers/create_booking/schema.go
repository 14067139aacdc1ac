package create_booking

import "github.com/xeipuuv/gojsonschema"

// bookingSchema форма тела POST /bookings
// Проверяются только типы и обязательные поля, бизнес-правила проверяет мастер
const bookingSchema = `{
  "type": "object",
  "required": ["serviceType", "surface", "frequency", "date", "timeSlot",
               "companyName", "contactName", "email", "phone"],
  "properties": {
    "serviceType":         {"type": "string"},
    "surface":             {"type": "number"},
    "frequency":           {"type": "string"},
    "additionalServices":  {"type": "array", "items": {"type": "string"}},
    "date":                {"type": "string"},
    "timeSlot":            {"type": "string"},
    "companyName":         {"type": "string"},
    "contactName":         {"type": "string"},
    "email":               {"type": "string"},
    "phone":               {"type": "string"},
    "specialInstructions": {"type": ["string", "null"]},
    "accessCode":          {"type": ["string", "null"]},
    "estimatedPrice":      {"type": "number"}
  }
}`

var bookingSchemaLoader = gojsonschema.NewStringLoader(bookingSchema)

// validateShape проверяет тело запроса по схеме и возвращает описания нарушений
func validateShape(body []byte) ([]string, error) {
	result, err := gojsonschema.Validate(bookingSchemaLoader, gojsonschema.NewBytesLoader(body))
	if err != nil {
		return nil, err
	}
	if result.Valid() {
		return nil, nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		problems = append(problems, e.String())
	}
	return problems, nil
}
