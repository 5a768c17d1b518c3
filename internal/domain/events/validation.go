package events

import (
	"errors"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// createFields covers the contractually required part of a create body.
// Presence is validated, content is not.
type createFields struct {
	Name      string `json:"name" validate:"required"`
	Date      string `json:"date" validate:"required"`
	StartTime string `json:"startTime" validate:"required"`
	EndTime   string `json:"endTime" validate:"required"`
	Venue     string `json:"venue" validate:"required"`
}

// protectedFields are system-owned and may never be set by a caller.
var protectedFields = []string{FieldID, FieldOwnerID, FieldCreatedAt, FieldUpdatedAt}

// coreStringFields must hold string values when present in a body.
var coreStringFields = []string{FieldName, FieldDate, FieldStartTime, FieldEndTime, FieldVenue}

type ValidationError struct {
	Message string
	Fields  []string
}

func (e ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return e.Message + ": " + strings.Join(e.Fields, ", ")
}

// ValidateCreate checks a create body: no protected fields, core fields
// are strings, and the required contract (name, date, startTime, endTime,
// venue) is present.
func ValidateCreate(body map[string]any) error {
	if err := validateCommon(body); err != nil {
		return err
	}

	fields := createFields{
		Name:      stringValue(body, FieldName),
		Date:      stringValue(body, FieldDate),
		StartTime: stringValue(body, FieldStartTime),
		EndTime:   stringValue(body, FieldEndTime),
		Venue:     stringValue(body, FieldVenue),
	}
	if err := validate.Struct(fields); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		missing := make([]string, 0, len(verrs))
		for _, verr := range verrs {
			missing = append(missing, verr.Field())
		}
		sort.Strings(missing)
		return ValidationError{Message: "missing required fields", Fields: missing}
	}
	return nil
}

// ValidatePatch checks a patch body: no protected fields, and core fields
// are strings when present. An empty patch is allowed; it only refreshes
// updatedAt.
func ValidatePatch(body map[string]any) error {
	return validateCommon(body)
}

func validateCommon(body map[string]any) error {
	var protected []string
	for _, key := range protectedFields {
		if _, ok := body[key]; ok {
			protected = append(protected, key)
		}
	}
	if len(protected) > 0 {
		sort.Strings(protected)
		return ValidationError{Message: "protected fields cannot be set", Fields: protected}
	}

	var nonString []string
	for _, key := range coreStringFields {
		value, ok := body[key]
		if !ok {
			continue
		}
		if _, ok := value.(string); !ok {
			nonString = append(nonString, key)
		}
	}
	if len(nonString) > 0 {
		sort.Strings(nonString)
		return ValidationError{Message: "fields must be strings", Fields: nonString}
	}
	return nil
}

func stringValue(body map[string]any, key string) string {
	value, _ := body[key].(string)
	return value
}
