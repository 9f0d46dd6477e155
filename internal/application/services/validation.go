package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/taskboard/core/internal/domain/entities"
)

// Validator is the canonical validation contract shared by every entry
// point. It turns struct-tag failures into the field-level detail map
// carried by VALIDATION_ERROR responses.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator
func NewValidator() *Validator {
	v := validator.New()

	// Report fields under their JSON names so details match the wire format.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// The library's hexcolor tag also accepts 4- and 8-digit forms; label
	// colors allow only #RGB and #RRGGBB.
	v.RegisterValidation("labelcolor", func(fl validator.FieldLevel) bool {
		return entities.IsValidHexColor(fl.Field().String())
	})

	return &Validator{validate: v}
}

// ValidateStruct checks s against its validation tags and returns a
// VALIDATION_ERROR carrying the per-field failures, or nil.
func (v *Validator) ValidateStruct(s interface{}) *entities.OperationError {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return entities.NewValidationError("The provided data is invalid", nil)
	}

	details := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		details[fieldPath(fe)] = fieldMessage(fe)
	}

	return entities.NewValidationError("The provided data is invalid", details)
}

// Validate implements echo.Validator so handlers and services share one
// validation contract.
func (v *Validator) Validate(i interface{}) error {
	if opErr := v.ValidateStruct(i); opErr != nil {
		return opErr
	}
	return nil
}

// fieldPath strips the root struct name from the namespace, leaving paths
// like "labels[0].name".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return fe.Field()
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must not be empty"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.Join(strings.Fields(fe.Param()), ", "))
	case "labelcolor":
		return "must be a valid hex color code"
	default:
		return fmt.Sprintf("failed validation on %q", fe.Tag())
	}
}

// isValidID reports whether id is a well-formed uuid. The id columns are
// typed uuid, so a malformed value cannot name a row and would fail the
// query with a cast error instead of returning no rows.
func isValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// dueDateLayouts are the accepted due-date formats. The field carries
// calendar-day semantics, so a bare date is the common case.
var dueDateLayouts = []string{"2006-01-02", time.RFC3339}

// parseDueDate parses an optional due-date string. Empty means no due date.
func parseDueDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}

	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}

	return nil, fmt.Errorf("invalid due date format: %q", s)
}
