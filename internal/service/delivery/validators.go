package delivery

import (
	"errors"
	"fmt"
	"strings"

	"battery-delivery/internal/entities"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

func newValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	// регистрация встроенного non-standard валидатора не может вернуть ошибку
	_ = validate.RegisterValidation("notblank", validators.NotBlank)
	return validate
}

func (d *Delivery) validateCreate(create entities.DeliveryCreate) error {
	err := d.validate.Struct(create)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrValidation, describeValidationError(err))
	}
	return nil
}

// describeValidationError перечисляет поля, не прошедшие проверку.
func describeValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	fields := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fields = append(fields, fmt.Sprintf("%s (%s)", fieldErr.Field(), fieldErr.Tag()))
	}
	return strings.Join(fields, ", ")
}

func validateModify(modify entities.DeliveryModify) error {
	if modify.IsEmpty() {
		return ErrEmptyUpdate
	}

	if modify.Status != nil && len(modify.Status.Predecessors()) == 0 {
		return fmt.Errorf("%w: status %q cannot be set", ErrInvalidTransition, modify.Status.String())
	}

	if modify.Status != nil && *modify.Status == entities.DeliveryInProgress && isBlank(modify.Courier) {
		return ErrCourierMissing
	}

	if modify.Courier != nil && strings.TrimSpace(*modify.Courier) == "" {
		return ErrCourierMissing
	}

	if modify.StartedAt != nil && (modify.Status == nil || *modify.Status != entities.DeliveryInProgress) {
		return fmt.Errorf("%w: start time is set only on start", ErrInvalidTransition)
	}

	if modify.ArrivedAt != nil && (modify.Status == nil || *modify.Status != entities.DeliveryCompleted) {
		return fmt.Errorf("%w: arrival time is set only on completion", ErrInvalidTransition)
	}

	for _, field := range []*string{modify.Customer, modify.Phone, modify.Address, modify.Battery} {
		if field != nil && strings.TrimSpace(*field) == "" {
			return fmt.Errorf("%w: required field cannot be blank", ErrValidation)
		}
	}

	return nil
}

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
