package usecase

import (
	"fmt"
	"time"

	"hotel-booking/pkg/apperror"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func validationError(errs map[string]string) error {
	return apperror.New(apperror.KindInvalidInput, "validation failed: %s", utils.FormatValidationErrors(errs))
}

func parseID(kind, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, apperror.New(apperror.KindInvalidInput, "invalid %s ID %q", kind, value)
	}
	return id, nil
}

// parseOptionalID returns nil for an empty value.
func parseOptionalID(kind, value string) (*uuid.UUID, error) {
	if value == "" {
		return nil, nil
	}
	id, err := parseID(kind, value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func parseMoney(field, value string) (decimal.Decimal, error) {
	d, err := utils.ParseMoney(value)
	if err != nil {
		return decimal.Zero, apperror.New(apperror.KindInvalidInput, "invalid %s: %s", field, value)
	}
	return d, nil
}

func parseTime(field, value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, apperror.New(apperror.KindInvalidInput, "invalid %s %q, use RFC 3339", field, value)
	}
	return t.UTC(), nil
}

func notFound(kind, id string) error {
	return apperror.New(apperror.KindNotFound, "%s %s not found", kind, id)
}

// wrapTxError passes rejections through untouched and adds context to
// infrastructure failures.
func wrapTxError(op string, err error) error {
	if err == nil || apperror.KindOf(err) != "" {
		return err
	}
	return fmt.Errorf("%s: %w", op, err)
}
