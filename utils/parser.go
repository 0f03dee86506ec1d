package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/progressivemobile/acquiring/types"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// report json names in validation errors
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidateStruct validates s against its `validate` tags
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// ValidationMessage flattens validator errors into "field: tag" pairs
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Namespace(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}

// ParseConfig parses and validates Config from JSON
func ParseConfig(data []byte) (*types.Config, error) {
	config := types.Config{
		Language:       types.DefaultLanguage,
		CurrencySymbol: types.DefaultCurrencySymbol,
		FractionDigits: types.DefaultFractionDigits,
		LogLevel:       "info",
	}

	if err := json.Unmarshal(data, &config); err != nil {
		return nil, &types.AcquiringError{
			Code:    types.ErrConfigError,
			Message: fmt.Sprintf("failed to parse config: %v", err),
		}
	}

	if err := validate.Struct(&config); err != nil {
		return nil, &types.AcquiringError{
			Code:    types.ErrConfigError,
			Message: fmt.Sprintf("validation failed: %s", ValidationMessage(err)),
		}
	}

	return &config, nil
}

// PrepareJSON renders v as indented JSON for the plugin channel.
// ok is false when v cannot be serialized.
func PrepareJSON(v interface{}) (string, bool) {
	data, err := NormalizeJSON(v)
	if err != nil {
		return "", false
	}
	return string(data), true
}

// NormalizeJSON formats JSON with consistent indentation
func NormalizeJSON(data interface{}) ([]byte, error) {
	return json.MarshalIndent(data, "", "  ")
}
