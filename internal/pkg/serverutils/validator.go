package serverutils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"thrapy-be/internal/pkg/apperror"
)

var validate = validator.New()

// ValidateStruct checks the validate tags on a request DTO and reports the
// offending fields as a single validation error.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperror.Validation(err.Error())
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
	}
	return apperror.Validation("Invalid request: " + strings.Join(messages, ", "))
}
