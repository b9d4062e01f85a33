// file: internals/helpers/validator.go
package helper

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate menjalankan validasi struct DTO (tag `validate:"..."`).
func Validate(s any) error {
	return validate.Struct(s)
}

// ValidationErrorsToMap mengubah validator.ValidationErrors ke map field → pesan
// untuk dipakai JsonValidationError.
func ValidationErrorsToMap(err error) map[string][]string {
	out := map[string][]string{}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_"] = []string{err.Error()}
		return out
	}
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())
		out[field] = append(out[field], fe.Tag())
	}
	return out
}
