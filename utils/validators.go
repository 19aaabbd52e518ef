package utils

import (
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func InitValidator() {
	Validate = validator.New()
	Validate.RegisterValidation("username", ValidateUsernameRule)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("username", ValidateUsernameRule)
	}
}

func ValidateUsernameRule(fl validator.FieldLevel) bool {
	return ValidateUsername(fl.Field().String())
}

// ValidateUsername checks that a username is 3-30 characters of letters,
// digits, underscores or hyphens. Comparison elsewhere is case-sensitive.
func ValidateUsername(username string) bool {
	if len(username) < 3 || len(username) > 30 {
		return false
	}

	for _, char := range username {
		switch {
		case unicode.IsLetter(char) || unicode.IsNumber(char):
		case char == '_' || char == '-':
		default:
			return false
		}
	}

	return true
}
