package validator

import (
	"log"

	"ycsmatch_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules installs model-backed validation tags.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup error.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // emptiness is the job of 'required'
	}
	return models.UserRole(value).IsValid()
}
