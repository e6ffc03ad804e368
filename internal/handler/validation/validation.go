package validation

import (
	"errors"
	"strings"

	"stayhub/internal/domain/user"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const StrongPasswordTag = "strongpassword"

// Register adds the custom binding rules to gin's validator. Safe to call more than once.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected binding validator engine")
	}
	return v.RegisterValidation(StrongPasswordTag, func(fl validator.FieldLevel) bool {
		return user.IsStrongPassword(fl.Field().String())
	})
}

// FieldErrors maps each failing field (by its JSON name) to the rule it broke.
// Errors that are not validation errors come back as nil.
func FieldErrors(err error) map[string]string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}
	out := make(map[string]string, len(ve))
	for _, fe := range ve {
		out[jsonName(fe)] = fe.Tag()
	}
	return out
}

func jsonName(fe validator.FieldError) string {
	name := fe.Field()
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}
