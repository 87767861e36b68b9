package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type GistApiValidator struct {
	v *validator.Validate
}

func NewValidator() *GistApiValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("schema"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
	return &GistApiValidator{v}
}

func (cv *GistApiValidator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}

func (cv *GistApiValidator) Var(field interface{}, tag string) error {
	return cv.v.Var(field, tag)
}

// ValidationMessages turns validation errors into a single human readable line.
func ValidationMessages(err error) string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err.Error()
	}

	messages := make([]string, len(errs))
	for i, e := range errs {
		switch e.Tag() {
		case "required":
			messages[i] = e.Field() + " should not be empty"
		case "min", "gte":
			messages[i] = e.Field() + " should be greater than or equal to " + e.Param()
		case "max", "lte":
			messages[i] = e.Field() + " should be less than or equal to " + e.Param()
		case "ltefield":
			messages[i] = e.Field() + " is too large"
		default:
			messages[i] = "Invalid " + e.Field()
		}
	}

	return strings.Join(messages, " ; ")
}
