package handler

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is shared by all handlers; field names in errors use the JSON tags.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// fieldError is the first validation failure of a request body.
type fieldError struct {
	Field   string
	Missing bool
}

// validateBody runs struct validation and reports the first failing field.
func validateBody(v any) (*fieldError, error) {
	err := validate.Struct(v)
	if err == nil {
		return nil, nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return nil, err
	}
	fe := verrs[0]
	return &fieldError{Field: fe.Field(), Missing: fe.Tag() == "required"}, nil
}
