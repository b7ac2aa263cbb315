package schema

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Decode checks data against s, unmarshals only the declared fields into
// dst and then applies the `validate` tags declared on dst. The first failure is returned;
// dst is only meaningful when the result is nil.
func Decode(s Shape, data []byte, dst any) *FieldError {
	if fe := s.Check(data); fe != nil {
		return fe
	}
	data, err := s.project(data)
	if err != nil {
		return &FieldError{Message: "Invalid JSON"}
	}
	if err := json.Unmarshal(data, dst); err != nil {
		var te *json.UnmarshalTypeError
		if errors.As(err, &te) {
			return &FieldError{Message: "Expected " + te.Type.String() + ", received " + te.Value, Field: te.Field}
		}
		return &FieldError{Message: "Invalid JSON"}
	}
	return Validate(dst)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Required"
	case "datetime":
		return "Invalid date, expected YYYY-MM-DD"
	case "gte":
		return "Number must be greater than or equal to " + fe.Param()
	}
	return "Invalid value (" + fe.Tag() + ")"
}

// Validate applies only the `validate` tags of v. It is used for records
// built in code rather than decoded from a request body.
func Validate(v any) *FieldError {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &FieldError{Message: describe(verrs[0]), Field: verrs[0].Field()}
	}
	return &FieldError{Message: err.Error()}
}
