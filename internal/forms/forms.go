// Package forms holds the client-local field validation for the checkout and
// account forms. Validation failures stay local: the action creators return
// the field errors without dispatching anything to the store.
package forms

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type FieldErrors map[string]string

type LoginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

type SignupForm struct {
	FirstName string `form:"fname" validate:"required,max=60"`
	LastName  string `form:"lname" validate:"required,max=60"`
	Email     string `form:"email" validate:"required,email"`
	Password  string `form:"password" validate:"required,min=6"`
}

type ShippingForm struct {
	Address    string `form:"address" validate:"required"`
	City       string `form:"city" validate:"required"`
	PostalCode string `form:"postalCode" validate:"required"`
	Country    string `form:"country" validate:"required"`
}

var validate = validator.New()

// Validate checks a form struct and returns field-keyed messages, nil when the
// form is clean.
func Validate(dst any) FieldErrors {
	err := validate.Struct(dst)
	if err == nil {
		return nil
	}

	out := FieldErrors{}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			key := fieldKey(dst, fe.StructField())
			out[key] = messageForTag(fe.Tag(), fe.Param())
		}
		return out
	}

	out["_"] = "Invalid form data."
	return out
}

// fieldKey maps a struct field back to its form tag (form:"email").
func fieldKey(dst any, structField string) string {
	t := reflect.TypeOf(dst)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return strings.ToLower(structField)
	}

	f, ok := t.FieldByName(structField)
	if !ok {
		return strings.ToLower(structField)
	}
	tag := f.Tag.Get("form")
	if tag == "" {
		return strings.ToLower(structField)
	}
	if i := strings.Index(tag, ","); i >= 0 {
		tag = tag[:i]
	}
	if tag == "" || tag == "-" {
		return strings.ToLower(structField)
	}
	return tag
}

func messageForTag(tag, param string) string {
	switch tag {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "min":
		return "Must be at least " + param + " characters."
	case "max":
		return "Must be at most " + param + " characters."
	default:
		return "Invalid value."
	}
}
