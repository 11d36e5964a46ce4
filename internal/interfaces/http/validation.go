package http

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/storefront-api/internal/domain/delivery"
)

// FieldErrors detalle de validación campo -> mensaje (nombre del campo según su tag json).
type FieldErrors map[string]string

// NewValidator crea el validador de DTOs con las reglas propias del storefront.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("storefront_email", func(fl validator.FieldLevel) bool {
		return delivery.IsValidEmail(fl.Field().String())
	})
	return v
}

// validateStruct valida in y devuelve los errores por campo (nil si es válido).
func validateStruct(v *validator.Validate, in any) FieldErrors {
	err := v.Struct(in)
	if err == nil {
		return nil
	}
	out := FieldErrors{}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			out[fe.Field()] = messageForTag(fe.Tag(), fe.Param())
		}
		return out
	}
	out["_"] = "datos inválidos"
	return out
}

func messageForTag(tag, param string) string {
	switch tag {
	case "required":
		return "campo obligatorio"
	case "storefront_email":
		return "email inválido"
	case "oneof":
		return "debe ser uno de: " + param
	case "min":
		return "debe ser al menos " + param
	case "max":
		return "debe ser como máximo " + param
	default:
		return "valor inválido"
	}
}
