// Package validation valida DTOs de entrada con go-playground/validator y traduce
// los fallos a domain.ValidationError usando el nombre JSON de cada campo.
package validation

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/bapesu/bapesu-api/internal/domain"
	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
	})
	return validate
}

// Struct valida v. Si solo faltan campos obligatorios el mensaje es
// "Campos requeridos faltantes"; cualquier otra regla produce "Datos inválidos".
func Struct(v any) error {
	err := instance().Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	onlyRequired := true
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fieldPath(fe))
		if fe.Tag() != "required" {
			onlyRequired = false
		}
	}
	if onlyRequired {
		return domain.NewValidationError("Campos requeridos faltantes", fields...)
	}
	return domain.NewValidationError("Datos inválidos", fields...)
}

// fieldPath quita el nombre del struct raíz: "CreateOrderRequest.items[0].name" -> "items[0].name".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}
