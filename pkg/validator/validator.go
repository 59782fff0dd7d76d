package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func init() {
	// Tipos de movimiento aceptados por el ledger.
	_ = validate.RegisterValidation("movement_type", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "entrance", "exit", "adjustment":
			return true
		}
		return false
	})
}

// FieldError describe un campo que no pasó la validación.
type FieldError struct {
	Field string
	Tag   string
	Param string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("campo '%s' no cumple la regla '%s'", e.Field, e.Tag)
}

// Struct valida un DTO con las reglas de sus tags `validate`. Devuelve el
// primer error de campo, o nil si todo pasa.
func Struct(data interface{}) error {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		first := errs[0]
		return FieldError{Field: first.StructNamespace(), Tag: first.Tag(), Param: first.Param()}
	}
	return err
}
