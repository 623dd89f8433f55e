// Package validator valida payloads de entrada com as tags do go-playground/validator.
// Comprimentos e formatos são checados aqui, na borda HTTP, e não no núcleo.
package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperror "gocollect/internal/errors"
)

const maxBodyBytes = 1 << 20

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Mensagens usam o nome do campo no JSON.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Validate valida a struct e retorna um apperror.ValidationError (400) em caso de falha.
func Validate(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return apperror.NewInternalError("falha ao validar payload", err)
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		msgs = append(msgs, fmt.Sprintf("campo '%s' %s", fe.Field(), msgForTag(fe)))
	}
	return &apperror.ValidationError{Msg: strings.Join(msgs, "; "), Err: err}
}

func msgForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "é obrigatório"
	case "email":
		return "deve ser um email válido"
	case "min":
		return fmt.Sprintf("deve ter no mínimo %s", fe.Param())
	case "max":
		return fmt.Sprintf("deve ter no máximo %s", fe.Param())
	case "gte":
		return fmt.Sprintf("deve ser maior ou igual a %s", fe.Param())
	case "lte":
		return fmt.Sprintf("deve ser menor ou igual a %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("deve ser um de: %s", fe.Param())
	default:
		return fmt.Sprintf("falhou na validação '%s'", fe.Tag())
	}
}

// DecodeAndValidate lê o JSON do corpo, decodifica em dst e valida.
// Campos desconhecidos e corpos acima de 1 MiB são rejeitados.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return &apperror.ValidationError{Msg: "Payload inválido. Verifique o formato JSON.", Err: err}
	}
	return Validate(dst)
}
