// Package request reúne a leitura de parâmetros comuns aos handlers.
package request

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"gocollect/internal/domain"
	apperror "gocollect/internal/errors"
	"gocollect/internal/pkg/middleware"
)

// UserID extrai o usuário autenticado das claims anexadas pelo middleware de auth.
func UserID(r *http.Request) (string, error) {
	claims, ok := middleware.GetUserClaimsFromContext(r.Context())
	if !ok || claims.UserID == "" {
		return "", apperror.NewUnauthorizedError("usuário não identificado na requisição.")
	}
	if utf8.RuneCountInString(claims.UserID) > domain.MaxUserIDLength {
		return "", apperror.NewValidationError(fmt.Sprintf("user_id deve ter no máximo %d caracteres.", domain.MaxUserIDLength))
	}
	return claims.UserID, nil
}

// Status lê um filtro opcional de status da query string. Ausente retorna nil.
func Status(r *http.Request, name string) (*domain.CollectStatus, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	status, err := domain.ParseCollectStatus(raw)
	if err != nil {
		return nil, apperror.NewInvalidStatusError(raw)
	}
	return &status, nil
}

// Int lê um inteiro opcional da query string. Ausente retorna 0.
func Int(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperror.NewValidationError("parâmetro '" + name + "' deve ser um número inteiro.")
	}
	return n, nil
}

// Bool lê um booleano opcional da query string.
func Bool(r *http.Request, name string) (*bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, apperror.NewValidationError("parâmetro '" + name + "' deve ser true ou false.")
	}
	return &b, nil
}

// Time lê um instante RFC 3339 opcional da query string.
func Time(r *http.Request, name string) (*time.Time, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, apperror.NewValidationError("parâmetro '" + name + "' deve estar no formato RFC 3339.")
	}
	t = t.UTC()
	return &t, nil
}

// OptionalString retorna nil para ausente ou vazio.
func OptionalString(r *http.Request, name string) *string {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil
	}
	return &raw
}
