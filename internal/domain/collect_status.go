package domain

import (
	"fmt"
	"strings"
)

// CollectStatus é o estado de um registro de coleção.
// É um enum fechado: apenas as constantes abaixo são válidas.
type CollectStatus string

const (
	StatusActive    CollectStatus = "active"
	StatusCancelled CollectStatus = "cancelled"
	StatusHidden    CollectStatus = "hidden"
)

// AllCollectStatuses retorna todos os estados na ordem de exibição.
func AllCollectStatuses() []CollectStatus {
	return []CollectStatus{StatusActive, StatusCancelled, StatusHidden}
}

// ParseCollectStatus converte uma string externa (query string, payload) em CollectStatus.
// Aceita maiúsculas/minúsculas e espaços ao redor.
func ParseCollectStatus(raw string) (CollectStatus, error) {
	s := CollectStatus(strings.ToLower(strings.TrimSpace(raw)))
	if !s.IsValid() {
		return "", fmt.Errorf("status de coleção inválido: %q", raw)
	}
	return s, nil
}

// IsValid indica se o valor pertence ao enum.
func (s CollectStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusCancelled, StatusHidden:
		return true
	}
	return false
}

func (s CollectStatus) IsActive() bool    { return s == StatusActive }
func (s CollectStatus) IsCancelled() bool { return s == StatusCancelled }
func (s CollectStatus) IsHidden() bool    { return s == StatusHidden }

// Label é o rótulo exibido no painel administrativo.
func (s CollectStatus) Label() string {
	switch s {
	case StatusActive:
		return "Favoritado"
	case StatusCancelled:
		return "Cancelado"
	case StatusHidden:
		return "Oculto"
	}
	return string(s)
}

// BadgeClass é a classe de badge usada pelo painel para cada estado.
func (s CollectStatus) BadgeClass() string {
	switch s {
	case StatusActive:
		return "success"
	case StatusCancelled:
		return "secondary"
	case StatusHidden:
		return "warning"
	}
	return "light"
}

func (s CollectStatus) String() string { return string(s) }

// StatusPtr é um atalho para filtros opcionais de status.
func StatusPtr(s CollectStatus) *CollectStatus { return &s }
