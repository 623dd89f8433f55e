package errors

import (
	goerrors "errors"
	"fmt"
	"net/http"
)

// AppError é a interface central para todos os erros customizados do GoCollect.
// Ela permite que o código externo (Handler) acesse a Categoria e a Mensagem do erro.
type AppError interface {
	Error() string    // Implementa a interface error padrão do Go
	Category() string // Categoria do erro (e.g., "VALIDATION", "NOT_FOUND", "INTERNAL")
	HTTPStatus() int  // Código HTTP sugerido para o Handler
	Unwrap() error    // Permite encapsular erros subjacentes (original error)
}

// --- Tipos de erro da coleção (comparáveis com errors.Is) ---

var (
	ErrSkuNotFound             = goerrors.New("sku not found")
	ErrAlreadyCollected        = goerrors.New("already collected")
	ErrNotCollected            = goerrors.New("not collected")
	ErrCollectionLimitExceeded = goerrors.New("collection limit exceeded")
	ErrInvalidStatus           = goerrors.New("invalid collect status")
	ErrCollectNotFound         = goerrors.New("collect not found")
	ErrConstraintViolation     = goerrors.New("constraint violation")
)

// --- Tipos de Erro Específicos (Erros de Domínio) ---

// ValidationError representa falhas de validação de dados de entrada.
type ValidationError struct {
	Msg string
	Err error
}

func (e *ValidationError) Error() string    { return fmt.Sprintf("Erro de Validação: %s", e.Msg) }
func (e *ValidationError) Category() string { return "VALIDATION_ERROR" }
func (e *ValidationError) HTTPStatus() int  { return http.StatusBadRequest } // 400
func (e *ValidationError) Unwrap() error    { return e.Err }

// NewValidationError cria um novo erro de validação.
func NewValidationError(msg string) AppError {
	return &ValidationError{Msg: msg}
}

// UnauthorizedError representa credenciais ausentes ou inválidas.
type UnauthorizedError struct {
	Msg string
}

func (e *UnauthorizedError) Error() string    { return fmt.Sprintf("Não autorizado: %s", e.Msg) }
func (e *UnauthorizedError) Category() string { return "UNAUTHORIZED" }
func (e *UnauthorizedError) HTTPStatus() int  { return http.StatusUnauthorized } // 401
func (e *UnauthorizedError) Unwrap() error    { return nil }

// NewUnauthorizedError cria um novo erro de autenticação.
func NewUnauthorizedError(msg string) AppError {
	return &UnauthorizedError{Msg: msg}
}

// ForbiddenError representa um usuário autenticado sem a permissão necessária.
type ForbiddenError struct {
	Msg string
}

func (e *ForbiddenError) Error() string    { return fmt.Sprintf("Acesso negado: %s", e.Msg) }
func (e *ForbiddenError) Category() string { return "FORBIDDEN" }
func (e *ForbiddenError) HTTPStatus() int  { return http.StatusForbidden } // 403
func (e *ForbiddenError) Unwrap() error    { return nil }

// NewForbiddenError cria um novo erro de permissão.
func NewForbiddenError(msg string) AppError {
	return &ForbiddenError{Msg: msg}
}

// NotFoundError representa a ausência de um recurso solicitado.
type NotFoundError struct {
	Msg string
	Err error
}

func (e *NotFoundError) Error() string    { return fmt.Sprintf("Recurso não encontrado: %s", e.Msg) }
func (e *NotFoundError) Category() string { return "NOT_FOUND" }
func (e *NotFoundError) HTTPStatus() int  { return http.StatusNotFound } // 404
func (e *NotFoundError) Unwrap() error    { return e.Err }

// NewNotFoundError cria um novo erro de recurso não encontrado.
func NewNotFoundError(msg string) AppError {
	return &NotFoundError{Msg: msg}
}

// ConflictError representa um conflito na regra de negócio (e.g., recurso duplicado).
type ConflictError struct {
	Msg string
	Err error
}

func (e *ConflictError) Error() string    { return fmt.Sprintf("Conflito de estado: %s", e.Msg) }
func (e *ConflictError) Category() string { return "CONFLICT" }
func (e *ConflictError) HTTPStatus() int  { return http.StatusConflict } // 409
func (e *ConflictError) Unwrap() error    { return e.Err }

// NewConflictError cria um novo erro de conflito.
func NewConflictError(msg string) AppError {
	return &ConflictError{Msg: msg}
}

// LimitExceededError representa uma cota excedida (e.g., limite de favoritos por usuário).
type LimitExceededError struct {
	Msg   string
	Limit int
	Err   error
}

func (e *LimitExceededError) Error() string    { return fmt.Sprintf("Limite excedido: %s", e.Msg) }
func (e *LimitExceededError) Category() string { return "LIMIT_EXCEEDED" }
func (e *LimitExceededError) HTTPStatus() int  { return http.StatusTooManyRequests } // 429
func (e *LimitExceededError) Unwrap() error    { return e.Err }

// --- Tipos de Erro de Infraestrutura (Encapsulamento) ---

// InternalError representa falhas inesperadas no servidor, serviço ou repositório.
type InternalError struct {
	Msg string
	Err error // Erro original subjacente (e.g., erro do driver SQL)
}

func (e *InternalError) Error() string    { return fmt.Sprintf("Erro Interno: %s", e.Msg) }
func (e *InternalError) Category() string { return "INTERNAL_ERROR" }
func (e *InternalError) HTTPStatus() int  { return http.StatusInternalServerError } // 500
func (e *InternalError) Unwrap() error    { return e.Err }

// NewInternalError cria um erro de servidor (para falhas de lógica ou código não esperado).
func NewInternalError(msg string, err error) AppError {
	return &InternalError{Msg: msg, Err: err}
}

// NewDBError é um atalho para criar um InternalError específico de falhas no DB.
func NewDBError(msg string, err error) AppError {
	return NewInternalError(fmt.Sprintf("%s (DB): %s", msg, err.Error()), err)
}

// --- Construtores dos erros da coleção ---

// NewSkuNotFoundError é levantado pelo colaborador de catálogo, nunca pelo repositório.
func NewSkuNotFoundError(skuID string) AppError {
	return &NotFoundError{Msg: fmt.Sprintf("SKU [%s] não existe.", skuID), Err: ErrSkuNotFound}
}

func NewAlreadyCollectedError() AppError {
	return &ConflictError{Msg: "o SKU já está na lista de favoritos.", Err: ErrAlreadyCollected}
}

func NewNotCollectedError() AppError {
	return &NotFoundError{Msg: "o SKU não está na lista de favoritos.", Err: ErrNotCollected}
}

func NewCollectionLimitExceededError(limit int) AppError {
	return &LimitExceededError{
		Msg:   fmt.Sprintf("quantidade de favoritos excede o limite [%d].", limit),
		Limit: limit,
		Err:   ErrCollectionLimitExceeded,
	}
}

func NewInvalidStatusError(status string) AppError {
	return &ValidationError{Msg: fmt.Sprintf("status de coleção inválido [%s].", status), Err: ErrInvalidStatus}
}

// NewCollectNotFoundError é usado pelas operações por ID.
func NewCollectNotFoundError(collectID string) AppError {
	return &NotFoundError{Msg: fmt.Sprintf("registro de favorito [%s] não existe.", collectID), Err: ErrCollectNotFound}
}

// NewConstraintViolationError encapsula a violação de unicidade (user_id, sku_id) vinda do DB.
// O erro do driver continua acessível via errors.As.
func NewConstraintViolationError(msg string, err error) AppError {
	return &ConflictError{Msg: msg, Err: &constraintErr{cause: err}}
}

// constraintErr liga o sentinela ErrConstraintViolation ao erro original do driver.
type constraintErr struct {
	cause error
}

func (e *constraintErr) Error() string {
	if e.cause == nil {
		return ErrConstraintViolation.Error()
	}
	return fmt.Sprintf("%s: %s", ErrConstraintViolation.Error(), e.cause.Error())
}

func (e *constraintErr) Is(target error) bool { return target == ErrConstraintViolation }
func (e *constraintErr) Unwrap() error        { return e.cause }

// --- Helper para o Handler (Tradução Final) ---

// MapToHTTPStatus recebe um erro e o traduz para o código HTTP e corpo de resposta.
func MapToHTTPStatus(err error) (int, string, string) {
	var appErr AppError
	if goerrors.As(err, &appErr) {
		return appErr.HTTPStatus(), appErr.Category(), appErr.Error()
	}

	// Erro não tipado: tratar como erro interno genérico.
	return http.StatusInternalServerError, "UNKNOWN_ERROR", "Ocorreu um erro inesperado."
}
