// Package response padroniza as respostas JSON dos handlers e middlewares.
package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"gocollect/internal/domain"
	apperror "gocollect/internal/errors"
	"gocollect/internal/pkg/logger"
)

// JSON escreve data com o status informado. data nil gera corpo vazio.
func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// Error traduz o erro com MapToHTTPStatus e escreve um domain.ErrorResponse.
// Erros 5xx são registrados como Error; 4xx como Debug.
func Error(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	status, category, message := apperror.MapToHTTPStatus(err)

	if status >= http.StatusInternalServerError {
		log.Error(fmt.Sprintf("Erro de Servidor: %s", category), err)
		// A causa (e.g., SQL) fica apenas no log.
		message = "Ocorreu um erro interno. Tente novamente mais tarde."
	} else {
		log.Debug(fmt.Sprintf("Requisição rejeitada com status %d. Categoria: %s", status, category), map[string]interface{}{
			"method": r.Method,
			"path":   r.URL.Path,
		})
	}

	JSON(w, status, domain.ErrorResponse{
		Code:     status,
		Category: category,
		Message:  message,
	})
}
