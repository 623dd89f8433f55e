package authservice

import (
	"context"
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"gocollect/internal/domain"
	apperror "gocollect/internal/errors"
	"gocollect/internal/pkg/logger"
)

// TokenService é o contrato da camada de token (internal/pkg/token).
type TokenService interface {
	GenerateToken(userID string, userRole string) (string, error)
}

// Service autentica o administrador configurado via ADMIN_EMAIL / ADMIN_PASSWORD_HASH.
// Os usuários finais não fazem login aqui: seus tokens vêm do sistema de identidade externo.
type Service struct {
	adminEmail        string
	adminPasswordHash []byte
	tokenSvc          TokenService
	logger            logger.Logger
}

// NewService cria uma nova instância do serviço de autenticação administrativa.
func NewService(adminEmail, adminPasswordHash string, tokenSvc TokenService, log logger.Logger) *Service {
	return &Service{
		adminEmail:        strings.ToLower(strings.TrimSpace(adminEmail)),
		adminPasswordHash: []byte(adminPasswordHash),
		tokenSvc:          tokenSvc,
		logger:            log,
	}
}

// Enabled indica se há credenciais administrativas configuradas.
func (s *Service) Enabled() bool {
	return s.adminEmail != "" && len(s.adminPasswordHash) > 0
}

// Login verifica as credenciais e gera um JWT com role admin.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", apperror.NewUnauthorizedError("Email e senha são obrigatórios.")
	}
	if !s.Enabled() {
		return "", apperror.NewForbiddenError("Login administrativo não configurado.")
	}

	email = strings.ToLower(strings.TrimSpace(email))
	emailMatches := subtle.ConstantTimeCompare([]byte(email), []byte(s.adminEmail)) == 1
	// A senha é comparada mesmo quando o email não confere.
	passwordErr := bcrypt.CompareHashAndPassword(s.adminPasswordHash, []byte(password))
	if !emailMatches || passwordErr != nil {
		s.logger.Warn("Tentativa de login administrativo rejeitada", map[string]interface{}{"email": email})
		return "", apperror.NewUnauthorizedError("Credenciais inválidas.")
	}

	tokenString, err := s.tokenSvc.GenerateToken(s.adminEmail, string(domain.RoleAdmin))
	if err != nil {
		return "", apperror.NewInternalError("Falha ao gerar token de autenticação.", err)
	}

	s.logger.Info("Login administrativo realizado", map[string]interface{}{"email": s.adminEmail})
	return tokenString, nil
}
