package domain

// UserRole é o papel carregado no JWT.
// A identidade do usuário vem de um sistema externo; aqui só distinguimos usuário e administrador.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)
