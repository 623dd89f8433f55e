package database

import (
	"database/sql"
	"fmt"
	"time"

	// Driver pq para PostgreSQL; o GORM reutiliza a mesma conexão *sql.DB.
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"gocollect/internal/pkg/logger"
)

// PoolConfig agrupa os parâmetros do pool de conexões.
type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DefaultPoolConfig retorna os valores usados em produção.
func DefaultPoolConfig() PoolConfig {
	return PoolConfig{
		MaxOpenConns:    25,
		MaxIdleConns:    10,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: 2 * time.Minute,
	}
}

// NewPostgresDB inicializa e configura o pool de conexões com o PostgreSQL.
// Retorna a conexão *sql.DB pronta para uso (também usada pelo goose).
func NewPostgresDB(dataSourceName string, pool PoolConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("falha ao abrir a conexão com o DB: %w", err)
	}

	// Garante que as credenciais e o servidor estão corretos
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("falha ao realizar o ping inicial no DB: %w", err)
	}

	db.SetMaxOpenConns(pool.MaxOpenConns)
	db.SetMaxIdleConns(pool.MaxIdleConns)
	db.SetConnMaxLifetime(pool.ConnMaxLifetime)
	db.SetConnMaxIdleTime(pool.ConnMaxIdleTime)

	return db, nil
}

// NewGormDB embrulha um *sql.DB do PostgreSQL em um *gorm.DB.
func NewGormDB(sqlDB *sql.DB, log logger.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), GormConfig(log))
	if err != nil {
		return nil, fmt.Errorf("falha ao inicializar o GORM: %w", err)
	}
	return db, nil
}

// GormConfig é a configuração comum do GORM (PostgreSQL em produção, SQLite nos testes).
// Consultas lentas e erros do GORM são encaminhados para o Logger da aplicação.
func GormConfig(log logger.Logger) *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
		Logger: gormlogger.New(gormWriter{log: log}, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	}
}

// EnsureSchema verifica se as tabelas exigidas existem.
// Uma tabela ausente é um erro de inicialização, não de requisição.
func EnsureSchema(db *gorm.DB, tables ...string) error {
	for _, table := range tables {
		if !db.Migrator().HasTable(table) {
			return fmt.Errorf("tabela %q não existe; execute as migrações (cmd/migrate)", table)
		}
	}
	return nil
}

// gormWriter adapta o Logger da aplicação ao writer esperado pelo logger do GORM.
type gormWriter struct {
	log logger.Logger
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	w.log.Warn(fmt.Sprintf(format, args...), map[string]interface{}{"component": "gorm"})
}
