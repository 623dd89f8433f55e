package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"gocollect/config"
	_ "gocollect/docs"
	"gocollect/internal/api/admin"
	"gocollect/internal/api/collect"
	"gocollect/internal/api/router"
	"gocollect/internal/pkg/cache"
	"gocollect/internal/pkg/catalog"
	"gocollect/internal/pkg/database"
	"gocollect/internal/pkg/logger"
	"gocollect/internal/pkg/token"
	"gocollect/internal/repository/collectrepo"
	"gocollect/internal/service/authservice"
	"gocollect/internal/service/collectservice"
	"gocollect/internal/worker"
)

// @title GoCollect API
// @version 1.0
// @description API de favoritos de produtos (coleção por usuário).
// @BasePath /v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Bearer <token JWT>
func main() {
	// 0. Variáveis de ambiente (.env é opcional; em Docker tudo vem do ambiente)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Aviso: Arquivo .env não encontrado. Carregando configs apenas do ambiente do sistema.")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("configuração inválida: %v", err)
	}
	appLog := logger.NewLogger(cfg.LogLevel)
	appLog.Info("Inicializando serviço GoCollect...", map[string]interface{}{"env": cfg.Environment})

	// 1. Infraestrutura

	// A. Banco de Dados (PostgreSQL via lib/pq + gorm)
	pool := database.DefaultPoolConfig()
	pool.MaxOpenConns = cfg.DBMaxOpenConns
	pool.MaxIdleConns = cfg.DBMaxIdleConns
	sqlDB, err := database.NewPostgresDB(cfg.DatabaseURL, pool)
	if err != nil {
		appLog.Fatal("Falha ao conectar ao banco de dados.", err)
	}
	defer sqlDB.Close()

	gormDB, err := database.NewGormDB(sqlDB, appLog)
	if err != nil {
		appLog.Fatal("Falha ao inicializar o gorm.", err)
	}
	if err := database.EnsureSchema(gormDB, collectrepo.TableName); err != nil {
		appLog.Fatal("Schema ausente. Rode cmd/migrate antes de subir o serviço.", err)
	}
	appLog.Info("Conexão PostgreSQL estabelecida.", nil)

	// B. Cache (Redis, apenas rate limiting). Sem Redis o serviço sobe sem limite.
	var cacheClient cache.Client
	redisClient, err := cache.NewRedisClient(cfg.RedisAddr)
	if err != nil {
		appLog.Warn("Redis indisponível; rate limiting desativado.", map[string]interface{}{"addr": cfg.RedisAddr, "error": err.Error()})
	} else {
		defer redisClient.Close()
		cacheClient = redisClient
		appLog.Info("Conexão Redis estabelecida.", nil)
	}

	// C. Catálogo de produtos
	var resolver catalog.Resolver = catalog.PassthroughResolver{}
	if cfg.CatalogURL != "" {
		resolver = catalog.NewHTTPClient(cfg.CatalogURL, cfg.CatalogTimeout, catalog.DefaultBreakerConfig(), appLog)
	} else {
		appLog.Warn("CATALOG_URL vazio; SKUs não serão validados.", nil)
	}

	// 2. Injeção de dependências: Repository -> Service -> Handler
	collectRepo := collectrepo.NewCollectRepository(gormDB, cfg.DBTimeout, appLog)
	collectSvc := collectservice.NewService(collectRepo, appLog, collectservice.WithCollectionLimit(cfg.CollectionLimit))

	tokenSvc := token.NewService(cfg.JWTSecretKey, cfg.TokenExpiry)
	authSvc := authservice.NewService(cfg.AdminEmail, cfg.AdminPasswordHash, tokenSvc, appLog)
	if !authSvc.Enabled() {
		appLog.Warn("ADMIN_EMAIL/ADMIN_PASSWORD_HASH ausentes; login administrativo desativado.", nil)
	}

	collectHandler := collect.NewHandler(collectSvc, resolver, appLog)
	adminHandler := admin.NewHandler(collectSvc, authSvc, resolver, appLog)

	r := router.NewRouter(router.Deps{
		Collect:              collectHandler,
		Admin:                adminHandler,
		TokenSvc:             tokenSvc,
		Cache:                cacheClient,
		Logger:               appLog,
		RateLimitMaxRequests: cfg.RateLimitMaxRequests,
		RateLimitPeriod:      cfg.RateLimitPeriod,
		AllowedOrigins:       cfg.CORSAllowedOrigins,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 3. Worker de limpeza
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cleanup := worker.NewCleanup(collectSvc, cfg.CleanupDaysOld, cfg.CleanupInterval, appLog)
	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		cleanup.Run(ctx)
	}()

	// 4. Execução e Graceful Shutdown
	go func() {
		appLog.Info("Servidor GoCollect ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Fatal("Servidor falhou.", err)
		}
	}()

	<-ctx.Done()
	appLog.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLog.Error("Desligamento do servidor forçado.", err)
	}
	<-workerDone

	appLog.Info("Servidor encerrado com sucesso.", nil)
}
