package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"gocollect/config"
	"gocollect/internal/pkg/database"
	"gocollect/internal/pkg/logger"
	"gocollect/internal/repository/collectrepo"
	"gocollect/internal/service/collectservice"
	"gocollect/internal/worker"
)

// Executa uma única limpeza de favoritos cancelados e sai. Pensado para cron.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Aviso: .env não encontrado. Carregando configs apenas do ambiente do sistema.")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("configuração inválida: %v", err)
	}

	var daysOld int
	flag.IntVar(&daysOld, "days", cfg.CleanupDaysOld, "idade mínima, em dias, dos cancelados a expurgar")
	flag.Parse()

	appLog := logger.NewLogger(cfg.LogLevel)

	sqlDB, err := database.NewPostgresDB(cfg.DatabaseURL, database.DefaultPoolConfig())
	if err != nil {
		appLog.Fatal("Falha ao conectar ao banco de dados.", err)
	}
	defer sqlDB.Close()

	gormDB, err := database.NewGormDB(sqlDB, appLog)
	if err != nil {
		appLog.Fatal("Falha ao inicializar o gorm.", err)
	}

	repo := collectrepo.NewCollectRepository(gormDB, cfg.DBTimeout, appLog)
	svc := collectservice.NewService(repo, appLog)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	deleted, err := worker.NewCleanup(svc, daysOld, 0, appLog).RunOnce(ctx)
	if err != nil {
		appLog.Fatal("Limpeza falhou.", err)
	}

	fmt.Printf("cleanup: %d favoritos cancelados expurgados (days_old=%d)\n", deleted, daysOld)
}
