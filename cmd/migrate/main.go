package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"gocollect/config"
	"gocollect/internal/pkg/database"
	"gocollect/migrations"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("⚠️ Aviso: .env não encontrado. Carregando configs apenas do ambiente do sistema: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("goose: configuração inválida: %v", err)
	}

	var verbose bool
	flag.BoolVar(&verbose, "v", false, "exibe o log do goose")
	flag.Parse()

	db, err := database.NewPostgresDB(cfg.DatabaseURL, database.DefaultPoolConfig())
	if err != nil {
		log.Fatalf("goose: falha ao conectar ao DB: %v\n", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Fatalf("goose: falha ao fechar o DB: %v\n", err)
		}
	}()

	// As migrações são embutidas no binário.
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("goose: %v", err)
	}
	if !verbose {
		goose.SetLogger(goose.NopLogger())
	}

	arguments := flag.Args()
	if len(arguments) == 0 {
		arguments = []string{"up"}
	}

	command := arguments[0]
	var args []string
	if len(arguments) > 1 {
		args = arguments[1:]
	}

	if err := goose.Run(command, db, ".", args...); err != nil {
		log.Fatalf("goose %v: %v", command, err)
	}

	fmt.Printf("goose %s success\n", command)
}
