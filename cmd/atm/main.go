package main

import (
	"log"
	"os"

	"github.com/spf13/viper"

	"github.com/JohnMutemi/revised-banking-cli/internal/cli"
	"github.com/JohnMutemi/revised-banking-cli/internal/database"
	"github.com/JohnMutemi/revised-banking-cli/internal/logging"
	"github.com/JohnMutemi/revised-banking-cli/internal/services"
)

func main() {
	// Initialize config
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()
	viper.ReadInConfig()

	viper.BindEnv("database.path", "ATM_DATABASE_PATH")
	viper.BindEnv("database.busy_timeout", "ATM_DATABASE_BUSY_TIMEOUT")
	viper.BindEnv("log.level", "ATM_LOG_LEVEL")
	viper.BindEnv("log.format", "ATM_LOG_FORMAT")

	logConfig := logging.DefaultConfig()
	if level := viper.GetString("log.level"); level != "" {
		logConfig.Level = level
	}
	if format := viper.GetString("log.format"); format != "" {
		logConfig.Format = format
	}
	logger, err := logging.New(logConfig)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.Open(database.GetConfig())
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := database.Init(db); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}

	engine := services.NewATMService(db, logger)
	if err := engine.Setup(); err != nil {
		log.Fatalf("Failed to seed categories: %v", err)
	}

	cli.New(engine, os.Stdin, os.Stdout).Run()
}
