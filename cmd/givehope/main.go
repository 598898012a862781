// Основной пакет приложения GiveHope. Отвечает за запуск приложения, инициализацию базы данных, миграцию моделей и запуск основного сервера приложения.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/givehope/givehope.go/internal/givehope"
	"github.com/givehope/givehope.go/internal/givehope/config"
	"github.com/givehope/givehope.go/internal/givehope/dao"
	"github.com/givehope/givehope.go/internal/givehope/gormlogger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var version string = "DEV"

func main() {
	paramQueries := flag.Bool("paramQueries", true, "Mask queries params in log")
	noMigration := flag.Bool("noMigration", false, "Turn off DB migration")
	trace := flag.Bool("trace", false, "Verbose logs and sql trace")
	flag.Parse()

	PrintBanner()

	cfg := config.ReadConfig()
	dao.Config = cfg

	if *trace {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	// Set prod log format
	if version != "DEV" {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{})))
	}

	slog.Info("GiveHope start.")

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseDSN,
		PreferSimpleProtocol: false, // disables implicit prepared statement usage
	}), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.NewGormLogger(slog.Default(), time.Second*4, *paramQueries),
	})
	if err != nil {
		slog.Error("Fail init DB connection", "err", err)
		os.Exit(1)
	}

	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Fail set settings to conn pool", "err", err)
		os.Exit(1)
	}
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetMaxIdleConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(time.Minute * 15)

	if !*noMigration {
		if err := givehope.Migrate(db); err != nil {
			slog.Error("DB migration", "err", err)
			os.Exit(1)
		}
	}

	givehope.Server(db, cfg, version)
}

func PrintBanner() {
	fmt.Printf(`
  ____ _           _   _
 / ___(_)_   _____| | | | ___  _ __   ___
| |  _| \ \ / / _ \ |_| |/ _ \| '_ \ / _ \
| |_| | |\ V /  __/  _  | (_) | |_) |  __/
 \____|_| \_/ \___|_| |_|\___/| .__/ \___|
                              |_|  %s
`, version)
}
