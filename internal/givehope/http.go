// Пакет givehope предоставляет основные компоненты центра управления некоммерческой организации. Он включает в себя студию документов для рассылок, управление email-кампаниями, обращения сторонников, прием пожертвований и публикации полевых сотрудников. Также предоставляет API для интеграции с другими сервисами и внешними системами.
//
// Основные возможности:
//   - Студия документов: дерево блоков, пресеты, шаблоны, экспорт в HTML и PDF.
//   - Рассылка email-кампаний с подстановкой данных получателя.
//   - Обращения сторонников с черновиками ответов от помощника.
//   - Прием и подтверждение пожертвований.
//   - Публикации полевых сотрудников.
package givehope

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/givehope/givehope.go/internal/givehope/assist"
	"github.com/givehope/givehope.go/internal/givehope/config"
	"github.com/givehope/givehope.go/internal/givehope/cronmanager"
	"github.com/givehope/givehope.go/internal/givehope/dao"
	"github.com/givehope/givehope.go/internal/givehope/editor/library"
	"github.com/givehope/givehope.go/internal/givehope/notifications"
	"github.com/givehope/givehope.go/internal/givehope/payments"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

type Services struct {
	db           *gorm.DB
	emailService *notifications.EmailService
	provider     payments.Provider
	assistant    *assist.Assistant
	library      *library.Library
}

var cfg *config.Config
var appVersion string

// ServerHeader middleware adds a `Server` header to the response.
func ServerHeader(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set(echo.HeaderServer, "GiveHope")
		return next(c)
	}
}

func Server(db *gorm.DB, c *config.Config, version string) {
	cfg = c
	appVersion = version

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		code := http.StatusInternalServerError
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
		}

		// Ignore 404
		if code == http.StatusNotFound {
			c.NoContent(http.StatusNotFound)
			return
		}
		slog.Error("Unhandled error in endpoint", "url", c.Request().URL, "err", err)
		EErrorMsgStatus(c, nil, code)
	}

	es := notifications.NewEmailService(cfg, db)

	assistant, err := assist.NewAssistant(cfg)
	if err != nil {
		slog.Warn("Assistant unavailable", "err", err)
	}

	s := &Services{
		db:           db,
		emailService: es,
		provider:     payments.NewProvider(cfg),
		assistant:    assistant,
		library:      library.New(),
	}

	jobRegistry := cronmanager.JobRegistry{
		"campaign_dispatch": cronmanager.Job{
			Func:     s.DispatchDueCampaigns,
			Schedule: cfg.CampaignCron,
		},
	}

	cronManager := cronmanager.NewCronManager(jobRegistry)
	if err := cronManager.LoadJobs(); err != nil {
		slog.Error("Failed to load cron jobs", "err", err)
		os.Exit(1)
	}
	cronManager.Start()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		slog.Info("Shutting down gracefully, press Ctrl+C again to force")
		cronManager.Stop()
		es.Stop()
		os.Exit(0)
	}()

	// Global middlewares
	e.Use(ServerHeader)
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowCredentials: true,
	}))
	e.Use(middleware.BodyLimit("5M"))
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level:     9,
		MinLength: 2048,
	}))
	e.Use(echoprometheus.NewMiddleware("givehope"))
	e.Pre(middleware.AddTrailingSlash())

	e.Validator = NewRequestValidator()

	apiGroup := e.Group("/api/")

	s.AddStudioServices(apiGroup)
	s.AddCampaignServices(apiGroup)
	s.AddTicketServices(apiGroup)
	s.AddDonationServices(apiGroup)
	s.AddContentServices(apiGroup)

	// Version endpoint
	apiGroup.GET("version/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"version":       version,
			"demo":          cfg.Demo,
			"payments_mock": cfg.PaymentsMock,
		})
	})

	// Health endpoint
	apiGroup.GET("_health/", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	// Prometheus metrics
	go func() {
		bootTimeGauge := prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "givehope",
			Name:      "boot_time",
			Help:      "Server startup time",
		})
		bootTimeGauge.Set(float64(time.Now().UnixMilli()))

		if err := prometheus.Register(bootTimeGauge); err != nil {
			slog.Error("Register boot time gauge", "err", err)
		}

		metrics := echo.New()
		metrics.HideBanner = true
		metrics.GET("/metrics", echoprometheus.NewHandler())
		if err := metrics.Start(":2112"); err != nil && err != http.ErrServerClosed {
			slog.Error("Metrics server", "err", err)
		}
	}()

	e.Logger.Fatal(e.Start(":8080"))
}

// Migrate выполняет авто-миграцию моделей приложения.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&dao.StudioDocument{},
		&dao.Campaign{},
		&dao.CampaignRecipient{},
		&dao.Ticket{},
		&dao.TicketReply{},
		&dao.Donation{},
		&dao.ContentPost{},
	)
}
