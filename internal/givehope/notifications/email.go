// Пакет предоставляет функциональность для отправки писем сторонникам: рассылки кампаний, квитанции о пожертвованиях и ответы на обращения.  Поддерживает персонализацию содержимого тегами подстановки и отправку как в виде HTML, так и в виде простого текста.  Также включает в себя обработку ошибок и логирование событий.
//
// Основные возможности:
//   - Отправка писем через пул воркеров.
//   - Рассылка кампаний с подстановкой данных получателя.
//   - Квитанции о подтвержденных пожертвованиях.
//   - Уведомления об ответах на обращения.
package notifications

import (
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/givehope/givehope.go/internal/givehope/config"
	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/gomail.v2"
	"gorm.io/gorm"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/html"
)

var htmlStripPolicy *bluemonday.Policy = bluemonday.StrictPolicy()
var minifier *minify.M = minify.New()

type EmailService struct {
	d        *gomail.Dialer
	cfg      *config.Config
	db       *gorm.DB
	disabled bool

	emailChan chan mail
	eg        errgroup.Group
}

type mail struct {
	To          string
	Subject     string
	Content     string
	TextContent string
}

func NewEmailService(cfg *config.Config, db *gorm.DB) *EmailService {
	minifier.AddFunc("text/html", html.Minify)

	es := &EmailService{
		d:         gomail.NewDialer(cfg.EmailHost, cfg.EmailPort, cfg.EmailUser, cfg.EmailPassword),
		cfg:       cfg,
		db:        db,
		emailChan: make(chan mail),
	}

	for i := 0; i < cfg.EmailWorkers; i++ {
		es.eg.Go(func() error {
			return es.worker(es.emailChan)
		})
	}

	return es
}

func (es *EmailService) Stop() {
	slog.Info("Closing email workers")
	es.disabled = true
	close(es.emailChan)

	if err := es.eg.Wait(); err != nil {
		slog.Error("Worker err", "err", err)
	}

	slog.Info("Email workers successfully stopped")
}

func (es *EmailService) sendEmail(e mail) error {
	m := gomail.NewMessage()
	m.SetHeader("From", es.cfg.EmailFrom)
	m.SetHeader("To", e.To)
	m.SetHeader("Subject", e.Subject)
	m.SetBody("text/plain", e.TextContent)
	m.AddAlternative("text/html", e.Content)

	return es.d.DialAndSend(m)
}

func (es *EmailService) Send(e mail) error {
	if es.disabled {
		return fmt.Errorf("email service stop")
	}
	es.emailChan <- e
	return nil
}

func (es *EmailService) worker(emailChan <-chan mail) error {
	for e := range emailChan {
		if err := es.sendEmail(e); err != nil {
			slog.Error("email send err", "to", e.To, "err", err)
		}
	}
	return nil
}
