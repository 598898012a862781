// Рассылка кампаний: рендеринг документа, подстановка данных получателя и доставка.
package notifications

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/givehope/givehope.go/internal/givehope/apierrors"
	"github.com/givehope/givehope.go/internal/givehope/dao"
	"github.com/givehope/givehope.go/internal/givehope/export"
)

// MergeData - значения тегов подстановки одного получателя.
type MergeData struct {
	FirstName      string
	LastName       string
	Email          string
	DonationAmount int64
	UnsubscribeURL string
}

// SubstituteMergeTags заменяет теги {{...}} в теле письма значениями получателя.
// Неизвестные теги остаются как есть.
func SubstituteMergeTags(body string, data MergeData) string {
	amount := ""
	if data.DonationAmount > 0 {
		amount = fmt.Sprintf("$%.2f", float64(data.DonationAmount)/100)
	}
	r := strings.NewReplacer(
		"{{first_name}}", data.FirstName,
		"{{last_name}}", data.LastName,
		"{{email}}", data.Email,
		"{{donation_amount}}", amount,
		"{{unsubscribe_url}}", data.UnsubscribeURL,
	)
	return r.Replace(body)
}

// SendCampaign рендерит документ кампании и отправляет его всем получателям без
// отметки об отправке. Возвращает количество успешно поставленных в очередь писем.
func (es *EmailService) SendCampaign(campaign *dao.Campaign) (int, error) {
	if campaign.Document == nil {
		return 0, apierrors.ErrCampaignNoDocument
	}

	var recipients []dao.CampaignRecipient
	if err := es.db.Where("campaign_id = ? AND sent_at IS NULL", campaign.Id).
		Find(&recipients).Error; err != nil {
		return 0, err
	}
	if len(recipients) == 0 {
		return 0, apierrors.ErrCampaignEmptyAudience
	}

	var buf bytes.Buffer
	if err := export.HTML(campaign.Document.Snapshot.Snapshot, &buf); err != nil {
		return 0, err
	}
	body := buf.String()

	sent := 0
	for _, recipient := range recipients {
		content := SubstituteMergeTags(body, MergeData{
			FirstName:      recipient.FirstName,
			LastName:       recipient.LastName,
			Email:          recipient.Email,
			DonationAmount: recipient.DonationAmount,
			UnsubscribeURL: es.cfg.WebURL.JoinPath("unsubscribe", recipient.UnsubscribeToken).String(),
		})

		err := es.Send(mail{
			To:          recipient.Email,
			Subject:     SubstituteMergeTags(campaign.Subject, MergeData{FirstName: recipient.FirstName, LastName: recipient.LastName, Email: recipient.Email}),
			Content:     content,
			TextContent: htmlStripPolicy.Sanitize(content),
		})

		now := time.Now()
		update := map[string]interface{}{"sent_at": &now, "last_error": ""}
		if err != nil {
			update = map[string]interface{}{"last_error": err.Error()}
			slog.Error("Campaign email enqueue failed",
				slog.String("campaign", campaign.Id),
				slog.String("to", recipient.Email),
				"err", err)
		} else {
			sent++
		}
		if err := es.db.Model(&dao.CampaignRecipient{}).
			Where("id = ?", recipient.Id).
			Updates(update).Error; err != nil {
			slog.Error("Campaign recipient update failed", slog.String("id", recipient.Id), "err", err)
		}
	}

	return sent, nil
}

// DonationReceipt отправляет квитанцию о подтвержденном пожертвовании.
func (es *EmailService) DonationReceipt(donation dao.Donation) error {
	content := fmt.Sprintf(
		`<h1>Thank you%s!</h1><p>Your donation of <b>$%.2f</b> has been received.</p><p>Receipt #%s</p>`,
		nameSuffix(donation.FirstName),
		float64(donation.Amount)/100,
		donation.Id,
	)
	return es.Send(mail{
		To:          donation.Email,
		Subject:     "Thank you for your donation",
		Content:     content,
		TextContent: htmlStripPolicy.Sanitize(content),
	})
}

// TicketReplied уведомляет автора обращения о новом ответе.
func (es *EmailService) TicketReplied(ticket dao.Ticket, reply dao.TicketReply) error {
	content := fmt.Sprintf(
		`<p>Hello%s,</p><p>Your request "%s" has a new reply:</p><blockquote>%s</blockquote>`,
		nameSuffix(ticket.Name),
		ticket.Subject,
		htmlStripPolicy.Sanitize(reply.Body),
	)
	return es.Send(mail{
		To:          ticket.Email,
		Subject:     "Re: " + ticket.Subject,
		Content:     content,
		TextContent: htmlStripPolicy.Sanitize(content),
	})
}

func nameSuffix(name string) string {
	if name == "" {
		return ""
	}
	return ", " + name
}
