// Содержит структуры данных (DTO) для представления сущностей приложения в API.  Предназначен для обеспечения структурированного обмена данными между компонентами приложения и внешними системами.
//
// Основные возможности:
//   - Представление документов студии (DocumentLight, DocumentFull).
//   - Представление кампаний (CampaignLight).
//   - Представление обращений (TicketLight, TicketReplyLight).
//   - Представление пожертвований (DonationLight).
//   - Представление публикаций (PostLight).
package dto

import (
	"time"

	"github.com/givehope/givehope.go/internal/givehope/export"
)

type DocumentLight struct {
	Id         string    `json:"id"`
	Name       string    `json:"name"`
	BlockCount int       `json:"block_count"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type DocumentFull struct {
	DocumentLight

	Snapshot export.Snapshot `json:"snapshot"`
	Device   string          `json:"device"`
}

type CampaignLight struct {
	Id             string     `json:"id"`
	Name           string     `json:"name"`
	Subject        string     `json:"subject"`
	Status         string     `json:"status"`
	DocumentId     *string    `json:"document_id,omitempty" extensions:"x-nullable"`
	RecipientCount int        `json:"recipient_count"`
	ScheduledAt    *time.Time `json:"scheduled_at,omitempty" extensions:"x-nullable"`
	SentAt         *time.Time `json:"sent_at,omitempty" extensions:"x-nullable"`
}

type TicketReplyLight struct {
	Id        string    `json:"id"`
	Body      string    `json:"body"`
	Author    string    `json:"author"`
	Suggested bool      `json:"suggested"`
	CreatedAt time.Time `json:"created_at"`
}

type TicketLight struct {
	Id        string             `json:"id"`
	Subject   string             `json:"subject"`
	Body      string             `json:"body"`
	Email     string             `json:"email"`
	Name      string             `json:"name"`
	Status    string             `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
	Replies   []TicketReplyLight `json:"replies,omitempty"`
}

type DonationLight struct {
	Id          string     `json:"id"`
	Amount      int64      `json:"amount"`
	Currency    string     `json:"currency"`
	Email       string     `json:"email"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty" extensions:"x-nullable"`
}

type PostLight struct {
	Id          string     `json:"id"`
	Title       string     `json:"title"`
	Body        string     `json:"body"`
	Author      string     `json:"author"`
	Location    string     `json:"location"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"published_at,omitempty" extensions:"x-nullable"`
}

// PaginationResult - стандартная обертка списочных ответов.
type PaginationResult struct {
	Count  int64       `json:"count"`
	Limit  int         `json:"limit"`
	Offset int         `json:"offset"`
	Result interface{} `json:"result"`
}
