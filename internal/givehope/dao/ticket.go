// Модели обращений сторонников и ответов на них.
package dao

import (
	"time"

	"gorm.io/gorm"
)

type TicketStatus string

const (
	TicketOpen   TicketStatus = "open"
	TicketClosed TicketStatus = "closed"
)

type Ticket struct {
	// id uuid IS_NULL:NO
	Id string `json:"id" gorm:"primaryKey"`

	Subject string `json:"subject"`
	Body    string `json:"body"`

	Email string `json:"email" gorm:"index"`
	Name  string `json:"name"`

	Status TicketStatus `json:"status" gorm:"default:open;index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Replies []TicketReply `json:"replies,omitempty" gorm:"foreignKey:TicketId"`
}

func (Ticket) TableName() string { return "tickets" }

func (t *Ticket) BeforeCreate(tx *gorm.DB) error {
	if t.Id == "" {
		t.Id = GenID()
	}
	return nil
}

type TicketReply struct {
	// id uuid IS_NULL:NO
	Id string `json:"id" gorm:"primaryKey"`
	// ticket_id uuid IS_NULL:NO
	TicketId string `json:"ticket_id" gorm:"index"`

	Body   string `json:"body"`
	Author string `json:"author"`

	// true when the reply text came from the assistant draft
	Suggested bool `json:"suggested"`

	CreatedAt time.Time `json:"created_at"`
}

func (TicketReply) TableName() string { return "ticket_replies" }

func (r *TicketReply) BeforeCreate(tx *gorm.DB) error {
	if r.Id == "" {
		r.Id = GenID()
	}
	return nil
}

// GetTicket возвращает обращение вместе с ответами.
func GetTicket(db *gorm.DB, id string) (Ticket, error) {
	var ticket Ticket
	err := db.Preload("Replies", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at")
	}).Where("id = ?", id).First(&ticket).Error
	return ticket, err
}
