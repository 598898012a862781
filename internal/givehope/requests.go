// Структуры тел запросов API.
package givehope

import (
	"time"

	"github.com/givehope/givehope.go/internal/givehope/editor"
	"github.com/givehope/givehope.go/internal/givehope/editor/richtext"
)

type documentCreateRequest struct {
	Name string `json:"name" validate:"required,documentName"`
}

type documentUpdateRequest struct {
	Name string `json:"name"`
}

type blockInsertRequest struct {
	Type  string `json:"type"`
	Index *int   `json:"index,omitempty"`
}

type dropRequest struct {
	Payload editor.DragPayload `json:"payload"`
	Target  *editor.DropTarget `json:"target,omitempty"`
}

type reorderRequest struct {
	Index int `json:"index"`
}

type mergeTagRequest struct {
	Tag string `json:"tag"`
}

type contentUpdateRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type deviceRequest struct {
	Device string `json:"device"`
}

type templateLoadRequest struct {
	Confirm bool `json:"confirm"`
}

type richTextSelection struct {
	Block int `json:"block"`
	Start int `json:"start"`
	End   int `json:"end"`
}

type richTextRequest struct {
	HTML      string            `json:"html"`
	Selection richTextSelection `json:"selection"`
	Command   string            `json:"command"`
	Text      string            `json:"text,omitempty"`
}

type richTextResponse struct {
	HTML    string            `json:"html"`
	Formats []richtext.Format `json:"formats"`
}

type campaignCreateRequest struct {
	Name       string  `json:"name" validate:"required,campaignName"`
	Subject    string  `json:"subject"`
	DocumentId *string `json:"document_id,omitempty"`
}

type campaignUpdateRequest struct {
	Name       string  `json:"name"`
	Subject    string  `json:"subject"`
	DocumentId *string `json:"document_id,omitempty"`
}

type campaignScheduleRequest struct {
	ScheduledAt time.Time `json:"scheduled_at"`
}

type recipientRequest struct {
	Email          string `json:"email" validate:"required,email"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	DonationAmount int64  `json:"donation_amount"`
}

type ticketCreateRequest struct {
	Subject string `json:"subject" validate:"required"`
	Body    string `json:"body"`
	Email   string `json:"email" validate:"required,email"`
	Name    string `json:"name"`
}

type ticketReplyRequest struct {
	Body      string `json:"body"`
	Author    string `json:"author"`
	Suggested bool   `json:"suggested"`
}

type donationCreateRequest struct {
	Amount     int64   `json:"amount"`
	Currency   string  `json:"currency"`
	Email      string  `json:"email" validate:"required,email"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	CampaignId *string `json:"campaign_id,omitempty"`
}

type postRequest struct {
	Title    string `json:"title" validate:"required"`
	Body     string `json:"body"`
	Author   string `json:"author"`
	Location string `json:"location"`
}
