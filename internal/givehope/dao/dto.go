// Конвертация моделей в DTO для ответов API.
package dao

import (
	"github.com/givehope/givehope.go/internal/givehope/dto"
)

func (d *StudioDocument) ToLightDTO() *dto.DocumentLight {
	if d == nil {
		return nil
	}
	return &dto.DocumentLight{
		Id:         d.Id,
		Name:       d.Name,
		BlockCount: len(d.Snapshot.Blocks),
		UpdatedAt:  d.UpdatedAt,
	}
}

func (d *StudioDocument) ToFullDTO() *dto.DocumentFull {
	if d == nil {
		return nil
	}
	return &dto.DocumentFull{
		DocumentLight: *d.ToLightDTO(),
		Snapshot:      d.Snapshot.Snapshot,
		Device:        d.Device,
	}
}

func (c *Campaign) ToLightDTO() *dto.CampaignLight {
	if c == nil {
		return nil
	}
	return &dto.CampaignLight{
		Id:             c.Id,
		Name:           c.Name,
		Subject:        c.Subject,
		Status:         string(c.Status),
		DocumentId:     c.DocumentId,
		RecipientCount: len(c.Recipients),
		ScheduledAt:    c.ScheduledAt,
		SentAt:         c.SentAt,
	}
}

func (t *Ticket) ToLightDTO() *dto.TicketLight {
	if t == nil {
		return nil
	}
	res := &dto.TicketLight{
		Id:        t.Id,
		Subject:   t.Subject,
		Body:      t.Body,
		Email:     t.Email,
		Name:      t.Name,
		Status:    string(t.Status),
		CreatedAt: t.CreatedAt,
	}
	for _, reply := range t.Replies {
		res.Replies = append(res.Replies, *reply.ToLightDTO())
	}
	return res
}

func (r *TicketReply) ToLightDTO() *dto.TicketReplyLight {
	if r == nil {
		return nil
	}
	return &dto.TicketReplyLight{
		Id:        r.Id,
		Body:      r.Body,
		Author:    r.Author,
		Suggested: r.Suggested,
		CreatedAt: r.CreatedAt,
	}
}

func (d *Donation) ToLightDTO() *dto.DonationLight {
	if d == nil {
		return nil
	}
	return &dto.DonationLight{
		Id:          d.Id,
		Amount:      d.Amount,
		Currency:    d.Currency,
		Email:       d.Email,
		Status:      string(d.Status),
		CreatedAt:   d.CreatedAt,
		ConfirmedAt: d.ConfirmedAt,
	}
}

func (p *ContentPost) ToLightDTO() *dto.PostLight {
	if p == nil {
		return nil
	}
	return &dto.PostLight{
		Id:          p.Id,
		Title:       p.Title,
		Body:        p.Body,
		Author:      p.Author,
		Location:    p.Location,
		Published:   p.Published,
		PublishedAt: p.PublishedAt,
	}
}
