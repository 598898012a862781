// Middleware загрузки сущностей по параметрам маршрута.
package givehope

import (
	"errors"

	"github.com/givehope/givehope.go/internal/givehope/apierrors"
	"github.com/givehope/givehope.go/internal/givehope/dao"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type DocumentContext struct {
	echo.Context
	Document dao.StudioDocument
}

type CampaignContext struct {
	echo.Context
	Campaign dao.Campaign
}

type TicketContext struct {
	echo.Context
	Ticket dao.Ticket
}

func (s *Services) DocumentMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		doc, err := dao.GetDocument(s.db, c.Param("documentId"))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return EErrorDefined(c, apierrors.ErrDocumentNotFound)
			}
			return EError(c, err)
		}
		return next(DocumentContext{c, doc})
	}
}

func (s *Services) CampaignMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		campaign, err := dao.GetCampaign(s.db, c.Param("campaignId"))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return EErrorDefined(c, apierrors.ErrCampaignNotFound)
			}
			return EError(c, err)
		}
		return next(CampaignContext{c, campaign})
	}
}

func (s *Services) TicketMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ticket, err := dao.GetTicket(s.db, c.Param("ticketId"))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return EErrorDefined(c, apierrors.ErrTicketNotFound)
			}
			return EError(c, err)
		}
		return next(TicketContext{c, ticket})
	}
}
