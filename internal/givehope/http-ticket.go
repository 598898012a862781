// Обращения сторонников: создание, ответы, черновики помощника.
package givehope

import (
	"net/http"
	"strings"

	"github.com/givehope/givehope.go/internal/givehope/apierrors"
	"github.com/givehope/givehope.go/internal/givehope/dao"
	"github.com/givehope/givehope.go/internal/givehope/dto"
	"github.com/labstack/echo/v4"
)

func (s *Services) AddTicketServices(g *echo.Group) {
	g.GET("tickets/", s.getTicketList)
	g.POST("tickets/", s.createTicket)

	ticketGroup := g.Group("tickets/:ticketId", s.TicketMiddleware)
	ticketGroup.GET("/", s.getTicket)
	ticketGroup.POST("/replies/", s.replyTicket)
	ticketGroup.POST("/close/", s.closeTicket)
	ticketGroup.POST("/suggest/", s.suggestTicketReply)
}

func (s *Services) getTicketList(c echo.Context) error {
	query := s.db.Order("created_at desc")
	if status := c.QueryParam("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var tickets []dao.Ticket
	if err := query.Find(&tickets).Error; err != nil {
		return EError(c, err)
	}

	res := make([]dto.TicketLight, len(tickets))
	for i := range tickets {
		res[i] = *tickets[i].ToLightDTO()
	}
	return c.JSON(http.StatusOK, res)
}

func (s *Services) createTicket(c echo.Context) error {
	var req ticketCreateRequest
	if err := c.Bind(&req); err != nil {
		return EErrorDefined(c, apierrors.ErrBadRequest)
	}
	if err := c.Validate(&req); err != nil {
		return EErrorDefined(c, apierrors.ErrBadRequest)
	}
	if strings.TrimSpace(req.Body) == "" {
		return EErrorDefined(c, apierrors.ErrTicketBodyRequired)
	}

	ticket := dao.Ticket{
		Subject: req.Subject,
		Body:    req.Body,
		Email:   req.Email,
		Name:    req.Name,
		Status:  dao.TicketOpen,
	}
	if err := s.db.Create(&ticket).Error; err != nil {
		return EError(c, err)
	}
	return c.JSON(http.StatusCreated, ticket.ToLightDTO())
}

func (s *Services) getTicket(c echo.Context) error {
	ticket := c.(TicketContext).Ticket
	return c.JSON(http.StatusOK, ticket.ToLightDTO())
}

func (s *Services) replyTicket(c echo.Context) error {
	ticket := c.(TicketContext).Ticket
	if ticket.Status == dao.TicketClosed {
		return EErrorDefined(c, apierrors.ErrTicketClosed)
	}

	var req ticketReplyRequest
	if err := c.Bind(&req); err != nil {
		return EErrorDefined(c, apierrors.ErrBadRequest)
	}
	if strings.TrimSpace(req.Body) == "" {
		return EErrorDefined(c, apierrors.ErrTicketBodyRequired)
	}

	reply := dao.TicketReply{
		TicketId:  ticket.Id,
		Body:      req.Body,
		Author:    req.Author,
		Suggested: req.Suggested,
	}
	if err := s.db.Create(&reply).Error; err != nil {
		return EError(c, err)
	}

	if err := s.emailService.TicketReplied(ticket, reply); err != nil {
		return EError(c, err)
	}
	return c.JSON(http.StatusCreated, reply.ToLightDTO())
}

func (s *Services) closeTicket(c echo.Context) error {
	ticket := c.(TicketContext).Ticket
	if ticket.Status == dao.TicketClosed {
		return EErrorDefined(c, apierrors.ErrTicketClosed)
	}

	ticket.Status = dao.TicketClosed
	if err := s.db.Save(&ticket).Error; err != nil {
		return EError(c, err)
	}
	return c.JSON(http.StatusOK, ticket.ToLightDTO())
}

// suggestTicketReply возвращает черновик ответа от помощника. Черновик не
// сохраняется: оператор правит его и отправляет через replyTicket.
func (s *Services) suggestTicketReply(c echo.Context) error {
	ticket := c.(TicketContext).Ticket
	if s.assistant == nil {
		return EErrorDefined(c, apierrors.ErrAssistUnavailable)
	}

	draft, err := s.assistant.SuggestReply(c.Request().Context(), ticket)
	if err != nil {
		return EError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"draft":     draft,
		"suggested": true,
	})
}
