// Email-кампании: CRUD, получатели, планирование и отправка.
package givehope

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/givehope/givehope.go/internal/givehope/apierrors"
	"github.com/givehope/givehope.go/internal/givehope/dao"
	"github.com/givehope/givehope.go/internal/givehope/dto"
	"github.com/labstack/echo/v4"
)

func (s *Services) AddCampaignServices(g *echo.Group) {
	g.GET("campaigns/", s.getCampaignList)
	g.POST("campaigns/", s.createCampaign)

	campaignGroup := g.Group("campaigns/:campaignId", s.CampaignMiddleware)
	campaignGroup.GET("/", s.getCampaign)
	campaignGroup.PATCH("/", s.updateCampaign)
	campaignGroup.DELETE("/", s.deleteCampaign)

	campaignGroup.GET("/recipients/", s.getRecipientList)
	campaignGroup.POST("/recipients/", s.addRecipient)
	campaignGroup.DELETE("/recipients/:recipientId/", s.removeRecipient)

	campaignGroup.POST("/schedule/", s.scheduleCampaign)
	campaignGroup.POST("/send/", s.sendCampaign)

	g.GET("unsubscribe/:token/", s.unsubscribe)
}

func (s *Services) getCampaignList(c echo.Context) error {
	var campaigns []dao.Campaign
	if err := s.db.Preload("Recipients").Order("created_at desc").Find(&campaigns).Error; err != nil {
		return EError(c, err)
	}

	res := make([]dto.CampaignLight, len(campaigns))
	for i := range campaigns {
		res[i] = *campaigns[i].ToLightDTO()
	}
	return c.JSON(http.StatusOK, res)
}

func (s *Services) createCampaign(c echo.Context) error {
	var req campaignCreateRequest
	if err := c.Bind(&req); err != nil {
		return EErrorDefined(c, apierrors.ErrBadRequest)
	}
	if err := c.Validate(&req); err != nil {
		return EErrorDefined(c, apierrors.ErrBadRequest)
	}

	campaign := dao.Campaign{
		Name:       req.Name,
		Subject:    req.Subject,
		DocumentId: req.DocumentId,
		Status:     dao.CampaignDraft,
	}
	if err := s.db.Create(&campaign).Error; err != nil {
		return EError(c, err)
	}
	return c.JSON(http.StatusCreated, campaign.ToLightDTO())
}

func (s *Services) getCampaign(c echo.Context) error {
	campaign := c.(CampaignContext).Campaign
	return c.JSON(http.StatusOK, campaign.ToLightDTO())
}

func (s *Services) updateCampaign(c echo.Context) error {
	campaign := c.(CampaignContext).Campaign
	if campaign.Status == dao.CampaignSent {
		return EErrorDefined(c, apierrors.ErrCampaignAlreadySent)
	}

	var req campaignUpdateRequest
	if err := c.Bind(&req); err != nil {
		return EErrorDefined(c, apierrors.ErrBadRequest)
	}

	if strings.TrimSpace(req.Name) != "" {
		campaign.Name = req.Name
	}
	if req.Subject != "" {
		campaign.Subject = req.Subject
	}
	if req.DocumentId != nil {
		campaign.DocumentId = req.DocumentId
	}

	if err := s.db.Save(&campaign).Error; err != nil {
		return EError(c, err)
	}
	return c.JSON(http.StatusOK, campaign.ToLightDTO())
}

func (s *Services) deleteCampaign(c echo.Context) error {
	campaign := c.(CampaignContext).Campaign
	if err := s.db.Where("campaign_id = ?", campaign.Id).Delete(&dao.CampaignRecipient{}).Error; err != nil {
		return EError(c, err)
	}
	if err := s.db.Delete(&campaign).Error; err != nil {
		return EError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Services) getRecipientList(c echo.Context) error {
	campaign := c.(CampaignContext).Campaign

	var recipients []dao.CampaignRecipient
	if err := s.db.Where("campaign_id = ?", campaign.Id).Find(&recipients).Error; err != nil {
		return EError(c, err)
	}
	return c.JSON(http.StatusOK, recipients)
}

func (s *Services) addRecipient(c echo.Context) error {
	campaign := c.(CampaignContext).Campaign

	var req recipientRequest
	if err := c.Bind(&req); err != nil {
		return EErrorDefined(c, apierrors.ErrBadRequest)
	}
	if err := c.Validate(&req); err != nil {
		return EErrorDefined(c, apierrors.ErrBadRequest)
	}

	recipient := dao.CampaignRecipient{
		CampaignId:     campaign.Id,
		Email:          req.Email,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		DonationAmount: req.DonationAmount,
	}
	if err := s.db.Create(&recipient).Error; err != nil {
		return EError(c, err)
	}
	return c.JSON(http.StatusCreated, recipient)
}

func (s *Services) removeRecipient(c echo.Context) error {
	campaign := c.(CampaignContext).Campaign
	if err := s.db.Where("campaign_id = ? AND id = ?", campaign.Id, c.Param("recipientId")).
		Delete(&dao.CampaignRecipient{}).Error; err != nil {
		return EError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Services) scheduleCampaign(c echo.Context) error {
	campaign := c.(CampaignContext).Campaign
	if campaign.Status == dao.CampaignSent {
		return EErrorDefined(c, apierrors.ErrCampaignAlreadySent)
	}

	var req campaignScheduleRequest
	if err := c.Bind(&req); err != nil {
		return EErrorDefined(c, apierrors.ErrBadRequest)
	}
	if req.ScheduledAt.Before(time.Now()) {
		return EErrorDefined(c, apierrors.ErrBadSchedule)
	}

	campaign.Status = dao.CampaignScheduled
	campaign.ScheduledAt = &req.ScheduledAt
	if err := s.db.Save(&campaign).Error; err != nil {
		return EError(c, err)
	}
	return c.JSON(http.StatusOK, campaign.ToLightDTO())
}

func (s *Services) sendCampaign(c echo.Context) error {
	campaign := c.(CampaignContext).Campaign
	if campaign.Status == dao.CampaignSent {
		return EErrorDefined(c, apierrors.ErrCampaignAlreadySent)
	}

	if err := s.deliverCampaign(&campaign); err != nil {
		return EError(c, err)
	}
	return c.JSON(http.StatusOK, campaign.ToLightDTO())
}

func (s *Services) deliverCampaign(campaign *dao.Campaign) error {
	campaign.Status = dao.CampaignSending
	if err := s.db.Save(campaign).Error; err != nil {
		return err
	}

	if _, err := s.emailService.SendCampaign(campaign); err != nil {
		campaign.Status = dao.CampaignDraft
		s.db.Save(campaign)
		return err
	}

	now := time.Now()
	campaign.Status = dao.CampaignSent
	campaign.SentAt = &now
	return s.db.Save(campaign).Error
}

// DispatchDueCampaigns отправляет запланированные кампании, срок которых
// наступил. Вызывается планировщиком.
func (s *Services) DispatchDueCampaigns() {
	campaigns, err := dao.DueCampaigns(s.db, time.Now())
	if err != nil {
		slog.Error("Fetch due campaigns", "err", err)
		return
	}

	for i := range campaigns {
		if err := s.deliverCampaign(&campaigns[i]); err != nil {
			slog.Error("Dispatch campaign", slog.String("id", campaigns[i].Id), "err", err)
		}
	}
}

// unsubscribe удаляет получателя из всех будущих рассылок по токену из письма.
func (s *Services) unsubscribe(c echo.Context) error {
	token := c.Param("token")

	var recipient dao.CampaignRecipient
	if err := s.db.Where("unsubscribe_token = ?", token).First(&recipient).Error; err != nil {
		return c.NoContent(http.StatusNotFound)
	}

	if err := s.db.Where("email = ?", recipient.Email).Delete(&dao.CampaignRecipient{}).Error; err != nil {
		return EError(c, err)
	}
	return c.HTML(http.StatusOK, "<p>You have been unsubscribed.</p>")
}
