// Пожертвования: создание платежного намерения и подтверждение оплаты.
package givehope

import (
	"errors"
	"net/http"
	"time"

	"github.com/givehope/givehope.go/internal/givehope/apierrors"
	"github.com/givehope/givehope.go/internal/givehope/dao"
	"github.com/givehope/givehope.go/internal/givehope/dto"
	"github.com/givehope/givehope.go/internal/givehope/payments"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

func (s *Services) AddDonationServices(g *echo.Group) {
	g.GET("donations/", s.getDonationList)
	g.POST("donations/", s.createDonation)
	g.GET("donations/:donationId/", s.getDonation)
	g.POST("donations/:donationId/confirm/", s.confirmDonation)
}

func (s *Services) getDonationList(c echo.Context) error {
	var donations []dao.Donation
	if err := s.db.Order("created_at desc").Find(&donations).Error; err != nil {
		return EError(c, err)
	}

	res := make([]dto.DonationLight, len(donations))
	for i := range donations {
		res[i] = *donations[i].ToLightDTO()
	}
	return c.JSON(http.StatusOK, res)
}

// createDonation создает запись пожертвования и платежное намерение у
// провайдера. Клиент завершает оплату и вызывает confirmDonation.
func (s *Services) createDonation(c echo.Context) error {
	var req donationCreateRequest
	if err := c.Bind(&req); err != nil {
		return EErrorDefined(c, apierrors.ErrBadRequest)
	}
	if err := c.Validate(&req); err != nil {
		return EErrorDefined(c, apierrors.ErrBadRequest)
	}
	if req.Amount <= 0 {
		return EErrorDefined(c, apierrors.ErrBadDonationAmount)
	}

	currency := req.Currency
	if currency == "" {
		currency = "usd"
	}

	intent, err := s.provider.CreateIntent(c.Request().Context(), req.Amount, currency)
	if err != nil {
		return EError(c, err)
	}

	donation := dao.Donation{
		Amount:     req.Amount,
		Currency:   currency,
		Email:      req.Email,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		IntentId:   intent.Id,
		Status:     dao.DonationPending,
		CampaignId: req.CampaignId,
	}
	if err := s.db.Create(&donation).Error; err != nil {
		return EError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"donation":      donation.ToLightDTO(),
		"client_secret": intent.ClientSecret,
	})
}

func (s *Services) getDonation(c echo.Context) error {
	donation, err := dao.GetDonation(s.db, c.Param("donationId"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EErrorDefined(c, apierrors.ErrDonationNotFound)
		}
		return EError(c, err)
	}
	return c.JSON(http.StatusOK, donation.ToLightDTO())
}

func (s *Services) confirmDonation(c echo.Context) error {
	donation, err := dao.GetDonation(s.db, c.Param("donationId"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EErrorDefined(c, apierrors.ErrDonationNotFound)
		}
		return EError(c, err)
	}
	if donation.Status == dao.DonationConfirmed {
		return EErrorDefined(c, apierrors.ErrDonationConfirmed)
	}

	intent, err := s.provider.ConfirmIntent(c.Request().Context(), donation.IntentId)
	if err != nil {
		if errors.Is(err, apierrors.ErrPaymentDeclined) {
			donation.Status = dao.DonationDeclined
			s.db.Save(&donation)
		}
		return EError(c, err)
	}
	if intent.Status != payments.IntentSucceeded {
		donation.Status = dao.DonationDeclined
		s.db.Save(&donation)
		return EErrorDefined(c, apierrors.ErrPaymentDeclined)
	}

	now := time.Now()
	donation.Status = dao.DonationConfirmed
	donation.ConfirmedAt = &now
	if err := s.db.Save(&donation).Error; err != nil {
		return EError(c, err)
	}

	if err := s.emailService.DonationReceipt(donation); err != nil {
		return EError(c, err)
	}
	return c.JSON(http.StatusOK, donation.ToLightDTO())
}
