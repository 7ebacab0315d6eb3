package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/hostdesk/reservation-api/internal/domain/reservation"
	"github.com/hostdesk/reservation-api/internal/httperr"
	"github.com/hostdesk/reservation-api/internal/httpresp"
	ucReservation "github.com/hostdesk/reservation-api/internal/usecase/reservation"
)

type WebhookHandler struct {
	intakeUC *ucReservation.WebhookIntake
}

func NewWebhookHandler(intakeUC *ucReservation.WebhookIntake) *WebhookHandler {
	return &WebhookHandler{intakeUC: intakeUC}
}

// Receive handles the inbound CallFluent webhook. The payload's own
// source/status, if any, are dropped during normalization.
func (h *WebhookHandler) Receive(c *gin.Context) {
	var payload domain.WebhookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		httperr.BadRequest(c, "Invalid webhook payload.")
		return
	}

	res, err := h.intakeUC.Execute(c.Request.Context(), payload)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.Created(c, res)
}
