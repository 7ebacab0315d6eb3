package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/hostdesk/reservation-api/internal/domain/reservation"
	"github.com/hostdesk/reservation-api/internal/httperr"
	"github.com/hostdesk/reservation-api/internal/httpresp"
	"github.com/hostdesk/reservation-api/internal/notify"
)

type CallFluentHandler struct {
	repo   domain.Repository
	client *notify.CallFluentClient
}

func NewCallFluentHandler(
	repo domain.Repository,
	client *notify.CallFluentClient,
) *CallFluentHandler {
	return &CallFluentHandler{
		repo:   repo,
		client: client,
	}
}

// Test probes the outbound service without placing a call.
func (h *CallFluentHandler) Test(c *gin.Context) {
	if !h.client.Configured() {
		httperr.BadRequest(c, "CallFluent is not configured.")
		return
	}

	if err := h.client.TestConnection(c.Request.Context()); err != nil {
		httperr.Internal(c, err.Error())
		return
	}

	httpresp.OK(c, gin.H{"message": "CallFluent connection OK"})
}

// TriggerReminder places a reminder call for one reservation. Unlike the
// post-commit confirmation hook, this call is synchronous and its failure
// is surfaced, since staff asked for it explicitly.
func (h *CallFluentHandler) TriggerReminder(c *gin.Context) {
	res, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	if !h.client.Configured() {
		httperr.BadRequest(c, "CallFluent is not configured.")
		return
	}

	req := notify.BuildCallRequest(*res, h.client.CallbackNumber(), notify.ReminderScript(*res))
	if err := h.client.TriggerCall(c.Request.Context(), req); err != nil {
		httperr.Internal(c, err.Error())
		return
	}

	httpresp.OK(c, gin.H{"message": "Reminder call triggered for " + res.CustomerName})
}
