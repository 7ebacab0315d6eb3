package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	domain "github.com/hostdesk/reservation-api/internal/domain/reservation"
	"github.com/hostdesk/reservation-api/internal/httperr"
	"github.com/hostdesk/reservation-api/internal/httpresp"
	ucReservation "github.com/hostdesk/reservation-api/internal/usecase/reservation"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	repo     domain.Repository
	createUC *ucReservation.CreateReservation
	updateUC *ucReservation.UpdateReservation
	statusUC *ucReservation.UpdateReservationStatus
}

func NewReservationHandler(
	repo domain.Repository,
	createUC *ucReservation.CreateReservation,
	updateUC *ucReservation.UpdateReservation,
	statusUC *ucReservation.UpdateReservationStatus,
) *ReservationHandler {
	return &ReservationHandler{
		repo:     repo,
		createUC: createUC,
		updateUC: updateUC,
		statusUC: statusUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ReservationRequest struct {
	CustomerName string `json:"customerName"`
	PhoneNumber  string `json:"phoneNumber"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	PartySize    int    `json:"partySize"`
	Source       string `json:"source"`
	Status       string `json:"status"`
	Notes        string `json:"notes"`
}

func (r ReservationRequest) fields() domain.Fields {
	return domain.Fields{
		CustomerName: r.CustomerName,
		PhoneNumber:  r.PhoneNumber,
		Date:         r.Date,
		Time:         r.Time,
		PartySize:    r.PartySize,
		Source:       r.Source,
		Status:       r.Status,
		Notes:        r.Notes,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// ERROR TRANSLATION
// ======================================================

// respondError maps domain and backend errors onto the envelope. Validation
// and not-found resolve locally; anything else is a backend failure whose
// message operators need to see.
func respondError(c *gin.Context, err error) {
	var ve domain.ValidationError
	if errors.As(err, &ve) {
		httperr.BadRequest(c, ve.Error())
		return
	}

	if httperr.IsBusiness(err, domain.ErrNotFound.Code) {
		httperr.NotFound(c, domain.ErrNotFound.Message)
		return
	}

	httperr.Internal(c, err.Error())
}

// ======================================================
// LIST / GET
// ======================================================

func (h *ReservationHandler) List(c *gin.Context) {
	list, err := h.repo.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, list)
}

func (h *ReservationHandler) Get(c *gin.Context) {
	res, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, res)
}

// ======================================================
// CREATE
// ======================================================

func (h *ReservationHandler) Create(c *gin.Context) {
	var req ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid request body.")
		return
	}

	res, err := h.createUC.Execute(c.Request.Context(), req.fields())
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.Created(c, res)
}

// ======================================================
// UPDATE
// ======================================================

func (h *ReservationHandler) Update(c *gin.Context) {
	var req ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid request body.")
		return
	}

	res, err := h.updateUC.Execute(c.Request.Context(), c.Param("id"), req.fields())
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, res)
}

// ======================================================
// STATUS
// ======================================================

func (h *ReservationHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid request body: status is required.")
		return
	}

	res, err := h.statusUC.Execute(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, res)
}

// ======================================================
// DELETE
// ======================================================

func (h *ReservationHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	httpresp.Empty(c)
}
