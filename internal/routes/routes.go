package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/hostdesk/reservation-api/internal/config"
	domain "github.com/hostdesk/reservation-api/internal/domain/reservation"
	"github.com/hostdesk/reservation-api/internal/handlers"
	"github.com/hostdesk/reservation-api/internal/notify"
	ucReservation "github.com/hostdesk/reservation-api/internal/usecase/reservation"
)

func RegisterRoutes(
	r *gin.Engine,
	repo domain.Repository,
	cfg *config.Config,
	log *slog.Logger,
) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	callClient := notify.NewCallFluentClient(
		cfg.CallFluentURL,
		cfg.CallFluentKey,
		cfg.CallbackNumber,
	)
	dispatcher := notify.NewDispatcher(callClient, log)

	// ======================================================
	// 🧠 USE CASES — RESERVATIONS
	// ======================================================
	createUC := ucReservation.NewCreateReservation(repo, dispatcher)
	updateUC := ucReservation.NewUpdateReservation(repo)
	statusUC := ucReservation.NewUpdateReservationStatus(repo, dispatcher)
	intakeUC := ucReservation.NewWebhookIntake(repo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	reservationHandler := handlers.NewReservationHandler(
		repo,
		createUC,
		updateUC,
		statusUC,
	)
	webhookHandler := handlers.NewWebhookHandler(intakeUC)
	callFluentHandler := handlers.NewCallFluentHandler(repo, callClient)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// RESERVATIONS
		// ------------------------------
		api.GET("/reservations", reservationHandler.List)
		api.POST("/reservations", reservationHandler.Create)
		api.GET("/reservations/:id", reservationHandler.Get)
		api.PUT("/reservations/:id", reservationHandler.Update)
		api.PATCH("/reservations/:id/status", reservationHandler.UpdateStatus)
		api.DELETE("/reservations/:id", reservationHandler.Delete)

		// ------------------------------
		// CALLFLUENT WEBHOOK + OUTBOUND
		// ------------------------------
		api.POST("/webhook/callfluent", webhookHandler.Receive)
		api.POST("/callfluent/test", callFluentHandler.Test)
		api.POST("/callfluent/trigger-reminder/:id", callFluentHandler.TriggerReminder)
	}
}
