package notify

import (
	"errors"
	"net/http"

	"freight-quotes/internal/logger"
	"freight-quotes/internal/models"
	"freight-quotes/pkg/sms"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Handler handles HTTP requests for email and SMS dispatch.
type Handler struct {
	svc      ServiceInterface
	validate *validator.Validate
}

// NewHandler creates a new notification handler.
func NewHandler(svc ServiceInterface) *Handler {
	return &Handler{
		svc:      svc,
		validate: validator.New(),
	}
}

// RegisterRoutes mounts the dispatch routes on g.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/send-email", h.SendEmail)
	g.POST("/send-sms", h.SendSMS)
}

func (h *Handler) SendEmail(c echo.Context) error {
	var req models.EmailDispatchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Validation failed: " + err.Error()})
	}

	if _, err := h.svc.DispatchEmails(c.Request().Context(), req.Notice()); err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, models.MessageResponse{Success: true, Message: "Emails sent successfully"})
}

func (h *Handler) SendSMS(c echo.Context) error {
	var req models.SMSRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
	}

	sid, err := h.svc.SendSMS(c.Request().Context(), req)
	if err != nil {
		if ve, ok := models.IsValidationError(err); ok {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: ve.Message})
		}
		switch {
		case errors.Is(err, models.ErrSMSNotConfigured):
			logger.Logger.Error("TWILIO_PHONE_NUMBER not configured")
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "SMS service not configured"})
		case errors.Is(err, sms.ErrInvalidNumber):
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid phone number format"})
		case errors.Is(err, sms.ErrUnverifiedNumber):
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Phone number not verified (Twilio trial)"})
		}
		logger.Logger.WithError(err).Error("Handler.SendSMS")
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to send SMS"})
	}
	return c.JSON(http.StatusOK, models.SMSResponse{Success: true, Message: "SMS sent successfully", SID: sid})
}
