package quote

import (
	"errors"
	"net/http"

	"freight-quotes/internal/logger"
	"freight-quotes/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// IdempotencyHeader lets a client retry a submission without storing it twice.
const IdempotencyHeader = "Idempotency-Key"

// Handler handles HTTP requests for quote submissions.
type Handler struct {
	svc      ServiceInterface
	validate *validator.Validate
}

// NewHandler creates a new quote handler.
func NewHandler(svc ServiceInterface) *Handler {
	return &Handler{
		svc:      svc,
		validate: validator.New(),
	}
}

// RegisterRoutes mounts the public quote routes on g.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/quote", h.SubmitQuote)
}

func (h *Handler) SubmitQuote(c echo.Context) error {
	var req models.CreateQuoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
	}
	// Required fields get their own messages from the service, so the
	// struct tags only check format.
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Validation failed: " + err.Error()})
	}

	q, created, err := h.svc.SubmitQuote(c.Request().Context(), req, c.Request().Header.Get(IdempotencyHeader))
	if err != nil {
		if ve, ok := models.IsValidationError(err); ok {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: ve.Message})
		}
		logger.Logger.WithError(err).Error("Handler.SubmitQuote")
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to save quote request"})
	}

	status := http.StatusCreated
	if !created {
		status = http.StatusOK
	}
	return c.JSON(status, models.QuoteSubmittedResponse{
		Success: true,
		Message: "Quote request submitted successfully",
		QuoteID: q.ID,
		Quote:   q,
	})
}

// GetQuote answers one stored quote request. Mounted on the admin group.
func (h *Handler) GetQuote(c echo.Context) error {
	q, err := h.svc.GetQuote(c.Request().Context(), c.Param("quoteId"))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Quote request not found"})
		}
		logger.Logger.WithError(err).Error("Handler.GetQuote")
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to retrieve quote request"})
	}
	return c.JSON(http.StatusOK, q)
}

// ListAllQuotes answers every stored quote request with status counts.
func (h *Handler) ListAllQuotes(c echo.Context) error {
	quotes, stats, err := h.svc.ListAllQuotes(c.Request().Context())
	if err != nil {
		logger.Logger.WithError(err).Error("Handler.ListAllQuotes")
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to list quote requests"})
	}
	return c.JSON(http.StatusOK, models.QuoteListResponse{Quotes: quotes, Stats: stats})
}

func (h *Handler) UpdateStatus(c echo.Context) error {
	var req models.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid status"})
	}

	q, err := h.svc.UpdateStatus(c.Request().Context(), c.Param("quoteId"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Quote request not found"})
		case errors.Is(err, models.ErrInvalidStatus):
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid status"})
		}
		logger.Logger.WithError(err).Error("Handler.UpdateStatus")
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to update quote status"})
	}
	return c.JSON(http.StatusOK, q)
}
