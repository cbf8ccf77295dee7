package admin

import (
	"errors"
	"net/http"

	"freight-quotes/internal/logger"
	"freight-quotes/internal/models"
	"freight-quotes/internal/modules/quote"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Handler handles admin login and mounts the protected review routes.
type Handler struct {
	svc      ServiceInterface
	quotes   *quote.Handler
	validate *validator.Validate
}

// NewHandler creates a new admin handler. Review routes are served by quotes.
func NewHandler(svc ServiceInterface, quotes *quote.Handler) *Handler {
	return &Handler{
		svc:      svc,
		quotes:   quotes,
		validate: validator.New(),
	}
}

// RegisterRoutes mounts /login and the token-protected quote routes on g.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/login", h.Login)

	protected := g.Group("", h.svc.Middleware())
	protected.GET("/quotes", h.quotes.ListAllQuotes)
	protected.GET("/quotes/:quoteId", h.quotes.GetQuote)
	protected.PATCH("/quotes/:quoteId/status", h.quotes.UpdateStatus)
}

func (h *Handler) Login(c echo.Context) error {
	var req models.AdminLoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Password is required"})
	}

	resp, err := h.svc.Login(c.Request().Context(), req.Password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Invalid password"})
		}
		logger.Logger.WithError(err).Error("Handler.Login")
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Login failed"})
	}
	return c.JSON(http.StatusOK, resp)
}
