package catalog

import (
	"net/http"
	"slices"

	tables "freight-quotes/internal/catalog"
	"freight-quotes/internal/models"

	"github.com/labstack/echo/v4"
)

// OptionsResponse lists the enumerated form choices.
type OptionsResponse struct {
	ShippingTypes []string `json:"shippingTypes"`
	RouteTypes    []string `json:"routeTypes"`
	CargoTypes    []string `json:"cargoTypes"`
}

// Handler serves the reference tables to the quote form.
type Handler struct {
	cat *tables.Catalog
}

func NewHandler(cat *tables.Catalog) *Handler {
	return &Handler{cat: cat}
}

// RegisterRoutes mounts the catalog routes on g.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/options", h.Options)
	g.GET("/locations", h.Locations)
	g.GET("/carriers", h.Carriers)
}

func (h *Handler) Options(c echo.Context) error {
	return c.JSON(http.StatusOK, OptionsResponse{
		ShippingTypes: h.cat.ShippingTypes(),
		RouteTypes:    h.cat.RouteTypes(),
		CargoTypes:    h.cat.CargoTypes(),
	})
}

func (h *Handler) Locations(c echo.Context) error {
	shippingType := c.QueryParam("shippingType")
	routeType := c.QueryParam("routeType")
	if !slices.Contains(h.cat.ShippingTypes(), shippingType) {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Unknown shipping type"})
	}
	if !slices.Contains(h.cat.RouteTypes(), routeType) {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Unknown route type"})
	}
	return c.JSON(http.StatusOK, h.cat.LocationsFor(shippingType, routeType))
}

// Carriers lists the carriers of one shipping type in display order. Contact
// details stay on the server.
func (h *Handler) Carriers(c echo.Context) error {
	shippingType := c.QueryParam("shippingType")
	if !slices.Contains(h.cat.ShippingTypes(), shippingType) {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Unknown shipping type"})
	}
	return c.JSON(http.StatusOK, h.cat.CarrierList(shippingType))
}
