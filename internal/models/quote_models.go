package models

import (
	"strings"
	"time"
)

// Quote request statuses. Any status may move to any other.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// Statuses lists every valid status in display order.
var Statuses = []string{StatusPending, StatusInProgress, StatusCompleted, StatusCancelled}

// ValidStatus reports whether s is one of Statuses.
func ValidStatus(s string) bool {
	for _, st := range Statuses {
		if st == s {
			return true
		}
	}
	return false
}

// QuoteRequest is the persisted record of one customer's quote submission.
// JSON names follow the quote_requests table.
type QuoteRequest struct {
	ID                  string        `json:"id"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
	UserName            string        `json:"user_name"`
	UserEmail           string        `json:"user_email"`
	UserPhone           string        `json:"user_phone"`
	CompanyName         *string       `json:"company_name"`
	PickupIsland        string        `json:"pickup_island"`
	DeliveryIsland      string        `json:"delivery_island"`
	CargoType           string        `json:"cargo_type"`
	WeightLbs           float64       `json:"weight_lbs"`
	LengthInches        *float64      `json:"length_inches"`
	WidthInches         *float64      `json:"width_inches"`
	HeightInches        *float64      `json:"height_inches"`
	SelectedCarriers    []string      `json:"selected_carriers"`
	SpecialInstructions *string       `json:"special_instructions"`
	Status              string        `json:"status"`
	Metadata            QuoteMetadata `json:"metadata"`
	IdempotencyKey      *string       `json:"-"`
}

// QuoteMetadata is the free-form part of a quote request, stored as jsonb.
type QuoteMetadata struct {
	ShippingType           string                       `json:"shipping_type"`
	RouteType              string                       `json:"route_type"`
	Quantity               int                          `json:"quantity"`
	ShipDate               string                       `json:"ship_date,omitempty"`
	FlexibleDates          bool                         `json:"flexible_dates"`
	CarrierSpecificFields  map[string]map[string]string `json:"carrier_specific_fields,omitempty"`
	SelectedServices       map[string][]string          `json:"selected_services,omitempty"`
	ShipmentDetails        *ShipmentDetails             `json:"shipment_details,omitempty"`
	NotificationPreference string                       `json:"notification_preference,omitempty"`
}

// ShipmentDetails are the carrier-independent detail fields of the form.
type ShipmentDetails struct {
	CommodityDescription string `json:"commodity_description,omitempty"`
	DeclaredValue        Number `json:"declared_value"`
	PackagingType        string `json:"packaging_type,omitempty"`
	Hazardous            bool   `json:"hazardous"`
}

// ReferenceNumber is the short id shown to customers.
func (q *QuoteRequest) ReferenceNumber() string {
	return ReferenceNumber(q.ID)
}

// ReferenceNumber upper-cases the first 8 characters of a quote id.
func ReferenceNumber(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return strings.ToUpper(id)
}

// ---- Submission payload ----

// Dimensions in inches. All three are given or none.
type Dimensions struct {
	Length Number `json:"length"`
	Width  Number `json:"width"`
	Height Number `json:"height"`
}

// Contact is the customer block of the submission.
type Contact struct {
	Name             string `json:"name"`
	CompanyName      string `json:"companyName"`
	Email            string `json:"email" validate:"omitempty,email"`
	Phone            string `json:"phone"`
	NotificationPref string `json:"notificationPref" validate:"omitempty,oneof=email sms both"`
}

// CreateQuoteRequest is the body of POST /api/quote.
type CreateQuoteRequest struct {
	ShippingType          string                       `json:"shippingType"`
	RouteType             string                       `json:"routeType"`
	Origin                string                       `json:"origin"`
	Destination           string                       `json:"destination"`
	SelectedCarriers      []string                     `json:"selectedCarriers"`
	CarrierSpecificFields map[string]map[string]string `json:"carrierSpecificFields,omitempty"`
	SelectedServices      map[string][]string          `json:"selectedServices,omitempty"`
	CargoType             string                       `json:"cargoType"`
	Weight                Number                       `json:"weight"`
	Dimensions            Dimensions                   `json:"dimensions"`
	Quantity              Number                       `json:"quantity"`
	SpecialInstructions   string                       `json:"specialInstructions,omitempty"`
	ShipDate              string                       `json:"shipDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	FlexibleDates         bool                         `json:"flexibleDates"`
	ShipmentDetails       *ShipmentDetails             `json:"shipmentDetails,omitempty"`
	Contact               Contact                      `json:"contact"`
}

// QuoteSubmittedResponse is the success envelope of POST /api/quote.
type QuoteSubmittedResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	QuoteID string        `json:"quoteId"`
	Quote   *QuoteRequest `json:"quote,omitempty"`
}

// ---- Admin ----

// UpdateStatusRequest is the body of the admin status update.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending in_progress completed cancelled"`
}

// StatusCounts summarises the admin list.
type StatusCounts struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
	Cancelled  int `json:"cancelled"`
}

// QuoteListResponse is the body of GET /api/admin/quotes.
type QuoteListResponse struct {
	Quotes []*QuoteRequest `json:"quotes"`
	Stats  StatusCounts    `json:"stats"`
}

// AdminLoginRequest is the body of POST /api/admin/login.
type AdminLoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// AdminLoginResponse carries the bearer token for admin routes.
type AdminLoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ---- Common envelopes ----

// ErrorResponse is the error envelope of every endpoint.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// MessageResponse is a bare success envelope.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
