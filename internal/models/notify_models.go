package models

// ShipmentNotice is everything the notification templates need about one
// submission. It is built either from a persisted QuoteRequest or from the
// body of POST /api/send-email.
type ShipmentNotice struct {
	QuoteID               string
	Name                  string
	CompanyName           string
	Email                 string
	Phone                 string
	ShippingType          string
	RouteType             string
	Origin                string
	Destination           string
	SelectedCarriers      []string
	CarrierSpecificFields map[string]map[string]string
	SelectedServices      map[string][]string
	CargoType             string
	Weight                Number
	Length                Number
	Width                 Number
	Height                Number
	Quantity              int
	SpecialInstructions   string
	ShipDate              string
	FlexibleDates         bool
	NotificationPref      string
}

// HasDimensions reports whether all three dimensions are present.
func (n ShipmentNotice) HasDimensions() bool {
	return n.Length.Set && n.Width.Set && n.Height.Set
}

// WantsSMS reports whether the customer asked to be texted.
func (n ShipmentNotice) WantsSMS() bool {
	return n.NotificationPref == NotifySMS || n.NotificationPref == NotifyBoth
}

// Notice converts a stored record into a ShipmentNotice.
func (q *QuoteRequest) Notice() ShipmentNotice {
	n := ShipmentNotice{
		QuoteID:               q.ID,
		Name:                  q.UserName,
		Email:                 q.UserEmail,
		Phone:                 q.UserPhone,
		ShippingType:          q.Metadata.ShippingType,
		RouteType:             q.Metadata.RouteType,
		Origin:                q.PickupIsland,
		Destination:           q.DeliveryIsland,
		SelectedCarriers:      q.SelectedCarriers,
		CarrierSpecificFields: q.Metadata.CarrierSpecificFields,
		SelectedServices:      q.Metadata.SelectedServices,
		CargoType:             q.CargoType,
		Weight:                NewNumber(q.WeightLbs),
		Quantity:              q.Metadata.Quantity,
		ShipDate:              q.Metadata.ShipDate,
		FlexibleDates:         q.Metadata.FlexibleDates,
		NotificationPref:      q.Metadata.NotificationPreference,
	}
	if q.CompanyName != nil {
		n.CompanyName = *q.CompanyName
	}
	if q.SpecialInstructions != nil {
		n.SpecialInstructions = *q.SpecialInstructions
	}
	if q.LengthInches != nil && q.WidthInches != nil && q.HeightInches != nil {
		n.Length = NewNumber(*q.LengthInches)
		n.Width = NewNumber(*q.WidthInches)
		n.Height = NewNumber(*q.HeightInches)
	}
	return n
}

// EmailDispatchRequest is the body of POST /api/send-email.
type EmailDispatchRequest struct {
	QuoteID               string                       `json:"quoteId,omitempty"`
	Email                 string                       `json:"email" validate:"required,email"`
	Name                  string                       `json:"name"`
	CompanyName           string                       `json:"companyName"`
	Phone                 string                       `json:"phone"`
	ShippingType          string                       `json:"shippingType"`
	RouteType             string                       `json:"routeType"`
	Origin                string                       `json:"origin"`
	Destination           string                       `json:"destination"`
	SelectedCarriers      []string                     `json:"selectedCarriers"`
	SelectedServices      map[string][]string          `json:"selectedServices,omitempty"`
	CarrierSpecificFields map[string]map[string]string `json:"carrierSpecificFields,omitempty"`
	CargoType             string                       `json:"cargoType"`
	Weight                Number                       `json:"weight"`
	Length                Number                       `json:"length"`
	Width                 Number                       `json:"width"`
	Height                Number                       `json:"height"`
	Quantity              Number                       `json:"quantity"`
	NotificationPrefs     string                       `json:"notificationPrefs,omitempty"`
}

// Notice converts the dispatch body into a ShipmentNotice.
func (r EmailDispatchRequest) Notice() ShipmentNotice {
	qty, ok := r.Quantity.Count()
	if !ok {
		qty = 1
	}
	return ShipmentNotice{
		QuoteID:               r.QuoteID,
		Name:                  r.Name,
		CompanyName:           r.CompanyName,
		Email:                 r.Email,
		Phone:                 r.Phone,
		ShippingType:          r.ShippingType,
		RouteType:             r.RouteType,
		Origin:                r.Origin,
		Destination:           r.Destination,
		SelectedCarriers:      r.SelectedCarriers,
		CarrierSpecificFields: r.CarrierSpecificFields,
		SelectedServices:      r.SelectedServices,
		CargoType:             r.CargoType,
		Weight:                r.Weight,
		Length:                r.Length,
		Width:                 r.Width,
		Height:                r.Height,
		Quantity:              qty,
		NotificationPref:      r.NotificationPrefs,
	}
}

// SMS message types.
const (
	SMSConfirmation  = "confirmation"
	SMSQuoteReceived = "quote_received"
)

// SMSRequest is the body of POST /api/send-sms.
type SMSRequest struct {
	Phone            string   `json:"phone"`
	Name             string   `json:"name,omitempty"`
	Type             string   `json:"type,omitempty"`
	Origin           string   `json:"origin,omitempty"`
	Destination      string   `json:"destination,omitempty"`
	SelectedCarriers []string `json:"selectedCarriers,omitempty"`
	CarrierName      string   `json:"carrierName,omitempty"`
	QuoteDetails     string   `json:"quoteDetails,omitempty"`
	Message          string   `json:"message,omitempty"`
}

// SMSResponse is the success envelope of POST /api/send-sms.
type SMSResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	SID     string `json:"sid"`
}
