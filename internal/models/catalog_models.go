package models

// Shipping types.
const (
	ShippingOcean = "ocean"
	ShippingAir   = "air"
)

// Route types. Origins and destinations swap between the two directional
// routes; inter-island uses the Hawaii list on both sides.
const (
	RouteWestCoastToHawaii = "westcoast-to-hawaii"
	RouteHawaiiToWestCoast = "hawaii-to-westcoast"
	RouteInterIsland       = "inter-island"
)

// Notification preferences chosen on the form.
const (
	NotifyEmail = "email"
	NotifySMS   = "sms"
	NotifyBoth  = "both"
)

// LocationSet is the list of valid origins and destinations for one
// shipping type and route type.
type LocationSet struct {
	Origins      []string `json:"origins"`
	Destinations []string `json:"destinations"`
}

// CarrierField is a carrier-specific input shown on the form once the
// carrier is selected.
type CarrierField struct {
	Name        string   `json:"name"`
	Label       string   `json:"label"`
	Type        string   `json:"type"` // "text" or "select"
	Options     []string `json:"options,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
	Required    bool     `json:"required"`
}

// CarrierContact is where quote requests for a carrier are forwarded.
type CarrierContact struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Website string `json:"website,omitempty"`
}

// Carrier is one shipping company a customer can request a quote from.
type Carrier struct {
	Key         string         `json:"key"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Fields      []CarrierField `json:"fields,omitempty"`
	Contact     CarrierContact `json:"-"`
}
