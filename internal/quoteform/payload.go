package quoteform

import (
	"strconv"
	"strings"

	"freight-quotes/internal/catalog"
	"freight-quotes/internal/models"
)

// Fields whose input is disabled until a prerequisite has a value.
const (
	InputRouteType   = "routeType"
	InputOrigin      = "origin"
	InputDestination = "destination"
	InputCarriers    = "carriers"
	InputDimensions  = "dimensions"
	InputQuantity    = "quantity"
	InputServices    = "services"
	InputInstruction = "specialInstructions"
)

// Enabled reports whether an input is available yet. This is the form's
// sequencing rule only; the server checks the final payload, not the order.
func Enabled(s State, input string) bool {
	switch input {
	case InputRouteType, InputCarriers:
		return s.ShippingType != ""
	case InputOrigin, InputDestination:
		return s.ShippingType != "" && s.RouteType != ""
	case InputServices:
		return len(s.SelectedCarriers) > 0
	case InputDimensions:
		return s.CargoType != ""
	case InputQuantity, InputInstruction:
		return s.Weight != ""
	}
	return true
}

// ActiveField is a carrier-specific input together with the carriers that
// asked for it.
type ActiveField struct {
	models.CarrierField
	Carriers []string `json:"carriers"`
}

// ActiveCarrierFields merges the specific fields of every selected carrier.
// A field shared by several carriers appears once, in first-seen order.
func ActiveCarrierFields(cat *catalog.Catalog, s State) []ActiveField {
	if s.ShippingType == "" || len(s.SelectedCarriers) == 0 {
		return nil
	}
	carriers := cat.CarriersFor(s.ShippingType)
	var out []ActiveField
	pos := map[string]int{}
	for _, key := range s.SelectedCarriers {
		car, ok := carriers[key]
		if !ok {
			continue
		}
		for _, f := range car.Fields {
			if i, seen := pos[f.Name]; seen {
				out[i].Carriers = append(out[i].Carriers, car.Name)
				continue
			}
			pos[f.Name] = len(out)
			out = append(out, ActiveField{CarrierField: f, Carriers: []string{car.Name}})
		}
	}
	return out
}

// BuildPayload assembles the submission body. It fails with
// models.ErrNoCarriers when nothing is selected so no request is sent.
func BuildPayload(s State) (models.CreateQuoteRequest, error) {
	if len(s.SelectedCarriers) == 0 {
		return models.CreateQuoteRequest{}, models.ErrNoCarriers
	}

	fields := make(map[string]map[string]string, len(s.SelectedCarriers))
	for _, key := range s.SelectedCarriers {
		vals := map[string]string{}
		for name, v := range s.CarrierFields[key] {
			if v != "" {
				vals[name] = v
			}
		}
		fields[key] = vals
	}
	services := map[string][]string{}
	for _, key := range s.SelectedCarriers {
		if svcs := s.SelectedServices[key]; len(svcs) > 0 {
			services[key] = append([]string(nil), svcs...)
		}
	}

	quantity := parseNumber(s.Quantity)
	if !quantity.Set {
		quantity = models.NewNumber(1)
	}

	req := models.CreateQuoteRequest{
		ShippingType:          s.ShippingType,
		RouteType:             s.RouteType,
		Origin:                s.Origin,
		Destination:           s.Destination,
		SelectedCarriers:      append([]string(nil), s.SelectedCarriers...),
		CarrierSpecificFields: fields,
		SelectedServices:      services,
		CargoType:             s.CargoType,
		Weight:                parseNumber(s.Weight),
		Dimensions: models.Dimensions{
			Length: parseNumber(s.Length),
			Width:  parseNumber(s.Width),
			Height: parseNumber(s.Height),
		},
		Quantity:            quantity,
		SpecialInstructions: strings.TrimSpace(s.SpecialInstructions),
		FlexibleDates:       s.FlexibleDates,
		Contact: models.Contact{
			Name:             strings.TrimSpace(s.Name),
			CompanyName:      strings.TrimSpace(s.CompanyName),
			Email:            strings.TrimSpace(s.Email),
			Phone:            strings.TrimSpace(s.Phone),
			NotificationPref: s.NotificationPref,
		},
	}
	if !s.FlexibleDates {
		req.ShipDate = s.ShipDate
	}
	return req, nil
}

func parseNumber(s string) models.Number {
	s = strings.TrimSpace(s)
	if s == "" {
		return models.Number{}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return models.Number{Invalid: true}
	}
	return models.NewNumber(v)
}
