// Package quoteform models the quote intake form as a reducer so the
// cascading resets between fields can be exercised without a browser.
package quoteform

import (
	"slices"

	"freight-quotes/internal/catalog"
)

// State is every value the form holds.
type State struct {
	ShippingType     string
	RouteType        string
	Origin           string
	Destination      string
	SelectedCarriers []string

	// CarrierFields holds carrier-specific answers as carrier -> field -> value.
	CarrierFields    map[string]map[string]string
	SelectedServices map[string][]string

	CargoType           string
	Weight              string
	Length              string
	Width               string
	Height              string
	Quantity            string
	SpecialInstructions string
	ShipDate            string
	FlexibleDates       bool

	Name             string
	CompanyName      string
	Email            string
	Phone            string
	NotificationPref string

	IsSubmitting bool
}

// ActionType names a form transition.
type ActionType int

const (
	SetShippingType ActionType = iota
	SetRouteType
	SetOrigin
	SetDestination
	ToggleCarrier
	SelectAll
	SetCarrierField
	ToggleService
	SetField
	SetFlexibleDates
	SubmitStarted
	SubmitFinished
	Reset
)

// Plain field names accepted by SetField.
const (
	FieldCargoType           = "cargoType"
	FieldWeight              = "weight"
	FieldLength              = "length"
	FieldWidth               = "width"
	FieldHeight              = "height"
	FieldQuantity            = "quantity"
	FieldSpecialInstructions = "specialInstructions"
	FieldShipDate            = "shipDate"
	FieldName                = "name"
	FieldCompanyName         = "companyName"
	FieldEmail               = "email"
	FieldPhone               = "phone"
	FieldNotificationPref    = "notificationPref"
)

// Action is one user event. Carrier names the carrier for ToggleCarrier,
// SetCarrierField and ToggleService; Field names the field for SetField and
// SetCarrierField; Value carries the new value.
type Action struct {
	Type    ActionType
	Carrier string
	Field   string
	Value   string
	Flag    bool
}

// Reduce applies one action and returns the next state. The input state is
// not modified.
func Reduce(cat *catalog.Catalog, s State, a Action) State {
	next := s.clone()
	switch a.Type {
	case SetShippingType:
		next.ShippingType = a.Value
		next.RouteType = ""
		next.Origin = ""
		next.Destination = ""
		next.SelectedCarriers = []string{}
		next.CarrierFields = map[string]map[string]string{}
		next.SelectedServices = map[string][]string{}
	case SetRouteType:
		next.RouteType = a.Value
		next.Origin = ""
		next.Destination = ""
	case SetOrigin:
		next.Origin = a.Value
	case SetDestination:
		next.Destination = a.Value
	case ToggleCarrier:
		if i := slices.Index(next.SelectedCarriers, a.Carrier); i >= 0 {
			next.SelectedCarriers = slices.Delete(next.SelectedCarriers, i, i+1)
			delete(next.CarrierFields, a.Carrier)
			delete(next.SelectedServices, a.Carrier)
		} else if slices.Contains(cat.CarrierKeys(next.ShippingType), a.Carrier) {
			next.SelectedCarriers = append(next.SelectedCarriers, a.Carrier)
		}
	case SelectAll:
		if next.ShippingType == "" {
			return next
		}
		all := cat.CarrierKeys(next.ShippingType)
		if allSelected(next.SelectedCarriers, all) {
			next.SelectedCarriers = []string{}
			next.CarrierFields = map[string]map[string]string{}
			next.SelectedServices = map[string][]string{}
		} else {
			next.SelectedCarriers = all
		}
	case SetCarrierField:
		if next.CarrierFields[a.Carrier] == nil {
			next.CarrierFields[a.Carrier] = map[string]string{}
		}
		next.CarrierFields[a.Carrier][a.Field] = a.Value
	case ToggleService:
		services := next.SelectedServices[a.Carrier]
		if i := slices.Index(services, a.Value); i >= 0 {
			next.SelectedServices[a.Carrier] = slices.Delete(services, i, i+1)
		} else {
			next.SelectedServices[a.Carrier] = append(services, a.Value)
		}
	case SetField:
		next.setField(a.Field, a.Value)
	case SetFlexibleDates:
		next.FlexibleDates = a.Flag
		if a.Flag {
			next.ShipDate = ""
		}
	case SubmitStarted:
		next.IsSubmitting = true
	case SubmitFinished:
		next.IsSubmitting = false
		if a.Flag {
			return State{CarrierFields: map[string]map[string]string{}, SelectedServices: map[string][]string{}}
		}
	case Reset:
		return State{CarrierFields: map[string]map[string]string{}, SelectedServices: map[string][]string{}}
	}
	return next
}

func (s *State) setField(field, value string) {
	switch field {
	case FieldCargoType:
		s.CargoType = value
	case FieldWeight:
		s.Weight = value
	case FieldLength:
		s.Length = value
	case FieldWidth:
		s.Width = value
	case FieldHeight:
		s.Height = value
	case FieldQuantity:
		s.Quantity = value
	case FieldSpecialInstructions:
		s.SpecialInstructions = value
	case FieldShipDate:
		s.ShipDate = value
	case FieldName:
		s.Name = value
	case FieldCompanyName:
		s.CompanyName = value
	case FieldEmail:
		s.Email = value
	case FieldPhone:
		s.Phone = value
	case FieldNotificationPref:
		s.NotificationPref = value
	}
}

// CanSubmit reports whether a submit may start. A submit already in flight
// blocks another one.
func CanSubmit(s State) bool {
	return !s.IsSubmitting && len(s.SelectedCarriers) > 0
}

func (s State) clone() State {
	out := s
	out.SelectedCarriers = append([]string{}, s.SelectedCarriers...)
	out.CarrierFields = make(map[string]map[string]string, len(s.CarrierFields))
	for carrier, fields := range s.CarrierFields {
		cp := make(map[string]string, len(fields))
		for k, v := range fields {
			cp[k] = v
		}
		out.CarrierFields[carrier] = cp
	}
	out.SelectedServices = make(map[string][]string, len(s.SelectedServices))
	for carrier, svcs := range s.SelectedServices {
		out.SelectedServices[carrier] = append([]string{}, svcs...)
	}
	return out
}

func allSelected(selected, all []string) bool {
	if len(all) == 0 || len(selected) != len(all) {
		return false
	}
	for _, k := range all {
		if !slices.Contains(selected, k) {
			return false
		}
	}
	return true
}

