// Package catalog holds the reference tables the quote form offers and the
// server validates against: locations per shipping and route type, carriers
// per shipping type and where each carrier's quote requests are sent.
//
// A Catalog is built once at start-up and never mutated; every accessor
// returns copies so callers cannot change the shared tables.
package catalog

import (
	"fmt"
	"slices"
	"strings"

	"freight-quotes/internal/models"
)

type portContact struct {
	Port  string
	Email string
}

// YoungBrothersKey is the carrier whose contact address depends on the port.
const YoungBrothersKey = "youngBrothers"

// Catalog is the immutable set of reference tables.
type Catalog struct {
	adminEmail string
	locations  map[string]map[string]models.LocationSet
	carriers   map[string][]models.Carrier
	byKey      map[string]models.Carrier
	shipTypeOf map[string]string
	ports      []portContact
	cargoTypes []string
}

// New builds the catalog. Carriers without a quote inbox forward to adminEmail.
func New(adminEmail string) *Catalog {
	c := &Catalog{
		adminEmail: adminEmail,
		locations:  defaultLocations(),
		carriers:   defaultCarriers(),
		byKey:      make(map[string]models.Carrier),
		shipTypeOf: make(map[string]string),
		ports:      youngBrothersPorts,
		cargoTypes: cargoTypes,
	}
	for shipType, list := range c.carriers {
		for i := range list {
			if list[i].Contact.Email == manualForward {
				list[i].Contact.Email = adminEmail
			}
			c.byKey[list[i].Key] = list[i]
			c.shipTypeOf[list[i].Key] = shipType
		}
	}
	return c
}

// AdminEmail is the address that receives copies of every carrier request.
func (c *Catalog) AdminEmail() string { return c.adminEmail }

// ShippingTypes lists the supported shipping types.
func (c *Catalog) ShippingTypes() []string {
	return []string{models.ShippingOcean, models.ShippingAir}
}

// RouteTypes lists the supported route types.
func (c *Catalog) RouteTypes() []string {
	return []string{models.RouteWestCoastToHawaii, models.RouteHawaiiToWestCoast, models.RouteInterIsland}
}

// CargoTypes lists the accepted cargo type values.
func (c *Catalog) CargoTypes() []string {
	return append([]string(nil), c.cargoTypes...)
}

// LocationsFor returns the valid origins and destinations for a shipping type
// and route type. An unknown pair yields an empty set.
func (c *Catalog) LocationsFor(shippingType, routeType string) models.LocationSet {
	set, ok := c.locations[shippingType][routeType]
	if !ok {
		return models.LocationSet{Origins: []string{}, Destinations: []string{}}
	}
	return models.LocationSet{
		Origins:      append([]string(nil), set.Origins...),
		Destinations: append([]string(nil), set.Destinations...),
	}
}

// CarriersFor returns the carriers offered for a shipping type keyed by
// carrier key. An unknown shipping type yields an empty map.
func (c *Catalog) CarriersFor(shippingType string) map[string]models.Carrier {
	out := make(map[string]models.Carrier)
	for _, car := range c.carriers[shippingType] {
		out[car.Key] = copyCarrier(car)
	}
	return out
}

// CarrierList returns the carriers of a shipping type in display order.
func (c *Catalog) CarrierList(shippingType string) []models.Carrier {
	list := c.carriers[shippingType]
	out := make([]models.Carrier, 0, len(list))
	for _, car := range list {
		out = append(out, copyCarrier(car))
	}
	return out
}

// CarrierKeys returns the carrier keys of a shipping type in display order.
func (c *Catalog) CarrierKeys(shippingType string) []string {
	list := c.carriers[shippingType]
	keys := make([]string, 0, len(list))
	for _, car := range list {
		keys = append(keys, car.Key)
	}
	return keys
}

// Carrier looks a carrier up by key regardless of shipping type.
func (c *Catalog) Carrier(key string) (models.Carrier, bool) {
	car, ok := c.byKey[key]
	if !ok {
		return models.Carrier{}, false
	}
	return copyCarrier(car), true
}

// DisplayNames maps carrier keys to display names. Unknown keys are kept as is.
func (c *Catalog) DisplayNames(keys []string) []string {
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		if car, ok := c.byKey[k]; ok {
			names = append(names, car.Name)
		} else {
			names = append(names, k)
		}
	}
	return names
}

// ValidCargoType reports whether t is an accepted cargo type.
func (c *Catalog) ValidCargoType(t string) bool {
	return slices.Contains(c.cargoTypes, t)
}

// ValidateSelection checks a route and carrier selection against the tables.
// The returned error is a *models.ValidationError naming the first bad value.
func (c *Catalog) ValidateSelection(shippingType, routeType, origin, destination string, carriers []string) error {
	routes, ok := c.locations[shippingType]
	if !ok {
		return models.NewValidationError(fmt.Sprintf("Unknown shipping type %q", shippingType))
	}
	set, ok := routes[routeType]
	if !ok {
		return models.NewValidationError(fmt.Sprintf("Unknown route type %q", routeType))
	}
	if !slices.Contains(set.Origins, origin) {
		return models.NewValidationError(fmt.Sprintf("Origin %q is not served on this route", origin))
	}
	if !slices.Contains(set.Destinations, destination) {
		return models.NewValidationError(fmt.Sprintf("Destination %q is not served on this route", destination))
	}
	if len(carriers) == 0 {
		return models.NewValidationError("At least one carrier must be selected")
	}
	seen := make(map[string]bool, len(carriers))
	for _, key := range carriers {
		if c.shipTypeOf[key] != shippingType {
			return models.NewValidationError(fmt.Sprintf("Carrier %q is not available for %s shipping", key, shippingType))
		}
		if seen[key] {
			return models.NewValidationError(fmt.Sprintf("Carrier %q selected more than once", key))
		}
		seen[key] = true
	}
	return nil
}

// ResolveCarrierEmail returns the address a carrier's quote request goes to.
// Young Brothers routes by port: the first known port name contained in the
// origin wins, then the destination, and Honolulu otherwise.
func (c *Catalog) ResolveCarrierEmail(key, origin, destination string) (string, bool) {
	car, ok := c.byKey[key]
	if !ok {
		return "", false
	}
	if key != YoungBrothersKey {
		return car.Contact.Email, true
	}
	return c.youngBrothersEmail(origin, destination), true
}

func (c *Catalog) youngBrothersEmail(origin, destination string) string {
	for _, place := range []string{origin, destination} {
		for _, p := range c.ports {
			if strings.Contains(place, p.Port) {
				return p.Email
			}
		}
	}
	return c.ports[0].Email
}

func copyCarrier(car models.Carrier) models.Carrier {
	out := car
	out.Fields = make([]models.CarrierField, len(car.Fields))
	for i, f := range car.Fields {
		f.Options = append([]string(nil), f.Options...)
		out.Fields[i] = f
	}
	return out
}

