package catalog

import "freight-quotes/internal/models"

// manualForward marks carriers without a quote inbox; their requests go to the
// admin address given to New.
const manualForward = ""

var westCoastPorts = []string{
	"Los Angeles, CA (Port of LA)",
	"Long Beach, CA (Port of Long Beach)",
	"Oakland, CA (Port of Oakland)",
	"Seattle, WA (Port of Seattle)",
	"Tacoma, WA (Port of Tacoma)",
	"Portland, OR (Port of Portland)",
}

var hawaiiHarbors = []string{
	"Honolulu, HI (Honolulu Harbor)",
	"Kawaihae, HI (Kawaihae Harbor)",
	"Hilo, HI (Hilo Harbor)",
	"Kahului, HI (Kahului Harbor)",
	"Nawiliwili, HI (Nawiliwili Harbor)",
	"Kaunakakai, HI (Kaunakakai Wharf)",
}

var westCoastAirports = []string{
	"Los Angeles, CA (LAX)",
	"San Francisco, CA (SFO)",
	"Oakland, CA (OAK)",
	"San Jose, CA (SJC)",
	"Seattle, WA (SEA)",
	"Portland, OR (PDX)",
	"San Diego, CA (SAN)",
	"Sacramento, CA (SMF)",
}

var hawaiiAirports = []string{
	"Honolulu, HI (HNL)",
	"Kahului, HI (OGG)",
	"Kona, HI (KOA)",
	"Hilo, HI (ITO)",
	"Lihue, HI (LIH)",
	"Molokai, HI (MKK)",
	"Lanai, HI (LNY)",
}

// routeLocations builds the three route sets from a mainland list and an
// island list.
func routeLocations(mainland, islands []string) map[string]models.LocationSet {
	return map[string]models.LocationSet{
		models.RouteWestCoastToHawaii: {Origins: mainland, Destinations: islands},
		models.RouteHawaiiToWestCoast: {Origins: islands, Destinations: mainland},
		models.RouteInterIsland:       {Origins: islands, Destinations: islands},
	}
}

func defaultLocations() map[string]map[string]models.LocationSet {
	return map[string]map[string]models.LocationSet{
		models.ShippingOcean: routeLocations(westCoastPorts, hawaiiHarbors),
		models.ShippingAir:   routeLocations(westCoastAirports, hawaiiAirports),
	}
}

var locationTypes = []string{"Pier/Port", "Business Address", "Residential"}

func defaultCarriers() map[string][]models.Carrier {
	return map[string][]models.Carrier{
		models.ShippingOcean: {
			{
				Key:         "youngBrothers",
				Name:        "Young Brothers",
				Description: "Inter-island freight specialist",
				Fields: []models.CarrierField{
					{Name: "commodity_code", Label: "Commodity Code", Type: "text", Placeholder: "e.g., 4821", Required: true},
					{Name: "packing_type", Label: "Packing Type", Type: "select", Options: []string{"Palletized", "Crated", "Loose", "Containerized"}, Required: true},
				},
				// Overridden per port, see ResolveCarrierEmail.
				Contact: models.CarrierContact{Name: "Young Brothers", Email: "booking@htbyb.com", Phone: "808-543-9311", Website: "https://www.htbyb.com"},
			},
			{
				Key:         "matson",
				Name:        "Matson Navigation",
				Description: "West Coast ⇄ Hawaii",
				Fields: []models.CarrierField{
					{Name: "container_type", Label: "Container Type", Type: "select", Options: []string{"20ft Standard", "40ft Standard", "40ft High Cube", "LCL (Less than Container Load)"}, Required: true},
					{Name: "commodity_description", Label: "Detailed Commodity Description", Type: "text", Placeholder: "Full description of goods", Required: true},
				},
				Contact: models.CarrierContact{Name: "Matson Navigation", Email: "customerservice@matson.com", Phone: "1-800-4MATSON", Website: "https://www.matson.com"},
			},
			{
				Key:         "pasha",
				Name:        "Pasha Hawaii",
				Description: "West Coast ⇄ Hawaii freight",
				Fields: []models.CarrierField{
					{Name: "pickup_location_type", Label: "Pickup Location Type", Type: "select", Options: locationTypes, Required: true},
					{Name: "delivery_location_type", Label: "Delivery Location Type", Type: "select", Options: locationTypes, Required: true},
				},
				Contact: models.CarrierContact{Name: "Pasha Hawaii", Email: "ContainerQuotes@pashahawaii.com", Phone: "(877) 322-9920", Website: "https://www.pashahawaii.com"},
			},
		},
		models.ShippingAir: {
			{
				Key:         "fedex",
				Name:        "FedEx Cargo",
				Description: "Global express shipping",
				Fields: []models.CarrierField{
					{Name: "service_type", Label: "Service Type", Type: "select", Options: []string{"FedEx Priority Overnight", "FedEx 2Day", "FedEx Express Saver", "FedEx Ground"}, Required: true},
					{Name: "dangerous_goods", Label: "Contains Dangerous Goods?", Type: "select", Options: []string{"No", "Yes - Lithium Batteries", "Yes - Dry Ice", "Yes - Other (specify in notes)"}, Required: true},
				},
				// FedEx books online only; requests are forwarded by hand.
				Contact: models.CarrierContact{Name: "FedEx Cargo", Email: manualForward, Phone: "1-800-463-3339", Website: "https://www.fedex.com"},
			},
			{
				Key:         "ups",
				Name:        "UPS Cargo",
				Description: "Reliable worldwide delivery",
				Fields: []models.CarrierField{
					{Name: "service_type", Label: "Service Type", Type: "select", Options: []string{"UPS Next Day Air", "UPS 2nd Day Air", "UPS 3 Day Select", "UPS Ground"}, Required: true},
					{Name: "declared_value", Label: "Declared Value (USD)", Type: "text", Placeholder: "e.g., 5000"},
				},
				Contact: models.CarrierContact{Name: "UPS Cargo", Email: manualForward, Phone: "1-800-742-5877", Website: "https://www.ups.com"},
			},
			{
				Key:         "alohaAir",
				Name:        "Aloha Air Cargo",
				Description: "Fast inter-island & mainland",
				Fields: []models.CarrierField{
					{Name: "packaging_condition", Label: "Packaging Condition", Type: "select", Options: []string{"Factory Sealed", "Boxed - Good Condition", "Crated", "Loose/Open"}, Required: true},
					{Name: "declared_value", Label: "Declared Value (USD)", Type: "text", Placeholder: "e.g., 5000"},
				},
				Contact: models.CarrierContact{Name: "Aloha Air Cargo", Email: "customerservice@alohaaircargo.com", Phone: "808-484-1170", Website: "https://www.alohaaircargo.com"},
			},
			{
				Key:         "hawaiianAir",
				Name:        "Hawaiian Air Cargo",
				Description: "Priority air freight",
				Fields: []models.CarrierField{
					{Name: "dangerous_goods", Label: "Contains Dangerous Goods?", Type: "select", Options: []string{"No", "Yes - Lithium Batteries", "Yes - Other (specify in notes)"}, Required: true},
					{Name: "time_sensitivity", Label: "Time Sensitivity", Type: "select", Options: []string{"Standard (3-5 days)", "Priority (1-2 days)", "Next Flight Out"}, Required: true},
				},
				Contact: models.CarrierContact{Name: "Hawaiian Airlines Cargo", Email: "cargo.booking@alaskaair.com", Phone: "808-835-3415", Website: "https://www.hawaiianaircargo.com"},
			},
			{
				Key:         "hawaiiAir",
				Name:        "Hawaii Air Cargo",
				Description: "Local Hawaii air freight specialist",
				Fields: []models.CarrierField{
					{Name: "delivery_type", Label: "Delivery Type", Type: "select", Options: []string{"Airport Pickup", "Door Delivery", "Business Delivery"}, Required: true},
					{Name: "time_sensitivity", Label: "Time Sensitivity", Type: "select", Options: []string{"Standard", "Same Day", "Next Day"}, Required: true},
				},
				Contact: models.CarrierContact{Name: "Hawaii Air Cargo", Email: manualForward},
			},
			{
				Key:         "pacificAir",
				Name:        "Pacific Air Cargo",
				Description: "Trans-Pacific cargo specialist",
				Fields: []models.CarrierField{
					{Name: "cargo_type_specific", Label: "Cargo Category", Type: "select", Options: []string{"General Cargo", "Perishables", "High Value", "Oversized"}, Required: true},
					{Name: "packaging_type", Label: "Packaging Type", Type: "select", Options: []string{"Palletized", "Crated", "Boxed", "Loose"}, Required: true},
				},
				Contact: models.CarrierContact{Name: "Pacific Air Cargo", Email: "quotes@pacificaircargo.com", Phone: "808-836-0011", Website: "https://www.pacificaircargo.com"},
			},
			{
				Key:         "dhx",
				Name:        "DHX (Dependable Hawaiian Express)",
				Description: "Hawaii inter-island express",
				Fields: []models.CarrierField{
					{Name: "service_level", Label: "Service Level", Type: "select", Options: []string{"Standard Delivery", "Same Day", "Next Day"}, Required: true},
					{Name: "pickup_type", Label: "Pickup Type", Type: "select", Options: []string{"Drop-off at Terminal", "Scheduled Pickup", "Will Call"}, Required: true},
				},
				Contact: models.CarrierContact{Name: "DHX (Dependable Hawaiian Express)", Email: "rates@dhx.com", Phone: "808-836-2424", Website: "https://www.dhx.com"},
			},
		},
	}
}

// youngBrothersPorts is scanned in order; the first port name contained in
// the origin (then the destination) wins.
var youngBrothersPorts = []portContact{
	{Port: "Honolulu", Email: "booking@htbyb.com"},
	{Port: "Hilo", Email: "hilo@htbyb.com"},
	{Port: "Kahului", Email: "maui@htbyb.com"},
	{Port: "Kaunakakai", Email: "molokai@htbyb.com"},
	{Port: "Nawiliwili", Email: "kauai@htbyb.com"},
	{Port: "Kaumalapau", Email: "lanai@htbyb.com"},
	{Port: "Kawaihae", Email: "kawaihae@htbyb.com"},
}

var cargoTypes = []string{"general", "vehicle", "household", "equipment", "perishable", "hazmat", "other"}
