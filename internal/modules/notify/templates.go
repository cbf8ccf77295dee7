package notify

import (
	"bytes"
	"embed"
	htmltemplate "html/template"
	"strconv"
	"strings"
	texttemplate "text/template"

	"freight-quotes/internal/catalog"
	"freight-quotes/internal/models"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var funcs = map[string]any{"join": strings.Join}

var (
	htmlTemplates = htmltemplate.Must(htmltemplate.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html.tmpl"))
	textTemplates = texttemplate.Must(texttemplate.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.txt.tmpl"))
)

type fieldView struct {
	Label string
	Value string
}

type carrierView struct {
	CarrierName string
	Fields      []fieldView
	Services    []string
}

// emailView is the data behind every email template. Carrier is only set for
// carrier forwarding emails.
type emailView struct {
	Reference           string
	Name                string
	Company             string
	Email               string
	Phone               string
	ShippingLabel       string
	RouteType           string
	Origin              string
	Destination         string
	ShipDate            string
	Carriers            string
	CarrierDetails      []carrierView
	CargoType           string
	Weight              string
	Length              string
	Width               string
	Height              string
	Quantity            string
	SpecialInstructions string
	Carrier             carrierView
}

func newEmailView(cat *catalog.Catalog, n models.ShipmentNotice) emailView {
	v := emailView{
		Name:                n.Name,
		Company:             n.CompanyName,
		Email:               n.Email,
		Phone:               n.Phone,
		ShippingLabel:       shippingLabel(n.ShippingType),
		RouteType:           n.RouteType,
		Origin:              n.Origin,
		Destination:         n.Destination,
		ShipDate:            dash(n.ShipDate),
		Carriers:            strings.Join(cat.DisplayNames(n.SelectedCarriers), ", "),
		CargoType:           n.CargoType,
		Weight:              dash(n.Weight.String()),
		Length:              dash(n.Length.String()),
		Width:               dash(n.Width.String()),
		Height:              dash(n.Height.String()),
		Quantity:            strconv.Itoa(max(n.Quantity, 1)),
		SpecialInstructions: n.SpecialInstructions,
	}
	if n.QuoteID != "" {
		v.Reference = models.ReferenceNumber(n.QuoteID)
	}
	if n.FlexibleDates {
		v.ShipDate = "Flexible"
	}
	for _, key := range n.SelectedCarriers {
		v.CarrierDetails = append(v.CarrierDetails, newCarrierView(cat, key, n))
	}
	return v
}

// newCarrierView lists the answers a customer gave to one carrier's own
// questions, in the order the carrier asks them.
func newCarrierView(cat *catalog.Catalog, key string, n models.ShipmentNotice) carrierView {
	answers := n.CarrierSpecificFields[key]
	cv := carrierView{CarrierName: key, Services: n.SelectedServices[key]}
	car, ok := cat.Carrier(key)
	if !ok {
		return cv
	}
	cv.CarrierName = car.Name
	for _, f := range car.Fields {
		if val := answers[f.Name]; val != "" {
			cv.Fields = append(cv.Fields, fieldView{Label: f.Label, Value: val})
		}
	}
	return cv
}

func render(name string, v emailView) (html, text string, err error) {
	var hb, tb bytes.Buffer
	if err := htmlTemplates.ExecuteTemplate(&hb, name+".html.tmpl", v); err != nil {
		return "", "", err
	}
	if err := textTemplates.ExecuteTemplate(&tb, name+".txt.tmpl", v); err != nil {
		return "", "", err
	}
	return hb.String(), tb.String(), nil
}

func shippingLabel(t string) string {
	if t == models.ShippingOcean {
		return "Ocean Freight"
	}
	return "Air Cargo"
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
