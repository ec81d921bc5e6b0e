package guide

import (
	"strings"

	"shutterplan/pkg/model"
)

// Lens catalogue. Focal lengths are what the wide/tele step assignment
// compares; zooms carry their long end.
var lensCatalogue = []model.Lens{
	{Label: "35mm F2", FocalLengthMM: 35},
	{Label: "70-300mm", FocalLengthMM: 300},
	{Label: "fixed ~40mm", FocalLengthMM: 40},
	{Label: "28mm", FocalLengthMM: 28},
	{Label: "50mm", FocalLengthMM: 50},
	{Label: "35mm", FocalLengthMM: 35},
}

// Lenses lists the full catalogue.
func Lenses() []model.Lens {
	out := make([]model.Lens, len(lensCatalogue))
	copy(out, lensCatalogue)
	return out
}

// LensFor resolves a label to a catalogue entry. Unknown labels come back
// with a zero focal length so callers can fall back to random assignment.
func LensFor(label string) model.Lens {
	for _, l := range lensCatalogue {
		if l.Label == label {
			return l
		}
	}
	return model.Lens{Label: label}
}

// LensesForCamera returns the lens options the planner offers for a camera
// body. Fixed-lens bodies get exactly one entry.
func LensesForCamera(camera string) []model.Lens {
	switch camera {
	case "Ricoh GR IIIx":
		return []model.Lens{LensFor("fixed ~40mm")}
	case "Fujifilm X-T5":
		return []model.Lens{LensFor("35mm F2"), LensFor("70-300mm")}
	default:
		return []model.Lens{LensFor("28mm"), LensFor("50mm")}
	}
}

var lensRationale = map[string]string{
	"35mm F2":     "Versatile for street and environmental portraits; natural field of view; fast aperture for low light",
	"35mm":        "Versatile for street and environmental portraits; natural field of view",
	"70-300mm":    "Compression for cityscapes and distant subjects; isolates details; great for candid telephoto street and wildlife",
	"fixed ~40mm": "Compact and discreet for street; forces you to move; classic reportage focal length",
	"28mm":        "Wide enough for context; great for environmental storytelling; classic street photography focal length",
	"50mm":        "Natural perspective for portraits; fast aperture; mimics human eye view; excellent for film photography",
}

// LensRationale explains a lens choice, with a generic fallback for labels
// outside the catalogue.
func LensRationale(label string) string {
	if r, ok := lensRationale[label]; ok {
		return r
	}
	return "General-purpose lens for this task"
}

// Film stock catalogues by color mode.
var (
	filmStocksBW = []string{
		"Ilford HP5 Plus 400",
		"Kodak Tri-X 400",
		"Ilford FP4 Plus 125",
		"Kodak T-Max 400",
		"Ilford Delta 3200",
		"Fomapan 400",
		"Kodak Double-X 250",
	}
	filmStocksColor = []string{
		"Kodak Portra 400",
		"Kodak Portra 160",
		"Kodak Portra 800",
		"Fujifilm Pro 400H",
		"Kodak Ektar 100",
		"Fujifilm Superia 400",
		"Cinestill 800T",
		"Kodak Gold 200",
		"Fujifilm Velvia 50",
	}
)

// FilmStocks lists the stocks offered for a color mode.
func FilmStocks(colorMode string) []string {
	if colorMode == "Black & White" {
		return append([]string(nil), filmStocksBW...)
	}
	return append([]string(nil), filmStocksColor...)
}

// FilmISOFromStock extracts the box speed from a stock name, taking the
// digits of the last token ("Cinestill 800T" yields "800"). Returns "400"
// when no digits are present.
func FilmISOFromStock(stock string) string {
	fields := strings.Fields(stock)
	if len(fields) == 0 {
		return "400"
	}
	var digits strings.Builder
	for _, r := range fields[len(fields)-1] {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return "400"
	}
	return digits.String()
}
