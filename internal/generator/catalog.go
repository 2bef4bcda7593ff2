package generator

import (
	"fmt"

	"github.com/shenikar/geoprice/internal/models"
)

// Place - именованное место каталога
type Place struct {
	Name           string
	SearchTerm     string
	Type           models.LandType
	EstimatedPrice float64
}

// ManhattanNeighborhoods - каталог районов Манхэттена с базовыми ценами за кв. фут
func ManhattanNeighborhoods() []Place {
	return []Place{
		{Name: "Financial District", SearchTerm: "Financial District, Manhattan, New York, NY", Type: models.LandTypeCommercial, EstimatedPrice: 850},
		{Name: "SoHo", SearchTerm: "SoHo, Manhattan, New York, NY", Type: models.LandTypeCommercial, EstimatedPrice: 775},
		{Name: "Greenwich Village", SearchTerm: "Greenwich Village, Manhattan, New York, NY", Type: models.LandTypeResidential, EstimatedPrice: 695},
		{Name: "Chelsea", SearchTerm: "Chelsea, Manhattan, New York, NY", Type: models.LandTypeCommercial, EstimatedPrice: 680},
		{Name: "Midtown", SearchTerm: "Midtown, Manhattan, New York, NY", Type: models.LandTypeCommercial, EstimatedPrice: 925},
		{Name: "Upper East Side", SearchTerm: "Upper East Side, Manhattan, New York, NY", Type: models.LandTypeResidential, EstimatedPrice: 1150},
		{Name: "Upper West Side", SearchTerm: "Upper West Side, Manhattan, New York, NY", Type: models.LandTypeResidential, EstimatedPrice: 1000},
		{Name: "Tribeca", SearchTerm: "Tribeca, Manhattan, New York, NY", Type: models.LandTypeResidential, EstimatedPrice: 1300},
		{Name: "East Village", SearchTerm: "East Village, Manhattan, New York, NY", Type: models.LandTypeResidential, EstimatedPrice: 580},
		{Name: "Hell's Kitchen", SearchTerm: "Hell's Kitchen, Manhattan, New York, NY", Type: models.LandTypeResidential, EstimatedPrice: 720},
	}
}

var descriptionTemplates = map[models.LandType][]string{
	models.LandTypeResidential: {
		"Beautiful residential area in %s with excellent amenities",
		"Prime residential location in %s perfect for families",
		"Luxury residential district in %s with high-end properties",
		"Charming residential neighborhood in %s with great community feel",
	},
	models.LandTypeCommercial: {
		"Thriving commercial district in %s with excellent business opportunities",
		"Prime commercial real estate in %s with high foot traffic",
		"Major commercial hub in %s with modern office buildings",
		"Dynamic commercial area in %s perfect for retail and offices",
	},
	models.LandTypeIndustrial: {
		"Industrial zone in %s with excellent transportation access",
		"Modern industrial district in %s suitable for manufacturing",
		"Well-connected industrial area in %s with great logistics",
	},
	models.LandTypeAgricultural: {
		"Fertile agricultural land in %s suitable for farming",
		"Prime agricultural area in %s with excellent soil quality",
	},
}

// Descriptions возвращает все варианты описания для места данного типа
func Descriptions(name string, landType models.LandType) []string {
	templates := descriptionTemplates[landType]
	out := make([]string, len(templates))
	for i, tmpl := range templates {
		out[i] = fmt.Sprintf(tmpl, name)
	}
	return out
}

// Describe выбирает описание случайно. Для неизвестного типа описание пустое.
func Describe(name string, landType models.LandType, rnd Random) string {
	templates := descriptionTemplates[landType]
	if len(templates) == 0 {
		return ""
	}
	return fmt.Sprintf(templates[rnd.IntN(len(templates))], name)
}
