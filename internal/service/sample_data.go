package service

import "github.com/shenikar/geoprice/internal/models"

// sampleLandAreas - участки Манхэттена с границами, заданными вручную
var sampleLandAreas = []models.LandArea{
	{
		ID:   "1",
		Name: "Lower Manhattan Financial District",
		Coordinates: []models.Coordinate{
			{40.7074, -74.0113}, {40.708, -74.008}, {40.706, -74.007}, {40.704, -74.008},
			{40.703, -74.009}, {40.702, -74.01}, {40.701, -74.011}, {40.7, -74.012},
			{40.701, -74.013}, {40.703, -74.014}, {40.705, -74.013}, {40.7074, -74.0113},
		},
		PricePerSqFt: 850.5,
		TotalArea:    75000,
		Description:  "Prime financial district with world-class commercial properties",
		Type:         models.LandTypeCommercial,
	},
	{
		ID:   "2",
		Name: "Central Park West Residential",
		Coordinates: []models.Coordinate{
			{40.7829, -73.9734}, {40.785, -73.972}, {40.787, -73.971}, {40.789, -73.972},
			{40.79, -73.974}, {40.789, -73.976}, {40.787, -73.977}, {40.785, -73.976},
			{40.7829, -73.9734},
		},
		PricePerSqFt: 1250.75,
		TotalArea:    45000,
		Description:  "Luxury residential area overlooking Central Park",
		Type:         models.LandTypeResidential,
	},
	{
		ID:   "3",
		Name: "Midtown Commercial Hub",
		Coordinates: []models.Coordinate{
			{40.758, -73.9855}, {40.759, -73.984}, {40.761, -73.983}, {40.762, -73.984},
			{40.763, -73.986}, {40.762, -73.988}, {40.76, -73.989}, {40.758, -73.988},
			{40.757, -73.987}, {40.758, -73.9855},
		},
		PricePerSqFt: 925.25,
		TotalArea:    85000,
		Description:  "Heart of Manhattan with major office buildings and retail",
		Type:         models.LandTypeCommercial,
	},
	{
		ID:   "4",
		Name: "Greenwich Village Historic District",
		Coordinates: []models.Coordinate{
			{40.7335, -74.0027}, {40.735, -74.001}, {40.7365, -74.0}, {40.738, -74.001},
			{40.7385, -74.003}, {40.738, -74.005}, {40.7365, -74.006}, {40.735, -74.0055},
			{40.7335, -74.0045}, {40.733, -74.0035}, {40.7335, -74.0027},
		},
		PricePerSqFt: 695.9,
		TotalArea:    35000,
		Description:  "Charming historic neighborhood with unique character",
		Type:         models.LandTypeResidential,
	},
	{
		ID:   "5",
		Name: "SoHo Arts District",
		Coordinates: []models.Coordinate{
			{40.723, -74.005}, {40.725, -74.003}, {40.727, -74.002}, {40.7285, -74.003},
			{40.729, -74.005}, {40.7285, -74.007}, {40.727, -74.008}, {40.725, -74.0075},
			{40.7235, -74.0065}, {40.723, -74.005},
		},
		PricePerSqFt: 775.8,
		TotalArea:    42000,
		Description:  "Trendy arts district with galleries, lofts and boutiques",
		Type:         models.LandTypeCommercial,
	},
	{
		ID:   "6",
		Name: "Upper East Side Residential",
		Coordinates: []models.Coordinate{
			{40.7794, -73.9632}, {40.781, -73.962}, {40.7825, -73.9615}, {40.784, -73.962},
			{40.785, -73.9635}, {40.7845, -73.965}, {40.7835, -73.966}, {40.782, -73.9655},
			{40.7805, -73.9645}, {40.7794, -73.9632},
		},
		PricePerSqFt: 1150.25,
		TotalArea:    55000,
		Description:  "Prestigious residential area with luxury apartments and townhouses",
		Type:         models.LandTypeResidential,
	},
	{
		ID:   "7",
		Name: "Chelsea Market District",
		Coordinates: []models.Coordinate{
			{40.742, -74.0065}, {40.7435, -74.005}, {40.745, -74.004}, {40.7465, -74.0045},
			{40.7475, -74.006}, {40.747, -74.008}, {40.7455, -74.009}, {40.744, -74.0085},
			{40.7425, -74.0075}, {40.742, -74.0065},
		},
		PricePerSqFt: 680.4,
		TotalArea:    38000,
		Description:  "Vibrant neighborhood known for food markets and galleries",
		Type:         models.LandTypeCommercial,
	},
}

// SampleLandAreas возвращает копию статического набора, сам набор не меняется
func SampleLandAreas() []*models.LandArea {
	out := make([]*models.LandArea, len(sampleLandAreas))
	for i := range sampleLandAreas {
		area := sampleLandAreas[i]
		area.Coordinates = append([]models.Coordinate(nil), sampleLandAreas[i].Coordinates...)
		out[i] = &area
	}
	return out
}
