package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLandType_IsValid(t *testing.T) {
	for _, lt := range LandTypes() {
		assert.True(t, lt.IsValid(), string(lt))
	}

	assert.False(t, LandType("Residential").IsValid())
	assert.False(t, LandType("mixed").IsValid())
	assert.False(t, LandType("").IsValid())
}

func TestLandArea_JSONShape(t *testing.T) {
	area := &LandArea{
		ID:           "1",
		Name:         "SoHo",
		Coordinates:  []Coordinate{{40.1, -74.2}, {40.1, -74.2}},
		PricePerSqFt: 775.8,
		TotalArea:    42000,
		Type:         LandTypeCommercial,
	}

	raw, err := json.Marshal(area)
	require.NoError(t, err)

	// Координаты - массив пар, description опущен
	assert.JSONEq(t, `{
		"id": "1",
		"name": "SoHo",
		"coordinates": [[40.1, -74.2], [40.1, -74.2]],
		"pricePerSqFt": 775.8,
		"totalArea": 42000,
		"type": "commercial"
	}`, string(raw))
	assert.True(t, area.HasGeometry())
	assert.False(t, (&LandArea{}).HasGeometry())
}
