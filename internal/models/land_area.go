package models

// LandType классифицирует участок. Набор значений закрыт.
type LandType string

const (
	LandTypeResidential  LandType = "residential"
	LandTypeCommercial   LandType = "commercial"
	LandTypeIndustrial   LandType = "industrial"
	LandTypeAgricultural LandType = "agricultural"
)

// LandTypes возвращает все допустимые типы участков в фиксированном порядке
func LandTypes() []LandType {
	return []LandType{
		LandTypeResidential,
		LandTypeCommercial,
		LandTypeIndustrial,
		LandTypeAgricultural,
	}
}

// IsValid сообщает, входит ли значение в закрытый набор типов (с учетом регистра)
func (t LandType) IsValid() bool {
	switch t {
	case LandTypeResidential, LandTypeCommercial, LandTypeIndustrial, LandTypeAgricultural:
		return true
	}
	return false
}

// LatLng - географическая точка
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Bounds - прямоугольник, заданный северо-восточным и юго-западным углами
type Bounds struct {
	NorthEast LatLng `json:"northeast"`
	SouthWest LatLng `json:"southwest"`
}

// Coordinate - пара [широта, долгота]. В JSON сериализуется массивом из двух чисел.
type Coordinate [2]float64

func (c Coordinate) Lat() float64 { return c[0] }
func (c Coordinate) Lng() float64 { return c[1] }

// LandArea - участок с границей и ценовыми метаданными.
// Coordinates образуют замкнутый контур: последняя точка повторяет первую.
// Пустой контур означает отсутствие геометрии для отрисовки, а не ошибку.
type LandArea struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Coordinates  []Coordinate `json:"coordinates"`
	PricePerSqFt float64      `json:"pricePerSqFt"`
	TotalArea    float64      `json:"totalArea"`
	Description  string       `json:"description,omitempty"`
	Type         LandType     `json:"type"`
}

// HasGeometry сообщает, есть ли у участка контур для отрисовки
func (a *LandArea) HasGeometry() bool {
	return len(a.Coordinates) > 0
}
