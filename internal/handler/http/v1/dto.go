package v1

import "github.com/shenikar/geoprice/internal/models"

// Response - общий конверт ответа API
// @Description Общий конверт ответа API
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// LandAreasResponse - конверт со списком участков (для документации)
type LandAreasResponse struct {
	Success bool               `json:"success"`
	Data    []*models.LandArea `json:"data"`
	Message string             `json:"message,omitempty"`
}

// LandAreaResponse - конверт с одним участком (для документации)
type LandAreaResponse struct {
	Success bool             `json:"success"`
	Data    *models.LandArea `json:"data"`
	Message string           `json:"message,omitempty"`
}

// ErrorResponse - конверт ошибки (для документации)
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// AddLocationRequest DTO для добавления участка по адресу
// @Description DTO для добавления участка по адресу
type AddLocationRequest struct {
	Name           string  `json:"name" validate:"required,max=255"`
	Address        string  `json:"address" validate:"required,max=500"`
	Type           string  `json:"type" validate:"required,oneof=residential commercial industrial agricultural"`
	EstimatedPrice float64 `json:"estimatedPrice" validate:"required,gt=0"`
}

// HealthResponse DTO проверки состояния
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
	Mode      string `json:"mode"`
}
