package v1

import (
	"github.com/shenikar/geoprice/internal/models"
	"github.com/shenikar/geoprice/internal/service"
)

// DTOToAddLocationInput преобразует запрос в входные данные сервиса
func DTOToAddLocationInput(dto AddLocationRequest) service.AddLocationInput {
	return service.AddLocationInput{
		Name:           dto.Name,
		Address:        dto.Address,
		Type:           models.LandType(dto.Type),
		EstimatedPrice: dto.EstimatedPrice,
	}
}

// successResponse - успешный конверт. Пустой список отдается как [], а не null.
func successResponse(data any, message string) Response {
	if areas, ok := data.([]*models.LandArea); ok && areas == nil {
		data = []*models.LandArea{}
	}
	return Response{Success: true, Data: data, Message: message}
}

func errorResponse(message string) Response {
	return Response{Success: false, Error: message}
}
