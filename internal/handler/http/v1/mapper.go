package v1

import (
	"github.com/syket-git/Elaka/internal/models"
	"github.com/syket-git/Elaka/internal/positioning"
)

// DTOToAreaModel преобразует DTO создания/обновления в доменную модель
func DTOToAreaModel(dto any) *models.Area {
	switch v := dto.(type) {
	case CreateAreaRequest:
		return &models.Area{
			Name:         v.Name,
			NameBn:       v.NameBn,
			Slug:         v.Slug,
			City:         v.City,
			Latitude:     v.Latitude,
			Longitude:    v.Longitude,
			RadiusMeters: v.RadiusMeters,
		}
	case UpdateAreaRequest:
		return &models.Area{
			Name:         v.Name,
			NameBn:       v.NameBn,
			Slug:         v.Slug,
			City:         v.City,
			Latitude:     v.Latitude,
			Longitude:    v.Longitude,
			RadiusMeters: v.RadiusMeters,
			Status:       v.Status,
		}
	}
	return nil
}

// ModelToAreaResponse преобразует доменную модель в DTO для ответа
func ModelToAreaResponse(model *models.Area) *AreaResponse {
	return &AreaResponse{
		ID:           model.ID,
		Name:         model.Name,
		NameBn:       model.NameBn,
		Slug:         model.Slug,
		City:         model.City,
		Latitude:     model.Latitude,
		Longitude:    model.Longitude,
		RadiusMeters: model.RadiusMeters,
		Status:       model.Status,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

// ModelsToAreaResponses преобразует слайс моделей в слайс DTO
func ModelsToAreaResponses(areas []*models.Area) []*AreaResponse {
	responses := make([]*AreaResponse, len(areas))
	for i, area := range areas {
		responses[i] = ModelToAreaResponse(area)
	}
	return responses
}

// CheckinRequestToSource превращает присланную выборку в источник координат
func CheckinRequestToSource(req CheckinRequest) positioning.Source {
	if req.LocationError != "" {
		return positioning.Reported{Failure: req.LocationError}
	}
	if req.Latitude == nil || req.Longitude == nil {
		return positioning.Reported{}
	}
	return positioning.Reported{Position: &positioning.Position{
		Latitude:       *req.Latitude,
		Longitude:      *req.Longitude,
		AccuracyMeters: req.AccuracyMeters,
	}}
}
