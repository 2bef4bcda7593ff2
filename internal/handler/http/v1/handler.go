package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/geoprice/internal/filter"
	"github.com/shenikar/geoprice/internal/models"
	"github.com/shenikar/geoprice/internal/service"
	"github.com/sirupsen/logrus"
)

const serviceName = "GeoPrice API"

type Handler struct {
	landService service.LandService
	logger      *logrus.Logger
	validate    *validator.Validate
	now         func() time.Time
}

func NewHandler(landService service.LandService, logger *logrus.Logger) *Handler {
	return &Handler{
		landService: landService,
		logger:      logger,
		validate:    validator.New(),
		now:         time.Now,
	}
}

// @Summary Get land areas
// @Description Get all land areas. Optional filters are applied in order: type, minPrice, maxPrice. A non-empty q replaces the base set with search results.
// @Tags Land Areas
// @Produce json
// @Param type query string false "Land type" Enums(residential, commercial, industrial, agricultural)
// @Param minPrice query number false "Minimum price per sq ft, inclusive"
// @Param maxPrice query number false "Maximum price per sq ft, inclusive"
// @Param q query string false "Free-text search"
// @Success 200 {object} LandAreasResponse
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/land-areas [get]
func (h *Handler) listLandAreas(c *gin.Context) {
	log := h.logger.WithField("method", "listLandAreas")

	criteria, err := filter.ParseValues(c.Request.URL.Query())
	if err != nil {
		log.WithError(err).Warn("Invalid filter parameters")
		message := "Invalid price filter"
		if errors.Is(err, filter.ErrInvalidType) {
			message = "Invalid land area type"
		}
		c.JSON(http.StatusBadRequest, errorResponse(message))
		return
	}

	ctx := c.Request.Context()
	var areas []*models.LandArea
	if criteria.HasQuery() {
		areas, err = h.landService.Search(ctx, strings.TrimSpace(criteria.Query))
	} else {
		areas, err = h.landService.GetAll(ctx)
	}
	if err != nil {
		h.respondError(c, log, err, "Failed to retrieve land areas")
		return
	}

	c.JSON(http.StatusOK, successResponse(filter.Apply(areas, criteria), "Land areas retrieved successfully"))
}

// @Summary Get land area by ID
// @Tags Land Areas
// @Produce json
// @Param id path string true "Land area ID"
// @Success 200 {object} LandAreaResponse
// @Failure 404 {object} ErrorResponse "Land area not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/land-areas/{id} [get]
func (h *Handler) getLandArea(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getLandArea").WithField("id", id)

	area, err := h.landService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err, "Failed to retrieve land area")
		return
	}
	c.JSON(http.StatusOK, successResponse(area, "Land area retrieved successfully"))
}

// @Summary Get land areas by type
// @Tags Land Areas
// @Produce json
// @Param type path string true "Land type" Enums(residential, commercial, industrial, agricultural)
// @Success 200 {object} LandAreasResponse
// @Failure 400 {object} ErrorResponse "Invalid land area type"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/land-areas/type/{type} [get]
func (h *Handler) getLandAreasByType(c *gin.Context) {
	landType := models.LandType(c.Param("type"))
	log := h.logger.WithField("method", "getLandAreasByType").WithField("type", landType)

	if !landType.IsValid() {
		log.Warn("Invalid land area type")
		c.JSON(http.StatusBadRequest, errorResponse("Invalid land area type"))
		return
	}

	areas, err := h.landService.GetByType(c.Request.Context(), landType)
	if err != nil {
		h.respondError(c, log, err, "Failed to retrieve land areas by type")
		return
	}
	c.JSON(http.StatusOK, successResponse(areas, fmt.Sprintf("Land areas of type '%s' retrieved successfully", landType)))
}

// @Summary Search land areas
// @Description Case-insensitive substring search over name, description and type
// @Tags Land Areas
// @Produce json
// @Param query path string true "Search query"
// @Success 200 {object} LandAreasResponse
// @Failure 400 {object} ErrorResponse "Search query is required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/land-areas/search/{query} [get]
func (h *Handler) searchLandAreas(c *gin.Context) {
	query := c.Param("query")
	log := h.logger.WithField("method", "searchLandAreas").WithField("query", query)

	if strings.TrimSpace(query) == "" {
		c.JSON(http.StatusBadRequest, errorResponse("Search query is required"))
		return
	}

	areas, err := h.landService.Search(c.Request.Context(), query)
	if err != nil {
		h.respondError(c, log, err, "Failed to search land areas")
		return
	}
	c.JSON(http.StatusOK, successResponse(areas, fmt.Sprintf("Search results for '%s'", query)))
}

// @Summary Add land area by location
// @Description Geocode an address and add a generated land area. Without a Google Maps API key the service runs in static mode and answers 503.
// @Tags Land Areas
// @Accept json
// @Produce json
// @Param location body AddLocationRequest true "Location to add"
// @Success 201 {object} LandAreaResponse
// @Failure 400 {object} ErrorResponse "Invalid request body, validation error or unresolved location"
// @Failure 503 {object} ErrorResponse "Static mode: Google Maps API key is not configured"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/land-areas/add-location [post]
func (h *Handler) addLocation(c *gin.Context) {
	var input AddLocationRequest
	log := h.logger.WithField("method", "addLocation")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request body"))
		return
	}

	input.Name = strings.TrimSpace(input.Name)
	input.Address = strings.TrimSpace(input.Address)
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, errorResponse(validationMessage(err)))
		return
	}

	area, err := h.landService.AddByLocation(c.Request.Context(), DTOToAddLocationInput(input))
	if err != nil {
		h.respondError(c, log, err, "Failed to add land area")
		return
	}
	c.JSON(http.StatusCreated, successResponse(area, "Land area added successfully"))
}

// @Summary Refresh generated land areas
// @Description Drop the generated areas cache and return the regenerated set. In static mode returns the sample set.
// @Tags Land Areas
// @Produce json
// @Success 200 {object} LandAreasResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/land-areas/refresh [post]
func (h *Handler) refreshLandAreas(c *gin.Context) {
	log := h.logger.WithField("method", "refreshLandAreas")
	ctx := c.Request.Context()

	if err := h.landService.Refresh(ctx); err != nil {
		h.respondError(c, log, err, "Failed to refresh land areas")
		return
	}
	areas, err := h.landService.GetAll(ctx)
	if err != nil {
		h.respondError(c, log, err, "Failed to refresh land areas")
		return
	}
	c.JSON(http.StatusOK, successResponse(areas, "Land areas refreshed successfully"))
}

// @Summary Get application health status
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	mode := "static"
	if h.landService.GeocodingEnabled() {
		mode = "geocoded"
	}
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "OK",
		Timestamp: h.now().UTC().Format(time.RFC3339Nano),
		Service:   serviceName,
		Mode:      mode,
	})
}

// respondError сопоставляет ошибку сервиса со статусом. Детали 500 пишутся только в лог.
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		log.WithError(err).Info("Land area not found")
		c.JSON(http.StatusNotFound, errorResponse("Land area not found"))
	case errors.Is(err, service.ErrLocationUnresolved):
		log.WithError(err).Warn("Location could not be resolved")
		c.JSON(http.StatusBadRequest, errorResponse("Could not resolve coordinates for the given address"))
	case errors.Is(err, service.ErrGeocodingDisabled):
		log.WithError(err).Warn("Static mode: Google Maps API key is not configured")
		c.JSON(http.StatusServiceUnavailable, errorResponse("Google Maps API key required for real coordinate generation"))
	default:
		log.WithError(err).Error("Service call failed")
		c.JSON(http.StatusInternalServerError, errorResponse(fallback))
	}
}

// validationMessage перечисляет поля, не прошедшие проверку
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request body"
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, jsonFieldNames[fe.Field()])
	}
	return "Missing or invalid fields: " + strings.Join(fields, ", ")
}

var jsonFieldNames = map[string]string{
	"Name":           "name",
	"Address":        "address",
	"Type":           "type",
	"EstimatedPrice": "estimatedPrice",
}
