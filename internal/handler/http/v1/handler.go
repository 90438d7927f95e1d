package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/syket-git/Elaka/internal/config"
	"github.com/syket-git/Elaka/internal/models"
	"github.com/syket-git/Elaka/internal/service"
)

type Handler struct {
	areaService    service.AreaService
	checkinService service.CheckinService
	identity       service.IdentityProvider
	limiter        *CheckinLimiter
	logger         *logrus.Logger
	validate       *validator.Validate
	cfg            *config.Config
}

func NewHandler(
	areaService service.AreaService,
	checkinService service.CheckinService,
	identity service.IdentityProvider,
	limiter *CheckinLimiter,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		areaService:    areaService,
		checkinService: checkinService,
		identity:       identity,
		limiter:        limiter,
		logger:         logger,
		validate:       validator.New(),
		cfg:            cfg,
	}
}

// statusForKind сопоставляет категорию ошибки с HTTP-статусом
func statusForKind(kind models.ErrorKind) int {
	switch kind {
	case models.ErrKindUnauthenticated:
		return http.StatusUnauthorized
	case models.ErrKindAreaNotFound:
		return http.StatusNotFound
	case models.ErrKindLocationUnavailable:
		return http.StatusUnprocessableEntity
	case models.ErrKindInvalidCoordinate:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// abortWithKind пишет ошибку в едином формате. Внутренние ошибки наружу не уходят
func abortWithKind(c *gin.Context, err error) {
	kind := models.KindOf(err)
	c.JSON(statusForKind(kind), gin.H{"error": kind, "message": kind.Message()})
}

// @Summary Create a new area
// @Description Create a new area with a circular geofence. Requires API key.
// @Tags Areas
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param area body CreateAreaRequest true "Area creation request"
// @Success 201 {object} AreaResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /areas [post]
func (h *Handler) createArea(c *gin.Context) {
	var input CreateAreaRequest
	log := h.logger.WithField("method", "createArea")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToAreaModel(input)
	if err := h.areaService.CreateArea(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to create area in service")
		abortWithKind(c, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToAreaResponse(model))
}

// @Summary Get a list of areas
// @Description Get a paginated list of all areas. Requires API key.
// @Tags Areas
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {array} AreaResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /areas [get]
func (h *Handler) listAreas(c *gin.Context) {
	log := h.logger.WithField("method", "listAreas")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	areas, err := h.areaService.ListAreas(c.Request.Context(), page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list areas from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToAreaResponses(areas))
}

// @Summary Get area by ID
// @Description Get a single area by its ID. Requires API key.
// @Tags Areas
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Area ID"
// @Success 200 {object} AreaResponse
// @Failure 400 {object} map[string]string "Invalid area ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Area not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /areas/{id} [get]
func (h *Handler) getArea(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid area ID"})
		return
	}
	log := h.logger.WithField("method", "getArea").WithField("id", id)

	area, err := h.areaService.GetArea(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get area from service")
		abortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToAreaResponse(area))
}

// @Summary Update an existing area
// @Description Update an existing area by ID. Requires API key.
// @Tags Areas
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Area ID"
// @Param area body UpdateAreaRequest true "Area update request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid area ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Area not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /areas/{id} [put]
func (h *Handler) updateArea(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid area ID"})
		return
	}
	log := h.logger.WithField("method", "updateArea").WithField("id", id)

	var input UpdateAreaRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToAreaModel(input)
	model.ID = id

	if err := h.areaService.UpdateArea(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to update area in service")
		abortWithKind(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Deactivate an area
// @Description Deactivate an area by its ID. Check-in history is kept. Requires API key.
// @Tags Areas
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Area ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid area ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Area not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /areas/{id} [delete]
func (h *Handler) deleteArea(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid area ID"})
		return
	}
	log := h.logger.WithField("method", "deleteArea").WithField("id", id)

	if err := h.areaService.DeactivateArea(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("Failed to deactivate area in service")
		abortWithKind(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get check-in statistics
// @Description Count of distinct users who checked in during the stats window. Requires API key.
// @Tags Areas
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /areas/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	userCount, err := h.areaService.GetStats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, StatsResponse{UserCount: userCount, WindowMinutes: h.cfg.StatsTimeWindowMinutes})
}

// @Summary Find areas at a point
// @Description List active areas whose geofence contains the given coordinates
// @Tags Location
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Success 200 {array} AreaResponse
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /location/areas [get]
func (h *Handler) findAreas(c *gin.Context) {
	log := h.logger.WithField("method", "findAreas")

	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil {
		abortWithKind(c, models.ErrInvalidCoordinate)
		return
	}

	areas, err := h.areaService.FindAreasAt(c.Request.Context(), lat, lng)
	if err != nil {
		log.WithError(err).Warn("Failed to find areas by location")
		abortWithKind(c, err)
		return
	}

	c.JSON(http.StatusOK, ModelsToAreaResponses(areas))
}

// @Summary Check in to an area
// @Description Record a check-in for the logged-in user and recompute resident verification
// @Tags Verification
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param checkin body CheckinRequest true "Check-in request"
// @Success 200 {object} models.CheckinResult
// @Failure 400 {object} models.CheckinResult "Invalid coordinates or request body"
// @Failure 401 {object} map[string]string "Not logged in"
// @Failure 404 {object} models.CheckinResult "Area not found"
// @Failure 422 {object} models.CheckinResult "Location unavailable"
// @Failure 429 {object} map[string]string "Too many attempts"
// @Failure 500 {object} models.CheckinResult "Internal server error"
// @Router /verification/checkin [post]
func (h *Handler) checkin(c *gin.Context) {
	userID := c.GetString(userIDKey)
	log := h.logger.WithField("method", "checkin").WithField("user_id", userID)

	var input CheckinRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	areaID, err := uuid.Parse(input.AreaID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.FailedCheckin(uuid.Nil, models.ErrAreaNotFound))
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.checkinService.Checkin(c.Request.Context(), userID, areaID, CheckinRequestToSource(input))
	if err != nil {
		c.JSON(statusForKind(result.Error), result)
		return
	}

	c.JSON(http.StatusOK, result)
}

// @Summary Get verification status
// @Description Derived verification status of the logged-in user, for the given or the selected area
// @Tags Verification
// @Produce json
// @Security BearerAuth
// @Param area_id query string false "Area ID"
// @Success 200 {object} models.VerificationStatus
// @Failure 400 {object} map[string]string "Invalid area ID"
// @Failure 401 {object} map[string]string "Not logged in"
// @Failure 404 {object} map[string]string "Area not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /verification/status [get]
func (h *Handler) verificationStatus(c *gin.Context) {
	userID := c.GetString(userIDKey)
	log := h.logger.WithField("method", "verificationStatus").WithField("user_id", userID)

	var areaID *uuid.UUID
	if raw := c.Query("area_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid area ID"})
			return
		}
		areaID = &id
	}

	status, err := h.checkinService.Status(c.Request.Context(), userID, areaID)
	if err != nil {
		log.WithError(err).Warn("Failed to get verification status")
		abortWithKind(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

// @Summary Select verification area
// @Description Choose the area the logged-in user is verifying residence in
// @Tags Verification
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param area body SelectAreaRequest true "Area selection"
// @Success 200 {object} models.VerificationStatus
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Not logged in"
// @Failure 404 {object} map[string]string "Area not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /verification/area [put]
func (h *Handler) selectArea(c *gin.Context) {
	userID := c.GetString(userIDKey)
	log := h.logger.WithField("method", "selectArea").WithField("user_id", userID)

	var input SelectAreaRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, err := h.checkinService.SelectArea(c.Request.Context(), userID, uuid.MustParse(input.AreaID))
	if err != nil {
		log.WithError(err).Warn("Failed to select area")
		abortWithKind(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

// @Summary Get resident badge
// @Description Public "verified resident" badge of a user
// @Tags Verification
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.ResidentBadge
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/{id}/verification [get]
func (h *Handler) residentBadge(c *gin.Context) {
	userID := c.Param("id")
	log := h.logger.WithField("method", "residentBadge").WithField("user_id", userID)

	badge, err := h.checkinService.ResidentBadge(c.Request.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Failed to get resident badge")
		abortWithKind(c, err)
		return
	}

	c.JSON(http.StatusOK, badge)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
