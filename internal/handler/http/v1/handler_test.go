package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/syket-git/Elaka/internal/config"
	"github.com/syket-git/Elaka/internal/models"
	"github.com/syket-git/Elaka/internal/positioning"
	"github.com/syket-git/Elaka/internal/service/mocks"
	"go.uber.org/mock/gomock"
)

const testToken = "session-token"

type handlerMocks struct {
	areas    *mocks.MockAreaService
	checkins *mocks.MockCheckinService
	identity *mocks.MockIdentityProvider
}

// newTestHandler создает Handler с мокированными сервисами и без ограничения частоты чек-инов
func newTestHandler(t *testing.T) (*Handler, *handlerMocks, *gin.Engine) {
	return newTestHandlerWithLimiter(t, NewCheckinLimiter(0, 1))
}

func newTestHandlerWithLimiter(t *testing.T, limiter *CheckinLimiter) (*Handler, *handlerMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := &handlerMocks{
		areas:    mocks.NewMockAreaService(ctrl),
		checkins: mocks.NewMockCheckinService(ctrl),
		identity: mocks.NewMockIdentityProvider(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys:                []string{"test-api-key"},
		StatsTimeWindowMinutes: 60,
	}

	handler := NewHandler(m.areas, m.checkins, m.identity, limiter, logger, cfg)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, m, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func apiKey() map[string]string {
	return map[string]string{"X-API-Key": "test-api-key"}
}

func bearer() map[string]string {
	return map[string]string{"Authorization": "Bearer " + testToken}
}

func jsonBody(t *testing.T, v any) io.Reader {
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func ptr(f float64) *float64 { return &f }

func TestCreateArea_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	areaID := uuid.New()
	reqBody := CreateAreaRequest{
		Name:         "Khulshi",
		NameBn:       "খুলশী",
		Slug:         "khulshi",
		City:         "Chattogram",
		Latitude:     22.3569,
		Longitude:    91.8089,
		RadiusMeters: 1500,
	}

	m.areas.EXPECT().
		CreateArea(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, area *models.Area) error {
			area.ID = areaID
			area.Status = models.AreaStatusActive
			area.CreatedAt = time.Now()
			area.UpdatedAt = area.CreatedAt
			return nil
		}).Times(1)

	w := makeRequest(router, "POST", "/api/v1/areas", jsonBody(t, reqBody), apiKey())

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp AreaResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, areaID, resp.ID)
	assert.Equal(t, reqBody.Slug, resp.Slug)
	assert.Equal(t, models.AreaStatusActive, resp.Status)
}

func TestCreateArea_InvalidJSON(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.areas.EXPECT().CreateArea(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/areas", bytes.NewBufferString(`{"name": "test"`), apiKey())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateArea_ValidationError(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := CreateAreaRequest{ // Отсутствует Name
		Slug:         "khulshi",
		City:         "Chattogram",
		Latitude:     22.3569,
		Longitude:    91.8089,
		RadiusMeters: 1500,
	}

	m.areas.EXPECT().CreateArea(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/areas", jsonBody(t, reqBody), apiKey())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Name' failed on the 'required' tag")
}

func TestCreateArea_Unauthorized(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.areas.EXPECT().CreateArea(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/areas", bytes.NewBufferString(`{}`))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateArea_ServiceError(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := CreateAreaRequest{
		Name:         "Khulshi",
		Slug:         "khulshi",
		City:         "Chattogram",
		Latitude:     22.3569,
		Longitude:    91.8089,
		RadiusMeters: 1500,
	}

	m.areas.EXPECT().
		CreateArea(gomock.Any(), gomock.Any()).
		Return(errors.New("service: could not create area: connection refused")).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/areas", jsonBody(t, reqBody), apiKey())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestGetArea_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	areaID := uuid.New()
	expected := &models.Area{
		ID:           areaID,
		Name:         "Khulshi",
		Slug:         "khulshi",
		Latitude:     22.3569,
		Longitude:    91.8089,
		RadiusMeters: 1500,
		Status:       models.AreaStatusActive,
	}

	m.areas.EXPECT().GetArea(gomock.Any(), areaID).Return(expected, nil).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/areas/%s", areaID), nil, apiKey())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp AreaResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, areaID, resp.ID)
	assert.Equal(t, expected.Name, resp.Name)
}

func TestGetArea_InvalidID(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.areas.EXPECT().GetArea(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/areas/invalid-uuid", nil, apiKey())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid area ID")
}

func TestGetArea_NotFound(t *testing.T) {
	_, m, router := newTestHandler(t)
	areaID := uuid.New()

	m.areas.EXPECT().
		GetArea(gomock.Any(), areaID).
		Return(nil, fmt.Errorf("service: could not get area: %w", models.ErrAreaNotFound)).
		Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/areas/%s", areaID), nil, apiKey())

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), string(models.ErrKindAreaNotFound))
}

func TestGetArea_ServiceError(t *testing.T) {
	_, m, router := newTestHandler(t)
	areaID := uuid.New()

	m.areas.EXPECT().GetArea(gomock.Any(), areaID).Return(nil, errors.New("database error")).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/areas/%s", areaID), nil, apiKey())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestListAreas_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	expected := []*models.Area{
		{ID: uuid.New(), Name: "Khulshi", Status: models.AreaStatusActive},
		{ID: uuid.New(), Name: "Nasirabad", Status: models.AreaStatusInactive},
	}

	m.areas.EXPECT().ListAreas(gomock.Any(), 1, 10).Return(expected, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/areas?page=1&pageSize=10", nil, apiKey())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []AreaResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, expected[0].Name, resp[0].Name)
}

func TestListAreas_ServiceError(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.areas.EXPECT().ListAreas(gomock.Any(), 1, 10).Return(nil, errors.New("failed to list areas")).Times(1)

	w := makeRequest(router, "GET", "/api/v1/areas?page=1&pageSize=10", nil, apiKey())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestUpdateArea_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	areaID := uuid.New()
	reqBody := UpdateAreaRequest{
		Name:         "Khulshi Hill",
		Slug:         "khulshi",
		City:         "Chattogram",
		Latitude:     22.3569,
		Longitude:    91.8089,
		RadiusMeters: 1200,
		Status:       models.AreaStatusActive,
	}

	m.areas.EXPECT().
		UpdateArea(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, area *models.Area) error {
			assert.Equal(t, areaID, area.ID)
			assert.Equal(t, reqBody.Name, area.Name)
			assert.Equal(t, reqBody.RadiusMeters, area.RadiusMeters)
			return nil
		}).Times(1)

	w := makeRequest(router, "PUT", fmt.Sprintf("/api/v1/areas/%s", areaID), jsonBody(t, reqBody), apiKey())

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateArea_InvalidStatus(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := UpdateAreaRequest{
		Name:         "Khulshi",
		Slug:         "khulshi",
		City:         "Chattogram",
		Latitude:     22.3569,
		Longitude:    91.8089,
		RadiusMeters: 1500,
		Status:       "archived",
	}

	m.areas.EXPECT().UpdateArea(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "PUT", fmt.Sprintf("/api/v1/areas/%s", uuid.New()), jsonBody(t, reqBody), apiKey())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "'oneof' tag")
}

func TestUpdateArea_NotFound(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := UpdateAreaRequest{
		Name:         "Khulshi",
		Slug:         "khulshi",
		City:         "Chattogram",
		Latitude:     22.3569,
		Longitude:    91.8089,
		RadiusMeters: 1500,
		Status:       models.AreaStatusActive,
	}

	m.areas.EXPECT().
		UpdateArea(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("service: area not found for update: %w", models.ErrAreaNotFound)).
		Times(1)

	w := makeRequest(router, "PUT", fmt.Sprintf("/api/v1/areas/%s", uuid.New()), jsonBody(t, reqBody), apiKey())

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteArea_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	areaID := uuid.New()

	m.areas.EXPECT().DeactivateArea(gomock.Any(), areaID).Return(nil).Times(1)

	w := makeRequest(router, "DELETE", fmt.Sprintf("/api/v1/areas/%s", areaID), nil, apiKey())

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDeleteArea_InvalidID(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.areas.EXPECT().DeactivateArea(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "DELETE", "/api/v1/areas/invalid-uuid", nil, apiKey())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid area ID")
}

func TestDeleteArea_NotFound(t *testing.T) {
	_, m, router := newTestHandler(t)
	areaID := uuid.New()

	m.areas.EXPECT().
		DeactivateArea(gomock.Any(), areaID).
		Return(fmt.Errorf("service: area not found for deactivate: %w", models.ErrAreaNotFound)).
		Times(1)

	w := makeRequest(router, "DELETE", fmt.Sprintf("/api/v1/areas/%s", areaID), nil, apiKey())

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetStats_Success(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.areas.EXPECT().GetStats(gomock.Any()).Return(123, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/areas/stats", nil, apiKey())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp StatsResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 123, resp.UserCount)
	assert.Equal(t, 60, resp.WindowMinutes)
}

func TestGetStats_ServiceError(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.areas.EXPECT().GetStats(gomock.Any()).Return(0, errors.New("failed to get stats")).Times(1)

	w := makeRequest(router, "GET", "/api/v1/areas/stats", nil, apiKey())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestFindAreas_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	found := []*models.Area{{ID: uuid.New(), Name: "Khulshi"}}

	m.areas.EXPECT().FindAreasAt(gomock.Any(), 22.3569, 91.8089).Return(found, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/location/areas?lat=22.3569&lng=91.8089", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []AreaResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, found[0].Name, resp[0].Name)
}

func TestFindAreas_BadQuery(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.areas.EXPECT().FindAreasAt(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/location/areas?lat=north&lng=91.8", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), string(models.ErrKindInvalidCoordinate))
}

func TestFindAreas_OutOfRange(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.areas.EXPECT().
		FindAreasAt(gomock.Any(), 95.0, 91.8).
		Return(nil, fmt.Errorf("latitude 95: %w", models.ErrInvalidCoordinate)).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/location/areas?lat=95&lng=91.8", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckin_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	areaID := uuid.New()
	result := &models.CheckinResult{
		Success:           true,
		AreaID:            areaID,
		DistanceMeters:    120,
		IsValid:           true,
		CheckinCount:      1,
		RemainingCheckins: 2,
		RemainingDays:     7,
	}

	m.identity.EXPECT().ResolveUser(gomock.Any(), testToken).Return("user-1", nil).Times(1)
	m.checkins.EXPECT().
		Checkin(gomock.Any(), "user-1", areaID, gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ uuid.UUID, src positioning.Source) (*models.CheckinResult, error) {
			pos, err := src.CurrentPosition(ctx)
			require.NoError(t, err)
			assert.Equal(t, 22.3569, pos.Latitude)
			assert.Equal(t, 91.8089, pos.Longitude)
			require.NotNil(t, pos.AccuracyMeters)
			assert.Equal(t, 15.0, *pos.AccuracyMeters)
			return result, nil
		}).Times(1)

	reqBody := CheckinRequest{
		AreaID:         areaID.String(),
		Latitude:       ptr(22.3569),
		Longitude:      ptr(91.8089),
		AccuracyMeters: ptr(15),
	}
	w := makeRequest(router, "POST", "/api/v1/verification/checkin", jsonBody(t, reqBody), bearer())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.CheckinResult
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.True(t, resp.IsValid)
	assert.Equal(t, 2, resp.RemainingCheckins)
}

func TestCheckin_ReportedLocationFailure(t *testing.T) {
	_, m, router := newTestHandler(t)
	areaID := uuid.New()

	m.identity.EXPECT().ResolveUser(gomock.Any(), testToken).Return("user-1", nil).Times(1)
	m.checkins.EXPECT().
		Checkin(gomock.Any(), "user-1", areaID, gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ uuid.UUID, src positioning.Source) (*models.CheckinResult, error) {
			_, err := src.CurrentPosition(ctx)
			require.ErrorIs(t, err, models.ErrLocationUnavailable)
			return models.FailedCheckin(areaID, err), err
		}).Times(1)

	reqBody := CheckinRequest{AreaID: areaID.String(), LocationError: positioning.FailurePermissionDenied}
	w := makeRequest(router, "POST", "/api/v1/verification/checkin", jsonBody(t, reqBody), bearer())

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var resp models.CheckinResult
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, models.ErrKindLocationUnavailable, resp.Error)
	assert.NotEmpty(t, resp.Message)
}

func TestCheckin_InvalidCoordinate(t *testing.T) {
	_, m, router := newTestHandler(t)

	areaID := uuid.New()

	// Диапазон координат проверяет сервис, хэндлер только отображает категорию в код
	m.identity.EXPECT().ResolveUser(gomock.Any(), testToken).Return("user-1", nil).Times(1)
	m.checkins.EXPECT().
		Checkin(gomock.Any(), "user-1", areaID, gomock.Any()).
		Return(models.FailedCheckin(areaID, models.ErrInvalidCoordinate), models.ErrInvalidCoordinate).
		Times(1)

	reqBody := CheckinRequest{AreaID: areaID.String(), Latitude: ptr(120), Longitude: ptr(91.8)}
	w := makeRequest(router, "POST", "/api/v1/verification/checkin", jsonBody(t, reqBody), bearer())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), string(models.ErrKindInvalidCoordinate))
}

func TestCheckin_UnknownLocationError(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.identity.EXPECT().ResolveUser(gomock.Any(), testToken).Return("user-1", nil).Times(1)
	m.checkins.EXPECT().Checkin(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	reqBody := CheckinRequest{AreaID: uuid.NewString(), LocationError: "gps_on_fire"}
	w := makeRequest(router, "POST", "/api/v1/verification/checkin", jsonBody(t, reqBody), bearer())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCheckin_UnknownAreaID(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.identity.EXPECT().ResolveUser(gomock.Any(), testToken).Return("user-1", nil).Times(1)
	m.checkins.EXPECT().Checkin(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	reqBody := CheckinRequest{AreaID: "khulshi", Latitude: ptr(22.3), Longitude: ptr(91.8)}
	w := makeRequest(router, "POST", "/api/v1/verification/checkin", jsonBody(t, reqBody), bearer())

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), string(models.ErrKindAreaNotFound))
}

func TestCheckin_NotLoggedIn(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.identity.EXPECT().ResolveUser(gomock.Any(), "").Return("", models.ErrUnauthenticated).Times(1)
	m.checkins.EXPECT().Checkin(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	reqBody := CheckinRequest{AreaID: uuid.NewString(), Latitude: ptr(22.3), Longitude: ptr(91.8)}
	w := makeRequest(router, "POST", "/api/v1/verification/checkin", jsonBody(t, reqBody))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), string(models.ErrKindUnauthenticated))
}

func TestCheckin_SessionStoreError(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.identity.EXPECT().ResolveUser(gomock.Any(), testToken).Return("", errors.New("redis: connection refused")).Times(1)

	reqBody := CheckinRequest{AreaID: uuid.NewString(), Latitude: ptr(22.3), Longitude: ptr(91.8)}
	w := makeRequest(router, "POST", "/api/v1/verification/checkin", jsonBody(t, reqBody), bearer())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "redis")
}

func TestCheckin_RateLimited(t *testing.T) {
	_, m, router := newTestHandlerWithLimiter(t, NewCheckinLimiter(1, 1))
	areaID := uuid.New()

	m.identity.EXPECT().ResolveUser(gomock.Any(), testToken).Return("user-1", nil).Times(2)
	m.checkins.EXPECT().
		Checkin(gomock.Any(), "user-1", areaID, gomock.Any()).
		Return(&models.CheckinResult{Success: true, AreaID: areaID}, nil).
		Times(1)

	reqBody := CheckinRequest{AreaID: areaID.String(), Latitude: ptr(22.3), Longitude: ptr(91.8)}

	first := makeRequest(router, "POST", "/api/v1/verification/checkin", jsonBody(t, reqBody), bearer())
	assert.Equal(t, http.StatusOK, first.Code)

	second := makeRequest(router, "POST", "/api/v1/verification/checkin", jsonBody(t, reqBody), bearer())
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "60", second.Header().Get("Retry-After"))
}

func TestVerificationStatus_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	areaID := uuid.New()
	status := &models.VerificationStatus{
		State:              models.StateInProgress,
		VerificationAreaID: &areaID,
		ValidCheckins:      2,
		RemainingCheckins:  1,
		RemainingDays:      3,
	}

	m.identity.EXPECT().ResolveUser(gomock.Any(), testToken).Return("user-1", nil).Times(1)
	m.checkins.EXPECT().
		Status(gomock.Any(), "user-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, id *uuid.UUID) (*models.VerificationStatus, error) {
			require.NotNil(t, id)
			assert.Equal(t, areaID, *id)
			return status, nil
		}).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/verification/status?area_id=%s", areaID), nil, bearer())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.VerificationStatus
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, models.StateInProgress, resp.State)
	assert.Equal(t, 2, resp.ValidCheckins)
}

func TestVerificationStatus_SelectedArea(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.identity.EXPECT().ResolveUser(gomock.Any(), testToken).Return("user-1", nil).Times(1)
	m.checkins.EXPECT().
		Status(gomock.Any(), "user-1", (*uuid.UUID)(nil)).
		Return(&models.VerificationStatus{State: models.StateUnverified, RemainingCheckins: 3, RemainingDays: 7}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/verification/status", nil, bearer())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"state":"unverified"`)
}

func TestVerificationStatus_InvalidAreaID(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.identity.EXPECT().ResolveUser(gomock.Any(), testToken).Return("user-1", nil).Times(1)
	m.checkins.EXPECT().Status(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/verification/status?area_id=nope", nil, bearer())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSelectArea_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	areaID := uuid.New()

	m.identity.EXPECT().ResolveUser(gomock.Any(), testToken).Return("user-1", nil).Times(1)
	m.checkins.EXPECT().
		SelectArea(gomock.Any(), "user-1", areaID).
		Return(&models.VerificationStatus{State: models.StateUnverified, VerificationAreaID: &areaID}, nil).
		Times(1)

	w := makeRequest(router, "PUT", "/api/v1/verification/area", jsonBody(t, SelectAreaRequest{AreaID: areaID.String()}), bearer())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.VerificationStatus
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.NotNil(t, resp.VerificationAreaID)
	assert.Equal(t, areaID, *resp.VerificationAreaID)
}

func TestSelectArea_ValidationError(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.identity.EXPECT().ResolveUser(gomock.Any(), testToken).Return("user-1", nil).Times(1)
	m.checkins.EXPECT().SelectArea(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "PUT", "/api/v1/verification/area", jsonBody(t, SelectAreaRequest{AreaID: "khulshi"}), bearer())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "'uuid' tag")
}

func TestSelectArea_AreaNotFound(t *testing.T) {
	_, m, router := newTestHandler(t)
	areaID := uuid.New()

	m.identity.EXPECT().ResolveUser(gomock.Any(), testToken).Return("user-1", nil).Times(1)
	m.checkins.EXPECT().
		SelectArea(gomock.Any(), "user-1", areaID).
		Return(nil, models.ErrAreaNotFound).
		Times(1)

	w := makeRequest(router, "PUT", "/api/v1/verification/area", jsonBody(t, SelectAreaRequest{AreaID: areaID.String()}), bearer())

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestResidentBadge_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	area := &models.Area{ID: uuid.New(), Name: "Khulshi", NameBn: "খুলশী"}

	m.checkins.EXPECT().
		ResidentBadge(gomock.Any(), "user-1").
		Return(&models.ResidentBadge{UserID: "user-1", IsVerified: true, VerifiedArea: area}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/users/user-1/verification", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.ResidentBadge
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.True(t, resp.IsVerified)
	require.NotNil(t, resp.VerifiedArea)
	assert.Equal(t, "Khulshi", resp.VerifiedArea.Name)
}

func TestResidentBadge_ServiceError(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.checkins.EXPECT().ResidentBadge(gomock.Any(), "user-1").Return(nil, errors.New("db down")).Times(1)

	w := makeRequest(router, "GET", "/api/v1/users/user-1/verification", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestHealthCheck_Success(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestStatusForKind(t *testing.T) {
	tests := []struct {
		kind models.ErrorKind
		want int
	}{
		{models.ErrKindUnauthenticated, http.StatusUnauthorized},
		{models.ErrKindAreaNotFound, http.StatusNotFound},
		{models.ErrKindLocationUnavailable, http.StatusUnprocessableEntity},
		{models.ErrKindInvalidCoordinate, http.StatusBadRequest},
		{models.ErrKindInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.want, statusForKind(tt.kind))
		})
	}
}

func TestAPIKeyAuthMiddleware_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"Authorization": "Bearer valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuthMiddleware_MissingKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestAPIKeyAuthMiddleware_InvalidKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "invalid-key"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}

func TestCheckinLimiter_Cleanup(t *testing.T) {
	limiter := NewCheckinLimiter(1, 1)

	assert.True(t, limiter.Allow("user-1"))
	assert.False(t, limiter.Allow("user-1"))

	time.Sleep(time.Millisecond)
	limiter.Cleanup(time.Nanosecond)

	// После очистки пользователь получает новый bucket
	assert.True(t, limiter.Allow("user-1"))
}
