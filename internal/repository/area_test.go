package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/syket-git/Elaka/internal/models"
)

// fakeCache - Redis в памяти для GET/SET/DEL
type fakeCache struct {
	redis.Cmdable
	data map[string]string
	ttl  time.Duration
	err  error
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string]string)}
}

func (c *fakeCache) Get(_ context.Context, key string) *redis.StringCmd {
	if c.err != nil {
		return redis.NewStringResult("", c.err)
	}
	val, ok := c.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(val, nil)
}

func (c *fakeCache) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	switch v := value.(type) {
	case []byte:
		c.data[key] = string(v)
	case string:
		c.data[key] = v
	}
	c.ttl = expiration
	return redis.NewStatusResult("OK", c.err)
}

func (c *fakeCache) Del(_ context.Context, keys ...string) *redis.IntCmd {
	for _, key := range keys {
		delete(c.data, key)
	}
	return redis.NewIntResult(int64(len(keys)), c.err)
}

var areaRowColumns = []string{
	"id", "name", "name_bn", "slug", "city", "latitude", "longitude",
	"radius_meters", "status", "created_at", "updated_at",
}

func newAreaMock(t *testing.T) (*AreaRepository, pgxmock.PgxPoolIface, *fakeCache) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	cache := newFakeCache()
	repo := NewAreaRepository(mock, cache, 5*time.Minute).(*AreaRepository)
	return repo, mock, cache
}

func TestAreaRepository_Create(t *testing.T) {
	repo, mock, _ := newAreaMock(t)
	id := uuid.New()
	now := time.Now()

	area := &models.Area{
		Name:         "Khulshi",
		Slug:         "khulshi",
		City:         "Chittagong",
		Latitude:     22.35,
		Longitude:    91.8,
		RadiusMeters: 1500,
		Status:       models.AreaStatusActive,
	}

	mock.ExpectQuery("INSERT INTO areas").
		WithArgs(area.Name, area.NameBn, area.Slug, area.City, area.Longitude, area.Latitude, area.RadiusMeters, area.Status).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(id.String(), now, now))

	err := repo.Create(context.Background(), area)

	require.NoError(t, err)
	assert.Equal(t, id, area.ID)
	assert.Equal(t, now, area.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAreaRepository_GetByID(t *testing.T) {
	repo, mock, _ := newAreaMock(t)
	id := uuid.New()
	now := time.Now()

	mock.ExpectQuery("FROM areas").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(areaRowColumns).
			AddRow(id.String(), "Khulshi", "খুলশী", "khulshi", "Chittagong", 22.35, 91.8, 1500, "active", now, now))

	area, err := repo.GetByID(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, id, area.ID)
	assert.Equal(t, "খুলশী", area.NameBn)
	assert.Equal(t, 1500, area.RadiusMeters)
	assert.True(t, area.IsActive())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAreaRepository_GetByID_NotFound(t *testing.T) {
	repo, mock, _ := newAreaMock(t)
	id := uuid.New()

	mock.ExpectQuery("FROM areas").WithArgs(id).WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), id)

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrAreaNotFound)
}

func TestAreaRepository_Update_NotFound(t *testing.T) {
	repo, mock, _ := newAreaMock(t)
	area := &models.Area{ID: uuid.New(), Name: "Gone", RadiusMeters: 100}

	mock.ExpectExec("UPDATE areas SET").
		WithArgs(area.Name, area.NameBn, area.Slug, area.City, area.Longitude, area.Latitude, area.RadiusMeters, area.Status, area.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Update(context.Background(), area)

	assert.ErrorIs(t, err, models.ErrAreaNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAreaRepository_Delete(t *testing.T) {
	repo, mock, _ := newAreaMock(t)
	id := uuid.New()

	mock.ExpectExec("UPDATE areas SET").WithArgs(id).WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.Delete(context.Background(), id)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAreaRepository_FindActiveByLocation(t *testing.T) {
	repo, mock, _ := newAreaMock(t)
	id := uuid.New()
	now := time.Now()

	// В запросе долгота идёт первой
	mock.ExpectQuery("ST_DWithin").
		WithArgs(91.81, 22.36).
		WillReturnRows(pgxmock.NewRows(areaRowColumns).
			AddRow(id.String(), "Khulshi", "", "khulshi", "Chittagong", 22.35, 91.8, 1500, "active", now, now))

	areas, err := repo.FindActiveByLocation(context.Background(), 22.36, 91.81)

	require.NoError(t, err)
	require.Len(t, areas, 1)
	assert.Equal(t, id, areas[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAreaRepository_ListAreas_QueryError(t *testing.T) {
	repo, mock, _ := newAreaMock(t)

	mock.ExpectQuery("FROM areas").WithArgs(20, 20).WillReturnError(errors.New("connection reset"))

	_, err := repo.ListAreas(context.Background(), 2, 20)

	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to list areas")
}

func TestAreaRepository_GetCheckinStats(t *testing.T) {
	repo, mock, _ := newAreaMock(t)

	mock.ExpectQuery("COUNT").WithArgs(60).WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.GetCheckinStats(context.Background(), 60)

	require.NoError(t, err)
	assert.Equal(t, 7, count)
}

func TestAreaRepository_Cache(t *testing.T) {
	repo, _, cache := newAreaMock(t)
	area := &models.Area{ID: uuid.New(), Name: "Khulshi", RadiusMeters: 1500, Status: models.AreaStatusActive}
	ctx := context.Background()

	missed, err := repo.GetAreaFromCache(ctx, area.ID)
	require.NoError(t, err)
	assert.Nil(t, missed)

	require.NoError(t, repo.SetAreaCache(ctx, area))
	assert.Equal(t, 5*time.Minute, cache.ttl)

	cached, err := repo.GetAreaFromCache(ctx, area.ID)
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, area.Name, cached.Name)

	require.NoError(t, repo.InvalidateAreaCache(ctx, area.ID))
	missed, err = repo.GetAreaFromCache(ctx, area.ID)
	require.NoError(t, err)
	assert.Nil(t, missed)
}

func TestAreaRepository_Cache_CorruptedEntry(t *testing.T) {
	repo, _, cache := newAreaMock(t)
	id := uuid.New()
	cache.data[areaCacheKey(id)] = "{not json"

	_, err := repo.GetAreaFromCache(context.Background(), id)

	var syntaxErr *json.SyntaxError
	assert.ErrorAs(t, err, &syntaxErr)
}
