package landclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/geoprice/internal/filter"
	v1 "github.com/shenikar/geoprice/internal/handler/http/v1"
	"github.com/shenikar/geoprice/internal/models"
	"github.com/shenikar/geoprice/internal/repository"
	"github.com/shenikar/geoprice/internal/service"
	"github.com/shenikar/geoprice/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newStaticServer поднимает настоящий роутер в режиме статических данных
func newStaticServer(t *testing.T) *Client {
	gin.SetMode(gin.TestMode)
	log := logger.NewDiscard()
	svc := service.NewLandService(nil, repository.NewAreaStore(), nil, log)
	srv := httptest.NewServer(v1.NewRouter(v1.NewHandler(svc, log), log))
	t.Cleanup(srv.Close)
	return New(srv.URL + "/")
}

func ids(areas []*models.LandArea) []string {
	out := make([]string, len(areas))
	for i, a := range areas {
		out[i] = a.ID
	}
	return out
}

func TestClient_Reads(t *testing.T) {
	client := newStaticServer(t)
	ctx := context.Background()

	all, err := client.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 7)

	area, err := client.GetByID(ctx, "5")
	require.NoError(t, err)
	assert.Equal(t, "SoHo Arts District", area.Name)
	assert.Len(t, area.Coordinates, 10)

	residential, err := client.GetByType(ctx, models.LandTypeResidential)
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "4", "6"}, ids(residential))

	found, err := client.Search(ctx, "soho arts")
	require.NoError(t, err)
	assert.Equal(t, []string{"5"}, ids(found))

	refreshed, err := client.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, ids(all), ids(refreshed))
}

func TestClient_SearchEscapesQuery(t *testing.T) {
	client := newStaticServer(t)
	ctx := context.Background()

	for _, query := range []string{"Market/Chelsea", "100%", "soho/arts%"} {
		found, err := client.Search(ctx, query)
		require.NoError(t, err, query)
		assert.Empty(t, found, query)
	}

	found, err := client.Filter(ctx, nil, filter.Criteria{Query: "Arts/Culture"})
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestClient_Errors(t *testing.T) {
	client := newStaticServer(t)
	ctx := context.Background()

	_, err := client.GetByID(ctx, "99")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = client.GetByType(ctx, models.LandType("mixed"))
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Invalid land area type", apiErr.Message)
	assert.NotErrorIs(t, err, ErrNotFound)

	_, err = client.AddLocation(ctx, AddLocationRequest{
		Name: "Dumbo", Address: "Dumbo, Brooklyn", Type: models.LandTypeIndustrial, EstimatedPrice: 500,
	})
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
}

func TestClient_FilterPipeline(t *testing.T) {
	client := newStaticServer(t)
	ctx := context.Background()

	superset, err := client.GetAll(ctx)
	require.NoError(t, err)

	// Без запроса фильтруется локальный набор
	cheapCommercial, err := client.Filter(ctx, superset, filter.Criteria{
		Type:     models.LandTypeCommercial,
		MaxPrice: filter.Price(800),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"5", "7"}, ids(cheapCommercial))

	// С запросом базовым набором становится результат поиска, локальный набор не нужен
	districts, err := client.Filter(ctx, nil, filter.Criteria{
		Type:  models.LandTypeResidential,
		Query: "district",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"4"}, ids(districts))

	// Серверная фильтрация дает тот же результат
	listed, err := client.List(ctx, filter.Criteria{Type: models.LandTypeResidential, Query: "district"})
	require.NoError(t, err)
	assert.Equal(t, ids(districts), ids(listed))
}

func TestClient_Health(t *testing.T) {
	client := newStaticServer(t)

	health, err := client.Health(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "OK", health.Status)
	assert.Equal(t, "GeoPrice API", health.Service)
	assert.Equal(t, "static", health.Mode)
	assert.NotEmpty(t, health.Timestamp)
}
