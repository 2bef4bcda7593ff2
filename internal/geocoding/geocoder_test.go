package geocoding

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shenikar/geoprice/internal/models"
	"github.com/shenikar/geoprice/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/umahmood/haversine"
	"googlemaps.github.io/maps"
)

// fakeGeocodeAPI отвечает в формате Google Geocoding API. Ответы задаются по адресу.
type fakeGeocodeAPI struct {
	responses map[string]string
	calls     atomic.Int32
}

func (f *fakeGeocodeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.calls.Add(1)
	w.Header().Set("Content-Type", "application/json")
	body, ok := f.responses[r.URL.Query().Get("address")]
	if !ok {
		body = `{"results": [], "status": "ZERO_RESULTS"}`
	}
	_, _ = fmt.Fprint(w, body)
}

// newTestClient поднимает фейковый API и возвращает настоящий maps-клиент, направленный на него
func newTestClient(t *testing.T, responses map[string]string) (*Client, *fakeGeocodeAPI) {
	api := &fakeGeocodeAPI{responses: responses}
	server := httptest.NewServer(api)
	t.Cleanup(server.Close)

	provider, err := NewGoogleProvider("AIzaNotReallyAnAPIKey", 5*time.Second, maps.WithBaseURL(server.URL))
	require.NoError(t, err)

	return NewClient(provider, logger.NewDiscard()), api
}

const sohoWithBounds = `{
	"status": "OK",
	"results": [{
		"formatted_address": "SoHo, New York, NY, USA",
		"geometry": {
			"location": {"lat": 40.7233, "lng": -74.0030},
			"bounds": {
				"northeast": {"lat": 40.7285, "lng": -73.9990},
				"southwest": {"lat": 40.7196, "lng": -74.0066}
			}
		}
	}]
}`

const chelseaCenterOnly = `{
	"status": "OK",
	"results": [{
		"formatted_address": "Chelsea, New York, NY, USA",
		"geometry": {"location": {"lat": 40.7465, "lng": -74.0014}}
	}]
}`

func TestResolveDetails_WithBounds(t *testing.T) {
	client, api := newTestClient(t, map[string]string{"SoHo": sohoWithBounds})

	details := client.ResolveDetails(context.Background(), "SoHo")

	require.NotNil(t, details)
	assert.Equal(t, models.LatLng{Lat: 40.7233, Lng: -74.0030}, details.Center)
	assert.Equal(t, "SoHo, New York, NY, USA", details.FormattedAddress)
	require.NotNil(t, details.Bounds)
	assert.Equal(t, models.LatLng{Lat: 40.7285, Lng: -73.9990}, details.Bounds.NorthEast)
	assert.Equal(t, models.LatLng{Lat: 40.7196, Lng: -74.0066}, details.Bounds.SouthWest)
	assert.Equal(t, int32(1), api.calls.Load())
}

func TestResolveDetails_WithoutBounds(t *testing.T) {
	client, _ := newTestClient(t, map[string]string{"Chelsea": chelseaCenterOnly})

	details := client.ResolveDetails(context.Background(), "Chelsea")

	require.NotNil(t, details)
	assert.Nil(t, details.Bounds)
	assert.Equal(t, 40.7465, details.Center.Lat)
}

func TestResolveCenter_NoResults(t *testing.T) {
	client, _ := newTestClient(t, nil)

	assert.Nil(t, client.ResolveCenter(context.Background(), "Atlantis"))
}

func TestResolveCenter_ProviderErrorIsSwallowed(t *testing.T) {
	client, _ := newTestClient(t, map[string]string{
		"Denied": `{"results": [], "status": "REQUEST_DENIED", "error_message": "bad key"}`,
	})

	assert.Nil(t, client.ResolveCenter(context.Background(), "Denied"))
	assert.Nil(t, client.ResolveDetails(context.Background(), "Denied"))
}

func TestResolveCenter_TransportErrorIsSwallowed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer server.Close()

	provider, err := NewGoogleProvider("AIzaNotReallyAnAPIKey", time.Second, maps.WithBaseURL(server.URL))
	require.NoError(t, err)
	client := NewClient(provider, logger.NewDiscard())

	assert.Nil(t, client.ResolveCenter(context.Background(), "Anywhere"))
}

func TestSynthesizeBoundary(t *testing.T) {
	client, api := newTestClient(t, map[string]string{"Chelsea": chelseaCenterOnly})

	boundary := client.SynthesizeBoundary(context.Background(), "Chelsea", 0.5)

	require.Len(t, boundary, 9)
	assert.Equal(t, boundary[0], boundary[len(boundary)-1])
	assert.Equal(t, int32(1), api.calls.Load())
}

func TestSynthesizeBoundary_Unresolved(t *testing.T) {
	client, _ := newTestClient(t, nil)

	assert.Nil(t, client.SynthesizeBoundary(context.Background(), "Nowhere", 0.5))
}

func TestOctagon_Shape(t *testing.T) {
	center := models.LatLng{Lat: 40.7465, Lng: -74.0014}
	radiusKm := 0.3

	points := Octagon(center, radiusKm)

	require.Len(t, points, 9)
	assert.Equal(t, points[0], points[8])

	// N, E, S, W лежат на расстоянии радиуса от центра
	c := haversine.Coord{Lat: center.Lat, Lon: center.Lng}
	for _, idx := range []int{0, 2, 4, 6} {
		_, km := haversine.Distance(c, haversine.Coord{Lat: points[idx].Lat(), Lon: points[idx].Lng()})
		assert.InDelta(t, radiusKm, km, 0.005, "vertex %d", idx)
	}

	// Обход по часовой стрелке, начиная с севера
	assert.Greater(t, points[0].Lat(), center.Lat)
	assert.Equal(t, center.Lng, points[0].Lng())
	assert.Greater(t, points[1].Lng(), center.Lng)
	assert.Equal(t, center.Lat, points[2].Lat())
	assert.Greater(t, points[2].Lng(), center.Lng)
	assert.Less(t, points[4].Lat(), center.Lat)
	assert.Less(t, points[6].Lng(), center.Lng)
	assert.Less(t, points[7].Lng(), center.Lng)
	assert.Greater(t, points[7].Lat(), center.Lat)
}

func TestRectangleToBoundary_Order(t *testing.T) {
	bounds := models.Bounds{
		NorthEast: models.LatLng{Lat: 40, Lng: -74},
		SouthWest: models.LatLng{Lat: 39, Lng: -75},
	}

	boundary := RectangleToBoundary(bounds)

	assert.Equal(t, []models.Coordinate{
		{40, -75},
		{40, -74},
		{39, -74},
		{39, -75},
		{40, -75},
	}, boundary)
}
