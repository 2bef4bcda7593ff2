package geocoding

import (
	"context"
	"math"
	"net/http"
	"time"

	"github.com/shenikar/geoprice/internal/metrics"
	"github.com/shenikar/geoprice/internal/models"
	"github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"
)

// kmPerDegree - приближенная длина градуса широты
const kmPerDegree = 111.0

// diagonalScale - множитель смещения для диагональных вершин октагона
const diagonalScale = 0.7

// Provider определяет контракт внешнего геокодера. *maps.Client ему удовлетворяет.
type Provider interface {
	Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

// NewGoogleProvider создает клиент Google Geocoding API
func NewGoogleProvider(apiKey string, timeout time.Duration, opts ...maps.ClientOption) (*maps.Client, error) {
	options := []maps.ClientOption{
		maps.WithAPIKey(apiKey),
		maps.WithHTTPClient(&http.Client{Timeout: timeout}),
	}
	return maps.NewClient(append(options, opts...)...)
}

// Details - результат геокодирования с границами, если провайдер их вернул
type Details struct {
	Center           models.LatLng
	Bounds           *models.Bounds
	FormattedAddress string
}

// Client переводит адрес в координаты. Ошибки провайдера не возвращаются наверх:
// они логируются и превращаются в отсутствие результата.
type Client struct {
	provider Provider
	logger   *logrus.Logger
}

func NewClient(provider Provider, logger *logrus.Logger) *Client {
	return &Client{
		provider: provider,
		logger:   logger,
	}
}

// ResolveCenter возвращает центр адреса или nil
func (c *Client) ResolveCenter(ctx context.Context, address string) *models.LatLng {
	result := c.lookup(ctx, "ResolveCenter", address)
	if result == nil {
		return nil
	}
	return &models.LatLng{
		Lat: result.Geometry.Location.Lat,
		Lng: result.Geometry.Location.Lng,
	}
}

// ResolveDetails возвращает центр, границы (если есть) и отформатированный адрес или nil
func (c *Client) ResolveDetails(ctx context.Context, address string) *Details {
	result := c.lookup(ctx, "ResolveDetails", address)
	if result == nil {
		return nil
	}

	details := &Details{
		Center: models.LatLng{
			Lat: result.Geometry.Location.Lat,
			Lng: result.Geometry.Location.Lng,
		},
		FormattedAddress: result.FormattedAddress,
	}

	bounds := result.Geometry.Bounds
	if bounds.NorthEast != (maps.LatLng{}) || bounds.SouthWest != (maps.LatLng{}) {
		details.Bounds = &models.Bounds{
			NorthEast: models.LatLng{Lat: bounds.NorthEast.Lat, Lng: bounds.NorthEast.Lng},
			SouthWest: models.LatLng{Lat: bounds.SouthWest.Lat, Lng: bounds.SouthWest.Lng},
		}
	}
	return details
}

// SynthesizeBoundary строит октагон вокруг центра адреса. Центр запрашивается у провайдера заново.
func (c *Client) SynthesizeBoundary(ctx context.Context, address string, radiusKm float64) []models.Coordinate {
	center := c.ResolveCenter(ctx, address)
	if center == nil {
		return nil
	}
	return Octagon(*center, radiusKm)
}

func (c *Client) lookup(ctx context.Context, method, address string) *maps.GeocodingResult {
	log := c.logger.WithFields(logrus.Fields{
		"service": "geocoding",
		"method":  method,
		"address": address,
	})

	results, err := c.provider.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		metrics.GeocodeRequests.WithLabelValues(metrics.OutcomeError).Inc()
		log.WithError(err).Warn("Geocoding request failed")
		return nil
	}
	if len(results) == 0 {
		metrics.GeocodeRequests.WithLabelValues(metrics.OutcomeNoResults).Inc()
		log.Info("Geocoding returned no results")
		return nil
	}

	metrics.GeocodeRequests.WithLabelValues(metrics.OutcomeOK).Inc()
	log.Debug("Geocoding succeeded")
	return &results[0]
}

// Octagon строит замкнутый октагон: N, NE, E, SE, S, SW, W, NW и снова N.
// Смещение по долготе поправлено на широту.
func Octagon(center models.LatLng, radiusKm float64) []models.Coordinate {
	latOffset := radiusKm / kmPerDegree
	lngOffset := radiusKm / (kmPerDegree * math.Cos(center.Lat*math.Pi/180))

	lat, lng := center.Lat, center.Lng
	return []models.Coordinate{
		{lat + latOffset, lng},
		{lat + latOffset*diagonalScale, lng + lngOffset*diagonalScale},
		{lat, lng + lngOffset},
		{lat - latOffset*diagonalScale, lng + lngOffset*diagonalScale},
		{lat - latOffset, lng},
		{lat - latOffset*diagonalScale, lng - lngOffset*diagonalScale},
		{lat, lng - lngOffset},
		{lat + latOffset*diagonalScale, lng - lngOffset*diagonalScale},
		{lat + latOffset, lng},
	}
}

// RectangleToBoundary превращает пару углов в замкнутый прямоугольник NW, NE, SE, SW, NW.
// Порядок обхода фиксирован.
func RectangleToBoundary(b models.Bounds) []models.Coordinate {
	ne, sw := b.NorthEast, b.SouthWest
	return []models.Coordinate{
		{ne.Lat, sw.Lng},
		{ne.Lat, ne.Lng},
		{sw.Lat, ne.Lng},
		{sw.Lat, sw.Lng},
		{ne.Lat, sw.Lng},
	}
}
