package generator

//go:generate mockgen -destination=mocks/mock_geocoder.go -package=mocks github.com/shenikar/geoprice/internal/generator Geocoder

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/shenikar/geoprice/internal/geocoding"
	"github.com/shenikar/geoprice/internal/metrics"
	"github.com/shenikar/geoprice/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	// CatalogRadiusKm - радиус синтезированной границы для мест каталога
	CatalogRadiusKm = 0.3
	// DefaultRadiusKm - радиус синтезированной границы для произвольного адреса
	DefaultRadiusKm = 0.5

	// DefaultPause - пауза между обращениями к провайдеру при генерации каталога
	DefaultPause = 200 * time.Millisecond

	priceSpread = 100.0

	catalogAreaMin  = 30000
	catalogAreaSpan = 50000
	singleAreaMin   = 20000
	singleAreaSpan  = 100000
)

// ErrNoGeometry возвращается, когда для адреса не удалось получить границу
var ErrNoGeometry = errors.New("no geometry resolved for address")

// Geocoder - то, что генератору нужно от адаптера геокодирования
type Geocoder interface {
	ResolveDetails(ctx context.Context, address string) *geocoding.Details
	SynthesizeBoundary(ctx context.Context, address string, radiusKm float64) []models.Coordinate
}

// Generator создает участки по данным геокодера
type Generator struct {
	geocoder Geocoder
	logger   *logrus.Logger
	rnd      Random
	pause    time.Duration
	now      func() time.Time
	lastID   atomic.Int64
}

type Option func(*Generator)

// WithRandom подменяет источник случайности (цены, площади, описания)
func WithRandom(rnd Random) Option {
	return func(g *Generator) {
		g.rnd = newLockedRandom(rnd)
	}
}

// WithPause задает паузу между обращениями к провайдеру
func WithPause(pause time.Duration) Option {
	return func(g *Generator) {
		g.pause = pause
	}
}

// WithClock подменяет часы, по которым строятся идентификаторы
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

func New(geocoder Geocoder, logger *logrus.Logger, opts ...Option) *Generator {
	g := &Generator{
		geocoder: geocoder,
		logger:   logger,
		rnd:      globalRandom{},
		pause:    DefaultPause,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// GenerateCatalog обходит места по порядку. Места без геометрии пропускаются,
// идентификатор - позиция участка в результате, начиная с 1.
func (g *Generator) GenerateCatalog(ctx context.Context, places []Place) ([]*models.LandArea, error) {
	log := g.logger.WithFields(logrus.Fields{
		"service": "generator",
		"method":  "GenerateCatalog",
		"places":  len(places),
	})
	log.Info("Generating land area catalog")

	start := time.Now()
	metrics.CatalogGenerations.Inc()
	defer func() {
		metrics.CatalogGenerationDuration.Observe(time.Since(start).Seconds())
	}()

	areas := make([]*models.LandArea, 0, len(places))
	for i, place := range places {
		if i > 0 {
			if err := g.wait(ctx); err != nil {
				log.WithError(err).Warn("Catalog generation interrupted")
				return nil, fmt.Errorf("generator: catalog generation interrupted: %w", err)
			}
		}

		placeLog := log.WithField("place", place.Name)
		placeLog.Debug("Fetching coordinates")

		coordinates := g.resolveBoundary(ctx, place.SearchTerm, CatalogRadiusKm)
		if len(coordinates) == 0 {
			metrics.SkippedPlaces.Inc()
			placeLog.Warn("No geometry for place, skipping")
			continue
		}

		id := strconv.Itoa(len(areas) + 1)
		areas = append(areas, g.newArea(id, place.Name, coordinates, place.Type, place.EstimatedPrice, catalogAreaMin, catalogAreaSpan))
		placeLog.WithField("area_id", id).Debug("Generated area")
	}

	log.WithField("count", len(areas)).Info("Catalog generated")
	return areas, nil
}

// GenerateSingle создает участок для одного адреса. radiusKm <= 0 означает DefaultRadiusKm.
func (g *Generator) GenerateSingle(ctx context.Context, name, address string, landType models.LandType, basePrice, radiusKm float64) (*models.LandArea, error) {
	if radiusKm <= 0 {
		radiusKm = DefaultRadiusKm
	}
	log := g.logger.WithFields(logrus.Fields{
		"service": "generator",
		"method":  "GenerateSingle",
		"name":    name,
		"address": address,
	})

	coordinates := g.resolveBoundary(ctx, address, radiusKm)
	if len(coordinates) == 0 {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("generator: %w", err)
		}
		log.Warn("No geometry for address")
		return nil, ErrNoGeometry
	}

	area := g.newArea(g.nextID(), name, coordinates, landType, basePrice, singleAreaMin, singleAreaSpan)
	log.WithField("area_id", area.ID).Info("Generated area for location")
	return area, nil
}

// resolveBoundary предпочитает границы провайдера, иначе строит октагон вокруг центра
func (g *Generator) resolveBoundary(ctx context.Context, address string, radiusKm float64) []models.Coordinate {
	details := g.geocoder.ResolveDetails(ctx, address)
	if details == nil {
		return nil
	}
	if details.Bounds != nil {
		return geocoding.RectangleToBoundary(*details.Bounds)
	}
	return g.geocoder.SynthesizeBoundary(ctx, address, radiusKm)
}

func (g *Generator) newArea(id, name string, coordinates []models.Coordinate, landType models.LandType, basePrice float64, areaMin, areaSpan int) *models.LandArea {
	return &models.LandArea{
		ID:           id,
		Name:         name,
		Coordinates:  coordinates,
		PricePerSqFt: basePrice + g.rnd.Float64()*priceSpread - priceSpread/2,
		TotalArea:    float64(g.rnd.IntN(areaSpan) + areaMin),
		Description:  Describe(name, landType, g.rnd),
		Type:         landType,
	}
}

// nextID строит идентификатор из времени в миллисекундах. В пределах процесса значения строго растут.
func (g *Generator) nextID() string {
	for {
		last := g.lastID.Load()
		id := g.now().UnixMilli()
		if id <= last {
			id = last + 1
		}
		if g.lastID.CompareAndSwap(last, id) {
			return strconv.FormatInt(id, 10)
		}
	}
}

func (g *Generator) wait(ctx context.Context) error {
	if g.pause <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(g.pause)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
