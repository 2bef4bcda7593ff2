package service

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks github.com/shenikar/geoprice/internal/service LandService,AreaGenerator

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shenikar/geoprice/internal/events"
	"github.com/shenikar/geoprice/internal/generator"
	"github.com/shenikar/geoprice/internal/metrics"
	"github.com/shenikar/geoprice/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

var (
	// ErrNotFound - участок с таким идентификатором отсутствует
	ErrNotFound = errors.New("land area not found")
	// ErrGeocodingDisabled - ключ провайдера геокодирования не задан
	ErrGeocodingDisabled = errors.New("geocoding is not configured")
	// ErrLocationUnresolved - для адреса не удалось получить геометрию
	ErrLocationUnresolved = errors.New("could not resolve geometry for location")
)

// AreaGenerator определяет контракт генератора участков
type AreaGenerator interface {
	GenerateCatalog(ctx context.Context, places []generator.Place) ([]*models.LandArea, error)
	GenerateSingle(ctx context.Context, name, address string, landType models.LandType, basePrice, radiusKm float64) (*models.LandArea, error)
}

// AreaStore определяет контракт кэша сгенерированных участков
type AreaStore interface {
	Load() ([]*models.LandArea, bool)
	Epoch() uint64
	StoreAt(epoch uint64, areas []*models.LandArea) bool
	Append(area *models.LandArea) bool
	Invalidate()
	Len() int
}

// AddLocationInput - данные для создания участка по адресу
type AddLocationInput struct {
	Name           string
	Address        string
	Type           models.LandType
	EstimatedPrice float64
}

// LandService определяет контракт для бизнес-логики работы с участками
type LandService interface {
	GetAll(ctx context.Context) ([]*models.LandArea, error)
	GetByID(ctx context.Context, id string) (*models.LandArea, error)
	GetByType(ctx context.Context, landType models.LandType) ([]*models.LandArea, error)
	Search(ctx context.Context, query string) ([]*models.LandArea, error)
	AddByLocation(ctx context.Context, input AddLocationInput) (*models.LandArea, error)
	Refresh(ctx context.Context) error
	GeocodingEnabled() bool
}

type landService struct {
	generator AreaGenerator
	store     AreaStore
	publisher events.Publisher
	logger    *logrus.Logger
	catalog   []generator.Place
	flight    singleflight.Group
}

type Option func(*landService)

// WithCatalog задает список мест для генерации каталога
func WithCatalog(places []generator.Place) Option {
	return func(s *landService) {
		s.catalog = places
	}
}

// NewLandService создает сервис. gen == nil означает режим статических данных.
func NewLandService(gen AreaGenerator, store AreaStore, publisher events.Publisher, logger *logrus.Logger, opts ...Option) LandService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	s := &landService{
		generator: gen,
		store:     store,
		publisher: publisher,
		logger:    logger,
		catalog:   generator.ManhattanNeighborhoods(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *landService) GeocodingEnabled() bool {
	return s.generator != nil
}

// GetAll возвращает все участки. В режиме геокодирования каталог генерируется
// один раз, параллельные первые запросы ждут одну и ту же генерацию.
func (s *landService) GetAll(ctx context.Context) ([]*models.LandArea, error) {
	if !s.GeocodingEnabled() {
		return SampleLandAreas(), nil
	}

	if areas, ok := s.store.Load(); ok {
		return areas, nil
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "land",
		"method":  "GetAll",
	})

	epoch := s.store.Epoch()
	key := "catalog:" + strconv.FormatUint(epoch, 10)
	// Генерация не привязана к отмене запроса, который ее запустил
	ch := s.flight.DoChan(key, func() (any, error) {
		return s.generateCatalog(context.WithoutCancel(ctx), epoch)
	})

	select {
	case <-ctx.Done():
		log.WithError(ctx.Err()).Warn("Request cancelled while waiting for catalog")
		return nil, fmt.Errorf("service: waiting for catalog: %w", ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			log.WithError(res.Err).Error("Failed to generate catalog")
			return nil, fmt.Errorf("service: could not generate catalog: %w", res.Err)
		}
		return cloneAreas(res.Val.([]*models.LandArea)), nil
	}
}

func (s *landService) generateCatalog(ctx context.Context, epoch uint64) ([]*models.LandArea, error) {
	if areas, ok := s.store.Load(); ok {
		return areas, nil
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "land",
		"method":  "generateCatalog",
		"epoch":   epoch,
	})
	log.Info("Generating real coordinates for land areas")

	areas, err := s.generator.GenerateCatalog(ctx, s.catalog)
	if err != nil {
		return nil, err
	}

	if s.store.StoreAt(epoch, areas) {
		metrics.CachedAreas.Set(float64(len(areas)))
	} else {
		log.Warn("Cache invalidated during generation, result not cached")
	}

	s.publish(ctx, events.NewAreaEvent(events.KindCatalogGenerated, areas...))
	log.WithField("count", len(areas)).Info("Catalog ready")
	return areas, nil
}

// GetByID ищет участок по точному совпадению идентификатора
func (s *landService) GetByID(ctx context.Context, id string) (*models.LandArea, error) {
	areas, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, area := range areas {
		if area.ID == id {
			return area, nil
		}
	}
	return nil, fmt.Errorf("service: land area %q: %w", id, ErrNotFound)
}

func (s *landService) GetByType(ctx context.Context, landType models.LandType) ([]*models.LandArea, error) {
	areas, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*models.LandArea, 0, len(areas))
	for _, area := range areas {
		if area.Type == landType {
			out = append(out, area)
		}
	}
	return out, nil
}

// Search - поиск подстроки без учета регистра по имени, описанию и типу
func (s *landService) Search(ctx context.Context, query string) ([]*models.LandArea, error) {
	areas, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	out := make([]*models.LandArea, 0, len(areas))
	for _, area := range areas {
		if strings.Contains(strings.ToLower(area.Name), q) ||
			strings.Contains(strings.ToLower(area.Description), q) ||
			strings.Contains(strings.ToLower(string(area.Type)), q) {
			out = append(out, area)
		}
	}
	return out, nil
}

// AddByLocation создает участок по адресу и дописывает его в кэш, если кэш есть
func (s *landService) AddByLocation(ctx context.Context, input AddLocationInput) (*models.LandArea, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "land",
		"method":  "AddByLocation",
		"name":    input.Name,
		"address": input.Address,
	})

	if !s.GeocodingEnabled() {
		log.Warn("Attempted to add location without geocoding configured")
		return nil, ErrGeocodingDisabled
	}

	log.Info("Adding land area by location")
	area, err := s.generator.GenerateSingle(ctx, input.Name, input.Address, input.Type, input.EstimatedPrice, generator.DefaultRadiusKm)
	if err != nil {
		if errors.Is(err, generator.ErrNoGeometry) {
			return nil, fmt.Errorf("service: %q: %w", input.Address, ErrLocationUnresolved)
		}
		log.WithError(err).Error("Failed to generate land area")
		return nil, fmt.Errorf("service: could not generate land area: %w", err)
	}

	if s.store.Append(area) {
		metrics.CachedAreas.Set(float64(s.store.Len()))
	}
	s.publish(ctx, events.NewAreaEvent(events.KindAreaAdded, area))

	log.WithField("area_id", area.ID).Info("Land area added")
	return area, nil
}

// Refresh сбрасывает кэш, следующий GetAll сгенерирует каталог заново
func (s *landService) Refresh(ctx context.Context) error {
	if !s.GeocodingEnabled() {
		return nil
	}
	s.store.Invalidate()
	metrics.CachedAreas.Set(0)
	s.logger.WithFields(logrus.Fields{
		"service": "land",
		"method":  "Refresh",
	}).Info("Generated areas cache invalidated")
	return nil
}

// publish не возвращает ошибку: доставка событий не должна ломать запрос
func (s *landService) publish(ctx context.Context, event events.AreaEvent) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WithError(err).WithField("event_kind", event.Kind).Warn("Failed to publish area event")
	}
}

func cloneAreas(areas []*models.LandArea) []*models.LandArea {
	out := make([]*models.LandArea, len(areas))
	for i, a := range areas {
		c := *a
		c.Coordinates = append([]models.Coordinate(nil), a.Coordinates...)
		out[i] = &c
	}
	return out
}
