package repository

import (
	"sync"

	"github.com/shenikar/geoprice/internal/models"
)

// AreaStore хранит сгенерированный каталог участков в памяти процесса.
// Каждая инвалидация увеличивает эпоху, и запись с устаревшей эпохой отклоняется.
type AreaStore struct {
	mu     sync.RWMutex
	areas  []*models.LandArea
	cached bool
	epoch  uint64
}

func NewAreaStore() *AreaStore {
	return &AreaStore{}
}

// Load возвращает копию каталога и признак наличия кэша
func (s *AreaStore) Load() ([]*models.LandArea, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.cached {
		return nil, false
	}
	return cloneAreas(s.areas), true
}

// Epoch возвращает текущую эпоху кэша
func (s *AreaStore) Epoch() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.epoch
}

// StoreAt сохраняет каталог, если с момента чтения эпохи не было инвалидации
func (s *AreaStore) StoreAt(epoch uint64, areas []*models.LandArea) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if epoch != s.epoch {
		return false
	}
	s.areas = cloneAreas(areas)
	s.cached = true
	return true
}

// Append дописывает участок в кэш. Без кэша участок не сохраняется.
func (s *AreaStore) Append(area *models.LandArea) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cached {
		return false
	}
	s.areas = append(s.areas, cloneArea(area))
	return true
}

// Invalidate сбрасывает кэш
func (s *AreaStore) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.areas = nil
	s.cached = false
	s.epoch++
}

// Len - количество участков в кэше
func (s *AreaStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.areas)
}

func cloneAreas(areas []*models.LandArea) []*models.LandArea {
	out := make([]*models.LandArea, len(areas))
	for i, a := range areas {
		out[i] = cloneArea(a)
	}
	return out
}

func cloneArea(a *models.LandArea) *models.LandArea {
	if a == nil {
		return nil
	}
	c := *a
	c.Coordinates = append([]models.Coordinate(nil), a.Coordinates...)
	return &c
}
