// Package filter реализует конвейер фильтрации участков: тип, минимальная цена,
// максимальная цена. Непустой запрос меняет базовый набор на результат поиска.
package filter

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/shenikar/geoprice/internal/models"
)

const (
	ParamType     = "type"
	ParamMinPrice = "minPrice"
	ParamMaxPrice = "maxPrice"
	ParamQuery    = "q"
)

var (
	ErrInvalidType  = errors.New("invalid land area type")
	ErrInvalidPrice = errors.New("invalid price filter")
)

// Criteria - условия фильтрации. Нулевое значение не отбрасывает ничего.
type Criteria struct {
	Type     models.LandType
	MinPrice *float64
	MaxPrice *float64
	Query    string
}

// HasQuery - есть ли непустой текстовый запрос
func (c Criteria) HasQuery() bool {
	return strings.TrimSpace(c.Query) != ""
}

// IsZero - условия ничего не отбрасывают и не меняют базовый набор
func (c Criteria) IsZero() bool {
	return c.Type == "" && c.MinPrice == nil && c.MaxPrice == nil && !c.HasQuery()
}

// Values кодирует условия в параметры запроса
func (c Criteria) Values() url.Values {
	v := url.Values{}
	if c.Type != "" {
		v.Set(ParamType, string(c.Type))
	}
	if c.MinPrice != nil {
		v.Set(ParamMinPrice, strconv.FormatFloat(*c.MinPrice, 'f', -1, 64))
	}
	if c.MaxPrice != nil {
		v.Set(ParamMaxPrice, strconv.FormatFloat(*c.MaxPrice, 'f', -1, 64))
	}
	if c.HasQuery() {
		v.Set(ParamQuery, c.Query)
	}
	return v
}

// ParseValues разбирает параметры запроса. Пустые параметры игнорируются.
func ParseValues(v url.Values) (Criteria, error) {
	var c Criteria

	if raw := v.Get(ParamType); raw != "" {
		t := models.LandType(raw)
		if !t.IsValid() {
			return Criteria{}, fmt.Errorf("%w: %q", ErrInvalidType, raw)
		}
		c.Type = t
	}

	var err error
	if c.MinPrice, err = parsePrice(v.Get(ParamMinPrice)); err != nil {
		return Criteria{}, fmt.Errorf("%s: %w", ParamMinPrice, err)
	}
	if c.MaxPrice, err = parsePrice(v.Get(ParamMaxPrice)); err != nil {
		return Criteria{}, fmt.Errorf("%s: %w", ParamMaxPrice, err)
	}

	c.Query = v.Get(ParamQuery)
	return c, nil
}

func parsePrice(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPrice, raw)
	}
	return &f, nil
}

// Apply применяет по порядку фильтр по типу, затем по минимальной и
// максимальной цене. Границы включительные. Порядок участков сохраняется.
func Apply(areas []*models.LandArea, c Criteria) []*models.LandArea {
	out := make([]*models.LandArea, 0, len(areas))
	for _, area := range areas {
		if c.Type != "" && area.Type != c.Type {
			continue
		}
		if c.MinPrice != nil && area.PricePerSqFt < *c.MinPrice {
			continue
		}
		if c.MaxPrice != nil && area.PricePerSqFt > *c.MaxPrice {
			continue
		}
		out = append(out, area)
	}
	return out
}

// Searcher - серверный поиск участков
type Searcher interface {
	Search(ctx context.Context, query string) ([]*models.LandArea, error)
}

// Run выполняет конвейер. Без запроса фильтруется superset, с запросом
// базовым набором становится результат searcher, и к нему применяются те же фильтры.
func Run(ctx context.Context, superset []*models.LandArea, searcher Searcher, c Criteria) ([]*models.LandArea, error) {
	base := superset
	if c.HasQuery() {
		found, err := searcher.Search(ctx, c.Query)
		if err != nil {
			return nil, fmt.Errorf("filter: search %q: %w", c.Query, err)
		}
		base = found
	}
	return Apply(base, c), nil
}

// Price - вспомогательная функция для задания границ цены
func Price(v float64) *float64 {
	return &v
}
