package filter

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/shenikar/geoprice/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var superset = []*models.LandArea{
	{ID: "1", Name: "Financial District", Type: models.LandTypeCommercial, PricePerSqFt: 850},
	{ID: "2", Name: "Central Park West", Type: models.LandTypeResidential, PricePerSqFt: 1250},
	{ID: "3", Name: "Midtown", Type: models.LandTypeCommercial, PricePerSqFt: 925},
	{ID: "4", Name: "Greenwich Village", Type: models.LandTypeResidential, PricePerSqFt: 695},
}

func ids(areas []*models.LandArea) []string {
	out := make([]string, len(areas))
	for i, a := range areas {
		out[i] = a.ID
	}
	return out
}

// stubSearcher возвращает заранее заданный результат и запоминает запросы
type stubSearcher struct {
	result  []*models.LandArea
	err     error
	queries []string
}

func (s *stubSearcher) Search(_ context.Context, query string) ([]*models.LandArea, error) {
	s.queries = append(s.queries, query)
	return s.result, s.err
}

func TestApply(t *testing.T) {
	testCases := []struct {
		name     string
		criteria Criteria
		expected []string
	}{
		{name: "no filters", criteria: Criteria{}, expected: []string{"1", "2", "3", "4"}},
		{name: "type", criteria: Criteria{Type: models.LandTypeCommercial}, expected: []string{"1", "3"}},
		{name: "min inclusive", criteria: Criteria{MinPrice: Price(925)}, expected: []string{"2", "3"}},
		{name: "max inclusive", criteria: Criteria{MaxPrice: Price(850)}, expected: []string{"1", "4"}},
		{name: "range", criteria: Criteria{MinPrice: Price(850), MaxPrice: Price(925)}, expected: []string{"1", "3"}},
		{name: "type and range", criteria: Criteria{Type: models.LandTypeResidential, MinPrice: Price(700)}, expected: []string{"2"}},
		{name: "empty range", criteria: Criteria{MinPrice: Price(1000), MaxPrice: Price(900)}, expected: []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ids(Apply(superset, tc.criteria)))
		})
	}
}

func TestRun_WithoutQueryFiltersSuperset(t *testing.T) {
	searcher := &stubSearcher{}

	areas, err := Run(context.Background(), superset, searcher, Criteria{Type: models.LandTypeResidential, Query: "   "})

	require.NoError(t, err)
	assert.Equal(t, []string{"2", "4"}, ids(areas))
	assert.Empty(t, searcher.queries)
}

func TestRun_QueryReplacesBaseSet(t *testing.T) {
	// Результат поиска содержит участок, которого нет в superset
	searcher := &stubSearcher{result: []*models.LandArea{
		{ID: "9", Name: "Tribeca", Type: models.LandTypeResidential, PricePerSqFt: 1300},
		{ID: "4", Name: "Greenwich Village", Type: models.LandTypeResidential, PricePerSqFt: 695},
		{ID: "5", Name: "SoHo", Type: models.LandTypeCommercial, PricePerSqFt: 775},
	}}

	areas, err := Run(context.Background(), superset[:1], searcher, Criteria{
		Type:     models.LandTypeResidential,
		MinPrice: Price(700),
		Query:    "village",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"9"}, ids(areas))
	assert.Equal(t, []string{"village"}, searcher.queries)
}

func TestRun_SearchError(t *testing.T) {
	boom := errors.New("boom")

	_, err := Run(context.Background(), superset, &stubSearcher{err: boom}, Criteria{Query: "x"})

	assert.ErrorIs(t, err, boom)
}

func TestParseValues(t *testing.T) {
	c, err := ParseValues(url.Values{
		ParamType:     {"commercial"},
		ParamMinPrice: {"100.5"},
		ParamMaxPrice: {"900"},
		ParamQuery:    {"soho"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.LandTypeCommercial, c.Type)
	assert.Equal(t, 100.5, *c.MinPrice)
	assert.Equal(t, 900.0, *c.MaxPrice)
	assert.Equal(t, "soho", c.Query)

	c, err = ParseValues(url.Values{})
	require.NoError(t, err)
	assert.True(t, c.IsZero())

	_, err = ParseValues(url.Values{ParamType: {"mixed"}})
	assert.ErrorIs(t, err, ErrInvalidType)

	_, err = ParseValues(url.Values{ParamMaxPrice: {"cheap"}})
	assert.ErrorIs(t, err, ErrInvalidPrice)
}

func TestParseValues_NonFinitePrice(t *testing.T) {
	for _, raw := range []string{"NaN", "nan", "Inf", "+Inf", "-Inf", "infinity"} {
		_, err := ParseValues(url.Values{ParamMinPrice: {raw}})
		assert.ErrorIs(t, err, ErrInvalidPrice, raw)

		_, err = ParseValues(url.Values{ParamMaxPrice: {raw}})
		assert.ErrorIs(t, err, ErrInvalidPrice, raw)
	}
}

func TestCriteria_ValuesRoundTrip(t *testing.T) {
	in := Criteria{Type: models.LandTypeIndustrial, MinPrice: Price(10), Query: "dock"}

	out, err := ParseValues(in.Values())

	require.NoError(t, err)
	assert.Equal(t, in, out)
}
