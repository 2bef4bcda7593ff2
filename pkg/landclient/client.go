// Package landclient - клиент GeoPrice API. Разбирает конверт ответа и
// реализует клиентский конвейер фильтрации поверх серверного поиска.
package landclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shenikar/geoprice/internal/filter"
	"github.com/shenikar/geoprice/internal/models"
)

const defaultTimeout = 10 * time.Second

// ErrNotFound - сервер ответил 404
var ErrNotFound = errors.New("land area not found")

// APIError - ответ сервера с success=false
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("geoprice api: status %d: %s", e.StatusCode, e.Message)
}

// Is позволяет проверять 404 через errors.Is(err, ErrNotFound)
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// AddLocationRequest - тело запроса на добавление участка по адресу
type AddLocationRequest struct {
	Name           string          `json:"name"`
	Address        string          `json:"address"`
	Type           models.LandType `json:"type"`
	EstimatedPrice float64         `json:"estimatedPrice"`
}

// Health - ответ /health
type Health struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
	Mode      string `json:"mode"`
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New создает клиент. baseURL - адрес сервера без /api, например http://localhost:3001
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) GetAll(ctx context.Context) ([]*models.LandArea, error) {
	var areas []*models.LandArea
	err := c.do(ctx, http.MethodGet, "/api/land-areas", nil, &areas)
	return areas, err
}

// List запрашивает участки с фильтрацией на стороне сервера
func (c *Client) List(ctx context.Context, criteria filter.Criteria) ([]*models.LandArea, error) {
	path := "/api/land-areas"
	if q := criteria.Values().Encode(); q != "" {
		path += "?" + q
	}
	var areas []*models.LandArea
	err := c.do(ctx, http.MethodGet, path, nil, &areas)
	return areas, err
}

func (c *Client) GetByID(ctx context.Context, id string) (*models.LandArea, error) {
	var area models.LandArea
	if err := c.do(ctx, http.MethodGet, "/api/land-areas/"+url.PathEscape(id), nil, &area); err != nil {
		return nil, err
	}
	return &area, nil
}

func (c *Client) GetByType(ctx context.Context, landType models.LandType) ([]*models.LandArea, error) {
	var areas []*models.LandArea
	err := c.do(ctx, http.MethodGet, "/api/land-areas/type/"+url.PathEscape(string(landType)), nil, &areas)
	return areas, err
}

func (c *Client) Search(ctx context.Context, query string) ([]*models.LandArea, error) {
	var areas []*models.LandArea
	err := c.do(ctx, http.MethodGet, "/api/land-areas/search/"+url.PathEscape(query), nil, &areas)
	return areas, err
}

func (c *Client) AddLocation(ctx context.Context, req AddLocationRequest) (*models.LandArea, error) {
	var area models.LandArea
	if err := c.do(ctx, http.MethodPost, "/api/land-areas/add-location", req, &area); err != nil {
		return nil, err
	}
	return &area, nil
}

// Refresh сбрасывает кэш сервера и возвращает заново сгенерированный набор
func (c *Client) Refresh(ctx context.Context) ([]*models.LandArea, error) {
	var areas []*models.LandArea
	err := c.do(ctx, http.MethodPost, "/api/land-areas/refresh", nil, &areas)
	return areas, err
}

// Filter применяет фильтры к локально хранимому набору. Непустой запрос
// заменяет базовый набор результатом серверного поиска.
func (c *Client) Filter(ctx context.Context, superset []*models.LandArea, criteria filter.Criteria) ([]*models.LandArea, error) {
	return filter.Run(ctx, superset, c, criteria)
}

func (c *Client) Health(ctx context.Context) (*Health, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return nil, fmt.Errorf("landclient: build request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("landclient: health: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}
	var health Health
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return nil, fmt.Errorf("landclient: decode health: %w", err)
	}
	return &health, nil
}

// do выполняет запрос и раскладывает data из конверта в out
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("landclient: marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("landclient: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("landclient: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return &APIError{StatusCode: resp.StatusCode, Message: "malformed response: " + err.Error()}
	}
	if !env.Success || resp.StatusCode >= http.StatusBadRequest {
		message := env.Error
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("landclient: decode data: %w", err)
	}
	return nil
}
