// Package client предоставляет Go-клиент для сервиса учета тары:
// типизированные вызовы API, хранение сервисного токена и поиск
// с отложенной отправкой запросов.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"cats-service/internal/models"

	"golang.org/x/sync/errgroup"
)

// Session хранит сервисный токен между запросами
type Session interface {
	Token() string
	SetToken(token string)
	Clear()
}

// MemorySession хранит токен в памяти процесса
type MemorySession struct {
	mu    sync.RWMutex
	token string
}

func NewMemorySession() *MemorySession {
	return &MemorySession{}
}

func (s *MemorySession) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *MemorySession) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

func (s *MemorySession) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}

// APIError представляет ошибку, возвращенную сервером
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error %d", e.Status)
}

// Client выполняет запросы к сервису учета тары
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    Session
}

// NewClient создает клиент сервиса. Если session равен nil,
// используется хранение токена в памяти.
func NewClient(baseURL string, session Session) *Client {
	if session == nil {
		session = NewMemorySession()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		session:    session,
	}
}

// do выполняет запрос с токеном сессии и разбирает ответ в out.
// Ответ 401 сбрасывает сессию, чтобы вызывающий код запросил
// повторный вход.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.session.Clear()
	}

	if resp.StatusCode >= 400 {
		return parseAPIError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func parseAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	var body models.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		apiErr.Message = body.Message
	}
	return apiErr
}

// Login обменивает Google ID-токен на сервисный токен и сохраняет
// его в сессии
func (c *Client) Login(ctx context.Context, idToken string) (*models.LoginResponse, error) {
	var out models.LoginResponse
	req := models.GoogleLoginRequest{IDToken: idToken}
	if err := c.do(ctx, http.MethodPost, "/auth/google", req, &out); err != nil {
		return nil, err
	}
	c.session.SetToken(out.Token)
	return &out, nil
}

// Logout сбрасывает сессию на клиенте
func (c *Client) Logout() {
	c.session.Clear()
}

// Profile возвращает профиль текущего пользователя
func (c *Client) Profile(ctx context.Context) (*models.UserResponse, error) {
	var out models.UserResponse
	if err := c.do(ctx, http.MethodGet, "/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile изменяет профиль текущего пользователя
func (c *Client) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.UserResponse, error) {
	var out models.UserResponse
	if err := c.do(ctx, http.MethodPut, "/profile", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListContainers возвращает всю тару
func (c *Client) ListContainers(ctx context.Context) ([]models.Container, error) {
	var out []models.Container
	if err := c.do(ctx, http.MethodGet, "/containers", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchContainers возвращает тару по составному фильтру
func (c *Client) SearchContainers(ctx context.Context, params models.SearchContainersParams) ([]models.Container, error) {
	path := "/containers/search"
	if query := params.Values().Encode(); query != "" {
		path += "?" + query
	}

	var out []models.Container
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetContainer возвращает тару по ID
func (c *Client) GetContainer(ctx context.Context, id int64) (*models.Container, error) {
	var out models.Container
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/containers/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetContainerByCode возвращает тару по коду (например, со сканера)
func (c *Client) GetContainerByCode(ctx context.Context, code string) (*models.Container, error) {
	var out models.Container
	if err := c.do(ctx, http.MethodGet, "/containers/code/"+code, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateContainer создает тару
func (c *Client) CreateContainer(ctx context.Context, req models.CreateContainerRequest) (*models.Container, error) {
	var out models.Container
	if err := c.do(ctx, http.MethodPost, "/containers", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateContainer изменяет тару
func (c *Client) UpdateContainer(ctx context.Context, id int64, req models.UpdateContainerRequest) (*models.Container, error) {
	var out models.Container
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/containers/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteContainer удаляет тару
func (c *Client) DeleteContainer(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/containers/%d", id), nil, nil)
}

// FillContainer заполняет тару продуктом
func (c *Client) FillContainer(ctx context.Context, id int64, req models.FillContainerRequest) (*models.Container, error) {
	var out models.Container
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/containers/%d/fill", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateFill исправляет данные текущего заполнения
func (c *Client) UpdateFill(ctx context.Context, id int64, req models.FillContainerRequest) (*models.Container, error) {
	var out models.Container
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/containers/%d/fill", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EmptyContainer опустошает тару
func (c *Client) EmptyContainer(ctx context.Context, id int64) (*models.Container, error) {
	var out models.Container
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/containers/%d/empty", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetHistory возвращает историю заполнений тары
func (c *Client) GetHistory(ctx context.Context, id int64) ([]models.ContainerFill, error) {
	var out []models.ContainerFill
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/containers/%d/history", id), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchFills возвращает записи истории заполнений по всей таре сразу
func (c *Client) SearchFills(ctx context.Context, params models.SearchContainerFillsParams) ([]models.ContainerFill, error) {
	path := "/containers/fills/search"
	if query := params.Values().Encode(); query != "" {
		path += "?" + query
	}

	var out []models.ContainerFill
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetEvents возвращает ленту событий тары по коду
func (c *Client) GetEvents(ctx context.Context, code string) ([]models.ContainerEvent, error) {
	var out []models.ContainerEvent
	if err := c.do(ctx, http.MethodGet, "/containers/code/"+code+"/events", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListProducts возвращает все продукты
func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListProductTypes возвращает все типы продуктов
func (c *Client) ListProductTypes(ctx context.Context) ([]models.ProductType, error) {
	var out []models.ProductType
	if err := c.do(ctx, http.MethodGet, "/product-types", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListContainerTypes возвращает все типы тары
func (c *Client) ListContainerTypes(ctx context.Context) ([]models.ContainerType, error) {
	var out []models.ContainerType
	if err := c.do(ctx, http.MethodGet, "/container-types", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Overview содержит данные для стартового экрана
type Overview struct {
	Containers     []models.Container
	ContainerTypes []models.ContainerType
	Products       []models.Product
	ProductTypes   []models.ProductType
}

// LoadOverview загружает тару и справочники параллельно
func (c *Client) LoadOverview(ctx context.Context) (*Overview, error) {
	var overview Overview

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		containers, err := c.ListContainers(ctx)
		overview.Containers = containers
		return err
	})
	g.Go(func() error {
		containerTypes, err := c.ListContainerTypes(ctx)
		overview.ContainerTypes = containerTypes
		return err
	})
	g.Go(func() error {
		products, err := c.ListProducts(ctx)
		overview.Products = products
		return err
	})
	g.Go(func() error {
		productTypes, err := c.ListProductTypes(ctx)
		overview.ProductTypes = productTypes
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &overview, nil
}
