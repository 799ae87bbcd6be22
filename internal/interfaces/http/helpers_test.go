package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/bapesu/bapesu-api/internal/application/usecase"
	"github.com/bapesu/bapesu-api/internal/domain/entity"
	"github.com/bapesu/bapesu-api/internal/domain/repository"
	apphttp "github.com/bapesu/bapesu-api/internal/interfaces/http"
	"github.com/bapesu/bapesu-api/pkg/logger"
	pkgjwt "github.com/bapesu/bapesu-api/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testAdminID   = "00000000-0000-0000-0000-000000000001"
	testUserID    = "00000000-0000-0000-0000-000000000002"
	testIssuer    = "bapesu-test"
)

// userLookupStub usuarios en memoria para RequireAdmin.
type userLookupStub struct {
	users map[string]*entity.User
	err   error
}

func (s *userLookupStub) GetByID(_ context.Context, id string) (*entity.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.users[id], nil
}

func newUserLookup() *userLookupStub {
	return &userLookupStub{users: map[string]*entity.User{
		testAdminID: {ID: testAdminID, Email: "admin@bapesu.co", FirstName: "Ada", Role: entity.RoleAdmin, IsActive: true},
		testUserID:  {ID: testUserID, Email: "cliente@bapesu.co", Role: entity.RoleCustomer, IsActive: true},
	}}
}

// productRepoStub implementación en memoria de repository.ProductRepository.
type productRepoStub struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]*entity.Product
}

var _ repository.ProductRepository = (*productRepoStub)(nil)

func newProductRepo() *productRepoStub {
	return &productRepoStub{items: map[int64]*entity.Product{}}
}

func (r *productRepoStub) Create(_ context.Context, p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	p.ID = r.nextID
	p.IsActive = p.Status != entity.ProductInactive
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *productRepoStub) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *productRepoStub) Update(_ context.Context, p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.IsActive = p.Status != entity.ProductInactive
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *productRepoStub) active() []*entity.Product {
	var out []*entity.Product
	for _, p := range r.items {
		if p.IsActive {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *productRepoStub) List(_ context.Context, f repository.ProductFilter, page repository.Page) ([]*entity.Product, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*entity.Product
	for _, p := range r.active() {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Search)) {
			continue
		}
		matched = append(matched, p)
	}
	start := page.Offset()
	if start > len(matched) {
		start = len(matched)
	}
	end := start + page.Size
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], len(matched), nil
}

func (r *productRepoStub) Search(_ context.Context, term string, limit int) ([]*entity.Product, error) {
	list, _, err := r.List(context.Background(), repository.ProductFilter{Search: term}, repository.Page{Number: 1, Size: limit})
	return list, err
}

func (r *productRepoStub) SetStatus(_ context.Context, id int64, status entity.ProductStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[id]
	if !ok {
		return false, nil
	}
	p.Status = status
	p.IsActive = status != entity.ProductInactive
	return true, nil
}

func (r *productRepoStub) UpdateStock(_ context.Context, id int64, stock int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[id]
	if !ok {
		return false, nil
	}
	p.Stock = stock
	return true, nil
}

func (r *productRepoStub) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.items[id]
	delete(r.items, id)
	return ok, nil
}

func (r *productRepoStub) Stats(context.Context) (*entity.ProductStats, error) {
	return nil, errors.New("no implementado")
}

func (r *productRepoStub) DistinctCategories(context.Context) ([]string, error) {
	return nil, nil
}

// buildApp construye la app completa con el router real y stubs en memoria.
func buildApp(t *testing.T, users apphttp.UserLookup, products repository.ProductRepository) *fiber.App {
	t.Helper()
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.NewErrorHandler(logger.Nop(), false)})
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC: usecase.NewProductUseCase(products, nil),
		ToolsUC:   usecase.NewToolsUseCase(nil, nil, nil, nil, nil),
		Users:     users,
		JWTSecret: testJWTSecret,
	})
	return app
}

func bearer(t *testing.T, subject string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, subject, "x@bapesu.co", "authenticated", testIssuer, time.Hour)
	require.NoError(t, err)
	return "Bearer " + tok
}

func do(t *testing.T, app *fiber.App, method, path, auth, body string) (*http.Response, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	if len(raw) > 0 && strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp, out
}
