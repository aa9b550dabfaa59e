package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/vigilia/contracts-api/internal/app"
	"github.com/vigilia/contracts-api/internal/core/domain"
	"github.com/vigilia/contracts-api/internal/core/ports"
)

// memStore is an in-memory app.Store for handler tests.
type memStore struct {
	sessions map[string]*app.Session
}

func newMemStore() *memStore {
	return &memStore{sessions: make(map[string]*app.Session)}
}

func (m *memStore) Get(ctx context.Context, userID string) (*app.Session, error) {
	s, ok := m.sessions[userID]
	if !ok {
		return nil, app.ErrSessionNotFound
	}
	return s, nil
}

func (m *memStore) Save(ctx context.Context, s *app.Session) error {
	m.sessions[s.UserID] = s
	return nil
}

func (m *memStore) Delete(ctx context.Context, userID string) error {
	if _, ok := m.sessions[userID]; !ok {
		return app.ErrSessionNotFound
	}
	delete(m.sessions, userID)
	return nil
}

type stubCatalogRepo struct {
	services []domain.Service
	err      error
}

func (s *stubCatalogRepo) ListServices(ctx context.Context) ([]domain.Service, error) {
	return s.services, s.err
}

type stubAccountService struct {
	snapshot *ports.AccountSnapshot
	err      error
}

func (s *stubAccountService) Snapshot(ctx context.Context, userID string) (*ports.AccountSnapshot, error) {
	return s.snapshot, s.err
}

func authedContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder) echo.Context {
	c := e.NewContext(req, rec)
	c.Set("user_id", "u1")
	c.Set("email", "alice@example.com")
	return c
}

func testServices() []domain.Service {
	return []domain.Service{
		{ID: "svc-1", Name: "Alarma", Price: 1000},
		{ID: "svc-2", Name: "Camaras", Price: 2500},
	}
}

func TestSessionHandler_Navigate(t *testing.T) {
	e := newTestEcho()
	store := newMemStore()
	handler := NewSessionHandler(store, &stubAccountService{}, &stubCatalogRepo{})

	req := jsonRequest(http.MethodPost, "/v1/session/navigate", `{"view":"new-contract"}`)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec)

	if err := handler.Navigate(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	sess, err := store.Get(context.Background(), "u1")
	if err != nil {
		t.Fatalf("session not saved: %v", err)
	}
	if sess.View != app.ViewNewContract {
		t.Fatalf("expected new-contract view, got %q", sess.View)
	}
}

func TestSessionHandler_Navigate_UnknownView(t *testing.T) {
	e := newTestEcho()
	handler := NewSessionHandler(newMemStore(), &stubAccountService{}, &stubCatalogRepo{})

	req := jsonRequest(http.MethodPost, "/v1/session/navigate", `{"view":"settings"}`)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec)

	err := handler.Navigate(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTP error, got %v", err)
	}
}

func TestSessionHandler_Navigate_EnteringNewContractResetsCart(t *testing.T) {
	e := newTestEcho()
	store := newMemStore()
	sess := app.NewSession("u1", "alice@example.com")
	sess.View = app.ViewNewContract
	sess.ToggleService("svc-1", 1000)
	sess.View = app.ViewHome
	store.sessions["u1"] = sess

	handler := NewSessionHandler(store, &stubAccountService{}, &stubCatalogRepo{})

	req := jsonRequest(http.MethodPost, "/v1/session/navigate", `{"view":"new-contract"}`)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec)

	if err := handler.Navigate(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	saved := store.sessions["u1"]
	if saved.Cart.Size() != 0 || saved.Cart.Total != 0 {
		t.Fatalf("expected empty cart, got %+v", saved.Cart)
	}
}

func TestSessionHandler_ToggleCart(t *testing.T) {
	e := newTestEcho()
	store := newMemStore()
	sess := app.NewSession("u1", "alice@example.com")
	sess.Navigate(app.ViewNewContract)
	store.sessions["u1"] = sess

	handler := NewSessionHandler(store, &stubAccountService{}, &stubCatalogRepo{services: testServices()})

	req := jsonRequest(http.MethodPost, "/v1/session/cart/toggle", `{"service_id":"svc-2"}`)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec)

	if err := handler.ToggleCart(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp toggleCartResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.Selected || resp.Total != 2500 {
		t.Fatalf("unexpected response: %+v", resp)
	}

	// A second toggle deselects and the total drops back to zero.
	req = jsonRequest(http.MethodPost, "/v1/session/cart/toggle", `{"service_id":"svc-2"}`)
	rec = httptest.NewRecorder()
	c = authedContext(e, req, rec)

	if err := handler.ToggleCart(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Selected || resp.Total != 0 || len(resp.Services) != 0 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestSessionHandler_ToggleCart_OutsideNewContract(t *testing.T) {
	e := newTestEcho()
	store := newMemStore()
	store.sessions["u1"] = app.NewSession("u1", "alice@example.com") // lands on home

	handler := NewSessionHandler(store, &stubAccountService{}, &stubCatalogRepo{services: testServices()})

	req := jsonRequest(http.MethodPost, "/v1/session/cart/toggle", `{"service_id":"svc-1"}`)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec)

	err := handler.ToggleCart(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusConflict {
		t.Fatalf("expected 409 HTTP error, got %v", err)
	}
}

func TestSessionHandler_ToggleCart_UnknownService(t *testing.T) {
	e := newTestEcho()
	store := newMemStore()
	sess := app.NewSession("u1", "alice@example.com")
	sess.Navigate(app.ViewNewContract)
	store.sessions["u1"] = sess

	handler := NewSessionHandler(store, &stubAccountService{}, &stubCatalogRepo{services: testServices()})

	req := jsonRequest(http.MethodPost, "/v1/session/cart/toggle", `{"service_id":"svc-99"}`)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec)

	err := handler.ToggleCart(c)
	if !errors.Is(err, domain.ErrUnknownService) {
		t.Fatalf("expected ErrUnknownService, got %v", err)
	}
}

func TestSessionHandler_Screen(t *testing.T) {
	e := newTestEcho()
	store := newMemStore()
	accounts := &stubAccountService{snapshot: &ports.AccountSnapshot{
		Services:  testServices(),
		Addresses: []domain.Address{},
		Contracts: []domain.Contract{},
	}}
	handler := NewSessionHandler(store, accounts, &stubCatalogRepo{})

	req := httptest.NewRequest(http.MethodGet, "/v1/session/screen", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec)

	if err := handler.Screen(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	// No stored session: the screen falls back to a fresh one at home.
	if !strings.Contains(rec.Body.String(), "PANEL DE CONTROL") {
		t.Fatalf("expected home screen, got:\n%s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Sin direcciones.") {
		t.Fatalf("expected empty address list, got:\n%s", rec.Body.String())
	}
}
