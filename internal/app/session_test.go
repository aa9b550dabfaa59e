package app

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestSession_NavigateToNewContractResetsCart(t *testing.T) {
	s := NewSession("u1", "a@x.com")
	s.Navigate(ViewNewContract)
	s.ToggleService("svc_alarm", 1000)
	s.ToggleService("svc_cctv", 2500)

	s.Navigate(ViewHome)
	s.Navigate(ViewNewContract)

	if s.Cart.Total != 0 || s.Cart.Size() != 0 {
		t.Fatalf("cart not reset on re-entry: total=%d size=%d", s.Cart.Total, s.Cart.Size())
	}
	if s.View != ViewNewContract {
		t.Fatalf("view = %s, want %s", s.View, ViewNewContract)
	}
}

func TestSession_NavigateElsewhereKeepsCart(t *testing.T) {
	s := NewSession("u1", "a@x.com")
	s.Navigate(ViewNewContract)
	s.ToggleService("svc_alarm", 1000)

	s.Navigate(ViewMyContracts)

	if s.Cart.Total != 1000 {
		t.Fatalf("cart reset by unrelated navigation: total=%d", s.Cart.Total)
	}
}

func TestSession_NoticeExpires(t *testing.T) {
	s := NewSession("u1", "a@x.com")
	now := time.Date(2026, 1, 2, 15, 0, 0, 0, time.UTC)

	s.SetNotice("Contract saved", NoticeSuccess, now)

	if n := s.ActiveNotice(now.Add(time.Second)); n == nil || n.Message != "Contract saved" {
		t.Fatalf("expected active notice, got %+v", n)
	}
	if n := s.ActiveNotice(now.Add(NoticeTTL + time.Second)); n != nil {
		t.Fatalf("expected expired notice to stop rendering, got %+v", n)
	}
}

func TestValidView(t *testing.T) {
	for _, v := range []View{ViewHome, ViewNewContract, ViewMyContracts, ViewNewAddress} {
		if !ValidView(v) {
			t.Fatalf("%s should be valid", v)
		}
	}
	if ValidView("settings") {
		t.Fatalf("unknown view accepted")
	}
}

// ---------------------------------------------------------------------------
// Controller
// ---------------------------------------------------------------------------

type stubStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func newStubStore() *stubStore {
	return &stubStore{sessions: make(map[string]*Session)}
}

func (s *stubStore) Get(_ context.Context, userID string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[userID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	clone := *sess
	return &clone, nil
}

func (s *stubStore) Save(_ context.Context, sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *sess
	s.sessions[sess.UserID] = &clone
	return nil
}

func (s *stubStore) Delete(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[userID]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, userID)
	return nil
}
