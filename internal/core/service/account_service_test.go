package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/vigilia/contracts-api/internal/core/domain"
)

func TestAccountService_Snapshot_EmptyAccount(t *testing.T) {
	svc := NewAccountService(testCatalog(), newStubAddressRepo(), newStubContractRepo(), zerolog.Nop())

	snap, err := svc.Snapshot(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Snapshot returned error: %v", err)
	}
	if snap.Services == nil || snap.Addresses == nil || snap.Contracts == nil {
		t.Fatalf("expected non-nil collections, got %+v", snap)
	}
	if len(snap.Addresses) != 0 || len(snap.Contracts) != 0 {
		t.Fatalf("expected empty owned collections, got %d addresses, %d contracts", len(snap.Addresses), len(snap.Contracts))
	}
	if len(snap.Services) == 0 {
		t.Fatalf("expected catalog services")
	}
}

func TestAccountService_Snapshot_ScopedToOwner(t *testing.T) {
	addresses := newStubAddressRepo()
	addresses.byID["a1"] = &domain.Address{ID: "a1", Alias: "Home", UserID: "u1"}
	addresses.byID["a2"] = &domain.Address{ID: "a2", Alias: "Office", UserID: "u2"}

	contracts := newStubContractRepo()
	contracts.byID["c1"] = &domain.Contract{ID: "c1", UserID: "u2"}

	svc := NewAccountService(testCatalog(), addresses, contracts, zerolog.Nop())

	snap, err := svc.Snapshot(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Snapshot returned error: %v", err)
	}
	if len(snap.Addresses) != 1 || snap.Addresses[0].ID != "a1" {
		t.Fatalf("expected only u1's address, got %+v", snap.Addresses)
	}
	if len(snap.Contracts) != 0 {
		t.Fatalf("expected no contracts for u1, got %+v", snap.Contracts)
	}
}

func TestAccountService_Snapshot_NotAuthenticated(t *testing.T) {
	svc := NewAccountService(testCatalog(), newStubAddressRepo(), newStubContractRepo(), zerolog.Nop())

	if _, err := svc.Snapshot(context.Background(), ""); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestAccountService_Snapshot_AnyBranchErrorFailsTheCall(t *testing.T) {
	boom := errors.New("store unavailable")

	catalog := testCatalog()
	catalog.err = boom
	svc := NewAccountService(catalog, newStubAddressRepo(), newStubContractRepo(), zerolog.Nop())
	if _, err := svc.Snapshot(context.Background(), "u1"); !errors.Is(err, boom) {
		t.Fatalf("expected catalog error to propagate, got %v", err)
	}

	contracts := newStubContractRepo()
	contracts.listErr = boom
	svc = NewAccountService(testCatalog(), newStubAddressRepo(), contracts, zerolog.Nop())
	if _, err := svc.Snapshot(context.Background(), "u1"); !errors.Is(err, boom) {
		t.Fatalf("expected contract error to propagate, got %v", err)
	}
}
