package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/vigilia/contracts-api/internal/app"
	"github.com/vigilia/contracts-api/internal/core/domain"
	"github.com/vigilia/contracts-api/internal/core/ports"
)

func emptySnapshot() *ports.AccountSnapshot {
	return &ports.AccountSnapshot{
		Services:  []domain.Service{},
		Addresses: []domain.Address{},
		Contracts: []domain.Contract{},
	}
}

func TestHome_EmptyStates(t *testing.T) {
	out := Home(emptySnapshot())
	if !strings.Contains(out, "Sin direcciones.") {
		t.Fatalf("expected empty-address message, got:\n%s", out)
	}
	if !strings.Contains(out, "Contratos activos: 0") {
		t.Fatalf("expected zero contract count, got:\n%s", out)
	}
}

func TestHome_ListsAddresses(t *testing.T) {
	snap := emptySnapshot()
	snap.Addresses = []domain.Address{{Alias: "Casa", Street: "Av. Providencia 1234", City: "Santiago"}}
	snap.Contracts = []domain.Contract{{}, {}}

	out := Home(snap)
	if !strings.Contains(out, "Casa - Av. Providencia 1234, Santiago") {
		t.Fatalf("address not rendered:\n%s", out)
	}
	if !strings.Contains(out, "Contratos activos: 2") {
		t.Fatalf("contract count not rendered:\n%s", out)
	}
}

func TestNewContract_MarksSelectionAndTotal(t *testing.T) {
	snap := emptySnapshot()
	snap.Services = []domain.Service{
		{ID: "a", Name: "Alarma", Description: "Monitoreo", Price: 1000},
		{ID: "b", Name: "CCTV", Description: "Camaras", Price: 2500},
	}
	cart := domain.NewCart()
	cart.Toggle("a", 1000)

	out := NewContract(snap, &cart)
	if !strings.Contains(out, "[x] Alarma") {
		t.Fatalf("selected service not marked:\n%s", out)
	}
	if !strings.Contains(out, "[ ] CCTV") {
		t.Fatalf("unselected service marked:\n%s", out)
	}
	if !strings.Contains(out, "Total anual: $1.000") {
		t.Fatalf("running total wrong:\n%s", out)
	}
}

func TestContracts_EmptyState(t *testing.T) {
	out := Contracts(emptySnapshot())
	if !strings.Contains(out, "Aun no tienes contratos.") {
		t.Fatalf("expected empty-contracts message, got:\n%s", out)
	}
}

func TestContractDetails(t *testing.T) {
	c := &domain.Contract{
		ID:           "c1",
		UserEmail:    "a@x.com",
		Status:       domain.StatusRenewed,
		AddressAlias: "Casa",
		Services:     []domain.Service{{Name: "Alarma", Price: 5000}},
		TotalPrice:   5000,
		StartDate:    time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	out := ContractDetails(c)
	for _, want := range []string{"[Renewed]", "a@x.com", "Alarma - $5.000", "Total anual: $5.000", "1 de marzo de 2027"} {
		if !strings.Contains(out, want) {
			t.Fatalf("details missing %q:\n%s", want, out)
		}
	}
}

func TestScreen_RendersUnexpiredNotice(t *testing.T) {
	sess := app.NewSession("u1", "a@x.com")
	now := time.Date(2026, 1, 2, 15, 0, 0, 0, time.UTC)
	sess.SetNotice("Contrato guardado", app.NoticeSuccess, now)

	out := Screen(sess, emptySnapshot(), now)
	if !strings.Contains(out, "[OK] Contrato guardado") {
		t.Fatalf("notice not rendered:\n%s", out)
	}

	out = Screen(sess, emptySnapshot(), now.Add(app.NoticeTTL+time.Second))
	if strings.Contains(out, "Contrato guardado") {
		t.Fatalf("expired notice rendered:\n%s", out)
	}
}

func TestScreen_SwitchesOnView(t *testing.T) {
	sess := app.NewSession("u1", "a@x.com")
	now := time.Now()

	sess.Navigate(app.ViewNewAddress)
	if out := Screen(sess, emptySnapshot(), now); !strings.Contains(out, "NUEVA DIRECCION") {
		t.Fatalf("address form not rendered:\n%s", out)
	}
	sess.Navigate(app.ViewMyContracts)
	if out := Screen(sess, emptySnapshot(), now); !strings.Contains(out, "MIS CONTRATOS") {
		t.Fatalf("contracts view not rendered:\n%s", out)
	}
}
