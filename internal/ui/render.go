package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/vigilia/contracts-api/internal/app"
	"github.com/vigilia/contracts-api/internal/core/domain"
	"github.com/vigilia/contracts-api/internal/core/ports"
)

// Screen renders the session's current view. The unexpired notice, if any,
// is appended below the screen body.
func Screen(sess *app.Session, snap *ports.AccountSnapshot, now time.Time) string {
	var body string
	switch sess.View {
	case app.ViewNewContract:
		body = NewContract(snap, &sess.Cart)
	case app.ViewMyContracts:
		body = Contracts(snap)
	case app.ViewNewAddress:
		body = AddressForm()
	default:
		body = Home(snap)
	}

	if n := sess.ActiveNotice(now); n != nil {
		marker := "OK"
		if n.Kind == app.NoticeError {
			marker = "ERROR"
		}
		body += fmt.Sprintf("\n[%s] %s\n", marker, n.Message)
	}
	return body
}

// Home is the dashboard: registered addresses and the contract count.
func Home(snap *ports.AccountSnapshot) string {
	var b strings.Builder
	b.WriteString("PANEL DE CONTROL\n")
	b.WriteString("Gestiona tus servicios de seguridad.\n\n")

	b.WriteString("Direcciones\n")
	if len(snap.Addresses) == 0 {
		b.WriteString("  Sin direcciones.\n")
	} else {
		for _, a := range snap.Addresses {
			fmt.Fprintf(&b, "  %s - %s, %s\n", a.Alias, a.Street, a.City)
		}
	}

	fmt.Fprintf(&b, "\nContratos activos: %d\n", len(snap.Contracts))
	return b.String()
}

// NewContract is the catalog selection screen with the running total.
func NewContract(snap *ports.AccountSnapshot, cart *domain.Cart) string {
	var b strings.Builder
	b.WriteString("CREAR NUEVO CONTRATO\n\n")
	b.WriteString("1. Selecciona servicios\n")
	for _, svc := range snap.Services {
		mark := " "
		if _, ok := cart.Selected[svc.ID]; ok {
			mark = "x"
		}
		fmt.Fprintf(&b, "  [%s] %s - %s (%s)\n", mark, svc.Name, svc.Description, FormatCLP(svc.Price))
	}

	b.WriteString("\n2. Selecciona una direccion\n")
	if len(snap.Addresses) == 0 {
		b.WriteString("  Sin direcciones. Registra una primero.\n")
	} else {
		for _, a := range snap.Addresses {
			fmt.Fprintf(&b, "  (%s) %s - %s\n", a.ID, a.Alias, a.Street)
		}
	}

	fmt.Fprintf(&b, "\nTotal anual: %s\n", FormatCLP(cart.Total))
	return b.String()
}

// Contracts lists the user's contracts.
func Contracts(snap *ports.AccountSnapshot) string {
	var b strings.Builder
	b.WriteString("MIS CONTRATOS\n\n")
	if len(snap.Contracts) == 0 {
		b.WriteString("Aun no tienes contratos.\n")
		return b.String()
	}
	for _, c := range snap.Contracts {
		fmt.Fprintf(&b, "%s  [%s]\n", c.AddressAlias, c.Status)
		fmt.Fprintf(&b, "  %d servicios - %s\n", len(c.Services), FormatCLP(c.TotalPrice))
		fmt.Fprintf(&b, "  Vence: %s\n", FormatLongDate(c.EndDate))
	}
	return b.String()
}

// AddressForm is the new-address screen.
func AddressForm() string {
	var b strings.Builder
	b.WriteString("NUEVA DIRECCION\n\n")
	b.WriteString("  Alias:  ____________\n")
	b.WriteString("  Calle:  ____________\n")
	b.WriteString("  Ciudad: ____________\n")
	return b.String()
}

// ContractDetails is the details overlay for a single contract.
func ContractDetails(c *domain.Contract) string {
	var b strings.Builder
	fmt.Fprintf(&b, "CONTRATO %s  [%s]\n", c.ID, c.Status)
	fmt.Fprintf(&b, "Titular: %s\n", c.UserEmail)
	fmt.Fprintf(&b, "Direccion: %s\n\n", c.AddressAlias)

	b.WriteString("Servicios incluidos\n")
	for _, s := range c.Services {
		fmt.Fprintf(&b, "  %s - %s\n", s.Name, FormatCLP(s.Price))
	}

	fmt.Fprintf(&b, "\nInicio: %s\n", FormatLongDate(c.StartDate))
	fmt.Fprintf(&b, "Vencimiento: %s\n", FormatLongDate(c.EndDate))
	fmt.Fprintf(&b, "Total anual: %s\n", FormatCLP(c.TotalPrice))
	return b.String()
}
