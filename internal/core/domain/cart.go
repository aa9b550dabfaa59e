package domain

import "sort"

// Cart is the transient service selection built on the new-contract screen.
// It lives only for the duration of that screen: entering the screen always
// starts from an empty cart.
//
// Selected maps service id to the price captured when the service was
// toggled on, so toggling the same id off subtracts exactly what was added
// regardless of catalog edits in between.
type Cart struct {
	Selected map[string]int64 `json:"selected"`
	Total    int64            `json:"total"`
}

// NewCart returns an empty cart.
func NewCart() Cart {
	return Cart{Selected: make(map[string]int64)}
}

// Toggle selects the service when absent and deselects it when present,
// keeping Total equal to the sum of selected prices. Toggling the same id
// twice restores the prior state exactly.
func (c *Cart) Toggle(serviceID string, price int64) (selected bool) {
	if c.Selected == nil {
		c.Selected = make(map[string]int64)
	}
	if prev, ok := c.Selected[serviceID]; ok {
		delete(c.Selected, serviceID)
		c.Total -= prev
		return false
	}
	c.Selected[serviceID] = price
	c.Total += price
	return true
}

// Reset empties the selection and zeroes the total.
func (c *Cart) Reset() {
	c.Selected = make(map[string]int64)
	c.Total = 0
}

// ServiceIDs returns the selected ids in a stable order.
func (c *Cart) ServiceIDs() []string {
	ids := make([]string, 0, len(c.Selected))
	for id := range c.Selected {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Size returns the number of selected services.
func (c *Cart) Size() int {
	return len(c.Selected)
}
