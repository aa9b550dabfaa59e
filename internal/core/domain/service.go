package domain

import "errors"

var ErrUnknownService = errors.New("unknown service")

// Service is a catalog entry. The catalog is global and read-only for the
// application; prices are integer CLP amounts.
type Service struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Price       int64  `json:"price"`
}
