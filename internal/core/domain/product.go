package domain

import (
	"errors"
	"time"
)

var ErrProductNotFound = errors.New("product not found")
var ErrInvalidProductID = errors.New("invalid product id")
var ErrProductInvalid = errors.New("product validation failed")

// Product is a catalog entry. The ID is assigned by the store and treated as
// an opaque string everywhere above the repository layer.
type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductPatch carries the fields of an update request. A nil field was
// absent from the body and leaves the stored value untouched, matching a
// document-store update that drops undefined fields.
type ProductPatch struct {
	Name  *string
	Price *float64
}
