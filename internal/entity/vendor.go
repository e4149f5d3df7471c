package entity

import "github.com/google/uuid"

// Vendor represents a supplier identity for data transfer between layers.
// Contact fields are optional; empty string means absent.
type Vendor struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email,omitempty"`
	Phone   string    `json:"phone,omitempty"`
	Address string    `json:"address,omitempty"`
	Website string    `json:"website,omitempty"`
}

// VendorSignals holds identity-bearing evidence mined from document text.
// All fields are best-effort and independently optional.
type VendorSignals struct {
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Website string `json:"website,omitempty"`
	Name    string `json:"name,omitempty"`
	Address string `json:"address,omitempty"`
}

// Empty reports whether no signal at all was extracted.
func (s VendorSignals) Empty() bool {
	return s.Email == "" && s.Phone == "" && s.Website == "" && s.Name == "" && s.Address == ""
}
