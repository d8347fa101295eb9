package domain

import (
	"errors"
	"time"
)

var ErrAddressNotFound = errors.New("address not found")

// Address is a saved address-book entry. Each user has zero or one entry
// flagged as default; setting a new default clears the previous one for that
// user only.
type Address struct {
	UUID          string    `json:"uuid" bson:"address_uuid"`
	Username      string    `json:"-" bson:"username"`
	Address       string    `json:"address" bson:"address"`
	Country       string    `json:"country" bson:"country"`
	City          string    `json:"city" bson:"city"`
	ZipCode       string    `json:"zip_code,omitempty" bson:"zip_code,omitempty"`
	Location      string    `json:"location,omitempty" bson:"location,omitempty"`
	ContactNumber string    `json:"contact_number" bson:"contact_number"`
	MobileNumber  string    `json:"mobile_number,omitempty" bson:"mobile_number,omitempty"`
	Default       bool      `json:"default" bson:"default"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
}
