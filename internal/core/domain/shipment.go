package domain

import (
	"errors"
	"strings"
	"time"
)

// PaymentStatus represents the payment state of a shipment.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// Identifier prefixes. Permanent identifiers are sequence-derived and start
// with AWBPrefix or RefPrefix; placeholders issued before payment start with
// TempPrefix followed by eight random decimal digits.
const (
	AWBPrefix  = "AWB-"
	RefPrefix  = "REF-"
	TempPrefix = "PENDING"
)

// volumetricDivisor converts cm³ to kg for air freight billing.
const volumetricDivisor = 5000

var ErrShipmentNotFound = errors.New("shipment not found")
var ErrInvalidTrackingNumber = errors.New("invalid tracking number format")
var ErrDuplicateIdentifier = errors.New("duplicate shipment identifier")
var ErrStorageUnavailable = errors.New("storage unavailable")
var ErrSequenceCorrupted = errors.New("identifier sequence corrupted")
var ErrForbidden = errors.New("access forbidden")

// Party holds the contact block for a shipper or receiver.
type Party struct {
	Name          string `json:"name" bson:"name"`
	Address       string `json:"address" bson:"address"`
	Country       string `json:"country" bson:"country"`
	City          string `json:"city" bson:"city"`
	ZipCode       string `json:"zip_code,omitempty" bson:"zip_code,omitempty"`
	ContactPerson string `json:"contact_person" bson:"contact_person"`
	ContactNumber string `json:"contact_number" bson:"contact_number"`
	MobileNumber  string `json:"mobile_number,omitempty" bson:"mobile_number,omitempty"`
}

// Dimensions are the per-piece measurements in centimetres.
type Dimensions struct {
	LengthCm float64 `json:"length_cm" bson:"length_cm"`
	WidthCm  float64 `json:"width_cm" bson:"width_cm"`
	HeightCm float64 `json:"height_cm" bson:"height_cm"`
}

// Shipment is the core aggregate root. AWBNumber and ReferenceNumber are
// globally unique; they carry the temporary PENDING shape until payment is
// confirmed and are then replaced by permanent sequence-derived values
// exactly once.
type Shipment struct {
	ID              string        `json:"id" bson:"_id,omitempty"`
	AWBNumber       string        `json:"awb_number" bson:"awb_number"`
	ReferenceNumber string        `json:"reference_number" bson:"reference_number"`
	PaymentStatus   PaymentStatus `json:"payment_status" bson:"payment_status"`

	Shipper  Party `json:"shipper" bson:"shipper"`
	Receiver Party `json:"receiver" bson:"receiver"`

	ProductType        string     `json:"product_type" bson:"product_type"`
	Service            string     `json:"service" bson:"service"`
	Quantity           int        `json:"quantity" bson:"quantity"`
	Dimensions         Dimensions `json:"dimensions" bson:"dimensions"`
	GrossWeightKg      float64    `json:"gross_weight_kg" bson:"gross_weight_kg"`
	VolumetricWeightKg float64    `json:"volumetric_weight_kg" bson:"volumetric_weight_kg"`
	ChargeableWeightKg float64    `json:"chargeable_weight_kg" bson:"chargeable_weight_kg"`
	CODAmount          float64    `json:"cod_amount,omitempty" bson:"cod_amount,omitempty"`
	ItemDescription    string     `json:"item_description" bson:"item_description"`
	SpecialInstruction string     `json:"special_instruction,omitempty" bson:"special_instruction,omitempty"`

	CreatedBy string    `json:"created_by,omitempty" bson:"created_by,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// ComputeWeights recalculates the derived billing weights from the current
// dimensions and gross weight. Missing or zero dimensions collapse the
// volumetric weight to 0 and the chargeable weight falls back to the gross
// weight; incomplete drafts never fail here.
func (s *Shipment) ComputeWeights() {
	v := s.Dimensions.LengthCm * s.Dimensions.WidthCm * s.Dimensions.HeightCm * float64(s.Quantity) / volumetricDivisor
	if v < 0 {
		v = 0
	}
	s.VolumetricWeightKg = v
	if s.GrossWeightKg > v {
		s.ChargeableWeightKg = s.GrossWeightKg
	} else {
		s.ChargeableWeightKg = v
	}
}

// HasPermanentIdentifiers reports whether both identifiers already carry the
// permanent sequence-derived shape.
func (s *Shipment) HasPermanentIdentifiers() bool {
	return IsPermanentAWB(s.AWBNumber) && IsPermanentReference(s.ReferenceNumber)
}

// IsPermanentAWB reports whether id carries the permanent AWB shape.
func IsPermanentAWB(id string) bool {
	return strings.HasPrefix(id, AWBPrefix)
}

// IsPermanentReference reports whether id carries the permanent reference shape.
func IsPermanentReference(id string) bool {
	return strings.HasPrefix(id, RefPrefix)
}
