package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// acceptedResponse acknowledges asynchronous processing.
type acceptedResponse struct {
	Message string `json:"message"`
}

// --- Request types ---

type partyRequest struct {
	Name          string `json:"name"           validate:"required"`
	Address       string `json:"address"        validate:"required"`
	Country       string `json:"country"        validate:"required"`
	City          string `json:"city"           validate:"required"`
	ZipCode       string `json:"zip_code"`
	ContactPerson string `json:"contact_person" validate:"required"`
	ContactNumber string `json:"contact_number" validate:"required"`
	MobileNumber  string `json:"mobile_number"`
}

// dimensionsRequest deliberately has no required tags: drafts may be booked
// with missing measurements and the derived weights collapse to the gross
// weight until the values arrive.
type dimensionsRequest struct {
	LengthCm float64 `json:"length_cm" validate:"gte=0"`
	WidthCm  float64 `json:"width_cm"  validate:"gte=0"`
	HeightCm float64 `json:"height_cm" validate:"gte=0"`
}

type createShipmentRequest struct {
	Shipper            partyRequest      `json:"shipper"  validate:"required"`
	Receiver           partyRequest      `json:"receiver" validate:"required"`
	ProductType        string            `json:"product_type" validate:"required,oneof=document parcel cargo"`
	Service            string            `json:"service"      validate:"required,oneof=express economy freight"`
	Quantity           int               `json:"quantity"     validate:"required,gt=0"`
	Dimensions         dimensionsRequest `json:"dimensions"`
	GrossWeightKg      float64           `json:"gross_weight_kg" validate:"gte=0"`
	CODAmount          float64           `json:"cod_amount"      validate:"gte=0"`
	ItemDescription    string            `json:"item_description" validate:"required"`
	SpecialInstruction string            `json:"special_instruction"`
	AddressUUID        string            `json:"address_uuid"`
}

type updateShipmentRequest struct {
	Quantity      int               `json:"quantity"        validate:"required,gt=0"`
	Dimensions    dimensionsRequest `json:"dimensions"`
	GrossWeightKg float64           `json:"gross_weight_kg" validate:"gte=0"`
}

type paymentConfirmationRequest struct {
	EventID    string    `json:"event_id"`
	Source     string    `json:"source"`
	OccurredAt time.Time `json:"occurred_at"`
}

// --- Response types ---
// Response-only types owned by the transport layer. These are intentionally
// separate from domain types so the JSON contract is not coupled to internal
// service changes.

type createShipmentResponse struct {
	ID                 string        `json:"id"`
	AWBNumber          string        `json:"awb_number"`
	ReferenceNumber    string        `json:"reference_number"`
	PaymentStatus      string        `json:"payment_status"`
	VolumetricWeightKg float64       `json:"volumetric_weight_kg"`
	ChargeableWeightKg float64       `json:"chargeable_weight_kg"`
	CreatedAt          time.Time     `json:"created_at"`
	Links              shipmentLinks `json:"_links"`
}

type shipmentLinks struct {
	Self     string `json:"self"`
	Tracking string `json:"tracking,omitempty"`
}

type partyResponse struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	Country       string `json:"country"`
	City          string `json:"city"`
	ZipCode       string `json:"zip_code,omitempty"`
	ContactPerson string `json:"contact_person"`
	ContactNumber string `json:"contact_number"`
	MobileNumber  string `json:"mobile_number,omitempty"`
}

type dimensionsResponse struct {
	LengthCm float64 `json:"length_cm"`
	WidthCm  float64 `json:"width_cm"`
	HeightCm float64 `json:"height_cm"`
}

type shipmentResponse struct {
	ID                 string             `json:"id"`
	AWBNumber          string             `json:"awb_number"`
	ReferenceNumber    string             `json:"reference_number"`
	PaymentStatus      string             `json:"payment_status"`
	Shipper            partyResponse      `json:"shipper"`
	Receiver           partyResponse      `json:"receiver"`
	ProductType        string             `json:"product_type"`
	Service            string             `json:"service"`
	Quantity           int                `json:"quantity"`
	Dimensions         dimensionsResponse `json:"dimensions"`
	GrossWeightKg      float64            `json:"gross_weight_kg"`
	VolumetricWeightKg float64            `json:"volumetric_weight_kg"`
	ChargeableWeightKg float64            `json:"chargeable_weight_kg"`
	CODAmount          float64            `json:"cod_amount,omitempty"`
	ItemDescription    string             `json:"item_description"`
	SpecialInstruction string             `json:"special_instruction,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
	Links              shipmentLinks      `json:"_links"`
}

// shipmentSummaryResponse is the lightweight item used in list responses.
type shipmentSummaryResponse struct {
	ID                 string    `json:"id"`
	AWBNumber          string    `json:"awb_number"`
	ReferenceNumber    string    `json:"reference_number"`
	PaymentStatus      string    `json:"payment_status"`
	Service            string    `json:"service"`
	ReceiverName       string    `json:"receiver_name"`
	ReceiverCity       string    `json:"receiver_city"`
	ChargeableWeightKg float64   `json:"chargeable_weight_kg"`
	CreatedAt          time.Time `json:"created_at"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listShipmentsResponse struct {
	Data       []shipmentSummaryResponse `json:"data"`
	Pagination paginationResponse        `json:"pagination"`
}

// trackingResponse is the public tracking view. It exposes only the fields a
// receiver needs and omits contact numbers and commercial values.
type trackingResponse struct {
	AWBNumber       string    `json:"awb_number"`
	ReferenceNumber string    `json:"reference_number"`
	PaymentStatus   string    `json:"payment_status"`
	Service         string    `json:"service"`
	ShipperName     string    `json:"shipper_name"`
	ShipperCity     string    `json:"shipper_city"`
	ReceiverName    string    `json:"receiver_name"`
	ReceiverCity    string    `json:"receiver_city"`
	Quantity        int       `json:"quantity"`
	CreatedAt       time.Time `json:"created_at"`
}
