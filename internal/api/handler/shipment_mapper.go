package handler

import (
	"github.com/cargobook/booking-system/internal/core/domain"
	"github.com/cargobook/booking-system/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createShipmentRequest, username string) ports.CreateShipmentInput {
	return ports.CreateShipmentInput{
		Shipper:            toPartyInput(req.Shipper),
		Receiver:           toPartyInput(req.Receiver),
		ProductType:        req.ProductType,
		Service:            req.Service,
		Quantity:           req.Quantity,
		Dimensions:         toDimensionsInput(req.Dimensions),
		GrossWeightKg:      req.GrossWeightKg,
		CODAmount:          req.CODAmount,
		ItemDescription:    req.ItemDescription,
		SpecialInstruction: req.SpecialInstruction,
		CreatedBy:          username,
		AddressUUID:        req.AddressUUID,
	}
}

func toPartyInput(p partyRequest) ports.PartyInput {
	return ports.PartyInput{
		Name:          p.Name,
		Address:       p.Address,
		Country:       p.Country,
		City:          p.City,
		ZipCode:       p.ZipCode,
		ContactPerson: p.ContactPerson,
		ContactNumber: p.ContactNumber,
		MobileNumber:  p.MobileNumber,
	}
}

func toDimensionsInput(d dimensionsRequest) ports.DimensionsInput {
	return ports.DimensionsInput{
		LengthCm: d.LengthCm,
		WidthCm:  d.WidthCm,
		HeightCm: d.HeightCm,
	}
}

// --- Service result → HTTP response ---

func toCreateResponse(r *ports.ShipmentResult) createShipmentResponse {
	return createShipmentResponse{
		ID:                 r.ID,
		AWBNumber:          r.AWBNumber,
		ReferenceNumber:    r.ReferenceNumber,
		PaymentStatus:      r.PaymentStatus,
		VolumetricWeightKg: r.VolumetricWeightKg,
		ChargeableWeightKg: r.ChargeableWeightKg,
		CreatedAt:          r.CreatedAt.UTC(),
		Links: shipmentLinks{
			Self: "/v1/shipments/" + r.ID,
		},
	}
}

func toShipmentResponse(s *domain.Shipment) shipmentResponse {
	links := shipmentLinks{Self: "/v1/shipments/" + s.ID}
	if s.HasPermanentIdentifiers() {
		links.Tracking = "/v1/tracking?tracking_number=" + s.AWBNumber
	}
	return shipmentResponse{
		ID:                 s.ID,
		AWBNumber:          s.AWBNumber,
		ReferenceNumber:    s.ReferenceNumber,
		PaymentStatus:      string(s.PaymentStatus),
		Shipper:            toPartyResponse(s.Shipper),
		Receiver:           toPartyResponse(s.Receiver),
		ProductType:        s.ProductType,
		Service:            s.Service,
		Quantity:           s.Quantity,
		Dimensions: dimensionsResponse{
			LengthCm: s.Dimensions.LengthCm,
			WidthCm:  s.Dimensions.WidthCm,
			HeightCm: s.Dimensions.HeightCm,
		},
		GrossWeightKg:      s.GrossWeightKg,
		VolumetricWeightKg: s.VolumetricWeightKg,
		ChargeableWeightKg: s.ChargeableWeightKg,
		CODAmount:          s.CODAmount,
		ItemDescription:    s.ItemDescription,
		SpecialInstruction: s.SpecialInstruction,
		CreatedAt:          s.CreatedAt.UTC(),
		UpdatedAt:          s.UpdatedAt.UTC(),
		Links:              links,
	}
}

func toPartyResponse(p domain.Party) partyResponse {
	return partyResponse{
		Name:          p.Name,
		Address:       p.Address,
		Country:       p.Country,
		City:          p.City,
		ZipCode:       p.ZipCode,
		ContactPerson: p.ContactPerson,
		ContactNumber: p.ContactNumber,
		MobileNumber:  p.MobileNumber,
	}
}

func toListResponse(r *ports.ListShipmentsResult) listShipmentsResponse {
	items := make([]shipmentSummaryResponse, len(r.Items))
	for i, s := range r.Items {
		items[i] = shipmentSummaryResponse{
			ID:                 s.ID,
			AWBNumber:          s.AWBNumber,
			ReferenceNumber:    s.ReferenceNumber,
			PaymentStatus:      string(s.PaymentStatus),
			Service:            s.Service,
			ReceiverName:       s.Receiver.Name,
			ReceiverCity:       s.Receiver.City,
			ChargeableWeightKg: s.ChargeableWeightKg,
			CreatedAt:          s.CreatedAt.UTC(),
		}
	}
	return listShipmentsResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      r.Total,
			Page:       r.Page,
			Limit:      r.Limit,
			TotalPages: r.TotalPages,
		},
	}
}

func toTrackingResponse(s *domain.Shipment) trackingResponse {
	return trackingResponse{
		AWBNumber:       s.AWBNumber,
		ReferenceNumber: s.ReferenceNumber,
		PaymentStatus:   string(s.PaymentStatus),
		Service:         s.Service,
		ShipperName:     s.Shipper.Name,
		ShipperCity:     s.Shipper.City,
		ReceiverName:    s.Receiver.Name,
		ReceiverCity:    s.Receiver.City,
		Quantity:        s.Quantity,
		CreatedAt:       s.CreatedAt.UTC(),
	}
}
