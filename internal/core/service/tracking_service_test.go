package service

import (
	"context"
	"errors"
	"testing"

	"github.com/cargobook/booking-system/internal/core/domain"
)

func TestTrackingService_ResolveByAWB(t *testing.T) {
	repo := newStubShipmentRepo()
	_ = repo.Create(context.Background(), &domain.Shipment{
		AWBNumber:       "AWB-000005",
		ReferenceNumber: "REF-000005",
		PaymentStatus:   domain.PaymentPaid,
	})
	svc := NewTrackingService(repo, discardLogger)

	s, err := svc.Resolve(context.Background(), "AWB-000005")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if s.AWBNumber != "AWB-000005" {
		t.Fatalf("resolved wrong record: %q", s.AWBNumber)
	}
}

func TestTrackingService_ResolveByReference(t *testing.T) {
	repo := newStubShipmentRepo()
	_ = repo.Create(context.Background(), &domain.Shipment{
		AWBNumber:       "AWB-000007",
		ReferenceNumber: "REF-000007",
		PaymentStatus:   domain.PaymentPaid,
	})
	svc := NewTrackingService(repo, discardLogger)

	s, err := svc.Resolve(context.Background(), "REF-000007")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if s.ReferenceNumber != "REF-000007" {
		t.Fatalf("resolved wrong record: %q", s.ReferenceNumber)
	}
}

func TestTrackingService_InvalidFormatSkipsStorage(t *testing.T) {
	repo := newStubShipmentRepo()
	svc := NewTrackingService(repo, discardLogger)

	for _, input := range []string{"", "XYZ-1", "PENDING12345678", "awb-000005"} {
		if _, err := svc.Resolve(context.Background(), input); !errors.Is(err, domain.ErrInvalidTrackingNumber) {
			t.Fatalf("resolve(%q) = %v, want ErrInvalidTrackingNumber", input, err)
		}
	}
	if repo.findCalls != 0 {
		t.Fatalf("invalid input must not touch storage, got %d lookups", repo.findCalls)
	}
}

func TestTrackingService_NotFound(t *testing.T) {
	svc := NewTrackingService(newStubShipmentRepo(), discardLogger)

	if _, err := svc.Resolve(context.Background(), "AWB-424242"); !errors.Is(err, domain.ErrShipmentNotFound) {
		t.Fatalf("err = %v, want ErrShipmentNotFound", err)
	}
}
