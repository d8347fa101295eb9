package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/cargobook/booking-system/internal/core/domain"
	"github.com/cargobook/booking-system/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubShipmentRepo struct {
	byID map[string]*domain.Shipment
	seq  int

	createErr     error // if set, Create returns this error
	forcedClashes int   // number of Create calls that fail with ErrDuplicateIdentifier
	markPaidErr   error // if set, MarkPaid returns this error
	findCalls     int   // FindByAWB + FindByReference call count
}

func newStubShipmentRepo() *stubShipmentRepo {
	return &stubShipmentRepo{byID: make(map[string]*domain.Shipment)}
}

func (r *stubShipmentRepo) usedIdentifier(id string, except string) bool {
	for _, s := range r.byID {
		if s.ID == except {
			continue
		}
		if s.AWBNumber == id || s.ReferenceNumber == id {
			return true
		}
	}
	return false
}

func (r *stubShipmentRepo) Create(_ context.Context, s *domain.Shipment) error {
	if r.createErr != nil {
		return r.createErr
	}
	if r.forcedClashes > 0 {
		r.forcedClashes--
		return domain.ErrDuplicateIdentifier
	}
	if r.usedIdentifier(s.AWBNumber, "") || r.usedIdentifier(s.ReferenceNumber, "") {
		return domain.ErrDuplicateIdentifier
	}
	r.seq++
	s.ID = fmt.Sprintf("id-%d", r.seq)
	clone := *s
	r.byID[s.ID] = &clone
	return nil
}

func (r *stubShipmentRepo) Update(_ context.Context, s *domain.Shipment) error {
	if _, ok := r.byID[s.ID]; !ok {
		return domain.ErrShipmentNotFound
	}
	clone := *s
	r.byID[s.ID] = &clone
	return nil
}

func (r *stubShipmentRepo) MarkPaid(_ context.Context, id, awb, ref string) error {
	if r.markPaidErr != nil {
		return r.markPaidErr
	}
	s, ok := r.byID[id]
	if !ok {
		return domain.ErrShipmentNotFound
	}
	if r.usedIdentifier(awb, id) || r.usedIdentifier(ref, id) {
		return domain.ErrDuplicateIdentifier
	}
	s.AWBNumber = awb
	s.ReferenceNumber = ref
	s.PaymentStatus = domain.PaymentPaid
	return nil
}

func (r *stubShipmentRepo) FindByID(_ context.Context, id string) (*domain.Shipment, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrShipmentNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *stubShipmentRepo) FindByAWB(_ context.Context, awb string) (*domain.Shipment, error) {
	r.findCalls++
	for _, s := range r.byID {
		if s.AWBNumber == awb {
			clone := *s
			return &clone, nil
		}
	}
	return nil, domain.ErrShipmentNotFound
}

func (r *stubShipmentRepo) FindByReference(_ context.Context, ref string) (*domain.Shipment, error) {
	r.findCalls++
	for _, s := range r.byID {
		if s.ReferenceNumber == ref {
			clone := *s
			return &clone, nil
		}
	}
	return nil, domain.ErrShipmentNotFound
}

func (r *stubShipmentRepo) List(_ context.Context, f ports.ListShipmentsFilter) ([]*domain.Shipment, int64, error) {
	var matched []*domain.Shipment
	for _, s := range r.byID {
		if f.CreatedBy != "" && s.CreatedBy != f.CreatedBy {
			continue
		}
		if f.PaymentStatus != "" && string(s.PaymentStatus) != f.PaymentStatus {
			continue
		}
		if f.Service != "" && s.Service != f.Service {
			continue
		}
		matched = append(matched, s)
	}
	total := int64(len(matched))
	skip := (f.Page - 1) * f.Limit
	if skip > len(matched) {
		return nil, total, nil
	}
	end := skip + f.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[skip:end], total, nil
}

type stubAddressRepo struct {
	byUUID map[string]*domain.Address
}

func newStubAddressRepo() *stubAddressRepo {
	return &stubAddressRepo{byUUID: make(map[string]*domain.Address)}
}

func (r *stubAddressRepo) Create(_ context.Context, a *domain.Address) error {
	clone := *a
	r.byUUID[a.UUID] = &clone
	return nil
}

func (r *stubAddressRepo) FindByUUID(_ context.Context, username, id string) (*domain.Address, error) {
	a, ok := r.byUUID[id]
	if !ok || a.Username != username {
		return nil, domain.ErrAddressNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubAddressRepo) ListByUser(_ context.Context, username string) ([]*domain.Address, error) {
	var out []*domain.Address
	for _, a := range r.byUUID {
		if a.Username == username {
			clone := *a
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubAddressRepo) ClearDefault(_ context.Context, username, except string) error {
	for _, a := range r.byUUID {
		if a.Username == username && a.UUID != except {
			a.Default = false
		}
	}
	return nil
}

func (r *stubAddressRepo) SetDefault(_ context.Context, username, id string) error {
	a, ok := r.byUUID[id]
	if !ok || a.Username != username {
		return domain.ErrAddressNotFound
	}
	a.Default = true
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

func minimalCreateInput(createdBy string) ports.CreateShipmentInput {
	return ports.CreateShipmentInput{
		Shipper: ports.PartyInput{
			Name:          "Reza",
			Address:       "Valiasr St 10",
			Country:       "IR",
			City:          "Tehran",
			ContactPerson: "Reza",
			ContactNumber: "+98-21-1234",
		},
		Receiver: ports.PartyInput{
			Name:          "Sara",
			Address:       "Main Rd 5",
			Country:       "AE",
			City:          "Dubai",
			ContactPerson: "Sara",
			ContactNumber: "+971-4-9876",
		},
		ProductType:     "document",
		Service:         "express",
		Quantity:        1,
		Dimensions:      ports.DimensionsInput{LengthCm: 10, WidthCm: 10, HeightCm: 10},
		GrossWeightKg:   1,
		ItemDescription: "papers",
		CreatedBy:       createdBy,
	}
}

func newShipmentService(repo *stubShipmentRepo, addrs *stubAddressRepo) *ShipmentService {
	return NewShipmentService(repo, addrs, NewTrackingIDGenerator(nil), discardLogger)
}

// ---------------------------------------------------------------------------
// CreateShipment
// ---------------------------------------------------------------------------

func TestShipmentService_Create_StartsPendingWithTemporaryIDs(t *testing.T) {
	repo := newStubShipmentRepo()
	svc := newShipmentService(repo, newStubAddressRepo())

	res, err := svc.CreateShipment(context.Background(), minimalCreateInput("reza"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if res.PaymentStatus != string(domain.PaymentPending) {
		t.Fatalf("payment status = %s, want pending", res.PaymentStatus)
	}
	assertTemporaryShape(t, res.AWBNumber)
	assertTemporaryShape(t, res.ReferenceNumber)
	if res.VolumetricWeightKg != 0.2 {
		t.Fatalf("volumetric = %v, want 0.2", res.VolumetricWeightKg)
	}
	if res.ChargeableWeightKg != 1 {
		t.Fatalf("chargeable = %v, want 1", res.ChargeableWeightKg)
	}
}

func TestShipmentService_Create_RetriesOnPlaceholderCollision(t *testing.T) {
	repo := newStubShipmentRepo()
	repo.forcedClashes = 2
	svc := newShipmentService(repo, newStubAddressRepo())

	res, err := svc.CreateShipment(context.Background(), minimalCreateInput(""))
	if err != nil {
		t.Fatalf("create should survive two collisions: %v", err)
	}
	assertTemporaryShape(t, res.AWBNumber)
}

func TestShipmentService_Create_CollisionRetriesExhausted(t *testing.T) {
	repo := newStubShipmentRepo()
	repo.forcedClashes = maxTemporaryIDRetries
	svc := newShipmentService(repo, newStubAddressRepo())

	_, err := svc.CreateShipment(context.Background(), minimalCreateInput(""))
	if !errors.Is(err, domain.ErrDuplicateIdentifier) {
		t.Fatalf("err = %v, want ErrDuplicateIdentifier", err)
	}
	if len(repo.byID) != 0 {
		t.Fatalf("no shipment must be persisted after retry exhaustion")
	}
}

func TestShipmentService_Create_RepoFailureSurfaced(t *testing.T) {
	repo := newStubShipmentRepo()
	repo.createErr = domain.ErrStorageUnavailable
	svc := newShipmentService(repo, newStubAddressRepo())

	_, err := svc.CreateShipment(context.Background(), minimalCreateInput(""))
	if !errors.Is(err, domain.ErrStorageUnavailable) {
		t.Fatalf("err = %v, want ErrStorageUnavailable", err)
	}
}

func TestShipmentService_Create_PrefillsShipperFromSavedAddress(t *testing.T) {
	repo := newStubShipmentRepo()
	addrs := newStubAddressRepo()
	_ = addrs.Create(context.Background(), &domain.Address{
		UUID: "addr-1", Username: "reza", Address: "Saved St 1",
		Country: "IR", City: "Shiraz", ContactNumber: "+98-71-5555",
	})
	svc := newShipmentService(repo, addrs)

	in := minimalCreateInput("reza")
	in.AddressUUID = "addr-1"
	in.Shipper.Address = ""
	in.Shipper.City = ""
	in.Shipper.ContactNumber = ""

	res, err := svc.CreateShipment(context.Background(), in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	saved := repo.byID[res.ID]
	if saved.Shipper.Address != "Saved St 1" || saved.Shipper.City != "Shiraz" {
		t.Fatalf("shipper not prefilled from saved address: %+v", saved.Shipper)
	}
	if saved.Shipper.Name != "Reza" {
		t.Fatalf("explicit shipper fields must win, got %q", saved.Shipper.Name)
	}
}

func TestShipmentService_Create_UnknownSavedAddress(t *testing.T) {
	svc := newShipmentService(newStubShipmentRepo(), newStubAddressRepo())

	in := minimalCreateInput("reza")
	in.AddressUUID = "missing"
	_, err := svc.CreateShipment(context.Background(), in)
	if !errors.Is(err, domain.ErrAddressNotFound) {
		t.Fatalf("err = %v, want ErrAddressNotFound", err)
	}
}

// ---------------------------------------------------------------------------
// UpdateShipment
// ---------------------------------------------------------------------------

func TestShipmentService_Update_RecomputesWeightsKeepsIdentifiers(t *testing.T) {
	repo := newStubShipmentRepo()
	svc := newShipmentService(repo, newStubAddressRepo())

	created, err := svc.CreateShipment(context.Background(), minimalCreateInput("reza"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.UpdateShipment(context.Background(), ports.UpdateShipmentInput{
		ID:            created.ID,
		Quantity:      1,
		Dimensions:    ports.DimensionsInput{LengthCm: 50, WidthCm: 50, HeightCm: 50},
		GrossWeightKg: 1,
		Role:          domain.RoleClient,
		Username:      "reza",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.VolumetricWeightKg != 25 || updated.ChargeableWeightKg != 25 {
		t.Fatalf("weights = (%v, %v), want (25, 25)", updated.VolumetricWeightKg, updated.ChargeableWeightKg)
	}
	// A second save while still pending must not reissue the placeholder.
	if updated.AWBNumber != created.AWBNumber || updated.ReferenceNumber != created.ReferenceNumber {
		t.Fatalf("identifiers changed on pending re-save")
	}
}

func TestShipmentService_Update_ForbiddenForOtherClient(t *testing.T) {
	repo := newStubShipmentRepo()
	svc := newShipmentService(repo, newStubAddressRepo())

	created, _ := svc.CreateShipment(context.Background(), minimalCreateInput("reza"))

	_, err := svc.UpdateShipment(context.Background(), ports.UpdateShipmentInput{
		ID:       created.ID,
		Quantity: 1,
		Role:     domain.RoleClient,
		Username: "mallory",
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
}

// ---------------------------------------------------------------------------
// GetShipment / ListShipments
// ---------------------------------------------------------------------------

func TestShipmentService_Get_OwnerAndAdmin(t *testing.T) {
	repo := newStubShipmentRepo()
	svc := newShipmentService(repo, newStubAddressRepo())
	created, _ := svc.CreateShipment(context.Background(), minimalCreateInput("reza"))

	if _, err := svc.GetShipment(context.Background(), ports.GetShipmentInput{ID: created.ID, Role: domain.RoleClient, Username: "reza"}); err != nil {
		t.Fatalf("owner get: %v", err)
	}
	if _, err := svc.GetShipment(context.Background(), ports.GetShipmentInput{ID: created.ID, Role: domain.RoleAdmin}); err != nil {
		t.Fatalf("admin get: %v", err)
	}
	if _, err := svc.GetShipment(context.Background(), ports.GetShipmentInput{ID: created.ID, Role: domain.RoleClient, Username: "eve"}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("stranger get = %v, want ErrForbidden", err)
	}
}

func TestShipmentService_List_ClientScopedToOwnRecords(t *testing.T) {
	repo := newStubShipmentRepo()
	svc := newShipmentService(repo, newStubAddressRepo())
	_, _ = svc.CreateShipment(context.Background(), minimalCreateInput("reza"))
	_, _ = svc.CreateShipment(context.Background(), minimalCreateInput("reza"))
	_, _ = svc.CreateShipment(context.Background(), minimalCreateInput("sara"))

	res, err := svc.ListShipments(context.Background(), ports.ListShipmentsInput{Role: domain.RoleClient, Username: "reza"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if res.Total != 2 {
		t.Fatalf("client total = %d, want 2", res.Total)
	}

	res, err = svc.ListShipments(context.Background(), ports.ListShipmentsInput{Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("admin list: %v", err)
	}
	if res.Total != 3 {
		t.Fatalf("admin total = %d, want 3", res.Total)
	}
}

func assertTemporaryShape(t *testing.T, id string) {
	t.Helper()
	if !strings.HasPrefix(id, domain.TempPrefix) {
		t.Fatalf("id %q missing %s prefix", id, domain.TempPrefix)
	}
	suffix := strings.TrimPrefix(id, domain.TempPrefix)
	if len(suffix) != 8 {
		t.Fatalf("id %q suffix length = %d, want 8", id, len(suffix))
	}
	for _, r := range suffix {
		if r < '0' || r > '9' {
			t.Fatalf("id %q suffix is not all digits", id)
		}
	}
	if domain.IsPermanentAWB(id) || domain.IsPermanentReference(id) {
		t.Fatalf("temporary id %q must never carry the permanent shape", id)
	}
}
