package service

import (
	"context"
	"errors"
	"testing"

	"github.com/cargobook/booking-system/internal/core/domain"
	"github.com/cargobook/booking-system/internal/core/ports"
)

func addressInput(username string, def bool) ports.CreateAddressInput {
	return ports.CreateAddressInput{
		Username:      username,
		Address:       "Valiasr St 10",
		Country:       "IR",
		City:          "Tehran",
		ContactNumber: "+98-21-1234",
		Default:       def,
	}
}

func countDefaults(t *testing.T, repo *stubAddressRepo, username string) int {
	t.Helper()
	list, err := repo.ListByUser(context.Background(), username)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	n := 0
	for _, a := range list {
		if a.Default {
			n++
		}
	}
	return n
}

func TestAddressService_NewDefaultDisplacesOld(t *testing.T) {
	repo := newStubAddressRepo()
	svc := NewAddressService(repo, discardLogger)

	first, err := svc.CreateAddress(context.Background(), addressInput("reza", true))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := svc.CreateAddress(context.Background(), addressInput("reza", true))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if n := countDefaults(t, repo, "reza"); n != 1 {
		t.Fatalf("defaults = %d, want 1", n)
	}
	if repo.byUUID[first.UUID].Default {
		t.Fatalf("old default not cleared")
	}
	if !repo.byUUID[second.UUID].Default {
		t.Fatalf("new default not set")
	}
}

func TestAddressService_DefaultScopedPerUser(t *testing.T) {
	repo := newStubAddressRepo()
	svc := NewAddressService(repo, discardLogger)

	_, _ = svc.CreateAddress(context.Background(), addressInput("reza", true))
	_, _ = svc.CreateAddress(context.Background(), addressInput("sara", true))

	if countDefaults(t, repo, "reza") != 1 || countDefaults(t, repo, "sara") != 1 {
		t.Fatalf("defaults must be independent per user")
	}
}

func TestAddressService_SetDefaultAddress(t *testing.T) {
	repo := newStubAddressRepo()
	svc := NewAddressService(repo, discardLogger)

	a, _ := svc.CreateAddress(context.Background(), addressInput("reza", true))
	b, _ := svc.CreateAddress(context.Background(), addressInput("reza", false))

	if err := svc.SetDefaultAddress(context.Background(), "reza", b.UUID); err != nil {
		t.Fatalf("set default: %v", err)
	}
	if repo.byUUID[a.UUID].Default || !repo.byUUID[b.UUID].Default {
		t.Fatalf("default flag not moved")
	}
}

// observedAddressRepo snapshots the number of default entries after every
// write, catching any intermediate state where two defaults coexist.
type observedAddressRepo struct {
	*stubAddressRepo
	maxDefaults int
}

func (r *observedAddressRepo) observe(username string) {
	n := 0
	for _, a := range r.byUUID {
		if a.Username == username && a.Default {
			n++
		}
	}
	if n > r.maxDefaults {
		r.maxDefaults = n
	}
}

func (r *observedAddressRepo) Create(ctx context.Context, a *domain.Address) error {
	if err := r.stubAddressRepo.Create(ctx, a); err != nil {
		return err
	}
	r.observe(a.Username)
	return nil
}

func (r *observedAddressRepo) ClearDefault(ctx context.Context, username, except string) error {
	if err := r.stubAddressRepo.ClearDefault(ctx, username, except); err != nil {
		return err
	}
	r.observe(username)
	return nil
}

func (r *observedAddressRepo) SetDefault(ctx context.Context, username, id string) error {
	if err := r.stubAddressRepo.SetDefault(ctx, username, id); err != nil {
		return err
	}
	r.observe(username)
	return nil
}

func TestAddressService_NeverTwoDefaultsObservable(t *testing.T) {
	repo := &observedAddressRepo{stubAddressRepo: newStubAddressRepo()}
	svc := NewAddressService(repo, discardLogger)

	if _, err := svc.CreateAddress(context.Background(), addressInput("reza", true)); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.CreateAddress(context.Background(), addressInput("reza", true)); err != nil {
		t.Fatalf("create: %v", err)
	}
	third, err := svc.CreateAddress(context.Background(), addressInput("reza", false))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.SetDefaultAddress(context.Background(), "reza", third.UUID); err != nil {
		t.Fatalf("set default: %v", err)
	}

	if repo.maxDefaults > 1 {
		t.Fatalf("observed %d defaults at once, want at most 1", repo.maxDefaults)
	}
	if countDefaults(t, repo.stubAddressRepo, "reza") != 1 {
		t.Fatalf("final state must have exactly one default")
	}
}

func TestAddressService_SetDefaultAddress_CrossUserRejected(t *testing.T) {
	repo := newStubAddressRepo()
	svc := NewAddressService(repo, discardLogger)

	a, _ := svc.CreateAddress(context.Background(), addressInput("reza", true))

	err := svc.SetDefaultAddress(context.Background(), "sara", a.UUID)
	if !errors.Is(err, domain.ErrAddressNotFound) {
		t.Fatalf("err = %v, want ErrAddressNotFound", err)
	}
	if !repo.byUUID[a.UUID].Default {
		t.Fatalf("cross-user call must not disturb the owner's default")
	}
}
