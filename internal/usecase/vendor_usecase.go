package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"construction_backoffice/internal/domain/entities"
	"construction_backoffice/internal/domain/identifier"
	"construction_backoffice/internal/usecase/interfaces"
)

var (
	ErrInvalidVendorName = errors.New("invalid vendor name")
	ErrInvalidSubName    = errors.New("invalid subcontractor name")
)

// IVendorUseCase exposes the vendor and subcontractor registries. Both use
// globally scoped sequential ids (VEND-NNN, Sub-NNN).
type IVendorUseCase interface {
	CreateVendor(ctx context.Context, vendorName, actingUser string) (entities.Vendor, error)
	ListVendors(ctx context.Context) ([]entities.Vendor, error)
	CreateSubcontractor(ctx context.Context, input CreateSubcontractorInput, actingUser string) (entities.Subcontractor, error)
	ListSubcontractors(ctx context.Context) ([]entities.Subcontractor, error)
}

type CreateSubcontractorInput struct {
	SubName      string
	Address      string
	City         string
	State        string
	Zip          string
	ContactEmail string
	Phone        string
}

type VendorUseCase struct {
	vendorRepo interfaces.IVendorRepository
	subRepo    interfaces.ISubcontractorRepository
	locks      *identifier.ScopeLocks
	now        func() time.Time
}

var _ IVendorUseCase = (*VendorUseCase)(nil)

func NewVendorUseCase(vendorRepo interfaces.IVendorRepository, subRepo interfaces.ISubcontractorRepository, locks *identifier.ScopeLocks) *VendorUseCase {
	return &VendorUseCase{vendorRepo: vendorRepo, subRepo: subRepo, locks: locks, now: time.Now}
}

func (u *VendorUseCase) CreateVendor(ctx context.Context, vendorName, actingUser string) (entities.Vendor, error) {
	actingUser = strings.TrimSpace(actingUser)
	if actingUser == "" {
		return entities.Vendor{}, ErrMissingActingUser
	}
	vendorName = strings.TrimSpace(vendorName)
	if vendorName == "" {
		return entities.Vendor{}, ErrInvalidVendorName
	}

	for attempt := 1; attempt <= maxAllocationAttempts; attempt++ {
		unlock := u.locks.Lock("vendors")
		created, err := func() (entities.Vendor, error) {
			defer unlock()
			ids, err := u.vendorRepo.ListIDs(ctx)
			if err != nil {
				return entities.Vendor{}, err
			}
			v := entities.Vendor{
				VendorID:   identifier.NextVendorID(ids),
				VendorName: vendorName,
				Status:     "Active",
				CreatedOn:  u.now().UTC(),
				CreatedBy:  actingUser,
			}
			return u.vendorRepo.Create(ctx, v)
		}()
		if errors.Is(err, interfaces.ErrDuplicateID) {
			log.Printf("[vendor][usecase] id collision on attempt %d, rescanning", attempt)
			continue
		}
		if err != nil {
			return entities.Vendor{}, err
		}
		return created, nil
	}
	return entities.Vendor{}, ErrAllocationExhausted
}

func (u *VendorUseCase) ListVendors(ctx context.Context) ([]entities.Vendor, error) {
	return u.vendorRepo.List(ctx)
}

func (u *VendorUseCase) CreateSubcontractor(ctx context.Context, input CreateSubcontractorInput, actingUser string) (entities.Subcontractor, error) {
	actingUser = strings.TrimSpace(actingUser)
	if actingUser == "" {
		return entities.Subcontractor{}, ErrMissingActingUser
	}
	if strings.TrimSpace(input.SubName) == "" {
		return entities.Subcontractor{}, ErrInvalidSubName
	}

	for attempt := 1; attempt <= maxAllocationAttempts; attempt++ {
		unlock := u.locks.Lock("subcontractors")
		created, err := func() (entities.Subcontractor, error) {
			defer unlock()
			ids, err := u.subRepo.ListIDs(ctx)
			if err != nil {
				return entities.Subcontractor{}, err
			}
			s := entities.Subcontractor{
				SubID:        identifier.NextSubcontractorID(ids),
				SubName:      strings.TrimSpace(input.SubName),
				Address:      input.Address,
				City:         input.City,
				State:        input.State,
				Zip:          input.Zip,
				ContactEmail: input.ContactEmail,
				Phone:        input.Phone,
			}
			return u.subRepo.Create(ctx, s)
		}()
		if errors.Is(err, interfaces.ErrDuplicateID) {
			log.Printf("[subcontractor][usecase] id collision on attempt %d, rescanning", attempt)
			continue
		}
		if err != nil {
			return entities.Subcontractor{}, err
		}
		return created, nil
	}
	return entities.Subcontractor{}, ErrAllocationExhausted
}

func (u *VendorUseCase) ListSubcontractors(ctx context.Context) ([]entities.Subcontractor, error) {
	return u.subRepo.List(ctx)
}
