package services

import (
	"errors"
	"testing"

	"airsoft-manager-backend/internal/models"

	"github.com/google/uuid"
)

func newCatalogFixture() (*CatalogService, *fakeRegRepo) {
	regRepo := &fakeRegRepo{}
	svc := NewCatalogService(&fakePartnerRepo{}, &fakePaymentTypeRepo{}, &fakeTagRepo{}, regRepo)
	return svc, regRepo
}

func TestCreatePartnerDuplicateName(t *testing.T) {
	svc, _ := newCatalogFixture()

	if _, err := svc.CreatePartner("Bravo Squad", true); err != nil {
		t.Fatalf("CreatePartner() error = %v", err)
	}
	if _, err := svc.CreatePartner("Bravo Squad", true); !errors.Is(err, ErrConflict) {
		t.Errorf("duplicate partner error = %v, want ErrConflict", err)
	}
}

func TestUpdatePartnerRename(t *testing.T) {
	svc, _ := newCatalogFixture()

	p, _ := svc.CreatePartner("Bravo Squad", true)
	other, _ := svc.CreatePartner("Delta Crew", true)

	// Renaming onto an existing name is blocked.
	name := "Delta Crew"
	if _, err := svc.UpdatePartner(p.ID.String(), &name, nil); !errors.Is(err, ErrConflict) {
		t.Errorf("rename onto taken name error = %v, want ErrConflict", err)
	}

	// Re-saving under its own name is fine.
	own := "Delta Crew"
	if _, err := svc.UpdatePartner(other.ID.String(), &own, nil); err != nil {
		t.Errorf("re-saving own name error = %v", err)
	}
}

func TestDeletePaymentTypeInUse(t *testing.T) {
	svc, regRepo := newCatalogFixture()

	pt, err := svc.CreatePaymentType("Cash", true, true)
	if err != nil {
		t.Fatalf("CreatePaymentType() error = %v", err)
	}

	regRepo.regs = append(regRepo.regs, &models.Registration{
		ID:            uuid.New(),
		PaymentTypeID: &pt.ID,
	})

	if err := svc.DeletePaymentType(pt.ID.String()); !errors.Is(err, ErrConflict) {
		t.Errorf("delete in-use payment type error = %v, want ErrConflict", err)
	}

	// After the reference goes away the delete succeeds.
	regRepo.regs = nil
	if err := svc.DeletePaymentType(pt.ID.String()); err != nil {
		t.Errorf("delete unused payment type error = %v", err)
	}
}

func TestDeleteTagInUse(t *testing.T) {
	svc, regRepo := newCatalogFixture()

	tag, err := svc.CreateTag("T-07", true)
	if err != nil {
		t.Fatalf("CreateTag() error = %v", err)
	}
	if !tag.IsAvailable {
		t.Error("new tag must start available")
	}

	regRepo.regs = append(regRepo.regs, &models.Registration{
		ID:    uuid.New(),
		TagID: &tag.ID,
	})

	if err := svc.DeleteTag(tag.ID.String()); !errors.Is(err, ErrConflict) {
		t.Errorf("delete assigned tag error = %v, want ErrConflict", err)
	}
}

func TestCreateTagDuplicateNumber(t *testing.T) {
	svc, _ := newCatalogFixture()

	if _, err := svc.CreateTag("T-01", true); err != nil {
		t.Fatalf("CreateTag() error = %v", err)
	}
	if _, err := svc.CreateTag("T-01", true); !errors.Is(err, ErrConflict) {
		t.Errorf("duplicate tag number error = %v, want ErrConflict", err)
	}
}

func TestUpdateMissingCatalogEntries(t *testing.T) {
	svc, _ := newCatalogFixture()
	missing := uuid.New().String()

	if _, err := svc.UpdatePartner(missing, nil, nil); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdatePartner() error = %v, want ErrNotFound", err)
	}
	if _, err := svc.UpdatePaymentType(missing, nil, nil, nil); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdatePaymentType() error = %v, want ErrNotFound", err)
	}
	if _, err := svc.UpdateTag(missing, nil, nil); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateTag() error = %v, want ErrNotFound", err)
	}
}
