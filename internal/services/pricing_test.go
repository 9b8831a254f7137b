package services

import (
	"testing"

	"airsoft-manager-backend/internal/models"
)

func TestCalculatePrice(t *testing.T) {
	settings := &models.PricingSettings{
		PartnerAssociationPrice: 5,
		OtherAssociationPrice:   7,
		FreelancePrice:          9,
	}
	partners := []models.PartnerAssociation{
		{Name: "Bravo Squad", IsActive: true},
		{Name: "Old Guard", IsActive: false},
	}

	tests := []struct {
		name string
		reg  models.Registration
		want int
	}{
		{
			name: "invited plays free",
			reg: models.Registration{
				AttendanceType:  models.AttendanceInvited,
				HasAssociation:  true,
				AssociationName: "Bravo Squad",
			},
			want: 0,
		},
		{
			name: "no association pays freelance",
			reg: models.Registration{
				AttendanceType: models.AttendanceFullDay,
				HasAssociation: false,
			},
			want: 9,
		},
		{
			name: "blank association name pays freelance",
			reg: models.Registration{
				AttendanceType:  models.AttendanceFullDay,
				HasAssociation:  true,
				AssociationName: "   ",
			},
			want: 9,
		},
		{
			name: "partner match is case-insensitive",
			reg: models.Registration{
				AttendanceType:  models.AttendanceMorning,
				HasAssociation:  true,
				AssociationName: "bravo squad",
			},
			want: 5,
		},
		{
			name: "partner name with surrounding spaces",
			reg: models.Registration{
				AttendanceType:  models.AttendanceFullDay,
				HasAssociation:  true,
				AssociationName: " Bravo Squad ",
			},
			want: 5,
		},
		{
			name: "inactive partner pays the other tier",
			reg: models.Registration{
				AttendanceType:  models.AttendanceFullDay,
				HasAssociation:  true,
				AssociationName: "Old Guard",
			},
			want: 7,
		},
		{
			name: "unknown association pays the other tier",
			reg: models.Registration{
				AttendanceType:  models.AttendanceFullDay,
				HasAssociation:  true,
				AssociationName: "Visitors FC",
			},
			want: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculatePrice(&tt.reg, settings, partners)
			if got != tt.want {
				t.Errorf("CalculatePrice() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCalculatePriceNoPartners(t *testing.T) {
	settings := &models.PricingSettings{
		PartnerAssociationPrice: 5,
		OtherAssociationPrice:   7,
		FreelancePrice:          9,
	}

	reg := models.Registration{
		AttendanceType:  models.AttendanceFullDay,
		HasAssociation:  true,
		AssociationName: "Anyone",
	}

	if got := CalculatePrice(&reg, settings, nil); got != 7 {
		t.Errorf("CalculatePrice() with empty registry = %d, want 7", got)
	}
}

func TestPricingServiceLoadInputsFiltersInactive(t *testing.T) {
	partnerRepo := &fakePartnerRepo{partners: []*models.PartnerAssociation{
		{Name: "Active Club", IsActive: true},
		{Name: "Dormant Club", IsActive: false},
	}}
	svc := NewPricingService(&fakeSettingsRepo{}, partnerRepo)

	settings, partners, err := svc.LoadInputs()
	if err != nil {
		t.Fatalf("LoadInputs() error = %v", err)
	}
	if settings.FreelancePrice != 9 {
		t.Errorf("default freelance price = %d, want 9", settings.FreelancePrice)
	}
	if len(partners) != 1 || partners[0].Name != "Active Club" {
		t.Errorf("LoadInputs() partners = %v, want only the active club", partners)
	}
}
