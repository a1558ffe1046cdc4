package offer

import (
	"context"
	"strings"
	"testing"
)

func TestCreateOfferValidation(t *testing.T) {
	m := &OfferModule{}
	twenty := 20.0

	valid := func() CreateOfferRequest {
		return CreateOfferRequest{
			Title:         "Summer Sale",
			DiscountType:  DiscountPercentage,
			DiscountValue: &twenty,
			StartDate:     "2024-06-01",
			EndDate:       "2024-06-30",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*CreateOfferRequest)
		wantMsg string
	}{
		{
			name:    "missing title",
			mutate:  func(r *CreateOfferRequest) { r.Title = "" },
			wantMsg: "title is required",
		},
		{
			name:    "missing discount type",
			mutate:  func(r *CreateOfferRequest) { r.DiscountType = "" },
			wantMsg: "discountType is required",
		},
		{
			name:    "unknown discount type",
			mutate:  func(r *CreateOfferRequest) { r.DiscountType = "bogo" },
			wantMsg: "discountType must be percentage or fixed",
		},
		{
			name:    "missing discount value",
			mutate:  func(r *CreateOfferRequest) { r.DiscountValue = nil },
			wantMsg: "discountValue is required",
		},
		{
			name:    "missing start date",
			mutate:  func(r *CreateOfferRequest) { r.StartDate = "" },
			wantMsg: "startDate is required",
		},
		{
			name:    "missing end date",
			mutate:  func(r *CreateOfferRequest) { r.EndDate = "" },
			wantMsg: "endDate is required",
		},
		{
			name:    "unknown status",
			mutate:  func(r *CreateOfferRequest) { r.Status = "paused" },
			wantMsg: "status must be active, inactive or expired",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(&req)
			_, err := m.createOffer(context.Background(), req, nil)
			if err == nil {
				t.Fatal("createOffer() want error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("createOffer() error = %v, want %q", err, tt.wantMsg)
			}
		})
	}
}

func TestUpdateOfferValidation(t *testing.T) {
	m := &OfferModule{}
	bogus := "buy-one-get-one"

	_, err := m.updateOffer(context.Background(), UpdateOfferRequest{ID: "ignored", DiscountType: &bogus}, nil)
	if err == nil {
		t.Fatal("updateOffer() with bad discountType, want error")
	}
	if !strings.Contains(err.Error(), "discountType must be") {
		t.Errorf("updateOffer() error = %v, want enum message", err)
	}
}

func TestValidEnums(t *testing.T) {
	for _, s := range []string{DiscountPercentage, DiscountFixed} {
		if !validDiscountType(s) {
			t.Errorf("validDiscountType(%q) = false, want true", s)
		}
	}
	if validDiscountType("") || validDiscountType("bogo") {
		t.Error("validDiscountType accepted an unknown value")
	}

	for _, s := range []string{StatusActive, StatusInactive, StatusExpired} {
		if !validStatus(s) {
			t.Errorf("validStatus(%q) = false, want true", s)
		}
	}
	if validStatus("") || validStatus("paused") {
		t.Error("validStatus accepted an unknown value")
	}
}
