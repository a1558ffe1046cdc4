package unit

import (
	"context"
	"strings"
	"testing"
)

func TestCreateUnitValidation(t *testing.T) {
	m := &UnitModule{}

	tests := []struct {
		name    string
		req     CreateUnitRequest
		wantMsg string
	}{
		{
			name:    "missing name",
			req:     CreateUnitRequest{ShortName: "kg"},
			wantMsg: "name is required",
		},
		{
			name:    "missing short name",
			req:     CreateUnitRequest{Name: "Kilogram"},
			wantMsg: "shortName is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.createUnit(context.Background(), tt.req, nil)
			if err == nil {
				t.Fatal("createUnit() want error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("createUnit() error = %v, want %q", err, tt.wantMsg)
			}
		})
	}
}

func TestUpdateUnitValidation(t *testing.T) {
	m := &UnitModule{}
	empty := ""

	_, err := m.updateUnit(context.Background(), UpdateUnitRequest{ID: "ignored", ShortName: &empty}, nil)
	if err == nil {
		t.Fatal("updateUnit() with empty shortName, want error")
	}
	if !strings.Contains(err.Error(), "shortName is required") {
		t.Errorf("updateUnit() error = %v, want shortName is required", err)
	}
}
