package order

import "testing"

func TestFillTotals(t *testing.T) {
	tests := []struct {
		name         string
		payment      Payment
		items        []Item
		wantSubtotal float64
		wantTotal    float64
	}{
		{
			name: "derives subtotal and total from lines",
			items: []Item{
				{Name: "Milk", Quantity: 3, Price: 1.1},
				{Name: "Bread", Quantity: 2, Price: 2.5},
			},
			payment:      Payment{Shipping: 4.99, Tax: 0.5},
			wantSubtotal: 8.3,
			wantTotal:    13.79,
		},
		{
			name: "caller supplied totals are kept",
			items: []Item{
				{Name: "Milk", Quantity: 1, Price: 1.1},
			},
			payment:      Payment{Subtotal: 100, Total: 110, Tax: 10},
			wantSubtotal: 100,
			wantTotal:    110,
		},
		{
			name:         "no items leaves payment untouched",
			items:        nil,
			payment:      Payment{Shipping: 5},
			wantSubtotal: 0,
			wantTotal:    0,
		},
		{
			name: "subtotal kept but total derived",
			items: []Item{
				{Name: "Milk", Quantity: 1, Price: 1.1},
			},
			payment:      Payment{Subtotal: 50, Shipping: 10, Tax: 5},
			wantSubtotal: 50,
			wantTotal:    65,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.payment
			fillTotals(&p, tt.items)
			if p.Subtotal != tt.wantSubtotal {
				t.Errorf("Subtotal = %v, want %v", p.Subtotal, tt.wantSubtotal)
			}
			if p.Total != tt.wantTotal {
				t.Errorf("Total = %v, want %v", p.Total, tt.wantTotal)
			}
		})
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled} {
		if !validStatus(s) {
			t.Errorf("validStatus(%q) = false, want true", s)
		}
	}
	if validStatus("") || validStatus("returned") {
		t.Error("validStatus accepted an unknown value")
	}
}
