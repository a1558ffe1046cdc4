package order

import "github.com/shopspring/decimal"

// fillTotals derives the payment subtotal and total from the order lines
// when the caller left them at zero. Line amounts are summed with decimal
// arithmetic so that cent values survive the float round-trip.
func fillTotals(p *Payment, items []Item) {
	if len(items) == 0 {
		return
	}

	if p.Subtotal == 0 {
		subtotal := decimal.Zero
		for _, it := range items {
			line := decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Quantity)))
			subtotal = subtotal.Add(line)
		}
		p.Subtotal = subtotal.InexactFloat64()
	}

	if p.Total == 0 {
		total := decimal.NewFromFloat(p.Subtotal).
			Add(decimal.NewFromFloat(p.Shipping)).
			Add(decimal.NewFromFloat(p.Tax))
		p.Total = total.InexactFloat64()
	}
}
