package engine

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/vjloable/fredelicacies-pos-sub000/models"
)

var (
	ErrEmptyCart = errors.New("cart is empty")
	ErrNoCashier = errors.New("cashier is required")
)

// StockDelta is one stock-decrement instruction for the commit transaction.
// Delta is negative for a sale.
type StockDelta struct {
	ItemID string
	Delta  int
}

// FinalizeOptions carries the checkout context the snapshot records.
type FinalizeOptions struct {
	OrderType   models.OrderType
	CashierID   string
	CashierName string
	Now         time.Time
}

// Finalize snapshots the cart into an immutable order plus the stock deltas
// the commit must apply atomically. It never touches the store itself and
// does not re-verify stock; the commit transaction owns that check. The cart
// is left untouched so a rejected commit can be retried after a refresh.
//
// Per-line profit is (price - cost) x quantity with cost defaulting to 0, so
// an item without cost data reports its full price as profit. That is a
// bookkeeping default, not a real margin.
func Finalize(c *Cart, opts FinalizeOptions) (models.Order, []StockDelta, error) {
	if c == nil || c.Empty() {
		return models.Order{}, nil, ErrEmptyCart
	}
	if opts.CashierID == "" {
		return models.Order{}, nil, ErrNoCashier
	}
	if opts.OrderType == "" {
		opts.OrderType = models.OrderTypeDineIn
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	subtotal := c.Subtotal()
	discountAmount, _ := c.DiscountAmount()
	discountCode := ""
	if d := c.Discount(); d != nil {
		discountCode = d.Code
	}

	var (
		lines       []models.OrderLine
		deltas      []StockDelta
		totalProfit float64
		itemCount   int
	)
	for _, ln := range c.lines {
		profit := (ln.UnitPrice - ln.UnitCost) * float64(ln.Quantity)
		lines = append(lines, models.OrderLine{
			RefID:     ln.ID,
			Kind:      string(ln.Kind),
			Name:      ln.Name,
			UnitPrice: ln.UnitPrice,
			UnitCost:  ln.UnitCost,
			Quantity:  ln.Quantity,
			Subtotal:  ln.UnitPrice * float64(ln.Quantity),
			Profit:    profit,
		})
		totalProfit += profit
		itemCount += ln.Quantity

		if ln.Kind == LineItem {
			deltas = append(deltas, StockDelta{ItemID: ln.ID, Delta: -ln.Quantity})
		} else {
			for _, comp := range ln.Components {
				deltas = append(deltas, StockDelta{
					ItemID: comp.ItemID,
					Delta:  -ln.Quantity * comp.Quantity,
				})
			}
		}
	}

	order := models.Order{
		ID:             uuid.NewString(),
		OrderRef:       now.Format("20060102150405") + "-" + uuid.NewString(),
		Lines:          lines,
		Subtotal:       subtotal,
		DiscountCode:   discountCode,
		DiscountAmount: discountAmount,
		Total:          c.Total(),
		TotalProfit:    totalProfit,
		ItemCount:      itemCount,
		LineCount:      len(lines),
		OrderType:      opts.OrderType,
		CashierID:      opts.CashierID,
		CashierName:    opts.CashierName,
		CreatedAt:      now,
	}
	return order, deltas, nil
}
