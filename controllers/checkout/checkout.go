package checkoutcontroller

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/vjloable/fredelicacies-pos-sub000/engine"
	"github.com/vjloable/fredelicacies-pos-sub000/metrics"
	"github.com/vjloable/fredelicacies-pos-sub000/models"
	"github.com/vjloable/fredelicacies-pos-sub000/notify"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// -------- Request Structs --------

type SelectionPick struct {
	ItemID   string `json:"item_id" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
}

type CartLineInput struct {
	Kind      string          `json:"kind" binding:"required,oneof=item bundle"`
	ID        string          `json:"id" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,gt=0"`
	Selection []SelectionPick `json:"selection"` // custom bundles only
}

type CheckoutRequest struct {
	Lines        []CartLineInput `json:"lines" binding:"required,min=1,dive"`
	DiscountCode string          `json:"discount_code"`
	OrderType    string          `json:"order_type" binding:"required"`
}

// -------- Helpers --------

var (
	errInsufficientStock = errors.New("insufficient stock")
	errUnknownRef        = errors.New("unknown reference")
	errInvalidCart       = errors.New("invalid cart")
)

// Map string to OrderType
func mapOrderType(orderType string) (models.OrderType, error) {
	switch strings.ToUpper(strings.TrimSpace(orderType)) {
	case string(models.OrderTypeDineIn):
		return models.OrderTypeDineIn, nil
	case string(models.OrderTypeTakeOut):
		return models.OrderTypeTakeOut, nil
	case string(models.OrderTypeDelivery):
		return models.OrderTypeDelivery, nil
	default:
		return "", errors.New("invalid order type")
	}
}

// buildCart replays the register's cart payload through the engine against
// live stock. The client already enforced ceilings interactively; replaying
// here means a stale client cannot sneak past them.
func buildCart(db *gorm.DB, req CheckoutRequest) (*engine.Cart, *engine.Catalog, error) {
	var items []models.Item
	if err := db.Find(&items).Error; err != nil {
		return nil, nil, err
	}
	catalog := engine.NewCatalog(items)
	cart := engine.NewCart()

	for _, line := range req.Lines {
		switch line.Kind {
		case "item":
			item, ok := catalog.Item(line.ID)
			if !ok {
				return nil, nil, fmt.Errorf("%w: item %s", errUnknownRef, line.ID)
			}
			for i := 0; i < line.Quantity; i++ {
				if !cart.AddItem(item, catalog) {
					return nil, nil, fmt.Errorf("%w for item %s", errInsufficientStock, item.Name)
				}
			}
		case "bundle":
			var bundle models.Bundle
			if err := db.Preload("Components").First(&bundle, "id = ?", line.ID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, nil, fmt.Errorf("%w: bundle %s", errUnknownRef, line.ID)
				}
				return nil, nil, err
			}
			if bundle.Status != models.BundleStatusActive {
				return nil, nil, fmt.Errorf("%w: bundle %s is inactive", errUnknownRef, bundle.Name)
			}
			if bundle.IsCustom {
				if err := addCustomLine(cart, catalog, bundle, line); err != nil {
					return nil, nil, err
				}
			} else {
				for i := 0; i < line.Quantity; i++ {
					added, err := cart.AddBundle(bundle, catalog)
					if err != nil {
						return nil, nil, err
					}
					if !added {
						return nil, nil, fmt.Errorf("%w for bundle %s", errInsufficientStock, bundle.Name)
					}
				}
			}
		}
	}
	return cart, catalog, nil
}

func addCustomLine(cart *engine.Cart, catalog *engine.Catalog, bundle models.Bundle, line CartLineInput) error {
	if len(line.Selection) == 0 {
		return fmt.Errorf("%w: custom bundle %s requires a selection", errInvalidCart, bundle.Name)
	}
	sel, err := engine.NewSelection(bundle)
	if err != nil {
		return fmt.Errorf("%w: %v", errInvalidCart, err)
	}
	for _, pick := range line.Selection {
		item, ok := catalog.Item(pick.ItemID)
		if !ok {
			return fmt.Errorf("%w: item %s", errUnknownRef, pick.ItemID)
		}
		for i := 0; i < pick.Quantity; i++ {
			if !sel.Increment(item) {
				return fmt.Errorf("%w for %s in bundle %s", errInsufficientStock, item.Name, bundle.Name)
			}
		}
	}
	components, unitCost, err := sel.Finalize()
	if err != nil {
		return err
	}
	lineID := cart.AddCustomBundle(bundle, components, unitCost, catalog)
	if line.Quantity > 1 && !cart.Adjust(lineID, line.Quantity-1, catalog) {
		return fmt.Errorf("%w for bundle %s", errInsufficientStock, bundle.Name)
	}
	return nil
}

func applyDiscount(db *gorm.DB, cart *engine.Cart, code string) (bool, error) {
	code = engine.NormalizeCode(code)
	if code == "" {
		return true, nil
	}
	var discount models.Discount
	if err := db.First(&discount, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	cart.ApplyDiscount(discount)
	return true, nil
}

// -------- Core Logic --------

// commitOrder applies the stock deltas and inserts the order in a single
// transaction: on any failure nothing persists. Items are locked in a stable
// order so two registers committing at once cannot deadlock, and stock is
// re-verified under the lock — the finalized deltas are a plan, not a
// guarantee.
func commitOrder(db *gorm.DB, order *models.Order, deltas []engine.StockDelta) error {
	decrements := make(map[string]int)
	for _, d := range deltas {
		decrements[d.ItemID] -= d.Delta
	}
	ids := make([]string, 0, len(decrements))
	for id := range decrements {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	levels := make(map[string]int, len(ids))
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, id := range ids {
			var item models.Item
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&item, "id = ?", id).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: item %s", errUnknownRef, id)
				}
				return err
			}
			if item.Stock < decrements[id] {
				return fmt.Errorf("%w for item %s", errInsufficientStock, item.Name)
			}
			item.Stock -= decrements[id]
			if err := tx.Save(&item).Error; err != nil {
				return err
			}
			levels[id] = item.Stock
		}
		return tx.Create(order).Error
	})
	if err != nil {
		return err
	}
	// Gauges only move once the decrements are durable; a rollback must not
	// leave them reporting stock that was never taken.
	publishInventoryLevels(levels)
	return nil
}

func publishInventoryLevels(levels map[string]int) {
	for id, stock := range levels {
		metrics.InventoryLevel.WithLabelValues(id).Set(float64(stock))
	}
}

// -------- Handlers --------

// POST /pos/checkout/quote
//
// Prices a cart without committing anything: line breakdown, subtotal,
// discount amount (with applicability) and total.
func Quote(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if _, err := mapOrderType(req.OrderType); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		cart, _, err := buildCart(db, req)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		known, err := applyDiscount(db, cart, req.DiscountCode)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up discount"})
			return
		}

		amount, applicable := cart.DiscountAmount()
		c.JSON(http.StatusOK, gin.H{
			"lines":               cart.Lines(),
			"subtotal":            cart.Subtotal(),
			"discount_amount":     amount,
			"discount_known":      known,
			"discount_applicable": applicable,
			"total":               cart.Total(),
		})
	}
}

// POST /pos/checkout
func Checkout(db *gorm.DB, hub *notify.Hub, webhook *notify.Webhook) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		orderType, err := mapOrderType(req.OrderType)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		cart, _, err := buildCart(db, req)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		known, err := applyDiscount(db, cart, req.DiscountCode)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up discount"})
			return
		}
		if !known {
			// An unrecognized code at quote time is informational; at commit
			// time it is refused so an order never silently loses its discount.
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown discount code"})
			return
		}

		order, deltas, err := engine.Finalize(cart, engine.FinalizeOptions{
			OrderType:   orderType,
			CashierID:   c.GetString("cashier_id"),
			CashierName: c.GetString("cashier_name"),
		})
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := commitOrder(db, &order, deltas); err != nil {
			// A commit-time shortfall means another register got there first.
			// Nothing persisted; the client refreshes stock and the cashier
			// re-confirms. No automatic retry.
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}

		metrics.OrdersTotal.WithLabelValues(string(order.OrderType)).Inc()
		metrics.OrderValue.Observe(order.Total)
		if order.DiscountCode != "" {
			metrics.DiscountedOrdersTotal.Inc()
		}
		log.WithFields(log.Fields{
			"order_ref": order.OrderRef,
			"total":     order.Total,
			"lines":     order.LineCount,
			"cashier":   order.CashierID,
		}).Info("Order committed")

		if hub != nil {
			hub.Broadcast(order)
		}
		go webhook.Deliver(order)

		c.JSON(http.StatusCreated, order)
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errInsufficientStock):
		return http.StatusConflict
	case errors.Is(err, errUnknownRef),
		errors.Is(err, errInvalidCart),
		errors.Is(err, engine.ErrSelectionIncomplete),
		errors.Is(err, engine.ErrCustomTemplate):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
