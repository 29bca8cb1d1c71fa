package notify

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"github.com/vjloable/fredelicacies-pos-sub000/metrics"
	"github.com/vjloable/fredelicacies-pos-sub000/models"
)

// Webhook POSTs committed orders to an external endpoint (kitchen display,
// accounting bridge). Deliveries are best effort and run after the commit
// transaction; a failure never unwinds an order. The circuit breaker keeps a
// dead endpoint from slowing down the register.
type Webhook struct {
	url     string
	client  *resty.Client
	breaker *gobreaker.CircuitBreaker
}

// NewWebhook returns nil when no URL is configured; callers treat a nil
// webhook as disabled.
func NewWebhook(url string) *Webhook {
	if url == "" {
		return nil
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "order-webhook",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.WithFields(log.Fields{
				"circuit": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Info("Order webhook circuit state changed")
		},
	})

	return &Webhook{
		url: url,
		client: resty.New().
			SetTimeout(5 * time.Second).
			SetRetryCount(2).
			SetRetryWaitTime(200 * time.Millisecond),
		breaker: cb,
	}
}

// Deliver sends one order. Safe to call on a nil receiver.
func (w *Webhook) Deliver(order models.Order) {
	if w == nil {
		return
	}

	_, err := w.breaker.Execute(func() (interface{}, error) {
		resp, err := w.client.R().
			SetHeader("Content-Type", "application/json").
			SetBody(order).
			Post(w.url)
		if err != nil {
			return nil, err
		}
		if resp.IsError() {
			return nil, errHTTPStatus{resp.StatusCode()}
		}
		return nil, nil
	})
	if err != nil {
		metrics.WebhookFailures.Inc()
		log.WithError(err).WithField("order_ref", order.OrderRef).Warn("Order webhook delivery failed")
	}
}

type errHTTPStatus struct{ code int }

func (e errHTTPStatus) Error() string {
	return fmt.Sprintf("webhook returned status %d", e.code)
}
