package gateway

import (
	"context"
	"net/http"

	"github.com/glowcare/clinic/config"

	"github.com/sirupsen/logrus"
)

// PaymentClient talks to the payment service's REST API.
type PaymentClient struct {
	*client
}

func NewPaymentClient(baseURL string, cfg config.ClientConfig, log *logrus.Logger) *PaymentClient {
	return &PaymentClient{client: newClient(baseURL, cfg, log)}
}

// CreatePayment forwards a raw payment body to POST /payments and
// relays the upstream response unchanged.
func (c *PaymentClient) CreatePayment(ctx context.Context, body []byte) (*Result, error) {
	return c.do(ctx, http.MethodPost, "/payments", body)
}
