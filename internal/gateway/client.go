package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dakbox/courier/internal/service/paymentservice"
	"github.com/dakbox/courier/pkg/clients"
	"github.com/google/uuid"
)

// IntentStatusSucceeded is the gateway's terminal status for a captured card
// payment.
const IntentStatusSucceeded = "succeeded"

type intentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
}

// Client talks to the card payment gateway's payment-intent API.
type Client struct {
	address string
	key     string
	client  clients.HTTPClientI
}

func NewClient(address, key string, client clients.HTTPClientI) *Client {
	return &Client{
		address: address,
		key:     key,
		client:  client,
	}
}

func (c *Client) authHeader() http.Header {
	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+c.key)
	return headers
}

func (c *Client) CreateIntent(ctx context.Context, amount int64, currency string) (*paymentservice.Intent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amount, 10))
	form.Set("currency", currency)
	form.Set("payment_method_types[]", "card")

	headers := c.authHeader()
	// A retried create must not open a second intent for the same booking.
	headers.Set("Idempotency-Key", uuid.NewString())

	statusCode, respBody, err := c.client.PostForm(c.address+"/v1/payment_intents", headers, form.Encode())
	if err != nil {
		return nil, fmt.Errorf("gateway request failed: %w", err)
	}
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("gateway returned status %d", statusCode)
	}

	var resp intentResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse gateway response: %w", err)
	}
	return &paymentservice.Intent{
		ID:           resp.ID,
		ClientSecret: resp.ClientSecret,
		Status:       resp.Status,
	}, nil
}

func (c *Client) GetIntent(ctx context.Context, id string) (*paymentservice.Intent, error) {
	statusCode, respBody, _, err := c.client.Get(c.address+"/v1/payment_intents/"+id, c.authHeader())
	if err != nil {
		return nil, fmt.Errorf("gateway request failed: %w", err)
	}
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("gateway returned status %d", statusCode)
	}

	var resp intentResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse gateway response: %w", err)
	}
	return &paymentservice.Intent{
		ID:           resp.ID,
		ClientSecret: resp.ClientSecret,
		Status:       resp.Status,
	}, nil
}
