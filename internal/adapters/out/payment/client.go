// Package payment provides the HTTP client for the external payment
// collaborator. The engine only asks one question of it: has this payment
// intent been confirmed.
package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"commerce/internal/pkg/errs"
)

const defaultRequestTimeout = 5 * time.Second

// Client implements PaymentProvider against the payment service's REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a payment client for the given base URL.
func NewClient(baseURL string) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("baseURL", err)
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
	}, nil
}

type paymentIntentResponse struct {
	ID        string `json:"id"`
	Confirmed bool   `json:"confirmed"`
}

// IsConfirmed reports whether the payment intent has been confirmed by the
// payment service. An unknown intent is reported as not confirmed rather
// than as an error, since the intent may not have propagated yet.
func (c *Client) IsConfirmed(ctx context.Context, paymentIntentID string) (bool, error) {
	if paymentIntentID == "" {
		return false, errs.NewValueIsRequiredError("paymentIntentID")
	}

	endpoint := fmt.Sprintf("%s/payment-intents/%s", c.baseURL, url.PathEscape(paymentIntentID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return false, nil
	case resp.StatusCode != http.StatusOK:
		return false, fmt.Errorf("payment service returned status %d", resp.StatusCode)
	}

	var intent paymentIntentResponse
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return false, err
	}

	return intent.Confirmed, nil
}
