package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// CallRequest is the outbound call-placement payload.
type CallRequest struct {
	PhoneNumber    string       `json:"phoneNumber"`
	CallbackNumber string       `json:"callbackNumber"`
	Message        string       `json:"message"`
	ReservationID  string       `json:"reservationId"`
	Metadata       CallMetadata `json:"metadata"`
}

type CallMetadata struct {
	ReservationDate string `json:"reservationDate"`
	ReservationTime string `json:"reservationTime"`
	PartySize       int    `json:"partySize"`
	CustomerName    string `json:"customerName"`
}

// CallFluentClient talks to the AI calling service's call-placement API.
type CallFluentClient struct {
	baseURL        string
	apiKey         string
	callbackNumber string
	http           *http.Client
}

func NewCallFluentClient(baseURL, apiKey, callbackNumber string) *CallFluentClient {
	return &CallFluentClient{
		baseURL:        baseURL,
		apiKey:         apiKey,
		callbackNumber: callbackNumber,
		http:           &http.Client{Timeout: 10 * time.Second},
	}
}

// Configured reports whether the client has enough settings to place calls.
func (c *CallFluentClient) Configured() bool {
	return c != nil && c.baseURL != "" && c.apiKey != ""
}

func (c *CallFluentClient) CallbackNumber() string {
	return c.callbackNumber
}

// TriggerCall asks the service to place one call. The caller decides whether
// a failure matters; the confirmation path swallows it, the reminder
// endpoint surfaces it.
func (c *CallFluentClient) TriggerCall(ctx context.Context, req CallRequest) error {
	if !c.Configured() {
		return fmt.Errorf("callfluent is not configured")
	}

	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("encode call request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build call request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("callfluent request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("callfluent returned status %d", resp.StatusCode)
	}
	return nil
}

// TestConnection probes the configured endpoint without placing a call.
func (c *CallFluentClient) TestConnection(ctx context.Context) error {
	if !c.Configured() {
		return fmt.Errorf("callfluent is not configured")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return fmt.Errorf("build probe request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("callfluent unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return fmt.Errorf("callfluent returned status %d", resp.StatusCode)
	}
	return nil
}
