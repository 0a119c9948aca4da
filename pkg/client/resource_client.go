// Copyright (C) 2025 OpenPayments Labs
//
// This file is part of openpayments-go.
//
// openpayments-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// openpayments-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with openpayments-go.  If not, see <https://www.gnu.org/licenses/>.

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/openpayments-labs/openpayments-go/pkg/protocol"
)

// ResourceClient performs token-authorized operations on payment resources.
//
// Every request carries the access token obtained from a grant negotiation as
// an Authorization: GNAP bearer header. A 401 response surfaces as
// protocol.ErrTokenExpired; the caller should re-run grant negotiation and
// construct a new ResourceClient with the fresh token. No request is retried
// internally.
type ResourceClient struct {
	resourceServerURL string
	token             string
	httpClient        *http.Client
}

// NewResourceClient creates a ResourceClient for the given Resource Server
// and access token. If httpClient is nil, http.DefaultClient is used.
func NewResourceClient(resourceServerURL, accessToken string, httpClient *http.Client) *ResourceClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &ResourceClient{
		resourceServerURL: strings.TrimSuffix(resourceServerURL, "/"),
		token:             accessToken,
		httpClient:        httpClient,
	}
}

// IncomingPaymentOptions are the optional fields of an incoming payment
type IncomingPaymentOptions struct {
	// ExpiresAt is when the incoming payment stops accepting funds
	ExpiresAt time.Time

	// Metadata is attached verbatim to the payment resource
	Metadata map[string]any
}

// CreateIncomingPayment creates an incoming payment on the receiving wallet.
// opts may be nil.
func (c *ResourceClient) CreateIncomingPayment(ctx context.Context, walletAddress string, incomingAmount *protocol.Amount, opts *IncomingPaymentOptions) (*protocol.IncomingPayment, error) {
	payload := protocol.CreateIncomingPaymentRequest{
		WalletAddress:  walletAddress,
		IncomingAmount: incomingAmount,
	}
	if opts != nil {
		if !opts.ExpiresAt.IsZero() {
			payload.ExpiresAt = opts.ExpiresAt.UTC().Format(time.RFC3339)
		}
		payload.Metadata = opts.Metadata
	}

	var payment protocol.IncomingPayment
	if err := c.post(ctx, c.resourceServerURL+"/incoming-payments", payload, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

// CreateOutgoingPayment creates an outgoing payment on the sending wallet
// from a previously created quote. metadata may be nil.
//
// Outgoing payments require an interactively granted token: the end user
// must have consented before funds leave their account.
func (c *ResourceClient) CreateOutgoingPayment(ctx context.Context, walletAddress, quoteID string, metadata map[string]any) (*protocol.OutgoingPayment, error) {
	payload := protocol.CreateOutgoingPaymentRequest{
		WalletAddress: walletAddress,
		QuoteID:       quoteID,
		Metadata:      metadata,
	}

	var payment protocol.OutgoingPayment
	if err := c.post(ctx, c.resourceServerURL+"/outgoing-payments", payload, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

// GetIncomingPayment reads an incoming payment by its resource URL.
// resourceURL must be the full identifier returned at creation, used
// verbatim.
func (c *ResourceClient) GetIncomingPayment(ctx context.Context, resourceURL string) (*protocol.IncomingPayment, error) {
	var payment protocol.IncomingPayment
	if err := c.get(ctx, resourceURL, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

// GetOutgoingPayment reads an outgoing payment by its resource URL.
// resourceURL must be the full identifier returned at creation, used
// verbatim.
func (c *ResourceClient) GetOutgoingPayment(ctx context.Context, resourceURL string) (*protocol.OutgoingPayment, error) {
	var payment protocol.OutgoingPayment
	if err := c.get(ctx, resourceURL, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (c *ResourceClient) post(ctx context.Context, url string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create POST request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *ResourceClient) get(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create GET request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	return c.do(req, out)
}

func (c *ResourceClient) do(req *http.Request, out any) error {
	req.Header.Set("Authorization", "GNAP "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}

	body, err := c.readResource(resp)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &protocol.ProtocolError{Message: "malformed resource response: " + err.Error()}
	}

	return nil
}

// readResource drains the response body, mapping 401 to ErrTokenExpired and
// any other non-2xx status to a protocol.HTTPError
func (c *ResourceClient) readResource(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, fmt.Errorf("resource request rejected with status 401: %w", protocol.ErrTokenExpired)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &protocol.HTTPError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}
