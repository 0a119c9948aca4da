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
	"fmt"
	"net/http"

	"github.com/openpayments-labs/openpayments-go/pkg/signer"
)

// SigningClient is an HTTP client that automatically signs outgoing requests
// with the client's Ed25519 key
type SigningClient struct {
	signer     signer.Signer
	httpClient *http.Client
}

// NewSigningClient creates a new signing HTTP client.
// If httpClient is nil, http.DefaultClient is used.
func NewSigningClient(s signer.Signer, httpClient *http.Client) *SigningClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &SigningClient{
		signer:     s,
		httpClient: httpClient,
	}
}

// Do executes an HTTP request with a fresh signature
func (c *SigningClient) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	// Check context first
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if err := c.signer.SignRequest(ctx, req); err != nil {
		return nil, fmt.Errorf("failed to sign request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}

	return resp, nil
}

// Post sends a signed POST request with a JSON body
func (c *SigningClient) Post(ctx context.Context, url string, body []byte) (*http.Response, error) {
	if body == nil {
		body = []byte{}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create POST request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	return c.Do(ctx, req)
}

// Get sends a signed GET request
func (c *SigningClient) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create GET request: %w", err)
	}

	return c.Do(ctx, req)
}

// Signer returns the underlying request signer
func (c *SigningClient) Signer() signer.Signer {
	return c.signer
}

// HTTPClient returns the underlying HTTP client, for requests that must not
// carry a signature (bearer-token continuation, public wallet lookup)
func (c *SigningClient) HTTPClient() *http.Client {
	return c.httpClient
}
