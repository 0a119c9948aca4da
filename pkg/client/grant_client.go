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
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/openpayments-labs/openpayments-go/pkg/protocol"
	"github.com/openpayments-labs/openpayments-go/pkg/signer"
)

// GrantClient negotiates authorization grants with an Authorization Server.
//
// Each negotiation is a single logical attempt: a signed grant request is
// sent, and the response either grants an access token, requires out-of-band
// interaction, or fails. A GrantClient may be reused sequentially for
// independent negotiations. No response is retried automatically.
type GrantClient struct {
	authServerURL string
	client        *SigningClient
}

// NewGrantClient creates a GrantClient for the given Authorization Server.
// If httpClient is nil, http.DefaultClient is used.
func NewGrantClient(authServerURL string, s signer.Signer, httpClient *http.Client) *GrantClient {
	return &GrantClient{
		authServerURL: strings.TrimSuffix(authServerURL, "/"),
		client:        NewSigningClient(s, httpClient),
	}
}

// RequestGrantNonInteractive requests a grant with no user present, for
// automated service-to-service access. The server must either grant
// immediately or refuse: a response carrying an interaction handle fails
// with protocol.ErrUnexpectedInteraction, and the caller should switch to
// RequestGrantInteractive.
func (c *GrantClient) RequestGrantNonInteractive(ctx context.Context, accessRights []protocol.AccessRight, clientID string) (*protocol.GrantResponse, error) {
	grant := &protocol.GrantRequest{
		AccessToken: accessRights,
		Client:      clientID,
	}

	resp, err := c.send(ctx, grant)
	if err != nil {
		return nil, err
	}

	if resp.RequiresInteraction() {
		return nil, protocol.ErrUnexpectedInteraction
	}

	if err := checkGranted(resp); err != nil {
		return nil, err
	}

	return resp, nil
}

// RequestGrantInteractive requests a grant that may require explicit end-user
// consent. The request carries a redirect finish descriptor with a fresh
// random nonce binding the eventual redirect back to this request.
//
// The response either carries an access token (the server granted without
// friction) or an interaction handle: surface Interact.Redirect to the end
// user through an external channel, then finish with ContinueGrant. This
// client does not poll or wait.
func (c *GrantClient) RequestGrantInteractive(ctx context.Context, accessRights []protocol.AccessRight, clientID, redirectURI string) (*protocol.GrantResponse, error) {
	if redirectURI == "" {
		return nil, protocol.ErrInvalidGrantRequest{Message: "redirect URI is required for an interactive grant"}
	}

	nonce, err := generateNonce()
	if err != nil {
		return nil, fmt.Errorf("failed to generate interaction nonce: %w", err)
	}

	grant := &protocol.GrantRequest{
		AccessToken: accessRights,
		Client:      clientID,
		Interact: &protocol.InteractRequest{
			Start: []string{"redirect"},
			Finish: &protocol.InteractFinish{
				Method: "redirect",
				URI:    redirectURI,
				Nonce:  nonce,
			},
		},
	}

	resp, err := c.send(ctx, grant)
	if err != nil {
		return nil, err
	}

	if resp.RequiresInteraction() {
		return resp, nil
	}

	if err := checkGranted(resp); err != nil {
		return nil, err
	}

	return resp, nil
}

// ContinueGrant finishes a pending interactive grant after the end user has
// consented out of band. The continuation is a bearer-style request carrying
// the continuation token; no fresh signature is applied.
//
// Fails with protocol.ErrInvalidContinuation when invoked without the
// continuation reference from a prior pending response.
func (c *GrantClient) ContinueGrant(ctx context.Context, continueURI, continueToken string) (*protocol.GrantResponse, error) {
	if continueURI == "" || continueToken == "" {
		return nil, protocol.ErrInvalidContinuation
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, continueURI, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create continuation request: %w", err)
	}
	req.Header.Set("Authorization", "GNAP "+continueToken)
	req.Header.Set("Content-Type", "application/json")

	httpResp, err := c.client.HTTPClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}

	resp, err := decodeGrantResponse(httpResp)
	if err != nil {
		return nil, err
	}

	if err := checkGranted(resp); err != nil {
		return nil, err
	}

	return resp, nil
}

// send validates, signs, and transmits a grant request, then decodes the
// grant response
func (c *GrantClient) send(ctx context.Context, grant *protocol.GrantRequest) (*protocol.GrantResponse, error) {
	if err := grant.Validate(); err != nil {
		return nil, err
	}

	body, err := json.Marshal(grant)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal grant request: %w", err)
	}

	httpResp, err := c.client.Post(ctx, c.authServerURL+"/", body)
	if err != nil {
		return nil, err
	}

	return decodeGrantResponse(httpResp)
}

// decodeGrantResponse checks the HTTP status and unmarshals the grant
// response body
func decodeGrantResponse(httpResp *http.Response) (*protocol.GrantResponse, error) {
	body, err := readResponse(httpResp)
	if err != nil {
		return nil, err
	}

	var resp protocol.GrantResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &protocol.ProtocolError{Message: "malformed grant response: " + err.Error()}
	}

	return &resp, nil
}

// checkGranted enforces the terminal-state invariants of a grant response:
// a token must be present and its value must be non-empty. A missing token
// is never substituted with a placeholder.
func checkGranted(resp *protocol.GrantResponse) error {
	if resp.AccessToken == nil {
		return &protocol.ProtocolError{Message: "grant response carries neither an access token nor an interaction handle"}
	}
	if resp.AccessToken.Value == "" {
		return &protocol.ProtocolError{Message: "grant response reports an access token with an empty value"}
	}
	return nil
}

// generateNonce returns 32 bytes of cryptographically random data in
// URL-safe base64 without padding
func generateNonce() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
