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
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/openpayments-labs/openpayments-go/pkg/protocol"
	"github.com/openpayments-labs/openpayments-go/pkg/signer"
)

// WalletClient resolves public wallet metadata and creates quotes on the
// wallet's own host. Wallet lookup is unauthenticated; quote creation is
// signed with the client's key.
type WalletClient struct {
	walletAddress string
	baseURL       string
	client        *SigningClient
}

// NewWalletClient creates a WalletClient for the given wallet address.
// The quote endpoint base URL is derived from the wallet address host.
// If httpClient is nil, http.DefaultClient is used.
func NewWalletClient(walletAddress string, s signer.Signer, httpClient *http.Client) (*WalletClient, error) {
	parsed, err := url.Parse(walletAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid wallet address %q: %w", walletAddress, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("wallet address %q must be an absolute URL", walletAddress)
	}

	return &WalletClient{
		walletAddress: walletAddress,
		baseURL:       parsed.Scheme + "://" + parsed.Host,
		client:        NewSigningClient(s, httpClient),
	}, nil
}

// WalletAddress returns the wallet address this client was created for
func (c *WalletClient) WalletAddress() string {
	return c.walletAddress
}

// GetWalletInfo fetches the public metadata of a wallet address.
// An empty walletAddress resolves the client's own wallet. Wallet addresses
// are public; the request carries no signature and no token.
func (c *WalletClient) GetWalletInfo(ctx context.Context, walletAddress string) (*protocol.WalletAddress, error) {
	if walletAddress == "" {
		walletAddress = c.walletAddress
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, walletAddress, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create GET request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.HTTPClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}

	body, err := readResponse(resp)
	if err != nil {
		return nil, err
	}

	var wallet protocol.WalletAddress
	if err := json.Unmarshal(body, &wallet); err != nil {
		return nil, &protocol.ProtocolError{Message: "malformed wallet metadata: " + err.Error()}
	}

	return &wallet, nil
}

// CreateQuote creates a quote for a payment to receiverWallet.
// Exactly one of sendAmount or receiveAmount must be set: the quote either
// fixes what the sender pays or what the receiver gets, and the server
// computes the other side including fees. The request is signed.
func (c *WalletClient) CreateQuote(ctx context.Context, receiverWallet string, sendAmount, receiveAmount *protocol.Amount) (*protocol.Quote, error) {
	if (sendAmount == nil) == (receiveAmount == nil) {
		return nil, fmt.Errorf("quote requires exactly one of sendAmount or receiveAmount")
	}

	payload := protocol.CreateQuoteRequest{
		WalletAddress: receiverWallet,
		Method:        "ilp",
		SendAmount:    sendAmount,
		ReceiveAmount: receiveAmount,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal quote request: %w", err)
	}

	resp, err := c.client.Post(ctx, c.baseURL+"/quotes", body)
	if err != nil {
		return nil, err
	}

	respBody, err := readResponse(resp)
	if err != nil {
		return nil, err
	}

	var quote protocol.Quote
	if err := json.Unmarshal(respBody, &quote); err != nil {
		return nil, &protocol.ProtocolError{Message: "malformed quote response: " + err.Error()}
	}

	return &quote, nil
}
