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

package protocol

// Amount is a currency amount in the smallest unit of the asset.
// A value of "500" with assetCode "USD" and assetScale 2 is $5.00.
type Amount struct {
	Value      string `json:"value"`
	AssetCode  string `json:"assetCode"`
	AssetScale int    `json:"assetScale"`
}

// IncomingPayment is a payment resource on the receiving wallet.
// ID is a full URL assigned by the Resource Server; it is opaque and must be
// reused verbatim for subsequent reads, never reconstructed.
type IncomingPayment struct {
	ID             string         `json:"id"`
	WalletAddress  string         `json:"walletAddress"`
	IncomingAmount *Amount        `json:"incomingAmount,omitempty"`
	ReceivedAmount *Amount        `json:"receivedAmount,omitempty"`
	Completed      bool           `json:"completed"`
	ExpiresAt      string         `json:"expiresAt,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
}

// OutgoingPayment is a payment resource on the sending wallet.
// Failed reflects the server-observed settlement state; the client surfaces
// it, it does not infer it.
type OutgoingPayment struct {
	ID            string         `json:"id"`
	WalletAddress string         `json:"walletAddress"`
	QuoteID       string         `json:"quoteId,omitempty"`
	SentAmount    *Amount        `json:"sentAmount,omitempty"`
	Failed        bool           `json:"failed"`
	Metadata      map[string]any `json:"metadata,omitempty"`
}

// Quote is a time-bounded, fee-inclusive exchange-rate commitment that
// precedes an outgoing payment
type Quote struct {
	ID            string  `json:"id"`
	WalletAddress string  `json:"walletAddress,omitempty"`
	Receiver      string  `json:"receiver,omitempty"`
	SendAmount    *Amount `json:"sendAmount,omitempty"`
	ReceiveAmount *Amount `json:"receiveAmount,omitempty"`
	ExpiresAt     string  `json:"expiresAt,omitempty"`
	Method        string  `json:"method,omitempty"`
}

// WalletAddress is the public metadata of a payment account, resolvable
// without authentication
type WalletAddress struct {
	ID             string `json:"id"`
	PublicName     string `json:"publicName,omitempty"`
	AssetCode      string `json:"assetCode"`
	AssetScale     int    `json:"assetScale"`
	AuthServer     string `json:"authServer,omitempty"`
	ResourceServer string `json:"resourceServer,omitempty"`
}

// CreateIncomingPaymentRequest is the body for creating an incoming payment
type CreateIncomingPaymentRequest struct {
	WalletAddress  string         `json:"walletAddress"`
	IncomingAmount *Amount        `json:"incomingAmount,omitempty"`
	ExpiresAt      string         `json:"expiresAt,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
}

// CreateOutgoingPaymentRequest is the body for creating an outgoing payment
type CreateOutgoingPaymentRequest struct {
	WalletAddress string         `json:"walletAddress"`
	QuoteID       string         `json:"quoteId"`
	Metadata      map[string]any `json:"metadata,omitempty"`
}

// CreateQuoteRequest is the body for creating a quote. Exactly one of
// SendAmount or ReceiveAmount must be set.
type CreateQuoteRequest struct {
	WalletAddress string  `json:"walletAddress"`
	Method        string  `json:"method"`
	SendAmount    *Amount `json:"sendAmount,omitempty"`
	ReceiveAmount *Amount `json:"receiveAmount,omitempty"`
}
