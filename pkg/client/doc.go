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

// Package client implements the Open Payments client roles: grant
// negotiation, token-authorized resource operations, and wallet/quote access.
//
// # Clients
//
//   - SigningClient wraps an http.Client and signs every outgoing request
//     with the client's Ed25519 key.
//   - GrantClient negotiates authorization grants with an Authorization
//     Server, non-interactively or interactively.
//   - ResourceClient performs create/read operations on incoming and
//     outgoing payments using a granted access token.
//   - WalletClient resolves public wallet metadata and creates quotes.
//
// # Grant negotiation
//
// A negotiation progresses through a small state machine: the request is
// built and sent, and the response is either terminal (granted or failed) or
// pending interaction. A pending grant is finished explicitly:
//
//	grants := client.NewGrantClient(authServerURL, s, nil)
//
//	resp, err := grants.RequestGrantInteractive(ctx, rights, clientID, redirectURI)
//	if err != nil {
//	    return err
//	}
//	if resp.RequiresInteraction() {
//	    // surface resp.Interact.Redirect to the end user, wait for consent
//	    resp, err = grants.ContinueGrant(ctx, resp.Continue.URI, resp.Continue.AccessToken.Value)
//	    if err != nil {
//	        return err
//	    }
//	}
//	token := resp.AccessToken
//
// # Resource operations
//
//	resources := client.NewResourceClient(resourceServerURL, token.Value, nil)
//	payment, err := resources.CreateIncomingPayment(ctx, receiverWallet,
//	    &protocol.Amount{Value: "500", AssetCode: "USD", AssetScale: 2}, nil)
//
// Resource IDs returned by the server are full URLs; pass them back verbatim
// to the Get operations.
//
// # Error recovery
//
// Nothing is retried automatically. On protocol.ErrTokenExpired re-run grant
// negotiation; on protocol.ErrUnexpectedInteraction switch to the interactive
// flow. A failed authorization decision is terminal for that attempt.
//
// # Concurrency
//
// Each client type is safe for concurrent use; independent negotiations may
// run from separate goroutines. The signing key is read-only once loaded.
package client
