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

package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openpayments-labs/openpayments-go/pkg/client"
	"github.com/openpayments-labs/openpayments-go/pkg/keys"
	"github.com/openpayments-labs/openpayments-go/pkg/protocol"
	"github.com/openpayments-labs/openpayments-go/pkg/server"
	"github.com/openpayments-labs/openpayments-go/pkg/signer"
	"github.com/openpayments-labs/openpayments-go/pkg/verifier"
)

// testAuthServer simulates a GNAP Authorization Server. Grants for
// outgoing payments require interaction; everything else is issued
// immediately.
type testAuthServer struct {
	issuedTokens    map[string]bool
	continueTokens  map[string]bool
	continuedGrants int
	baseURL         string
}

func newTestAuthServer() *testAuthServer {
	return &testAuthServer{
		issuedTokens:   make(map[string]bool),
		continueTokens: make(map[string]bool),
	}
}

func (as *testAuthServer) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /", func(w http.ResponseWriter, r *http.Request) {
		var grant protocol.GrantRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&grant))
		require.NotEmpty(t, grant.AccessToken)

		w.Header().Set("Content-Type", "application/json")

		if grant.Interact != nil {
			// Pending grant: hand back interaction and continuation handles
			as.continueTokens["continue-1"] = true
			resp := protocol.GrantResponse{
				Interact: &protocol.InteractResponse{
					Redirect: as.baseURL + "/interact/xyz",
				},
				Continue: &protocol.ContinueRef{
					URI:         as.baseURL + "/continue/xyz",
					AccessToken: protocol.ContinueToken{Value: "continue-1"},
				},
			}
			require.NoError(t, json.NewEncoder(w).Encode(resp))
			return
		}

		token := fmt.Sprintf("token-%s", grant.AccessToken[0].Type)
		as.issuedTokens[token] = true
		resp := protocol.GrantResponse{
			AccessToken: &protocol.AccessToken{
				Value:  token,
				Manage: as.baseURL + "/token/" + token,
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	})
	mux.HandleFunc("POST /continue/xyz", func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if !strings.HasPrefix(auth, "GNAP ") || !as.continueTokens[strings.TrimPrefix(auth, "GNAP ")] {
			http.Error(w, "unknown continuation token", http.StatusUnauthorized)
			return
		}
		as.continuedGrants++
		as.issuedTokens["token-outgoing-payment"] = true

		w.Header().Set("Content-Type", "application/json")
		resp := protocol.GrantResponse{
			AccessToken: &protocol.AccessToken{
				Value:  "token-outgoing-payment",
				Manage: as.baseURL + "/token/token-outgoing-payment",
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	})
	return mux
}

// testResourceServer simulates the wallet's resource server. Quote creation
// is signed, so it sits behind the signature middleware; payment resources
// are authorized by the GNAP bearer token alone.
type testResourceServer struct {
	as      *testAuthServer
	baseURL string
}

func (rs *testResourceServer) handler(t *testing.T, middleware *server.SignatureAuthMiddleware) http.Handler {
	requireToken := func(w http.ResponseWriter, r *http.Request) bool {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "GNAP ")
		if !rs.as.issuedTokens[token] {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return false
		}
		return true
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /alice", func(w http.ResponseWriter, r *http.Request) {
		// Public wallet address document, no signature required
		w.Header().Set("Content-Type", "application/json")
		doc := protocol.WalletAddress{
			ID:             rs.baseURL + "/alice",
			PublicName:     "Alice",
			AssetCode:      "USD",
			AssetScale:     2,
			AuthServer:     rs.as.baseURL,
			ResourceServer: rs.baseURL,
		}
		require.NoError(t, json.NewEncoder(w).Encode(doc))
	})
	mux.HandleFunc("POST /incoming-payments", func(w http.ResponseWriter, r *http.Request) {
		if !requireToken(w, r) {
			return
		}
		var req protocol.CreateIncomingPaymentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		w.Header().Set("Content-Type", "application/json")
		payment := protocol.IncomingPayment{
			ID:             rs.baseURL + "/incoming-payments/ip-1",
			WalletAddress:  req.WalletAddress,
			IncomingAmount: req.IncomingAmount,
		}
		require.NoError(t, json.NewEncoder(w).Encode(payment))
	})
	mux.Handle("POST /quotes", middleware.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		keyID, ok := server.KeyIDFromContext(r.Context())
		assert.True(t, ok)
		assert.Equal(t, "key-1", keyID)

		var req protocol.CreateQuoteRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ilp", req.Method)

		w.Header().Set("Content-Type", "application/json")
		quote := protocol.Quote{
			ID:            rs.baseURL + "/quotes/q-1",
			WalletAddress: req.WalletAddress,
			SendAmount:    req.SendAmount,
			ReceiveAmount: &protocol.Amount{Value: "495", AssetCode: "USD", AssetScale: 2},
			Method:        req.Method,
		}
		require.NoError(t, json.NewEncoder(w).Encode(quote))
	})))
	mux.HandleFunc("POST /outgoing-payments", func(w http.ResponseWriter, r *http.Request) {
		if !requireToken(w, r) {
			return
		}
		var req protocol.CreateOutgoingPaymentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		w.Header().Set("Content-Type", "application/json")
		payment := protocol.OutgoingPayment{
			ID:            rs.baseURL + "/outgoing-payments/op-1",
			WalletAddress: req.WalletAddress,
			QuoteID:       req.QuoteID,
		}
		require.NoError(t, json.NewEncoder(w).Encode(payment))
	})
	return mux
}

// TestE2E_PaymentFlow runs the full protocol against in-process servers:
// wallet lookup, grant negotiation including an interactive continuation,
// and the resource operations, with every signed request verified
// server-side against the client's JWKS.
func TestE2E_PaymentFlow(t *testing.T) {
	ctx := context.Background()

	// Setup: client key pair, published as a JWK Set
	kp, err := keys.GenerateKeyPair("key-1")
	require.NoError(t, err)
	jwksDoc, err := keys.PublicJWKS(kp)
	require.NoError(t, err)

	selector, err := verifier.NewJWKSKeySelector(jwksDoc)
	require.NoError(t, err)
	middleware := server.NewSignatureAuthMiddleware(selector)

	// Setup: in-process AS and RS
	as := newTestAuthServer()
	asServer := httptest.NewServer(as.handler(t))
	defer asServer.Close()
	as.baseURL = asServer.URL

	rs := &testResourceServer{as: as}
	rsServer := httptest.NewServer(rs.handler(t, middleware))
	defer rsServer.Close()
	rs.baseURL = rsServer.URL

	s, err := signer.NewDefaultSigner(kp.KeyID, kp.Private)
	require.NoError(t, err)

	// Step 1: resolve the wallet address document
	wc, err := client.NewWalletClient(rsServer.URL+"/alice", s, nil)
	require.NoError(t, err)

	wallet, err := wc.GetWalletInfo(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "Alice", wallet.PublicName)
	assert.Equal(t, asServer.URL, wallet.AuthServer)

	// Step 2: non-interactive grant for incoming payments
	grants := client.NewGrantClient(wallet.AuthServer, s, nil)
	incomingGrant, err := grants.RequestGrantNonInteractive(ctx, []protocol.AccessRight{
		{
			Type:    protocol.ResourceTypeIncomingPayment,
			Actions: []protocol.Action{protocol.ActionCreate, protocol.ActionRead},
		},
	}, "e2e-test")
	require.NoError(t, err)
	require.True(t, incomingGrant.Granted())

	// Step 3: create the incoming payment with the issued token
	resources := client.NewResourceClient(wallet.ResourceServer, incomingGrant.AccessToken.Value, nil)
	incoming, err := resources.CreateIncomingPayment(ctx, wallet.ID, &protocol.Amount{
		Value:      "500",
		AssetCode:  "USD",
		AssetScale: 2,
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, rsServer.URL+"/incoming-payments/ip-1", incoming.ID)

	// Step 4: quote the transfer
	quote, err := wc.CreateQuote(ctx, wallet.ID, &protocol.Amount{
		Value:      "500",
		AssetCode:  "USD",
		AssetScale: 2,
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, rsServer.URL+"/quotes/q-1", quote.ID)
	assert.Equal(t, "495", quote.ReceiveAmount.Value)

	// Step 5: interactive grant for the outgoing payment
	pending, err := grants.RequestGrantInteractive(ctx, []protocol.AccessRight{
		{
			Type:    protocol.ResourceTypeOutgoingPayment,
			Actions: []protocol.Action{protocol.ActionCreate},
		},
	}, "e2e-test", "https://storefront.example.com/callback")
	require.NoError(t, err)
	require.True(t, pending.RequiresInteraction())
	assert.Contains(t, pending.Interact.Redirect, "/interact/xyz")

	// Step 6: the user approved; continue the grant
	granted, err := grants.ContinueGrant(ctx, pending.Continue.URI, pending.Continue.AccessToken.Value)
	require.NoError(t, err)
	require.True(t, granted.Granted())
	assert.Equal(t, 1, as.continuedGrants)

	// Step 7: create the outgoing payment
	outResources := client.NewResourceClient(wallet.ResourceServer, granted.AccessToken.Value, nil)
	outgoing, err := outResources.CreateOutgoingPayment(ctx, wallet.ID, quote.ID, map[string]any{
		"note": "e2e",
	})
	require.NoError(t, err)
	assert.Equal(t, rsServer.URL+"/outgoing-payments/op-1", outgoing.ID)
	assert.Equal(t, quote.ID, outgoing.QuoteID)
}

// TestE2E_RejectsForeignSignature ensures the resource server refuses
// requests signed with a key absent from the published JWKS.
func TestE2E_RejectsForeignSignature(t *testing.T) {
	ctx := context.Background()

	published, err := keys.GenerateKeyPair("key-1")
	require.NoError(t, err)
	jwksDoc, err := keys.PublicJWKS(published)
	require.NoError(t, err)

	selector, err := verifier.NewJWKSKeySelector(jwksDoc)
	require.NoError(t, err)
	middleware := server.NewSignatureAuthMiddleware(selector)

	as := newTestAuthServer()
	rs := &testResourceServer{as: as}
	rsServer := httptest.NewServer(rs.handler(t, middleware))
	defer rsServer.Close()
	rs.baseURL = rsServer.URL

	// A different key pair under the same key ID
	impostor, err := keys.GenerateKeyPair("key-1")
	require.NoError(t, err)
	s, err := signer.NewDefaultSigner(impostor.KeyID, impostor.Private)
	require.NoError(t, err)

	wc, err := client.NewWalletClient(rsServer.URL+"/alice", s, nil)
	require.NoError(t, err)

	_, err = wc.CreateQuote(ctx, rsServer.URL+"/alice", &protocol.Amount{
		Value:      "100",
		AssetCode:  "USD",
		AssetScale: 2,
	}, nil)
	require.Error(t, err)

	var httpErr *protocol.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.StatusCode)
}
