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

package verifier

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"fmt"
	"io"
	"net/http"

	"github.com/openpayments-labs/openpayments-go/pkg/signer"
)

// DefaultVerifier implements RequestVerifier for the simplified Open
// Payments signing scheme. It rebuilds the canonical string from the
// incoming request and the signed timestamp, resolves the public key through
// its KeySelector, and checks the Ed25519 signature.
type DefaultVerifier struct {
	selector KeySelector
}

// NewDefaultVerifier creates a DefaultVerifier using the given key selector
func NewDefaultVerifier(selector KeySelector) *DefaultVerifier {
	return &DefaultVerifier{selector: selector}
}

// VerifyRequest verifies the request signature and returns the signing key ID
func (v *DefaultVerifier) VerifyRequest(ctx context.Context, req *http.Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("context error: %w", err)
	}

	params, err := ParseSignatureHeaders(req.Header)
	if err != nil {
		return "", err
	}

	if params.Algorithm != "ed25519" {
		return "", fmt.Errorf("unsupported signature algorithm %q", params.Algorithm)
	}

	pubKey, err := v.selector.SelectKey(ctx, params.KeyID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve key %q: %w", params.KeyID, err)
	}

	body, err := preserveBody(req)
	if err != nil {
		return "", fmt.Errorf("failed to read request body: %w", err)
	}

	base := signer.SignatureBase(req.Method, requestURL(req), params.Created, body)

	if !ed25519.Verify(pubKey, []byte(base), params.Signature) {
		return "", fmt.Errorf("signature verification failed for key %q", params.KeyID)
	}

	return params.KeyID, nil
}

// requestURL rebuilds the absolute URL the client signed. Server-side
// requests carry a relative URL, so scheme and host are recovered from the
// connection and Host header.
func requestURL(req *http.Request) string {
	if req.URL.IsAbs() {
		return req.URL.String()
	}

	scheme := "http"
	if req.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + req.Host + req.URL.RequestURI()
}

// preserveBody reads the request body and restores it for downstream
// handlers
func preserveBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, err
	}
	req.Body.Close()
	req.Body = io.NopCloser(bytes.NewReader(body))
	return body, nil
}
