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

package signer

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/openpayments-labs/openpayments-go/pkg/protocol"
)

// SignatureHeader is the header carrying keyId, algorithm, and signature
const SignatureHeader = "Signature"

// SignatureInputHeader is the header recording the signature creation time
const SignatureInputHeader = "Signature-Input"

// DefaultSigner implements Signer with the simplified Open Payments signing
// scheme: an Ed25519 signature over method, URL, timestamp, and body digest
type DefaultSigner struct {
	keyID string
	key   ed25519.PrivateKey
}

// NewDefaultSigner creates a DefaultSigner for the given key.
// keyID identifies the corresponding public key on record with the
// counterpart server. Unusable key material is rejected here, before any
// request is signed with it.
func NewDefaultSigner(keyID string, key ed25519.PrivateKey) (*DefaultSigner, error) {
	if keyID == "" {
		return nil, &protocol.SigningError{Reason: "key ID cannot be empty"}
	}
	if len(key) != ed25519.PrivateKeySize {
		return nil, &protocol.SigningError{Reason: fmt.Sprintf("ed25519 private key must be %d bytes, got %d", ed25519.PrivateKeySize, len(key))}
	}
	return &DefaultSigner{keyID: keyID, key: key}, nil
}

// KeyID returns the key identifier included in signatures
func (s *DefaultSigner) KeyID() string {
	return s.keyID
}

// SignRequest signs an HTTP request using the current time
func (s *DefaultSigner) SignRequest(ctx context.Context, req *http.Request) error {
	return s.SignRequestWithOptions(ctx, req, nil)
}

// SignRequestWithOptions signs an HTTP request, setting the Signature and
// Signature-Input headers. Any previous signature headers are overwritten;
// stale signed headers must never be reused across send attempts.
func (s *DefaultSigner) SignRequestWithOptions(ctx context.Context, req *http.Request, opts *SigningOptions) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if req == nil {
		return &protocol.SigningError{Reason: "request cannot be nil"}
	}

	created := time.Now()
	if opts != nil && !opts.Created.IsZero() {
		created = opts.Created
	}
	createdStr := FormatCreated(created)

	body, err := requestBody(req)
	if err != nil {
		return &protocol.SigningError{Reason: "failed to read request body: " + err.Error()}
	}

	base := SignatureBase(req.Method, req.URL.String(), createdStr, body)

	signature := ed25519.Sign(s.key, []byte(base))

	req.Header.Set(SignatureHeader, fmt.Sprintf(`keyId=%q,algorithm="ed25519",signature=%q`,
		s.keyID, base64.StdEncoding.EncodeToString(signature)))
	req.Header.Set(SignatureInputHeader, fmt.Sprintf("sig1=();created=%s", createdStr))

	return nil
}

// requestBody reads the request body without consuming it.
// Prefers GetBody so the request stays replayable; otherwise the body is
// drained and restored.
func requestBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}

	if req.GetBody != nil {
		rc, err := req.GetBody()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, err
	}
	req.Body.Close()
	req.Body = io.NopCloser(bytes.NewReader(body))
	return body, nil
}
