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
	"context"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"time"
)

// Signer signs HTTP requests for the Open Payments protocol.
// The key ID is included in the Signature header as the keyId parameter.
type Signer interface {
	// SignRequest signs an HTTP request with the client's key
	SignRequest(ctx context.Context, req *http.Request) error

	// SignRequestWithOptions signs an HTTP request with custom options
	SignRequestWithOptions(ctx context.Context, req *http.Request, opts *SigningOptions) error
}

// SigningOptions contains options for signing HTTP requests
type SigningOptions struct {
	// Created is the signature creation time.
	// If zero, the current time is used.
	Created time.Time
}

// SignatureBase builds the canonical string that is signed for one request:
// method, URL, and creation timestamp, each on its own line, followed by the
// base64 SHA-256 digest of the body when one is present. Binding all four
// into one signature prevents replay on a different endpoint or with a
// tampered body.
func SignatureBase(method, url, created string, body []byte) string {
	base := method + "\n" + url + "\n" + created
	if len(body) > 0 {
		digest := sha256.Sum256(body)
		base += "\n" + base64.StdEncoding.EncodeToString(digest[:])
	}
	return base
}

// FormatCreated renders a signature creation time the way the protocol
// expects it: RFC 3339 with sub-second precision, in UTC
func FormatCreated(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
