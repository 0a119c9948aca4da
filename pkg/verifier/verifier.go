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
	"context"
	"crypto/ed25519"
	"net/http"
)

// KeySelector resolves the verification key registered under a key ID
type KeySelector interface {
	// SelectKey returns the public key published under keyID
	SelectKey(ctx context.Context, keyID string) (ed25519.PublicKey, error)
}

// RequestVerifier verifies signed HTTP requests
type RequestVerifier interface {
	// VerifyRequest checks the request's signature headers and returns the
	// key ID that produced a valid signature
	VerifyRequest(ctx context.Context, req *http.Request) (string, error)
}
