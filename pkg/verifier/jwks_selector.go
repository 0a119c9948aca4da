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
	"fmt"

	"github.com/lestrrat-go/jwx/v3/jwk"
)

// JWKSKeySelector resolves verification keys from a JWK Set document, the
// form wallet addresses publish their client keys in.
type JWKSKeySelector struct {
	set jwk.Set
}

// NewJWKSKeySelector parses a JWK Set document ({"keys":[...]}) into a
// selector
func NewJWKSKeySelector(jwksJSON []byte) (*JWKSKeySelector, error) {
	set, err := jwk.Parse(jwksJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to parse JWK set: %w", err)
	}
	return &JWKSKeySelector{set: set}, nil
}

// SelectKey returns the Ed25519 public key published under keyID
func (s *JWKSKeySelector) SelectKey(_ context.Context, keyID string) (ed25519.PublicKey, error) {
	key, found := s.set.LookupKeyID(keyID)
	if !found {
		return nil, fmt.Errorf("no key with ID %q in JWK set", keyID)
	}

	var pub ed25519.PublicKey
	if err := jwk.Export(key, &pub); err != nil {
		return nil, fmt.Errorf("key %q is not an ed25519 public key: %w", keyID, err)
	}

	return pub, nil
}
