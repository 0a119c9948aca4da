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

package keys

import (
	"crypto/ed25519"
	"encoding/json"
	"fmt"

	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwk"
)

// PublicJWK exports the public half of the key pair as a JWK with the key ID
// set, alg=EdDSA, and use=sig. This is the representation counterpart
// servers expect when verifying signatures.
func (kp *KeyPair) PublicJWK() (jwk.Key, error) {
	key, err := jwk.Import(kp.Public)
	if err != nil {
		return nil, fmt.Errorf("failed to import public key: %w", err)
	}

	if err := key.Set(jwk.KeyIDKey, kp.KeyID); err != nil {
		return nil, fmt.Errorf("failed to set kid: %w", err)
	}
	if err := key.Set(jwk.AlgorithmKey, jwa.EdDSA()); err != nil {
		return nil, fmt.Errorf("failed to set alg: %w", err)
	}
	if err := key.Set(jwk.KeyUsageKey, "sig"); err != nil {
		return nil, fmt.Errorf("failed to set use: %w", err)
	}

	return key, nil
}

// PublicJWKS renders a JWK Set document ({"keys":[...]}) for the given key
// pairs. Publish this document so counterpart servers can verify the
// client's signatures.
func PublicJWKS(pairs ...*KeyPair) ([]byte, error) {
	set := jwk.NewSet()
	for _, kp := range pairs {
		key, err := kp.PublicJWK()
		if err != nil {
			return nil, err
		}
		if err := set.AddKey(key); err != nil {
			return nil, fmt.Errorf("failed to add key %s to set: %w", kp.KeyID, err)
		}
	}

	data, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JWK set: %w", err)
	}

	return data, nil
}

// ParsePrivateJWK imports an Ed25519 private key from its JWK representation
func ParsePrivateJWK(data []byte) (*KeyPair, error) {
	key, err := jwk.ParseKey(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse JWK: %w", err)
	}

	var priv ed25519.PrivateKey
	if err := jwk.Export(key, &priv); err != nil {
		return nil, fmt.Errorf("JWK does not hold an ed25519 private key: %w", err)
	}

	var keyID string
	if kid, ok := key.KeyID(); ok {
		keyID = kid
	}

	return &KeyPair{
		KeyID:   keyID,
		Private: priv,
		Public:  priv.Public().(ed25519.PublicKey),
	}, nil
}
