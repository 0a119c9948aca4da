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

// Package verifier provides server-side verification of signed Open Payments
// requests.
//
// A DefaultVerifier rebuilds the canonical string from an incoming request
// and its Signature-Input timestamp, resolves the signer's public key through
// a KeySelector, and checks the Ed25519 signature. JWKSKeySelector resolves
// keys from the JWK Set document a wallet address publishes.
//
// Usage:
//
//	selector, err := verifier.NewJWKSKeySelector(jwksDocument)
//	if err != nil {
//		return err
//	}
//	v := verifier.NewDefaultVerifier(selector)
//	keyID, err := v.VerifyRequest(ctx, req)
package verifier
