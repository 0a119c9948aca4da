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

// Package keys manages the Ed25519 key material used to sign Open Payments
// requests.
//
// Private keys sign every request; the corresponding public keys are
// published as a JWK Set so counterpart servers can verify the signatures.
//
//	kp, err := keys.GenerateKeyPair("key-1")
//	privPath, pubPath, err := kp.Save("keys")
//	jwks, err := keys.PublicJWKS(kp)
//	// publish jwks at your key endpoint, then sign with kp.Private
//
// Keys are stored as unencrypted PEM (PKCS#8 private, PKIX public). The
// signing core never generates or persists keys itself; it receives a loaded
// private key and key ID from this package or any equivalent source.
package keys
