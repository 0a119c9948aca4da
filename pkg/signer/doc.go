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

// Package signer implements the simplified Open Payments request-signing
// scheme.
//
// Each request is signed with the client's Ed25519 private key over a
// canonical string of the form
//
//	METHOD "\n" URL "\n" RFC3339-UTC-timestamp ["\n" base64(SHA-256(body))]
//
// and the result is carried in two headers:
//
//	Signature: keyId="<id>",algorithm="ed25519",signature="<base64>"
//	Signature-Input: sig1=();created=<timestamp>
//
// The per-request timestamp bounds the replay window; whether the server
// enforces timestamp freshness is its own concern. Signing is deterministic
// for a fixed key, timestamp, and request, and performs no network I/O.
//
// # Usage
//
//	s, err := signer.NewDefaultSigner("key-1", privateKey)
//	if err != nil {
//	    return err
//	}
//	req, _ := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
//	if err := s.SignRequest(ctx, req); err != nil {
//	    return err
//	}
//
// A retry must go back through SignRequest: the fresh timestamp changes the
// signed content, so previously emitted headers are invalid for the new
// attempt. The key is read-only once loaded and a DefaultSigner is safe for
// concurrent use.
package signer
