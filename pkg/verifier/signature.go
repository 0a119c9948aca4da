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
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"github.com/openpayments-labs/openpayments-go/pkg/signer"
)

// SignatureParams are the parameters recovered from a request's signature
// headers
type SignatureParams struct {
	// KeyID identifies the public key that produced the signature
	KeyID string

	// Algorithm is the declared signature algorithm
	Algorithm string

	// Signature is the decoded signature
	Signature []byte

	// Created is the signature creation timestamp, verbatim as signed
	Created string
}

// ParseSignatureHeaders recovers the signature parameters from the Signature
// and Signature-Input headers
func ParseSignatureHeaders(hdr http.Header) (*SignatureParams, error) {
	sigHeader := hdr.Get(signer.SignatureHeader)
	if sigHeader == "" {
		return nil, fmt.Errorf("missing %s header", signer.SignatureHeader)
	}

	inputHeader := hdr.Get(signer.SignatureInputHeader)
	if inputHeader == "" {
		return nil, fmt.Errorf("missing %s header", signer.SignatureInputHeader)
	}

	params := &SignatureParams{}
	var sigB64 string
	for _, part := range strings.Split(sigHeader, ",") {
		name, value, found := strings.Cut(part, "=")
		if !found {
			return nil, fmt.Errorf("malformed %s header", signer.SignatureHeader)
		}
		value = strings.Trim(value, `"`)
		switch name {
		case "keyId":
			params.KeyID = value
		case "algorithm":
			params.Algorithm = value
		case "signature":
			sigB64 = value
		}
	}

	if params.KeyID == "" || params.Algorithm == "" || sigB64 == "" {
		return nil, fmt.Errorf("incomplete %s header", signer.SignatureHeader)
	}

	sig, err := base64.StdEncoding.DecodeString(sigB64)
	if err != nil {
		return nil, fmt.Errorf("signature is not valid base64: %w", err)
	}
	params.Signature = sig

	_, created, found := strings.Cut(inputHeader, "created=")
	if !found || created == "" {
		return nil, fmt.Errorf("no created timestamp in %s header", signer.SignatureInputHeader)
	}
	params.Created = created

	return params, nil
}
