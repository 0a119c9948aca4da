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

package protocol

import (
	"errors"
	"fmt"
)

// ErrUnexpectedInteraction is returned when a non-interactive grant request
// is answered with an interaction handle. The caller asked for a flow with
// no user present; switch to the interactive flow to recover.
var ErrUnexpectedInteraction = errors.New("authorization server requires interaction for a non-interactive grant")

// ErrInvalidContinuation is returned when a grant continuation is attempted
// without a continuation URI and token from a prior pending response.
var ErrInvalidContinuation = errors.New("grant continuation requires the URI and token from a pending interaction")

// ErrTokenExpired is returned when the Resource Server rejects the access
// token (HTTP 401). The caller should re-run grant negotiation.
var ErrTokenExpired = errors.New("access token expired or invalid")

// SigningError indicates the private key could not produce a signature.
// Fatal for the current request; a retry must regenerate headers.
type SigningError struct {
	Reason string
}

func (e *SigningError) Error() string {
	return "signing failed: " + e.Reason
}

// ProtocolError indicates a malformed or contradictory server response,
// such as a grant response carrying neither a token nor an interaction handle
type ProtocolError struct {
	Message string
}

func (e *ProtocolError) Error() string {
	return "protocol error: " + e.Message
}

// HTTPError is returned for any non-2xx response. Body carries the raw
// response body for diagnostics.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// TruncateToken shortens a token value for display so that full bearer
// secrets never reach logs or error messages
func TruncateToken(token string) string {
	if len(token) <= 8 {
		return token
	}
	return token[:8] + "..."
}
