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

// Package protocol defines the wire types and error taxonomy for the Open
// Payments protocol.
//
// # Grant negotiation (GNAP)
//
// A client requests access by sending a GrantRequest to the Authorization
// Server, listing one or more AccessRights:
//
//	req := &protocol.GrantRequest{
//	    AccessToken: []protocol.AccessRight{{
//	        Type:    protocol.ResourceTypeQuote,
//	        Actions: []protocol.Action{protocol.ActionCreate, protocol.ActionRead},
//	    }},
//	    Client: "my-client",
//	}
//
// The GrantResponse either carries an AccessToken (the grant was satisfied
// immediately) or an Interact handle requiring out-of-band user consent,
// together with a Continue reference for finishing the grant afterwards.
// A response with neither is a ProtocolError.
//
// # Payment resources
//
// IncomingPayment, OutgoingPayment, Quote, and WalletAddress mirror the
// Resource Server's JSON representations. Resource IDs are full URLs assigned
// by the server; treat them as opaque and reuse them verbatim.
//
// # Errors
//
// All failure modes surfaced by the client packages are defined here:
// SigningError, ProtocolError, HTTPError, ErrUnexpectedInteraction,
// ErrInvalidContinuation, and ErrTokenExpired. None are retried
// automatically; see the client package for the caller-directed recovery
// paths.
package protocol
