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

// ResourceType identifies the kind of payment resource an access right covers
type ResourceType string

const (
	ResourceTypeIncomingPayment ResourceType = "incoming-payment"
	ResourceTypeQuote           ResourceType = "quote"
	ResourceTypeOutgoingPayment ResourceType = "outgoing-payment"
)

// Action is an operation a client may be authorized to perform on a resource
type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionList   Action = "list"
)

// Limits constrains an access right to specific amounts, receivers, or
// repetition intervals. All fields are optional.
type Limits struct {
	// Receiver restricts payments to a single receiving wallet or resource URL
	Receiver string `json:"receiver,omitempty"`

	// DebitAmount caps the total amount debited under this right
	DebitAmount *Amount `json:"debitAmount,omitempty"`

	// ReceiveAmount caps the total amount received under this right
	ReceiveAmount *Amount `json:"receiveAmount,omitempty"`

	// Interval is an ISO 8601 repeating interval for recurring limits
	Interval string `json:"interval,omitempty"`
}

// AccessRight is a requested capability on one resource type.
// A grant request carries an ordered list of these.
type AccessRight struct {
	// Type is the resource type this right applies to
	Type ResourceType `json:"type"`

	// Actions are the operations being requested (never empty)
	Actions []Action `json:"actions"`

	// Identifier optionally scopes the right to one resource instance URL
	Identifier string `json:"identifier,omitempty"`

	// Limits optionally constrains amounts and receivers
	Limits *Limits `json:"limits,omitempty"`
}

// Validate performs basic validation on the access right
func (r AccessRight) Validate() error {
	switch r.Type {
	case ResourceTypeIncomingPayment, ResourceTypeQuote, ResourceTypeOutgoingPayment:
	default:
		return ErrInvalidGrantRequest{"unknown resource type: " + string(r.Type)}
	}
	if len(r.Actions) == 0 {
		return ErrInvalidGrantRequest{"access right requires at least one action"}
	}
	for _, a := range r.Actions {
		switch a {
		case ActionCreate, ActionRead, ActionUpdate, ActionList:
		default:
			return ErrInvalidGrantRequest{"unknown action: " + string(a)}
		}
	}
	return nil
}

// InteractFinish describes how the Authorization Server should hand control
// back to the client after the end user has interacted.
type InteractFinish struct {
	// Method is the finish mechanism; only "redirect" is supported
	Method string `json:"method"`

	// URI is where the user is redirected after authorization
	URI string `json:"uri"`

	// Nonce binds the eventual redirect back to this grant request
	Nonce string `json:"nonce"`
}

// InteractRequest asks the Authorization Server to start an interactive flow
type InteractRequest struct {
	// Start lists the interaction modes the client can support
	Start []string `json:"start"`

	// Finish describes the post-interaction redirect
	Finish *InteractFinish `json:"finish,omitempty"`
}

// GrantRequest is the body sent to the Authorization Server to request an
// access token. Constructed fresh per negotiation attempt; never mutated
// after send.
type GrantRequest struct {
	// AccessToken lists the access rights being requested
	AccessToken []AccessRight `json:"access_token"`

	// Client identifies the requesting client to the Authorization Server
	Client string `json:"client"`

	// Interact is present iff the flow is interactive
	Interact *InteractRequest `json:"interact,omitempty"`
}

// Validate performs basic validation on the grant request
func (g *GrantRequest) Validate() error {
	if len(g.AccessToken) == 0 {
		return ErrInvalidGrantRequest{"at least one access right is required"}
	}
	if g.Client == "" {
		return ErrInvalidGrantRequest{"client identifier is required"}
	}
	for _, right := range g.AccessToken {
		if err := right.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ErrInvalidGrantRequest is returned when a grant request is invalid
type ErrInvalidGrantRequest struct {
	Message string
}

func (e ErrInvalidGrantRequest) Error() string {
	return "invalid grant request: " + e.Message
}

// AccessToken is an access token granted by the Authorization Server.
// Value is an opaque bearer secret and must never be logged in full.
type AccessToken struct {
	// Value is the opaque bearer secret
	Value string `json:"value"`

	// Manage is the URL for rotating or revoking this token
	Manage string `json:"manage"`

	// ExpiresIn is the token lifetime in seconds, if the server reports one
	ExpiresIn int `json:"expires_in,omitempty"`

	// Access lists the rights actually granted (may be a subset of requested)
	Access []AccessRight `json:"access,omitempty"`
}

// InteractResponse carries the redirect the end user must visit to consent
type InteractResponse struct {
	// Redirect is the URL the end user must visit
	Redirect string `json:"redirect"`

	// Finish echoes the server's nonce for redirect binding, when present
	Finish string `json:"finish,omitempty"`
}

// ContinueToken is the token used to continue a pending grant
type ContinueToken struct {
	Value string `json:"value"`
}

// ContinueRef references the continuation endpoint for a pending grant
type ContinueRef struct {
	// URI is the continuation endpoint
	URI string `json:"uri"`

	// AccessToken authorizes the continuation request
	AccessToken ContinueToken `json:"access_token"`

	// Wait is the number of seconds to wait before continuing
	Wait int `json:"wait,omitempty"`
}

// GrantResponse is the Authorization Server's answer to a grant request.
// It either carries an access token (the grant was satisfied immediately)
// or an interaction handle requiring out-of-band user consent. A response
// with neither is a protocol error.
type GrantResponse struct {
	AccessToken *AccessToken      `json:"access_token,omitempty"`
	Interact    *InteractResponse `json:"interact,omitempty"`
	Continue    *ContinueRef      `json:"continue,omitempty"`
}

// Granted reports whether the response carries a usable access token
func (g *GrantResponse) Granted() bool {
	return g.AccessToken != nil && g.AccessToken.Value != ""
}

// RequiresInteraction reports whether the response carries an interaction
// handle that the caller must surface to the end user
func (g *GrantResponse) RequiresInteraction() bool {
	return g.Interact != nil && g.Interact.Redirect != ""
}
