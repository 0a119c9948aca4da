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
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessRight_Validate(t *testing.T) {
	tests := []struct {
		name    string
		right   AccessRight
		wantErr string
	}{
		{
			name: "valid quote right",
			right: AccessRight{
				Type:    ResourceTypeQuote,
				Actions: []Action{ActionCreate, ActionRead},
			},
		},
		{
			name: "valid right with identifier and limits",
			right: AccessRight{
				Type:       ResourceTypeOutgoingPayment,
				Actions:    []Action{ActionCreate},
				Identifier: "https://rs.example.com/op/1",
				Limits: &Limits{
					DebitAmount: &Amount{Value: "500", AssetCode: "USD", AssetScale: 2},
				},
			},
		},
		{
			name: "unknown resource type",
			right: AccessRight{
				Type:    ResourceType("refund"),
				Actions: []Action{ActionCreate},
			},
			wantErr: "unknown resource type",
		},
		{
			name: "empty actions",
			right: AccessRight{
				Type: ResourceTypeIncomingPayment,
			},
			wantErr: "at least one action",
		},
		{
			name: "unknown action",
			right: AccessRight{
				Type:    ResourceTypeIncomingPayment,
				Actions: []Action{Action("delete")},
			},
			wantErr: "unknown action",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.right.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestGrantRequest_Validate(t *testing.T) {
	// Test Case 1: valid request passes
	req := &GrantRequest{
		AccessToken: []AccessRight{
			{Type: ResourceTypeQuote, Actions: []Action{ActionCreate}},
		},
		Client: "music-site-client",
	}
	assert.NoError(t, req.Validate())

	// Test Case 2: empty access rights rejected
	empty := &GrantRequest{Client: "music-site-client"}
	err := empty.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one access right")

	// Test Case 3: missing client identifier rejected
	noClient := &GrantRequest{
		AccessToken: []AccessRight{
			{Type: ResourceTypeQuote, Actions: []Action{ActionCreate}},
		},
	}
	err = noClient.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "client identifier")

	// Test Case 4: invalid nested right rejected
	badRight := &GrantRequest{
		AccessToken: []AccessRight{{Type: ResourceTypeQuote}},
		Client:      "music-site-client",
	}
	assert.Error(t, badRight.Validate())
}

func TestGrantRequest_JSONShape(t *testing.T) {
	// The Authorization Server expects access_token / client / interact keys,
	// with optional right fields omitted when absent
	req := &GrantRequest{
		AccessToken: []AccessRight{
			{Type: ResourceTypeIncomingPayment, Actions: []Action{ActionCreate, ActionRead}},
			{Type: ResourceTypeQuote, Actions: []Action{ActionCreate}},
		},
		Client: "music-site-client",
		Interact: &InteractRequest{
			Start: []string{"redirect"},
			Finish: &InteractFinish{
				Method: "redirect",
				URI:    "https://music-site.example.com/payment/callback",
				Nonce:  "test-nonce",
			},
		},
	}

	data, err := json.Marshal(req)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "access_token")
	assert.Contains(t, raw, "client")
	assert.Contains(t, raw, "interact")

	var rights []map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw["access_token"], &rights))
	require.Len(t, rights, 2)
	assert.NotContains(t, rights[0], "identifier")
	assert.NotContains(t, rights[0], "limits")

	// Order of requested rights round-trips
	var decoded GrantRequest
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded.AccessToken, 2)
	assert.Equal(t, ResourceTypeIncomingPayment, decoded.AccessToken[0].Type)
	assert.Equal(t, ResourceTypeQuote, decoded.AccessToken[1].Type)
}

func TestGrantResponse_Granted(t *testing.T) {
	// Test Case 1: response with a token value is granted
	granted := &GrantResponse{
		AccessToken: &AccessToken{Value: "tok1", Manage: "https://as.example.com/m/1"},
	}
	assert.True(t, granted.Granted())
	assert.False(t, granted.RequiresInteraction())

	// Test Case 2: response with an empty token value is not granted
	emptyToken := &GrantResponse{AccessToken: &AccessToken{}}
	assert.False(t, emptyToken.Granted())

	// Test Case 3: interaction-only response requires interaction
	pending := &GrantResponse{
		Interact: &InteractResponse{Redirect: "https://as.example.com/interact/abc"},
		Continue: &ContinueRef{
			URI:         "https://as.example.com/continue/xyz",
			AccessToken: ContinueToken{Value: "cont-tok"},
		},
	}
	assert.False(t, pending.Granted())
	assert.True(t, pending.RequiresInteraction())

	// Test Case 4: empty response is neither
	var empty GrantResponse
	assert.False(t, empty.Granted())
	assert.False(t, empty.RequiresInteraction())
}

func TestGrantResponse_Unmarshal(t *testing.T) {
	payload := `{
		"access_token": {
			"value": "tok1",
			"manage": "https://as.example.com/m/1",
			"expires_in": 600,
			"access": [{"type": "quote", "actions": ["create", "read"]}]
		}
	}`

	var resp GrantResponse
	require.NoError(t, json.Unmarshal([]byte(payload), &resp))
	require.True(t, resp.Granted())
	assert.Equal(t, "tok1", resp.AccessToken.Value)
	assert.Equal(t, "https://as.example.com/m/1", resp.AccessToken.Manage)
	assert.Equal(t, 600, resp.AccessToken.ExpiresIn)
	require.Len(t, resp.AccessToken.Access, 1)
	assert.Equal(t, ResourceTypeQuote, resp.AccessToken.Access[0].Type)
}

func TestTruncateToken(t *testing.T) {
	assert.Equal(t, "short", TruncateToken("short"))
	assert.Equal(t, "abcdefgh...", TruncateToken("abcdefghijklmnop"))
}
