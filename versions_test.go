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

package openpayments

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openpayments-labs/openpayments-go/pkg/version"
)

func TestRootVersionReExports(t *testing.T) {
	// The root constants track pkg/version, the single source of truth
	assert.Equal(t, version.Version, Version)
	assert.Equal(t, version.OpenPaymentsVersion, OpenPaymentsVersion)
	assert.Equal(t, version.GNAPDraftVersion, GNAPDraftVersion)

	info := GetVersionInfo()
	assert.Equal(t, version.Get(), info)
	assert.Equal(t, Version, info.LibraryVersion)
}
