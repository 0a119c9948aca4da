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

// Package openpayments re-exports the version information from pkg/version
// at the module root.
package openpayments

import "github.com/openpayments-labs/openpayments-go/pkg/version"

const (
	// Version is the current version of openpayments-go
	Version = version.Version

	// OpenPaymentsVersion is the Open Payments specification version this
	// library targets
	OpenPaymentsVersion = version.OpenPaymentsVersion

	// GNAPDraftVersion is the GNAP draft the grant flow follows
	GNAPDraftVersion = version.GNAPDraftVersion
)

// VersionInfo contains detailed version information
type VersionInfo = version.Info

// GetVersionInfo returns detailed version information
func GetVersionInfo() VersionInfo {
	return version.Get()
}
