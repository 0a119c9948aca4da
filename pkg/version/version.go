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

// Package version exposes the library and protocol versions in a form
// importable from any package.
package version

const (
	// Version is the current version of openpayments-go
	Version = "1.0.0-dev"

	// OpenPaymentsVersion is the Open Payments specification version this
	// library targets
	OpenPaymentsVersion = "1.1"

	// GNAPDraftVersion is the GNAP draft the grant flow follows
	GNAPDraftVersion = "draft-ietf-gnap-core-protocol-20"
)

// Info contains detailed version information
type Info struct {
	LibraryVersion      string
	OpenPaymentsVersion string
	GNAPDraftVersion    string
}

// Get returns detailed version information
func Get() Info {
	return Info{
		LibraryVersion:      Version,
		OpenPaymentsVersion: OpenPaymentsVersion,
		GNAPDraftVersion:    GNAPDraftVersion,
	}
}
