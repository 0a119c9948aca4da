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

package keys

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// KeyPair holds an Ed25519 signing key and the key ID under which its public
// half is published
type KeyPair struct {
	KeyID   string
	Private ed25519.PrivateKey
	Public  ed25519.PublicKey
}

// GenerateKeyPair generates a new Ed25519 key pair.
// If keyID is empty, a random UUID is assigned.
func GenerateKeyPair(keyID string) (*KeyPair, error) {
	if keyID == "" {
		keyID = uuid.NewString()
	}

	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to generate ed25519 key: %w", err)
	}

	return &KeyPair{KeyID: keyID, Private: priv, Public: pub}, nil
}

// Save writes the key pair to dir as <keyID>_private.pem (PKCS#8) and
// <keyID>_public.pem (PKIX), returning the two paths. The private key file
// is created with owner-only permissions.
func (kp *KeyPair) Save(dir string) (privatePath, publicPath string, err error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("failed to create key directory: %w", err)
	}

	privDER, err := x509.MarshalPKCS8PrivateKey(kp.Private)
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal private key: %w", err)
	}

	pubDER, err := x509.MarshalPKIXPublicKey(kp.Public)
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal public key: %w", err)
	}

	privatePath = filepath.Join(dir, kp.KeyID+"_private.pem")
	privPEM := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: privDER})
	if err := os.WriteFile(privatePath, privPEM, 0o600); err != nil {
		return "", "", fmt.Errorf("failed to write private key: %w", err)
	}

	publicPath = filepath.Join(dir, kp.KeyID+"_public.pem")
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER})
	if err := os.WriteFile(publicPath, pubPEM, 0o644); err != nil {
		return "", "", fmt.Errorf("failed to write public key: %w", err)
	}

	return privatePath, publicPath, nil
}

// LoadPrivateKey reads an unencrypted PKCS#8 PEM file and returns the
// Ed25519 private key it contains
func LoadPrivateKey(path string) (ed25519.PrivateKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read private key file: %w", err)
	}

	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("no PEM block found in %s", path)
	}

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	priv, ok := parsed.(ed25519.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("key in %s is %T, not ed25519", path, parsed)
	}

	return priv, nil
}

// LoadPublicKey reads a PKIX PEM file and returns the Ed25519 public key it
// contains
func LoadPublicKey(path string) (ed25519.PublicKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read public key file: %w", err)
	}

	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("no PEM block found in %s", path)
	}

	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	pub, ok := parsed.(ed25519.PublicKey)
	if !ok {
		return nil, fmt.Errorf("key in %s is %T, not ed25519", path, parsed)
	}

	return pub, nil
}
