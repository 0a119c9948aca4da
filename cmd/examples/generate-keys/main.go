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

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/openpayments-labs/openpayments-go/pkg/keys"
)

func main() {
	fmt.Println("Open Payments Go - Key Generation Example")
	fmt.Println("=========================================")

	keyID := os.Getenv("KEY_ID")
	if keyID == "" {
		keyID = "key-1"
	}
	outDir := os.Getenv("KEYS_DIR")
	if outDir == "" {
		outDir = "keys"
	}

	// Generate an Ed25519 key pair
	fmt.Printf("\n1. Generating Ed25519 key pair with key ID %q...\n", keyID)
	kp, err := keys.GenerateKeyPair(keyID)
	if err != nil {
		log.Fatalf("Failed to generate key pair: %v", err)
	}
	fmt.Println("   Key pair generated.")

	// Save both halves as PEM files
	fmt.Printf("\n2. Saving keys to %s/...\n", outDir)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		log.Fatalf("Failed to create key directory: %v", err)
	}
	privPath, pubPath, err := kp.Save(outDir)
	if err != nil {
		log.Fatalf("Failed to save keys: %v", err)
	}
	fmt.Printf("   Private key: %s\n", privPath)
	fmt.Printf("   Public key:  %s\n", pubPath)

	// Export the public key as a JWK Set for the wallet provider
	fmt.Println("\n3. Exporting public key as a JWK Set...")
	jwks, err := keys.PublicJWKS(kp)
	if err != nil {
		log.Fatalf("Failed to export JWK set: %v", err)
	}
	fmt.Println(string(jwks))

	fmt.Println("\nNext steps:")
	fmt.Println("  1. Register the JWK Set above with your wallet provider")
	fmt.Println("     (for example at https://wallet.interledger-test.dev)")
	fmt.Println("  2. Set WALLET_ADDRESS, PRIVATE_KEY_PATH, and KEY_ID")
	fmt.Println("  3. Run the wallet-info example to verify the setup")
}
