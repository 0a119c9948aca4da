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
	"context"
	"fmt"
	"log"
	"os"

	"github.com/openpayments-labs/openpayments-go/pkg/client"
	"github.com/openpayments-labs/openpayments-go/pkg/keys"
	"github.com/openpayments-labs/openpayments-go/pkg/signer"
)

func main() {
	fmt.Println("Open Payments Go - Wallet Info Example")
	fmt.Println("======================================")

	walletAddress := os.Getenv("WALLET_ADDRESS")
	if walletAddress == "" {
		log.Fatal("Set WALLET_ADDRESS to your wallet address URL")
	}
	privateKeyPath := os.Getenv("PRIVATE_KEY_PATH")
	if privateKeyPath == "" {
		privateKeyPath = "keys/key-1_private.pem"
	}
	keyID := os.Getenv("KEY_ID")
	if keyID == "" {
		keyID = "key-1"
	}

	ctx := context.Background()

	// Load the signing key saved by the generate-keys example
	fmt.Println("\n1. Loading signing key...")
	privateKey, err := keys.LoadPrivateKey(privateKeyPath)
	if err != nil {
		log.Fatalf("Failed to load private key: %v", err)
	}
	s, err := signer.NewDefaultSigner(keyID, privateKey)
	if err != nil {
		log.Fatalf("Failed to create signer: %v", err)
	}
	fmt.Printf("   Key ID: %s\n", keyID)

	// Create the wallet client
	fmt.Println("\n2. Creating wallet client...")
	wc, err := client.NewWalletClient(walletAddress, s, nil)
	if err != nil {
		log.Fatalf("Failed to create wallet client: %v", err)
	}

	// Look up the public wallet address document
	fmt.Printf("\n3. Fetching wallet info for %s...\n", walletAddress)
	info, err := wc.GetWalletInfo(ctx, "")
	if err != nil {
		log.Fatalf("Failed to fetch wallet info: %v", err)
	}

	fmt.Println("\nWallet address document:")
	fmt.Printf("   ID:              %s\n", info.ID)
	fmt.Printf("   Public name:     %s\n", info.PublicName)
	fmt.Printf("   Asset:           %s (scale %d)\n", info.AssetCode, info.AssetScale)
	fmt.Printf("   Auth server:     %s\n", info.AuthServer)
	fmt.Printf("   Resource server: %s\n", info.ResourceServer)

	fmt.Println("\nThe auth server URL is where grant requests go; the")
	fmt.Println("resource server URL hosts payments and quotes.")
}
