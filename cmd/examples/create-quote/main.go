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
	"github.com/openpayments-labs/openpayments-go/pkg/protocol"
	"github.com/openpayments-labs/openpayments-go/pkg/signer"
)

func main() {
	fmt.Println("Open Payments Go - Quote Example")
	fmt.Println("================================")

	walletAddress := os.Getenv("WALLET_ADDRESS")
	receiverWallet := os.Getenv("RECEIVER_WALLET_ADDRESS")
	if walletAddress == "" || receiverWallet == "" {
		log.Fatal("Set WALLET_ADDRESS and RECEIVER_WALLET_ADDRESS")
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

	privateKey, err := keys.LoadPrivateKey(privateKeyPath)
	if err != nil {
		log.Fatalf("Failed to load private key: %v", err)
	}
	s, err := signer.NewDefaultSigner(keyID, privateKey)
	if err != nil {
		log.Fatalf("Failed to create signer: %v", err)
	}
	wc, err := client.NewWalletClient(walletAddress, s, nil)
	if err != nil {
		log.Fatalf("Failed to create wallet client: %v", err)
	}

	// Verify the receiver's wallet before quoting
	fmt.Printf("\n1. Verifying receiver wallet %s...\n", receiverWallet)
	receiverInfo, err := wc.GetWalletInfo(ctx, receiverWallet)
	if err != nil {
		log.Fatalf("Failed to fetch receiver wallet info: %v", err)
	}
	fmt.Printf("   Receiver: %s (%s, scale %d)\n",
		receiverInfo.ID, receiverInfo.AssetCode, receiverInfo.AssetScale)

	// Quote sending $5.00 USD (value in minor units, scale 2)
	sendAmount := &protocol.Amount{
		Value:      "500",
		AssetCode:  "USD",
		AssetScale: 2,
	}

	fmt.Printf("\n2. Requesting quote to send %s %s (scale %d)...\n",
		sendAmount.Value, sendAmount.AssetCode, sendAmount.AssetScale)
	quote, err := wc.CreateQuote(ctx, receiverWallet, sendAmount, nil)
	if err != nil {
		log.Fatalf("Failed to create quote: %v", err)
	}

	fmt.Println("\nQuote:")
	fmt.Printf("   ID:             %s\n", quote.ID)
	if quote.SendAmount != nil {
		fmt.Printf("   You send:       %s %s\n", quote.SendAmount.Value, quote.SendAmount.AssetCode)
	}
	if quote.ReceiveAmount != nil {
		fmt.Printf("   They receive:   %s %s\n", quote.ReceiveAmount.Value, quote.ReceiveAmount.AssetCode)
	}
	fmt.Printf("   Expires at:     %s\n", quote.ExpiresAt)

	fmt.Println("\nA quote locks the exchange terms for a short window.")
	fmt.Println("Use its ID when creating the outgoing payment (see the")
	fmt.Println("complete-flow example).")
}
