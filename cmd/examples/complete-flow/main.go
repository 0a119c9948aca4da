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
	fmt.Println("Open Payments Go - Complete Payment Flow")
	fmt.Println("========================================")

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

	// Step 1: resolve both wallet address documents
	fmt.Println("\nStep 1: Resolve wallet addresses")
	senderInfo, err := wc.GetWalletInfo(ctx, "")
	if err != nil {
		log.Fatalf("Failed to fetch sender wallet info: %v", err)
	}
	receiverInfo, err := wc.GetWalletInfo(ctx, receiverWallet)
	if err != nil {
		log.Fatalf("Failed to fetch receiver wallet info: %v", err)
	}
	fmt.Printf("   Sender:   %s\n", senderInfo.ID)
	fmt.Printf("   Receiver: %s\n", receiverInfo.ID)

	grants := client.NewGrantClient(receiverInfo.AuthServer, s, nil)

	// Step 2: non-interactive grant for incoming payments on the receiver
	fmt.Println("\nStep 2: Request incoming-payment grant (non-interactive)")
	incomingGrant, err := grants.RequestGrantNonInteractive(ctx, []protocol.AccessRight{
		{
			Type:    protocol.ResourceTypeIncomingPayment,
			Actions: []protocol.Action{protocol.ActionCreate, protocol.ActionRead},
		},
	}, "openpayments-go-example")
	if err != nil {
		log.Fatalf("Failed to obtain incoming-payment grant: %v", err)
	}
	incomingToken := incomingGrant.AccessToken.Value
	fmt.Printf("   Access token: %s\n", protocol.TruncateToken(incomingToken))

	// Step 3: create the incoming payment on the receiver's account
	fmt.Println("\nStep 3: Create incoming payment")
	rc := client.NewResourceClient(receiverInfo.ResourceServer, incomingToken, nil)
	incoming, err := rc.CreateIncomingPayment(ctx, receiverInfo.ID, &protocol.Amount{
		Value:      "500",
		AssetCode:  receiverInfo.AssetCode,
		AssetScale: receiverInfo.AssetScale,
	}, &client.IncomingPaymentOptions{
		Metadata: map[string]any{"description": "Complete flow example"},
	})
	if err != nil {
		log.Fatalf("Failed to create incoming payment: %v", err)
	}
	fmt.Printf("   Incoming payment ID: %s\n", incoming.ID)

	// Step 4: quote the transfer from the sender's side
	fmt.Println("\nStep 4: Create quote")
	quote, err := wc.CreateQuote(ctx, receiverWallet, &protocol.Amount{
		Value:      "500",
		AssetCode:  senderInfo.AssetCode,
		AssetScale: senderInfo.AssetScale,
	}, nil)
	if err != nil {
		log.Fatalf("Failed to create quote: %v", err)
	}
	fmt.Printf("   Quote ID:   %s\n", quote.ID)
	fmt.Printf("   Expires at: %s\n", quote.ExpiresAt)

	// Step 5: outgoing payments move money, so the grant is interactive
	fmt.Println("\nStep 5: Request outgoing-payment grant (interactive)")
	senderGrants := client.NewGrantClient(senderInfo.AuthServer, s, nil)
	outgoingGrant, err := senderGrants.RequestGrantInteractive(ctx, []protocol.AccessRight{
		{
			Type:    protocol.ResourceTypeOutgoingPayment,
			Actions: []protocol.Action{protocol.ActionCreate, protocol.ActionRead},
		},
	}, "openpayments-go-example", "https://example.com/payment/callback")
	if err != nil {
		log.Fatalf("Failed to request outgoing-payment grant: %v", err)
	}

	if outgoingGrant.Granted() {
		// Some test environments grant immediately
		fmt.Println("   Grant issued without interaction.")
		createOutgoingPayment(ctx, senderInfo, outgoingGrant.AccessToken.Value, quote.ID)
		return
	}

	fmt.Println("   User consent required before money leaves the account.")
	fmt.Printf("   Visit: %s\n", outgoingGrant.Interact.Redirect)
	fmt.Println()
	fmt.Println("   After the account holder approves, continue the grant:")
	fmt.Printf("     grant, err := grants.ContinueGrant(ctx, %q, <continue token>)\n",
		outgoingGrant.Continue.URI)
	fmt.Println("   and create the outgoing payment with the issued token.")
	fmt.Println("   The storefront-flow example runs this continuation end to end.")
}

func createOutgoingPayment(ctx context.Context, sender *protocol.WalletAddress, token, quoteID string) {
	rc := client.NewResourceClient(sender.ResourceServer, token, nil)
	payment, err := rc.CreateOutgoingPayment(ctx, sender.ID, quoteID, map[string]any{
		"note": "Complete flow example",
	})
	if err != nil {
		log.Fatalf("Failed to create outgoing payment: %v", err)
	}
	fmt.Printf("   Outgoing payment ID: %s\n", payment.ID)
	fmt.Println("\nPayment created. Settlement happens between the wallets.")
}
