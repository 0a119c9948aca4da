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

// A storefront selling on behalf of a merchant: the seller's wallet receives
// an incoming payment, the buyer quotes and approves the transfer, and the
// storefront finishes the grant continuation to create the outgoing payment.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/openpayments-labs/openpayments-go/pkg/client"
	"github.com/openpayments-labs/openpayments-go/pkg/keys"
	"github.com/openpayments-labs/openpayments-go/pkg/protocol"
	"github.com/openpayments-labs/openpayments-go/pkg/signer"
)

func printStep(number int, title string) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("Step %d: %s\n", number, title)
	fmt.Println(strings.Repeat("=", 70))
}

func main() {
	fmt.Println("Open Payments Go - Storefront Flow")
	fmt.Println("==================================")
	fmt.Println()
	fmt.Println("Scenario:")
	fmt.Println("  Seller: merchant whose wallet receives the payment")
	fmt.Println("  Buyer:  account holder who approves the transfer")
	fmt.Println("  Storefront: this program, driving the protocol for both")

	sellerWallet := os.Getenv("SELLER_WALLET_ADDRESS")
	buyerWallet := os.Getenv("BUYER_WALLET_ADDRESS")
	if sellerWallet == "" || buyerWallet == "" {
		log.Fatal("Set SELLER_WALLET_ADDRESS and BUYER_WALLET_ADDRESS")
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
	wc, err := client.NewWalletClient(buyerWallet, s, nil)
	if err != nil {
		log.Fatalf("Failed to create wallet client: %v", err)
	}

	sellerInfo, err := wc.GetWalletInfo(ctx, sellerWallet)
	if err != nil {
		log.Fatalf("Failed to resolve seller wallet: %v", err)
	}
	buyerInfo, err := wc.GetWalletInfo(ctx, "")
	if err != nil {
		log.Fatalf("Failed to resolve buyer wallet: %v", err)
	}

	price := &protocol.Amount{
		Value:      "500",
		AssetCode:  sellerInfo.AssetCode,
		AssetScale: sellerInfo.AssetScale,
	}

	// Step 1: grant to create an incoming payment on the seller's account
	printStep(1, "Authorize incoming payment on the seller's account")
	sellerGrants := client.NewGrantClient(sellerInfo.AuthServer, s, nil)
	incomingGrant, err := sellerGrants.RequestGrantNonInteractive(ctx, []protocol.AccessRight{
		{
			Type:    protocol.ResourceTypeIncomingPayment,
			Actions: []protocol.Action{protocol.ActionCreate, protocol.ActionRead},
		},
	}, "storefront")
	if err != nil {
		log.Fatalf("Failed to obtain incoming-payment grant: %v", err)
	}
	fmt.Printf("Access token: %s\n", protocol.TruncateToken(incomingGrant.AccessToken.Value))

	// Step 2: create the incoming payment the buyer will pay into
	printStep(2, "Create incoming payment on the seller's account")
	sellerResources := client.NewResourceClient(sellerInfo.ResourceServer, incomingGrant.AccessToken.Value, nil)
	incoming, err := sellerResources.CreateIncomingPayment(ctx, sellerInfo.ID, price, &client.IncomingPaymentOptions{
		Metadata: map[string]any{"description": "Song: Sunset Melody"},
	})
	if err != nil {
		log.Fatalf("Failed to create incoming payment: %v", err)
	}
	fmt.Printf("Incoming payment: %s\n", incoming.ID)

	// Step 3: quote the transfer from the buyer's account
	printStep(3, "Quote the transfer from the buyer's account")
	quote, err := wc.CreateQuote(ctx, sellerWallet, price, nil)
	if err != nil {
		log.Fatalf("Failed to create quote: %v", err)
	}
	fmt.Printf("Quote: %s (expires %s)\n", quote.ID, quote.ExpiresAt)

	// Step 4: interactive grant, buyer consents at their wallet
	printStep(4, "Request buyer consent (interactive grant)")
	buyerGrants := client.NewGrantClient(buyerInfo.AuthServer, s, nil)
	outgoingGrant, err := buyerGrants.RequestGrantInteractive(ctx, []protocol.AccessRight{
		{
			Type:    protocol.ResourceTypeOutgoingPayment,
			Actions: []protocol.Action{protocol.ActionCreate, protocol.ActionRead},
		},
	}, "storefront", "https://storefront.example.com/payment/callback")
	if err != nil {
		log.Fatalf("Failed to request outgoing-payment grant: %v", err)
	}

	token := ""
	if outgoingGrant.Granted() {
		token = outgoingGrant.AccessToken.Value
		fmt.Println("Grant issued without interaction.")
	} else {
		if outgoingGrant.Continue == nil {
			log.Fatalf("Authorization server requires interaction but returned no continuation handle; cannot finish the grant")
		}
		fmt.Println("The buyer must approve the payment at their wallet:")
		fmt.Printf("  %s\n", outgoingGrant.Interact.Redirect)
		fmt.Println()
		fmt.Print("Press Enter once the buyer has approved... ")
		bufio.NewReader(os.Stdin).ReadString('\n')

		// Step 5: continue the grant now that the buyer approved
		printStep(5, "Continue the grant")
		granted, err := buyerGrants.ContinueGrant(ctx,
			outgoingGrant.Continue.URI,
			outgoingGrant.Continue.AccessToken.Value,
		)
		if err != nil {
			log.Fatalf("Grant continuation failed: %v", err)
		}
		token = granted.AccessToken.Value
		fmt.Printf("Access token: %s\n", protocol.TruncateToken(token))
	}

	// Step 6: create the outgoing payment with the issued token
	printStep(6, "Create outgoing payment from the buyer's account")
	buyerResources := client.NewResourceClient(buyerInfo.ResourceServer, token, nil)
	outgoing, err := buyerResources.CreateOutgoingPayment(ctx, buyerInfo.ID, quote.ID, map[string]any{
		"note": "Payment for Sunset Melody",
	})
	if err != nil {
		log.Fatalf("Failed to create outgoing payment: %v", err)
	}
	fmt.Printf("Outgoing payment: %s\n", outgoing.ID)

	fmt.Println()
	fmt.Println("Transaction complete. The wallets settle between themselves;")
	fmt.Println("neither side exposed account credentials to the storefront.")
}
