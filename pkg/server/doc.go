// Package server provides HTTP middleware for verifying signed Open
// Payments requests.
//
// The middleware checks the Signature and Signature-Input headers on every
// incoming request, resolves the signer's public key through a
// verifier.KeySelector (typically from the JWK Set a wallet address
// publishes), and rejects requests whose Ed25519 signature does not match
// the canonical string of method, URL, timestamp, and body digest.
//
// # Basic Usage
//
//	selector, _ := verifier.NewJWKSKeySelector(jwksDocument)
//	middleware := server.NewSignatureAuthMiddleware(selector)
//
//	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//	    keyID, ok := server.KeyIDFromContext(r.Context())
//	    if !ok {
//	        http.Error(w, "Unauthorized", http.StatusUnauthorized)
//	        return
//	    }
//	    fmt.Fprintf(w, "signed by: %s", keyID)
//	})
//
//	http.Handle("/incoming-payments", middleware.Wrap(handler))
//
// # Optional Verification
//
//	// Allow unsigned requests to pass through (no key ID in context)
//	middleware.SetOptional(true)
//
// # Custom Error Handler
//
//	middleware.SetErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
//	    log.Printf("authentication failed: %v", err)
//	    http.Error(w, "Forbidden", http.StatusForbidden)
//	})
//
// OPTIONS requests pass through without verification so CORS preflights
// work. The request body is buffered during verification and restored
// before the wrapped handler runs, so handlers can read it as usual.
//
// The middleware is safe for concurrent use by multiple goroutines.
package server
