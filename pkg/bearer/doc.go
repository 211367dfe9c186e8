// Package bearer authenticates HTTP requests that present a session token
// in the Authorization header.
//
// The header name and the "Bearer" scheme are matched case-insensitively,
// and any amount of whitespace may separate the scheme from the credential.
// Every rejected credential produces the same generic unauthorized response;
// the reason a token failed verification is logged server-side and never
// reaches the client.
//
// # Quick Start
//
// Construct the middleware around a session verifier:
//
//	import (
//	    "git.sr.ht/~jakintosh/warrant/pkg/bearer"
//	    "git.sr.ht/~jakintosh/warrant/pkg/tokens"
//	)
//
//	verifier := tokens.NewVerifier(tokens.VerifierConfig{
//	    SessionSecret: secret,
//	})
//	auth := bearer.New(verifier)
//
// # Protecting Routes
//
// Handlers that must not run unauthenticated call RequireSubject and return
// when ok is false; the unauthorized response has already been written:
//
//	func meHandler(w http.ResponseWriter, r *http.Request) {
//	    subject, ok := auth.RequireSubject(w, r)
//	    if !ok {
//	        return
//	    }
//	    // ... load the user identified by subject
//	}
//
// The wrapper form does the same around a whole handler, passing the subject
// through the request context:
//
//	mux.Handle("/api/me", auth.Require(http.HandlerFunc(meHandler)))
//
//	func meHandler(w http.ResponseWriter, r *http.Request) {
//	    subject, _ := bearer.SubjectFromContext(r.Context())
//	    // ...
//	}
//
// # Optional Authentication
//
// Routes that personalize output but serve anonymous requests too use
// OptionalUserID, which never writes to the response:
//
//	if subject, ok := auth.OptionalUserID(r.Header); ok {
//	    // ... personalized view
//	}
package bearer
