package bearer

import (
	"log"
	"net/http"
	"strings"
)

type LogLevel int

const (
	LogLevelNone LogLevel = iota
	LogLevelError
	LogLevelInfo
	LogLevelDebug
)
const LogLevelDefault = LogLevelError

var _logLevel LogLevel = LogLevelDefault

func _log(level LogLevel, format string, v ...any) {
	if _logLevel >= level {
		log.Printf(format, v...)
	}
}

func SetLogLevel(logLevel LogLevel) {
	_logLevel = logLevel
}

// Middleware authenticates requests that carry a bearer session token.
type Middleware struct {
	verifier TokenVerifier
}

func New(verifier TokenVerifier) *Middleware {
	return &Middleware{verifier: verifier}
}

/*
Token pulls the bearer credential out of a header collection. The header
name and the scheme are matched case-insensitively, and one or more
whitespace characters may separate the scheme from the credential.
*/
func Token(h http.Header) (string, bool) {
	auth := h.Get("Authorization")
	if auth == "" {
		// Get only finds canonically-keyed entries; hand-built header
		// maps may carry the name in another case.
		for name, values := range h {
			if strings.EqualFold(name, "Authorization") && len(values) > 0 {
				auth = values[0]
				break
			}
		}
	}
	if auth == "" {
		return "", false
	}

	parts := strings.Fields(auth)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

/*
Authenticate extracts the bearer credential and verifies it as a session
token, returning the token subject. The reason a credential was rejected is
logged, never returned; callers only ever see ok=false.
*/
func (m *Middleware) Authenticate(h http.Header) (string, bool) {
	token, ok := Token(h)
	if !ok {
		return "", false
	}

	claims, err := m.verifier.DecodeSession(token, false)
	if err != nil {
		_log(LogLevelDebug, "bearer token rejected: %v\n", err)
		return "", false
	}
	return claims.Subject, true
}

/*
OptionalUserID behaves exactly like Authenticate. The name states the
intent at call sites that proceed without a user.
*/
func (m *Middleware) OptionalUserID(h http.Header) (string, bool) {
	return m.Authenticate(h)
}

/*
RequireSubject authenticates the request, writing the fixed unauthorized
response on failure. When ok is false the response is complete and the
caller returns immediately.
*/
func (m *Middleware) RequireSubject(
	w http.ResponseWriter,
	r *http.Request,
) (string, bool) {
	subject, ok := m.Authenticate(r.Header)
	if !ok {
		WriteUnauthorized(w)
		return "", false
	}
	return subject, true
}

/*
Require wraps a handler, rejecting unauthenticated requests with the fixed
unauthorized response. The wrapped handler reads the subject with
SubjectFromContext.
*/
func (m *Middleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject, ok := m.RequireSubject(w, r)
		if !ok {
			return
		}
		next.ServeHTTP(w, r.WithContext(WithSubject(r.Context(), subject)))
	})
}

// WriteUnauthorized writes the fixed unauthorized response. The body is the
// same no matter which check rejected the credential.
func WriteUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"unauthorized"}`))
}
