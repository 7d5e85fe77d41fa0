package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"time"

	"clubdesk/internal/adapters/api"
	"clubdesk/internal/adapters/email"
	"clubdesk/internal/adapters/http/middleware"
	"clubdesk/internal/adapters/http/perf"
	resetflowStore "clubdesk/internal/adapters/storage/resetflow"
	sessionStore "clubdesk/internal/adapters/storage/session"
)

// Deps holds the adapters the handlers depend on. The backend client
// carries a service token; per-request clients are derived from it
// with the logged-in user's token.
type Deps struct {
	Backend  *api.Client
	Choices  *api.ChoiceCache
	Sessions sessionStore.Store
	Flows    resetflowStore.Store
}

// loadCSRFKey reads the CSRF secret from CLUBDESK_CSRF_KEY (hex-encoded, 32 bytes).
// In production, the key MUST be set. In development, a random key is generated per startup.
func loadCSRFKey() []byte {
	if keyHex := os.Getenv("CLUBDESK_CSRF_KEY"); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("CLUBDESK_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if os.Getenv("CLUBDESK_ENV") == "production" {
		log.Fatal("CLUBDESK_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key (sessions won't survive restart). Set CLUBDESK_CSRF_KEY for production.")
	return key
}

// Global dependencies (set by NewMux)
var deps Deps

// Global session resolver (set by NewMux)
var sessions *middleware.Sessions

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// Global perf collector (set by NewMux)
var perfCollector *perf.Collector

// Global email sender instance (set by SetEmailSender)
var emailSender email.Sender

// Email configuration
var emailFromAddress string
var emailReplyTo string

// SetEmailSender sets the global email sender for the application.
func SetEmailSender(sender email.Sender, from, replyTo string) {
	emailSender = sender
	emailFromAddress = from
	emailReplyTo = replyTo
}

// NewMux wires HTTP handlers for the app.
func NewMux(staticDir string, d Deps, collector *perf.Collector) http.Handler {
	deps = d
	perfCollector = collector
	sessions = middleware.NewSessions(d.Sessions)
	middleware.SecureCookies = os.Getenv("CLUBDESK_ENV") == "production"

	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
	registerRoutes(mux)

	// CSRF key: 32-byte hex-encoded secret from env var
	csrfKey := loadCSRFKey()

	// Rate limiter: configurable requests per second per IP (OWASP A04)
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	// Apply middleware: Timing -> RateLimit -> Auth -> CSRF -> SecurityHeaders -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey),
		middleware.Auth(sessions),
		middleware.RateLimit(limiter),
		middleware.Timing(collector),
	)
}

// backendFor returns a client authenticated as the logged-in user, or
// the service client when the request has no session.
func backendFor(r *http.Request) *api.Client {
	if sess, ok := middleware.GetSessionFromContext(r.Context()); ok && sess.APIToken != "" {
		return deps.Backend.WithToken(sess.APIToken)
	}
	return deps.Backend
}
