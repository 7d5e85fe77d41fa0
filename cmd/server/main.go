package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"clubdesk/internal/adapters/api"
	emailPkg "clubdesk/internal/adapters/email"
	web "clubdesk/internal/adapters/http"
	"clubdesk/internal/adapters/http/perf"
	"clubdesk/internal/adapters/storage"
	resetflowStore "clubdesk/internal/adapters/storage/resetflow"
	sessionStore "clubdesk/internal/adapters/storage/session"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	apiURL := os.Getenv("CLUBDESK_API_URL")
	if apiURL == "" {
		log.Fatal("CLUBDESK_API_URL is required (base URL of the club backend API)")
	}

	// Local state database: sessions and reset flows only. All club
	// data lives behind the backend API.
	dbPath := envOrDefault("CLUBDESK_DB", "clubdesk.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}
	if err := storage.InitDB(db); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Performance instrumentation: the collector feeds /admin/perf.
	collector := perf.NewCollector(perf.DefaultRingSize)
	timedDB := storage.NewTimedDB(db)

	backend := api.New(apiURL, api.WithCollector(collector))

	deps := web.Deps{
		Backend:  backend,
		Choices:  api.NewChoiceCache(backend),
		Sessions: sessionStore.NewSQLiteStore(timedDB),
		Flows:    resetflowStore.NewSQLiteStore(timedDB),
	}

	// Configure email sender for receipt delivery
	resendKey := os.Getenv("CLUBDESK_RESEND_KEY")
	emailFrom := envOrDefault("CLUBDESK_RESEND_FROM", "ClubDesk <noreply@clubdesk.example>")
	emailReply := envOrDefault("CLUBDESK_REPLY_TO", "")
	if resendKey != "" {
		web.SetEmailSender(emailPkg.NewResendSender(resendKey, emailFrom), emailFrom, emailReply)
		log.Println("Email sender configured (Resend)")
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender(), emailFrom, emailReply)
		if os.Getenv("CLUBDESK_ENV") == "production" {
			log.Println("WARNING: CLUBDESK_RESEND_KEY is not set, email delivery is DISABLED in production")
		} else {
			log.Println("Email sender configured (noop, set CLUBDESK_RESEND_KEY for real delivery)")
		}
	}

	// Periodically clear expired sessions and abandoned reset flows.
	cleanupStop := make(chan struct{})
	go runCleanup(deps.Sessions, deps.Flows, 10*time.Minute, cleanupStop)
	defer close(cleanupStop)

	mux := web.NewMux(envOrDefault("CLUBDESK_STATIC", "static"), deps, collector)

	addr := envOrDefault("CLUBDESK_ADDR", ":8080")
	log.Printf("ClubDesk %s starting on %s (env=%s, api=%s)", version, addr, envOrDefault("CLUBDESK_ENV", "development"), apiURL)

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// runCleanup deletes expired local state on a fixed interval until
// stop is closed.
func runCleanup(sessions sessionStore.Store, flows resetflowStore.Store, every time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			if n, err := sessions.DeleteExpired(ctx, time.Now()); err != nil {
				log.Printf("session cleanup failed: %v", err)
			} else if n > 0 {
				log.Printf("session cleanup removed %d expired sessions", n)
			}
			if n, err := flows.DeleteStale(ctx, time.Now()); err != nil {
				log.Printf("reset flow cleanup failed: %v", err)
			} else if n > 0 {
				log.Printf("reset flow cleanup removed %d stale flows", n)
			}
			cancel()
		}
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
