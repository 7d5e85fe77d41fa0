package browser_test

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/playwright-community/playwright-go"
	_ "modernc.org/sqlite"

	"clubdesk/internal/adapters/api"
	web "clubdesk/internal/adapters/http"
	"clubdesk/internal/adapters/http/perf"
	"clubdesk/internal/adapters/storage"
	resetflowStore "clubdesk/internal/adapters/storage/resetflow"
	sessionStore "clubdesk/internal/adapters/storage/session"
	memberDomain "clubdesk/internal/domain/member"
)

// Credentials the fake backend accepts for the test admin.
const (
	adminEmail    = "admin@club.example"
	adminPassword = "correct-horse"
)

// fakeUpstream stands in for the club backend. It keeps member rows in
// memory and answers the member list endpoint with server-side search,
// ordering and page math, the way the real backend does. Endpoints the
// browser tests don't script return empty success envelopes so
// unrelated screens still render.
type fakeUpstream struct {
	srv *httptest.Server

	mu      sync.Mutex
	members []memberDomain.Member
}

func newFakeUpstream(t *testing.T) *fakeUpstream {
	t.Helper()
	f := &fakeUpstream{}

	mux := http.NewServeMux()
	mux.HandleFunc("POST "+api.PathLogin, f.handleLogin)
	mux.HandleFunc("POST "+api.PathLogout, func(w http.ResponseWriter, r *http.Request) {
		writeData(w, nil, nil)
	})
	mux.HandleFunc("GET "+api.PathMembers, f.handleMemberList)
	mux.HandleFunc("GET "+api.ChoicesMembershipTypes, func(w http.ResponseWriter, r *http.Request) {
		writeData(w, []api.Choice{{ID: 1, Name: "Life"}, {ID: 2, Name: "General"}}, nil)
	})
	mux.HandleFunc("GET "+api.ChoicesMemberStatuses, func(w http.ResponseWriter, r *http.Request) {
		writeData(w, []api.Choice{
			{ID: 1, Name: memberDomain.StatusActive},
			{ID: 2, Name: memberDomain.StatusInactive},
			{ID: 3, Name: memberDomain.StatusExpired},
		}, nil)
	})
	// Everything else: empty page for reads, plain success for writes.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			writeData(w, []struct{}{}, &api.Pagination{TotalPages: 1, CurrentPage: 1, PageSize: 1})
			return
		}
		writeData(w, nil, nil)
	})

	f.srv = httptest.NewServer(mux)
	t.Cleanup(f.srv.Close)
	return f
}

// seedMember adds one member row to the fake backend's dataset.
func (f *fakeUpstream) seedMember(m memberDomain.Member) {
	f.mu.Lock()
	f.members = append(f.members, m)
	f.mu.Unlock()
}

func (f *fakeUpstream) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil ||
		creds.Email != adminEmail || creds.Password != adminPassword {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	writeData(w, map[string]any{
		"access": "test-backend-token",
		"user": map[string]string{
			"id":    "admin-1",
			"email": adminEmail,
			"name":  "Test Admin",
		},
	}, nil)
}

// handleMemberList applies search, exact-match filters, ordering and
// paging to the in-memory dataset before answering, so list screens see
// the same server-computed page math they would get from production.
func (f *fakeUpstream) handleMemberList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	f.mu.Lock()
	rows := make([]memberDomain.Member, len(f.members))
	copy(rows, f.members)
	f.mu.Unlock()

	if search := strings.ToLower(q.Get("search")); search != "" {
		var kept []memberDomain.Member
		for _, m := range rows {
			hay := strings.ToLower(m.FirstName + " " + m.LastName + " " + m.Email + " " + m.BatchNumber)
			if strings.Contains(hay, search) {
				kept = append(kept, m)
			}
		}
		rows = kept
	}
	for _, key := range []string{"membership_type", "membership_status"} {
		want := q.Get(key)
		if want == "" {
			continue
		}
		var kept []memberDomain.Member
		for _, m := range rows {
			if memberField(m, key) == want {
				kept = append(kept, m)
			}
		}
		rows = kept
	}

	if ordering := q.Get("ordering"); ordering != "" {
		desc := strings.HasPrefix(ordering, "-")
		col := strings.TrimPrefix(ordering, "-")
		sort.SliceStable(rows, func(i, j int) bool {
			a, b := memberField(rows[i], col), memberField(rows[j], col)
			if desc {
				return a > b
			}
			return a < b
		})
	}

	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(q.Get("page_size"))
	if pageSize < 1 {
		pageSize = 20
	}
	total := len(rows)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if end > total {
		end = total
	}

	pg := &api.Pagination{Count: total, TotalPages: totalPages, CurrentPage: page, PageSize: pageSize}
	if page < totalPages {
		next := fmt.Sprintf("%s?page=%d", api.PathMembers, page+1)
		pg.Next = &next
	}
	if page > 1 {
		prev := fmt.Sprintf("%s?page=%d", api.PathMembers, page-1)
		pg.Previous = &prev
	}
	writeData(w, rows[start:end], pg)
}

func memberField(m memberDomain.Member, col string) string {
	switch col {
	case "first_name":
		return m.FirstName
	case "last_name":
		return m.LastName
	case "email":
		return m.Email
	case "membership_type":
		return m.MembershipType
	case "membership_status":
		return m.Status
	case "batch_number":
		return m.BatchNumber
	}
	return ""
}

func writeData(w http.ResponseWriter, v any, pg *api.Pagination) {
	env := api.Envelope{Code: http.StatusOK, Status: api.StatusSuccess, Pagination: pg}
	if v != nil {
		raw, err := json.Marshal(v)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		env.Data = raw
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(env)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(api.Envelope{Code: status, Status: api.StatusError, Message: message})
}

// testApp runs the dashboard against a fake backend with a temporary
// local database, plus a headless browser to drive it.
type testApp struct {
	BaseURL  string
	Upstream *fakeUpstream
	PW       *playwright.Playwright
	Browser  playwright.Browser
}

// findProjectRoot walks up from the current directory until it finds
// go.mod, so templates and static assets resolve via relative paths.
func findProjectRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (no go.mod)")
		}
		dir = parent
	}
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	root := findProjectRoot(t)
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(root); err != nil {
		t.Fatalf("failed to chdir to project root: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(origDir) })

	upstream := newFakeUpstream(t)

	dbPath := filepath.Join(t.TempDir(), "clubdesk_test.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := storage.InitDB(db); err != nil {
		t.Fatalf("failed to init database: %v", err)
	}

	// Grab a free port, then release it for the app server.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to find free port: %v", err)
	}
	port := ln.Addr().(*net.TCPAddr).Port
	_ = ln.Close()
	addr := fmt.Sprintf("127.0.0.1:%d", port)

	// The CSRF layer reads trusted origins at mux construction time.
	t.Setenv("CLUBDESK_TRUSTED_ORIGINS", fmt.Sprintf("127.0.0.1:%d,localhost:%d", port, port))

	// Page loads pull several assets each; the production limit trips.
	web.RateLimitPerSecond = 1000

	collector := perf.NewCollector(perf.DefaultRingSize)
	timedDB := storage.NewTimedDB(db)
	backend := api.New(upstream.srv.URL, api.WithCollector(collector))
	deps := web.Deps{
		Backend:  backend,
		Choices:  api.NewChoiceCache(backend),
		Sessions: sessionStore.NewSQLiteStore(timedDB),
		Flows:    resetflowStore.NewSQLiteStore(timedDB),
	}

	server := &http.Server{Addr: addr, Handler: web.NewMux("static", deps, collector)}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			t.Errorf("server error: %v", err)
		}
	}()
	t.Cleanup(func() { _ = server.Close() })

	baseURL := "http://" + addr
	waitForServer(t, baseURL+"/login")

	pw, err := playwright.Run()
	if err != nil {
		t.Skipf("playwright not available: %v", err)
	}
	t.Cleanup(func() { _ = pw.Stop() })

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		t.Skipf("failed to launch browser: %v", err)
	}
	t.Cleanup(func() { _ = browser.Close() })

	return &testApp{
		BaseURL:  baseURL,
		Upstream: upstream,
		PW:       pw,
		Browser:  browser,
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := http.Get(url)
		if err == nil {
			resp.Body.Close()
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatal("server did not become ready")
}

func (app *testApp) newPage(t *testing.T) playwright.Page {
	t.Helper()
	page, err := app.Browser.NewPage()
	if err != nil {
		t.Fatalf("failed to open page: %v", err)
	}
	t.Cleanup(func() { _ = page.Close() })
	return page
}

// login signs the test admin in through the login form and waits for
// the dashboard to load.
func (app *testApp) login(t *testing.T, page playwright.Page) {
	t.Helper()
	if _, err := page.Goto(app.BaseURL + "/login"); err != nil {
		t.Fatalf("failed to open login page: %v", err)
	}
	if err := page.Locator("input[name=email]").Fill(adminEmail); err != nil {
		t.Fatalf("failed to fill email: %v", err)
	}
	if err := page.Locator("input[name=password]").Fill(adminPassword); err != nil {
		t.Fatalf("failed to fill password: %v", err)
	}
	if err := page.Locator("button[type=submit]").Click(); err != nil {
		t.Fatalf("failed to submit login form: %v", err)
	}
	if err := page.WaitForURL(app.BaseURL+"/", playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(5000),
	}); err != nil {
		t.Fatalf("login did not reach the dashboard: %v", err)
	}
}
