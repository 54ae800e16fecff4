// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/crypto/bcrypt"

	"github.com/tomtom215/marquee/internal/auth"
	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/recommend"
	"github.com/tomtom215/marquee/internal/tmdb"
)

const testCatalogCSV = `title,overview,genres,keywords,cast,crew
Avatar,A marine on an alien moon fights for its people,Action Adventure Fantasy,space war alien planet,Sam Worthington Zoe Saldana,James Cameron
Titanic,An aristocrat falls in love aboard a doomed ship,Drama Romance,ship iceberg ocean love,Kate Winslet Leonardo DiCaprio,James Cameron
Avatar 2,The marine returns to the alien moon and its ocean,Action Adventure Fantasy,alien planet ocean sequel,Sam Worthington Zoe Saldana,James Cameron
Heat,A detective hunts a crew of professional thieves,Crime Thriller,heist robbery police,Al Pacino Robert De Niro,Michael Mann
Collateral,A cab driver is held hostage by a contract killer,Crime Thriller,hitman taxi night,Tom Cruise Jamie Foxx,Michael Mann
Heat,A duplicate row that should never be returned first,Crime,duplicate,Nobody,Nobody
`

const testJWTSecret = "api-test-secret-that-is-long-enough-123"

// fakeMovies implements MovieInfoProvider from a fixed table.
type fakeMovies struct {
	mu      sync.Mutex
	details map[string]*tmdb.MovieDetails
	err     error
	pages   []int
}

func (f *fakeMovies) MovieDetails(_ context.Context, title string) (*tmdb.MovieDetails, error) {
	if f.err != nil {
		return nil, f.err
	}
	if d, ok := f.details[title]; ok {
		return d, nil
	}
	return nil, tmdb.ErrMovieNotFound
}

func (f *fakeMovies) TopRated(_ context.Context, page int) (*tmdb.MoviePage, error) {
	return f.page("The Godfather", page)
}

func (f *fakeMovies) Trending(_ context.Context, page int) (*tmdb.MoviePage, error) {
	return f.page("Dune", page)
}

func (f *fakeMovies) page(title string, page int) (*tmdb.MoviePage, error) {
	f.mu.Lock()
	f.pages = append(f.pages, page)
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return &tmdb.MoviePage{
		Page:         page,
		TotalPages:   3,
		TotalResults: 60,
		Movies:       []tmdb.Movie{{ID: 1, Title: title, Genres: []string{"Drama"}}},
	}, nil
}

func (f *fakeMovies) lastPage() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.pages) == 0 {
		return 0
	}
	return f.pages[len(f.pages)-1]
}

// fakeGenerator implements TitleGenerator and records its last call.
type fakeGenerator struct {
	configured bool
	titles     []string
	err        error

	mu        sync.Mutex
	lastKind  string
	lastQuery string
	lastN     int
}

func (f *fakeGenerator) Configured() bool { return f != nil && f.configured }

func (f *fakeGenerator) GenreTitles(_ context.Context, genre string, n int) ([]string, error) {
	return f.record("genre", genre, n)
}

func (f *fakeGenerator) MoodTitles(_ context.Context, mood string, n int) ([]string, error) {
	return f.record("mood", mood, n)
}

func (f *fakeGenerator) record(kind, query string, n int) ([]string, error) {
	f.mu.Lock()
	f.lastKind, f.lastQuery, f.lastN = kind, query, n
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if len(f.titles) > n {
		return f.titles[:n], nil
	}
	return f.titles, nil
}

func (f *fakeGenerator) last() (string, string, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastKind, f.lastQuery, f.lastN
}

type testServerOptions struct {
	movies      MovieInfoProvider
	generator   TitleGenerator
	requireAuth bool
	rateLimit   int
	defaultK    int
	maxK        int
}

type testServer struct {
	handler http.Handler
	auth    *auth.Service
}

func newTestServer(t *testing.T, opts testServerOptions) *testServer {
	t.Helper()

	engine, err := recommend.NewEngine(strings.NewReader(testCatalogCSV), recommend.WithWorkers(2))
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	store, err := auth.NewBadgerUserStore("")
	if err != nil {
		t.Fatalf("NewBadgerUserStore() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })

	security := config.SecurityConfig{
		RequireAuth:       opts.requireAuth,
		JWTSecret:         testJWTSecret,
		SessionTimeout:    time.Hour,
		RateLimitReqs:     opts.rateLimit,
		RateLimitWindow:   time.Minute,
		RateLimitDisabled: opts.rateLimit == 0,
		CORSOrigins:       []string{"*"},
	}
	jwtManager, err := auth.NewJWTManager(&security)
	if err != nil {
		t.Fatalf("NewJWTManager() error = %v", err)
	}
	authService := auth.NewService(store, jwtManager, bcrypt.MinCost)

	catalog := config.CatalogConfig{DefaultK: opts.defaultK, MaxK: opts.maxK}
	if catalog.DefaultK == 0 {
		catalog.DefaultK = 3
	}
	if catalog.MaxK == 0 {
		catalog.MaxK = 100
	}

	handler := NewHandler(engine, &catalog, opts.movies, opts.generator, authService)
	router := NewRouter(handler, &security, authService)

	return &testServer{handler: router.SetupChi(), auth: authService}
}

// envelope mirrors models.APIResponse with Data left undecoded.
type envelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

func (s *testServer) do(t *testing.T, method, target string, body interface{}, header http.Header) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode envelope: %v\nbody: %s", err, rec.Body.String())
		}
	}
	return rec, env
}

func decodeData(t *testing.T, env envelope, dest interface{}) {
	t.Helper()
	if err := json.Unmarshal(env.Data, dest); err != nil {
		t.Fatalf("decode data: %v\ndata: %s", err, env.Data)
	}
}

func expectError(t *testing.T, rec *httptest.ResponseRecorder, env envelope, status int, code string) {
	t.Helper()
	if rec.Code != status {
		t.Errorf("status = %d, want %d (body %s)", rec.Code, status, rec.Body.String())
	}
	if env.Status != "error" {
		t.Errorf("envelope status = %q, want error", env.Status)
	}
	if env.Error == nil {
		t.Fatalf("envelope error = nil, want code %s", code)
	}
	if env.Error.Code != code {
		t.Errorf("error code = %q, want %q", env.Error.Code, code)
	}
}

func bearer(token string) http.Header {
	return http.Header{"Authorization": []string{"Bearer " + token}}
}

// loginToken registers a user and returns a valid token.
func (s *testServer) loginToken(t *testing.T) string {
	t.Helper()
	ctx := context.Background()
	if _, err := s.auth.Register(ctx, "tester", "tester@example.com", "password123"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	token, _, _, err := s.auth.Login(ctx, "tester", "password123")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	return token
}
