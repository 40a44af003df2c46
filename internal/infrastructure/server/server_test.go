//go:build unit

package server_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/alexedwards/scs/v2/memstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/depocheck/config"
	"github.com/rios0rios0/depocheck/internal/domain/commands"
	"github.com/rios0rios0/depocheck/internal/domain/entities"
	"github.com/rios0rios0/depocheck/internal/domain/repositories"
	"github.com/rios0rios0/depocheck/internal/infrastructure/repositories/session"
	"github.com/rios0rios0/depocheck/internal/infrastructure/repositories/sessionstore"
	"github.com/rios0rios0/depocheck/internal/infrastructure/server"
	"github.com/rios0rios0/depocheck/test/infrastructure/repositorydoubles"
)

// browser keeps cookies between requests the way a browser would.
type browser struct {
	t       *testing.T
	handler http.Handler
	cookies map[string]*http.Cookie
}

func newBrowser(
	t *testing.T,
	authBackend *repositorydoubles.StubAuthBackendRepository,
	depsBackend *repositorydoubles.SpyDependencyBackendRepository,
) *browser {
	t.Helper()

	cfg := config.Default()
	auth := commands.NewAuthCommand(authBackend)
	dashboard := commands.NewDashboardCommand(commands.NewRepositoriesCommand(auth, depsBackend))
	srv, err := server.NewServer(auth, dashboard, cfg)
	require.NoError(t, err)

	manager := sessionstore.NewManager(memstore.New(), cfg)
	return &browser{t: t, handler: srv.Handler(manager), cookies: map[string]*http.Cookie{}}
}

func (b *browser) do(req *http.Request) (*http.Response, string) {
	b.t.Helper()

	for _, cookie := range b.cookies {
		req.AddCookie(cookie)
	}
	recorder := httptest.NewRecorder()
	b.handler.ServeHTTP(recorder, req)

	resp := recorder.Result()
	body, err := io.ReadAll(resp.Body)
	require.NoError(b.t, err)
	_ = resp.Body.Close()

	for _, cookie := range resp.Cookies() {
		if cookie.MaxAge < 0 {
			delete(b.cookies, cookie.Name)
			continue
		}
		b.cookies[cookie.Name] = cookie
	}
	return resp, string(body)
}

func (b *browser) get(path string) (*http.Response, string) {
	return b.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (b *browser) post(path string, form url.Values) (*http.Response, string) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return b.do(req)
}

func (b *browser) signIn() {
	b.t.Helper()

	resp, _ := b.post("/auth/login", url.Values{"username": {"octo"}, "password": {"secret"}})
	require.Equal(b.t, http.StatusSeeOther, resp.StatusCode)
}

func validAuth() *repositorydoubles.StubAuthBackendRepository {
	return &repositorydoubles.StubAuthBackendRepository{
		SignInResult: repositories.SignInResult{Token: "abc", Username: "octo"},
	}
}

func TestRouteGuard(t *testing.T) {
	t.Parallel()

	t.Run("should send anonymous visitors of the dashboard to login", func(t *testing.T) {
		t.Parallel()

		// given
		b := newBrowser(t, validAuth(), &repositorydoubles.SpyDependencyBackendRepository{})

		for _, path := range []string{"/dashboard", "/dashboard/repositories/1", "/dashboard/unknown"} {
			// when
			resp, _ := b.get(path)

			// then
			assert.Equal(t, http.StatusSeeOther, resp.StatusCode, path)
			assert.Equal(t, "/login", resp.Header.Get("Location"), path)
		}
	})

	t.Run("should send visitors holding a token cookie away from login", func(t *testing.T) {
		t.Parallel()

		// given
		b := newBrowser(t, validAuth(), &repositorydoubles.SpyDependencyBackendRepository{})
		b.cookies[session.TokenCookie] = &http.Cookie{Name: session.TokenCookie, Value: "abc"}

		// when
		resp, _ := b.get("/login")

		// then
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/dashboard", resp.Header.Get("Location"))
	})

	t.Run("should always serve the home page", func(t *testing.T) {
		t.Parallel()

		// given
		b := newBrowser(t, validAuth(), &repositorydoubles.SpyDependencyBackendRepository{})

		// when
		anonymous, anonymousBody := b.get("/")
		b.signIn()
		signedIn, signedInBody := b.get("/")

		// then
		assert.Equal(t, http.StatusOK, anonymous.StatusCode)
		assert.Contains(t, anonymousBody, `href="/login"`)
		assert.Equal(t, http.StatusOK, signedIn.StatusCode)
		assert.Contains(t, signedInBody, "Go to Dashboard")
	})

	t.Run("should leave the health check outside the guard", func(t *testing.T) {
		t.Parallel()

		// given
		b := newBrowser(t, validAuth(), &repositorydoubles.SpyDependencyBackendRepository{})

		// when
		resp, body := b.get("/health")

		// then
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "OK", body)
		assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
	})
}

func TestAuthHandlers(t *testing.T) {
	t.Parallel()

	t.Run("should sign in and mirror the token in a cookie", func(t *testing.T) {
		t.Parallel()

		// given
		b := newBrowser(t, validAuth(), &repositorydoubles.SpyDependencyBackendRepository{})

		// when
		resp, _ := b.post("/auth/login", url.Values{"username": {"octo"}, "password": {"secret"}})

		// then
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/dashboard", resp.Header.Get("Location"))
		require.Contains(t, b.cookies, session.TokenCookie)
		assert.Equal(t, "abc", b.cookies[session.TokenCookie].Value)
	})

	t.Run("should re-render the form on invalid credentials", func(t *testing.T) {
		t.Parallel()

		// given
		authBackend := &repositorydoubles.StubAuthBackendRepository{SignInErr: entities.ErrRequestFailed}
		b := newBrowser(t, authBackend, &repositorydoubles.SpyDependencyBackendRepository{})

		// when
		resp, body := b.post("/auth/login", url.Values{"username": {"octo"}, "password": {"wrong"}})

		// then
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Contains(t, body, "Invalid username or password")
		assert.NotContains(t, b.cookies, session.TokenCookie)
	})

	t.Run("should explain a failed sign-up", func(t *testing.T) {
		t.Parallel()

		// given
		authBackend := &repositorydoubles.StubAuthBackendRepository{SignUpErr: entities.ErrRequestFailed}
		b := newBrowser(t, authBackend, &repositorydoubles.SpyDependencyBackendRepository{})

		// when
		resp, body := b.post("/auth/signup",
			url.Values{"username": {"octo"}, "email": {"octo@example.com"}, "password": {"secret"}})

		// then
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, body, "Failed to create account. Username or email may already be in use.")
	})

	t.Run("should not show the previous user's rows after signing in over their session", func(t *testing.T) {
		t.Parallel()

		// given
		authBackend := validAuth()
		deps := &repositorydoubles.SpyDependencyBackendRepository{
			Repositories: []entities.Repository{{ID: "1", Name: "alice-private-repo", Branch: "main", Type: "MAVEN"}},
		}
		b := newBrowser(t, authBackend, deps)
		b.signIn()
		b.get("/dashboard")
		authBackend.SignInResult = repositories.SignInResult{Token: "bob-token", Username: "bob"}
		b.post("/auth/login", url.Values{"username": {"bob"}, "password": {"secret"}})
		deps.ListErr = entities.ErrRequestFailed

		// when
		resp, body := b.get("/dashboard")

		// then
		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
		assert.NotContains(t, body, "alice-private-repo")
		assert.Contains(t, body, "<strong>bob</strong>")
		assert.Equal(t, []string{"abc", "bob-token"}, deps.Tokens)
	})

	t.Run("should clear both token copies on logout", func(t *testing.T) {
		t.Parallel()

		// given
		b := newBrowser(t, validAuth(), &repositorydoubles.SpyDependencyBackendRepository{})
		b.signIn()

		// when
		resp, _ := b.post("/auth/logout", nil)

		// then
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/login", resp.Header.Get("Location"))
		assert.NotContains(t, b.cookies, session.TokenCookie)
	})
}

func TestDashboardHandlers(t *testing.T) {
	t.Parallel()

	t.Run("should render one row for the stored token", func(t *testing.T) {
		t.Parallel()

		// given
		deps := &repositorydoubles.SpyDependencyBackendRepository{
			Repositories: []entities.Repository{{ID: "1", Name: "r1", Branch: "main", Type: "MAVEN"}},
		}
		b := newBrowser(t, validAuth(), deps)
		b.signIn()

		// when
		resp, body := b.get("/dashboard")

		// then
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		for _, cell := range []string{"<td>main</td>", "<td>MAVEN</td>", "<td>Never</td>", "<td>NaN</td>", ">r1</a>"} {
			assert.Contains(t, body, cell)
		}
		assert.Equal(t, []string{"abc"}, deps.Tokens)
	})

	t.Run("should sign out and clear the cookie when the backend answers 401", func(t *testing.T) {
		t.Parallel()

		// given
		deps := &repositorydoubles.SpyDependencyBackendRepository{ListErr: entities.ErrUnauthorized}
		b := newBrowser(t, validAuth(), deps)
		b.signIn()

		// when
		resp, _ := b.get("/dashboard")

		// then
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/login", resp.Header.Get("Location"))
		assert.NotContains(t, b.cookies, session.TokenCookie)
		assert.Equal(t, 1, deps.Calls())
	})

	t.Run("should sign out without calling the backend when only the cookie is left", func(t *testing.T) {
		t.Parallel()

		// given
		deps := &repositorydoubles.SpyDependencyBackendRepository{}
		b := newBrowser(t, validAuth(), deps)
		b.cookies[session.TokenCookie] = &http.Cookie{Name: session.TokenCookie, Value: "stale"}

		// when
		resp, _ := b.get("/dashboard")

		// then
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/login", resp.Header.Get("Location"))
		assert.Zero(t, deps.Calls())
	})

	t.Run("should keep the prior rows when a refresh fails", func(t *testing.T) {
		t.Parallel()

		// given
		deps := &repositorydoubles.SpyDependencyBackendRepository{
			Repositories: []entities.Repository{{ID: "1", Name: "r1", Branch: "main", Type: "MAVEN"}},
		}
		b := newBrowser(t, validAuth(), deps)
		b.signIn()
		b.get("/dashboard")
		deps.ListErr = entities.ErrRequestFailed

		// when
		refresh, _ := b.post("/dashboard/refresh", nil)
		resp, body := b.get(refresh.Header.Get("Location"))

		// then
		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
		assert.Contains(t, body, "Failed to fetch repositories")
		assert.Contains(t, body, ">r1</a>")
	})

	t.Run("should render the dependency report", func(t *testing.T) {
		t.Parallel()

		// given
		repo := entities.Repository{ID: "7", Name: "r7", Branch: "main", URL: "https://github.com/octo/r7"}
		deps := &repositorydoubles.SpyDependencyBackendRepository{
			Report: entities.RepositoryReport{
				Repository: &repo,
				Dependencies: []entities.Dependency{
					{Name: "junit", OldVersion: "1.0", NewVersion: "2.0"},
					{Name: "guava", OldVersion: "1.0", NewVersion: "1.0"},
				},
			},
		}
		b := newBrowser(t, validAuth(), deps)
		b.signIn()

		// when
		resp, body := b.get("/dashboard/repositories/7")

		// then
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, "<td>Not Up to Date</td>")
		assert.Contains(t, body, "<td>Up to Date</td>")
		assert.Contains(t, body, "https://github.com/octo/r7/tree/main")
	})

	t.Run("should flash the deletion on the list", func(t *testing.T) {
		t.Parallel()

		// given
		deps := &repositorydoubles.SpyDependencyBackendRepository{}
		b := newBrowser(t, validAuth(), deps)
		b.signIn()

		// when
		resp, _ := b.post("/dashboard/repositories/7/delete", nil)
		_, body := b.get(resp.Header.Get("Location"))

		// then
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/dashboard", resp.Header.Get("Location"))
		assert.Equal(t, []entities.RepositoryID{"7"}, deps.Deleted)
		assert.Contains(t, body, "Repository deleted successfully!")
	})

	t.Run("should reject an invalid form without calling the backend", func(t *testing.T) {
		t.Parallel()

		// given
		deps := &repositorydoubles.SpyDependencyBackendRepository{}
		b := newBrowser(t, validAuth(), deps)
		b.signIn()

		// when
		resp, body := b.post("/dashboard/repositories", url.Values{
			"name": {"r1"}, "username": {"octo"}, "url": {"https://github.com/octo/r1"},
			"branch": {""}, "token": {"ghp_secret"}, "type": {"MAVEN"},
		})

		// then
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Contains(t, body, "branch is required")
		assert.NotContains(t, body, "ghp_secret")
		assert.Zero(t, deps.Calls())
	})
}
