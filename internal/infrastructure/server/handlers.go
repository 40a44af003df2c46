package server

import (
	"bytes"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/alexedwards/scs/v2"
	"github.com/gorilla/mux"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depocheck/internal/domain/commands"
	"github.com/rios0rios0/depocheck/internal/domain/entities"
	"github.com/rios0rios0/depocheck/internal/domain/repositories"
	"github.com/rios0rios0/depocheck/internal/infrastructure/repositories/session"
)

const (
	flashKey = "flash"

	msgInvalidCredentials = "Invalid username or password"
	msgSignupFailed       = "Failed to create account. Username or email may already be in use."
	msgFetchFailed        = "Failed to fetch repositories"
	msgDetailsFailed      = "Failed to fetch repository details"
	msgAddFailed          = "Failed to add repository"
	msgDeleteFailed       = "Failed to delete repository"
	msgAdded              = "Repository added successfully!"
	msgDeleted            = "Repository deleted successfully!"

	modeSignup = "signup"
)

// pageData is what every template receives.
type pageData struct {
	Title         string
	Authenticated bool
	Username      string
	Flash         string
	Error         string

	Mode     string
	Form     entities.RepositoryInput
	Types    []string
	List     commands.RepositoryListView
	Detail   commands.RepositoryDetailView
	DetailID string
}

type handlers struct {
	server  *Server
	manager *scs.SessionManager
}

func (it *handlers) scope(w http.ResponseWriter, r *http.Request) (repositories.ClientScope, *HTTPNavigator) {
	return newScope(it.manager, it.server.cfg.Server.CookieSecure, w, r)
}

// page fills the fields shared by every view.
func (it *handlers) page(r *http.Request, scope repositories.ClientScope, title string) pageData {
	ctx := r.Context()
	current := scope.Session.Get(ctx)
	return pageData{
		Title:         title,
		Authenticated: session.TokenFromRequest(r) != "" || current.Authenticated(),
		Username:      current.Username,
		Flash:         it.manager.PopString(ctx, flashKey),
	}
}

func (it *handlers) render(w http.ResponseWriter, status int, name string, data pageData) {
	var buf bytes.Buffer
	if err := it.server.pages[name].ExecuteTemplate(&buf, "layout", data); err != nil {
		logger.Errorf("Failed to render %s: %v", name, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (it *handlers) health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("OK"))
}

func (it *handlers) home(w http.ResponseWriter, r *http.Request) {
	scope, _ := it.scope(w, r)
	it.render(w, http.StatusOK, "home", it.page(r, scope, "Depocheck"))
}

func (it *handlers) loginPage(w http.ResponseWriter, r *http.Request) {
	scope, _ := it.scope(w, r)
	data := it.page(r, scope, "Sign in")
	if r.URL.Query().Get("mode") == modeSignup {
		data.Mode = modeSignup
		data.Title = "Create an account"
	}
	it.render(w, http.StatusOK, "login", data)
}

func (it *handlers) login(w http.ResponseWriter, r *http.Request) {
	scope, _ := it.scope(w, r)
	username := strings.TrimSpace(r.PostFormValue("username"))
	password := r.PostFormValue("password")

	if it.server.auth.Login(r.Context(), scope, username, password) {
		http.Redirect(w, r, entities.DashboardPath, http.StatusSeeOther)
		return
	}

	data := it.page(r, scope, "Sign in")
	data.Error = msgInvalidCredentials
	it.render(w, http.StatusUnauthorized, "login", data)
}

func (it *handlers) signup(w http.ResponseWriter, r *http.Request) {
	scope, _ := it.scope(w, r)
	username := strings.TrimSpace(r.PostFormValue("username"))
	email := strings.TrimSpace(r.PostFormValue("email"))
	password := r.PostFormValue("password")

	if it.server.auth.Signup(r.Context(), scope, username, email, password) {
		http.Redirect(w, r, entities.DashboardPath, http.StatusSeeOther)
		return
	}

	data := it.page(r, scope, "Create an account")
	data.Mode = modeSignup
	data.Error = msgSignupFailed
	it.render(w, http.StatusBadRequest, "login", data)
}

func (it *handlers) logout(w http.ResponseWriter, r *http.Request) {
	scope, _ := it.scope(w, r)
	it.server.auth.Logout(r.Context(), scope)
}

func (it *handlers) repositories(w http.ResponseWriter, r *http.Request) {
	scope, navigator := it.scope(w, r)
	view, err := it.server.dashboard.Repositories(r.Context(), scope)
	if navigator.Redirected() {
		return
	}

	data := it.page(r, scope, "Repositories")
	data.List = view
	status := http.StatusOK
	if err != nil {
		data.Error = msgFetchFailed
		status = http.StatusBadGateway
	}
	it.render(w, status, "dashboard", data)
}

func (it *handlers) refresh(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, entities.DashboardPath, http.StatusSeeOther)
}

func (it *handlers) newRepository(w http.ResponseWriter, r *http.Request) {
	scope, _ := it.scope(w, r)
	data := it.page(r, scope, "Add a repository")
	data.Types = entities.ProjectTypes
	it.render(w, http.StatusOK, "new_repository", data)
}

func (it *handlers) addRepository(w http.ResponseWriter, r *http.Request) {
	scope, navigator := it.scope(w, r)
	input := entities.RepositoryInput{
		Name:     r.PostFormValue("name"),
		Username: r.PostFormValue("username"),
		URL:      r.PostFormValue("url"),
		Branch:   r.PostFormValue("branch"),
		Token:    r.PostFormValue("token"),
		Type:     r.PostFormValue("type"),
	}

	_, err := it.server.dashboard.AddRepository(r.Context(), scope, input)
	if navigator.Redirected() {
		return
	}
	if err == nil {
		it.manager.Put(r.Context(), flashKey, msgAdded)
		http.Redirect(w, r, entities.DashboardPath, http.StatusSeeOther)
		return
	}

	data := it.page(r, scope, "Add a repository")
	data.Types = entities.ProjectTypes
	// the token is never echoed back into the page
	input.Token = ""
	data.Form = input
	status := http.StatusBadGateway
	data.Error = msgAddFailed
	if errors.Is(err, entities.ErrInvalidInput) {
		status = http.StatusUnprocessableEntity
		data.Error = strings.TrimPrefix(err.Error(), entities.ErrInvalidInput.Error()+": ")
	}
	it.render(w, status, "new_repository", data)
}

func (it *handlers) repository(w http.ResponseWriter, r *http.Request) {
	scope, navigator := it.scope(w, r)
	id := entities.RepositoryID(mux.Vars(r)["id"])

	view, err := it.server.dashboard.Repository(r.Context(), scope, id)
	if navigator.Redirected() {
		return
	}

	data := it.page(r, scope, "Repository Details")
	data.Detail = view
	data.DetailID = id.String()
	status := http.StatusOK
	if err != nil {
		data.Error = msgDetailsFailed
		status = http.StatusBadGateway
	}
	it.render(w, status, "repository", data)
}

func (it *handlers) deleteRepository(w http.ResponseWriter, r *http.Request) {
	scope, navigator := it.scope(w, r)
	id := entities.RepositoryID(mux.Vars(r)["id"])

	_, err := it.server.dashboard.DeleteRepository(r.Context(), scope, id)
	if navigator.Redirected() {
		return
	}
	if err != nil {
		it.manager.Put(r.Context(), flashKey, msgDeleteFailed)
		http.Redirect(w, r, entities.DashboardPath+"/repositories/"+url.PathEscape(id.String()), http.StatusSeeOther)
		return
	}

	it.manager.Put(r.Context(), flashKey, msgDeleted)
	http.Redirect(w, r, entities.DashboardPath, http.StatusSeeOther)
}
