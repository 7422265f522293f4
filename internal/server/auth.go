package server

import (
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/keepbook-dev/keepbook/internal/model"
)

const (
	sessionName = "keepbook"
	loginPath   = "/login"
)

// safeNext reports whether a post-login redirect target is a same-site
// relative path. Anything else (absolute URLs, scheme-relative "//host"
// forms) falls back to "/" to prevent open redirects.
func safeNext(next string) bool {
	if !strings.HasPrefix(next, "/") {
		return false
	}
	if strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return false
	}
	u, err := url.Parse(next)
	if err != nil {
		return false
	}
	return u.Scheme == "" && u.Host == ""
}

// currentUser resolves the session to a user. A stale session (user row
// gone) is cleared.
func (s *Server) currentUser(w http.ResponseWriter, r *http.Request) (model.User, bool) {
	sess, err := s.sessions.Get(r, sessionName)
	if err != nil {
		return model.User{}, false
	}
	uid, ok := sess.Values["uid"].(uint)
	if !ok {
		return model.User{}, false
	}
	user, err := s.store.GetUser(uid)
	if err != nil {
		sess.Options.MaxAge = -1
		_ = sess.Save(r, w)
		return model.User{}, false
	}
	return user, true
}

// requireUser guards a handler behind an authenticated session,
// redirecting to the login page with the intended destination preserved.
func (s *Server) requireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := s.currentUser(w, r); !ok {
			http.Redirect(w, r, loginPath+"?next="+url.QueryEscape(r.URL.Path), http.StatusSeeOther)
			return
		}
		next(w, r)
	}
}

func (s *Server) handleLoginForm(w http.ResponseWriter, r *http.Request) {
	next := r.URL.Query().Get("next")
	if !safeNext(next) {
		next = "/"
	}
	s.render(w, "login.html", map[string]any{
		"Title": s.cfg.Business.Name,
		"Next":  next,
		"Error": r.URL.Query().Get("error"),
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	next := r.PostFormValue("next")
	if !safeNext(next) {
		next = "/"
	}

	user, err := s.store.UserByUsername(username)
	if err != nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.log.Info("login rejected", "username", username)
		http.Redirect(w, r, loginPath+"?error=Invalid&next="+url.QueryEscape(next), http.StatusSeeOther)
		return
	}

	sess, _ := s.sessions.Get(r, sessionName)
	sess.Values["uid"] = user.ID
	if err := sess.Save(r, w); err != nil {
		http.Error(w, "session error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, next, http.StatusSeeOther)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	sess, _ := s.sessions.Get(r, sessionName)
	sess.Options.MaxAge = -1
	_ = sess.Save(r, w)
	http.Redirect(w, r, loginPath, http.StatusSeeOther)
}

// HashPassword bcrypt-hashes a password for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
