package server

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/keepbook-dev/keepbook/internal/journal"
	"github.com/keepbook-dev/keepbook/internal/model"
	"github.com/keepbook-dev/keepbook/internal/store"
)

const dateFormat = "2006-01-02"

// redirectError sends the user back to a page with an inline error flag.
func redirectError(w http.ResponseWriter, r *http.Request, path, msg string) {
	http.Redirect(w, r, path+"?error="+url.QueryEscape(msg), http.StatusSeeOther)
}

func pathID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateFormat, s)
}

func parseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	dash, err := s.reports.Dashboard(s.now().UTC().Truncate(24 * time.Hour))
	if err != nil {
		s.serverError(w, err)
		return
	}
	s.render(w, "dashboard.html", map[string]any{
		"Title":    s.cfg.Business.Name,
		"Currency": s.cfg.Business.Currency,
		"Dash":     dash,
	})
}

// --- accounts ---

func (s *Server) handleAccounts(w http.ResponseWriter, r *http.Request) {
	accts, err := s.store.ListAccounts()
	if err != nil {
		s.serverError(w, err)
		return
	}
	s.render(w, "accounts.html", map[string]any{
		"Title":    "Chart of Accounts",
		"Accounts": accts,
		"Error":    r.URL.Query().Get("error"),
	})
}

func (s *Server) handleCreateAccount(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectError(w, r, "/accounts", "Invalid form")
		return
	}
	acct := model.Account{
		Code:        r.PostFormValue("code"),
		Name:        r.PostFormValue("name"),
		Type:        model.AccountType(r.PostFormValue("type")),
		Subtype:     model.AccountSubtype(r.PostFormValue("subtype")),
		Description: r.PostFormValue("description"),
	}
	if acct.Code == "" || acct.Name == "" || !acct.Type.Valid() {
		redirectError(w, r, "/accounts", "Invalid account")
		return
	}
	if err := s.store.CreateAccount(&acct); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			redirectError(w, r, "/accounts", "Code already exists")
			return
		}
		s.serverError(w, err)
		return
	}
	http.Redirect(w, r, "/accounts", http.StatusSeeOther)
}

func (s *Server) handleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	switch err := s.store.DeleteAccount(id); {
	case err == nil:
		http.Redirect(w, r, "/accounts", http.StatusSeeOther)
	case errors.Is(err, store.ErrNotFound):
		http.NotFound(w, r)
	case errors.Is(err, store.ErrAccountInUse):
		redirectError(w, r, "/accounts", "Account in use")
	default:
		s.serverError(w, err)
	}
}

// --- journal entries ---

func (s *Server) handleEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := s.journal.List()
	if err != nil {
		s.serverError(w, err)
		return
	}
	accts, err := s.store.ListAccounts()
	if err != nil {
		s.serverError(w, err)
		return
	}
	names := make(map[uint]string, len(accts))
	for _, a := range accts {
		names[a.ID] = a.Code + " " + a.Name
	}
	s.render(w, "entries.html", map[string]any{
		"Title":        "Journal Entries",
		"Entries":      entries,
		"Accounts":     accts,
		"AccountNames": names,
		"Error":        r.URL.Query().Get("error"),
	})
}

// handleCreateEntry reads the posted line rows (parallel form arrays) and
// records a balanced entry. Rows with no account selected are skipped.
func (s *Server) handleCreateEntry(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectError(w, r, "/entries", "Invalid form")
		return
	}

	date, err := parseDate(r.PostFormValue("date"))
	if err != nil {
		redirectError(w, r, "/entries", "Invalid date")
		return
	}

	lines, err := parseLines(r.PostForm)
	if err != nil {
		redirectError(w, r, "/entries", "Invalid amount")
		return
	}

	_, err = s.journal.Create(journal.CreateParams{
		Date:  date,
		Memo:  r.PostFormValue("memo"),
		Lines: lines,
	})
	var unbalanced journal.UnbalancedError
	var invalid journal.ValidationError
	switch {
	case err == nil:
		http.Redirect(w, r, "/entries", http.StatusSeeOther)
	case errors.As(err, &unbalanced):
		redirectError(w, r, "/entries", "Not balanced")
	case errors.As(err, &invalid):
		redirectError(w, r, "/entries", err.Error())
	default:
		s.serverError(w, err)
	}
}

func parseLines(form url.Values) ([]journal.LineInput, error) {
	accountIDs := form["account_id"]
	var lines []journal.LineInput
	for i, raw := range accountIDs {
		if raw == "" {
			continue
		}
		accountID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return nil, err
		}
		debit, err := parseAmount(formAt(form, "debit", i))
		if err != nil {
			return nil, err
		}
		credit, err := parseAmount(formAt(form, "credit", i))
		if err != nil {
			return nil, err
		}
		qty, err := parseAmount(formAt(form, "qty", i))
		if err != nil {
			return nil, err
		}
		var partyID uint64
		if raw := formAt(form, "party_id", i); raw != "" {
			partyID, err = strconv.ParseUint(raw, 10, 32)
			if err != nil {
				return nil, err
			}
		}
		lines = append(lines, journal.LineInput{
			AccountID:   uint(accountID),
			Description: formAt(form, "line_description", i),
			Debit:       debit,
			Credit:      credit,
			PartyType:   formAt(form, "party_type", i),
			PartyID:     uint(partyID),
			Qty:         qty,
		})
	}
	return lines, nil
}

func formAt(form url.Values, key string, i int) string {
	vals := form[key]
	if i >= len(vals) {
		return ""
	}
	return vals[i]
}

func (s *Server) handleDeleteEntry(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	switch err := s.journal.Delete(id); {
	case err == nil:
		http.Redirect(w, r, "/entries", http.StatusSeeOther)
	case errors.Is(err, store.ErrNotFound):
		http.NotFound(w, r)
	default:
		s.serverError(w, err)
	}
}

func (s *Server) serverError(w http.ResponseWriter, err error) {
	s.log.Error("request failed", "error", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}
