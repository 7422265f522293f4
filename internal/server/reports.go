package server

import (
	"net/http"
	"time"

	"github.com/keepbook-dev/keepbook/internal/model"
)

// optionalDate parses a query parameter as a date, returning nil when the
// parameter is absent. A malformed value is an error; the report pages
// surface it as an inline flag rather than rendering garbage.
func optionalDate(r *http.Request, key string) (*time.Time, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}
	d, err := parseDate(raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *Server) handleTrialBalance(w http.ResponseWriter, r *http.Request) {
	start, err := optionalDate(r, "start")
	if err != nil {
		redirectError(w, r, "/reports/trial-balance", "Invalid date")
		return
	}
	end, err := optionalDate(r, "end")
	if err != nil {
		redirectError(w, r, "/reports/trial-balance", "Invalid date")
		return
	}

	tb, err := s.reports.TrialBalance(model.DateRange{Start: start, End: end})
	if err != nil {
		s.serverError(w, err)
		return
	}
	s.render(w, "trial_balance.html", map[string]any{
		"Title":    "Trial Balance",
		"Currency": s.cfg.Business.Currency,
		"Start":    start,
		"End":      end,
		"Report":   tb,
		"Error":    r.URL.Query().Get("error"),
	})
}

func (s *Server) handleIncomeStatement(w http.ResponseWriter, r *http.Request) {
	start, err := optionalDate(r, "start")
	if err != nil {
		redirectError(w, r, "/reports/income-statement", "Invalid date")
		return
	}
	end, err := optionalDate(r, "end")
	if err != nil {
		redirectError(w, r, "/reports/income-statement", "Invalid date")
		return
	}

	is, err := s.reports.IncomeStatement(start, end)
	if err != nil {
		s.serverError(w, err)
		return
	}
	s.render(w, "income_statement.html", map[string]any{
		"Title":    "Income Statement",
		"Currency": s.cfg.Business.Currency,
		"Start":    start,
		"End":      end,
		"Report":   is,
		"Error":    r.URL.Query().Get("error"),
	})
}

func (s *Server) handleBalanceSheet(w http.ResponseWriter, r *http.Request) {
	asOf, err := optionalDate(r, "as_of")
	if err != nil {
		redirectError(w, r, "/reports/balance-sheet", "Invalid date")
		return
	}

	bs, err := s.reports.BalanceSheet(asOf)
	if err != nil {
		s.serverError(w, err)
		return
	}
	s.render(w, "balance_sheet.html", map[string]any{
		"Title":    "Balance Sheet",
		"Currency": s.cfg.Business.Currency,
		"AsOf":     asOf,
		"Report":   bs,
		"Error":    r.URL.Query().Get("error"),
	})
}
