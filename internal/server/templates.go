package server

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var pageTemplates = template.Must(template.New("").Funcs(template.FuncMap{
	"money": func(d decimal.Decimal) string { return d.StringFixed(2) },
	"date":  func(t time.Time) string { return t.Format(dateFormat) },
	"dateptr": func(t *time.Time) string {
		if t == nil {
			return ""
		}
		return t.Format(dateFormat)
	},
	"seq": func(n int) []int {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	},
}).ParseFS(templateFS, "templates/*.html"))

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplates.ExecuteTemplate(w, name, data); err != nil {
		s.log.Error("rendering template", "template", name, "error", err)
	}
}

func staticHandler() http.Handler {
	return http.FileServer(http.FS(staticFS))
}
