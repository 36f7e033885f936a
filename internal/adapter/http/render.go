package httpadapter

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"math/big"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"crowdfund-web/internal/adapter/http/flash"
	"crowdfund-web/internal/core/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// page is the data every template receives. Body is page specific.
type page struct {
	Title   string
	Account *common.Address
	Notice  *flash.Notice
	Body    any
	// Bare omits the navigation bar, for pages shown inside a frame.
	Bare bool
}

type renderer struct {
	pages  map[string]*template.Template
	logger *slog.Logger
}

var pageNames = []string{"home", "carousel", "campaign", "loading", "dashboard", "wallet", "error"}

func newRenderer(logger *slog.Logger) (*renderer, error) {
	printer := message.NewPrinter(language.English)
	funcs := template.FuncMap{
		"amount":  formatAmount,
		"date":    formatDate,
		"percent": func(p float64) string { return printer.Sprintf("%.1f", p) },
		"width":   func(p float64) template.CSS { return template.CSS(fmt.Sprintf("width: %.1f%%", p)) },
		"hex":     func(a common.Address) string { return a.Hex() },
	}

	r := &renderer{pages: make(map[string]*template.Template, len(pageNames)), logger: logger}
	for _, name := range pageNames {
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// render executes the named page into a buffer first so a template error
// never leaves a half-written response.
func (rd *renderer) render(w http.ResponseWriter, status int, name string, p page) {
	t, ok := rd.pages[name]
	if !ok {
		rd.logger.Error("unknown template", slog.String("template", name))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", p); err != nil {
		rd.logger.Error("render failed", slog.String("template", name), slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// formatAmount renders the raw integer value, without grouping; nil
// renders as 0.
func formatAmount(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(domain.DateLayout)
}

func staticFiles() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}
