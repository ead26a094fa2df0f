package players

import (
	"embed"
	"html/template"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Badsnus/golf-stats/internal/domain/entity"
)

//go:embed templates/*.html
var templatesFS embed.FS

const missing = "-"

// formatter renders optional numbers with the locale's digit grouping and decimal separator.
type formatter struct {
	printer *message.Printer
}

func (f formatter) decimal(v *float64) string {
	if v == nil {
		return missing
	}
	return f.printer.Sprintf("%.1f", *v)
}

func (f formatter) integer(v interface{}) string {
	switch n := v.(type) {
	case *int:
		if n == nil {
			return missing
		}
		return f.printer.Sprintf("%d", *n)
	case int:
		return f.printer.Sprintf("%d", n)
	case int64:
		return f.printer.Sprintf("%d", n)
	default:
		return missing
	}
}

func (f formatter) percent(v *float64) string {
	if v == nil {
		return missing
	}
	return f.printer.Sprintf("%.0f%%", *v*100)
}

func text(v *string) string {
	if v == nil || *v == "" {
		return missing
	}
	return *v
}

func date(d entity.Date) string {
	if d.IsZero() {
		return missing
	}
	return d.String()
}

// Templates parses the embedded pages with number formatting for the given locale.
func Templates(tag language.Tag) (*template.Template, error) {
	f := formatter{printer: message.NewPrinter(tag)}
	return template.New("").Funcs(template.FuncMap{
		"decimal": f.decimal,
		"integer": f.integer,
		"percent": f.percent,
		"text":    text,
		"date":    date,
	}).ParseFS(templatesFS, "templates/*.html")
}
