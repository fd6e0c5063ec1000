// Package renderer renders slicing results to markdown text.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/CooperRS/apple-slicer"
	"github.com/shopspring/decimal"
)

//go:embed *.md
var templates embed.FS

// Statement renders the statement to a markdown string.
func Statement(s *slicer.Statement) string {
	funcs := template.FuncMap{
		"money":           func(m slicer.Money) string { return m.Format(s.Locale) },
		"rate":            func(r decimal.Decimal) string { return r.StringFixed(5) },
		"reporting":       func() string { return s.ReportingCurrency },
		"reportingSymbol": func() string { return slicer.Symbol(s.ReportingCurrency) },
	}
	partials := map[string]string{
		"statement_corporation": "statement_corporation.md",
	}
	return renderTemplate("statement", "statement.md", partials, funcs, s)
}

// RateTable renders the parsed exchange-rate table to a markdown string.
func RateTable(table slicer.RateTable, currencies []string) string {
	funcs := template.FuncMap{
		"rate":   func(r decimal.Decimal) string { return r.StringFixed(5) },
		"factor": func(f decimal.Decimal) string { return f.Round(5).String() },
	}
	data := struct {
		Currencies []string
		Table      slicer.RateTable
	}{currencies, table}
	return renderTemplate("rates", "rates.md", nil, funcs, data)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, funcs template.FuncMap, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
