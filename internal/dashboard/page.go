package dashboard

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
)

//go:embed page.html
var pageHTML string

var pageTemplate = template.Must(template.New("page").Funcs(template.FuncMap{ //nolint: gochecknoglobals
	"chartOption": func(b json.RawMessage) template.JS { return template.JS(b) }, //nolint: gosec
}).Parse(pageHTML))

type pageData struct {
	Model

	Themes []Theme
}

// Dashboard holds the pre-rendered page of every theme. It is immutable and
// safe for concurrent use.
type Dashboard struct {
	defaultTheme Theme
	models       map[Theme]Model
	pages        map[Theme][]byte
}

// New renders data for every theme. defaultTheme is served when a request
// does not pick one.
func New(data Data, defaultTheme Theme) (*Dashboard, error) {
	if _, err := ParseTheme(string(defaultTheme)); err != nil {
		return nil, fmt.Errorf("invalid default theme: %w", err)
	}

	d := &Dashboard{
		defaultTheme: defaultTheme,
		models:       make(map[Theme]Model, len(Themes())),
		pages:        make(map[Theme][]byte, len(Themes())),
	}
	for _, t := range Themes() {
		m, err := Render(t, data)
		if err != nil {
			return nil, fmt.Errorf("could not render %s theme: %w", t, err)
		}

		var buf bytes.Buffer
		if err := pageTemplate.Execute(&buf, pageData{Model: m, Themes: Themes()}); err != nil {
			return nil, fmt.Errorf("could not execute page template for %s theme: %w", t, err)
		}
		d.models[t] = m
		d.pages[t] = buf.Bytes()
	}

	return d, nil
}

// DefaultTheme returns the theme served when none is requested.
func (d *Dashboard) DefaultTheme() Theme { return d.defaultTheme }

// Model returns the render model of t.
func (d *Dashboard) Model(t Theme) (Model, bool) {
	m, ok := d.models[t]

	return m, ok
}

// Resolve maps the raw theme query value to a theme, using the default theme
// for an empty value.
func (d *Dashboard) Resolve(raw string) (Theme, error) {
	if raw == "" {
		return d.defaultTheme, nil
	}

	return ParseTheme(raw)
}

// WritePage writes the page of theme t to w.
func (d *Dashboard) WritePage(w io.Writer, t Theme) error {
	page, ok := d.pages[t]
	if !ok {
		return fmt.Errorf("no page rendered for theme %q", t)
	}
	if _, err := w.Write(page); err != nil {
		return fmt.Errorf("could not write page: %w", err)
	}

	return nil
}
