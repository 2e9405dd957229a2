package views

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"

	"github.com/travigo/eventcoach/pkg/config"
	"github.com/travigo/eventcoach/pkg/presentation"
	"github.com/travigo/eventcoach/pkg/session"
)

//go:embed templates/*.html
var templateFiles embed.FS

const (
	SearchTemplate = "search.html"
	RouteTemplate  = "route.html"
)

var pages = map[string]*template.Template{}

var functions = template.FuncMap{
	"json": func(value interface{}) (string, error) {
		encoded, err := json.Marshal(value)
		return string(encoded), err
	},
	"osm": func(pin presentation.MapPin, zoom int) string {
		return pin.OpenStreetMapURL(zoom)
	},
}

func init() {
	for _, page := range []string{SearchTemplate, RouteTemplate} {
		pages[page] = template.Must(
			template.New(page).Funcs(functions).ParseFS(templateFiles, "templates/layout.html", "templates/"+page),
		)
	}
}

// SearchPage is the booking search form and its results
type SearchPage struct {
	Event config.Event
	State session.State

	Unavailable bool

	Directives    []presentation.Directive
	AmendmentLink string
	PickupZoom    int
}

// RoutePage is one route's timetable and map
type RoutePage struct {
	Event config.Event
	State session.State

	NoRouteSelected bool
	View            *presentation.RouteView
	RouteZoom       int
}

// BackLink returns to the results the visitor came from when there are any
func (p RoutePage) BackLink() string {
	if p.State.Code == "" {
		return "/"
	}

	return "/?code=" + template.URLQueryEscaper(p.State.Code)
}

func Render(out io.Writer, name string, data interface{}) error {
	page, exists := pages[name]
	if !exists {
		return fmt.Errorf("unknown template %s", name)
	}

	var buffer bytes.Buffer
	if err := page.ExecuteTemplate(&buffer, "layout", data); err != nil {
		return err
	}

	_, err := buffer.WriteTo(out)
	return err
}
