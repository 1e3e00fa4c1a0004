// Package page renders the explorer's single HTML page.
package page

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"net/url"

	"github.com/aretw0/bloch"
	"github.com/aretw0/bloch/pkg/gate"
	"github.com/aretw0/bloch/pkg/qubit"
)

// AuthorURL is linked from the page header.
const AuthorURL = "https://github.com/wahidpanda"

//go:embed page.html
var pageHTML string

var tmpl = template.Must(template.New("page").Funcs(template.FuncMap{
	"coord": qubit.FormatCoordinate,
}).Parse(pageHTML))

type view struct {
	Scene      *bloch.Scene
	Gates      []gate.Entry
	Figure     template.JS
	CircuitURL string
	AuthorURL  string
}

// Render writes the page for scene to w.
func Render(w io.Writer, scene *bloch.Scene) error {
	fig, err := json.Marshal(scene.Figure)
	if err != nil {
		return fmt.Errorf("%w: marshal figure: %v", bloch.ErrRender, err)
	}

	v := view{
		Scene:      scene,
		Gates:      gate.Catalog(),
		Figure:     template.JS(fig),
		CircuitURL: CircuitURL(scene.Gate),
		AuthorURL:  AuthorURL,
	}
	if err := tmpl.Execute(w, v); err != nil {
		return fmt.Errorf("%w: execute page template: %v", bloch.ErrRender, err)
	}
	return nil
}

// CircuitURL is the path of the PNG diagram for sym.
func CircuitURL(sym gate.Symbol) string {
	return "/circuit/" + url.PathEscape(sym.String()) + ".png"
}
