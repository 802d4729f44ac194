package layout

import "strings"

// ElementKind distinguishes drawn text from ruled lines
type ElementKind int

const (
	ElementText ElementKind = iota
	ElementLine
)

// Run is a piece of one text line drawn in a single style. X is absolute.
type Run struct {
	Text string
	Bold bool
	X    float64
}

// Element is one positioned drawing on a page. Coordinates are millimetres
// from the top-left corner; text Y is the baseline.
type Element struct {
	Kind     ElementKind
	X, Y     float64
	X2, Y2   float64
	Runs     []Run
	FontSize float64
	// LineWidth is the stroke width of ElementLine
	LineWidth float64
}

// Text joins the runs of a text element
func (e Element) Text() string {
	var b strings.Builder
	for _, r := range e.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// Page is a fixed-size drawing surface
type Page struct {
	Number   int
	Width    float64
	Height   float64
	Margin   float64
	Elements []Element
}

// Bottom is the lowest baseline allowed on the page
func (p *Page) Bottom() float64 {
	return p.Height - p.Margin
}

// Lines returns the text of every text element in drawing order
func (p *Page) Lines() []string {
	var out []string
	for _, el := range p.Elements {
		if el.Kind == ElementText {
			out = append(out, el.Text())
		}
	}
	return out
}

func (p *Page) add(el Element) {
	p.Elements = append(p.Elements, el)
}
