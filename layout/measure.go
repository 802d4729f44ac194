package layout

import (
	"sync"

	"github.com/go-pdf/fpdf"
)

// Measurer returns the printed width of text in millimetres
type Measurer interface {
	Width(text string, bold bool, size float64) float64
}

// FontMeasurer measures with the core PDF font metrics so layout matches
// what Render draws. Safe for concurrent use.
type FontMeasurer struct {
	mu     sync.Mutex
	pdf    *fpdf.Fpdf
	family string
	tr     func(string) string
}

// NewFontMeasurer returns a measurer for a core font family (Times, Helvetica, Courier)
func NewFontMeasurer(family string) *FontMeasurer {
	pdf := fpdf.New("P", "mm", "A4", "")
	return &FontMeasurer{
		pdf:    pdf,
		family: family,
		tr:     pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

func (m *FontMeasurer) Width(text string, bold bool, size float64) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pdf.SetFont(m.family, fontStyle(bold), size)
	return m.pdf.GetStringWidth(m.tr(text))
}

func fontStyle(bold bool) string {
	if bold {
		return "B"
	}
	return ""
}
