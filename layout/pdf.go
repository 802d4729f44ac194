package layout

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
)

// Metadata is written into the PDF information dictionary
type Metadata struct {
	Title     string
	Subject   string
	Creator   string
	CreatedAt time.Time
}

// Render draws laid-out pages as a PDF onto w. Spanish characters are
// translated to the cp1252 encoding of the core fonts.
func Render(w io.Writer, pages []*Page, cfg Config, meta Metadata) error {
	cfg = cfg.WithDefaults()
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: cfg.PageWidth, Ht: cfg.PageHeight},
	})
	pdf.SetMargins(cfg.Margin, cfg.Margin, cfg.Margin)
	pdf.SetAutoPageBreak(false, cfg.Margin)
	pdf.SetTitle(meta.Title, true)
	pdf.SetSubject(meta.Subject, true)
	pdf.SetCreator(meta.Creator, true)
	if !meta.CreatedAt.IsZero() {
		pdf.SetCreationDate(meta.CreatedAt)
		pdf.SetModificationDate(meta.CreatedAt)
	}
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, page := range pages {
		pdf.AddPage()
		for _, el := range page.Elements {
			switch el.Kind {
			case ElementLine:
				pdf.SetDrawColor(100, 100, 100)
				pdf.SetLineWidth(el.LineWidth)
				pdf.Line(el.X, el.Y, el.X2, el.Y2)
			case ElementText:
				for _, run := range el.Runs {
					pdf.SetFont(cfg.FontFamily, fontStyle(run.Bold), el.FontSize)
					pdf.Text(run.X, el.Y, tr(run.Text))
				}
			}
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}
