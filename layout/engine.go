package layout

import (
	"strings"
	"unicode/utf8"

	"github.com/AnTengye/contratos/generator"
)

const (
	heavyRuleWidth = 0.5
	lightRuleWidth = 0.2
	signatureLine  = 0.3
)

// Engine flows a composed document onto fixed-size pages
type Engine struct {
	cfg     Config
	measure Measurer
}

// NewEngine returns an engine for cfg. A nil measurer uses the core font
// metrics of cfg.FontFamily.
func NewEngine(cfg Config, m Measurer) *Engine {
	cfg = cfg.WithDefaults()
	if m == nil {
		m = NewFontMeasurer(cfg.FontFamily)
	}
	return &Engine{cfg: cfg, measure: m}
}

// Config returns the effective configuration
func (e *Engine) Config() Config {
	return e.cfg
}

// Layout places every block of doc in a single forward pass. A new page is
// started whenever the cursor passes the bottom margin, before a source line
// or before a wrapped sub-line. Text is never truncated.
func (e *Engine) Layout(doc *generator.Document) []*Page {
	c := &cursor{cfg: e.cfg}
	c.newPage()
	if doc == nil {
		return c.pages
	}

	for _, b := range doc.Blocks {
		switch b.Kind {
		case generator.BlockTitle:
			e.title(c, b.Text)
		case generator.BlockRule:
			e.rule(c, b.Heavy)
		case generator.BlockSpacer:
			c.breakIfFull()
			c.y += e.cfg.LineHeight
		case generator.BlockHeading:
			e.text(c, b.Text, len(b.Text))
		case generator.BlockClause:
			e.text(c, b.Text, b.Lead)
		case generator.BlockParagraph:
			e.text(c, b.Text, 0)
		case generator.BlockSignatures:
			e.signatures(c, b.Signatures)
		}
	}
	return c.pages
}

type cursor struct {
	cfg   Config
	pages []*Page
	page  *Page
	y     float64
}

func (c *cursor) newPage() {
	c.page = &Page{
		Number: len(c.pages) + 1,
		Width:  c.cfg.PageWidth,
		Height: c.cfg.PageHeight,
		Margin: c.cfg.Margin,
	}
	c.pages = append(c.pages, c.page)
	c.y = c.cfg.Margin
}

func (c *cursor) bottom() float64 {
	return c.cfg.PageHeight - c.cfg.Margin
}

func (c *cursor) breakIfFull() {
	if c.y > c.bottom() {
		c.newPage()
	}
}

func (e *Engine) title(c *cursor, text string) {
	c.breakIfFull()
	size := e.cfg.TitleFontSize
	width := e.measure.Width(text, true, size)
	x := (e.cfg.PageWidth - width) / 2
	if x < e.cfg.Margin {
		for _, line := range e.wrap(text, len(text), size, e.cfg.UsableWidth()) {
			c.breakIfFull()
			c.page.add(e.textElement(line, e.cfg.Margin, c.y, size))
			c.y += e.cfg.LineHeight
		}
		c.y += e.cfg.TitleGap - e.cfg.LineHeight
		return
	}
	c.page.add(Element{Kind: ElementText, X: x, Y: c.y, FontSize: size, Runs: []Run{{Text: text, Bold: true, X: x}}})
	c.y += e.cfg.TitleGap
}

func (e *Engine) rule(c *cursor, heavy bool) {
	c.breakIfFull()
	width := lightRuleWidth
	if heavy {
		width = heavyRuleWidth
	}
	y := c.y - e.cfg.RuleOffset
	c.page.add(Element{Kind: ElementLine, X: e.cfg.Margin, Y: y, X2: e.cfg.PageWidth - e.cfg.Margin, Y2: y, LineWidth: width})
	c.y += e.cfg.RuleAdvance
}

// text lays out a block that may span several source lines. The first lead
// bytes of the block are bold.
func (e *Engine) text(c *cursor, text string, lead int) {
	offset := 0
	for _, src := range strings.Split(text, "\n") {
		c.breakIfFull()
		bold := min(max(lead-offset, 0), len(src))
		offset += len(src) + 1

		if strings.TrimSpace(src) == "" {
			c.y += e.cfg.LineHeight
			continue
		}
		for _, line := range e.wrap(src, bold, e.cfg.FontSize, e.cfg.UsableWidth()) {
			c.breakIfFull()
			c.page.add(e.textElement(line, e.cfg.Margin, c.y, e.cfg.FontSize))
			c.y += e.cfg.LineHeight
		}
	}
}

// signatures keeps one row of blanks and captions on the same page
func (e *Engine) signatures(c *cursor, row []generator.Signature) {
	if len(row) == 0 {
		return
	}
	column := e.cfg.UsableWidth() / float64(len(row))
	captions := make([][][]Run, len(row))
	lines := 0
	for i, sig := range row {
		if sig.Role != "" {
			captions[i] = append(captions[i], e.wrap(sig.Role, len(sig.Role), e.cfg.FontSize, column)...)
		}
		for _, l := range sig.Lines {
			captions[i] = append(captions[i], e.wrap(l, 0, e.cfg.FontSize, column)...)
		}
		lines = max(lines, len(captions[i]))
	}

	last := c.y + float64(lines)*e.cfg.LineHeight
	if c.y > c.bottom() || (last > c.bottom() && c.y > c.cfg.Margin) {
		c.newPage()
	}

	top := c.y
	for i := range row {
		x := e.cfg.Margin + float64(i)*column
		c.page.add(Element{Kind: ElementLine, X: x, Y: top, X2: x + e.cfg.SignatureWidth, Y2: top, LineWidth: signatureLine})
		y := top + e.cfg.LineHeight
		for _, line := range captions[i] {
			c.page.add(e.textElement(line, x, y, e.cfg.FontSize))
			y += e.cfg.LineHeight
		}
	}
	c.y = top + float64(lines+1)*e.cfg.LineHeight
}

func (e *Engine) textElement(runs []Run, x, y, size float64) Element {
	pos := x
	placed := make([]Run, len(runs))
	for i, r := range runs {
		r.X = pos
		placed[i] = r
		pos += e.measure.Width(r.Text, r.Bold, size)
	}
	return Element{Kind: ElementText, X: x, Y: y, FontSize: size, Runs: placed}
}

type word struct {
	text string
	bold bool
}

// wrap splits src into lines no wider than width. The first bold bytes are
// set in bold. A word wider than the line is broken at rune boundaries.
func (e *Engine) wrap(src string, bold int, size, width float64) [][]Run {
	var words []word
	if bold > 0 {
		for _, w := range strings.Fields(src[:bold]) {
			words = append(words, word{w, true})
		}
	}
	for _, w := range strings.Fields(src[bold:]) {
		words = append(words, word{w, false})
	}
	// a bold lead ending mid-word keeps the word whole
	if bold > 0 && bold < len(src) && src[bold-1] != ' ' && src[bold] != ' ' {
		words = mergeSplitWord(words, src, bold)
	}
	words = e.breakLongWords(words, size, width)

	var (
		lines [][]Run
		line  []Run
		used  float64
	)
	for _, w := range words {
		ww := e.measure.Width(w.text, w.bold, size)
		sp := e.measure.Width(" ", w.bold, size)
		if len(line) > 0 && used+sp+ww > width {
			lines = append(lines, line)
			line, used = nil, 0
		}
		switch {
		case len(line) == 0:
			line = []Run{{Text: w.text, Bold: w.bold}}
			used = ww
		case line[len(line)-1].Bold == w.bold:
			line[len(line)-1].Text += " " + w.text
			used += sp + ww
		default:
			line = append(line, Run{Text: " " + w.text, Bold: w.bold})
			used += sp + ww
		}
	}
	if len(line) > 0 {
		lines = append(lines, line)
	}
	return lines
}

// breakLongWords cuts every word wider than width into pieces that fit.
// A single rune wider than width is kept as its own piece.
func (e *Engine) breakLongWords(words []word, size, width float64) []word {
	out := make([]word, 0, len(words))
	for _, w := range words {
		if e.measure.Width(w.text, w.bold, size) <= width {
			out = append(out, w)
			continue
		}
		start := 0
		for i := 0; i < len(w.text); {
			_, n := utf8.DecodeRuneInString(w.text[i:])
			if i > start && e.measure.Width(w.text[start:i+n], w.bold, size) > width {
				out = append(out, word{w.text[start:i], w.bold})
				start = i
			}
			i += n
		}
		out = append(out, word{w.text[start:], w.bold})
	}
	return out
}

func mergeSplitWord(words []word, src string, bold int) []word {
	boldWords := len(strings.Fields(src[:bold]))
	if boldWords == 0 || boldWords >= len(words) {
		return words
	}
	words[boldWords-1].text += words[boldWords].text
	return append(words[:boldWords], words[boldWords+1:]...)
}
