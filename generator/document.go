package generator

import (
	"strings"
	"unicode/utf8"
)

// DocumentTitle heads every lease
const DocumentTitle = "CONTRATO DE LOCACIÓN DE INMUEBLE PARA VIVIENDA"

// BlockKind tells the layout engine how to draw a block
type BlockKind int

const (
	BlockTitle BlockKind = iota
	BlockHeading
	BlockParagraph
	BlockClause
	BlockRule
	BlockSpacer
	BlockSignatures
)

func (k BlockKind) String() string {
	switch k {
	case BlockTitle:
		return "title"
	case BlockHeading:
		return "heading"
	case BlockParagraph:
		return "paragraph"
	case BlockClause:
		return "clause"
	case BlockRule:
		return "rule"
	case BlockSpacer:
		return "spacer"
	case BlockSignatures:
		return "signatures"
	}
	return "unknown"
}

// Block is one typed unit of a composed contract.
type Block struct {
	Kind BlockKind
	Text string

	// Lead is the byte length of the bold clause heading at the start of Text
	Lead int
	// Clause is the clause number, set for BlockClause only
	Clause int
	// Custom marks clauses appended after the standard catalog
	Custom bool
	// Heavy selects the double rule used around the document frame
	Heavy bool

	// Signatures holds one row of side-by-side signature blanks
	Signatures []Signature
}

// Signature is a signature blank with the caption lines printed under it
type Signature struct {
	Role  string
	Lines []string
}

// Document is the composed contract, ready for layout
type Document struct {
	Title  string
	Blocks []Block
}

// Clauses returns the clause blocks in document order
func (d *Document) Clauses() []Block {
	var out []Block
	for _, b := range d.Blocks {
		if b.Kind == BlockClause {
			out = append(out, b)
		}
	}
	return out
}

// StandardClauses returns only the 24 catalog clauses
func (d *Document) StandardClauses() []Block {
	var out []Block
	for _, b := range d.Clauses() {
		if !b.Custom {
			out = append(out, b)
		}
	}
	return out
}

// CustomClauses returns the appended clauses in insertion order
func (d *Document) CustomClauses() []Block {
	var out []Block
	for _, b := range d.Clauses() {
		if b.Custom {
			out = append(out, b)
		}
	}
	return out
}

// Signatures flattens every signature row
func (d *Document) Signatures() []Signature {
	var out []Signature
	for _, b := range d.Blocks {
		if b.Kind == BlockSignatures {
			out = append(out, b.Signatures...)
		}
	}
	return out
}

// HasHeading reports whether a heading block with the given text exists
func (d *Document) HasHeading(text string) bool {
	for _, b := range d.Blocks {
		if b.Kind == BlockHeading && b.Text == text {
			return true
		}
	}
	return false
}

const (
	ruleWidth      = 60
	signatureBlank = 28
	signatureGap   = 14
	captionWidth   = 30
)

// Text renders the document as plain text with box-drawing rules
func (d *Document) Text() string {
	var b strings.Builder
	for _, block := range d.Blocks {
		switch block.Kind {
		case BlockRule:
			ch := "─"
			if block.Heavy {
				ch = "═"
			}
			b.WriteString(strings.Repeat(ch, ruleWidth))
		case BlockSpacer:
		case BlockSignatures:
			writeSignatureRow(&b, block.Signatures)
			continue
		default:
			b.WriteString(block.Text)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func writeSignatureRow(b *strings.Builder, row []Signature) {
	blanks := make([]string, len(row))
	for i := range row {
		blanks[i] = strings.Repeat("_", signatureBlank)
	}
	b.WriteString(strings.Join(blanks, strings.Repeat(" ", signatureGap)) + "\n")

	rows := 0
	for _, sig := range row {
		rows = max(rows, len(sig.captions()))
	}
	for line := 0; line < rows; line++ {
		cells := make([]string, len(row))
		for i, sig := range row {
			captions := sig.captions()
			if line < len(captions) {
				cells[i] = captions[line]
			}
			if i < len(row)-1 {
				cells[i] = padRight(cells[i], captionWidth)
			}
		}
		b.WriteString(strings.TrimRight("  "+strings.Join(cells, "      "), " ") + "\n")
	}
}

func (s Signature) captions() []string {
	if s.Role == "" {
		return s.Lines
	}
	return append([]string{s.Role}, s.Lines...)
}

func padRight(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
