package layout

// Config is the page geometry and typography, in millimetres and points
type Config struct {
	PageWidth  float64
	PageHeight float64
	Margin     float64
	LineHeight float64

	FontFamily    string
	FontSize      float64
	TitleFontSize float64

	// TitleGap separates the title baseline from the first body line
	TitleGap float64
	// RuleOffset lifts a rule above the cursor, RuleAdvance moves past it
	RuleOffset  float64
	RuleAdvance float64
	// SignatureWidth is the length of a signature blank
	SignatureWidth float64
}

// DefaultConfig is A4 portrait, 2.5 cm margins, Times 11 pt
func DefaultConfig() Config {
	return Config{
		PageWidth:      210,
		PageHeight:     297,
		Margin:         25,
		LineHeight:     6,
		FontFamily:     "Times",
		FontSize:       11,
		TitleFontSize:  14,
		TitleGap:       15,
		RuleOffset:     2,
		RuleAdvance:    3,
		SignatureWidth: 50,
	}
}

// WithDefaults fills zero fields from DefaultConfig
func (c Config) WithDefaults() Config {
	d := DefaultConfig()
	if c.PageWidth <= 0 {
		c.PageWidth = d.PageWidth
	}
	if c.PageHeight <= 0 {
		c.PageHeight = d.PageHeight
	}
	if c.Margin <= 0 {
		c.Margin = d.Margin
	}
	if c.LineHeight <= 0 {
		c.LineHeight = d.LineHeight
	}
	if c.FontFamily == "" {
		c.FontFamily = d.FontFamily
	}
	if c.FontSize <= 0 {
		c.FontSize = d.FontSize
	}
	if c.TitleFontSize <= 0 {
		c.TitleFontSize = d.TitleFontSize
	}
	if c.TitleGap <= 0 {
		c.TitleGap = d.TitleGap
	}
	if c.RuleOffset <= 0 {
		c.RuleOffset = d.RuleOffset
	}
	if c.RuleAdvance <= 0 {
		c.RuleAdvance = d.RuleAdvance
	}
	if c.SignatureWidth <= 0 {
		c.SignatureWidth = d.SignatureWidth
	}
	return c
}

// UsableWidth is the text column width
func (c Config) UsableWidth() float64 {
	return c.PageWidth - 2*c.Margin
}
