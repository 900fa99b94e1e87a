package docgen

// PageSize represents paper dimensions in centimeters.
type PageSize struct {
	Width  float64 // Width in centimeters.
	Height float64 // Height in centimeters.
}

// Standard paper sizes.
var (
	A3      = PageSize{Width: 29.7, Height: 42.0}
	A4      = PageSize{Width: 21.0, Height: 29.7}
	A5      = PageSize{Width: 14.8, Height: 21.0}
	Letter  = PageSize{Width: 21.59, Height: 27.94}
	Legal   = PageSize{Width: 21.59, Height: 35.56}
	Tabloid = PageSize{Width: 27.94, Height: 43.18}
)

// Orientation represents the page orientation.
type Orientation int

const (
	// Portrait is the default vertical orientation.
	Portrait Orientation = iota
	// Landscape rotates the page to horizontal orientation.
	Landscape
)

// Margin represents page margins in centimeters.
type Margin struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// UniformMargin returns a Margin with the same value on all sides.
func UniformMargin(cm float64) Margin {
	return Margin{Top: cm, Right: cm, Bottom: cm, Left: cm}
}

// PageOptions is a typed helper for building the open "pageOptions" mapping
// the document service accepts. It is optional — any mapping can be placed
// under the "pageOptions" key directly — but it covers the parameters the
// service's renderer understands.
//
// Zero-value fields fall back to sensible defaults: A4 paper, portrait
// orientation, 1 cm margins, scale 1.0, background graphics enabled.
type PageOptions struct {
	// Size specifies the paper size. Defaults to A4.
	Size PageSize

	// Orientation specifies portrait or landscape. Defaults to Portrait.
	Orientation Orientation

	// Margin specifies page margins in centimeters. Defaults to 1 cm on all sides.
	Margin Margin

	// Scale of the page rendering. Must be between 0.1 and 2.0. Defaults to 1.0.
	Scale float64

	// PrintBackground enables printing of background colors and images.
	PrintBackground bool
}

// DefaultPageOptions returns a PageOptions with the documented defaults.
func DefaultPageOptions() PageOptions {
	return PageOptions{
		Size:            A4,
		Orientation:     Portrait,
		Margin:          UniformMargin(1.0),
		Scale:           1.0,
		PrintBackground: true,
	}
}

// resolved returns a PageOptions with all zero values replaced by defaults.
func (p *PageOptions) resolved() PageOptions {
	d := DefaultPageOptions()
	if p == nil {
		return d
	}
	r := *p
	if r.Size == (PageSize{}) {
		r.Size = d.Size
	}
	if r.Scale <= 0 {
		r.Scale = d.Scale
	}
	if r.Margin == (Margin{}) {
		r.Margin = d.Margin
	}
	return r
}

// cmToInches converts centimeters to inches.
func cmToInches(cm float64) float64 {
	return cm / 2.54
}

// Map renders the options as the open mapping carried under the message's
// "pageOptions" key. Dimensions are emitted in inches, the unit the
// service's print backend expects.
func (p *PageOptions) Map() map[string]any {
	r := p.resolved()

	width := cmToInches(r.Size.Width)
	height := cmToInches(r.Size.Height)
	if r.Orientation == Landscape {
		width, height = height, width
	}

	return map[string]any{
		"paperWidth":      width,
		"paperHeight":     height,
		"marginTop":       cmToInches(r.Margin.Top),
		"marginRight":     cmToInches(r.Margin.Right),
		"marginBottom":    cmToInches(r.Margin.Bottom),
		"marginLeft":      cmToInches(r.Margin.Left),
		"scale":           r.Scale,
		"landscape":       r.Orientation == Landscape,
		"printBackground": r.PrintBackground,
	}
}
