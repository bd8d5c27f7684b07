package overlay

// Primitive is one draw operation. The slice order produced by Plan is the
// paint z-order.
type Primitive interface {
	primitive()
}

// Box is a filled rectangle. Color accepts ffmpeg color expressions,
// including alpha suffixes such as "red@0.8". A non-empty Enable expression
// gates visibility by elapsed clip time.
type Box struct {
	X      int
	Y      int
	Width  int
	Height int
	Color  string
	Enable string
}

func (Box) primitive() {}

// Text is a drawn string. X and Y are ffmpeg position expressions so they can
// reference the rendered text metrics (text_w, text_h). A non-empty Enable
// expression gates visibility by elapsed clip time.
type Text struct {
	Content  string
	FontFile string
	FontSize int
	Color    string
	X        string
	Y        string
	Enable   string
}

func (Text) primitive() {}

// Style carries the font and color settings applied to every primitive.
type Style struct {
	FontFile    string
	Team1Color  string
	Team2Color  string
	BarColor    string
	AccentColor string
	LineColor   string
}

// DefaultStyle returns the stock look: red vs blue on a black bar with an
// orange accent stripe and a white progress line.
func DefaultStyle(fontFile string) Style {
	return Style{
		FontFile:    fontFile,
		Team1Color:  "red@0.8",
		Team2Color:  "blue@0.8",
		BarColor:    "black@0.8",
		AccentColor: "orange@1",
		LineColor:   "white@1",
	}
}
