package app

// Layout constants define the fixed rows and spacing of the UI
const (
	// HeaderRows is the height of the title and tab bar.
	HeaderRows = 1

	// FooterRows is the height of the status/help footer.
	FooterRows = 1

	// LabelWidth is the column reserved for field labels in the form.
	LabelWidth = 16

	// MinInputWidth keeps text inputs usable on narrow terminals.
	MinInputWidth = 8
)

// Input limits define maximum sizes for user input
const (
	// InputCharLimit is the maximum number of characters allowed in a field.
	InputCharLimit = 64
)

// Rendering constants control help-panel rendering
const (
	// RenderWidthBucket is the granularity for width-based renderer caching.
	// Widths are rounded down to a multiple of this value.
	RenderWidthBucket = 20

	// DefaultRenderWidth is used before the first window size message.
	DefaultRenderWidth = 80
)
