package roster

// Converter converts Markdown to HTML.
type Converter interface {
	// Convert renders Markdown reply text as an HTML fragment.
	// Raw HTML in the input is not passed through.
	Convert(markdown string) (string, error)
}
