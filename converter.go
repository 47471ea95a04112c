package doctext

// Converter renders HTML as text.
type Converter interface {
	// Convert transforms HTML content into text (Markdown or plain text,
	// depending on the implementation).
	Convert(html string) (string, error)
}
