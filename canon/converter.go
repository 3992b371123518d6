package canon

// Converter converts a raw identifier into its display form.  Conversion
// fails for strings that are not valid identifiers of the converter's kind.
type Converter interface {
	Convert(raw string) (string, error)
}

// ConverterFunc is a function that can be used to satisfy the Converter interface
type ConverterFunc func(string) (string, error)

// Convert a raw identifier with the given function
func (f ConverterFunc) Convert(raw string) (string, error) {
	return f(raw)
}
