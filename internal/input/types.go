package input

// Kind tags the two Source variants.
type Kind int

const (
	KindLiteral Kind = iota
	KindFile
)

// Source is a raw input descriptor: either literal text or a file path.
// It carries no behavior; Resolve turns it into bytes.
type Source struct {
	Kind Kind
	Text string
	Path string
}

func Literal(text string) Source {
	return Source{Kind: KindLiteral, Text: text}
}

func File(path string) Source {
	return Source{Kind: KindFile, Path: path}
}

// Describe returns the display label for the source variant.
func (s Source) Describe() string {
	if s.Kind == KindFile {
		return "File"
	}
	return "Text"
}

// Display returns the user-entered value for result output.
func (s Source) Display() string {
	if s.Kind == KindFile {
		return s.Path
	}
	return s.Text
}
