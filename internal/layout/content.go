// internal/layout/content.go
package layout

// ContentKind is the discriminant reported by every content variant.
type ContentKind int

const (
	ContentLabel ContentKind = iota
	ContentField
	ContentNested
)

// String returns the declaration-facing name of the content kind.
func (k ContentKind) String() string {
	switch k {
	case ContentLabel:
		return "label"
	case ContentField:
		return "field"
	case ContentNested:
		return "nested-layout"
	default:
		return "unknown"
	}
}

// Content is the closed set of things a cell can hold: literal labels, bound
// fields, and nested layouts.
type Content interface {
	Kind() ContentKind
	isContent()
}

// Label is literal text with optional presentation.
type Label struct {
	Text  string
	Style *Style
}

// Kind implements Content.
func (l *Label) Kind() ContentKind { return ContentLabel }

func (l *Label) isContent() {}

// Field binds a data source path into the report. Format and Digits are
// rendering hints carried through untouched; Digits is nil when the
// declaration gave no decimal-precision hint.
type Field struct {
	Source string
	Format string
	Digits *int
	Style  *Style
}

// Kind implements Content.
func (f *Field) Kind() ContentKind { return ContentField }

func (f *Field) isContent() {}

// Nested wraps an entire container node, enabling recursive composition.
type Nested struct {
	Node *Node
}

// Kind implements Content.
func (n *Nested) Kind() ContentKind { return ContentNested }

func (n *Nested) isContent() {}
