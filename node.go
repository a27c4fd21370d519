package mdp

// BlockKind identifies a block-level node.
type BlockKind uint8

const (
	// BlockParagraph is a run of inline content.
	BlockParagraph BlockKind = iota
	// BlockHeading is an ATX or setext heading, levels 1 through 6.
	BlockHeading
	// BlockQuote wraps the blocks parsed from a quoted region.
	BlockQuote
	// BlockCode is a fenced or indented code block with literal contents.
	BlockCode
	// BlockRule is a horizontal rule.
	BlockRule
	// BlockListItem is one item of a list; consecutive items of the same
	// style form the list.
	BlockListItem
)

// Block is a block-level document node.
type Block struct {
	Kind BlockKind

	// Level is the heading level for BlockHeading.
	Level int
	// Info is the fence info string for fenced BlockCode.
	Info string
	// Literal holds the raw contents of a BlockCode.
	Literal []byte
	// Ordered and Index describe a BlockListItem marker.
	Ordered bool
	Index   int

	// Inlines is the parsed inline content of paragraphs and headings.
	Inlines []Inline
	// Children holds the nested blocks of quotes and list items.
	Children []Block
}

// InlineKind identifies an inline node.
type InlineKind uint8

const (
	// InlineText is literal text.
	InlineText InlineKind = iota
	// InlineCode is a code span.
	InlineCode
	// InlineEmphasis and InlineStrong wrap emphasized children.
	InlineEmphasis
	InlineStrong
	// InlineLink and InlineImage carry a resolved destination.
	InlineLink
	InlineImage
	// InlineRefLink and InlineRefImage reference a definition by label.
	// They stay in this form until fixed up against the link table; an
	// unresolved reference keeps its raw text and renders literally.
	InlineRefLink
	InlineRefImage
	// InlineBreak is a hard line break.
	InlineBreak
)

// Inline is an inline-level node inside a paragraph or heading.
type Inline struct {
	Kind InlineKind

	// Text is literal text, code span contents, or the raw source form of
	// an unresolved reference.
	Text []byte
	// URL and Title are set on links and images once resolved.
	URL   string
	Title string
	// Label is the reference label of InlineRefLink and InlineRefImage.
	Label string

	// Children hold the inner inline content of emphasis, strong, links
	// and images.
	Children []Inline
}

// Document is the ordered block structure of a fully consumed parse.
type Document []Block
