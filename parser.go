package mdp

import "iter"

// Parser produces document blocks lazily from one in-memory buffer. It is
// single-use: consuming the block sequence drives the parse forward and the
// parser cannot be restarted or reset.
type Parser struct {
	cur    cursor
	queue  []Block
	config Config
	links  linkMap
	depth  int
	done   bool
}

// New creates a parser over buf. The buffer is borrowed, never copied or
// mutated, and must stay resident for the lifetime of the parse.
func New(buf []byte, opts ...Option) *Parser {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	p := &Parser{
		cur:    newCursor(buf),
		config: cfg,
		links:  make(linkMap),
	}
	if cfg.frontmatter {
		p.skipFrontmatter()
	}
	return p
}

// fork creates a sub-parser over a distinct byte region. It shares the
// configuration, starts with an empty queue, and never receives the link
// table: references inside forked regions resolve only once their blocks
// flow back through the root.
func (p *Parser) fork(region []byte) *Parser {
	return &Parser{
		cur:    newCursor(region),
		config: p.config,
		depth:  p.depth + 1,
	}
}

func (p *Parser) enqueue(b Block) {
	p.queue = append(p.queue, b)
}

// Next produces the next block, draining the pending queue before invoking
// the block grammar. The grammar entry point is total: it resolves to a
// block or to exhaustion, and a bare non-match reaching this point aborts.
func (p *Parser) Next() (Block, bool) {
	if len(p.queue) > 0 {
		b := p.queue[0]
		p.queue = p.queue[1:]
		p.fixup(&b)
		return b, true
	}
	if p.done {
		return Block{}, false
	}
	b, ok := p.parseBlock().value()
	if !ok {
		p.done = true
		return Block{}, false
	}
	p.fixup(&b)
	return b, true
}

// Blocks exposes the lazy block sequence. The sequence is not restartable;
// ranging over it consumes the parse.
func (p *Parser) Blocks() iter.Seq[Block] {
	return func(yield func(Block) bool) {
		for {
			b, ok := p.Next()
			if !ok {
				return
			}
			if !yield(b) {
				return
			}
		}
	}
}

// ReadAll consumes the whole sequence and then resolves reference links
// against the completed table, so a reference used before its definition and
// one used after resolve identically.
func (p *Parser) ReadAll() Document {
	var doc Document
	for {
		b, ok := p.Next()
		if !ok {
			break
		}
		doc = append(doc, b)
	}
	fixLinks(doc, p.links)
	return doc
}

// fixup resolves references in a block flowing out of a table-owning parser
// against the table as populated so far. Forked parsers hold no table and
// pass blocks through unresolved.
func (p *Parser) fixup(b *Block) {
	if p.links == nil {
		return
	}
	fixInlines(b.Inlines, p.links)
	fixLinks(b.Children, p.links)
}
