package mdp

import "bytes"

// parseBlock is the block grammar entry point. It is total: every call
// resolves to a matched block or to exhaustion. A non-match from an
// individual production falls through to the next alternative, and the
// paragraph catch-all matches anything that reaches it.
func (p *Parser) parseBlock() result[Block] {
	for {
		// Blank lines between blocks carry no content.
		for {
			r := p.emptyLine()
			if r.isExhausted() {
				return exhausted[Block]()
			}
			if !r.isMatched() {
				break
			}
		}
		// Reference definitions feed the link table and emit no block.
		def := p.linkRefDefinition()
		if def.isExhausted() {
			return exhausted[Block]()
		}
		if def.isMatched() {
			continue
		}
		return firstOf(
			p.fencedCode,
			p.indentedCode,
			p.blockQuote,
			p.horizontalRule,
			p.atxHeading,
			p.listItem,
			p.paragraph,
		)
	}
}

func (p *Parser) atxHeading() result[Block] {
	m := p.cur.mark()
	defer m.rollback()
	if r := p.skipInitialSpaces(); !r.isMatched() {
		return forward[Block](r)
	}
	hashes := p.scan(byteIs('#'))
	if !hashes.isMatched() {
		return forward[Block](hashes)
	}
	level := len(hashes.unwrap())
	if level > 6 {
		return noMatch[Block]()
	}
	if b, ok := p.cur.currentByte(); ok && b != ' ' && b != '\n' {
		// "#hashtag" is paragraph text
		return noMatch[Block]()
	}
	p.skipSpaces()
	pm := p.cur.phantomMark()
	p.readLine()
	content := trimHeadingContent(p.cur.sliceToNowFrom(pm))
	b := Block{Kind: BlockHeading, Level: level, Inlines: p.parseInlines(content)}
	m.commit()
	return matched(b)
}

// trimHeadingContent drops the trailing newline, any closing hash run, and
// surrounding spaces.
func trimHeadingContent(line []byte) []byte {
	line = bytes.TrimRight(line, "\n")
	line = bytes.TrimRight(line, " ")
	trimmed := bytes.TrimRight(line, "#")
	if len(trimmed) < len(line) && (len(trimmed) == 0 || trimmed[len(trimmed)-1] == ' ') {
		line = trimmed
	}
	return bytes.TrimRight(line, " ")
}

func (p *Parser) horizontalRule() result[Block] {
	m := p.cur.mark()
	defer m.rollback()
	if r := p.skipInitialSpaces(); !r.isMatched() {
		return forward[Block](r)
	}
	marker, ok := p.cur.currentByte()
	if !ok {
		return noMatch[Block]()
	}
	if marker != '-' && marker != '*' && marker != '_' {
		return noMatch[Block]()
	}
	count := 0
loop:
	for p.cur.available() {
		switch p.cur.peek() {
		case marker:
			count++
			p.cur.next()
		case ' ':
			p.cur.next()
		case '\n':
			p.cur.next()
			break loop
		default:
			return noMatch[Block]()
		}
	}
	if count < 3 {
		return noMatch[Block]()
	}
	m.commit()
	return matched(Block{Kind: BlockRule})
}

func (p *Parser) fencedCode() result[Block] {
	if !p.config.fencedCode {
		return noMatch[Block]()
	}
	m := p.cur.mark()
	defer m.rollback()
	if r := p.skipInitialSpaces(); !r.isMatched() {
		return forward[Block](r)
	}
	fence, ok := p.cur.currentByte()
	if !ok {
		return noMatch[Block]()
	}
	if fence != '`' && fence != '~' {
		return noMatch[Block]()
	}
	if !p.lookahead(3, fence) {
		return noMatch[Block]()
	}
	width := len(p.scan(byteIs(fence)).unwrap())
	pm := p.cur.phantomMark()
	p.readLine()
	info := bytes.TrimSpace(p.cur.sliceToNowFrom(pm))

	bodyStart := p.cur.phantomMark()
	bodyEnd := bodyStart
	for p.cur.available() {
		cm := p.cur.mark()
		if p.closingFence(fence, width) {
			cm.commit()
			break
		}
		cm.rollback()
		p.readLine()
		bodyEnd = p.cur.phantomMark()
	}
	b := Block{Kind: BlockCode, Info: string(info), Literal: p.cur.slice(bodyStart, bodyEnd)}
	m.commit()
	return matched(b)
}

// closingFence consumes a closing fence line of at least width fence bytes.
func (p *Parser) closingFence(fence byte, width int) bool {
	m := p.cur.mark()
	defer m.rollback()
	if !p.skipInitialSpaces().isMatched() {
		return false
	}
	if !p.lookahead(width, fence) {
		return false
	}
	p.cur.advance(width)
	p.scan(byteIs(fence))
	p.skipSpaces()
	if r := p.expectByte('\n'); !r.isMatched() && !r.isExhausted() {
		return false
	}
	m.commit()
	return true
}

func (p *Parser) indentedCode() result[Block] {
	if !p.cur.available() {
		return exhausted[Block]()
	}
	var body []byte
	lines := 0
	for p.cur.available() {
		lm := p.cur.mark()
		if !p.consumeIndent(4) {
			lm.rollback()
			break
		}
		lm.commit()
		body, _ = p.readLineTo(body)
		lines++
	}
	if lines == 0 {
		return noMatch[Block]()
	}
	return matched(Block{Kind: BlockCode, Literal: body})
}

func (p *Parser) blockQuote() result[Block] {
	if p.depth >= p.config.nestLimit {
		return noMatch[Block]()
	}
	m := p.cur.mark()
	defer m.rollback()
	if r := p.skipInitialSpaces(); !r.isMatched() {
		return forward[Block](r)
	}
	if r := p.expectByte('>'); !r.isMatched() {
		return forward[Block](r)
	}
	p.expectByte(' ')
	var body []byte
	body, _ = p.readLineTo(body)
	for p.cur.available() {
		lm := p.cur.mark()
		if p.skipInitialSpaces().isMatched() && p.expectByte('>').isMatched() {
			p.expectByte(' ')
			lm.commit()
			body, _ = p.readLineTo(body)
			continue
		}
		lm.rollback()
		break
	}
	children := p.fork(body).ReadAll()
	m.commit()
	return matched(Block{Kind: BlockQuote, Children: children})
}

type listMarker struct {
	ordered bool
	delim   byte // '-', '+', '*' or the '.'/')' of an ordered marker
	index   int
	indent  int // content column: leading spaces + marker + one space
}

func (p *Parser) listItem() result[Block] {
	if p.depth >= p.config.nestLimit {
		return noMatch[Block]()
	}
	m := p.cur.mark()
	defer m.rollback()
	mk, r := p.readListMarker()
	if !r.isMatched() {
		return forward[Block](r)
	}
	style := mk
	var first Block
	n := 0
	for {
		body := p.collectListItemBody(mk)
		item := Block{
			Kind:     BlockListItem,
			Ordered:  mk.ordered,
			Index:    mk.index,
			Children: p.fork(body).ReadAll(),
		}
		if n == 0 {
			first = item
		} else {
			p.enqueue(item)
		}
		n++
		lm := p.cur.mark()
		next, nr := p.readListMarker()
		if !nr.isMatched() || next.ordered != style.ordered || next.delim != style.delim {
			lm.rollback()
			break
		}
		lm.commit()
		mk = next
	}
	m.commit()
	return matched(first)
}

// readListMarker consumes a list marker: "-", "+" or "*" followed by a
// space, or digits followed by "." or ")" and a space.
func (p *Parser) readListMarker() (listMarker, result[empty]) {
	var mk listMarker
	m := p.cur.mark()
	defer m.rollback()
	start := p.cur.phantomMark()
	if r := p.skipInitialSpaces(); !r.isMatched() {
		return mk, forward[empty](r)
	}
	leading := len(p.cur.sliceToNowFrom(start))
	c, ok := p.cur.currentByte()
	if !ok {
		return mk, noMatch[empty]()
	}
	markerLen := 0
	switch {
	case c == '-' || c == '+' || c == '*':
		p.cur.next()
		mk.delim = c
		markerLen = 1
	case isDigit(c):
		digits := p.scan(bytePred(isDigit)).unwrap()
		if len(digits) > 9 {
			return mk, noMatch[empty]()
		}
		d, ok := p.cur.currentByte()
		if !ok || (d != '.' && d != ')') {
			return mk, noMatch[empty]()
		}
		p.cur.next()
		mk.ordered = true
		mk.delim = d
		mk.index = parseInt(digits)
		markerLen = len(digits) + 1
	default:
		return mk, noMatch[empty]()
	}
	if r := p.expectByte(' '); !r.isMatched() {
		return mk, noMatch[empty]()
	}
	if !p.cur.available() || p.cur.peek() == '\n' {
		// marker with no content is paragraph text
		return mk, noMatch[empty]()
	}
	mk.indent = leading + markerLen + 1
	m.commit()
	return mk, success()
}

// collectListItemBody gathers the dedented content region of one item: the
// remainder of the marker line, continuation lines indented to the content
// column, and interior blank lines followed by further indented content.
func (p *Parser) collectListItemBody(mk listMarker) []byte {
	var body []byte
	body, _ = p.readLineTo(body)
	for p.cur.available() {
		lm := p.cur.mark()
		if p.emptyLine().isMatched() {
			if !p.hasIndent(mk.indent) {
				lm.rollback()
				break
			}
			body = append(body, '\n')
			lm.commit()
			continue
		}
		if !p.consumeIndent(mk.indent) {
			lm.rollback()
			break
		}
		lm.commit()
		body, _ = p.readLineTo(body)
	}
	return body
}

// hasIndent reports whether the next line starts with at least n spaces,
// consuming nothing.
func (p *Parser) hasIndent(n int) bool {
	return p.lookahead(n, ' ')
}

// consumeIndent consumes exactly n leading spaces, failing on fewer.
func (p *Parser) consumeIndent(n int) bool {
	if !p.lookahead(n, ' ') {
		return false
	}
	p.cur.advance(n)
	return true
}

// linkRefDefinition recognizes `[label]: destination "title"` and records it
// in the link table. Forked parsers consume definitions but hold no table to
// record them in.
func (p *Parser) linkRefDefinition() result[empty] {
	m := p.cur.mark()
	defer m.rollback()
	if r := p.skipInitialSpaces(); !r.isMatched() {
		return forward[empty](r)
	}
	if r := p.expectByte('['); !r.isMatched() {
		return forward[empty](r)
	}
	label := p.scan(bytePred(func(b byte) bool {
		return b != ']' && b != '[' && b != '\n'
	}))
	if !label.isMatched() {
		return noMatch[empty]()
	}
	if r := p.expectByte(']'); !r.isMatched() {
		return noMatch[empty]()
	}
	if r := p.expectByte(':'); !r.isMatched() {
		return noMatch[empty]()
	}
	p.skipSpaces()
	dest := p.scan(bytePred(func(b byte) bool {
		return b != ' ' && b != '\n'
	}))
	if !dest.isMatched() {
		return noMatch[empty]()
	}
	title := ""
	tm := p.cur.mark()
	p.skipSpaces()
	if t, ok := p.linkTitle(); ok {
		title = t
		tm.commit()
	} else {
		tm.rollback()
	}
	p.skipSpaces()
	if r := p.expectByte('\n'); !r.isMatched() && !r.isExhausted() {
		return noMatch[empty]()
	}
	if p.links != nil {
		p.links.add(string(label.unwrap()), LinkTarget{URL: string(dest.unwrap()), Title: title})
	}
	m.commit()
	return success()
}

// paragraph is the catch-all production: any available input yields a
// paragraph, which keeps the block grammar total. A setext underline turns
// the accumulated content into a heading instead.
func (p *Parser) paragraph() result[Block] {
	if !p.cur.available() {
		return exhausted[Block]()
	}
	p.skipInitialSpaces()
	pm := p.cur.phantomMark()
	end := pm
	level := 0
	for p.cur.available() {
		if end != pm {
			if p.config.setextHeadings {
				if lvl := p.setextUnderline(); lvl > 0 {
					level = lvl
					break
				}
			}
			if p.blockStartAhead() {
				break
			}
			bm := p.cur.mark()
			blank := p.emptyLine().isMatched()
			bm.rollback()
			if blank {
				break
			}
		}
		p.readLine()
		end = p.cur.phantomMark()
	}
	text := bytes.TrimRight(p.cur.slice(pm, end), " \n")
	b := Block{Kind: BlockParagraph, Inlines: p.parseInlines(text)}
	if level > 0 {
		b.Kind = BlockHeading
		b.Level = level
	}
	return matched(b)
}

// setextUnderline consumes an underline line ("=" rows for level 1, "-" for
// level 2) and reports the heading level, or 0 with no consumption.
func (p *Parser) setextUnderline() int {
	m := p.cur.mark()
	defer m.rollback()
	if !p.skipInitialSpaces().isMatched() {
		return 0
	}
	c, ok := p.cur.currentByte()
	if !ok || (c != '=' && c != '-') {
		return 0
	}
	if !p.scan(byteIs(c)).isMatched() {
		return 0
	}
	p.skipSpaces()
	if r := p.expectByte('\n'); !r.isMatched() && !r.isExhausted() {
		return 0
	}
	m.commit()
	if c == '=' {
		return 1
	}
	return 2
}

// blockStartAhead probes, without consuming, whether the upcoming line opens
// a block that interrupts a paragraph.
func (p *Parser) blockStartAhead() bool {
	m := p.cur.mark()
	defer m.rollback()
	if !p.skipInitialSpaces().isMatched() {
		return false
	}
	c, ok := p.cur.currentByte()
	if !ok {
		return false
	}
	switch {
	case c == '>':
		return true
	case c == '#':
		hashes := p.scan(byteIs('#'))
		if !hashes.isMatched() || len(hashes.unwrap()) > 6 {
			return false
		}
		b, ok := p.cur.currentByte()
		return !ok || b == ' ' || b == '\n'
	case (c == '`' || c == '~') && p.config.fencedCode:
		return p.lookahead(3, c)
	case c == '-' || c == '*' || c == '+':
		if c != '+' && p.hruleAhead() {
			return true
		}
		p.cur.next()
		b, ok := p.cur.currentByte()
		return ok && b == ' '
	case c == '_':
		return p.hruleAhead()
	case isDigit(c):
		if !p.scan(bytePred(isDigit)).isMatched() {
			return false
		}
		b, ok := p.cur.currentByte()
		if !ok || (b != '.' && b != ')') {
			return false
		}
		p.cur.next()
		b, ok = p.cur.currentByte()
		return ok && b == ' '
	}
	return false
}

// hruleAhead probes whether the rest of the current line is a horizontal
// rule. The cursor never moves.
func (p *Parser) hruleAhead() bool {
	m := p.cur.mark()
	defer m.rollback()
	marker, ok := p.cur.currentByte()
	if !ok {
		return false
	}
	count := 0
	for p.cur.available() {
		switch p.cur.peek() {
		case marker:
			count++
			p.cur.next()
		case ' ':
			p.cur.next()
		case '\n':
			return count >= 3
		default:
			return false
		}
	}
	return count >= 3
}

func parseInt(digits []byte) int {
	n := 0
	for _, d := range digits {
		n = n*10 + int(d-'0')
	}
	return n
}
