package mdp

import "bytes"

// parseInlines parses a span of paragraph or heading content into inline
// nodes by running a forked parser over it. The fork carries no link table,
// so reference links stay unresolved here and are fixed up later at the
// root.
func (p *Parser) parseInlines(text []byte) []Inline {
	if len(text) == 0 {
		return nil
	}
	return p.fork(text).inlineRun()
}

func (p *Parser) inlineRun() []Inline {
	var out []Inline
	var lit []byte
	flush := func() {
		if len(lit) > 0 {
			out = append(out, Inline{Kind: InlineText, Text: lit})
			lit = nil
		}
	}
	emit := func(node Inline) {
		flush()
		out = append(out, node)
	}
	for p.cur.available() {
		c := p.cur.peek()
		switch c {
		case '\\':
			p.cur.next()
			if b, ok := p.cur.currentByte(); ok && isASCIIPunct(b) {
				lit = append(lit, b)
				p.cur.next()
			} else {
				lit = append(lit, '\\')
			}
		case '\n':
			hard := len(lit) >= 2 && lit[len(lit)-1] == ' ' && lit[len(lit)-2] == ' '
			for len(lit) > 0 && lit[len(lit)-1] == ' ' {
				lit = lit[:len(lit)-1]
			}
			p.cur.next()
			if hard {
				emit(Inline{Kind: InlineBreak})
			} else if p.cur.available() {
				lit = append(lit, ' ')
			}
		case '`':
			if node, ok := p.codeSpan(); ok {
				emit(node)
			} else {
				lit = append(lit, c)
				p.cur.next()
			}
		case '*', '_':
			if node, ok := p.emphasisSpan(c); ok {
				emit(node)
			} else {
				lit = append(lit, c)
				p.cur.next()
			}
		case '[', '!':
			if node, ok := p.linkSpan(c == '!'); ok {
				emit(node)
			} else {
				lit = append(lit, c)
				p.cur.next()
			}
		case '<':
			if node, ok := p.autoLink(); ok {
				emit(node)
			} else {
				lit = append(lit, c)
				p.cur.next()
			}
		default:
			lit = append(lit, c)
			p.cur.next()
		}
	}
	flush()
	return out
}

// codeSpan recognizes a backtick code span whose closing run has the same
// length as the opener. Without a closer the opener degrades to literal
// text.
func (p *Parser) codeSpan() (Inline, bool) {
	m := p.cur.mark()
	defer m.rollback()
	opener := p.scan(byteIs('`'))
	if !opener.isMatched() {
		return Inline{}, false
	}
	width := len(opener.unwrap())
	start := p.cur.phantomMark()
	for p.cur.available() {
		if p.cur.peek() != '`' {
			p.cur.next()
			continue
		}
		runStart := p.cur.phantomMark()
		if len(p.scan(byteIs('`')).unwrap()) == width {
			text := trimCodeSpan(p.cur.slice(start, runStart))
			m.commit()
			return Inline{Kind: InlineCode, Text: text}, true
		}
	}
	return Inline{}, false
}

// trimCodeSpan strips one leading and one trailing space when both are
// present and the contents are not all spaces.
func trimCodeSpan(text []byte) []byte {
	if len(text) >= 2 && text[0] == ' ' && text[len(text)-1] == ' ' {
		if len(bytes.TrimLeft(text, " ")) > 0 {
			return text[1 : len(text)-1]
		}
	}
	return text
}

// emphasisSpan recognizes emphasis (one delimiter) or strong (two) wrapped
// content. Unclosed delimiters degrade to literal text.
func (p *Parser) emphasisSpan(delim byte) (Inline, bool) {
	m := p.cur.mark()
	defer m.rollback()
	run := p.scan(byteIs(delim))
	if !run.isMatched() {
		return Inline{}, false
	}
	width := len(run.unwrap())
	if width > 2 {
		return Inline{}, false
	}
	if b, ok := p.cur.currentByte(); !ok || b == ' ' || b == '\n' {
		return Inline{}, false
	}
	start := p.cur.phantomMark()
	for p.cur.available() {
		if p.cur.peek() != delim {
			p.cur.next()
			continue
		}
		runStart := p.cur.phantomMark()
		if len(p.scan(byteIs(delim)).unwrap()) != width {
			continue
		}
		inner := p.cur.slice(start, runStart)
		if len(inner) == 0 || inner[len(inner)-1] == ' ' {
			continue
		}
		kind := InlineEmphasis
		if width == 2 {
			kind = InlineStrong
		}
		node := Inline{Kind: kind, Children: p.parseInlines(inner)}
		m.commit()
		return node, true
	}
	return Inline{}, false
}

// linkSpan recognizes inline links and images, plus the reference forms
// [text][label], [label][] and [label]. Reference nodes keep their raw
// source text so an unresolved label can degrade to literal text.
func (p *Parser) linkSpan(image bool) (Inline, bool) {
	m := p.cur.mark()
	defer m.rollback()
	raw := p.cur.phantomMark()
	if image {
		if !p.expectByte('!').isMatched() {
			return Inline{}, false
		}
	}
	if !p.expectByte('[').isMatched() {
		return Inline{}, false
	}
	textStart := p.cur.phantomMark()
	var textEnd phantomMark
	depth := 1
	for depth > 0 {
		c, ok := p.cur.nextByte()
		if !ok {
			return Inline{}, false
		}
		switch c {
		case '\\':
			p.cur.next()
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				textEnd = p.cur.phantomMarkAtPrev()
			}
		case '\n':
			return Inline{}, false
		}
	}
	inner := p.cur.slice(textStart, textEnd)

	if b, ok := p.cur.currentByte(); ok && b == '(' {
		p.cur.next()
		p.skipSpaces()
		var url []byte
		if dest := p.scan(bytePred(func(b byte) bool {
			return b != ' ' && b != ')' && b != '\n'
		})); dest.isMatched() {
			url = dest.unwrap()
		}
		title := ""
		p.skipSpaces()
		if t, ok := p.linkTitle(); ok {
			title = t
			p.skipSpaces()
		}
		if !p.expectByte(')').isMatched() {
			return Inline{}, false
		}
		node := Inline{
			Kind:     resolvedKind(image),
			URL:      string(url),
			Title:    title,
			Children: p.parseInlines(inner),
		}
		m.commit()
		return node, true
	}

	label := inner
	if b, ok := p.cur.currentByte(); ok && b == '[' {
		p.cur.next()
		lbl := p.scan(bytePred(func(b byte) bool {
			return b != ']' && b != '[' && b != '\n'
		}))
		if !p.expectByte(']').isMatched() {
			return Inline{}, false
		}
		if lbl.isMatched() {
			label = lbl.unwrap()
		}
	}
	if len(label) == 0 {
		return Inline{}, false
	}
	node := Inline{
		Kind:     referenceKind(image),
		Label:    string(label),
		Text:     p.cur.sliceToNowFrom(raw),
		Children: p.parseInlines(inner),
	}
	m.commit()
	return node, true
}

func resolvedKind(image bool) InlineKind {
	if image {
		return InlineImage
	}
	return InlineLink
}

func referenceKind(image bool) InlineKind {
	if image {
		return InlineRefImage
	}
	return InlineRefLink
}

// autoLink recognizes <scheme:...> spans.
func (p *Parser) autoLink() (Inline, bool) {
	m := p.cur.mark()
	defer m.rollback()
	if !p.expectByte('<').isMatched() {
		return Inline{}, false
	}
	body := p.scan(bytePred(func(b byte) bool {
		return b != '>' && b != '<' && b != ' ' && b != '\n'
	}))
	if !body.isMatched() {
		return Inline{}, false
	}
	if !p.expectByte('>').isMatched() {
		return Inline{}, false
	}
	url := body.unwrap()
	if bytes.IndexByte(url, ':') <= 0 {
		return Inline{}, false
	}
	m.commit()
	return Inline{
		Kind:     InlineLink,
		URL:      string(url),
		Children: []Inline{{Kind: InlineText, Text: url}},
	}, true
}

// linkTitle recognizes a quoted or parenthesized title. An empty title is
// allowed.
func (p *Parser) linkTitle() (string, bool) {
	m := p.cur.mark()
	defer m.rollback()
	open, ok := p.cur.currentByte()
	if !ok {
		return "", false
	}
	var closer byte
	switch open {
	case '"':
		closer = '"'
	case '\'':
		closer = '\''
	case '(':
		closer = ')'
	default:
		return "", false
	}
	p.cur.next()
	var text []byte
	body := p.scan(bytePred(func(b byte) bool {
		return b != closer && b != '\n'
	}))
	if body.isExhausted() {
		return "", false
	}
	if body.isMatched() {
		text = body.unwrap()
	}
	if !p.expectByte(closer).isMatched() {
		return "", false
	}
	m.commit()
	return string(text), true
}
