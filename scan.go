package mdp

// scan consumes a maximal run of bytes accepted by m and captures it as a
// slice of the underlying buffer. Zero matching bytes is a non-match, never
// an empty capture; no input at entry is exhaustion.
func (p *Parser) scan(m byteMatcher) result[[]byte] {
	if !p.cur.available() {
		return exhausted[[]byte]()
	}
	pm := p.cur.phantomMark()
	for p.cur.available() {
		if !m.matches(p.cur.peek()) {
			break
		}
		p.cur.next()
	}
	s := p.cur.sliceToNowFrom(pm)
	if len(s) == 0 {
		return noMatch[[]byte]()
	}
	return matched(s)
}

// skip performs the same consumption as scan but captures nothing. A run of
// zero bytes still succeeds.
func (p *Parser) skip(m byteMatcher) result[empty] {
	if !p.cur.available() {
		return exhausted[empty]()
	}
	for p.cur.available() {
		if !m.matches(p.cur.peek()) {
			break
		}
		p.cur.next()
	}
	return success()
}

func (p *Parser) skipSpaces() result[empty] {
	return p.skip(byteIs(' '))
}

func (p *Parser) skipSpacesAndNewlines() result[empty] {
	return p.skip(byteSet{' ', '\n'})
}

// readLine consumes through and including the next newline, or to the end of
// the view when none remains.
func (p *Parser) readLine() result[empty] {
	if !p.cur.available() {
		return exhausted[empty]()
	}
	for p.cur.available() {
		c := p.cur.peek()
		p.cur.next()
		if c == '\n' {
			break
		}
	}
	return success()
}

// readLineTo is readLine with the consumed bytes appended to dst.
func (p *Parser) readLineTo(dst []byte) ([]byte, result[empty]) {
	if !p.cur.available() {
		return dst, exhausted[empty]()
	}
	for p.cur.available() {
		c := p.cur.peek()
		p.cur.next()
		dst = append(dst, c)
		if c == '\n' {
			break
		}
	}
	return dst, success()
}

// emptyLine succeeds only when the remainder of the current line is spaces
// followed by a newline, consuming through the newline. Any other byte is a
// non-match with a full rollback to entry.
func (p *Parser) emptyLine() result[empty] {
	m := p.cur.mark()
	defer m.rollback()
	for {
		c, ok := p.cur.nextByte()
		if !ok {
			return exhausted[empty]()
		}
		switch c {
		case ' ':
		case '\n':
			m.commit()
			return success()
		default:
			return noMatch[empty]()
		}
	}
}

// skipInitialSpaces consumes up to three leading spaces. Four or more is a
// non-match with rollback: that much indent belongs to the indented code
// rule.
func (p *Parser) skipInitialSpaces() result[empty] {
	m := p.cur.mark()
	defer m.rollback()
	n := 0
	for p.cur.available() {
		if n >= 4 {
			return noMatch[empty]()
		}
		if p.cur.peek() != ' ' {
			m.commit()
			return success()
		}
		n++
		p.cur.next()
	}
	return exhausted[empty]()
}

// expectByte consumes one byte if it equals b. A mismatch rolls the single
// byte back.
func (p *Parser) expectByte(b byte) result[empty] {
	c, ok := p.cur.nextByte()
	switch {
	case !ok:
		return exhausted[empty]()
	case c == b:
		return success()
	default:
		p.cur.prev()
		return noMatch[empty]()
	}
}

// lookahead reports whether the next n bytes all equal b. The probe mark is
// rolled back regardless of outcome, so the cursor never moves.
func (p *Parser) lookahead(n int, b byte) bool {
	m := p.cur.mark()
	defer m.rollback()
	for n > 0 && p.cur.available() {
		if p.cur.peek() != b {
			break
		}
		p.cur.next()
		n--
	}
	return n == 0
}
