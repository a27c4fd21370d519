package mdp

// skipFrontmatter consumes a leading frontmatter fence pair ("---" for YAML,
// "+++" for TOML) before block parsing starts. An opening fence that never
// closes is left in place and parses as ordinary markup.
func (p *Parser) skipFrontmatter() {
	m := p.cur.mark()
	defer m.rollback()
	var delim byte
	switch {
	case p.lookahead(3, '-'):
		delim = '-'
	case p.lookahead(3, '+'):
		delim = '+'
	default:
		return
	}
	p.cur.advance(3)
	if !p.emptyLine().isMatched() {
		return
	}
	for p.cur.available() {
		if p.closingFrontmatterFence(delim) {
			m.commit()
			return
		}
		if !p.readLine().isMatched() {
			return
		}
	}
}

func (p *Parser) closingFrontmatterFence(delim byte) bool {
	m := p.cur.mark()
	defer m.rollback()
	if !p.lookahead(3, delim) {
		return false
	}
	p.cur.advance(3)
	if r := p.emptyLine(); !r.isMatched() && !r.isExhausted() {
		return false
	}
	m.commit()
	return true
}
