package mdp

// cursor is a mutable position over a borrowed, immutable byte buffer. The
// buffer is never copied or modified; all extraction happens through slices.
type cursor struct {
	buf []byte
	pos int
}

func newCursor(buf []byte) cursor {
	return cursor{buf: buf}
}

func (c *cursor) available() bool { return c.pos < len(c.buf) }

// advance does not bounds-check against the buffer end; callers must guard
// with available.
func (c *cursor) advance(n int) { c.pos += n }

// retract saturates at position zero.
func (c *cursor) retract(n int) {
	if n > c.pos {
		c.pos = 0
		return
	}
	c.pos -= n
}

// next moves one byte forward, reporting whether it could.
func (c *cursor) next() bool {
	if !c.available() {
		return false
	}
	c.pos++
	return true
}

func (c *cursor) prev() { c.retract(1) }

// peek returns the byte at the current position without bounds checking.
func (c *cursor) peek() byte { return c.buf[c.pos] }

func (c *cursor) currentByte() (byte, bool) {
	if !c.available() {
		return 0, false
	}
	return c.peek(), true
}

// peekPrev returns the most recently consumed byte. Panics at position zero.
func (c *cursor) peekPrev() byte { return c.buf[c.pos-1] }

// peekBeforePrev returns the byte before the most recently consumed one.
// Panics when fewer than two bytes have been consumed.
func (c *cursor) peekBeforePrev() byte { return c.buf[c.pos-2] }

func (c *cursor) peekBeforePrevOK() (byte, bool) {
	if c.pos < 2 {
		return 0, false
	}
	return c.buf[c.pos-2], true
}

// nextByte reads the current byte and advances past it.
func (c *cursor) nextByte() (byte, bool) {
	if !c.available() {
		return 0, false
	}
	b := c.peek()
	c.pos++
	return b, true
}

// prevByte steps back one byte and returns the byte now under the cursor.
func (c *cursor) prevByte() byte {
	c.retract(1)
	return c.buf[c.pos]
}

// tail returns the unconsumed remainder of the buffer.
func (c *cursor) tail() []byte { return c.buf[c.pos:] }

// phantomMark records the current position for later slicing. It carries no
// rollback behavior.
func (c *cursor) phantomMark() phantomMark { return phantomMark{pos: c.pos} }

// phantomMarkAtPrev records the position of the most recently consumed byte.
func (c *cursor) phantomMarkAtPrev() phantomMark { return phantomMark{pos: c.pos - 1} }

func (c *cursor) valid(pm phantomMark) bool { return pm.pos <= len(c.buf) }

// mark creates a revocable checkpoint. The caller must resolve it with
// commit or rollback, and nested marks must resolve in reverse order of
// creation; `defer m.rollback()` right after creation keeps both properties.
func (c *cursor) mark() mark {
	return mark{cur: c, pos: c.pos}
}

func (c *cursor) slice(left, right phantomMark) []byte {
	return c.buf[left.pos:right.pos]
}

// sliceToNowFrom extracts everything consumed since pm.
func (c *cursor) sliceToNowFrom(pm phantomMark) []byte {
	return c.buf[pm.pos:c.pos]
}

// sliceUntilNowFrom extracts everything consumed since pm except the most
// recently consumed byte, for productions whose terminating delimiter must
// not be part of the captured content.
func (c *cursor) sliceUntilNowFrom(pm phantomMark) []byte {
	return c.buf[pm.pos : c.pos-1]
}

// phantomMark is a position-only marker used to delimit spans for slicing.
type phantomMark struct {
	pos int
}

// mark is a revocable checkpoint over a cursor. Until committed, rollback
// restores the cursor to the position captured at creation. Commitment is
// one-way: a later rollback is a no-op.
type mark struct {
	cur  *cursor
	pos  int
	done bool
}

func (m *mark) commit() { m.done = true }

func (m *mark) rollback() {
	if m.done {
		return
	}
	m.done = true
	m.cur.pos = m.pos
}
