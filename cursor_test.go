package mdp

import (
	"bytes"
	"testing"
)

func TestCursorAdvanceRetract(t *testing.T) {
	c := newCursor([]byte("abcdef"))
	if !c.available() {
		t.Fatal("expected input available")
	}
	c.advance(4)
	if c.pos != 4 {
		t.Fatalf("pos = %d, want 4", c.pos)
	}
	c.retract(2)
	if c.pos != 2 {
		t.Fatalf("pos = %d, want 2", c.pos)
	}
	c.retract(10)
	if c.pos != 0 {
		t.Fatalf("retract must saturate at zero, pos = %d", c.pos)
	}
}

func TestCursorNextByte(t *testing.T) {
	c := newCursor([]byte("ab"))
	b, ok := c.nextByte()
	if !ok || b != 'a' {
		t.Fatalf("nextByte = %q, %v", b, ok)
	}
	b, ok = c.nextByte()
	if !ok || b != 'b' {
		t.Fatalf("nextByte = %q, %v", b, ok)
	}
	if _, ok := c.nextByte(); ok {
		t.Fatal("nextByte past the end must report false")
	}
	if c.next() {
		t.Fatal("next past the end must report false")
	}
}

func TestCursorPeeks(t *testing.T) {
	c := newCursor([]byte("xyz"))
	if b, ok := c.currentByte(); !ok || b != 'x' {
		t.Fatalf("currentByte = %q, %v", b, ok)
	}
	c.advance(2)
	if got := c.peekPrev(); got != 'y' {
		t.Fatalf("peekPrev = %q, want 'y'", got)
	}
	if got := c.peekBeforePrev(); got != 'x' {
		t.Fatalf("peekBeforePrev = %q, want 'x'", got)
	}
	if b, ok := c.peekBeforePrevOK(); !ok || b != 'x' {
		t.Fatalf("peekBeforePrevOK = %q, %v", b, ok)
	}
	c.retract(1)
	if _, ok := c.peekBeforePrevOK(); ok {
		t.Fatal("peekBeforePrevOK with one consumed byte must report false")
	}
	if got := c.prevByte(); got != 'x' {
		t.Fatalf("prevByte = %q, want 'x'", got)
	}
	if !bytes.Equal(c.tail(), []byte("xyz")) {
		t.Fatalf("tail = %q", c.tail())
	}
}

func TestMarkRollback(t *testing.T) {
	c := newCursor([]byte("abcdef"))
	c.advance(2)
	m := c.mark()
	c.advance(3)
	m.rollback()
	if c.pos != 2 {
		t.Fatalf("pos after rollback = %d, want 2", c.pos)
	}
}

func TestMarkCommitDisablesRollback(t *testing.T) {
	c := newCursor([]byte("abcdef"))
	m := c.mark()
	c.advance(4)
	m.commit()
	m.rollback()
	if c.pos != 4 {
		t.Fatalf("rollback after commit must be a no-op, pos = %d", c.pos)
	}
}

func TestMarkNesting(t *testing.T) {
	c := newCursor([]byte("abcdef"))
	outer := c.mark()
	c.advance(2)
	inner := c.mark()
	c.advance(2)
	inner.rollback()
	if c.pos != 2 {
		t.Fatalf("pos after inner rollback = %d, want 2", c.pos)
	}
	outer.rollback()
	if c.pos != 0 {
		t.Fatalf("pos after outer rollback = %d, want 0", c.pos)
	}
}

func TestMarkInnerCommitOuterRollback(t *testing.T) {
	c := newCursor([]byte("abcdef"))
	outer := c.mark()
	c.advance(2)
	inner := c.mark()
	c.advance(2)
	inner.commit()
	outer.rollback()
	if c.pos != 0 {
		t.Fatalf("outer rollback must undo committed inner progress, pos = %d", c.pos)
	}
}

func TestPhantomMarkSlices(t *testing.T) {
	c := newCursor([]byte("hello"))
	start := c.phantomMark()
	c.advance(4)
	if got := c.sliceToNowFrom(start); !bytes.Equal(got, []byte("hell")) {
		t.Fatalf("sliceToNowFrom = %q", got)
	}
	if got := c.sliceUntilNowFrom(start); !bytes.Equal(got, []byte("hel")) {
		t.Fatalf("sliceUntilNowFrom = %q", got)
	}
	end := c.phantomMark()
	if got := c.slice(start, end); !bytes.Equal(got, []byte("hell")) {
		t.Fatalf("slice = %q", got)
	}
	if !c.valid(start) || !c.valid(end) {
		t.Fatal("phantom marks within the buffer must be valid")
	}
	if c.valid(phantomMark{pos: 6}) {
		t.Fatal("phantom mark past the buffer end must be invalid")
	}
}

func TestPhantomMarkAtPrev(t *testing.T) {
	c := newCursor([]byte("ab"))
	c.nextByte()
	c.nextByte()
	pm := c.phantomMarkAtPrev()
	if pm.pos != 1 {
		t.Fatalf("phantomMarkAtPrev pos = %d, want 1", pm.pos)
	}
}
