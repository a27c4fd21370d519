package mdp

import (
	"bytes"
	"errors"
	"testing"
)

func TestValidateInputAcceptsMarkdown(t *testing.T) {
	if err := ValidateInput([]byte("# Title\n\nBody text with *emphasis*.\n")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateInput(nil); err != nil {
		t.Fatalf("empty input must validate: %v", err)
	}
	if err := ValidateInput([]byte("tabs\tand\r\nCRLF are fine\n")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateInputRejectsInvalidUTF8(t *testing.T) {
	err := ValidateInput([]byte{0xff, 0xfe, 0x00})
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("err = %v, want ErrInvalidUTF8", err)
	}
}

func TestValidateInputRejectsNUL(t *testing.T) {
	err := ValidateInput([]byte("text\x00more"))
	if !errors.Is(err, ErrBinaryInput) {
		t.Fatalf("err = %v, want ErrBinaryInput", err)
	}
}

func TestValidateInputRejectsControlHeavy(t *testing.T) {
	src := append(bytes.Repeat([]byte("a"), 62), 0x01, 0x02)
	err := ValidateInput(src)
	if !errors.Is(err, ErrBinaryInput) {
		t.Fatalf("err = %v, want ErrBinaryInput", err)
	}
}

func TestValidateInputToleratesSparseControls(t *testing.T) {
	src := append(bytes.Repeat([]byte("a"), 200), 0x01)
	if err := ValidateInput(src); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
