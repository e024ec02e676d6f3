// Package decl provides text scanning utilities for the C declarator
// fragments found in registry member, parameter, and prototype elements.
package decl

import (
	"errors"
)

// Errors returned by Reader
var (
	ErrUnexpectedEOF  = errors.New("decl: unexpected end of text")
	ErrUnexpectedChar = errors.New("decl: unexpected character")
)

// Reader is a cursor over declarator text.
type Reader struct {
	data   string
	offset int
}

// NewReader creates a Reader over s.
func NewReader(s string) *Reader {
	return &Reader{data: s, offset: 0}
}

// Offset returns the current read position.
func (r *Reader) Offset() int {
	return r.offset
}

// Remaining returns the number of bytes remaining.
func (r *Reader) Remaining() int {
	if r.offset >= len(r.data) {
		return 0
	}
	return len(r.data) - r.offset
}

// Skip advances the read position by n bytes.
func (r *Reader) Skip(n int) error {
	if r.offset+n > len(r.data) {
		return ErrUnexpectedEOF
	}
	r.offset += n
	return nil
}

// SkipSpace advances past any ASCII whitespace.
func (r *Reader) SkipSpace() {
	for r.offset < len(r.data) && isSpace(r.data[r.offset]) {
		r.offset++
	}
}

// Accept consumes c if it is the next non-space byte.
func (r *Reader) Accept(c byte) bool {
	r.SkipSpace()
	if r.offset < len(r.data) && r.data[r.offset] == c {
		r.offset++
		return true
	}
	return false
}

// AcceptWord consumes the identifier w if it is the next token.
func (r *Reader) AcceptWord(w string) bool {
	start := r.offset
	id, err := r.ReadIdent()
	if err == nil && id == w {
		return true
	}
	r.offset = start
	return false
}

// ReadIdent reads a C identifier after skipping leading whitespace.
func (r *Reader) ReadIdent() (string, error) {
	r.SkipSpace()
	start := r.offset
	for r.offset < len(r.data) && isIdent(r.data[r.offset], r.offset == start) {
		r.offset++
	}
	if r.offset == start {
		if r.offset >= len(r.data) {
			return "", ErrUnexpectedEOF
		}
		return "", ErrUnexpectedChar
	}
	return r.data[start:r.offset], nil
}

// ReadUntil reads up to, but not including, the next occurrence of c.
func (r *Reader) ReadUntil(c byte) (string, error) {
	start := r.offset
	for r.offset < len(r.data) {
		if r.data[r.offset] == c {
			return r.data[start:r.offset], nil
		}
		r.offset++
	}
	r.offset = start
	return "", ErrUnexpectedEOF
}

// RemainingText returns the unread text.
func (r *Reader) RemainingText() string {
	if r.offset >= len(r.data) {
		return ""
	}
	return r.data[r.offset:]
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isIdent(c byte, first bool) bool {
	switch {
	case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return !first
	}
	return false
}
