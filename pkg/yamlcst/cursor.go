// Copyright 2024 The Pretty YAML Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlcst

import (
	"strings"
	"unicode/utf8"

	"prettyyaml.dev/prettyyaml/pkg/filepos"
)

// cursor provides byte access over the source with offset bookkeeping.
// Line and column values for error reporting are derived lazily through
// filepos; the cursor itself only tracks the raw offset.
type cursor struct {
	src string
	pos int
}

func newCursor(src string) *cursor {
	return &cursor{src: src}
}

func (c *cursor) eof() bool { return c.pos >= len(c.src) }

func (c *cursor) offset() filepos.Pos { return filepos.Pos(c.pos) }

// peek returns the byte n positions ahead, or 0 past the end.
func (c *cursor) peek(n int) byte {
	if c.pos+n >= len(c.src) {
		return 0
	}
	return c.src[c.pos+n]
}

func (c *cursor) cur() byte { return c.peek(0) }

func (c *cursor) rest() string { return c.src[c.pos:] }

func (c *cursor) at(prefix string) bool {
	return strings.HasPrefix(c.src[c.pos:], prefix)
}

func (c *cursor) advance(n int) string {
	end := c.pos + n
	if end > len(c.src) {
		end = len(c.src)
	}
	text := c.src[c.pos:end]
	c.pos = end
	return text
}

// bumpRune consumes one UTF-8 code point.
func (c *cursor) bumpRune() string {
	if c.eof() {
		return ""
	}
	_, size := utf8.DecodeRuneInString(c.src[c.pos:])
	return c.advance(size)
}

// matchLineBreak consumes a single line break ("\r\n", "\n" or "\r").
func (c *cursor) matchLineBreak() (string, bool) {
	switch {
	case c.at("\r\n"):
		return c.advance(2), true
	case c.cur() == '\n' || c.cur() == '\r':
		return c.advance(1), true
	}
	return "", false
}

// isAtIndicator reports whether the current byte is a YAML indicator.
func (c *cursor) isAtIndicator() bool {
	return !c.eof() && isIndicator(c.cur())
}

// takeWhile consumes the longest run of bytes satisfying pred.
func (c *cursor) takeWhile(pred func(byte) bool) string {
	start := c.pos
	for c.pos < len(c.src) && pred(c.src[c.pos]) {
		c.pos++
	}
	return c.src[start:c.pos]
}

// takeTillLineEnding consumes everything up to (not including) the next
// line break or the end of input.
func (c *cursor) takeTillLineEnding() string {
	start := c.pos
	for c.pos < len(c.src) && !isLineBreak(c.src[c.pos]) {
		c.pos++
	}
	return c.src[start:c.pos]
}

// column returns the code-point column (0 based) of the current offset
// within its line.
func (c *cursor) column() int {
	lineStart := strings.LastIndexAny(c.src[:c.pos], "\n\r") + 1
	return utf8.RuneCountInString(c.src[lineStart:c.pos])
}
