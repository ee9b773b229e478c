// Copyright 2024 The Pretty YAML Authors.
// SPDX-License-Identifier: Apache-2.0

package prettyprint

import (
	"strings"
	"unicode/utf8"
)

// IndentKind selects the characters used for indentation.
type IndentKind int

const (
	IndentSpaces IndentKind = iota
	IndentTabs
)

// PrintOptions controls rendering of a layout tree.
type PrintOptions struct {
	// Width is the target maximum line width in code points.
	Width int
	// IndentKind selects spaces or tabs for indentation.
	IndentKind IndentKind
	// TabSize is the number of columns one indent level occupies; with
	// IndentTabs each TabSize columns become one tab character.
	TabSize int
	// LineBreak is the emitted line terminator ("\n" or "\r\n").
	LineBreak string
	// TrimTrailingWhitespace removes trailing spaces and tabs from every
	// emitted line.
	TrimTrailingWhitespace bool
}

// Print renders the layout tree into a string.
func Print(d *Doc, opts PrintOptions) string {
	if opts.LineBreak == "" {
		opts.LineBreak = "\n"
	}
	if opts.TabSize <= 0 {
		opts.TabSize = 2
	}
	pr := &printer{opts: opts}
	pr.render(d, 0, false)
	pr.flushLine(false)
	return pr.out.String()
}

type printer struct {
	opts PrintOptions
	out  strings.Builder
	line strings.Builder
	col  int
}

func (p *printer) render(d *Doc, indent int, flat bool) {
	switch d.kind {
	case kindText:
		p.writeText(d.text)
	case kindConcat:
		for _, c := range d.children {
			p.render(c, indent, flat)
		}
	case kindNest:
		p.render(d.children[0], indent+d.indent, flat)
	case kindGroup:
		child := d.children[0]
		if flat {
			p.render(child, indent, true)
			return
		}
		w, forced := child.measure()
		if !forced && p.col+w <= p.opts.Width {
			p.render(child, indent, true)
		} else {
			p.render(child, indent, false)
		}
	case kindHardLine:
		p.newLine(indent)
	case kindEmptyLine:
		p.newLine(0)
	case kindLineOrSpace:
		if flat {
			p.writeText(" ")
		} else {
			p.newLine(indent)
		}
	case kindLineOrNil:
		if !flat {
			p.newLine(indent)
		}
	case kindIfBreak:
		if flat {
			p.render(d.flat, indent, true)
		} else {
			p.render(d.broken, indent, false)
		}
	case kindFill:
		for i, c := range d.children {
			if i > 0 {
				w, _ := c.measure()
				if p.col+1+w <= p.opts.Width {
					p.writeText(" ")
				} else {
					p.newLine(indent)
				}
			}
			p.render(c, indent, flat)
		}
	}
}

func (p *printer) writeText(s string) {
	p.line.WriteString(s)
	p.col += utf8.RuneCountInString(s)
}

func (p *printer) newLine(indent int) {
	p.flushLine(true)
	if indent > 0 {
		p.writeText(p.indentString(indent))
		p.col = indent
	}
}

func (p *printer) indentString(indent int) string {
	if p.opts.IndentKind == IndentTabs {
		tabs := indent / p.opts.TabSize
		spaces := indent % p.opts.TabSize
		return strings.Repeat("\t", tabs) + strings.Repeat(" ", spaces)
	}
	return strings.Repeat(" ", indent)
}

func (p *printer) flushLine(withBreak bool) {
	line := p.line.String()
	if p.opts.TrimTrailingWhitespace {
		line = strings.TrimRight(line, " \t")
	}
	p.out.WriteString(line)
	if withBreak {
		p.out.WriteString(p.opts.LineBreak)
	}
	p.line.Reset()
	p.col = 0
}
