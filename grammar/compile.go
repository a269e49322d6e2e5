// Package grammar compiles an EBNF grammar (as parsed by
// golang.org/x/exp/ebnf) into a github.com/dhamidi/parsica/parsica
// Parser graph, using recursive parsers for productions that refer to other
// productions — including themselves, directly or mutually.
//
// It is grounded on ebnflex.Lexer.tryMatch (the teacher's own
// EBNF-driven lexer), which walks the identical ebnf.Expression tree
// with a hand-rolled memo map and a visiting set for cycle detection.
// Compile replaces that bookkeeping with one parsica.Recursive per
// named production.
package grammar

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/ebnf"

	"github.com/dhamidi/parsica/parsica"
)

// Load reads and parses an EBNF grammar file, exactly as
// ebnflex.LoadGrammar does, returning a wrapped error on failure rather
// than panicking: a malformed grammar file is caught before any Parser
// is built, so it is reported as a plain error, not a ProgrammerError.
func Load(r io.Reader, filename string) (ebnf.Grammar, error) {
	g, err := ebnf.Parse(filename, r)
	if err != nil {
		return nil, fmt.Errorf("parse grammar %s: %w", filename, err)
	}
	return g, nil
}

// Compile builds a parsica.Parser[parsica.Text] rooted at the
// production named start. Every named production becomes one
// parsica.Recursive parser, so productions that refer to each other
// (including a production that refers to itself) compile without any
// special-case cycle detection: that is exactly what component G
// (recursive parsers) is for.
func Compile(g ebnf.Grammar, start string) (parsica.Parser[parsica.Text], error) {
	if err := ebnf.Verify(g, start); err != nil {
		return parsica.Parser[parsica.Text]{}, fmt.Errorf("verify grammar: %w", err)
	}

	c := &compiler{
		grammar: g,
		parsers: make(map[string]*parsica.RecursiveParser[parsica.Text]),
	}
	return c.named(start), nil
}

type compiler struct {
	grammar ebnf.Grammar
	parsers map[string]*parsica.RecursiveParser[parsica.Text]
}

// named returns the Parser for production name, compiling its body on
// first reference and reusing the same recursive parser's Parser view
// on every subsequent reference — including a reference from within
// its own body, direct or by way of another production: that placeholder
// view is exactly what lets a production refer to itself before its
// body exists, per component G.
func (c *compiler) named(name string) parsica.Parser[parsica.Text] {
	if rp, ok := c.parsers[name]; ok {
		return rp.Parser()
	}

	rp := parsica.Recursive[parsica.Text](parsica.Label(name))
	c.parsers[name] = rp

	prod, ok := c.grammar[name]
	if !ok || prod.Expr == nil {
		return rp.Recurse(parsica.Fail[parsica.Text](parsica.Label(name)).Run)
	}

	body := c.expr(prod.Expr)
	return rp.Recurse(body.Run)
}

// expr compiles one ebnf.Expression node into a Parser[Text], mirroring
// ebnflex.Lexer.tryMatch's switch over the same node kinds.
func (c *compiler) expr(e ebnf.Expression) parsica.Parser[parsica.Text] {
	switch node := e.(type) {
	case *ebnf.Token:
		lit := strings.Trim(node.String, "\"")
		return literal(lit)

	case *ebnf.Range:
		begin := []rune(strings.Trim(node.Begin.String, "\""))
		end := []rune(strings.Trim(node.End.String, "\""))
		if len(begin) != 1 || len(end) != 1 {
			return parsica.Fail[parsica.Text]("invalid character range")
		}
		lo, hi := begin[0], end[0]
		return parsica.Map(
			parsica.Satisfy(func(r rune) bool { return r >= lo && r <= hi }, parsica.Label(fmt.Sprintf("%c…%c", lo, hi))),
			func(r rune) parsica.Text { return parsica.Text(string(r)) },
		)

	case ebnf.Sequence:
		if len(node) == 0 {
			return parsica.Pure[parsica.Text]("")
		}
		parts := make([]parsica.Parser[parsica.Text], len(node))
		for i, item := range node {
			parts[i] = c.expr(item)
		}
		return parsica.Assemble(parts[0], parts[1:]...)

	case ebnf.Alternative:
		if len(node) == 0 {
			return parsica.Fail[parsica.Text]("empty alternative")
		}
		parts := make([]parsica.Parser[parsica.Text], len(node))
		for i, alt := range node {
			parts[i] = c.expr(alt)
		}
		return parsica.Any(parts...)

	case *ebnf.Repetition:
		body := c.expr(node.Body)
		return parsica.Map(parsica.Many(body), joinText)

	case *ebnf.Option:
		body := c.expr(node.Body)
		return parsica.Optional(body)

	case *ebnf.Group:
		return c.expr(node.Body)

	case *ebnf.Name:
		return c.named(node.String)

	default:
		return parsica.Fail[parsica.Text]("unsupported EBNF expression")
	}
}

// literal compiles a quoted token into a parser that matches it code
// point by code point, reusing the library's own String primitive.
func literal(lit string) parsica.Parser[parsica.Text] {
	return parsica.String(lit)
}

// joinText flattens a Seq of Text values produced by Many into one
// concatenated Text, via the Text monoid.
func joinText(parts parsica.Seq[parsica.Text]) parsica.Text {
	var out parsica.Text
	for _, part := range parts {
		out = out.Append(part)
	}
	return out
}
