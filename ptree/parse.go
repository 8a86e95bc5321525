package ptree

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/katalvlaran/treealign/trace"
)

// Parse reads a process tree from its textual notation and finalizes it.
//
// Grammar (whitespace is free between tokens):
//
//	tree     := node
//	node     := "'" name "'"              (activity leaf)
//	          | "tau"                     (silent leaf)
//	          | op "(" node {"," node} ")"
//	op       := "->" | "+" | "X" | "*"
//
// Activity names are interned through alpha, so parsing several trees with a
// shared Alphabet yields a shared id space (required to align one log against
// many trees).
//
// Errors wrap ErrParse (or ErrTrailingInput) and carry the byte offset of the
// offending token; structural violations surface as NewTree's sentinels.
func Parse(input string, alpha *trace.Alphabet) (*Tree, error) {
	p := &parser{src: input, alpha: alpha}
	root, err := p.parseNode()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.src) {
		return nil, fmt.Errorf("%w at offset %d: %q", ErrTrailingInput, p.pos, p.rest(20))
	}

	return NewTree(root)
}

// parser is a hand-written recursive-descent scanner over the notation.
// The grammar is ten tokens; a table-driven or generated parser would be
// heavier than the language it reads.
type parser struct {
	src   string
	pos   int
	alpha *trace.Alphabet
}

// rest returns up to max bytes of unconsumed input, for error messages.
func (p *parser) rest(max int) string {
	r := p.src[p.pos:]
	if len(r) > max {
		r = r[:max]
	}

	return r
}

// skipSpace advances past any whitespace.
func (p *parser) skipSpace() {
	for p.pos < len(p.src) && unicode.IsSpace(rune(p.src[p.pos])) {
		p.pos++
	}
}

// match consumes tok if it is next, reporting whether it did.
func (p *parser) match(tok string) bool {
	p.skipSpace()
	if strings.HasPrefix(p.src[p.pos:], tok) {
		p.pos += len(tok)

		return true
	}

	return false
}

// parseQuoted consumes a single-quoted activity name.
func (p *parser) parseQuoted() (string, error) {
	p.skipSpace()
	if p.pos >= len(p.src) || p.src[p.pos] != '\'' {
		return "", fmt.Errorf("%w at offset %d: expected opening quote", ErrParse, p.pos)
	}
	p.pos++
	start := p.pos
	for p.pos < len(p.src) && p.src[p.pos] != '\'' {
		p.pos++
	}
	if p.pos >= len(p.src) {
		return "", fmt.Errorf("%w: unterminated quoted name starting at offset %d", ErrParse, start-1)
	}
	name := p.src[start:p.pos]
	p.pos++ // closing quote

	return name, nil
}

// parseNode parses one node: a leaf or an operator with its children.
func (p *parser) parseNode() (*Node, error) {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return nil, fmt.Errorf("%w at offset %d: unexpected end of input", ErrParse, p.pos)
	}

	// 1) Activity leaf
	if p.src[p.pos] == '\'' {
		name, err := p.parseQuoted()
		if err != nil {
			return nil, err
		}

		return Leaf(p.alpha.Intern(name)), nil
	}

	// 2) Silent leaf
	if p.match("tau") {
		return Silent(), nil
	}

	// 3) Operator node. "->" must be tried before "+" and "X" so that a
	// stray ">" never survives tokenization.
	var kind Kind
	switch {
	case p.match("->"):
		kind = KindSequence
	case p.match("+"):
		kind = KindParallel
	case p.match("*"):
		kind = KindRedoLoop
	case p.match("X"):
		kind = KindXor
	default:
		return nil, fmt.Errorf("%w at offset %d: unexpected token %q", ErrParse, p.pos, p.rest(10))
	}

	if !p.match("(") {
		return nil, fmt.Errorf("%w at offset %d: expected '(' after operator %v", ErrParse, p.pos, kind)
	}

	var children []*Node
	for {
		p.skipSpace()
		if p.pos < len(p.src) && p.src[p.pos] == ')' {
			break
		}
		child, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		children = append(children, child)

		p.skipSpace()
		if p.pos < len(p.src) && p.src[p.pos] == ',' {
			p.pos++

			continue
		}

		break
	}

	if !p.match(")") {
		return nil, fmt.Errorf("%w at offset %d: expected ',' or ')' in child list", ErrParse, p.pos)
	}

	n := &Node{id: -1, kind: kind, activity: trace.NoActivity, children: children}

	return n, nil
}
