package gpl

import (
	"strconv"
)

type parseState int

const (
	awaitingLabel  parseState = iota // no label seen yet
	skippingHeader                   // next non-label token is the header
	accumulating                     // numeric tokens belong to the current label
)

// parser is the label/header/data state machine behind Parse and ParseReader.
type parser struct {
	coll    *Collection
	state   parseState
	current string
	acc     []float64
}

func newParser(labels []string) *parser {
	return &parser{
		coll:  newCollection(labels),
		state: awaitingLabel,
	}
}

func (p *parser) feed(tok string) {
	p.coll.stats.Tokens++

	if p.coll.Has(tok) {
		p.flush()
		p.current = tok
		p.state = skippingHeader
		p.coll.stats.Labels++
		return
	}

	switch p.state {
	case awaitingLabel:
		p.coll.stats.Discarded++
	case skippingHeader:
		// The header is dropped whether or not it is numeric.
		p.coll.stats.Headers++
		p.state = accumulating
	case accumulating:
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			p.coll.stats.Discarded++
			return
		}
		p.acc = append(p.acc, v)
	}
}

// flush stores the accumulated values under the current label.
// Occurrences without data leave no sequence behind.
func (p *parser) flush() {
	if p.current == "" || len(p.acc) == 0 {
		p.acc = p.acc[:0]
		return
	}
	seq := make(RawSequence, len(p.acc))
	copy(seq, p.acc)
	p.coll.sequences[p.current] = append(p.coll.sequences[p.current], seq)
	p.coll.stats.Values += len(seq)
	p.acc = p.acc[:0]
}

func (p *parser) finish() *Collection {
	p.flush()
	return p.coll
}

// Parse splits tokens into per-label sequences.
//
// A token equal to one of labels starts a new occurrence of that label; the
// token after it is a header and is discarded; numeric tokens that follow are
// collected until the next label or the end of tokens. Non-numeric tokens and
// tokens before the first label are dropped. Every label appears in the
// result, with an empty list if it never occurred.
func Parse(tokens []string, labels []string) *Collection {
	p := newParser(labels)
	for _, tok := range tokens {
		p.feed(tok)
	}
	return p.finish()
}
