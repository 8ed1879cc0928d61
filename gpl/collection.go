package gpl

// RawSequence is the numeric data of a single label occurrence.
type RawSequence []float64

// Len returns the number of values in the sequence.
func (r RawSequence) Len() int {
	return len(r)
}

// ParseStats counts what the parser saw while building a Collection.
type ParseStats struct {
	Tokens    int // Tokens read from the stream
	Labels    int // Label occurrences
	Headers   int // Header tokens skipped after a label
	Values    int // Values stored in sequences
	Discarded int // Tokens dropped (before any label, or not numeric)
}

// Collection maps each known label to its sequences in stream order.
// Every known label has an entry, possibly empty. A Collection is not
// modified after parsing.
type Collection struct {
	labels    []string
	sequences map[string][]RawSequence
	stats     ParseStats
}

func newCollection(labels []string) *Collection {
	c := &Collection{
		labels:    make([]string, 0, len(labels)),
		sequences: make(map[string][]RawSequence, len(labels)),
	}
	for _, l := range labels {
		if _, ok := c.sequences[l]; ok || l == "" {
			continue
		}
		c.labels = append(c.labels, l)
		c.sequences[l] = []RawSequence{}
	}
	return c
}

// Labels returns the known labels in configuration order.
func (c *Collection) Labels() []string {
	out := make([]string, len(c.labels))
	copy(out, c.labels)
	return out
}

// Has reports whether label is one of the known labels.
func (c *Collection) Has(label string) bool {
	_, ok := c.sequences[label]
	return ok
}

// Sequences returns the sequences recorded under label. The second result is
// false when label is not a known label.
func (c *Collection) Sequences(label string) ([]RawSequence, bool) {
	seqs, ok := c.sequences[label]
	if !ok {
		return nil, false
	}
	out := make([]RawSequence, len(seqs))
	copy(out, seqs)
	return out, true
}

// Count returns the number of sequences under label.
func (c *Collection) Count(label string) int {
	return len(c.sequences[label])
}

// MaxLen returns the length of the longest sequence under label, or 0.
func (c *Collection) MaxLen(label string) int {
	max := 0
	for _, s := range c.sequences[label] {
		if len(s) > max {
			max = len(s)
		}
	}
	return max
}

// MinLen returns the length of the shortest sequence under label, or 0.
func (c *Collection) MinLen(label string) int {
	seqs := c.sequences[label]
	if len(seqs) == 0 {
		return 0
	}
	min := len(seqs[0])
	for _, s := range seqs[1:] {
		if len(s) < min {
			min = len(s)
		}
	}
	return min
}

// Stats returns the counters gathered while parsing.
func (c *Collection) Stats() ParseStats {
	return c.stats
}
