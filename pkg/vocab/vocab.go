// Package vocab builds the class vocabulary of a dataset: the mapping from
// normalized label strings to dense integer class indices.
package vocab

import (
	"sort"
	"strings"
)

// Normalize is the canonical label form used everywhere: lowercased, with
// surrounding whitespace trimmed. "Dog", " dog " and "DOG" are all the same
// class.
func Normalize(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

// Builder accumulates the set of distinct labels seen across all partitions.
// It is write-only; call Freeze once scanning is complete to get the
// immutable index mapping.
type Builder struct {
	labels map[string]bool
}

func NewBuilder() *Builder {
	return &Builder{
		labels: map[string]bool{},
	}
}

// Add records one label. Labels that are empty after normalization are
// ignored.
func (b *Builder) Add(label string) {
	label = Normalize(label)
	if label != "" {
		b.labels[label] = true
	}
}

// Len returns the number of distinct labels accumulated so far.
func (b *Builder) Len() int {
	return len(b.labels)
}

// Freeze assigns indices and returns the finished vocabulary.
// Indices are the lexicographic rank of each label, so the result is
// independent of the order in which labels were added (and therefore of
// filesystem traversal order).
func (b *Builder) Freeze() *Vocabulary {
	classes := make([]string, 0, len(b.labels))
	for label := range b.labels {
		classes = append(classes, label)
	}
	sort.Strings(classes)
	index := make(map[string]int, len(classes))
	for i, label := range classes {
		index[label] = i
	}
	return &Vocabulary{
		classes: classes,
		index:   index,
	}
}

// Vocabulary is a frozen bijection between normalized labels and class
// indices 0..N-1. It is never modified after Freeze.
type Vocabulary struct {
	classes []string
	index   map[string]int
}

// Index returns the class index for a label (normalizing it first), and
// whether the label is part of the vocabulary.
func (v *Vocabulary) Index(label string) (int, bool) {
	idx, ok := v.index[Normalize(label)]
	return idx, ok
}

// Classes returns the labels in index order. Callers must not modify the
// returned slice.
func (v *Vocabulary) Classes() []string {
	return v.classes
}

func (v *Vocabulary) Len() int {
	return len(v.classes)
}
