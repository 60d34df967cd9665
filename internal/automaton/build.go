package automaton

import (
	"strconv"

	"github.com/coregx/fuzzyac/internal/grapheme"
	"github.com/coregx/fuzzyac/internal/pattern"
)

// Build constructs an Automaton from an ordered pattern list (spec.md
// §4.1). caseInsensitive selects whether graphemes are matched on their
// folded form. Patterns must each have at least one grapheme; the public
// Builder validates this before Build is ever called, but Build still
// rejects it defensively rather than producing an automaton with
// undefined similarity semantics.
func Build(patterns []pattern.Pattern, caseInsensitive bool) (*Automaton, error) {
	for i, p := range patterns {
		if p.GraphemeLen() == 0 {
			return nil, &Error{Index: i, Message: "pattern has zero graphemes"}
		}
	}

	a := &Automaton{Nodes: make([]Node, 0, estimateNodes(patterns))}
	a.Nodes = append(a.Nodes, newNode())

	buildTrie(a, patterns, caseInsensitive)
	buildFailureLinks(a)
	propagateWeights(a)

	return a, nil
}

func estimateNodes(patterns []pattern.Pattern) int {
	total := 1
	for _, p := range patterns {
		total += p.GraphemeLen()
	}
	return total
}

func matchKey(g grapheme.Grapheme, caseInsensitive bool) string {
	if caseInsensitive {
		return g.Folded
	}
	return g.Text
}

// buildTrie is spec.md §4.1 Phase A.
func buildTrie(a *Automaton, patterns []pattern.Pattern, caseInsensitive bool) {
	for i, p := range patterns {
		n := Root
		total := p.GraphemeLen()
		for k, g := range p.Graphemes {
			key := matchKey(g, caseInsensitive)
			child, ok := a.Nodes[n].Transitions[key]
			if !ok {
				child = a.newNode()
				a.Nodes[n].Transitions[key] = child
			}
			n = child

			if a.Nodes[n].FirstPattern == noFirstPattern || i < a.Nodes[n].FirstPattern {
				a.Nodes[n].FirstPattern = i
			}

			prefixLen := k + 1
			w := p.Weight * float64(prefixLen) / float64(total)
			if w > a.Nodes[n].Weight {
				a.Nodes[n].Weight = w
			}
		}
		a.Nodes[n].Output = appendUniqueInt(a.Nodes[n].Output, i)
	}
}

// buildFailureLinks is spec.md §4.1 Phase B: a BFS from the root's
// children, computing each node's failure link from its parent's.
func buildFailureLinks(a *Automaton) {
	queue := make([]NodeID, 0, len(a.Nodes))
	for _, child := range a.Nodes[Root].Transitions {
		a.Nodes[child].Fail = Root
		queue = append(queue, child)
	}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		for g, n := range a.Nodes[p].Transitions {
			queue = append(queue, n)

			f := a.Nodes[p].Fail
			for f != Root {
				if _, ok := a.Nodes[f].Transitions[g]; ok {
					break
				}
				f = a.Nodes[f].Fail
			}

			if child, ok := a.Nodes[f].Transitions[g]; ok && child != n {
				a.Nodes[n].Fail = child
			} else {
				a.Nodes[n].Fail = Root
			}

			failNode := a.Nodes[n].Fail
			a.Nodes[n].Output = mergeUniqueInts(a.Nodes[n].Output, a.Nodes[failNode].Output)
			if a.Nodes[failNode].Weight > a.Nodes[n].Weight {
				a.Nodes[n].Weight = a.Nodes[failNode].Weight
			}
		}
	}
}

// propagateWeights is spec.md §4.1 Phase C: processing nodes in
// decreasing index order guarantees weight(n) has already absorbed
// weight(fail(n)) for every n whose fail link points at a
// lower-numbered node, making the max monotone along every fail chain.
func propagateWeights(a *Automaton) {
	for n := len(a.Nodes) - 1; n >= 0; n-- {
		fail := a.Nodes[n].Fail
		if a.Nodes[fail].Weight > a.Nodes[n].Weight {
			a.Nodes[n].Weight = a.Nodes[fail].Weight
		}
	}
}

// Error reports a malformed pattern encountered while building the
// automaton.
type Error struct {
	Index   int
	Message string
}

func (e *Error) Error() string {
	return "fuzzyac/internal/automaton: pattern " + strconv.Itoa(e.Index) + ": " + e.Message
}
