// Package automaton implements the augmented Aho-Corasick automaton of
// spec.md §4.1: a rooted trie over pattern graphemes, overlaid with
// Aho-Corasick failure links, merged output lists, and cached
// prefix-weights used by the search kernel's threshold pruning.
//
// Grounded on coregx-coregex's nfa/builder.go arena-of-states Builder and
// nfa/nfa.go's StateID/State representation, generalized here from
// byte-range FSM states to grapheme-labeled trie nodes.
package automaton

import "github.com/coregx/fuzzyac/internal/conv"

// NodeID indexes into Automaton.Nodes. Node 0 is always the root.
type NodeID int32

// Root is the automaton's root node.
const Root NodeID = 0

// noFirstPattern marks a node no trie insertion has visited yet.
const noFirstPattern = -1

// Node is one state of the automaton (spec.md §3 "Node").
type Node struct {
	// Transitions maps a grapheme's matching key (its folded form when
	// the automaton is case-insensitive, its raw form otherwise) to the
	// child reached by consuming that grapheme.
	Transitions map[string]NodeID
	// Fail is the Aho-Corasick failure link: the deepest proper suffix
	// of this node's trie string that is also a trie prefix. Root is its
	// own fail link.
	Fail NodeID
	// Output lists, in first-seen order, every pattern index that
	// terminates at or is inherited through this node via Fail.
	Output []int
	// FirstPattern is the lowest pattern index whose insertion first
	// reached this node, or noFirstPattern if no pattern ever did
	// (only possible for Root when every pattern has length >= 1, since
	// every other node is created by some pattern's insertion).
	FirstPattern int
	// Weight is the maximum prefix weight observed at this node, per
	// spec.md §4.1 Phase A/C.
	Weight float64
}

func newNode() Node {
	return Node{
		Transitions:  make(map[string]NodeID),
		Fail:         Root,
		FirstPattern: noFirstPattern,
	}
}

// Automaton is the built, immutable node graph.
type Automaton struct {
	Nodes []Node
}

// Node returns a pointer to node id for read access.
func (a *Automaton) Node(id NodeID) *Node {
	return &a.Nodes[id]
}

// Transition returns the child reached from id by consuming key, if any.
func (a *Automaton) Transition(id NodeID, key string) (NodeID, bool) {
	child, ok := a.Nodes[id].Transitions[key]
	return child, ok
}

// NodeCount returns the number of nodes in the automaton, including root.
func (a *Automaton) NodeCount() int {
	return len(a.Nodes)
}

func (a *Automaton) newNode() NodeID {
	id := NodeID(conv.IntToUint32(len(a.Nodes)))
	if id < 0 {
		panic("fuzzyac/internal/automaton: node count exceeds NodeID range")
	}
	a.Nodes = append(a.Nodes, newNode())
	return id
}

// appendUniqueInt appends v to dst if not already present, preserving
// dst's existing order (spec.md §3: output lists are "deduplicated").
func appendUniqueInt(dst []int, v int) []int {
	for _, x := range dst {
		if x == v {
			return dst
		}
	}
	return append(dst, v)
}

// mergeUniqueInts appends every element of src not already in dst.
func mergeUniqueInts(dst, src []int) []int {
	for _, v := range src {
		dst = appendUniqueInt(dst, v)
	}
	return dst
}
