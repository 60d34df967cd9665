package automaton

import "testing"

func TestAppendUniqueInt(t *testing.T) {
	tests := []struct {
		name string
		dst  []int
		v    int
		want []int
	}{
		{name: "append to empty", dst: nil, v: 1, want: []int{1}},
		{name: "append new value", dst: []int{1, 2}, v: 3, want: []int{1, 2, 3}},
		{name: "skip duplicate", dst: []int{1, 2}, v: 2, want: []int{1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := appendUniqueInt(tt.dst, tt.v)
			if !intSliceEqual(got, tt.want) {
				t.Errorf("appendUniqueInt(%v, %d) = %v, want %v", tt.dst, tt.v, got, tt.want)
			}
		})
	}
}

func TestMergeUniqueInts(t *testing.T) {
	tests := []struct {
		name     string
		dst, src []int
		want     []int
	}{
		{name: "disjoint merges all", dst: []int{1}, src: []int{2, 3}, want: []int{1, 2, 3}},
		{name: "overlap dedupes", dst: []int{1, 2}, src: []int{2, 3}, want: []int{1, 2, 3}},
		{name: "empty src no-op", dst: []int{1, 2}, src: nil, want: []int{1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mergeUniqueInts(tt.dst, tt.src)
			if !intSliceEqual(got, tt.want) {
				t.Errorf("mergeUniqueInts(%v, %v) = %v, want %v", tt.dst, tt.src, got, tt.want)
			}
		})
	}
}

func intSliceEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNewNodeDefaults(t *testing.T) {
	n := newNode()
	if n.Fail != Root {
		t.Errorf("newNode().Fail = %d, want Root", n.Fail)
	}
	if n.FirstPattern != noFirstPattern {
		t.Errorf("newNode().FirstPattern = %d, want noFirstPattern", n.FirstPattern)
	}
	if n.Transitions == nil {
		t.Errorf("newNode().Transitions is nil, want an initialized map")
	}
}

func TestAutomatonTransition(t *testing.T) {
	a := &Automaton{Nodes: []Node{newNode(), newNode()}}
	a.Nodes[0].Transitions["x"] = 1

	child, ok := a.Transition(0, "x")
	if !ok || child != 1 {
		t.Errorf("Transition(0,\"x\") = (%d,%v), want (1,true)", child, ok)
	}
	if _, ok := a.Transition(0, "y"); ok {
		t.Errorf("Transition(0,\"y\") found a child, want none")
	}
}

func TestAutomatonNewNode(t *testing.T) {
	a := &Automaton{Nodes: []Node{newNode()}}
	before := a.NodeCount()
	id := a.newNode()
	if int(id) != before {
		t.Errorf("newNode() id = %d, want %d", id, before)
	}
	if a.NodeCount() != before+1 {
		t.Errorf("NodeCount() = %d, want %d", a.NodeCount(), before+1)
	}
}
