// Package kernel implements the Search Kernel of spec.md §4.3: a
// breadth-first exploration of (automaton-node, haystack-position,
// match-window, edit-counts) states, seeded at every haystack grapheme
// position, producing the keyed best-match result table.
//
// Grounded on coregx-coregex/meta/engine.go's split between an immutable
// compiled engine and per-search mutable state, generalized here from
// "which regex strategy" dispatch to "which edit transition" dispatch;
// the four transition kinds mirror original_source/src/lib.rs's fuzzy
// exploration loop.
package kernel

import (
	"sort"

	"github.com/coregx/fuzzyac/internal/automaton"
	"github.com/coregx/fuzzyac/internal/editcost"
	"github.com/coregx/fuzzyac/internal/grapheme"
	"github.com/coregx/fuzzyac/internal/pattern"
)

// Config bundles everything the kernel needs beyond the automaton and
// pattern table: the edit-cost model and the search-wide controls from
// spec.md §6's Builder collaborator interface.
type Config struct {
	Penalties       editcost.Penalties
	Similarity      *editcost.SimilarityTable
	CaseInsensitive bool
	GlobalLimits    *pattern.EditLimits
	// BeamWidth is the optional beam truncation bound (spec.md §4.3);
	// 0 disables beaming.
	BeamWidth int
}

// Result is one raw match candidate, keyed by (Start, End, PatternIndex)
// in the caller's result table (spec.md §4.3).
type Result struct {
	PatternIndex  int
	Start, End    int // byte offsets into the haystack
	Similarity    float64
	Insertions    int
	Deletions     int
	Substitutions int
	Swaps         int
}

// Edits returns the total edit count.
func (r Result) Edits() int {
	return r.Insertions + r.Deletions + r.Substitutions + r.Swaps
}

type resultKey struct {
	start, end, patternIndex int
}

// Search runs the BFS kernel over haystack and returns the keyed-best
// result set (spec.md §4.3, §4.4's search_unsorted). Order of the
// returned slice is unspecified.
func Search(a *automaton.Automaton, table *pattern.Table, haystack string, threshold float64, cfg Config) []Result {
	hg := grapheme.Segments(haystack)
	results := make(map[resultKey]Result)

	lMax := table.MaxGraphemeLen()
	if lMax == 0 {
		return nil
	}

	for s := 0; s <= len(hg); s++ {
		runSeed(a, table, hg, haystack, s, threshold, float64(lMax), cfg, results)
	}

	out := make([]Result, 0, len(results))
	for _, r := range results {
		out = append(out, r)
	}
	return out
}

// frontierState is spec.md §4.3's state S.
type frontierState struct {
	node         automaton.NodeID
	j            int
	matchedStart int
	matchedEnd   int
	penalty      float64
	counts       pattern.Counts
}

func runSeed(
	a *automaton.Automaton,
	table *pattern.Table,
	hg []grapheme.Grapheme,
	haystack string,
	seed int,
	threshold, lMax float64,
	cfg Config,
	results map[resultKey]Result,
) {
	frontier := []frontierState{{
		node:         automaton.Root,
		j:            seed,
		matchedStart: seed,
		matchedEnd:   seed,
	}}
	cursor := 0

	for cursor < len(frontier) {
		if cfg.BeamWidth > 0 {
			frontier = applyBeam(frontier, cursor, cfg.BeamWidth)
		}

		cur := frontier[cursor]
		cursor++

		if (lMax-cur.penalty)/lMax < threshold {
			continue
		}

		emit(a, table, hg, haystack, cur, threshold, cfg, results)
		frontier = expand(a, table, hg, cur, cfg, frontier)
	}
}

// applyBeam truncates the unexplored tail of the frontier to BeamWidth
// entries, ordered by ascending penalty, once it exceeds 2*BeamWidth
// (spec.md §4.3's "Optional beam").
func applyBeam(frontier []frontierState, cursor, beamWidth int) []frontierState {
	tail := frontier[cursor:]
	if len(tail) <= 2*beamWidth {
		return frontier
	}
	sort.SliceStable(tail, func(i, j int) bool {
		return tail[i].penalty < tail[j].penalty
	})
	kept := tail[:beamWidth]
	truncated := make([]frontierState, cursor, cursor+len(kept))
	copy(truncated, frontier[:cursor])
	return append(truncated, kept...)
}

// governingLimits resolves the limits used for the look-ahead "can we
// still edit?" check at a transition's destination node: the pattern
// that first reached that node, if any, else the automaton-wide global
// limits (spec.md §4.3 "Limit look-ahead").
func governingLimits(a *automaton.Automaton, table *pattern.Table, node automaton.NodeID, global *pattern.EditLimits) *pattern.EditLimits {
	fp := a.Node(node).FirstPattern
	if fp < 0 {
		return global
	}
	return table.EffectiveLimits(fp, global)
}

func byteOffset(graphemeIndex int, hg []grapheme.Grapheme, haystackLen int) int {
	if graphemeIndex < len(hg) {
		return hg[graphemeIndex].Start
	}
	return haystackLen
}

func emit(
	a *automaton.Automaton,
	table *pattern.Table,
	hg []grapheme.Grapheme,
	haystack string,
	cur frontierState,
	threshold float64,
	cfg Config,
	results map[resultKey]Result,
) {
	output := a.Node(cur.node).Output
	if len(output) == 0 {
		return
	}

	for _, patIdx := range output {
		limits := table.EffectiveLimits(patIdx, cfg.GlobalLimits)
		if !limits.Allows(cur.counts) {
			continue
		}

		p := table.Get(patIdx)
		l := float64(p.GraphemeLen())
		similarity := ((l - cur.penalty) / l) * p.Weight
		if similarity < threshold {
			continue
		}

		startByte := byteOffset(cur.matchedStart, hg, len(haystack))
		endByte := byteOffset(cur.matchedEnd, hg, len(haystack))
		key := resultKey{start: startByte, end: endByte, patternIndex: patIdx}

		if existing, ok := results[key]; ok && existing.Similarity >= similarity {
			continue
		}
		results[key] = Result{
			PatternIndex:  patIdx,
			Start:         startByte,
			End:           endByte,
			Similarity:    similarity,
			Insertions:    cur.counts.Insertions,
			Deletions:     cur.counts.Deletions,
			Substitutions: cur.counts.Substitutions,
			Swaps:         cur.counts.Swaps,
		}
	}
}

// sortedTransitions returns node's outgoing edges in deterministic
// (lexical key) order. Go map iteration order is randomized per process;
// without this, beam truncation ties and the keyed-result "first writer
// wins on equal similarity" rule could vary run to run, violating
// spec.md §8 P8 (determinism).
func sortedTransitions(a *automaton.Automaton, node automaton.NodeID) []string {
	n := a.Node(node)
	keys := make([]string, 0, len(n.Transitions))
	for k := range n.Transitions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func expand(
	a *automaton.Automaton,
	table *pattern.Table,
	hg []grapheme.Grapheme,
	cur frontierState,
	cfg Config,
	frontier []frontierState,
) []frontierState {
	haveNext := cur.j < len(hg)

	if haveNext {
		h := hg[cur.j]
		hKey := matchKeyFor(h, cfg.CaseInsensitive)
		hRune := grapheme.FirstRune(hKey)

		for _, g := range sortedTransitions(a, cur.node) {
			n := a.Node(cur.node).Transitions[g]

			if g == hKey {
				frontier = append(frontier, frontierState{
					node:         n,
					j:            cur.j + 1,
					matchedStart: newMatchedStart(cur, cur.j),
					matchedEnd:   cur.j + 1,
					penalty:      cur.penalty,
					counts:       cur.counts,
				})
				continue
			}

			limits := governingLimits(a, table, n, cfg.GlobalLimits)
			if !limits.CanSubstitute(cur.counts) {
				continue
			}
			gRune := grapheme.FirstRune(g)
			cost := cfg.Penalties.SubstitutionCost(cfg.Similarity, gRune, hRune)
			counts := cur.counts
			counts.Substitutions++
			frontier = append(frontier, frontierState{
				node:         n,
				j:            cur.j + 1,
				matchedStart: newMatchedStart(cur, cur.j),
				matchedEnd:   cur.j + 1,
				penalty:      cur.penalty + cost,
				counts:       counts,
			})
		}

		// Transposition: node -[b]-> n1 -[a]-> n2, consuming hg[j], hg[j+1]
		// in swapped order.
		if cur.j+1 < len(hg) {
			a2 := hg[cur.j]
			b2 := hg[cur.j+1]
			aKey := matchKeyFor(a2, cfg.CaseInsensitive)
			bKey := matchKeyFor(b2, cfg.CaseInsensitive)
			if n1, ok := a.Transition(cur.node, bKey); ok {
				if n2, ok := a.Transition(n1, aKey); ok {
					limits := governingLimits(a, table, n2, cfg.GlobalLimits)
					if limits.CanSwap(cur.counts) {
						counts := cur.counts
						counts.Swaps++
						frontier = append(frontier, frontierState{
							node:         n2,
							j:            cur.j + 2,
							matchedStart: cur.matchedStart,
							matchedEnd:   cur.j + 2,
							penalty:      cur.penalty + cfg.Penalties.Swap,
							counts:       counts,
						})
					}
				}
			}
		}

		// Insertion: skip one haystack grapheme, pattern position unchanged.
		if cur.matchedStart != cur.matchedEnd || cur.matchedStart != cur.j {
			limits := governingLimits(a, table, cur.node, cfg.GlobalLimits)
			if limits.CanInsert(cur.counts) {
				counts := cur.counts
				counts.Insertions++
				frontier = append(frontier, frontierState{
					node:         cur.node,
					j:            cur.j + 1,
					matchedStart: cur.matchedStart,
					matchedEnd:   cur.matchedEnd,
					penalty:      cur.penalty + cfg.Penalties.Insertion,
					counts:       counts,
				})
			}
		}
	}

	// Deletion: advance one transition in the automaton without consuming
	// a haystack grapheme. Allowed even when j == len(hg) (spec.md §9(b)).
	for _, g := range sortedTransitions(a, cur.node) {
		n := a.Node(cur.node).Transitions[g]
		limits := governingLimits(a, table, n, cfg.GlobalLimits)
		if !limits.CanDelete(cur.counts) {
			continue
		}
		counts := cur.counts
		counts.Deletions++
		frontier = append(frontier, frontierState{
			node:         n,
			j:            cur.j,
			matchedStart: cur.matchedStart,
			matchedEnd:   cur.matchedEnd,
			penalty:      cur.penalty + cfg.Penalties.Deletion,
			counts:       counts,
		})
	}

	return frontier
}

// newMatchedStart implements spec.md §4.3's "new_start = j if
// matched_start == matched_end else matched_start": a still-degenerate
// window (one that hasn't consumed its first grapheme yet) snaps its
// start to the current position.
func newMatchedStart(cur frontierState, j int) int {
	if cur.matchedStart == cur.matchedEnd {
		return j
	}
	return cur.matchedStart
}

func matchKeyFor(g grapheme.Grapheme, caseInsensitive bool) string {
	if caseInsensitive {
		return g.Folded
	}
	return g.Text
}
