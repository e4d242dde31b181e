// Package qmc implements the Quine-McCluskey prime-implicant generator:
// minterms go in, prime implicants and a reproducible per-pass trace come
// out.
package qmc

import "sort"

// Implicant is a length-n ternary vector packed into two bitmasks. Value
// holds the bit values at care positions; Mask has a 1 at every care
// position and a 0 at every don't-care position. Bit p (0-indexed from
// the least-significant side) corresponds to variable (n-1-p) in the
// canonical variable order, matching the minterm encoding internal/truthtable
// produces — bit p of Implicant lines up with bit p of a minterm integer.
type Implicant struct {
	Value uint64
	Mask  uint64
}

// Covers reports whether imp covers minterm m: at every care position,
// imp and m must agree.
func (imp Implicant) Covers(m uint64) bool {
	return imp.Value&imp.Mask == m&imp.Mask
}

// popcount counts the care positions holding a 1 — the "true" entries a
// Group is keyed by. Don't-cares and 0s never count.
func (imp Implicant) popcount() int {
	ones := imp.Value & imp.Mask
	count := 0
	for ones != 0 {
		count += int(ones & 1)
		ones >>= 1
	}
	return count
}

// dontCareCount reports how many of the n positions are don't-care.
func (imp Implicant) dontCareCount(n int) int {
	full := uint64(1)<<uint(n) - 1
	careBits := imp.Mask & full
	count := 0
	for b := 0; b < n; b++ {
		if careBits&(1<<uint(b)) == 0 {
			count++
		}
	}
	return count
}

// LiteralCount reports the number of non-don't-care positions in imp
// over n variables — the literal count this implicant contributes as an
// AND term.
func (imp Implicant) LiteralCount(n int) int {
	return n - imp.dontCareCount(n)
}

// combine attempts to merge a and b: they must share the same mask (same
// care positions) and differ in exactly one care position. The result
// drops that position to don't-care.
func combine(a, b Implicant) (Implicant, bool) {
	if a.Mask != b.Mask {
		return Implicant{}, false
	}
	diff := (a.Value ^ b.Value) & a.Mask
	if diff == 0 || diff&(diff-1) != 0 {
		return Implicant{}, false
	}
	return Implicant{Value: a.Value &^ diff, Mask: a.Mask &^ diff}, true
}

// MergeRecord documents one (group, next-group) pairing attempted during a
// single pass: every implicant produced by a successful merge, and every
// implicant from the lower group that found no partner.
type MergeRecord struct {
	GroupID     int
	NextGroupID int
	Merged      []Implicant
	Unmerged    []Implicant
}

// TraceStep is one record of the append-only QMC trace: either the
// initial popcount grouping of the input minterms, or one merge pass.
type TraceStep struct {
	Kind            string // "initial" or "merge"
	GroupsBefore    map[int][]Implicant
	GroupsAfter     map[int][]Implicant
	Merges          []MergeRecord
	UnmergedCarried []Implicant
}

// Run computes the prime implicants of the function whose true rows are
// minterms, over n variables, and the trace of how QMC got there. An
// empty minterms list returns (nil, nil): the facade short-circuits that
// case to Const(false) before this ever runs, but Run itself stays total.
func Run(minterms []int, n int) ([]Implicant, []TraceStep) {
	if len(minterms) == 0 {
		return nil, nil
	}

	full := uint64(1)<<uint(n) - 1

	seen := make(map[uint64]bool, len(minterms))
	var dedup []uint64
	for _, m := range minterms {
		u := uint64(m) & full
		if !seen[u] {
			seen[u] = true
			dedup = append(dedup, u)
		}
	}
	sort.Slice(dedup, func(i, j int) bool { return dedup[i] < dedup[j] })

	initial := make(map[int][]Implicant)
	for _, m := range dedup {
		imp := Implicant{Value: m, Mask: full}
		k := imp.popcount()
		initial[k] = append(initial[k], imp)
	}
	trace := []TraceStep{{Kind: "initial", GroupsAfter: cloneGroups(initial)}}

	primeSet := make(map[Implicant]bool)
	current := initial

	for {
		keys := sortedKeys(current)
		used := make(map[Implicant]bool)
		nextRaw := make(map[int]map[Implicant]bool)
		var merges []MergeRecord

		for _, k := range keys {
			lower := current[k]
			higher, hasHigher := current[k+1]
			if !hasHigher {
				rec := MergeRecord{GroupID: k, NextGroupID: k + 1, Unmerged: append([]Implicant(nil), lower...)}
				merges = append(merges, rec)
				continue
			}
			usedInRecord := make(map[Implicant]bool)
			var merged []Implicant
			mergedSeen := make(map[Implicant]bool)
			for _, a := range lower {
				for _, b := range higher {
					if m, ok := combine(a, b); ok {
						used[a] = true
						used[b] = true
						usedInRecord[a] = true
						if !mergedSeen[m] {
							mergedSeen[m] = true
							merged = append(merged, m)
						}
						if nextRaw[k] == nil {
							nextRaw[k] = make(map[Implicant]bool)
						}
						nextRaw[k][m] = true
					}
				}
			}
			var unmerged []Implicant
			for _, a := range lower {
				if !usedInRecord[a] {
					unmerged = append(unmerged, a)
				}
			}
			merges = append(merges, MergeRecord{GroupID: k, NextGroupID: k + 1, Merged: merged, Unmerged: unmerged})
		}

		var unmergedCarried []Implicant
		for _, k := range keys {
			for _, imp := range current[k] {
				if !used[imp] {
					if !primeSet[imp] {
						primeSet[imp] = true
						unmergedCarried = append(unmergedCarried, imp)
					}
				}
			}
		}

		next := make(map[int][]Implicant)
		for k, set := range nextRaw {
			for imp := range set {
				next[k] = append(next[k], imp)
			}
		}

		trace = append(trace, TraceStep{
			Kind:            "merge",
			GroupsBefore:    cloneGroups(current),
			GroupsAfter:     cloneGroups(next),
			Merges:          merges,
			UnmergedCarried: unmergedCarried,
		})

		if len(next) == 0 {
			break
		}
		current = next
	}

	primes := make([]Implicant, 0, len(primeSet))
	for p := range primeSet {
		primes = append(primes, p)
	}
	sort.Slice(primes, func(i, j int) bool {
		if primes[i].Mask != primes[j].Mask {
			return primes[i].Mask > primes[j].Mask
		}
		return primes[i].Value < primes[j].Value
	})
	return primes, trace
}

func sortedKeys(groups map[int][]Implicant) []int {
	keys := make([]int, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func cloneGroups(groups map[int][]Implicant) map[int][]Implicant {
	out := make(map[int][]Implicant, len(groups))
	for k, v := range groups {
		cp := make([]Implicant, len(v))
		copy(cp, v)
		out[k] = cp
	}
	return out
}
