package analysis

import (
	"sort"

	"github.com/SeamusWaldron/cubesim"
)

// NGram represents a repeated move sequence.
type NGram struct {
	N           int               `json:"n"`
	Sequence    string            `json:"sequence"`
	Count       int               `json:"count"`
	Occurrences []NGramOccurrence `json:"occurrences,omitempty"`
}

// NGramOccurrence represents where an n-gram was found.
type NGramOccurrence struct {
	Source     string `json:"source,omitempty"`
	StartIndex int    `json:"start_index"`
}

// NGramReport contains the results of n-gram mining.
type NGramReport struct {
	TopNGrams map[int][]NGram `json:"top_ngrams"` // Keyed by n
}

// maxOccurrences caps the sample positions kept per n-gram.
const maxOccurrences = 10

// RollingHash implements Rabin-Karp rolling hash for efficient n-gram detection.
type RollingHash struct {
	base   uint64
	hash   uint64
	pow    uint64 // base^(n-1) for removal
	window []cubesim.Move
	n      int
}

// NewRollingHash creates a new rolling hash for window size n.
func NewRollingHash(n int) *RollingHash {
	rh := &RollingHash{
		base:   31, // Prime base
		n:      n,
		window: make([]cubesim.Move, 0, n),
	}

	// Precompute base^(n-1)
	rh.pow = 1
	for i := 0; i < n-1; i++ {
		rh.pow *= rh.base
	}

	return rh
}

// Roll adds a move, dropping the oldest one once the window is full.
func (rh *RollingHash) Roll(m cubesim.Move) {
	// Offset by one so U (zero) still contributes to the hash.
	token := uint64(m) + 1

	if len(rh.window) < rh.n {
		rh.window = append(rh.window, m)
		rh.hash = rh.hash*rh.base + token
		return
	}

	old := uint64(rh.window[0]) + 1
	rh.hash = (rh.hash-old*rh.pow)*rh.base + token

	copy(rh.window, rh.window[1:])
	rh.window[rh.n-1] = m
}

// Hash returns the current hash value.
func (rh *RollingHash) Hash() uint64 {
	return rh.hash
}

// Window returns a copy of the current window.
func (rh *RollingHash) Window() []cubesim.Move {
	result := make([]cubesim.Move, len(rh.window))
	copy(result, rh.window)
	return result
}

// Ready returns true if the window is full.
func (rh *RollingHash) Ready() bool {
	return len(rh.window) == rh.n
}

// MineNGrams finds the top-K most frequent n-grams for each n in [minN, maxN]
// across the given token strings, keyed by an arbitrary source label.
// Only n-grams seen at least twice are reported.
func MineNGrams(sources map[string]string, minN, maxN, topK int) *NGramReport {
	report := &NGramReport{
		TopNGrams: make(map[int][]NGram),
	}

	// Walk sources in a stable order so occurrences are deterministic.
	labels := make([]string, 0, len(sources))
	for label := range sources {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	parsed := make([][]cubesim.Move, len(labels))
	for i, label := range labels {
		parsed[i] = parseMoves(sources[label])
	}

	for n := minN; n <= maxN; n++ {
		counts := make(map[uint64]*ngramEntry)
		for i, moves := range parsed {
			countNGrams(counts, labels[i], moves, n)
		}

		ngrams := topNGrams(counts, topK)
		if len(ngrams) > 0 {
			report.TopNGrams[n] = ngrams
		}
	}

	return report
}

func parseMoves(ops string) []cubesim.Move {
	moves := make([]cubesim.Move, 0, len(ops))
	for i := 0; i < len(ops); i++ {
		if m, ok := cubesim.ParseMove(ops[i]); ok {
			moves = append(moves, m)
		}
	}
	return moves
}

// ngramEntry tracks n-gram occurrences during mining.
type ngramEntry struct {
	moves       []cubesim.Move
	count       int
	occurrences []NGramOccurrence
}

// countNGrams adds the n-grams of one move list to counts, keyed by rolling hash.
func countNGrams(counts map[uint64]*ngramEntry, source string, moves []cubesim.Move, n int) {
	if n <= 0 || len(moves) < n {
		return
	}

	rh := NewRollingHash(n)

	for i, m := range moves {
		rh.Roll(m)
		if !rh.Ready() {
			continue
		}

		hash := rh.Hash()
		occ := NGramOccurrence{Source: source, StartIndex: i - n + 1}

		if entry, exists := counts[hash]; exists {
			// Verify it's actually the same sequence (handle hash collisions)
			if movesEqual(entry.moves, rh.window) {
				entry.count++
				if len(entry.occurrences) < maxOccurrences {
					entry.occurrences = append(entry.occurrences, occ)
				}
			}
		} else {
			counts[hash] = &ngramEntry{
				moves:       rh.Window(),
				count:       1,
				occurrences: []NGramOccurrence{occ},
			}
		}
	}
}

func topNGrams(counts map[uint64]*ngramEntry, topK int) []NGram {
	ngrams := make([]NGram, 0, len(counts))
	for _, entry := range counts {
		// Only include n-grams that appear more than once
		if entry.count >= 2 {
			ngrams = append(ngrams, NGram{
				N:           len(entry.moves),
				Sequence:    cubesim.FormatMoves(entry.moves),
				Count:       entry.count,
				Occurrences: entry.occurrences,
			})
		}
	}

	sort.Slice(ngrams, func(i, j int) bool {
		if ngrams[i].Count != ngrams[j].Count {
			return ngrams[i].Count > ngrams[j].Count
		}
		return ngrams[i].Sequence < ngrams[j].Sequence
	})

	if len(ngrams) > topK {
		ngrams = ngrams[:topK]
	}

	return ngrams
}

// movesEqual compares two move slices.
func movesEqual(a, b []cubesim.Move) bool {
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
