// Package parser segments a phonetic input string (Pinyin or Zhuyin) into
// syllables via DP or beam search over a syllable trie, with fuzzy and
// orthographic-correction rewrites.
package parser

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/rano-oss/libchinese-go/pkg/fuzzy"
	"github.com/rano-oss/libchinese-go/pkg/trie"
)

// Syllable is a single matched chunk of phonetic input.
type Syllable struct {
	Text  string
	Fuzzy bool
}

const (
	costExact      = 1.0
	costFuzzy      = 1.5
	costUnknown    = 10.0
	distFuzzy      = 1
	distUnknown    = 1000
	maxRewriteSpan = 4
)

// SyllableParser segments phonetic strings into syllables using a syllable
// trie, a FuzzyMap of whole-syllable alternatives, and a table of
// orthographic correction rewrites.
type SyllableParser struct {
	trie        *trie.Trie
	fuzzyMap    *fuzzy.FuzzyMap
	corrections []fuzzy.CorrectionRule
}

// NewSyllableParser creates an empty parser. fuzzyMap and corrections may be
// nil to disable fuzzy/correction rewrites.
func NewSyllableParser(fuzzyMap *fuzzy.FuzzyMap, corrections []fuzzy.CorrectionRule) *SyllableParser {
	if fuzzyMap == nil {
		fuzzyMap = fuzzy.New()
	}
	return &SyllableParser{
		trie:        trie.New(),
		fuzzyMap:    fuzzyMap,
		corrections: corrections,
	}
}

// InsertSyllable adds a syllable to the parser's trie, trimmed and
// lowercased.
func (p *SyllableParser) InsertSyllable(syllable string) {
	key := strings.ToLower(strings.TrimSpace(syllable))
	if key != "" {
		p.trie.Insert(key)
	}
}

// ContainsSyllable reports whether syllable is an exact entry in the trie.
func (p *SyllableParser) ContainsSyllable(syllable string) bool {
	return p.trie.ContainsWord(strings.ToLower(syllable))
}

// normalize lowercases ASCII and strips whitespace, matching the Pinyin
// normalization rule; it is a no-op for non-ASCII Zhuyin/Bopomofo text.
func normalize(input string) []rune {
	out := make([]rune, 0, len(input))
	for _, r := range input {
		if unicode.IsSpace(r) {
			continue
		}
		out = append(out, unicode.ToLower(r))
	}
	return out
}

type rewriteCandidate struct {
	end  int
	text string
}

// rewriteCandidates returns same-length fuzzy-map and correction-table
// alternatives for the substring normalized[pos:pos+len], for len 1..4,
// that exist as complete trie entries.
func (p *SyllableParser) rewriteCandidates(normalized []rune, pos, n int) []rewriteCandidate {
	var out []rewriteCandidate
	for length := 1; length <= maxRewriteSpan; length++ {
		if pos+length > n {
			break
		}
		substr := string(normalized[pos : pos+length])
		substrRunes := length

		for _, alt := range p.fuzzyMap.Alternatives(substr) {
			if alt.Text == substr {
				continue
			}
			if len([]rune(alt.Text)) == substrRunes && p.trie.ContainsWord(alt.Text) {
				out = append(out, rewriteCandidate{end: pos + length, text: alt.Text})
			}
		}

		for _, rule := range p.corrections {
			for _, dir := range [2][2]string{{rule.From, rule.To}, {rule.To, rule.From}} {
				if dir[0] == "" || !strings.Contains(substr, dir[0]) {
					continue
				}
				alt := strings.ReplaceAll(substr, dir[0], dir[1])
				if len([]rune(alt)) == substrRunes && p.trie.ContainsWord(alt) {
					out = append(out, rewriteCandidate{end: pos + length, text: alt})
				}
			}
		}
	}
	return out
}

// dpState tracks the lexicographically-best suffix solution at a position:
// (cost, parsed chars, segment count, distance), matching segment_best's
// tie-break ordering (lower cost, then higher parsed, then fewer keys, then
// lower distance).
type dpState struct {
	cost   float64
	parsed int
	keys   int
	dist   int
}

type dpChoice struct {
	end   int
	text  string
	fuzzy bool
	set   bool
}

func shouldReplace(cand dpState, best dpState) bool {
	const eps = 1e-6
	if cand.cost < best.cost-eps {
		return true
	}
	if math.Abs(cand.cost-best.cost) < eps {
		if cand.parsed > best.parsed {
			return true
		}
		if cand.parsed == best.parsed {
			if cand.keys < best.keys {
				return true
			}
			if cand.keys == best.keys && cand.dist < best.dist {
				return true
			}
		}
	}
	return false
}

// SegmentBest returns the single best segmentation of input, minimizing
// cost with tie-breaks on parsed length, segment count, and distance.
func (p *SyllableParser) SegmentBest(input string, allowFuzzy bool) []Syllable {
	normalized := normalize(input)
	n := len(normalized)
	if n == 0 {
		return nil
	}

	best := make([]dpState, n+1)
	choice := make([]dpChoice, n+1)
	for i := range best {
		best[i] = dpState{cost: math.Inf(1)}
	}
	best[n] = dpState{cost: 0, parsed: 0, keys: 0, dist: 0}

	for pos := n - 1; pos >= 0; pos-- {
		for _, m := range p.trie.WalkPrefixes(normalized, pos) {
			if math.IsInf(best[m.EndIndex].cost, 1) {
				continue
			}
			cand := dpState{
				cost:   costExact + best[m.EndIndex].cost,
				parsed: (m.EndIndex - pos) + best[m.EndIndex].parsed,
				keys:   1 + best[m.EndIndex].keys,
				dist:   best[m.EndIndex].dist,
			}
			if shouldReplace(cand, best[pos]) {
				best[pos] = cand
				choice[pos] = dpChoice{end: m.EndIndex, text: m.Text, fuzzy: false, set: true}
			}
		}

		if allowFuzzy {
			for _, rc := range p.rewriteCandidates(normalized, pos, n) {
				if math.IsInf(best[rc.end].cost, 1) {
					continue
				}
				cand := dpState{
					cost:   costFuzzy + best[rc.end].cost,
					parsed: (rc.end - pos) + best[rc.end].parsed,
					keys:   1 + best[rc.end].keys,
					dist:   distFuzzy + best[rc.end].dist,
				}
				if shouldReplace(cand, best[pos]) {
					best[pos] = cand
					choice[pos] = dpChoice{end: rc.end, text: rc.text, fuzzy: true, set: true}
				}
			}
		}

		if !choice[pos].set {
			end := pos + 1
			if !math.IsInf(best[end].cost, 1) {
				cand := dpState{
					cost:   costUnknown + best[end].cost,
					parsed: 1 + best[end].parsed,
					keys:   1 + best[end].keys,
					dist:   distUnknown + best[end].dist,
				}
				if shouldReplace(cand, best[pos]) {
					best[pos] = cand
					choice[pos] = dpChoice{end: end, text: string(normalized[pos:end]), fuzzy: false, set: true}
				}
			}
		}
	}

	var out []Syllable
	cur := 0
	for cur < n {
		c := choice[cur]
		if !c.set {
			out = append(out, Syllable{Text: string(normalized[cur])})
			cur++
			continue
		}
		if c.text == "'" {
			cur = c.end
			continue
		}
		out = append(out, Syllable{Text: c.text, Fuzzy: c.fuzzy})
		cur = c.end
	}
	return out
}

type beamState struct {
	pos    int
	tokens []Syllable
	cost   float64
	parsed int
	keys   int
	dist   int
}

func stateLess(a, b beamState) bool {
	if math.Abs(a.cost-b.cost) > 1e-6 {
		return a.cost < b.cost
	}
	if a.parsed != b.parsed {
		return a.parsed > b.parsed
	}
	if a.keys != b.keys {
		return a.keys < b.keys
	}
	return a.dist < b.dist
}

// SegmentTopK returns up to k distinct segmentations via left-to-right beam
// search with beam width max(8, 4*k), using the same cost model and
// tie-break comparator as SegmentBest.
func (p *SyllableParser) SegmentTopK(input string, k int, allowFuzzy bool) [][]Syllable {
	normalized := normalize(input)
	n := len(normalized)
	if n == 0 {
		return nil
	}

	beamWidth := 8
	if k*4 > beamWidth {
		beamWidth = k * 4
	}

	beam := []beamState{{pos: 0}}
	var completed []beamState

	for len(beam) > 0 {
		var next []beamState

		for _, st := range beam {
			if st.pos == n {
				completed = append(completed, st)
				continue
			}

			for _, m := range p.trie.WalkPrefixes(normalized, st.pos) {
				tokens := append(append([]Syllable(nil), st.tokens...), Syllable{Text: m.Text})
				next = append(next, beamState{
					pos:    m.EndIndex,
					tokens: tokens,
					cost:   st.cost + costExact,
					parsed: st.parsed + (m.EndIndex - st.pos),
					keys:   st.keys + 1,
					dist:   st.dist,
				})
			}

			if allowFuzzy {
				for _, rc := range p.rewriteCandidates(normalized, st.pos, n) {
					tokens := append(append([]Syllable(nil), st.tokens...), Syllable{Text: rc.text, Fuzzy: true})
					next = append(next, beamState{
						pos:    rc.end,
						tokens: tokens,
						cost:   st.cost + costFuzzy,
						parsed: st.parsed + (rc.end - st.pos),
						keys:   st.keys + 1,
						dist:   st.dist + distFuzzy,
					})
				}
			}

			end := st.pos + 1
			if end <= n {
				tokens := append(append([]Syllable(nil), st.tokens...), Syllable{Text: string(normalized[st.pos:end])})
				next = append(next, beamState{
					pos:    end,
					tokens: tokens,
					cost:   st.cost + costUnknown,
					parsed: st.parsed + 1,
					keys:   st.keys + 1,
					dist:   st.dist + distUnknown,
				})
			}
		}

		if len(next) == 0 {
			break
		}

		sort.Slice(next, func(i, j int) bool { return stateLess(next[i], next[j]) })
		if len(next) > beamWidth {
			next = next[:beamWidth]
		}
		beam = next
	}

	if len(completed) == 0 {
		return [][]Syllable{p.SegmentBest(input, allowFuzzy)}
	}

	sort.Slice(completed, func(i, j int) bool { return stateLess(completed[i], completed[j]) })

	out := make([][]Syllable, 0, k)
	seen := make(map[string]bool)
	for _, st := range completed {
		if len(out) >= k {
			break
		}
		parts := make([]string, len(st.tokens))
		for i, s := range st.tokens {
			parts[i] = s.Text
		}
		key := strings.Join(parts, "'")
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, st.tokens)
	}
	return out
}

// FindSyllableCompletion returns an arbitrary terminal syllable in the trie
// that begins with prefix, breaking ties by shortest length then
// lexicographic order. The second return value is false if no completion
// exists.
func (p *SyllableParser) FindSyllableCompletion(prefix string) (string, bool) {
	candidates := p.trie.FindCompletion(strings.ToLower(prefix))
	if len(candidates) == 0 {
		return "", false
	}
	sort.Slice(candidates, func(i, j int) bool {
		if len(candidates[i]) != len(candidates[j]) {
			return len(candidates[i]) < len(candidates[j])
		}
		return candidates[i] < candidates[j]
	})
	return candidates[0], true
}
