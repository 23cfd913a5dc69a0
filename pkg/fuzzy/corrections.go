package fuzzy

// CorrectionRule is a bidirectional orthographic substring rewrite applied
// by the syllable parser, distinct from FuzzyMap's whole-syllable
// alternatives: it rewrites a substring everywhere it occurs within a span,
// rather than substituting an entire in-trie syllable. No rule is
// restricted to the end of a span.
type CorrectionRule struct {
	From string
	To   string
}

// PinyinCorrections returns the standard orthographic correction rewrites
// for Pinyin: ue/ve after the consonants that can take a ü final, nv/nu and
// lv/lu, uen/un, gn/ng and mg/ng (matched at any position, not only at
// the end), and iou/iu.
func PinyinCorrections() []CorrectionRule {
	var rules []CorrectionRule
	for _, c := range []string{"n", "l", "x", "q", "y", "j"} {
		rules = append(rules, CorrectionRule{From: c + "ue", To: c + "ve"})
	}
	rules = append(rules,
		CorrectionRule{From: "nv", To: "nu"},
		CorrectionRule{From: "lv", To: "lu"},
		CorrectionRule{From: "uen", To: "un"},
		CorrectionRule{From: "gn", To: "ng"},
		CorrectionRule{From: "mg", To: "ng"},
		CorrectionRule{From: "iou", To: "iu"},
	)
	return rules
}

// ZhuyinCorrections returns the standard Zhuyin orthographic corrections:
// medial/final shuffles, HSU keyboard retroflex/palatal mergers, and
// ETEN26 retroflex/non-retroflex mergers. These remain one-to-one at the
// syllable level.
func ZhuyinCorrections() []CorrectionRule {
	return []CorrectionRule{
		{From: "ㄨㄟ", To: "ㄩㄟ"},
		{From: "ㄨㄣ", To: "ㄩㄣ"},
		{From: "ㄓ", To: "ㄐ"},
		{From: "ㄔ", To: "ㄑ"},
		{From: "ㄕ", To: "ㄒ"},
		{From: "ㄓ", To: "ㄗ"},
		{From: "ㄔ", To: "ㄘ"},
		{From: "ㄕ", To: "ㄙ"},
	}
}
