package fuzzy

// PinyinFuzzyPreset builds the standard upstream libpinyin fuzzy rule set:
// shengmu (initial) confusions, their composed-syllable derivatives, yunmu
// (final) confusions and their an/ang, en/eng, in/ing derivatives, plus the
// v/u correction pairs. Penalties follow upstream: 1.0 for shengmu/yunmu and
// their derivatives, 2.0 for v/u pairs.
func PinyinFuzzyPreset() *FuzzyMap {
	fm := New()

	shengmu := [][2]string{
		{"c", "ch"}, {"z", "zh"}, {"s", "sh"},
		{"l", "n"}, {"f", "h"}, {"l", "r"}, {"k", "g"},
	}
	for _, p := range shengmu {
		fm.AddRule(p[0], p[1], 1.0)
	}

	// Composed-syllable derivatives: every shengmu confusion also applies to
	// each syllable formed by appending a shared final to both initials.
	finals := []string{
		"i", "a", "e", "u", "ai", "ei", "ao", "ou",
		"an", "en", "ang", "eng", "ong", "uan", "un", "ui", "uo",
	}
	for _, p := range shengmu {
		for _, f := range finals {
			fm.AddRule(p[0]+f, p[1]+f, 1.0)
		}
	}

	yunmu := [][2]string{
		{"an", "ang"}, {"en", "eng"}, {"in", "ing"}, {"ian", "iang"},
	}
	for _, p := range yunmu {
		fm.AddRule(p[0], p[1], 1.0)
	}

	// Composed-syllable derivatives for the an/ang and en/eng confusions,
	// over the initials that can precede those finals.
	initials := []string{
		"b", "p", "m", "f", "d", "t", "n", "l", "g", "k", "h",
		"zh", "ch", "sh", "r", "z", "c", "s", "y", "w",
	}
	for _, ini := range initials {
		fm.AddRule(ini+"an", ini+"ang", 1.0)
		fm.AddRule(ini+"en", ini+"eng", 1.0)
	}
	for _, ini := range []string{"b", "p", "m", "d", "t", "n", "l", "j", "q", "x", "y"} {
		fm.AddRule(ini+"in", ini+"ing", 1.0)
	}

	// Orthographic correction rewrites, medium penalty.
	corrections := [][2]string{
		{"ng", "gn"}, {"ng", "mg"}, {"iu", "iou"}, {"ui", "uei"},
		{"un", "uen"}, {"ue", "ve"}, {"ong", "on"},
	}
	for _, p := range corrections {
		fm.AddRule(p[0], p[1], 1.5)
	}

	// V/U correction, less common, higher penalty.
	vu := []string{"ju", "qu", "xu", "yu", "jue", "que", "xue", "yue",
		"juan", "quan", "xuan", "yuan", "jun", "qun", "xun", "yun"}
	for _, s := range vu {
		fm.AddRule(s, strReplaceLastU(s), 2.0)
	}

	return fm
}

// strReplaceLastU rewrites the last u of s to v, giving the v-spelled
// equivalent (ju -> jv, jue -> jve, juan -> jvan, jun -> jvn), matching the
// upstream v/u correction pairs for syllables that can only take ü, never u.
func strReplaceLastU(s string) string {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == 'u' {
			return s[:i] + "v" + s[i+1:]
		}
	}
	return s
}

// ZhuyinLayout identifies a Zhuyin keyboard layout for fuzzy preset selection.
type ZhuyinLayout int

const (
	ZhuyinHSU ZhuyinLayout = iota
	ZhuyinStandard
	ZhuyinETEN
)

// ZhuyinFuzzyPreset builds the fuzzy rule set tailored to the typing errors
// of a given Zhuyin keyboard layout.
func ZhuyinFuzzyPreset(layout ZhuyinLayout) *FuzzyMap {
	fm := New()
	switch layout {
	case ZhuyinHSU:
		for _, p := range [][2]string{{"ㄓ", "ㄐ"}, {"ㄔ", "ㄑ"}, {"ㄕ", "ㄒ"}} {
			fm.AddRule(p[0], p[1], 1.5)
		}
		for _, p := range [][2]string{
			{"ㄛ", "ㄏ"}, {"ㄜ", "ㄍ"}, {"ㄢ", "ㄇ"}, {"ㄣ", "ㄋ"}, {"ㄤ", "ㄎ"}, {"ㄥ", "ㄌ"},
		} {
			fm.AddRule(p[0], p[1], 1.0)
		}
		for _, p := range [][2]string{{"ㄢ", "ㄤ"}, {"ㄣ", "ㄥ"}} {
			fm.AddRule(p[0], p[1], 2.0)
		}
	case ZhuyinStandard:
		for _, p := range [][2]string{{"ㄢ", "ㄤ"}, {"ㄣ", "ㄥ"}} {
			fm.AddRule(p[0], p[1], 1.0)
		}
		for _, p := range [][2]string{
			{"ㄧㄢ", "ㄧㄤ"}, {"ㄧㄣ", "ㄧㄥ"}, {"ㄨㄢ", "ㄨㄤ"}, {"ㄨㄣ", "ㄨㄥ"},
		} {
			fm.AddRule(p[0], p[1], 1.5)
		}
		for _, p := range [][2]string{{"ㄓ", "ㄐ"}, {"ㄔ", "ㄑ"}, {"ㄕ", "ㄒ"}, {"ㄗ", "ㄓ"}, {"ㄘ", "ㄔ"}, {"ㄙ", "ㄕ"}} {
			fm.AddRule(p[0], p[1], 2.0)
		}
		fm.AddRule("ㄧ", "ㄩ", 2.5)
	case ZhuyinETEN:
		for _, p := range [][2]string{{"ㄢ", "ㄤ"}, {"ㄣ", "ㄥ"}} {
			fm.AddRule(p[0], p[1], 1.0)
		}
		for _, p := range [][2]string{{"ㄧㄢ", "ㄧㄤ"}, {"ㄧㄣ", "ㄧㄥ"}, {"ㄨㄢ", "ㄨㄤ"}} {
			fm.AddRule(p[0], p[1], 1.5)
		}
		for _, p := range [][2]string{{"ㄓ", "ㄐ"}, {"ㄔ", "ㄑ"}, {"ㄕ", "ㄒ"}} {
			fm.AddRule(p[0], p[1], 2.0)
		}
	}
	return fm
}
