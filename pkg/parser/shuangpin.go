package parser

// ShuangpinScheme identifies a Double-Pinyin (双拼) keyboard layout.
type ShuangpinScheme int

const (
	SchemeMicrosoft ShuangpinScheme = iota
	SchemeZiRanMa
	SchemeZiGuang
	SchemeABC
	SchemeXiaoHe
	SchemePinyinPlusPlus
)

// ShuangpinTable maps the two keystrokes of a Double-Pinyin syllable to
// full-Pinyin initials and finals.
type ShuangpinTable struct {
	Name    string
	Shengmu map[rune]string
	Yunmu   map[rune]string
	Special map[rune]string
}

var singleCharInitials = map[rune]string{
	'b': "b", 'p': "p", 'm': "m", 'f': "f", 'd': "d", 't': "t", 'n': "n", 'l': "l",
	'g': "g", 'k': "k", 'h': "h", 'j': "j", 'q': "q", 'x': "x",
	'z': "z", 'c': "c", 's': "s", 'r': "r", 'y': "y", 'w': "w",
}

// ShuangpinTableFor returns the key mapping table for scheme.
func ShuangpinTableFor(scheme ShuangpinScheme) ShuangpinTable {
	special := map[rune]string{'a': "a", 'e': "e", 'o': "o"}
	vowels := map[rune]string{'a': "a", 'o': "o", 'e': "e", 'i': "i", 'u': "u", 'v': "v"}

	switch scheme {
	case SchemeMicrosoft:
		return ShuangpinTable{
			Name:    "Microsoft",
			Shengmu: map[rune]string{'u': "sh", 'i': "ch", 'v': "zh"},
			Yunmu: mergeYunmu(vowels, map[rune]string{
				'b': "ou", 'c': "iao", 'd': "uang", 'f': "en", 'g': "eng", 'h': "ang",
				'j': "an", 'k': "ao", 'l': "ai", 'm': "ian", 'n': "in", 'p': "un",
				'q': "iu", 'r': "uan", 's': "ong", 't': "ue", 'w': "ia", 'x': "ie",
				'y': "uai", 'z': "ei",
			}),
			Special: special,
		}
	case SchemeZiRanMa:
		return ShuangpinTable{
			Name:    "ZiRanMa",
			Shengmu: map[rune]string{'u': "sh", 'i': "ch", 'v': "zh"},
			Yunmu: mergeYunmu(vowels, map[rune]string{
				'b': "ia", 'c': "ua", 'd': "ao", 'f': "an", 'g': "ang", 'h': "iang",
				'j': "ian", 'k': "uai", 'l': "uan", 'm': "in", 'n': "iao", 'p': "ie",
				'q': "iu", 'r': "er", 's': "ong", 't': "ue", 'w': "en", 'x': "uang",
				'y': "ing", 'z': "ou",
			}),
			Special: special,
		}
	case SchemeZiGuang:
		return ShuangpinTable{
			Name:    "ZiGuang",
			Shengmu: map[rune]string{'u': "sh", 'i': "ch", 'v': "zh"},
			Yunmu: mergeYunmu(vowels, map[rune]string{
				'b': "ia", 'c': "uan", 'd': "ao", 'f': "en", 'g': "eng", 'h': "ang",
				'j': "an", 'k': "uai", 'l': "ai", 'm': "ian", 'n': "in", 'p': "iao",
				'q': "iu", 'r': "er", 's': "ong", 't': "ue", 'w': "ei", 'x': "ie",
				'y': "un", 'z': "ou",
			}),
			Special: special,
		}
	case SchemeABC:
		return ShuangpinTable{
			Name:    "ABC",
			Shengmu: map[rune]string{'a': "zh", 'e': "ch", 'v': "sh"},
			Yunmu: mergeYunmu(vowels, map[rune]string{
				'b': "ou", 'c': "in", 'd': "ia", 'f': "en", 'g': "eng", 'h': "ang",
				'j': "an", 'k': "ao", 'l': "ai", 'm': "ian", 'n': "iao", 'p': "ie",
				'q': "iu", 'r': "uan", 's': "ong", 't': "ue", 'w': "ei", 'x': "uai",
				'y': "ing", 'z': "un",
			}),
			Special: special,
		}
	case SchemeXiaoHe:
		return ShuangpinTable{
			Name:    "XiaoHe",
			Shengmu: map[rune]string{'u': "sh", 'i': "ch", 'v': "zh"},
			Yunmu: mergeYunmu(vowels, map[rune]string{
				'b': "ou", 'c': "iao", 'd': "uang", 'f': "en", 'g': "eng", 'h': "ang",
				'j': "an", 'k': "ao", 'l': "ai", 'm': "ian", 'n': "in", 'p': "un",
				'q': "iu", 'r': "uan", 's': "iong", 't': "ue", 'w': "ei", 'x': "ie",
				'y': "uai", 'z': "ou",
			}),
			Special: special,
		}
	case SchemePinyinPlusPlus:
		return ShuangpinTable{
			Name:    "PinYin++",
			Shengmu: map[rune]string{'u': "sh", 'i': "ch", 'v': "zh"},
			Yunmu: mergeYunmu(vowels, map[rune]string{
				'b': "ou", 'c': "iao", 'd': "uang", 'f': "en", 'g': "eng", 'h': "ang",
				'j': "an", 'k': "ao", 'l': "ai", 'm': "ian", 'n': "in", 'p': "un",
				'q': "iu", 'r': "uan", 's': "ong", 't': "ve", 'w': "ia", 'x': "ua",
				'y': "ing", 'z': "ei",
			}),
			Special: special,
		}
	default:
		return ShuangpinTableFor(SchemeMicrosoft)
	}
}

func mergeYunmu(base, extra map[rune]string) map[rune]string {
	out := make(map[rune]string, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

// DoubleToFullPinyin converts one Shuangpin (2-key) syllable to its full
// Pinyin form, or returns ok=false if the key pair is invalid for scheme.
func DoubleToFullPinyin(first, second rune, scheme ShuangpinTable) (string, bool) {
	if first == second {
		if syl, ok := scheme.Special[first]; ok {
			return syl, true
		}
	}
	if first < 'a' || first > 'z' || second < 'a' || second > 'z' {
		return "", false
	}

	var initial string
	switch {
	case scheme.Shengmu[first] != "":
		initial = scheme.Shengmu[first]
	case isVowel(first):
		initial = ""
	default:
		init, ok := singleCharInitials[first]
		if !ok {
			return "", false
		}
		initial = init
	}

	final, ok := scheme.Yunmu[second]
	if !ok {
		return "", false
	}
	return initial + final, true
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'v':
		return true
	}
	return false
}

// ConvertShuangpin converts a raw Shuangpin keystroke stream to full Pinyin,
// consuming input two runes at a time. On a conversion miss mid-stream it
// returns raw unchanged so the caller can fall back to standard Pinyin
// segmentation instead of emitting a partially converted string.
func ConvertShuangpin(scheme ShuangpinScheme, raw string) string {
	runes := []rune(raw)
	table := ShuangpinTableFor(scheme)

	var out []rune
	i := 0
	for i < len(runes) {
		if runes[i] == ' ' || runes[i] == '\'' {
			out = append(out, runes[i])
			i++
			continue
		}
		if i+1 >= len(runes) {
			return raw
		}
		syl, ok := DoubleToFullPinyin(runes[i], runes[i+1], table)
		if !ok {
			return raw
		}
		out = append(out, []rune(syl)...)
		i += 2
	}
	return string(out)
}
