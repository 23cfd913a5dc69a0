package parser

import "strings"

// wadeGilesConsonants maps Wade-Giles consonant prefixes to Pinyin,
// longest prefix first so aspirated forms are matched before their
// unaspirated counterparts.
var wadeGilesConsonants = []struct{ from, to string }{
	{"ch'", "q"},
	{"ts'", "c"},
	{"ch", "zh"},
	{"ts", "z"},
	{"hs", "x"},
	{"p'", "p"},
	{"t'", "t"},
	{"k'", "k"},
	{"j", "r"},
	{"p", "b"},
	{"t", "d"},
	{"k", "g"},
}

// wadeGilesExceptions are whole-syllable conversions checked before any
// consonant or final rewrite is attempted.
var wadeGilesExceptions = map[string]string{
	"chi":      "zhi",
	"ch'i":     "qi",
	"hsi":      "xi",
	"ssu":      "si",
	"tzu":      "zi",
	"tz'u":     "ci",
	"erh":      "er",
	"jih":      "ri",
	"peiching": "beijing",
	"peijing":  "beijing",
	"beijing":  "beijing",
	"ching":    "jing",
	"ch'ing":   "qing",
	"chang":    "zhang",
	"tsung":    "zong",
	"hsin":     "xin",
	"tien":     "tian",
	"ko":       "ke",
	"k'o":      "ke",
	"ieh":      "ie",
	"ueh":      "ue",
	"ien":      "ian",
	"un":       "uen",
}

// WadeGilesToPinyin converts a single Wade-Giles syllable to Pinyin,
// checking whole-syllable exceptions before falling back to consonant
// and final rewrites.
func WadeGilesToPinyin(syllable string) string {
	input := strings.ToLower(syllable)

	if pinyin, ok := wadeGilesExceptions[input]; ok {
		return pinyin
	}

	result := input
	for _, rule := range wadeGilesConsonants {
		if strings.HasPrefix(result, rule.from) {
			result = rule.to + result[len(rule.from):]
			break
		}
	}

	result = strings.ReplaceAll(result, "ien", "ian")
	result = strings.ReplaceAll(result, "ung", "ong")
	result = strings.ReplaceAll(result, "iung", "iong")
	return result
}

// WadeGilesInputToPinyin converts a whole Wade-Giles input string to
// Pinyin, splitting on spaces and hyphens and converting each syllable
// independently while preserving the delimiters.
func WadeGilesInputToPinyin(input string) string {
	var out strings.Builder
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			out.WriteString(WadeGilesToPinyin(current.String()))
			current.Reset()
		}
	}

	for _, r := range input {
		switch r {
		case ' ', '-':
			flush()
			out.WriteRune(r)
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return out.String()
}
