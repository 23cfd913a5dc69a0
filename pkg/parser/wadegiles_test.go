package parser

import "testing"

func TestWadeGilesAspiratedConsonants(t *testing.T) {
	cases := map[string]string{
		"ch'ing": "qing",
		"p'ing":  "ping",
		"t'ien":  "tian",
		"k'o":    "ke",
		"ts'ao":  "cao",
	}
	for in, want := range cases {
		if got := WadeGilesToPinyin(in); got != want {
			t.Fatalf("%q -> %q, want %q", in, got, want)
		}
	}
}

func TestWadeGilesUnaspiratedConsonants(t *testing.T) {
	cases := map[string]string{
		"chang": "zhang",
		"tsung": "zong",
		"hsin":  "xin",
	}
	for in, want := range cases {
		if got := WadeGilesToPinyin(in); got != want {
			t.Fatalf("%q -> %q, want %q", in, got, want)
		}
	}
}

func TestWadeGilesSyllableExceptions(t *testing.T) {
	cases := map[string]string{
		"chi": "zhi",
		"hsi": "xi",
		"tzu": "zi",
		"erh": "er",
		"jih": "ri",
	}
	for in, want := range cases {
		if got := WadeGilesToPinyin(in); got != want {
			t.Fatalf("%q -> %q, want %q", in, got, want)
		}
	}
}

func TestWadeGilesInputConversion(t *testing.T) {
	cases := map[string]string{
		"pei-ching":  "bei-jing",
		"chung-kuo":  "zhong-guo",
		"ch'ing-hua": "qing-hua",
		"ni hao ma":  "ni hao ma",
	}
	for in, want := range cases {
		if got := WadeGilesInputToPinyin(in); got != want {
			t.Fatalf("%q -> %q, want %q", in, got, want)
		}
	}
}

func TestWadeGilesPassthroughPinyin(t *testing.T) {
	for _, s := range []string{"ni", "hao", "ma"} {
		if got := WadeGilesToPinyin(s); got != s {
			t.Fatalf("%q should pass through unchanged, got %q", s, got)
		}
	}
}

func TestWadeGilesCaseInsensitive(t *testing.T) {
	if got := WadeGilesToPinyin("CH'ING"); got != "qing" {
		t.Fatalf("CH'ING -> %q, want qing", got)
	}
}
