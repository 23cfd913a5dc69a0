package trie

import "testing"

func TestBasicInsertAndContains(t *testing.T) {
	tr := New()
	tr.Insert("ni")
	tr.Insert("hao")
	tr.Insert("nihao")

	if !tr.ContainsWord("ni") || !tr.ContainsWord("hao") || !tr.ContainsWord("nihao") {
		t.Fatal("expected all inserted words to be contained")
	}
	if tr.ContainsWord("n") || tr.ContainsWord("ha") || tr.ContainsWord("niha") {
		t.Fatal("partial prefixes should not be contained")
	}
}

func TestWalkPrefixesBasic(t *testing.T) {
	tr := New()
	tr.Insert("ni")
	tr.Insert("hao")

	input := []rune("nihao")

	m := tr.WalkPrefixes(input, 0)
	if len(m) != 1 || m[0].EndIndex != 2 || m[0].Text != "ni" {
		t.Fatalf("unexpected result at pos 0: %+v", m)
	}

	m = tr.WalkPrefixes(input, 2)
	if len(m) != 1 || m[0].EndIndex != 5 || m[0].Text != "hao" {
		t.Fatalf("unexpected result at pos 2: %+v", m)
	}
}

func TestWalkPrefixesMultipleMatches(t *testing.T) {
	tr := New()
	tr.Insert("n")
	tr.Insert("ni")
	tr.Insert("nih")

	input := []rune("nihao")
	m := tr.WalkPrefixes(input, 0)
	if len(m) != 3 {
		t.Fatalf("expected 3 matches, got %d: %+v", len(m), m)
	}
	if m[0].Text != "n" || m[0].EndIndex != 1 {
		t.Errorf("match 0 = %+v", m[0])
	}
	if m[1].Text != "ni" || m[1].EndIndex != 2 {
		t.Errorf("match 1 = %+v", m[1])
	}
	if m[2].Text != "nih" || m[2].EndIndex != 3 {
		t.Errorf("match 2 = %+v", m[2])
	}
}

func TestWalkPrefixesNoMatch(t *testing.T) {
	tr := New()
	tr.Insert("ni")
	tr.Insert("hao")

	input := []rune("xihao")
	if m := tr.WalkPrefixes(input, 0); len(m) != 0 {
		t.Fatalf("expected no matches, got %+v", m)
	}
}

func TestUnicodeZhuyin(t *testing.T) {
	tr := New()
	tr.Insert("ㄋㄧˇ")
	tr.Insert("ㄏㄠˇ")

	if !tr.ContainsWord("ㄋㄧˇ") || !tr.ContainsWord("ㄏㄠˇ") {
		t.Fatal("expected zhuyin syllables to be contained")
	}

	input := []rune("ㄋㄧˇㄏㄠˇ")
	m := tr.WalkPrefixes(input, 0)
	if len(m) != 1 || m[0].Text != "ㄋㄧˇ" {
		t.Fatalf("unexpected zhuyin walk result: %+v", m)
	}
}

func TestFindCompletion(t *testing.T) {
	tr := New()
	tr.Insert("zh")
	tr.Insert("zhi")
	tr.Insert("zhong")
	tr.Insert("zi")

	got := tr.FindCompletion("zh")
	if len(got) != 3 {
		t.Fatalf("expected 3 completions for 'zh', got %d: %v", len(got), got)
	}
}
