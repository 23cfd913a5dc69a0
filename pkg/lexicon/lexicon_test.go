package lexicon

import (
	"path/filepath"
	"testing"
)

func TestInsertAndLookup(t *testing.T) {
	lx := New()
	lx.Insert("nihao", "你好", 1)
	lx.Insert("nihao", "你号", 2)

	res := lx.Lookup("nihao")
	if len(res) != 2 {
		t.Fatalf("expected 2 phrases, got %d: %v", len(res), res)
	}
}

func TestDuplicateInsertIncrementsFreq(t *testing.T) {
	lx := New()
	lx.Insert("k", "x", 1)
	lx.Insert("k", "x", 3)

	entries := lx.LookupEntries("k")
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Freq != 4 {
		t.Fatalf("expected freq 4, got %d", entries[0].Freq)
	}
}

func TestSaveAndLoadRoundtrip(t *testing.T) {
	lx := New()
	lx.Insert("a", "甲", 5)
	lx.Insert("b", "乙", 2)

	path := filepath.Join(t.TempDir(), "lexicon.msgpack")
	if err := lx.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Len() != 2 {
		t.Fatalf("expected 2 keys, got %d", loaded.Len())
	}
	if got := loaded.Lookup("a"); len(got) != 1 || got[0] != "甲" {
		t.Fatalf("lookup a -> %v", got)
	}
}

func TestRemovePhrase(t *testing.T) {
	lx := New()
	lx.Insert("k", "x", 1)

	if !lx.RemovePhrase("k", "x") {
		t.Fatal("expected removal to succeed")
	}
	if got := lx.Lookup("k"); len(got) != 0 {
		t.Fatalf("expected empty bucket after removal, got %v", got)
	}
}

func TestLoadDemo(t *testing.T) {
	lx := LoadDemo()
	if lx.IsEmpty() {
		t.Fatal("expected demo lexicon to be non-empty")
	}
	if got := lx.Lookup("zhongguo"); len(got) != 2 {
		t.Fatalf("zhongguo -> %v", got)
	}
}
