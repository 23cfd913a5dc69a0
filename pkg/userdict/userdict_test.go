package userdict

import (
	"path/filepath"
	"testing"
)

func TestInMemoryLearnAndFrequency(t *testing.T) {
	d := NewInMemoryUserDict()
	if d.Frequency("你好") != 0 {
		t.Fatal("expected 0 frequency before learning")
	}
	d.Learn("你好")
	if d.Frequency("你好") != 1 {
		t.Fatalf("expected 1, got %d", d.Frequency("你好"))
	}
	d.LearnWithCount("你好", 4)
	if d.Frequency("你好") != 5 {
		t.Fatalf("expected 5, got %d", d.Frequency("你好"))
	}
}

func TestInMemoryMerge(t *testing.T) {
	a := NewInMemoryUserDict()
	b := NewInMemoryUserDict()
	a.LearnWithCount("a", 2)
	b.LearnWithCount("a", 3)
	b.LearnWithCount("b", 1)

	a.MergeFrom(b)
	if a.Frequency("a") != 5 {
		t.Fatalf("expected 5, got %d", a.Frequency("a"))
	}
	if a.Frequency("b") != 1 {
		t.Fatalf("expected 1, got %d", a.Frequency("b"))
	}
}

func TestMergeIntoAcrossBackends(t *testing.T) {
	a := NewInMemoryUserDict()
	b := NewInMemoryUserDict()
	b.LearnWithCount("x", 2)
	b.LearnWithCount("y", 3)

	MergeInto(a, b)
	if a.Frequency("x") != 2 || a.Frequency("y") != 3 {
		t.Fatalf("unexpected merge result: x=%d y=%d", a.Frequency("x"), a.Frequency("y"))
	}
}

func TestBoltUserDictLearnAndFrequency(t *testing.T) {
	path := filepath.Join(t.TempDir(), "userdict.bbolt")
	db, err := OpenBoltUserDict(path)
	if err != nil {
		t.Fatalf("OpenBoltUserDict: %v", err)
	}
	defer db.Close()

	db.Learn("你好")
	db.LearnWithCount("你好", 4)
	if got := db.Frequency("你好"); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
	if got := db.Frequency("missing"); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestBoltUserDictBigram(t *testing.T) {
	path := filepath.Join(t.TempDir(), "userdict.bbolt")
	db, err := OpenBoltUserDict(path)
	if err != nil {
		t.Fatalf("OpenBoltUserDict: %v", err)
	}
	defer db.Close()

	db.LearnBigram("今天", "上海", 3)
	db.LearnBigram("今天", "上海", 2)
	if got := db.BigramFrequency("今天", "上海"); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
}

func TestBoltUserDictPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "userdict.bbolt")
	db, err := OpenBoltUserDict(path)
	if err != nil {
		t.Fatalf("OpenBoltUserDict: %v", err)
	}
	db.Learn("持久")
	db.Close()

	reopened, err := OpenBoltUserDict(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	if got := reopened.Frequency("持久"); got != 1 {
		t.Fatalf("expected 1 after reopen, got %d", got)
	}
}
