package userdict

import (
	"encoding/binary"
	"fmt"

	"go.etcd.io/bbolt"
)

var (
	phraseBucket = []byte("user_dict")
	bigramBucket = []byte("bigram")
)

// BoltUserDict is a persistent, ACID-backed frequency table using bbolt.
// Phrase frequencies live in the "user_dict" bucket; personalized word
// bigram counts live in the "bigram" bucket keyed as "word1\x00word2".
type BoltUserDict struct {
	db *bbolt.DB
}

// OpenBoltUserDict creates or opens a bbolt database at path, ensuring
// both buckets exist.
func OpenBoltUserDict(path string) (*BoltUserDict, error) {
	db, err := bbolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("open userdict: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(phraseBucket); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists(bigramBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init userdict buckets: %w", err)
	}

	return &BoltUserDict{db: db}, nil
}

// Close closes the underlying database.
func (b *BoltUserDict) Close() error {
	return b.db.Close()
}

func encodeUint64(v uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, v)
	return buf
}

func decodeUint64(buf []byte) uint64 {
	if len(buf) != 8 {
		return 0
	}
	return binary.BigEndian.Uint64(buf)
}

// Learn increments phrase's frequency by 1.
func (b *BoltUserDict) Learn(phrase string) {
	b.LearnWithCount(phrase, 1)
}

// LearnWithCount increments phrase's frequency by delta within a single
// write transaction: begin-write, read current, saturating-add, commit.
func (b *BoltUserDict) LearnWithCount(phrase string, delta uint64) {
	if delta == 0 {
		return
	}
	_ = b.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(phraseBucket)
		cur := decodeUint64(bucket.Get([]byte(phrase)))
		return bucket.Put([]byte(phrase), encodeUint64(saturatingAdd(cur, delta)))
	})
}

// Frequency returns phrase's learned frequency, or 0 if never learned.
func (b *BoltUserDict) Frequency(phrase string) uint64 {
	var freq uint64
	_ = b.db.View(func(tx *bbolt.Tx) error {
		freq = decodeUint64(tx.Bucket(phraseBucket).Get([]byte(phrase)))
		return nil
	})
	return freq
}

// Snapshot returns every learned phrase and its frequency.
func (b *BoltUserDict) Snapshot() map[string]uint64 {
	out := make(map[string]uint64)
	_ = b.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(phraseBucket).ForEach(func(k, v []byte) error {
			out[string(k)] = decodeUint64(v)
			return nil
		})
	})
	return out
}

// IterAll returns every (phrase, frequency) entry.
func (b *BoltUserDict) IterAll() []Entry {
	var out []Entry
	_ = b.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(phraseBucket).ForEach(func(k, v []byte) error {
			out = append(out, Entry{Phrase: string(k), Count: decodeUint64(v)})
			return nil
		})
	})
	return out
}

func bigramKey(word1, word2 string) []byte {
	return []byte(word1 + "\x00" + word2)
}

// LearnBigram increments the personalized count of word2 following word1.
func (b *BoltUserDict) LearnBigram(word1, word2 string, delta uint64) {
	if delta == 0 {
		return
	}
	_ = b.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bigramBucket)
		key := bigramKey(word1, word2)
		cur := decodeUint64(bucket.Get(key))
		return bucket.Put(key, encodeUint64(saturatingAdd(cur, delta)))
	})
}

// BigramFrequency returns the personalized count of word2 following word1.
func (b *BoltUserDict) BigramFrequency(word1, word2 string) uint64 {
	var freq uint64
	_ = b.db.View(func(tx *bbolt.Tx) error {
		freq = decodeUint64(tx.Bucket(bigramBucket).Get(bigramKey(word1, word2)))
		return nil
	})
	return freq
}
