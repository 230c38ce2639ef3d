// Package boltdb walks the key/value pairs of a bolt bucket in key order.
//
// A Bucket is only valid inside the bolt transaction it was opened in,
// and so are the byte slices its cursors read.
package boltdb

import (
	"bytes"
	"encoding/binary"

	"github.com/boltdb/bolt"

	"go.llib.dev/lazytake/pkg/errorkit"
	"go.llib.dev/lazytake/port/cursor"
)

const ErrBucketNotFound errorkit.Error = "ErrBucketNotFound"

// Entry is a key/value pair of a bucket.
type Entry struct {
	Key   []byte
	Value []byte
}

// Bucket is a bidirectional sequence over a bolt bucket.
// bolt only counts keys by walking every page, so a Bucket doesn't report its length.
// Use Sized to pay for the count once.
type Bucket struct {
	b *bolt.Bucket
}

var (
	_ cursor.Sequence[Entry, *Cursor] = Bucket{}
	_ cursor.Sequence[Entry, *Cursor] = SizedBucket{}
)

// Open looks up the named bucket in the transaction.
func Open(tx *bolt.Tx, name []byte) (Bucket, error) {
	b := tx.Bucket(name)
	if b == nil {
		return Bucket{}, ErrBucketNotFound.F("%q", name)
	}
	return Bucket{b: b}, nil
}

// View runs fn with the named bucket in a read-only transaction.
func View(db *bolt.DB, name []byte, fn func(Bucket) error) error {
	return db.View(func(tx *bolt.Tx) error {
		b, err := Open(tx, name)
		if err != nil {
			return err
		}
		return fn(b)
	})
}

// Store appends values to the named bucket under sequential keys, creating the bucket when needed.
func Store(db *bolt.DB, name []byte, values ...[]byte) error {
	return db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(name)
		if err != nil {
			return err
		}
		for _, v := range values {
			id, err := bucket.NextSequence()
			if err != nil {
				return err
			}
			if err := bucket.Put(Uint64Key(id), v); err != nil {
				return err
			}
		}
		return nil
	})
}

// Uint64Key returns an 8-byte big endian representation of v,
// which keeps numeric keys in numeric order.
func Uint64Key(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}

func (b Bucket) Begin() *Cursor {
	c := b.b.Cursor()
	k, v := c.First()
	return &Cursor{bucket: b.b, c: c, key: k, value: v}
}

func (b Bucket) End() cursor.Sentinel[*Cursor] {
	return end{}
}

func (b Bucket) Borrowed() bool { return true }

// Sized counts the keys of the bucket, walking all of its pages,
// and returns the bucket together with the count.
// The count stays valid as long as the bucket isn't written.
func (b Bucket) Sized() SizedBucket {
	return SizedBucket{Bucket: b, n: b.b.Stats().KeyN}
}

// SizedBucket is a Bucket with a known key count.
type SizedBucket struct {
	Bucket
	n int
}

func (b SizedBucket) Len() int { return b.n }

// Cursor points at a key of the bucket.
// The position past the last key has a nil key.
type Cursor struct {
	bucket *bolt.Bucket
	c      *bolt.Cursor
	key    []byte
	value  []byte
}

func (c *Cursor) Read() Entry {
	return Entry{Key: c.key, Value: c.value}
}

func (c *Cursor) Advance() {
	c.key, c.value = c.c.Next()
}

// Retreat steps back, from the past-the-end position it steps to the last key.
func (c *Cursor) Retreat() {
	if c.key == nil {
		c.key, c.value = c.c.Last()
		return
	}
	c.key, c.value = c.c.Prev()
}

// Clone opens a new bolt cursor on the same key.
func (c *Cursor) Clone() *Cursor {
	cl := &Cursor{bucket: c.bucket, c: c.bucket.Cursor()}
	if c.key != nil {
		cl.key, cl.value = cl.c.Seek(c.key)
	}
	return cl
}

func (c *Cursor) Equal(oth *Cursor) bool {
	if c.key == nil || oth.key == nil {
		return c.key == nil && oth.key == nil
	}
	return bytes.Equal(c.key, oth.key)
}

type end struct{}

func (end) Reached(c *Cursor) bool { return c.key == nil }
