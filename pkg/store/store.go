// Package store implements the domain store: named, ordered record
// collections persisted as obfuscated blobs in a key/value backend.
//
// All writes to a collection are serialized through a per-collection mutex so
// read-modify-write sequences (append, update, delete) cannot interleave
// within one process. Two separate processes writing the same collection
// still race as last-writer-wins; the store provides no optimistic
// concurrency control. This is an accepted limitation of the replace-all
// write model, not an oversight.
package store

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/nexus-lab/frontdesk/pkg/codec"
	"github.com/nexus-lab/frontdesk/pkg/domain/interfaces"
	"github.com/nexus-lab/frontdesk/pkg/domain/types"
	"github.com/nexus-lab/frontdesk/pkg/utils/logging"
)

// Store owns every persisted collection. No component reads raw blobs past
// it; construct one and inject it, there is no ambient singleton.
type Store struct {
	kv    interfaces.BlobStore
	codec *codec.Codec

	mu    sync.Mutex
	locks map[types.Collection]*sync.Mutex
}

func New(kv interfaces.BlobStore, c *codec.Codec) *Store {
	return &Store{
		kv:    kv,
		codec: c,
		locks: make(map[types.Collection]*sync.Mutex),
	}
}

// lockFor returns the write mutex of a collection, creating it on first use.
func (s *Store) lockFor(col types.Collection) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[col]
	if !ok {
		l = &sync.Mutex{}
		s.locks[col] = l
	}
	return l
}

// Close closes the underlying blob store.
func (s *Store) Close() error {
	return s.kv.Close()
}

// Read returns all records of a collection, newest first. An absent key and
// an undecodable blob are treated identically: both yield an empty
// collection. Decode failures are logged, never surfaced.
func Read[T any](ctx context.Context, s *Store, col types.Collection) ([]T, error) {
	blob, ok, err := s.kv.Get(ctx, col.Key())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read collection", goerr.V("collection", col))
	}
	if !ok {
		return []T{}, nil
	}

	var records []T
	if err := s.codec.Decode(string(blob), &records); err != nil {
		logging.From(ctx).Warn("discarding undecodable collection",
			"collection", col.String(),
			"error", err.Error(),
		)
		return []T{}, nil
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// WriteAll atomically replaces the whole collection.
func WriteAll[T any](ctx context.Context, s *Store, col types.Collection, records []T) error {
	blob, err := s.codec.Encode(records)
	if err != nil {
		return goerr.Wrap(err, "failed to encode collection", goerr.V("collection", col))
	}
	if err := s.kv.Set(ctx, col.Key(), []byte(blob)); err != nil {
		return goerr.Wrap(err, "failed to write collection", goerr.V("collection", col))
	}
	return nil
}

// Append prepends one record to the collection.
func Append[T any](ctx context.Context, s *Store, col types.Collection, record T) error {
	return BulkAppend(ctx, s, col, []T{record})
}

// BulkAppend prepends records to the collection, preserving their order.
func BulkAppend[T any](ctx context.Context, s *Store, col types.Collection, records []T) error {
	l := s.lockFor(col)
	l.Lock()
	defer l.Unlock()

	existing, err := Read[T](ctx, s, col)
	if err != nil {
		return err
	}
	return WriteAll(ctx, s, col, append(records, existing...))
}

// UpdateWhere replaces every record matching the predicate with the given
// record and reports whether anything changed. A non-matching predicate is a
// no-op, not an error.
func UpdateWhere[T any](ctx context.Context, s *Store, col types.Collection, match func(*T) bool, record T) (bool, error) {
	l := s.lockFor(col)
	l.Lock()
	defer l.Unlock()

	existing, err := Read[T](ctx, s, col)
	if err != nil {
		return false, err
	}

	updated := false
	for i := range existing {
		if match(&existing[i]) {
			existing[i] = record
			updated = true
		}
	}
	if !updated {
		return false, nil
	}
	return true, WriteAll(ctx, s, col, existing)
}

// DeleteWhere removes every record matching the predicate and reports
// whether anything was removed.
func DeleteWhere[T any](ctx context.Context, s *Store, col types.Collection, match func(*T) bool) (bool, error) {
	l := s.lockFor(col)
	l.Lock()
	defer l.Unlock()

	existing, err := Read[T](ctx, s, col)
	if err != nil {
		return false, err
	}

	kept := existing[:0]
	for i := range existing {
		if !match(&existing[i]) {
			kept = append(kept, existing[i])
		}
	}
	if len(kept) == len(existing) {
		return false, nil
	}
	return true, WriteAll(ctx, s, col, kept)
}
