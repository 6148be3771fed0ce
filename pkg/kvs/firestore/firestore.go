// Package firestore provides a Firestore-backed blob store: one document per
// collection key in a single Firestore collection.
package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/nexus-lab/frontdesk/pkg/domain/interfaces"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const defaultCollection = "kv"

type Firestore struct {
	client     *firestore.Client
	collection string
}

var _ interfaces.BlobStore = &Firestore{}

type Option func(*Firestore)

// WithCollection overrides the Firestore collection holding the blobs.
func WithCollection(name string) Option {
	return func(f *Firestore) {
		if name != "" {
			f.collection = name
		}
	}
}

type blobDoc struct {
	Blob      []byte    `firestore:"blob"`
	UpdatedAt time.Time `firestore:"updated_at"`
}

func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Firestore, error) {
	var client *firestore.Client
	var err error
	if databaseID == "" {
		client, err = firestore.NewClient(ctx, projectID)
	} else {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID),
		)
	}

	f := &Firestore{
		client:     client,
		collection: defaultCollection,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

func (f *Firestore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	snap, err := f.client.Collection(f.collection).Doc(key).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, goerr.Wrap(err, "failed to get blob document", goerr.V("key", key))
	}

	var doc blobDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, false, goerr.Wrap(err, "failed to decode blob document", goerr.V("key", key))
	}
	return doc.Blob, true, nil
}

func (f *Firestore) Set(ctx context.Context, key string, blob []byte) error {
	doc := blobDoc{
		Blob:      blob,
		UpdatedAt: time.Now().UTC(),
	}
	if _, err := f.client.Collection(f.collection).Doc(key).Set(ctx, doc); err != nil {
		return goerr.Wrap(err, "failed to set blob document", goerr.V("key", key))
	}
	return nil
}

func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}
