package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/nexus-lab/frontdesk/pkg/codec"
	"github.com/nexus-lab/frontdesk/pkg/domain/interfaces"
	"github.com/nexus-lab/frontdesk/pkg/kvs/file"
	"github.com/nexus-lab/frontdesk/pkg/kvs/firestore"
	"github.com/nexus-lab/frontdesk/pkg/kvs/memory"
	"github.com/nexus-lab/frontdesk/pkg/store"
	"github.com/urfave/cli/v3"
)

// Store holds configuration for the domain store backend
type Store struct {
	backend             string
	dir                 string
	firestoreProjectID  string
	firestoreDatabaseID string
	secret              string // never logged; LogAttrs reports only whether one is set
	seedFile            string
}

// Flags returns CLI flags for store configuration
func (s *Store) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "store-backend",
			Usage:       "Blob store backend (memory, file, firestore)",
			Value:       "memory",
			Sources:     cli.EnvVars("FRONTDESK_STORE_BACKEND"),
			Destination: &s.backend,
		},
		&cli.StringFlag{
			Name:        "store-dir",
			Usage:       "Directory for the file backend",
			Value:       "./data",
			Sources:     cli.EnvVars("FRONTDESK_STORE_DIR"),
			Destination: &s.dir,
		},
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Firestore project ID for the firestore backend",
			Sources:     cli.EnvVars("FRONTDESK_FIRESTORE_PROJECT_ID"),
			Destination: &s.firestoreProjectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Usage:       "Firestore database ID for the firestore backend",
			Sources:     cli.EnvVars("FRONTDESK_FIRESTORE_DATABASE_ID"),
			Destination: &s.firestoreDatabaseID,
		},
		&cli.StringFlag{
			Name:        "store-secret",
			Usage:       "Secret for record blob obfuscation",
			Sources:     cli.EnvVars("FRONTDESK_STORE_SECRET"),
			Destination: &s.secret,
		},
		&cli.StringFlag{
			Name:        "seed-file",
			Usage:       "TOML file overriding the built-in seed data",
			Sources:     cli.EnvVars("FRONTDESK_SEED_FILE"),
			Destination: &s.seedFile,
		},
	}
}

// LogAttrs returns log attributes for the store configuration
func (s *Store) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.String("backend", s.backend),
		slog.String("dir", s.dir),
		slog.String("firestore_project_id", s.firestoreProjectID),
		slog.Bool("custom_secret", s.secret != ""),
		slog.String("seed_file", s.seedFile),
	}
}

// Configure builds the domain store, seeds absent collections and runs the
// plan migration.
func (s *Store) Configure(ctx context.Context) (*store.Store, error) {
	var kv interfaces.BlobStore
	var err error

	switch s.backend {
	case "memory":
		kv = memory.New()
	case "file":
		kv, err = file.New(s.dir)
		if err != nil {
			return nil, err
		}
	case "firestore":
		if s.firestoreProjectID == "" {
			return nil, goerr.New("firestore-project-id is required for firestore backend")
		}
		kv, err = firestore.New(ctx, s.firestoreProjectID, s.firestoreDatabaseID)
		if err != nil {
			return nil, err
		}
	default:
		return nil, goerr.New("invalid store backend", goerr.V("backend", s.backend))
	}

	var codecOpts []codec.Option
	if s.secret != "" {
		codecOpts = append(codecOpts, codec.WithSecret(s.secret))
	}

	db := store.New(kv, codec.New(codecOpts...))

	var seed *store.SeedData
	if s.seedFile != "" {
		seed, err = store.LoadSeedFile(s.seedFile)
		if err != nil {
			return nil, err
		}
	}
	if err := db.Initialize(ctx, seed); err != nil {
		_ = db.Close()
		return nil, goerr.Wrap(err, "failed to initialize domain store")
	}

	return db, nil
}
