package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/notify-lab/herald/pkg/domain/interfaces"
	"github.com/notify-lab/herald/pkg/repository"
)

// Storage holds delivery log storage configuration
type Storage struct {
	Driver            string
	SQLitePath        string
	FirestoreProject  string
	FirestoreDatabase string
}

// Flags returns CLI flags for Storage configuration
func (s *Storage) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "storage-driver",
			Usage:       "Delivery log backend (memory, sqlite, firestore)",
			Category:    "Storage",
			Value:       "memory",
			Sources:     cli.EnvVars("HERALD_STORAGE_DRIVER"),
			Destination: &s.Driver,
		},
		&cli.StringFlag{
			Name:        "sqlite-path",
			Usage:       "Path to the SQLite database file",
			Category:    "Storage",
			Value:       "herald.db",
			Sources:     cli.EnvVars("HERALD_SQLITE_PATH"),
			Destination: &s.SQLitePath,
		},
		&cli.StringFlag{
			Name:        "firestore-project",
			Usage:       "GCP project ID for Firestore",
			Category:    "Storage",
			Sources:     cli.EnvVars("HERALD_FIRESTORE_PROJECT"),
			Destination: &s.FirestoreProject,
		},
		&cli.StringFlag{
			Name:        "firestore-database",
			Usage:       "Firestore database ID",
			Category:    "Storage",
			Value:       "(default)",
			Sources:     cli.EnvVars("HERALD_FIRESTORE_DATABASE"),
			Destination: &s.FirestoreDatabase,
		},
	}
}

// Configure creates the configured delivery log repository
func (s *Storage) Configure(ctx context.Context) (interfaces.Repository, error) {
	logger := ctxlog.From(ctx)

	switch s.Driver {
	case "", "memory":
		logger.Warn("Using in-memory delivery log. Logged attempts will be lost on shutdown")
		return repository.NewMemory(), nil

	case "sqlite":
		repo, err := repository.NewSQLite(ctx, s.SQLitePath)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to init sqlite",
				goerr.V("path", s.SQLitePath),
			)
		}
		return repo, nil

	case "firestore":
		if s.FirestoreProject == "" {
			return nil, goerr.New("firestore-project is required for the firestore driver")
		}
		repo, err := repository.NewFirestore(ctx, s.FirestoreProject, s.FirestoreDatabase)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to init firestore",
				goerr.V("project", s.FirestoreProject),
				goerr.V("database", s.FirestoreDatabase),
			)
		}
		return repo, nil

	default:
		return nil, goerr.New("unknown storage driver", goerr.V("driver", s.Driver))
	}
}

// LogValue returns structured log value
func (s Storage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("driver", s.Driver),
		slog.String("sqlitePath", s.SQLitePath),
		slog.String("firestoreProject", s.FirestoreProject),
		slog.String("firestoreDatabase", s.FirestoreDatabase),
	)
}
