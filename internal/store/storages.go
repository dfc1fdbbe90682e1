package store

import (
	"context"
	"fmt"

	"github.com/ulmaulana/FHETalk-sub001/internal/config"
	"github.com/ulmaulana/FHETalk-sub001/internal/logger"
)

// ClientStorages groups the client-side persistence backends handed to the
// service layer.
type ClientStorages struct {
	// Signatures is the best-effort decryption-credential cache.
	Signatures SignatureStore

	// Messages is the local chain-message cache.
	Messages MessageRepository

	// Groups caches group metadata fetched from the contract.
	Groups GroupRepository
}

// NewClientStorages opens the local SQLite database, runs pending schema
// migrations and wires the repositories. An empty DSN selects an in-memory
// database, useful for throwaway sessions and tests.
func NewClientStorages(cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Msg("creating client storages...")

	dbCfg := cfg.DB
	if dbCfg.DSN == "" {
		dbCfg.DSN = ":memory:"
	}

	db, err := NewConnectSQLite(context.Background(), dbCfg, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Signatures: NewSQLiteSignatureStore(db, log),
		Messages:   NewMessageRepository(db, log),
		Groups:     NewGroupRepository(db, log),
	}, nil
}
