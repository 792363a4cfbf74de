// Package pairing combines the name hash and key registry for the pairing handshake.
//
// The two values are returned side by side. How a hash is combined with a server's keys
// into an authentication value belongs to the protocol using this package.
package pairing

import (
	"context"
	"log/slog"

	"github.com/leighmacdonald/pairhash/internal/domain"
	"github.com/leighmacdonald/pairhash/internal/keys"
	"github.com/leighmacdonald/pairhash/pkg/namehash"
)

// Result holds the hash of a client name and the keys of the server it pairs with.
type Result struct {
	Name     string          `json:"name"`
	Hash     namehash.Hash   `json:"hash"`
	ServerID domain.ServerID `json:"server_id"`
	Keys     domain.KeyPair  `json:"keys"`
}

type Service struct {
	registry *keys.Registry
	metrics  *Metrics
}

// New creates a pairing service. metrics may be nil.
func New(registry *keys.Registry, metrics *Metrics) *Service {
	return &Service{registry: registry, metrics: metrics}
}

func (s *Service) Hash(name string) namehash.Hash {
	s.metrics.hashed()

	return namehash.FromName(name)
}

// Keys returns the key pair registered for serverID.
func (s *Service) Keys(ctx context.Context, serverID domain.ServerID) (domain.KeyPair, error) {
	pair, errLookup := s.registry.Lookup(serverID)
	s.metrics.lookedUp(errLookup == nil)

	if errLookup != nil {
		slog.DebugContext(ctx, "Key lookup failed", slog.Int("server_id", int(serverID)))

		return domain.KeyPair{}, errLookup
	}

	return pair, nil
}

// Pair hashes name and looks up the keys for serverID.
func (s *Service) Pair(ctx context.Context, name string, serverID domain.ServerID) (Result, error) {
	hash := s.Hash(name)

	pair, errKeys := s.Keys(ctx, serverID)
	if errKeys != nil {
		return Result{}, errKeys
	}

	slog.DebugContext(ctx, "Paired client", slog.String("name", name),
		slog.String("hash", hash.String()), slog.Int("server_id", int(serverID)))

	return Result{Name: name, Hash: hash, ServerID: serverID, Keys: pair}, nil
}

// Servers returns every registered server.
func (s *Service) Servers() []keys.Entry {
	return s.registry.Entries()
}
