// Package keys holds the registry of key pairs assigned to each server.
package keys

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"

	"github.com/leighmacdonald/pairhash/internal/domain"
	"golang.org/x/exp/constraints"
)

// Seed values of the built-in registry.
const (
	DefaultServerID  domain.ServerID = 0
	DefaultServerKey uint16          = 23019
	DefaultClientKey uint16          = 32037
)

// Entry is a single server and its key pair.
type Entry struct {
	ServerID domain.ServerID
	Keys     domain.KeyPair
}

// Registry maps server ids to their key pair. It is populated once on construction and
// never modified afterwards, so it may be shared between goroutines without locking.
type Registry struct {
	pairs map[domain.ServerID]domain.KeyPair
}

// NewRegistry creates a registry from a copy of pairs.
func NewRegistry(pairs map[domain.ServerID]domain.KeyPair) (*Registry, error) {
	for serverID := range pairs {
		if errServerID := CheckServerID(serverID); errServerID != nil {
			return nil, errServerID
		}
	}

	return &Registry{pairs: maps.Clone(pairs)}, nil
}

// Default returns the registry with only the built-in server entry.
func Default() *Registry {
	return &Registry{pairs: map[domain.ServerID]domain.KeyPair{
		DefaultServerID: {ServerKey: DefaultServerKey, ClientKey: DefaultClientKey},
	}}
}

// FromServerKeys builds a registry from configuration rows.
func FromServerKeys(rows []domain.ServerKeys) (*Registry, error) {
	pairs := make(map[domain.ServerID]domain.KeyPair, len(rows))

	for _, row := range rows {
		if _, found := pairs[row.ServerID]; found {
			return nil, fmt.Errorf("%w: %d", domain.ErrDuplicateServerID, row.ServerID)
		}

		serverKey, errServerKey := toKey(row.ServerKey)
		if errServerKey != nil {
			return nil, fmt.Errorf("server %d server_key: %w", row.ServerID, errServerKey)
		}

		clientKey, errClientKey := toKey(row.ClientKey)
		if errClientKey != nil {
			return nil, fmt.Errorf("server %d client_key: %w", row.ServerID, errClientKey)
		}

		pairs[row.ServerID] = domain.KeyPair{ServerKey: serverKey, ClientKey: clientKey}
	}

	return NewRegistry(pairs)
}

func inRange[T constraints.Integer](value T, minimum T, maximum T) bool {
	return value >= minimum && value <= maximum
}

func toKey(value domain.KeyValue) (uint16, error) {
	if !inRange(value, 0, math.MaxUint16) {
		return 0, fmt.Errorf("%w: %d", domain.ErrInvalidKey, value)
	}

	return uint16(value), nil
}

// CheckServerID returns domain.ErrInvalidServerID for negative ids.
func CheckServerID(serverID domain.ServerID) error {
	if !inRange(serverID, 0, math.MaxInt) {
		return fmt.Errorf("%w: %d", domain.ErrInvalidServerID, serverID)
	}

	return nil
}

// ParseServerID parses a decimal server id.
func ParseServerID(value string) (domain.ServerID, error) {
	serverID, errParse := strconv.Atoi(value)
	if errParse != nil {
		return 0, fmt.Errorf("%w: %s", domain.ErrInvalidServerID, value)
	}

	if errServerID := CheckServerID(domain.ServerID(serverID)); errServerID != nil {
		return 0, errServerID
	}

	return domain.ServerID(serverID), nil
}

// Lookup returns the key pair for serverID. Absent ids return domain.ErrUnknownServerID.
func (r *Registry) Lookup(serverID domain.ServerID) (domain.KeyPair, error) {
	pair, found := r.pairs[serverID]
	if !found {
		return domain.KeyPair{}, fmt.Errorf("%w: %d", domain.ErrUnknownServerID, serverID)
	}

	return pair, nil
}

// With returns a new registry holding every existing entry plus serverID. The receiver
// is not modified.
func (r *Registry) With(serverID domain.ServerID, pair domain.KeyPair) (*Registry, error) {
	if _, found := r.pairs[serverID]; found {
		return nil, fmt.Errorf("%w: %d", domain.ErrDuplicateServerID, serverID)
	}

	pairs := maps.Clone(r.pairs)
	if pairs == nil {
		pairs = map[domain.ServerID]domain.KeyPair{}
	}

	pairs[serverID] = pair

	return NewRegistry(pairs)
}

func (r *Registry) Len() int {
	return len(r.pairs)
}

// ServerIDs returns the registered ids in ascending order.
func (r *Registry) ServerIDs() []domain.ServerID {
	return slices.Sorted(maps.Keys(r.pairs))
}

// Entries returns every registered server ordered by id.
func (r *Registry) Entries() []Entry {
	serverIDs := r.ServerIDs()
	entries := make([]Entry, 0, len(serverIDs))

	for _, serverID := range serverIDs {
		entries = append(entries, Entry{ServerID: serverID, Keys: r.pairs[serverID]})
	}

	return entries
}
