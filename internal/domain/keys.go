package domain

import "fmt"

// ServerID identifies a registered server. Valid ids are non-negative.
type ServerID int

// KeyPair holds the two keys registered for a server.
type KeyPair struct {
	ServerKey uint16 `json:"server_key"`
	ClientKey uint16 `json:"client_key"`
}

func (p KeyPair) String() string {
	return fmt.Sprintf("server_key=%d client_key=%d", p.ServerKey, p.ClientKey)
}

// KeyValue is a raw key as read from configuration, before range checking. It accepts
// decimal or prefixed (0x, 0o, 0b) notation.
type KeyValue int64

// ServerKeys is a single registry row from configuration.
type ServerKeys struct {
	ServerID  ServerID `mapstructure:"server_id"`
	ServerKey KeyValue `mapstructure:"server_key"`
	ClientKey KeyValue `mapstructure:"client_key"`
}
