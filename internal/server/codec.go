package server

import (
	"connectrpc.com/connect"
	"github.com/goccy/go-json"
)

// jsonCodec lets connect carry plain Go structs as application/json.
type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}

// WithJSON is required on both handlers and clients of the history service.
func WithJSON() connect.Option {
	return connect.WithCodec(jsonCodec{})
}
