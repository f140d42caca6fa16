// Package grpcapi exposes the catalogue over gRPC. Messages travel as JSON
// through a custom codec, so the wire structs below are plain Go types with
// json tags rather than generated code.
package grpcapi

import "encoding/json"

// CodecName identifies the JSON codec in grpc content subtypes.
const CodecName = "json"

// JSONCodec implements grpc/encoding.Codec over encoding/json.
type JSONCodec struct{}

func (JSONCodec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (JSONCodec) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func (JSONCodec) Name() string {
	return CodecName
}
