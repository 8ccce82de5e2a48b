// Copyright (c) 2025 A Bit of Help, Inc.

package main

import "encoding/json"

// jsonCodec replaces grpc-go's built-in protobuf codec with a plain JSON
// one. Registering it under the name "proto" (jsonCodec.Name) makes
// grpc-go use it for every call that doesn't negotiate an explicit
// content-subtype, which is how this server avoids depending on generated
// protobuf message types for a handful of plain request/response structs.
type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return "proto"
}
