package value

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"github.com/google/uuid"
)

// Bytes is a byte-sequence value, used for both fixed and binary columns.
type Bytes []byte

func (b Bytes) isValue() {}
func (b Bytes) Equal(v Value) bool {
	other, ok := v.(Bytes)
	return ok && bytes.Equal(other, b)
}
func (b Bytes) String() string {
	return base64.StdEncoding.EncodeToString(b)
}
func (b Bytes) Clone() Value {
	clone := make(Bytes, len(b))
	copy(clone, b)
	return clone
}

func BytesFromString(s string) (Bytes, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("can not parse bytes from '%s': %v", s, err)
	}
	return Bytes(raw), nil
}

type UUID uuid.UUID

func UUIDFromString(s string) (UUID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("can not parse uuid from '%s': %v", s, err)
	}
	return UUID(u), nil
}

func (u UUID) isValue() {}
func (u UUID) Equal(v Value) bool {
	other, ok := v.(UUID)
	return ok && other == u
}
func (u UUID) String() string {
	return uuid.UUID(u).String()
}
func (u UUID) Clone() Value {
	return u
}
