package protobuf

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// Message is implemented by every Geyser wire type.
//
// Size reports the exact encoded length and MarshalAppend appends exactly
// Size bytes, so Marshal allocates once.
type Message interface {
	Size() int
	MarshalAppend(b []byte) []byte
	Unmarshal(b []byte) error
}

// Marshal encodes m into a buffer sized up front
func Marshal(m Message) []byte {
	return m.MarshalAppend(make([]byte, 0, m.Size()))
}

// WireTypeError is returned when a known field arrives with an unexpected wire type
type WireTypeError struct {
	Message string
	Field   protowire.Number
	Type    protowire.Type
}

func (e *WireTypeError) Error() string {
	return fmt.Sprintf("%s: field %d has unexpected wire type %d", e.Message, e.Field, e.Type)
}

// rangeFields calls f for every field of b. val holds the raw field value.
func rangeFields(b []byte, f func(num protowire.Number, typ protowire.Type, val []byte) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		m := protowire.ConsumeFieldValue(num, typ, b)
		if m < 0 {
			return protowire.ParseError(m)
		}
		if err := f(num, typ, b[:m]); err != nil {
			return err
		}
		b = b[m:]
	}
	return nil
}

type field struct {
	msg string
	num protowire.Number
	typ protowire.Type
	val []byte
}

func (f field) varint() (uint64, error) {
	if f.typ != protowire.VarintType {
		return 0, &WireTypeError{Message: f.msg, Field: f.num, Type: f.typ}
	}
	v, n := protowire.ConsumeVarint(f.val)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	return v, nil
}

func (f field) uint64() (uint64, error) {
	return f.varint()
}

func (f field) int64() (int64, error) {
	v, err := f.varint()
	return int64(v), err
}

func (f field) int32() (int32, error) {
	v, err := f.varint()
	return int32(v), err
}

func (f field) uint32() (uint32, error) {
	v, err := f.varint()
	return uint32(v), err
}

func (f field) bool() (bool, error) {
	v, err := f.varint()
	return protowire.DecodeBool(v), err
}

func (f field) bytes() ([]byte, error) {
	if f.typ != protowire.BytesType {
		return nil, &WireTypeError{Message: f.msg, Field: f.num, Type: f.typ}
	}
	v, n := protowire.ConsumeBytes(f.val)
	if n < 0 {
		return nil, protowire.ParseError(n)
	}
	// non-nil even when empty: nil marks an absent optional field
	return append(make([]byte, 0, len(v)), v...), nil
}

func (f field) string() (string, error) {
	v, err := f.bytes()
	return string(v), err
}

func (f field) message(m Message) error {
	v, err := f.bytes()
	if err != nil {
		return err
	}
	return m.Unmarshal(v)
}

// decode walks b and hands every field to f wrapped with the message name used in errors
func decode(msg string, b []byte, f func(fd field) error) error {
	err := rangeFields(b, func(num protowire.Number, typ protowire.Type, val []byte) error {
		return f(field{msg: msg, num: num, typ: typ, val: val})
	})
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", msg, err)
	}
	return nil
}

// size helpers; scalar fields with the zero value are omitted

func sizeVarint(num protowire.Number, v uint64) int {
	if v == 0 {
		return 0
	}
	return protowire.SizeTag(num) + protowire.SizeVarint(v)
}

func sizeBool(num protowire.Number, v bool) int {
	if !v {
		return 0
	}
	return protowire.SizeTag(num) + 1
}

func sizeBytes(num protowire.Number, v []byte) int {
	if len(v) == 0 {
		return 0
	}
	return protowire.SizeTag(num) + protowire.SizeBytes(len(v))
}

func sizeString(num protowire.Number, v string) int {
	if v == "" {
		return 0
	}
	return protowire.SizeTag(num) + protowire.SizeBytes(len(v))
}

// sizeEmbedded is the size of a present message field of encoded length n
func sizeEmbedded(num protowire.Number, n int) int {
	return protowire.SizeTag(num) + protowire.SizeBytes(n)
}

// append helpers mirroring the size helpers

func appendVarint(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendVarintAlways(b []byte, num protowire.Number, v uint64) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendBool(b []byte, num protowire.Number, v bool) []byte {
	if !v {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, 1)
}

func appendBytes(b []byte, num protowire.Number, v []byte) []byte {
	if len(v) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

func appendBytesAlways(b []byte, num protowire.Number, v []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

func appendString(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

func appendEmbedded(b []byte, num protowire.Number, m Message) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	b = protowire.AppendVarint(b, uint64(m.Size()))
	return m.MarshalAppend(b)
}

// optional helpers: presence is carried by the pointer, the zero value is still written

func sizeOptVarint(num protowire.Number, v *uint64) int {
	if v == nil {
		return 0
	}
	return protowire.SizeTag(num) + protowire.SizeVarint(*v)
}

func appendOptVarint(b []byte, num protowire.Number, v *uint64) []byte {
	if v == nil {
		return b
	}
	return appendVarintAlways(b, num, *v)
}

func sizeOptBool(num protowire.Number, v *bool) int {
	if v == nil {
		return 0
	}
	return protowire.SizeTag(num) + 1
}

func appendOptBool(b []byte, num protowire.Number, v *bool) []byte {
	if v == nil {
		return b
	}
	return appendVarintAlways(b, num, protowire.EncodeBool(*v))
}

func sizeOptBytes(num protowire.Number, v []byte) int {
	if v == nil {
		return 0
	}
	return protowire.SizeTag(num) + protowire.SizeBytes(len(v))
}

func appendOptBytes(b []byte, num protowire.Number, v []byte) []byte {
	if v == nil {
		return b
	}
	return appendBytesAlways(b, num, v)
}

func sizeOptString(num protowire.Number, v *string) int {
	if v == nil {
		return 0
	}
	return protowire.SizeTag(num) + protowire.SizeBytes(len(*v))
}

func appendOptString(b []byte, num protowire.Number, v *string) []byte {
	if v == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, *v)
}

func sizeStrings(num protowire.Number, vs []string) int {
	n := 0
	for _, v := range vs {
		n += protowire.SizeTag(num) + protowire.SizeBytes(len(v))
	}
	return n
}

func appendStrings(b []byte, num protowire.Number, vs []string) []byte {
	for _, v := range vs {
		b = protowire.AppendTag(b, num, protowire.BytesType)
		b = protowire.AppendString(b, v)
	}
	return b
}

// int32 and enum values are sign extended to 64 bits on the wire
func int32Wire(v int32) uint64 {
	return uint64(int64(v))
}
