package core

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Kind identifies which variant a Value currently holds.
type Kind uint8

const (
	// KindInt holds a signed 64-bit integer.
	KindInt Kind = iota
	// KindFloat holds a double-precision float.
	KindFloat
	// KindString holds a UTF-8 string.
	KindString
	// KindBool holds a boolean.
	KindBool
	// KindIntArray holds a slice of signed 64-bit integers.
	KindIntArray
	// KindFloatArray holds a slice of doubles.
	KindFloatArray
	// KindStringArray holds a slice of strings.
	KindStringArray
	// KindBoolArray holds a slice of booleans.
	KindBoolArray
)

// Value is a tagged union over the scalar and array variants a Vertex field
// or Edge metadata entry can carry. Equality is structural: two Values are
// equal only if their Kind matches and their contents match byte-for-byte
// (strings) or element-for-element (arrays). Copy always produces an
// independent deep copy of any owned array buffer.
type Value struct {
	kind Kind

	i   int64
	f   float64
	s   string
	b   bool
	ia  []int64
	fa  []float64
	sa  []string
	ba  []bool
}

// NewIntValue constructs a KindInt Value.
func NewIntValue(v int64) Value { return Value{kind: KindInt, i: v} }

// NewFloatValue constructs a KindFloat Value.
func NewFloatValue(v float64) Value { return Value{kind: KindFloat, f: v} }

// NewStringValue constructs a KindString Value.
func NewStringValue(v string) Value { return Value{kind: KindString, s: v} }

// NewBoolValue constructs a KindBool Value.
func NewBoolValue(v bool) Value { return Value{kind: KindBool, b: v} }

// NewIntArrayValue constructs a KindIntArray Value, copying the input slice.
func NewIntArrayValue(v []int64) Value {
	return Value{kind: KindIntArray, ia: append([]int64(nil), v...)}
}

// NewFloatArrayValue constructs a KindFloatArray Value, copying the input slice.
func NewFloatArrayValue(v []float64) Value {
	return Value{kind: KindFloatArray, fa: append([]float64(nil), v...)}
}

// NewStringArrayValue constructs a KindStringArray Value, copying the input slice.
func NewStringArrayValue(v []string) Value {
	return Value{kind: KindStringArray, sa: append([]string(nil), v...)}
}

// NewBoolArrayValue constructs a KindBoolArray Value, copying the input slice.
func NewBoolArrayValue(v []bool) Value {
	return Value{kind: KindBoolArray, ba: append([]bool(nil), v...)}
}

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// Int returns the KindInt payload and ErrTypeMismatch if v is not KindInt.
func (v Value) Int() (int64, error) {
	if v.kind != KindInt {
		return 0, ErrTypeMismatch
	}
	return v.i, nil
}

// Float returns the KindFloat payload and ErrTypeMismatch if v is not KindFloat.
func (v Value) Float() (float64, error) {
	if v.kind != KindFloat {
		return 0, ErrTypeMismatch
	}
	return v.f, nil
}

// String returns the KindString payload and ErrTypeMismatch if v is not KindString.
func (v Value) String() (string, error) {
	if v.kind != KindString {
		return "", ErrTypeMismatch
	}
	return v.s, nil
}

// Bool returns the KindBool payload and ErrTypeMismatch if v is not KindBool.
func (v Value) Bool() (bool, error) {
	if v.kind != KindBool {
		return false, ErrTypeMismatch
	}
	return v.b, nil
}

// IntArray returns a deep copy of the KindIntArray payload.
func (v Value) IntArray() ([]int64, error) {
	if v.kind != KindIntArray {
		return nil, ErrTypeMismatch
	}
	return append([]int64(nil), v.ia...), nil
}

// FloatArray returns a deep copy of the KindFloatArray payload.
func (v Value) FloatArray() ([]float64, error) {
	if v.kind != KindFloatArray {
		return nil, ErrTypeMismatch
	}
	return append([]float64(nil), v.fa...), nil
}

// StringArray returns a deep copy of the KindStringArray payload.
func (v Value) StringArray() ([]string, error) {
	if v.kind != KindStringArray {
		return nil, ErrTypeMismatch
	}
	return append([]string(nil), v.sa...), nil
}

// BoolArray returns a deep copy of the KindBoolArray payload.
func (v Value) BoolArray() ([]bool, error) {
	if v.kind != KindBoolArray {
		return nil, ErrTypeMismatch
	}
	return append([]bool(nil), v.ba...), nil
}

// Equal reports structural equality. Values of differing Kind are never equal.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindInt:
		return v.i == o.i
	case KindFloat:
		return v.f == o.f
	case KindString:
		return v.s == o.s
	case KindBool:
		return v.b == o.b
	case KindIntArray:
		return int64SliceEqual(v.ia, o.ia)
	case KindFloatArray:
		return float64SliceEqual(v.fa, o.fa)
	case KindStringArray:
		return stringSliceEqual(v.sa, o.sa)
	case KindBoolArray:
		return boolSliceEqual(v.ba, o.ba)
	default:
		return false
	}
}

// Copy returns an independent deep copy of v.
func (v Value) Copy() Value {
	switch v.kind {
	case KindIntArray:
		return NewIntArrayValue(v.ia)
	case KindFloatArray:
		return NewFloatArrayValue(v.fa)
	case KindStringArray:
		return NewStringArrayValue(v.sa)
	case KindBoolArray:
		return NewBoolArrayValue(v.ba)
	default:
		return v
	}
}

// hashContribution returns the raw-byte FNV-1a contribution a Value makes to
// calculate_vertex_hash, mirroring the C switch over GraphserverValue: each
// scalar hashes its own raw bytes once, while arrays hash their size first
// and then, if non-empty, their packed element bytes, XORed together before
// the caller folds the result into the vertex's running accumulator. The C
// type tag itself is hashed separately by the caller, not here.
func (v Value) hashContribution() uint64 {
	switch v.kind {
	case KindInt:
		return hashBytes(uint64Bytes(uint64(v.i)))
	case KindFloat:
		return hashBytes(uint64Bytes(math.Float64bits(v.f)))
	case KindBool:
		if v.b {
			return hashBytes([]byte{1})
		}
		return hashBytes([]byte{0})
	case KindString:
		if v.s == "" {
			return 0
		}
		return hashBytes([]byte(v.s))
	case KindIntArray:
		h := hashBytes(uint64Bytes(uint64(len(v.ia))))
		if len(v.ia) > 0 {
			buf := make([]byte, 8*len(v.ia))
			for i, x := range v.ia {
				binary.LittleEndian.PutUint64(buf[i*8:], uint64(x))
			}
			h ^= hashBytes(buf)
		}
		return h
	case KindFloatArray:
		h := hashBytes(uint64Bytes(uint64(len(v.fa))))
		if len(v.fa) > 0 {
			buf := make([]byte, 8*len(v.fa))
			for i, x := range v.fa {
				binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(x))
			}
			h ^= hashBytes(buf)
		}
		return h
	case KindBoolArray:
		h := hashBytes(uint64Bytes(uint64(len(v.ba))))
		if len(v.ba) > 0 {
			buf := make([]byte, len(v.ba))
			for i, x := range v.ba {
				if x {
					buf[i] = 1
				}
			}
			h ^= hashBytes(buf)
		}
		return h
	case KindStringArray:
		h := hashBytes(uint64Bytes(uint64(len(v.sa))))
		for _, s := range v.sa {
			if s != "" {
				h ^= hashBytes([]byte(s))
			}
		}
		return h
	default:
		return 0
	}
}

func uint64Bytes(v uint64) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, v)
	return buf
}

// string renders a debug form of v for Vertex.String(); it plays no part in
// hashing (see hashContribution).
func (v Value) string() string {
	switch v.kind {
	case KindInt:
		return fmt.Sprintf("i:%d", v.i)
	case KindFloat:
		return fmt.Sprintf("f:%v", v.f)
	case KindString:
		return fmt.Sprintf("s:%s", v.s)
	case KindBool:
		return fmt.Sprintf("b:%t", v.b)
	case KindIntArray:
		return fmt.Sprintf("ia:%v", v.ia)
	case KindFloatArray:
		return fmt.Sprintf("fa:%v", v.fa)
	case KindStringArray:
		return fmt.Sprintf("sa:%v", v.sa)
	case KindBoolArray:
		return fmt.Sprintf("ba:%v", v.ba)
	default:
		return ""
	}
}

func int64SliceEqual(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func float64SliceEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func stringSliceEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func boolSliceEqual(a, b []bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
