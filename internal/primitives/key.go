package primitives

import (
	"errors"
	"fmt"
	"math"
	"reflect"
)

var (
	ErrNilKey        = errors.New("nil cannot be a table key")
	ErrNaNKey        = errors.New("NaN cannot be a table key")
	ErrUnhashableKey = errors.New("key type is not comparable")
)

// Normalize canonicalizes a key before it touches table storage.
// Every integer width collapses to int64 so that table[int8(2)] and
// table[2] land on the same entry; floats with an integral value collapse
// the same way. Keys the engine cannot hash are rejected here, never silently
// dropped downstream.
func Normalize(key any) (any, error) {
	if key == nil {
		return nil, ErrNilKey
	}

	switch k := key.(type) {
	case int:
		return int64(k), nil
	case int8:
		return int64(k), nil
	case int16:
		return int64(k), nil
	case int32:
		return int64(k), nil
	case int64:
		return k, nil
	case uint:
		if uint64(k) > math.MaxInt64 {
			return uint64(k), nil
		}
		return int64(k), nil
	case uint8:
		return int64(k), nil
	case uint16:
		return int64(k), nil
	case uint32:
		return int64(k), nil
	case uint64:
		if k > math.MaxInt64 {
			return k, nil
		}
		return int64(k), nil
	case float32:
		return normalizeFloat(float64(k))
	case float64:
		return normalizeFloat(k)
	}

	if !reflect.TypeOf(key).Comparable() {
		return nil, fmt.Errorf("%w: %T", ErrUnhashableKey, key)
	}
	return key, nil
}

func normalizeFloat(f float64) (any, error) {
	if math.IsNaN(f) {
		return nil, ErrNaNKey
	}
	if f == math.Trunc(f) && f >= math.MinInt64 && f <= math.MaxInt64 {
		return int64(f), nil
	}
	return f, nil
}

// SequenceIndex reports whether a normalized key is a valid 1-based sequence
// position, and returns it when so.
func SequenceIndex(key any) (int64, bool) {
	i, ok := key.(int64)
	if !ok || i < 1 {
		return 0, false
	}
	return i, true
}
