package editor

import (
	"encoding/json"
	"maps"
	"math"
	"slices"
	"strconv"

	"github.com/spf13/cast"

	"github.com/jsamuelsen11/go-draft-service/internal/domain"
)

// Type messages reported by Apply.
const (
	MsgUnknownProperty = "unknown property"
	MsgWantString      = "must be a string"
	MsgWantInteger     = "must be an integer"
)

// assignment is a checked change waiting to be applied.
type assignment func()

// converter checks a raw value and returns the assignment for it, or a
// message describing why the value has the wrong type.
type converter func(raw any) (assignment, string)

// apply checks every change against setters and, when all pass, runs the
// assignments in key order.
func apply(changes map[string]any, setters map[string]converter) error {
	v := domain.Violations{}
	pending := make([]assignment, 0, len(changes))

	for _, name := range slices.Sorted(maps.Keys(changes)) {
		conv, ok := setters[name]
		if !ok {
			v.Add(name, MsgUnknownProperty)
			continue
		}
		a, msg := conv(changes[name])
		if msg != "" {
			v.Add(name, msg)
			continue
		}
		pending = append(pending, a)
	}

	if err := v.Err(); err != nil {
		return err
	}
	for _, a := range pending {
		a()
	}
	return nil
}

func stringSetter(set func(string)) converter {
	return func(raw any) (assignment, string) {
		s, ok := raw.(string)
		if !ok {
			return nil, MsgWantString
		}
		return func() { set(s) }, ""
	}
}

func intSetter(set func(int64)) converter {
	return func(raw any) (assignment, string) {
		n, ok := toInt64(raw)
		if !ok {
			return nil, MsgWantInteger
		}
		return func() { set(n) }, ""
	}
}

// optionalIntSetter accepts null as "no value".
func optionalIntSetter(set func(*int64)) converter {
	return func(raw any) (assignment, string) {
		if raw == nil {
			return func() { set(nil) }, ""
		}
		n, ok := toInt64(raw)
		if !ok {
			return nil, MsgWantInteger
		}
		return func() { set(&n) }, ""
	}
}

// toInt64 accepts Go integers, whole floats and json.Number values (as
// decoded from JSON) and base-10 strings. Booleans are not numbers here, and
// nothing that would change value on the way to int64 is accepted.
func toInt64(raw any) (int64, bool) {
	switch v := raw.(type) {
	case bool, nil:
		return 0, false
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		return n, err == nil
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n, true
		}
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt64(f)
	case float64:
		return floatToInt64(v)
	case float32:
		return floatToInt64(float64(v))
	case uint, uint64:
		if cast.ToUint64(v) > math.MaxInt64 {
			return 0, false
		}
	}
	n, err := cast.ToInt64E(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

// floatToInt64 converts whole floats in int64 range. 2^63 itself is out of
// range even though it is exactly representable.
func floatToInt64(f float64) (int64, bool) {
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}
