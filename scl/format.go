package scl

import (
	"fmt"
	"strings"
)

// String renders the vector as "{a, b, c}" for debugging and logging.
// This is not a serialization format; there is no matching parser.
func (v Vec[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, x := range v.data {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", x)
	}
	sb.WriteByte('}')
	return sb.String()
}

// String renders the mask as "{1, 0, 1}" with one digit per lane.
func (m Mask[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, bit := range m.bits {
		if i > 0 {
			sb.WriteString(", ")
		}
		if bit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	sb.WriteByte('}')
	return sb.String()
}

// Scan implements fmt.Scanner, reading one whitespace-separated scalar per
// lane into an already-sized vector. It reads raw values only and does not
// parse the String rendering back. The lanes are replaced wholesale on
// success, so other copies of the vector are unaffected; on error the
// vector keeps its previous lanes.
func (v *Vec[T]) Scan(state fmt.ScanState, verb rune) error {
	data := make([]T, len(v.data))
	for i := range data {
		tok, err := state.Token(true, nil)
		if err != nil {
			return err
		}
		if _, err := fmt.Sscan(string(tok), &data[i]); err != nil {
			return fmt.Errorf("scl: scan lane %d: %w", i, err)
		}
	}
	v.data = data
	return nil
}
