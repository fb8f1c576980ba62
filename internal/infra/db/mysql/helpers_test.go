package mysql

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func timeValue() time.Time {
	return time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
}

// fakeScan mimics sql.Rows.Scan over a fixed row, converting each source
// value to the destination's type the way the driver would.
func fakeScan(fields []interface{}) scanFunc {
	return func(dest ...interface{}) error {
		if len(dest) != len(fields) {
			return fmt.Errorf("scan arity mismatch: %d dest, %d fields", len(dest), len(fields))
		}
		for i, d := range dest {
			dv := reflect.ValueOf(d).Elem()
			sv := reflect.ValueOf(fields[i])
			if !sv.Type().ConvertibleTo(dv.Type()) {
				return fmt.Errorf("field %d: cannot convert %s to %s", i, sv.Type(), dv.Type())
			}
			dv.Set(sv.Convert(dv.Type()))
		}
		return nil
	}
}

func TestStringOrDash(t *testing.T) {
	assert.Equal(t, "-", stringOrDash(""))
	assert.Equal(t, "-", stringOrDash("   "))
	assert.Equal(t, "x", stringOrDash("x"))
}
