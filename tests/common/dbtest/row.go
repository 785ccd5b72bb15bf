//go:build unit || e2e

package dbtest

import (
	"fmt"
	"reflect"
)

// Row is a pgx.Row that copies fixed values into Scan destinations.
type Row struct {
	Values []any
	Err    error
}

func (r Row) Scan(dest ...any) error {
	if r.Err != nil {
		return r.Err
	}
	if len(dest) != len(r.Values) {
		return fmt.Errorf("dbtest: scan of %d columns into %d destinations", len(r.Values), len(dest))
	}
	for i, d := range dest {
		if r.Values[i] == nil {
			continue
		}
		dv := reflect.ValueOf(d)
		if dv.Kind() != reflect.Pointer || dv.IsNil() {
			return fmt.Errorf("dbtest: destination %d is not a pointer", i)
		}
		sv := reflect.ValueOf(r.Values[i])
		if !sv.Type().AssignableTo(dv.Elem().Type()) {
			return fmt.Errorf("dbtest: column %d: %s not assignable to %s", i, sv.Type(), dv.Elem().Type())
		}
		dv.Elem().Set(sv)
	}
	return nil
}
