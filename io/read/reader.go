package read

import (
	"database/sql"
	"fmt"
	"github.com/viant/sqlgen/entity"
	"reflect"
	"unsafe"
)

//RowMapper returns scan targets for a record pointer, and a function applying nullable values after scan
type RowMapper func(ptr unsafe.Pointer) ([]interface{}, func())

//NewStructMapper creates a row mapper for entity columns, unmatched result columns are discarded
func NewStructMapper(columns []string, ent *entity.Entity) (RowMapper, error) {
	var matched = make([]*entity.Column, len(columns))
	matchedCount := 0
	for i, name := range columns {
		if column, ok := ent.Column(name); ok && column.Field != nil {
			matched[i] = column
			matchedCount++
		}
	}
	if matchedCount == 0 && len(columns) > 0 {
		return nil, fmt.Errorf("failed to match any %v field for columns: %v", ent.Type, columns)
	}
	var scanners = make([]func(ptr unsafe.Pointer) (interface{}, func()), len(columns))
	for i, column := range matched {
		scanners[i] = newScanner(column)
	}
	record := make([]interface{}, len(columns))
	var applies []func()
	return func(ptr unsafe.Pointer) ([]interface{}, func()) {
		applies = applies[:0]
		for i, scanner := range scanners {
			var apply func()
			record[i], apply = scanner(ptr)
			if apply != nil {
				applies = append(applies, apply)
			}
		}
		return record, func() {
			for _, apply := range applies {
				apply()
			}
		}
	}, nil
}

var scannerType = reflect.TypeOf((*sql.Scanner)(nil)).Elem()

func newScanner(column *entity.Column) func(ptr unsafe.Pointer) (interface{}, func()) {
	if column == nil {
		return func(ptr unsafe.Pointer) (interface{}, func()) {
			return new(interface{}), nil
		}
	}
	fieldType := column.Type
	if fieldType.Kind() == reflect.Ptr || reflect.PtrTo(fieldType).Implements(scannerType) {
		return func(ptr unsafe.Pointer) (interface{}, func()) {
			return column.Addr(ptr), nil
		}
	}
	//NULL leaves field zero value
	return func(ptr unsafe.Pointer) (interface{}, func()) {
		holder := reflect.New(reflect.PtrTo(fieldType))
		return holder.Interface(), func() {
			if value := holder.Elem(); !value.IsNil() {
				reflect.ValueOf(column.Addr(ptr)).Elem().Set(value.Elem())
			}
		}
	}
}

//All reads all rows into T, T is an entity struct or pointer to it
func All[T any](rows *sql.Rows, ent *entity.Entity) ([]T, error) {
	var result []T
	err := each[T](rows, ent, func(item T) bool {
		result = append(result, item)
		return true
	})
	return result, err
}

//First reads the first row, returns false if there was none
func First[T any](rows *sql.Rows, ent *entity.Entity) (T, bool, error) {
	var result T
	found := false
	err := each[T](rows, ent, func(item T) bool {
		result = item
		found = true
		return false
	})
	return result, found, err
}

func each[T any](rows *sql.Rows, ent *entity.Entity, emit func(item T) bool) error {
	columns, err := rows.Columns()
	if err != nil {
		return err
	}
	mapper, err := NewStructMapper(columns, ent)
	if err != nil {
		return err
	}
	recordType := reflect.TypeOf((*T)(nil)).Elem()
	isPtr := recordType.Kind() == reflect.Ptr
	structType := recordType
	if isPtr {
		structType = recordType.Elem()
	}
	if structType != ent.Type {
		return fmt.Errorf("invalid record type: %v, expected: %v", recordType, ent.Type)
	}
	for rows.Next() {
		holder := reflect.New(structType)
		ptr := unsafe.Pointer(holder.Pointer())
		targets, apply := mapper(ptr)
		if err = rows.Scan(targets...); err != nil {
			return fmt.Errorf("failed to scan %v: %w", ent.Name(), err)
		}
		apply()
		var item T
		if isPtr {
			item = holder.Interface().(T)
		} else {
			item = holder.Elem().Interface().(T)
		}
		if !emit(item) {
			break
		}
	}
	return rows.Err()
}
