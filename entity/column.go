package entity

import (
	"github.com/viant/xunsafe"
	"reflect"
	"unsafe"
)

//Column represents entity column
type Column struct {
	Name     string
	Field    *xunsafe.Field //nil for descriptor only columns
	Type     reflect.Type
	Role     Role
	Identity bool //database assigned key
}

//IsKey returns true for key column
func (c *Column) IsKey() bool {
	return c.Role == RoleKey
}

//IsComputed returns true for database computed column
func (c *Column) IsComputed() bool {
	return c.Role == RoleComputed
}

//Value returns column value of struct pointed by ptr
func (c *Column) Value(ptr unsafe.Pointer) interface{} {
	return c.Field.Value(ptr)
}

//Addr returns pointer to column field of struct pointed by ptr
func (c *Column) Addr(ptr unsafe.Pointer) interface{} {
	return c.Field.Addr(ptr)
}

//Columns represents entity columns
type Columns []*Column

//Names returns column names
func (c Columns) Names() []string {
	var result = make([]string, len(c))
	for i, column := range c {
		result[i] = column.Name
	}
	return result
}

//Keys returns key columns
func (c Columns) Keys() Columns {
	var result Columns
	for _, column := range c {
		if column.IsKey() {
			result = append(result, column)
		}
	}
	return result
}
