package param

import (
	"github.com/viant/sqlgen/entity"
	"github.com/viant/sqlgen/io/errx"
	"github.com/viant/xunsafe"
	"reflect"
	"sort"
	"sync"
	"unsafe"
)

//Filter represents column role filter, computed columns are always excluded
type Filter struct {
	IncludeKeyColumns bool
}

//Accept returns true if role passes the filter
func (f Filter) Accept(role entity.Role) bool {
	switch role {
	case entity.RoleComputed:
		return false
	case entity.RoleKey:
		return f.IncludeKeyColumns
	}
	return true
}

var structColumns sync.Map

//Extract returns value parameters in enumeration order filtered by entity column roles.
//It returns empty parameter error when value has no members at all, value filtered down to no members returns empty set.
func Extract(value interface{}, ent *entity.Entity, filter Filter) (Set, error) {
	switch actual := value.(type) {
	case nil:
		return nil, emptyParameter(ent)
	case *Bag:
		if actual.Len() == 0 {
			return nil, emptyParameter(ent)
		}
		var result = make(Set, 0, actual.Len())
		for _, name := range actual.Names() {
			if filter.Accept(ent.Role(name)) {
				item, _ := actual.Get(name)
				result = append(result, Param{Name: name, Value: item})
			}
		}
		return result, nil
	case Set:
		if len(actual) == 0 {
			return nil, emptyParameter(ent)
		}
		var result = make(Set, 0, len(actual))
		for _, item := range actual {
			if filter.Accept(ent.Role(item.Name)) {
				result = append(result, item)
			}
		}
		return result, nil
	case map[string]interface{}:
		if len(actual) == 0 {
			return nil, emptyParameter(ent)
		}
		names := make([]string, 0, len(actual))
		for name := range actual {
			names = append(names, name)
		}
		sort.Strings(names)
		var result = make(Set, 0, len(actual))
		for _, name := range names {
			if filter.Accept(ent.Role(name)) {
				result = append(result, Param{Name: name, Value: actual[name]})
			}
		}
		return result, nil
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Map:
		return extractMap(rValue, ent, filter)
	case reflect.Ptr:
		if rValue.IsNil() {
			return nil, emptyParameter(ent)
		}
		if rValue.Elem().Kind() != reflect.Struct {
			return Extract(rValue.Elem().Interface(), ent, filter)
		}
		return extractStruct(rValue.Type().Elem(), xunsafe.AsPointer(value), ent, filter)
	case reflect.Struct:
		holder := reflect.New(rValue.Type())
		holder.Elem().Set(rValue)
		return extractStruct(rValue.Type(), xunsafe.AsPointer(holder.Interface()), ent, filter)
	}
	return nil, emptyParameter(ent)
}

//Names returns extracted parameter names
func Names(value interface{}, ent *entity.Entity, filter Filter) ([]string, error) {
	params, err := Extract(value, ent, filter)
	if err != nil {
		return nil, err
	}
	return params.Names(), nil
}

func extractStruct(t reflect.Type, ptr unsafe.Pointer, ent *entity.Entity, filter Filter) (Set, error) {
	columns := columnsOf(t)
	if len(columns) == 0 {
		return nil, emptyParameter(ent)
	}
	var result = make(Set, 0, len(columns))
	for _, column := range columns {
		role := column.Role
		if ent != nil {
			if target, ok := ent.Column(column.Name); ok {
				role = target.Role
			}
		}
		if !filter.Accept(role) {
			continue
		}
		result = append(result, Param{Name: column.Name, Value: column.Value(ptr)})
	}
	return result, nil
}

func extractMap(rValue reflect.Value, ent *entity.Entity, filter Filter) (Set, error) {
	if rValue.Type().Key().Kind() != reflect.String || rValue.Len() == 0 {
		return nil, emptyParameter(ent)
	}
	keys := rValue.MapKeys()
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].String() < keys[j].String()
	})
	var result = make(Set, 0, len(keys))
	for _, key := range keys {
		name := key.String()
		if filter.Accept(ent.Role(name)) {
			result = append(result, Param{Name: name, Value: rValue.MapIndex(key).Interface()})
		}
	}
	return result, nil
}

func columnsOf(t reflect.Type) entity.Columns {
	if cached, ok := structColumns.Load(t); ok {
		return cached.(entity.Columns)
	}
	columns := entity.StructColumns(t)
	structColumns.Store(t, columns)
	return columns
}

func emptyParameter(ent *entity.Entity) error {
	table := ""
	if ent != nil {
		table = ent.Name()
	}
	return errx.EmptyParameter("extract", table)
}
