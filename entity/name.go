package entity

import (
	"fmt"
	"github.com/go-openapi/inflect"
	"reflect"
	"strings"
	"unicode"
)

//Tabler represents entity with explicit table name, i.e. "MySchema.ExampleTable2"
type Tabler interface {
	TableName() string
}

//Pluralizer derives default table name from entity type name
type Pluralizer func(name string) string

const (
	//NamingSuffix appends "s" to type name
	NamingSuffix = "suffix"
	//NamingInflect applies english pluralization rules
	NamingInflect = "inflect"
)

//Suffix appends "s"
func Suffix(name string) string {
	return name + "s"
}

//Inflect pluralizes with english inflection rules, i.e. Category -> Categories
func Inflect(name string) string {
	return inflect.Pluralize(name)
}

//PluralizerFor returns pluralizer for naming strategy name
func PluralizerFor(naming string) (Pluralizer, error) {
	switch strings.ToLower(naming) {
	case "", NamingSuffix:
		return Suffix, nil
	case NamingInflect:
		return Inflect, nil
	}
	return nil, fmt.Errorf("unsupported naming: %v", naming)
}

//SplitName splits name on the first dot into schema and table, name without dot has no schema
func SplitName(name string) (schema, table string) {
	if index := strings.Index(name, "."); index != -1 {
		return name[:index], name[index+1:]
	}
	return "", name
}

//DefaultName returns pluralized type name, interface types have leading I marker removed
func DefaultName(t reflect.Type, pluralizer Pluralizer) string {
	name := t.Name()
	if index := strings.Index(name, "["); index != -1 { //generic instantiation
		name = name[:index]
	}
	if t.Kind() == reflect.Interface && len(name) > 1 && name[0] == 'I' && unicode.IsUpper(rune(name[1])) {
		name = name[1:]
	}
	if pluralizer == nil {
		pluralizer = Suffix
	}
	return pluralizer(name)
}

func tableName(t reflect.Type, descriptor *Descriptor, pluralizer Pluralizer) string {
	if descriptor != nil && descriptor.TableName != "" {
		return descriptor.TableName
	}
	if t.Kind() == reflect.Struct {
		if tabler, ok := reflect.New(t).Interface().(Tabler); ok {
			if name := tabler.TableName(); name != "" {
				return name
			}
		}
	}
	return DefaultName(t, pluralizer)
}
