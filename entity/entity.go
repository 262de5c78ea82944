package entity

import (
	"fmt"
	"github.com/viant/sqlgen/io/errx"
	"github.com/viant/xunsafe"
	"reflect"
	"strings"
)

//Entity represents resolved entity metadata
type Entity struct {
	Type    reflect.Type
	Schema  string
	Table   string
	Columns Columns
	index   map[string]*Column
}

//Name returns schema qualified unquoted table name
func (e *Entity) Name() string {
	if e.Schema == "" {
		return e.Table
	}
	return e.Schema + "." + e.Table
}

//Column returns column matching name, exact, case insensitive or without underscores
func (e *Entity) Column(name string) (*Column, bool) {
	if column, ok := e.index[name]; ok {
		return column, true
	}
	lowerName := strings.ToLower(name)
	if column, ok := e.index[lowerName]; ok {
		return column, true
	}
	column, ok := e.index[strings.ReplaceAll(lowerName, "_", "")]
	return column, ok
}

//Role returns declared column role, unknown columns are RoleNormal
func (e *Entity) Role(name string) Role {
	if e == nil {
		return RoleNormal
	}
	if column, ok := e.Column(name); ok {
		return column.Role
	}
	return RoleNormal
}

//IsIdentity returns true if column is database assigned key
func (e *Entity) IsIdentity(name string) bool {
	if e == nil {
		return false
	}
	column, ok := e.Column(name)
	return ok && column.Identity
}

//New resolves entity for supplied type
func New(t reflect.Type, descriptor *Descriptor, pluralizer Pluralizer) (*Entity, error) {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Struct, reflect.Interface:
	default:
		return nil, errx.UnsupportedEntity(t.String(), fmt.Errorf("expected struct or interface, but had %v", t.Kind()))
	}
	name := tableName(t, descriptor, pluralizer)
	if t.Name() == "" && (descriptor == nil || descriptor.TableName == "") {
		return nil, errx.UnsupportedEntity(t.String(), fmt.Errorf("unnamed type requires table name"))
	}
	result := &Entity{Type: t}
	result.Schema, result.Table = SplitName(name)
	if t.Kind() == reflect.Struct {
		result.Columns = appendColumns(nil, t, 0)
	}
	if descriptor != nil {
		result.applyDescriptor(descriptor)
	}
	result.ensureKey()
	result.buildIndex()
	return result, nil
}

func appendColumns(columns Columns, t reflect.Type, offset uintptr) Columns {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tagValue := field.Tag.Get(TagName)
		if field.Anonymous && field.Type.Kind() == reflect.Struct && tagValue == "" {
			columns = appendColumns(columns, field.Type, offset+field.Offset)
			continue
		}
		if isExported := field.PkgPath == ""; !isExported {
			continue
		}
		tag := ParseTag(tagValue)
		if tag.Transient {
			continue
		}
		field.Offset += offset
		columns = append(columns, &Column{
			Name:     tag.columnName(field.Name),
			Field:    xunsafe.NewField(field),
			Type:     field.Type,
			Role:     tag.role(),
			Identity: tag.Autoincrement,
		})
	}
	return columns
}

func (e *Entity) applyDescriptor(descriptor *Descriptor) {
	for _, column := range e.Columns {
		if role, ok := descriptor.role(column.Name); ok {
			column.Role = role
			column.Identity = descriptor.isIdentity(column.Name)
		}
	}
	for _, name := range descriptor.names() {
		if e.hasColumn(name) {
			continue
		}
		role, _ := descriptor.role(name)
		e.Columns = append(e.Columns, &Column{Name: name, Role: role, Identity: descriptor.isIdentity(name)})
	}
}

//ensureKey marks column named id as identity key when no key was declared
func (e *Entity) ensureKey() {
	if len(e.Columns.Keys()) > 0 {
		return
	}
	for _, column := range e.Columns {
		if column.Role == RoleNormal && strings.EqualFold(column.Name, "id") {
			column.Role = RoleKey
			column.Identity = true
			return
		}
	}
}

func (e *Entity) hasColumn(name string) bool {
	for _, column := range e.Columns {
		if strings.EqualFold(column.Name, name) {
			return true
		}
	}
	return false
}

func (e *Entity) buildIndex() {
	e.index = make(map[string]*Column, 3*len(e.Columns))
	for _, column := range e.Columns {
		lowerName := strings.ToLower(column.Name)
		for _, key := range []string{column.Name, lowerName, strings.ReplaceAll(lowerName, "_", "")} {
			if _, ok := e.index[key]; !ok {
				e.index[key] = column
			}
		}
		if column.Field != nil {
			if _, ok := e.index[column.Field.Name]; !ok {
				e.index[column.Field.Name] = column
			}
		}
	}
}

//StructColumns returns columns declared by struct type fields, roles come from field tags only
func StructColumns(t reflect.Type) Columns {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	return appendColumns(nil, t, 0)
}
