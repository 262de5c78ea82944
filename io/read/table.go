package read

import (
	"database/sql"
	"fmt"
	"github.com/francoispqt/gojay"
	"github.com/viant/xreflect"
	"reflect"
	"strings"
	"time"
)

//Column represents result column
type Column struct {
	Name         string
	DatabaseType string
	Type         reflect.Type
}

//Table represents materialized query result
type Table struct {
	Columns []*Column
	Rows    [][]interface{}
}

//Value returns row value for column name
func (t *Table) Value(row int, name string) (interface{}, bool) {
	if row < 0 || row >= len(t.Rows) {
		return nil, false
	}
	for i, column := range t.Columns {
		if strings.EqualFold(column.Name, name) {
			return t.Rows[row][i], true
		}
	}
	return nil, false
}

//ParseType returns go type for database column type
func ParseType(columnType string) (reflect.Type, bool) {
	columnType = strings.ToLower(columnType)
	if index := strings.Index(columnType, "("); index != -1 {
		columnType = strings.TrimSpace(columnType[:index])
	}
	switch columnType {
	case "int", "integer", "bigint", "smallint", "tinyint", "int2", "int4", "int8", "serial", "bigserial":
		return xreflect.IntType, true
	case "float", "real", "numeric", "decimal", "double", "double precision", "float4", "float8", "money":
		return xreflect.Float64Type, true
	case "bool", "boolean", "bit":
		return xreflect.BoolType, true
	case "string", "varchar", "nvarchar", "char", "nchar", "text", "ntext", "uniqueidentifier", "uuid":
		return reflect.TypeOf(""), true
	case "date", "time", "timestamp", "timestamptz", "datetime", "datetime2", "smalldatetime", "datetimeoffset":
		return xreflect.TimeType, true
	}
	return xreflect.InterfaceType, false
}

//ReadTable materializes rows
func ReadTable(rows *sql.Rows) (*Table, error) {
	columnTypes, err := rows.ColumnTypes()
	if err != nil {
		return nil, err
	}
	result := &Table{Columns: make([]*Column, len(columnTypes))}
	for i, columnType := range columnTypes {
		rType, _ := ParseType(columnType.DatabaseTypeName())
		result.Columns[i] = &Column{Name: columnType.Name(), DatabaseType: columnType.DatabaseTypeName(), Type: rType}
	}
	for rows.Next() {
		values := make([]interface{}, len(columnTypes))
		targets := make([]interface{}, len(columnTypes))
		for i := range values {
			targets[i] = &values[i]
		}
		if err = rows.Scan(targets...); err != nil {
			return nil, fmt.Errorf("failed to scan table row: %w", err)
		}
		for i, value := range values {
			if data, ok := value.([]byte); ok {
				values[i] = string(data)
			}
		}
		result.Rows = append(result.Rows, values)
	}
	return result, rows.Err()
}

//MarshalJSONObject encodes table as {"columns":[...],"rows":[[...]]}
func (t *Table) MarshalJSONObject(enc *gojay.Encoder) {
	enc.AddArrayKey("columns", columnNames(t.Columns))
	enc.AddArrayKey("rows", rows(t.Rows))
}

//IsNil returns true if table is nil
func (t *Table) IsNil() bool {
	return t == nil
}

type columnNames []*Column

func (c columnNames) MarshalJSONArray(enc *gojay.Encoder) {
	for _, column := range c {
		enc.AddString(column.Name)
	}
}

func (c columnNames) IsNil() bool {
	return c == nil
}

type rows [][]interface{}

func (r rows) MarshalJSONArray(enc *gojay.Encoder) {
	for _, values := range r {
		enc.AddArray(row(values))
	}
}

func (r rows) IsNil() bool {
	return r == nil
}

type row []interface{}

func (r row) MarshalJSONArray(enc *gojay.Encoder) {
	for _, value := range r {
		switch actual := value.(type) {
		case nil:
			enc.AddNull()
		case time.Time:
			enc.AddTime(&actual, time.RFC3339)
		case string:
			enc.AddString(actual)
		case int64:
			enc.AddInt64(actual)
		case int:
			enc.AddInt(actual)
		case float64:
			enc.AddFloat64(actual)
		case bool:
			enc.AddBool(actual)
		case []byte:
			enc.AddString(string(actual))
		default:
			enc.AddString(fmt.Sprint(actual))
		}
	}
}

func (r row) IsNil() bool {
	return r == nil
}
