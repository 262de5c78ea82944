package io

import (
	"github.com/viant/sqlgen/metadata/info"
	"github.com/viant/sqlgen/metadata/info/placeholder"
	"strings"
)

const (
	//ListSeparator separates assignments and values
	ListSeparator = ", "
	//CriteriaSeparator separates where criteria
	CriteriaSeparator = " AND "
)

//Builder represents SQL builder
type Builder interface {
	Build() string
}

//Param returns named parameter reference, i.e. @Id_2
func Param(name, suffix string) string {
	return placeholder.Named + name + suffix
}

//Assignments writes quoted column=@column+suffix fragments joined with separator
func Assignments(sb *strings.Builder, dialect *info.Dialect, columns []string, suffix, separator string) {
	for i, column := range columns {
		if i > 0 {
			sb.WriteString(separator)
		}
		sb.WriteString(dialect.Quote(column))
		sb.WriteByte('=')
		sb.WriteString(Param(column, suffix))
	}
}

//QuotedList writes quoted columns joined with separator
func QuotedList(sb *strings.Builder, dialect *info.Dialect, prefix string, columns []string, separator string) {
	for i, column := range columns {
		if i > 0 {
			sb.WriteString(separator)
		}
		sb.WriteString(prefix)
		sb.WriteString(dialect.Quote(column))
	}
}

//ParamList writes @column+suffix references joined with separator
func ParamList(sb *strings.Builder, columns []string, suffix, separator string) {
	for i, column := range columns {
		if i > 0 {
			sb.WriteString(separator)
		}
		sb.WriteString(Param(column, suffix))
	}
}
