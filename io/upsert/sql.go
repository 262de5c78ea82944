package upsert

import (
	"github.com/viant/sqlgen/io"
	"github.com/viant/sqlgen/io/errx"
	"github.com/viant/sqlgen/metadata/info"
	"github.com/viant/sqlgen/metadata/info/dialect"
	"github.com/viant/sqlgen/param"
	"strings"
)

const (
	target = "tgt."
	source = "src."
)

//Builder represent upsert DML builder
type Builder struct {
	sql string
}

//Build returns upsert statement
func (b *Builder) Build() string {
	return b.sql
}

//NewBuilder returns upsert builder, insert and update columns come from the set value, key columns from the where value.
//With no update columns the statement only inserts absent rows, with no insert columns the key columns are inserted.
func NewBuilder(table string, insertColumns, updateColumns, keyColumns []string, aDialect *info.Dialect) (*Builder, error) {
	if len(keyColumns) == 0 {
		return nil, errx.EmptyParameter("upsert", table)
	}
	switch aDialect.Upsert {
	case dialect.UpsertTypeOnConflict:
		return &Builder{sql: onConflict(table, insertColumns, updateColumns, keyColumns, aDialect)}, nil
	case dialect.UpsertTypeMerge:
		return &Builder{sql: merge(table, insertColumns, updateColumns, keyColumns, aDialect)}, nil
	}
	return nil, errx.UnsupportedUpsert(table, aDialect.Name)
}

//onConflict parameters: set value _1, where value _2
func onConflict(table string, insertColumns, updateColumns, keyColumns []string, aDialect *info.Dialect) string {
	insertSuffix := param.FirstSuffix
	if len(insertColumns) == 0 {
		insertColumns = keyColumns
		insertSuffix = param.SecondSuffix
	}
	sb := strings.Builder{}
	sb.WriteString("INSERT INTO ")
	sb.WriteString(table)
	sb.WriteString(" (")
	io.QuotedList(&sb, aDialect, "", insertColumns, ",")
	sb.WriteString(") VALUES (")
	io.ParamList(&sb, insertColumns, insertSuffix, io.ListSeparator)
	sb.WriteString(") ON CONFLICT (")
	io.QuotedList(&sb, aDialect, "", keyColumns, ",")
	if len(updateColumns) == 0 {
		sb.WriteString(") DO NOTHING;")
		return sb.String()
	}
	sb.WriteString(") DO UPDATE SET ")
	for i, column := range updateColumns {
		if i > 0 {
			sb.WriteString(io.ListSeparator)
		}
		quoted := aDialect.Quote(column)
		sb.WriteString(quoted)
		sb.WriteString("=EXCLUDED.")
		sb.WriteString(quoted)
	}
	sb.WriteByte(';')
	return sb.String()
}

//merge parameters: where value _1, set value _2
func merge(table string, insertColumns, updateColumns, keyColumns []string, aDialect *info.Dialect) string {
	sb := strings.Builder{}
	sb.WriteString("MERGE INTO ")
	sb.WriteString(table)
	sb.WriteString(" AS tgt USING (SELECT ")
	for i, column := range keyColumns {
		if i > 0 {
			sb.WriteString(io.ListSeparator)
		}
		sb.WriteString(io.Param(column, param.FirstSuffix))
		sb.WriteByte(' ')
		sb.WriteString(aDialect.Quote(column))
	}
	sb.WriteString(") AS src ON ")
	for i, column := range keyColumns {
		if i > 0 {
			sb.WriteString(io.CriteriaSeparator)
		}
		quoted := aDialect.Quote(column)
		sb.WriteString(target + quoted + "=" + source + quoted)
	}
	if len(updateColumns) > 0 {
		sb.WriteString(" WHEN MATCHED THEN UPDATE SET ")
		io.Assignments(&sb, aDialect, updateColumns, param.SecondSuffix, io.ListSeparator)
	}
	sb.WriteString(" WHEN NOT MATCHED THEN INSERT (")
	if len(insertColumns) == 0 {
		io.QuotedList(&sb, aDialect, "", keyColumns, io.ListSeparator)
		sb.WriteString(") VALUES (")
		io.QuotedList(&sb, aDialect, source, keyColumns, io.ListSeparator)
	} else {
		io.QuotedList(&sb, aDialect, "", insertColumns, io.ListSeparator)
		sb.WriteString(") VALUES (")
		io.ParamList(&sb, insertColumns, param.SecondSuffix, io.ListSeparator)
	}
	sb.WriteString(");")
	return sb.String()
}
