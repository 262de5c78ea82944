package read

import (
	"github.com/viant/sqlgen/io"
	"github.com/viant/sqlgen/io/errx"
	"github.com/viant/sqlgen/metadata/info"
	"strings"
)

//Builder represent select-where DML builder
type Builder struct {
	sql string
}

//Build returns select statement
func (b *Builder) Build() string {
	return b.sql
}

//NewBuilder returns select builder, table is dialect qualified table, columns are where columns
func NewBuilder(table string, columns []string, dialect *info.Dialect) (*Builder, error) {
	if len(columns) == 0 {
		return nil, errx.EmptyParameter("select", table)
	}
	sb := strings.Builder{}
	sb.WriteString("SELECT * FROM ")
	sb.WriteString(table)
	sb.WriteString(" WHERE ")
	io.Assignments(&sb, dialect, columns, "", io.CriteriaSeparator)
	sb.WriteByte(';')
	return &Builder{sql: sb.String()}, nil
}
