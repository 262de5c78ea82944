package delete

import (
	"github.com/viant/sqlgen/io"
	"github.com/viant/sqlgen/io/errx"
	"github.com/viant/sqlgen/metadata/info"
	"strings"
)

//Builder represent delete-where DML builder
type Builder struct {
	sql string
}

//Build returns delete statement
func (b *Builder) Build() string {
	return b.sql
}

//NewBuilder returns delete builder
func NewBuilder(table string, columns []string, dialect *info.Dialect) (*Builder, error) {
	if len(columns) == 0 {
		return nil, errx.EmptyParameter("delete", table)
	}
	sb := strings.Builder{}
	sb.WriteString("DELETE FROM ")
	sb.WriteString(table)
	sb.WriteString(" WHERE ")
	io.Assignments(&sb, dialect, columns, "", io.CriteriaSeparator)
	sb.WriteByte(';')
	return &Builder{sql: sb.String()}, nil
}
