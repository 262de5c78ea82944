package update

import (
	"github.com/viant/sqlgen/io"
	"github.com/viant/sqlgen/io/errx"
	"github.com/viant/sqlgen/metadata/info"
	"github.com/viant/sqlgen/param"
	"strings"
)

//Builder represent update-where DML builder
type Builder struct {
	sql string
}

//Build returns update statement, set parameters are suffixed with _1, where parameters with _2
func (b *Builder) Build() string {
	return b.sql
}

//NewBuilder return update builder
func NewBuilder(table string, setColumns, whereColumns []string, dialect *info.Dialect) (*Builder, error) {
	if len(setColumns) == 0 || len(whereColumns) == 0 {
		return nil, errx.EmptyParameter("update", table)
	}
	sb := strings.Builder{}
	sb.WriteString("UPDATE ")
	sb.WriteString(table)
	sb.WriteString(" SET ")
	io.Assignments(&sb, dialect, setColumns, param.FirstSuffix, io.ListSeparator)
	sb.WriteString(" WHERE ")
	io.Assignments(&sb, dialect, whereColumns, param.SecondSuffix, io.CriteriaSeparator)
	sb.WriteByte(';')
	return &Builder{sql: sb.String()}, nil
}
