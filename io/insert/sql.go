package insert

import (
	"github.com/viant/sqlgen/io"
	"github.com/viant/sqlgen/io/errx"
	"github.com/viant/sqlgen/metadata/info"
	"strings"
)

//Builder represent insert DML builder
type Builder struct {
	sql string
}

//Build returns insert statement
func (b *Builder) Build() string {
	return b.sql
}

//NewBuilder returns insert builder
func NewBuilder(table string, columns []string, dialect *info.Dialect) (*Builder, error) {
	if len(columns) == 0 {
		return nil, errx.EmptyParameter("insert", table)
	}
	sb := strings.Builder{}
	sb.WriteString("INSERT INTO ")
	sb.WriteString(table)
	sb.WriteString(" (")
	io.QuotedList(&sb, dialect, "", columns, ",")
	sb.WriteString(") VALUES (")
	io.ParamList(&sb, columns, "", io.ListSeparator)
	sb.WriteString(");")
	return &Builder{sql: sb.String()}, nil
}
