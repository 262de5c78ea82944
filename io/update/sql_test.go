package update

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/viant/sqlgen/io/errx"
	"github.com/viant/sqlgen/metadata/info"
	"github.com/viant/sqlgen/metadata/product/pg"
	"github.com/viant/sqlgen/metadata/product/sqlite"
	"github.com/viant/sqlgen/metadata/product/sqlserver"
	"testing"
)

func TestUpdate_Build(t *testing.T) {

	var testCases = []struct {
		description  string
		table        string
		setColumns   []string
		whereColumns []string
		dialect      *info.Dialect
		expect       string
	}{
		{
			description:  "sqlite single column",
			table:        `"ExampleTable"`,
			setColumns:   []string{"Col1"},
			whereColumns: []string{"Id"},
			dialect:      sqlite.Dialect(),
			expect:       `UPDATE "ExampleTable" SET "Col1"=@Col1_1 WHERE "Id"=@Id_2;`,
		},
		{
			description:  "sql server multi column",
			table:        "[MySchema].[ExampleTable2]",
			setColumns:   []string{"Col1", "Col2"},
			whereColumns: []string{"Id", "Col3"},
			dialect:      sqlserver.Dialect(),
			expect:       "UPDATE [MySchema].[ExampleTable2] SET [Col1]=@Col1_1, [Col2]=@Col2_1 WHERE [Id]=@Id_2 AND [Col3]=@Col3_2;",
		},
		{
			description:  "postgres same column in both clauses",
			table:        "ExampleTable",
			setColumns:   []string{"Col1"},
			whereColumns: []string{"Col1"},
			dialect:      pg.Dialect(),
			expect:       "UPDATE ExampleTable SET Col1=@Col1_1 WHERE Col1=@Col1_2;",
		},
	}

	for _, testCase := range testCases {
		builder, err := NewBuilder(testCase.table, testCase.setColumns, testCase.whereColumns, testCase.dialect)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		actual := builder.Build()
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}

}

func TestUpdate_NewBuilder_EmptyParameter(t *testing.T) {
	builder, err := NewBuilder("foo", nil, []string{"Id"}, sqlite.Dialect())
	assert.Nil(t, builder)
	assert.True(t, errors.Is(err, errx.ErrEmptyParameter))
	_, err = NewBuilder("foo", []string{"Col1"}, nil, sqlite.Dialect())
	assert.True(t, errx.IsEmptyParameter(err))
}
