package delete

import (
	"github.com/stretchr/testify/assert"
	"github.com/viant/sqlgen/io/errx"
	"github.com/viant/sqlgen/metadata/info"
	"github.com/viant/sqlgen/metadata/product/pg"
	"github.com/viant/sqlgen/metadata/product/sqlite"
	"github.com/viant/sqlgen/metadata/product/sqlserver"
	"testing"
)

func TestBuilder_Build(t *testing.T) {
	var testCases = []struct {
		description string
		dialect     *info.Dialect
		table       string
		columns     []string
		expect      string
	}{
		{
			description: "sql server",
			dialect:     sqlserver.Dialect(),
			table:       "[ExampleTable]",
			columns:     []string{"Id"},
			expect:      "DELETE FROM [ExampleTable] WHERE [Id]=@Id;",
		},
		{
			description: "postgres multi column",
			dialect:     pg.Dialect(),
			table:       "MySchema.ExampleTable2",
			columns:     []string{"Id", "Col1"},
			expect:      "DELETE FROM MySchema.ExampleTable2 WHERE Id=@Id AND Col1=@Col1;",
		},
		{
			description: "sqlite",
			dialect:     sqlite.Dialect(),
			table:       `"ExampleTable"`,
			columns:     []string{"Col1"},
			expect:      `DELETE FROM "ExampleTable" WHERE "Col1"=@Col1;`,
		},
	}

	for _, testCase := range testCases {
		builder, err := NewBuilder(testCase.table, testCase.columns, testCase.dialect)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.EqualValues(t, testCase.expect, builder.Build(), testCase.description)
	}
}

func TestNewBuilder_EmptyParameter(t *testing.T) {
	_, err := NewBuilder("foo", []string{}, pg.Dialect())
	assert.True(t, errx.IsEmptyParameter(err))
}
