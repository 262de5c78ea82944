package errx

import (
	"errors"
	"fmt"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestIsDuplicateKey(t *testing.T) {
	var testCases = []struct {
		description string
		err         error
		expect      bool
	}{
		{
			description: "sqlite unique",
			err:         errors.New("UNIQUE constraint failed: ExampleTable.Id"),
			expect:      true,
		},
		{
			description: "postgres unique",
			err:         errors.New(`pq: duplicate key value violates unique constraint "exampletable_pkey"`),
			expect:      true,
		},
		{
			description: "sql server primary key",
			err:         errors.New("mssql: Violation of PRIMARY KEY constraint 'PK_ExampleTable'"),
			expect:      true,
		},
		{
			description: "other",
			err:         errors.New("no such table: Foo"),
			expect:      false,
		},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, IsDuplicateKey(testCase.err), testCase.description)
	}
}

func TestIsConstraint(t *testing.T) {
	assert.True(t, IsConstraint(errors.New("constraint failed: NOT NULL constraint failed: foo.bar (1299)")))
	assert.False(t, IsConstraint(nil))
}

func TestWrappedErrors_Is(t *testing.T) {
	empty := EmptyParameter("select", "ExampleTable")
	assert.True(t, errors.Is(empty, ErrEmptyParameter))
	assert.True(t, IsEmptyParameter(fmt.Errorf("wrapped: %w", empty)))
	assert.Equal(t, "sqlgen select: empty parameter table=ExampleTable", empty.Error())

	dup := Classify("insert", "foo", errors.New("duplicate key value violates unique constraint"))
	assert.True(t, errors.Is(dup, ErrDuplicateKey))

	unsupported := UnsupportedUpsert("foo", "ansi")
	assert.True(t, IsUnsupportedUpsert(unsupported))
	assert.Nil(t, Classify("insert", "foo", nil))
}
