package read

import (
	"context"
	"database/sql"
	"github.com/francoispqt/gojay"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/viant/sqlgen/entity"
	"reflect"
	"testing"
	"time"
)

type ExampleTable struct {
	Id   int `sqlx:"primaryKey"`
	Col1 string
	Col2 *string
	Col3 time.Time
}

func (e ExampleTable) TableName() string { return "ExampleTable" }

func openDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite3", ":memory:")
	if !assert.Nil(t, err) {
		t.FailNow()
	}
	db.SetMaxOpenConns(1)
	for _, SQL := range []string{
		`CREATE TABLE ExampleTable (Id INTEGER PRIMARY KEY, Col1 TEXT, Col2 TEXT, Col3 DATETIME, Extra TEXT)`,
		`INSERT INTO ExampleTable VALUES (1, 'Value1', 'ValueA', '2024-01-01 00:00:00', 'x')`,
		`INSERT INTO ExampleTable VALUES (2, NULL, NULL, '2024-01-02 00:00:00', NULL)`,
	} {
		if _, err = db.Exec(SQL); !assert.Nil(t, err, SQL) {
			t.FailNow()
		}
	}
	return db
}

func TestAll(t *testing.T) {
	db := openDB(t)
	defer db.Close()
	ent, err := entity.Lookup(reflect.TypeOf(ExampleTable{}))
	if !assert.Nil(t, err) {
		return
	}
	rows, err := db.QueryContext(context.Background(), "SELECT * FROM ExampleTable ORDER BY Id")
	if !assert.Nil(t, err) {
		return
	}
	defer rows.Close()
	actual, err := All[ExampleTable](rows, ent)
	if !assert.Nil(t, err) {
		return
	}
	if !assert.Len(t, actual, 2) {
		return
	}
	assert.Equal(t, 1, actual[0].Id)
	assert.Equal(t, "Value1", actual[0].Col1)
	if assert.NotNil(t, actual[0].Col2) {
		assert.Equal(t, "ValueA", *actual[0].Col2)
	}
	assert.Equal(t, 2024, actual[0].Col3.Year())
	assert.Equal(t, "", actual[1].Col1)
	assert.Nil(t, actual[1].Col2)
}

func TestFirst(t *testing.T) {
	db := openDB(t)
	defer db.Close()
	ent, _ := entity.Lookup(reflect.TypeOf(ExampleTable{}))

	rows, err := db.Query("SELECT Id, Col1 FROM ExampleTable WHERE Id = ?", 2)
	if !assert.Nil(t, err) {
		return
	}
	actual, found, err := First[*ExampleTable](rows, ent)
	rows.Close()
	assert.Nil(t, err)
	assert.True(t, found)
	if assert.NotNil(t, actual) {
		assert.Equal(t, 2, actual.Id)
	}

	rows, err = db.Query("SELECT Id FROM ExampleTable WHERE Id = ?", 10)
	if !assert.Nil(t, err) {
		return
	}
	defer rows.Close()
	_, found, err = First[ExampleTable](rows, ent)
	assert.Nil(t, err)
	assert.False(t, found)
}

func TestAll_InvalidRecordType(t *testing.T) {
	db := openDB(t)
	defer db.Close()
	ent, _ := entity.Lookup(reflect.TypeOf(ExampleTable{}))
	rows, err := db.Query("SELECT Id FROM ExampleTable")
	if !assert.Nil(t, err) {
		return
	}
	defer rows.Close()
	_, err = All[struct{ Id int }](rows, ent)
	assert.NotNil(t, err)
}

func TestReadTable(t *testing.T) {
	db := openDB(t)
	defer db.Close()
	rows, err := db.Query("SELECT Id, Col1, Col2 FROM ExampleTable ORDER BY Id")
	if !assert.Nil(t, err) {
		return
	}
	defer rows.Close()
	table, err := ReadTable(rows)
	if !assert.Nil(t, err) {
		return
	}
	assert.Equal(t, 3, len(table.Columns))
	assert.Equal(t, "Id", table.Columns[0].Name)
	assert.Equal(t, reflect.TypeOf(0), table.Columns[0].Type)
	assert.Equal(t, 2, len(table.Rows))
	value, ok := table.Value(0, "col1")
	assert.True(t, ok)
	assert.Equal(t, "Value1", value)

	data, err := gojay.MarshalJSONObject(table)
	assert.Nil(t, err)
	assert.Equal(t, `{"columns":["Id","Col1","Col2"],"rows":[[1,"Value1","ValueA"],[2,null,null]]}`, string(data))
}

func TestParseType(t *testing.T) {
	var testCases = []struct {
		description string
		columnType  string
		expect      reflect.Type
		ok          bool
	}{
		{description: "integer", columnType: "INTEGER", expect: reflect.TypeOf(0), ok: true},
		{description: "sized varchar", columnType: "VARCHAR(255)", expect: reflect.TypeOf(""), ok: true},
		{description: "decimal", columnType: "NUMERIC(10,2)", expect: reflect.TypeOf(0.0), ok: true},
		{description: "timestamp", columnType: "timestamptz", expect: reflect.TypeOf(time.Time{}), ok: true},
		{description: "unknown", columnType: "geometry", expect: reflect.TypeOf((*interface{})(nil)).Elem()},
	}
	for _, testCase := range testCases {
		actual, ok := ParseType(testCase.columnType)
		assert.Equal(t, testCase.ok, ok, testCase.description)
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}
