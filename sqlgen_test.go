package sqlgen

import (
	"context"
	"database/sql"
	"github.com/francoispqt/gojay"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/viant/assertly"
	"github.com/viant/sqlgen/io/config"
	"github.com/viant/sqlgen/io/errx"
	"github.com/viant/sqlgen/metadata/info"
	"github.com/viant/sqlgen/metadata/product/pg"
	"github.com/viant/sqlgen/metadata/product/sqlite"
	"github.com/viant/sqlgen/option"
	"github.com/viant/sqlgen/param"
	"github.com/viant/toolbox"
	"testing"
	"time"
)

type ExampleTable struct {
	Id       int `sqlx:"primaryKey"`
	Col1     string
	Col2     string
	Col3     time.Time
	IgnoreMe string `sqlx:"computed"`
}

func (e ExampleTable) TableName() string { return "ExampleTable" }

type Code struct {
	Code  string `sqlx:"primaryKey"`
	Label string
}

func (c Code) TableName() string { return "Codes" }

type Document struct {
	Id    uuid.UUID `sqlx:"primaryKey"`
	Title string
}

var day = func(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }

func openDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	db.SetMaxOpenConns(1)
	for _, SQL := range []string{
		`CREATE TABLE ExampleTable (Id INTEGER PRIMARY KEY AUTOINCREMENT, Col1 TEXT, Col2 TEXT, Col3 DATETIME, IgnoreMe TEXT DEFAULT 'computed')`,
		`CREATE TABLE Codes (Code TEXT PRIMARY KEY, Label TEXT)`,
		`CREATE TABLE Documents (Id TEXT PRIMARY KEY, Title TEXT)`,
	} {
		if _, err = db.Exec(SQL); err != nil {
			t.Fatal(err)
		}
	}
	ctx := context.Background()
	for i, item := range []ExampleTable{
		{Col1: "Value1", Col2: "ValueA", Col3: day(1)},
		{Col1: "Value2", Col2: "ValueA", Col3: day(2)},
		{Col1: "Value3", Col2: "ValueB", Col3: day(3)},
	} {
		affected, err := Insert[ExampleTable](ctx, db, item)
		if err != nil || affected != 1 {
			t.Fatalf("failed to seed %v: %v", i, err)
		}
	}
	return db
}

func TestGetWhere(t *testing.T) {
	db := openDB(t)
	defer db.Close()
	ctx := context.Background()

	var testCases = []struct {
		description string
		where       interface{}
		expect      interface{}
	}{
		{
			description: "struct where",
			where:       struct{ Col2 string }{"ValueA"},
			expect:      []map[string]interface{}{{"Id": 1, "Col1": "Value1", "IgnoreMe": "computed"}, {"Id": 2, "Col1": "Value2"}},
		},
		{
			description: "bag where",
			where:       param.NewBag().Add("Col2", "ValueB").Add("Col1", "Value3"),
			expect:      []map[string]interface{}{{"Id": 3, "Col2": "ValueB"}},
		},
		{
			description: "map where",
			where:       map[string]interface{}{"Id": 2},
			expect:      []map[string]interface{}{{"Id": 2, "Col1": "Value2"}},
		},
	}
	for _, testCase := range testCases {
		actual, err := GetWhere[ExampleTable](ctx, db, testCase.where)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		if !assertly.AssertValues(t, testCase.expect, actual, testCase.description) {
			toolbox.DumpIndent(actual, true)
		}
	}

	none, err := GetWhere[ExampleTable](ctx, db, struct{ Col1 string }{"missing"})
	assert.Nil(t, err)
	assert.Empty(t, none)

	_, err = GetWhere[ExampleTable](ctx, db, struct{}{})
	assert.True(t, errx.IsEmptyParameter(err))
}

func TestGetWhereFirst(t *testing.T) {
	db := openDB(t)
	defer db.Close()
	ctx := context.Background()

	actual, found, err := GetWhereFirst[*ExampleTable](ctx, db, struct{ Id int }{3})
	assert.Nil(t, err)
	assert.True(t, found)
	if assert.NotNil(t, actual) {
		assert.Equal(t, "Value3", actual.Col1)
		assert.True(t, day(3).Equal(actual.Col3))
	}

	_, found, err = GetWhereFirst[ExampleTable](ctx, db, struct{ Id int }{10})
	assert.Nil(t, err)
	assert.False(t, found)
}

func TestUpdateDeleteWhere(t *testing.T) {
	db := openDB(t)
	defer db.Close()
	ctx := context.Background()

	affected, err := UpdateWhere[ExampleTable](ctx, db, struct{ Col1 string }{"x"}, struct{ Col2 string }{"ValueA"})
	assert.Nil(t, err)
	assert.EqualValues(t, 2, affected)
	updated, _ := GetWhere[ExampleTable](ctx, db, struct{ Col1 string }{"x"})
	assert.Len(t, updated, 2)

	_, err = UpdateWhere[ExampleTable](ctx, db, struct{ Id int }{1}, struct{ Id int }{1})
	assert.True(t, errx.IsEmptyParameter(err))

	affected, err = DeleteWhere[ExampleTable](ctx, db, struct{ Id int }{1})
	assert.Nil(t, err)
	assert.EqualValues(t, 1, affected)
	remaining, _ := GetWhere[ExampleTable](ctx, db, struct{ Col1 string }{"x"})
	assert.Len(t, remaining, 1)
}

func TestUpsert(t *testing.T) {
	db := openDB(t)
	defer db.Close()
	ctx := context.Background()
	assigned := option.KeyPolicyIncludeAssigned

	affected, err := Upsert[Code](ctx, db, Code{Code: "A", Label: "Alpha"}, struct{ Code string }{"A"}, assigned)
	assert.Nil(t, err)
	assert.EqualValues(t, 1, affected)
	affected, err = Upsert[Code](ctx, db, Code{Code: "A", Label: "Alef"}, struct{ Code string }{"A"}, assigned)
	assert.Nil(t, err)
	assert.EqualValues(t, 1, affected)

	codes, err := GetWhere[Code](ctx, db, struct{ Code string }{"A"})
	assert.Nil(t, err)
	assert.Equal(t, []Code{{Code: "A", Label: "Alef"}}, codes)

	_, err = Insert[Code](ctx, db, Code{Code: "A", Label: "again"}, assigned)
	assert.True(t, errx.IsDuplicateKey(err))
}

func TestTransaction(t *testing.T) {
	db := openDB(t)
	defer db.Close()
	ctx := context.Background()
	tx, err := db.Begin()
	if !assert.Nil(t, err) {
		return
	}
	_, err = DeleteWhere[ExampleTable](ctx, db, struct{ Col2 string }{"ValueA"}, tx, sqlite.Dialect())
	assert.Nil(t, err)
	assert.Nil(t, tx.Rollback())
	rows, err := GetWhere[ExampleTable](ctx, db, struct{ Col2 string }{"ValueA"})
	assert.Nil(t, err)
	assert.Len(t, rows, 2)
}

func TestCustomKeyType(t *testing.T) {
	db := openDB(t)
	defer db.Close()
	ctx := context.Background()
	id := uuid.New()
	_, err := Insert[Document](ctx, db, Document{Id: id, Title: "spec"}, option.KeyPolicyIncludeAssigned)
	if !assert.Nil(t, err) {
		return
	}
	actual, found, err := GetWhereFirst[Document](ctx, db, struct{ Id uuid.UUID }{id})
	assert.Nil(t, err)
	assert.True(t, found)
	assert.Equal(t, Document{Id: id, Title: "spec"}, actual)
}

func TestQueryTable(t *testing.T) {
	db := openDB(t)
	defer db.Close()
	table, err := QueryTable(context.Background(), db, `SELECT Id, Col1 FROM ExampleTable WHERE Col2=@Col2 ORDER BY Id`, param.NewBag().Add("Col2", "ValueA"))
	if !assert.Nil(t, err) {
		return
	}
	data, err := gojay.MarshalJSONObject(table)
	assert.Nil(t, err)
	assert.Equal(t, `{"columns":["Id","Col1"],"rows":[[1,"Value1"],[2,"Value2"]]}`, string(data))
}

func TestAdapterFor(t *testing.T) {
	db := openDB(t)
	defer db.Close()
	anAdapter, err := AdapterFor(db)
	assert.Nil(t, err)
	assert.Same(t, sqlite.Dialect(), anAdapter.Dialect())

	defer func() { _ = config.Use(nil) }()
	assert.Nil(t, config.Use(&config.Config{Dialect: "pg", KeyPolicy: "assigned"}))
	anAdapter, err = AdapterFor(db)
	assert.Nil(t, err)
	assert.Equal(t, "PostgreSQL", anAdapter.Dialect().Name)
	assert.Equal(t, option.KeyPolicyIncludeAssigned, anAdapter.KeyPolicy())

	anAdapter, err = AdapterFor(db, option.DialectName("sqlite"), option.KeyPolicyExclude)
	assert.Nil(t, err)
	assert.Same(t, sqlite.Dialect(), anAdapter.Dialect())
	assert.Equal(t, option.KeyPolicyExclude, anAdapter.KeyPolicy())
}

type dialectDB struct {
	*sql.DB
	dialect *info.Dialect
}

func (d *dialectDB) Dialect() *info.Dialect { return d.dialect }

func TestAdapterFor_Dialecter(t *testing.T) {
	db := openDB(t)
	defer db.Close()
	defer func() { _ = config.Use(nil) }()
	assert.Nil(t, config.Use(&config.Config{Dialect: "sqlite", KeyPolicy: "assigned"}))

	anAdapter, err := AdapterFor(&dialectDB{DB: db, dialect: pg.Dialect()})
	assert.Nil(t, err)
	assert.Same(t, pg.Dialect(), anAdapter.Dialect())
	assert.Equal(t, option.KeyPolicyIncludeAssigned, anAdapter.KeyPolicy())

	anAdapter, err = AdapterFor(db)
	assert.Nil(t, err)
	assert.Same(t, sqlite.Dialect(), anAdapter.Dialect())

	anAdapter, err = AdapterFor(&dialectDB{DB: db, dialect: pg.Dialect()}, option.DialectName("sqlite"))
	assert.Nil(t, err)
	assert.Same(t, sqlite.Dialect(), anAdapter.Dialect())
}
