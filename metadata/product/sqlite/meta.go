package sqlite

import (
	"github.com/viant/sqlgen/metadata/database"
	"github.com/viant/sqlgen/metadata/info"
	"github.com/viant/sqlgen/metadata/info/dialect"
	"github.com/viant/sqlgen/metadata/registry"
)

const product = "SQLite"

var sqLite3 = database.Product{
	Name:         product,
	Major:        3,
	DriverPkg:    "sqlite3",
	VersionQuery: "SELECT sqlite_version()",
	Driver:       "sqlite3",
}

var sqliteDialect = &info.Dialect{
	Product:         sqLite3,
	QuoteStart:      `"`,
	QuoteEnd:        `"`,
	Upsert:          dialect.UpsertTypeOnConflict,
	UpsertSince:     &database.Product{Major: 3, Minor: 24},
	NamedParameters: true,
	Transactional:   true,
}

//SQLite3 return SQLite3 product
func SQLite3() *database.Product {
	return &sqLite3
}

//Dialect returns double quoted ON CONFLICT dialect, SQLite binds @name natively
func Dialect() *info.Dialect {
	return sqliteDialect
}

func init() {
	registry.RegisterDialect(sqliteDialect)
}
