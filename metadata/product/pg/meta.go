package pg

import (
	"github.com/viant/sqlgen/metadata/database"
	"github.com/viant/sqlgen/metadata/info"
	"github.com/viant/sqlgen/metadata/info/dialect"
	"github.com/viant/sqlgen/metadata/registry"
)

const product = "PostgreSQL"

var pgSQL9 = database.Product{
	Name:         product,
	Driver:       "postgres",
	DriverPkg:    "pq",
	Aliases:      []string{"pg", "postgresql"},
	VersionQuery: "SELECT version()",
	Major:        9,
}

var pgDialect = &info.Dialect{
	Product:             pgSQL9,
	Upsert:              dialect.UpsertTypeOnConflict,
	UpsertSince:         &database.Product{Major: 9, Minor: 5},
	Placeholder:         "$",
	PlaceholderResolver: &PlaceholderGenerator{},
	Transactional:       true,
}

//PqSQL9 return PostgreSQL 9.x product
func PqSQL9() *database.Product {
	return &pgSQL9
}

//Dialect returns unquoted ON CONFLICT dialect binding numbered placeholders
func Dialect() *info.Dialect {
	return pgDialect
}

func init() {
	registry.RegisterDialect(pgDialect)
}
