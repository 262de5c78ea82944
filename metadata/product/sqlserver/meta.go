package sqlserver

import (
	"github.com/viant/sqlgen/metadata/database"
	"github.com/viant/sqlgen/metadata/info"
	"github.com/viant/sqlgen/metadata/info/dialect"
	"github.com/viant/sqlgen/metadata/registry"
)

const product = "SQLServer"

var sqlServer = database.Product{
	Name:         product,
	Driver:       "sqlserver",
	DriverPkg:    "mssql",
	VersionQuery: "SELECT @@VERSION",
	Major:        12,
}

var sqlServerDialect = &info.Dialect{
	Product:         sqlServer,
	QuoteStart:      "[",
	QuoteEnd:        "]",
	Upsert:          dialect.UpsertTypeMerge,
	UpsertSince:     &database.Product{Major: 10},
	NamedParameters: true,
	Transactional:   true,
}

//SQLServer returns SQL Server product
func SQLServer() *database.Product {
	return &sqlServer
}

//Dialect returns bracket quoted MERGE dialect
func Dialect() *info.Dialect {
	return sqlServerDialect
}

func init() {
	registry.RegisterDialect(sqlServerDialect)
}
