package config

import (
	"database/sql"
	"fmt"
	"github.com/viant/sqlgen/metadata/info"
	_ "github.com/viant/sqlgen/metadata/product/pg"
	_ "github.com/viant/sqlgen/metadata/product/sqlite"
	"github.com/viant/sqlgen/metadata/product/sqlserver"
	"github.com/viant/sqlgen/metadata/registry"
	"github.com/viant/sqlgen/option"
)

//Dialect returns a dialect for executor, resolution order: dialect option, dialect name option,
//executor Dialecter capability, default config dialect, *sql.DB driver package, SQL Server
func Dialect(executor interface{}, opts ...option.Option) (*info.Dialect, error) {
	options := option.Options(opts)
	if dialect := options.Dialect(); dialect != nil {
		return dialect, nil
	}
	if name := options.DialectName(); name != "" {
		return lookupDialect(name)
	}
	if dialecter, ok := executor.(info.Dialecter); ok {
		if dialect := dialecter.Dialect(); dialect != nil {
			return dialect, nil
		}
	}
	if config := Default(); config != nil && config.Dialect != "" {
		return lookupDialect(config.Dialect)
	}
	if db, ok := executor.(*sql.DB); ok && db != nil {
		if dialect := registry.MatchDialect(db.Driver()); dialect != nil {
			return dialect, nil
		}
	}
	return sqlserver.Dialect(), nil
}

func lookupDialect(name string) (*info.Dialect, error) {
	dialect := registry.LookupDialect(name)
	if dialect == nil {
		return nil, fmt.Errorf("failed to lookup dialect: %v", name)
	}
	return dialect, nil
}
