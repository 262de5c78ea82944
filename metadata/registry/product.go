package registry

import (
	"database/sql/driver"
	"github.com/viant/sqlgen/metadata/info"
	"reflect"
	"strings"
)

//MatchDialect matches dialect with sql driver package, returns nil if no registered product uses the driver
func MatchDialect(aDriver driver.Driver) *info.Dialect {
	if aDriver == nil {
		return nil
	}
	driverType := reflect.TypeOf(aDriver)
	if driverType.Kind() == reflect.Ptr {
		driverType = driverType.Elem()
	}
	driverTypeName := driverType.String() //i.e. sqlite3.SQLiteDriver
	index := strings.Index(driverTypeName, ".")
	if index == -1 {
		return nil
	}
	driverPkg := driverTypeName[:index]
	for _, candidate := range Dialects() {
		if candidate.DriverPkg != "" && strings.EqualFold(candidate.DriverPkg, driverPkg) {
			return candidate
		}
	}
	return nil
}
