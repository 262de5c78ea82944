package option

import (
	"database/sql"
	"github.com/viant/sqlgen/metadata/database"
	"github.com/viant/sqlgen/metadata/info"
	"time"
)

const (
	//TagSqlx defines sqlx annotation
	TagSqlx = "sqlx"
)

//Option represents generic option
type Option interface{}

//Options represents generic options
type Options []Option

//Timeout represents command timeout
type Timeout time.Duration

//DialectName represents dialect selected by product, driver name or driver package, i.e. sqlite3
type DialectName string

//KeyPolicy controls whether key columns are inserted
type KeyPolicy string

const (
	//KeyPolicyExclude excludes all key columns from insert, keys are database assigned
	KeyPolicyExclude = KeyPolicy("exclude")
	//KeyPolicyIncludeAssigned inserts key columns that are not autoincrement
	KeyPolicyIncludeAssigned = KeyPolicy("assigned")
)

//Dialect returns dialect
func (o Options) Dialect() *info.Dialect {
	for _, candidate := range o {
		if dialect, ok := candidate.(*info.Dialect); ok {
			return dialect
		}
	}
	return nil
}

//Product returns product
func (o Options) Product() *database.Product {
	for _, candidate := range o {
		if dialect, ok := candidate.(*info.Dialect); ok {
			return &dialect.Product
		}
		if product, ok := candidate.(*database.Product); ok {
			return product
		}
	}
	return nil
}

//DialectName returns dialect name or empty string
func (o Options) DialectName() string {
	for _, candidate := range o {
		if name, ok := candidate.(DialectName); ok {
			return string(name)
		}
	}
	return ""
}

//Tx returns *sql.Tx or nil
func (o Options) Tx() *sql.Tx {
	for _, candidate := range o {
		if v, ok := candidate.(*sql.Tx); ok && v != nil {
			return v
		}
	}
	return nil
}

//Timeout returns command timeout or 0
func (o Options) Timeout() time.Duration {
	for _, candidate := range o {
		if v, ok := candidate.(Timeout); ok {
			return time.Duration(v)
		}
	}
	return 0
}

//KeyPolicy returns key policy, default KeyPolicyExclude
func (o Options) KeyPolicy() KeyPolicy {
	for _, candidate := range o {
		if v, ok := candidate.(KeyPolicy); ok && v != "" {
			return v
		}
	}
	return KeyPolicyExclude
}

//IncludesKey returns true if key column should be inserted
func (p KeyPolicy) IncludesKey(identity bool) bool {
	return p == KeyPolicyIncludeAssigned && !identity
}
