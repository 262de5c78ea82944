package adapter

import (
	"github.com/viant/sqlgen/entity"
	"github.com/viant/sqlgen/metadata/info"
	"github.com/viant/sqlgen/metadata/product/pg"
	"github.com/viant/sqlgen/metadata/product/sqlite"
	"github.com/viant/sqlgen/metadata/product/sqlserver"
	"github.com/viant/sqlgen/option"
	"github.com/viant/sqlgen/param"
	"sync"
)

//Adapter synthesizes dialect specific statements, it is immutable and safe for concurrent use
type Adapter struct {
	dialect   *info.Dialect
	keyPolicy option.KeyPolicy
	cache     *cache
}

//Statement represents generated SQL with its parameters
type Statement struct {
	SQL    string
	Params param.Set
	Kind   string //select, update, delete, insert or upsert
	Table  string
}

//Dialect returns adapter dialect
func (a *Adapter) Dialect() *info.Dialect {
	return a.dialect
}

//KeyPolicy returns adapter key insert policy
func (a *Adapter) KeyPolicy() option.KeyPolicy {
	return a.keyPolicy
}

//New creates an adapter
func New(dialect *info.Dialect, options ...option.Option) *Adapter {
	return &Adapter{
		dialect:   dialect,
		keyPolicy: option.Options(options).KeyPolicy(),
		cache:     newCache(),
	}
}

var (
	sqlServerOnce, postgresOnce, sqliteOnce sync.Once
	sqlServerAdapter                        *Adapter
	postgresAdapter                         *Adapter
	sqliteAdapter                           *Adapter
)

//SQLServer returns shared bracket quoted MERGE adapter
func SQLServer() *Adapter {
	sqlServerOnce.Do(func() {
		sqlServerAdapter = New(sqlserver.Dialect())
	})
	return sqlServerAdapter
}

//Postgres returns shared unquoted ON CONFLICT adapter
func Postgres() *Adapter {
	postgresOnce.Do(func() {
		postgresAdapter = New(pg.Dialect())
	})
	return postgresAdapter
}

//SQLite returns shared double quoted ON CONFLICT adapter
func SQLite() *Adapter {
	sqliteOnce.Do(func() {
		sqliteAdapter = New(sqlite.Dialect())
	})
	return sqliteAdapter
}

//For returns shared adapter for dialect and key policy
func For(dialect *info.Dialect, keyPolicy option.KeyPolicy) *Adapter {
	if keyPolicy == "" || keyPolicy == option.KeyPolicyExclude {
		switch dialect {
		case sqlserver.Dialect():
			return SQLServer()
		case pg.Dialect():
			return Postgres()
		case sqlite.Dialect():
			return SQLite()
		}
	}
	key := adapterKey{dialect: dialect, keyPolicy: keyPolicy}
	if cached, ok := adapters.Load(key); ok {
		return cached.(*Adapter)
	}
	actual, _ := adapters.LoadOrStore(key, New(dialect, keyPolicy))
	return actual.(*Adapter)
}

var adapters sync.Map

type adapterKey struct {
	dialect   *info.Dialect
	keyPolicy option.KeyPolicy
}

func (a *Adapter) table(ent *entity.Entity) string {
	return a.dialect.QualifiedTable(ent.Schema, ent.Table)
}
