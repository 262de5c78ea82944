package adapter

import (
	"github.com/viant/sqlgen/entity"
	"github.com/viant/sqlgen/io/delete"
	"github.com/viant/sqlgen/io/errx"
	"github.com/viant/sqlgen/io/insert"
	"github.com/viant/sqlgen/io/read"
	"github.com/viant/sqlgen/io/update"
	"github.com/viant/sqlgen/io/upsert"
	"github.com/viant/sqlgen/metadata/info/dialect"
	"github.com/viant/sqlgen/option"
	"github.com/viant/sqlgen/param"
)

const (
	kindSelect = "select"
	kindUpdate = "update"
	kindDelete = "delete"
	kindInsert = "insert"
	kindUpsert = "upsert"
)

var (
	withKeys    = param.Filter{IncludeKeyColumns: true}
	withoutKeys = param.Filter{}
)

//BuildSelectWhere returns SELECT * matching all where value columns
func (a *Adapter) BuildSelectWhere(ent *entity.Entity, where interface{}) (*Statement, error) {
	params, err := a.where(kindSelect, ent, where)
	if err != nil {
		return nil, err
	}
	table := a.table(ent)
	SQL, err := a.cache.get(cacheKey(kindSelect, table, params.Names()), func() (string, error) {
		builder, err := read.NewBuilder(table, params.Names(), a.dialect)
		if err != nil {
			return "", err
		}
		return builder.Build(), nil
	})
	if err != nil {
		return nil, err
	}
	return &Statement{SQL: SQL, Params: params, Kind: kindSelect, Table: table}, nil
}

//BuildDeleteWhere returns DELETE matching all where value columns
func (a *Adapter) BuildDeleteWhere(ent *entity.Entity, where interface{}) (*Statement, error) {
	params, err := a.where(kindDelete, ent, where)
	if err != nil {
		return nil, err
	}
	table := a.table(ent)
	SQL, err := a.cache.get(cacheKey(kindDelete, table, params.Names()), func() (string, error) {
		builder, err := delete.NewBuilder(table, params.Names(), a.dialect)
		if err != nil {
			return "", err
		}
		return builder.Build(), nil
	})
	if err != nil {
		return nil, err
	}
	return &Statement{SQL: SQL, Params: params, Kind: kindDelete, Table: table}, nil
}

//BuildUpdateWhere returns UPDATE of set value non key columns matching where value columns, parameters are Merge(set, where)
func (a *Adapter) BuildUpdateWhere(ent *entity.Entity, set, where interface{}) (*Statement, error) {
	setParams, err := param.Extract(set, ent, withoutKeys)
	if err != nil {
		return nil, err
	}
	if len(setParams) == 0 {
		return nil, errx.EmptyParameter(kindUpdate, ent.Name())
	}
	whereParams, err := a.where(kindUpdate, ent, where)
	if err != nil {
		return nil, err
	}
	table := a.table(ent)
	SQL, err := a.cache.get(cacheKey(kindUpdate, table, setParams.Names(), whereParams.Names()), func() (string, error) {
		builder, err := update.NewBuilder(table, setParams.Names(), whereParams.Names(), a.dialect)
		if err != nil {
			return "", err
		}
		return builder.Build(), nil
	})
	if err != nil {
		return nil, err
	}
	return &Statement{SQL: SQL, Params: param.Merge(setParams, whereParams), Kind: kindUpdate, Table: table}, nil
}

//BuildInsert returns INSERT of value columns, key columns are included per key policy
func (a *Adapter) BuildInsert(ent *entity.Entity, value interface{}) (*Statement, error) {
	params, err := a.insertable(ent, value)
	if err != nil {
		return nil, err
	}
	if len(params) == 0 {
		return nil, errx.EmptyParameter(kindInsert, ent.Name())
	}
	table := a.table(ent)
	SQL, err := a.cache.get(cacheKey(kindInsert, table, params.Names()), func() (string, error) {
		builder, err := insert.NewBuilder(table, params.Names(), a.dialect)
		if err != nil {
			return "", err
		}
		return builder.Build(), nil
	})
	if err != nil {
		return nil, err
	}
	return &Statement{SQL: SQL, Params: params, Kind: kindInsert, Table: table}, nil
}

//BuildUpsert returns insert-or-update statement matching on where value columns.
//ON CONFLICT parameters are Merge(set, where), MERGE parameters are Merge(where, set).
func (a *Adapter) BuildUpsert(ent *entity.Entity, set, where interface{}) (*Statement, error) {
	setParams, err := a.insertable(ent, set)
	if err != nil {
		return nil, err
	}
	whereParams, err := a.where(kindUpsert, ent, where)
	if err != nil {
		return nil, err
	}
	var updateColumns []string
	for _, item := range setParams {
		if ent.Role(item.Name) != entity.RoleKey {
			updateColumns = append(updateColumns, item.Name)
		}
	}
	insertColumns := setParams.Names()
	keyColumns := whereParams.Names()
	table := a.table(ent)
	SQL, err := a.cache.get(cacheKey(kindUpsert, table, insertColumns, updateColumns, keyColumns), func() (string, error) {
		builder, err := upsert.NewBuilder(table, insertColumns, updateColumns, keyColumns, a.dialect)
		if err != nil {
			return "", err
		}
		return builder.Build(), nil
	})
	if err != nil {
		return nil, err
	}
	if a.dialect.Upsert == dialect.UpsertTypeMerge {
		return &Statement{SQL: SQL, Params: param.Merge(whereParams, setParams), Kind: kindUpsert, Table: table}, nil
	}
	return &Statement{SQL: SQL, Params: param.Merge(setParams, whereParams), Kind: kindUpsert, Table: table}, nil
}

func (a *Adapter) where(kind string, ent *entity.Entity, where interface{}) (param.Set, error) {
	params, err := param.Extract(where, ent, withKeys)
	if err != nil {
		return nil, err
	}
	if len(params) == 0 {
		return nil, errx.EmptyParameter(kind, ent.Name())
	}
	return params, nil
}

//insertable returns value parameters without computed columns, keys are kept only when key policy assigns them
func (a *Adapter) insertable(ent *entity.Entity, value interface{}) (param.Set, error) {
	if a.keyPolicy != option.KeyPolicyIncludeAssigned {
		return param.Extract(value, ent, withoutKeys)
	}
	params, err := param.Extract(value, ent, withKeys)
	if err != nil {
		return nil, err
	}
	var result = make(param.Set, 0, len(params))
	for _, item := range params {
		if ent.Role(item.Name) == entity.RoleKey && !a.keyPolicy.IncludesKey(ent.IsIdentity(item.Name)) {
			continue
		}
		result = append(result, item)
	}
	return result, nil
}
