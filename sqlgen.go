package sqlgen

import (
	"context"
	"database/sql"
	"github.com/viant/sqlgen/adapter"
	"github.com/viant/sqlgen/entity"
	"github.com/viant/sqlgen/io"
	"github.com/viant/sqlgen/io/config"
	"github.com/viant/sqlgen/io/read"
	"github.com/viant/sqlgen/option"
	"github.com/viant/sqlgen/param"
)

//AdapterFor returns adapter for executor, explicit options take precedence over installed config
func AdapterFor(executor interface{}, options ...option.Option) (*adapter.Adapter, error) {
	options = withDefaults(options)
	dialect, err := config.Dialect(executor, options...)
	if err != nil {
		return nil, err
	}
	return adapter.For(dialect, option.Options(options).KeyPolicy()), nil
}

//withDefaults appends installed config options, the config dialect is resolved by config.Dialect after executor capability
func withDefaults(options []option.Option) []option.Option {
	defaults := config.Default().Options()
	if len(defaults) == 0 {
		return options
	}
	var result = make([]option.Option, 0, len(options)+len(defaults))
	result = append(result, options...)
	for _, candidate := range defaults {
		if _, ok := candidate.(option.DialectName); ok {
			continue
		}
		result = append(result, candidate)
	}
	return result
}

func prepare[T any](executor interface{}, options []option.Option) (*entity.Entity, *adapter.Adapter, []option.Option, error) {
	ent, err := entity.For[T]()
	if err != nil {
		return nil, nil, nil, err
	}
	anAdapter, err := AdapterFor(executor, options...)
	if err != nil {
		return nil, nil, nil, err
	}
	return ent, anAdapter, withDefaults(options), nil
}

//GetWhere returns all T rows matching every where value column
func GetWhere[T any](ctx context.Context, executor io.Executor, where interface{}, options ...option.Option) ([]T, error) {
	ent, anAdapter, options, err := prepare[T](executor, options)
	if err != nil {
		return nil, err
	}
	statement, err := anAdapter.BuildSelectWhere(ent, where)
	if err != nil {
		return nil, err
	}
	var result []T
	err = anAdapter.Query(ctx, executor, statement, func(rows *sql.Rows) error {
		result, err = read.All[T](rows, ent)
		return err
	}, options...)
	return result, err
}

//GetWhereFirst returns first T row matching every where value column, false if there was none
func GetWhereFirst[T any](ctx context.Context, executor io.Executor, where interface{}, options ...option.Option) (T, bool, error) {
	var result T
	var found bool
	ent, anAdapter, options, err := prepare[T](executor, options)
	if err != nil {
		return result, false, err
	}
	statement, err := anAdapter.BuildSelectWhere(ent, where)
	if err != nil {
		return result, false, err
	}
	err = anAdapter.Query(ctx, executor, statement, func(rows *sql.Rows) error {
		result, found, err = read.First[T](rows, ent)
		return err
	}, options...)
	return result, found, err
}

//UpdateWhere updates set value non key columns of T rows matching where value, returns affected rows
func UpdateWhere[T any](ctx context.Context, executor io.Executor, set, where interface{}, options ...option.Option) (int64, error) {
	ent, anAdapter, options, err := prepare[T](executor, options)
	if err != nil {
		return 0, err
	}
	statement, err := anAdapter.BuildUpdateWhere(ent, set, where)
	if err != nil {
		return 0, err
	}
	return anAdapter.Exec(ctx, executor, statement, options...)
}

//DeleteWhere deletes T rows matching where value, returns affected rows
func DeleteWhere[T any](ctx context.Context, executor io.Executor, where interface{}, options ...option.Option) (int64, error) {
	ent, anAdapter, options, err := prepare[T](executor, options)
	if err != nil {
		return 0, err
	}
	statement, err := anAdapter.BuildDeleteWhere(ent, where)
	if err != nil {
		return 0, err
	}
	return anAdapter.Exec(ctx, executor, statement, options...)
}

//Insert inserts value as T row, returns affected rows
func Insert[T any](ctx context.Context, executor io.Executor, value interface{}, options ...option.Option) (int64, error) {
	ent, anAdapter, options, err := prepare[T](executor, options)
	if err != nil {
		return 0, err
	}
	statement, err := anAdapter.BuildInsert(ent, value)
	if err != nil {
		return 0, err
	}
	return anAdapter.Exec(ctx, executor, statement, options...)
}

//Upsert inserts set value as T row or updates the row matching where value, returns affected rows
func Upsert[T any](ctx context.Context, executor io.Executor, set, where interface{}, options ...option.Option) (int64, error) {
	ent, anAdapter, options, err := prepare[T](executor, options)
	if err != nil {
		return 0, err
	}
	statement, err := anAdapter.BuildUpsert(ent, set, where)
	if err != nil {
		return 0, err
	}
	return anAdapter.Exec(ctx, executor, statement, options...)
}

//QueryTable runs SQL with optional @name parameters and materializes all rows
func QueryTable(ctx context.Context, executor io.Executor, SQL string, params interface{}, options ...option.Option) (*read.Table, error) {
	anAdapter, err := AdapterFor(executor, options...)
	if err != nil {
		return nil, err
	}
	options = withDefaults(options)
	statement := &adapter.Statement{SQL: SQL}
	if params != nil {
		if statement.Params, err = param.Extract(params, nil, param.Filter{IncludeKeyColumns: true}); err != nil {
			return nil, err
		}
	}
	return anAdapter.QueryTable(ctx, executor, statement, options...)
}
