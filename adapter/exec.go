package adapter

import (
	"context"
	"database/sql"
	"github.com/pkg/errors"
	"github.com/viant/sqlgen/io"
	"github.com/viant/sqlgen/io/errx"
	"github.com/viant/sqlgen/io/read"
	"github.com/viant/sqlgen/option"
	"time"
)

//Exec binds and executes statement, returns affected rows
func (a *Adapter) Exec(ctx context.Context, executor io.Executor, statement *Statement, options ...option.Option) (int64, error) {
	ctx, cancel := withTimeout(ctx, options)
	defer cancel()
	SQL, args, err := a.dialect.Bind(statement.SQL, statement.Params.Lookup)
	if err != nil {
		return 0, err
	}
	started := time.Now()
	result, err := io.ExecutorFor(executor, options).ExecContext(ctx, SQL, args...)
	io.LogSQL(ctx, a.dialect.Name, SQL, args, time.Since(started), err)
	if err != nil {
		return 0, errors.Wrapf(errx.Classify(statement.Kind, statement.Table, err), "failed to exec: %v", SQL)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "failed to get affected rows")
	}
	return affected, nil
}

//Query binds and runs statement, rows are passed to fn and closed afterwards
func (a *Adapter) Query(ctx context.Context, executor io.Executor, statement *Statement, fn func(rows *sql.Rows) error, options ...option.Option) error {
	ctx, cancel := withTimeout(ctx, options)
	defer cancel()
	SQL, args, err := a.dialect.Bind(statement.SQL, statement.Params.Lookup)
	if err != nil {
		return err
	}
	started := time.Now()
	rows, err := io.ExecutorFor(executor, options).QueryContext(ctx, SQL, args...)
	io.LogSQL(ctx, a.dialect.Name, SQL, args, time.Since(started), err)
	if err != nil {
		return errors.Wrapf(err, "failed to query: %v", SQL)
	}
	defer rows.Close()
	if err = fn(rows); err != nil {
		return errors.Wrapf(err, "failed to read: %v", SQL)
	}
	return nil
}

//QueryTable runs statement and materializes all rows
func (a *Adapter) QueryTable(ctx context.Context, executor io.Executor, statement *Statement, options ...option.Option) (*read.Table, error) {
	var result *read.Table
	err := a.Query(ctx, executor, statement, func(rows *sql.Rows) error {
		var err error
		result, err = read.ReadTable(rows)
		return err
	}, options...)
	return result, err
}

func withTimeout(ctx context.Context, options []option.Option) (context.Context, context.CancelFunc) {
	if timeout := option.Options(options).Timeout(); timeout > 0 {
		return context.WithTimeout(ctx, timeout)
	}
	return ctx, func() {}
}
