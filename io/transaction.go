package io

import (
	"database/sql"
	"github.com/viant/sqlgen/option"
)

//Transaction represents caller owned transaction, it is never committed or rolled back here
type Transaction struct {
	*sql.Tx
	Global bool
}

//TransactionFor returns transaction supplied with options or nil
func TransactionFor(options []option.Option) *Transaction {
	var tx *sql.Tx
	option.Assign(options, &tx)
	if tx == nil {
		return nil
	}
	return &Transaction{Tx: tx, Global: true}
}

//ExecutorFor returns supplied transaction if any, otherwise executor
func ExecutorFor(executor Executor, options []option.Option) Executor {
	if transaction := TransactionFor(options); transaction != nil {
		return transaction.Tx
	}
	return executor
}
