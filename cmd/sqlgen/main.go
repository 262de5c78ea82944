package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	_ "github.com/denisenkom/go-mssqldb"
	"github.com/francoispqt/gojay"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/viant/sqlgen/adapter"
	"github.com/viant/sqlgen/entity"
	"github.com/viant/sqlgen/io"
	"github.com/viant/sqlgen/io/config"
	"github.com/viant/sqlgen/io/errx"
	"github.com/viant/sqlgen/metadata/registry"
	"github.com/viant/sqlgen/option"
	"github.com/viant/sqlgen/param"
	goio "io"
	"log/slog"
	"os"
	"reflect"
	"strings"
	"time"
)

type command struct {
	dialect   string
	table     string
	op        string
	set       string
	where     string
	computed  string
	values    string
	dsn       string
	config    string
	keyPolicy string
	timeout   time.Duration
	verbose   bool
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout goio.Writer) error {
	cmd := &command{}
	flags := flag.NewFlagSet("sqlgen", flag.ContinueOnError)
	flags.StringVar(&cmd.dialect, "dialect", "sqlserver", "dialect: sqlserver, pg or sqlite")
	flags.StringVar(&cmd.table, "table", "", "table name, optionally schema qualified, i.e. MySchema.Foo")
	flags.StringVar(&cmd.op, "op", "select", "statement: select, update, delete, insert or upsert")
	flags.StringVar(&cmd.set, "set", "", "comma separated set or insert columns")
	flags.StringVar(&cmd.where, "where", "", "comma separated where or key columns")
	flags.StringVar(&cmd.computed, "computed", "", "comma separated database computed columns")
	flags.StringVar(&cmd.values, "values", "", `JSON object with column values, i.e. {"Id":1}`)
	flags.StringVar(&cmd.dsn, "dsn", "", "data source name, executes statement when set")
	flags.StringVar(&cmd.config, "config", "", "project config URL")
	flags.StringVar(&cmd.keyPolicy, "keyPolicy", "", "key insert policy: exclude or assigned")
	flags.DurationVar(&cmd.timeout, "timeout", 0, "command timeout")
	flags.BoolVar(&cmd.verbose, "v", false, "log executed statements")
	if err := flags.Parse(args); err != nil {
		return err
	}
	return cmd.run(ctx, stdout)
}

func (c *command) run(ctx context.Context, stdout goio.Writer) error {
	if c.table == "" {
		return fmt.Errorf("table was empty")
	}
	var options []option.Option
	if c.config != "" {
		cfg, err := config.Load(ctx, c.config)
		if err != nil {
			return err
		}
		if err = config.Use(cfg); err != nil {
			return err
		}
		options = append(options, cfg.Options()...)
	}
	options = append([]option.Option{option.DialectName(c.dialect)}, options...)
	if c.keyPolicy != "" {
		options = append([]option.Option{option.KeyPolicy(c.keyPolicy)}, options...)
	}
	if c.timeout > 0 {
		options = append([]option.Option{option.Timeout(c.timeout)}, options...)
	}
	dialect := registry.LookupDialect(c.dialect)
	if dialect == nil {
		return fmt.Errorf("unsupported dialect: %v", c.dialect)
	}
	anAdapter := adapter.For(dialect, option.Options(options).KeyPolicy())
	descriptor := &entity.Descriptor{TableName: c.table, Computed: split(c.computed)}
	if strings.EqualFold(c.op, "upsert") {
		descriptor.Keys = split(c.where)
	}
	ent, err := entity.New(reflect.TypeOf(struct{}{}), descriptor, nil)
	if err != nil {
		return err
	}
	values := param.NewBag()
	if c.values != "" {
		if values, err = param.ParseBag([]byte(c.values)); err != nil {
			return fmt.Errorf("invalid values: %w", err)
		}
	}
	statement, err := c.build(anAdapter, ent, values)
	if err != nil {
		return err
	}
	if c.dsn == "" {
		return printStatement(stdout, statement)
	}
	if c.verbose {
		io.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
		io.ShowSQL(true)
	}
	db, err := sql.Open(dialect.Driver, c.dsn)
	if err != nil {
		return err
	}
	defer db.Close()
	if strings.EqualFold(c.op, "upsert") {
		product, err := registry.DetectProduct(ctx, db)
		if err != nil {
			return err
		}
		if !dialect.SupportsUpsert(product) {
			return errx.UnsupportedUpsert(c.table, fmt.Sprintf("%v %v.%v", product.Name, product.Major, product.Minor))
		}
	}
	if strings.EqualFold(c.op, "select") {
		table, err := anAdapter.QueryTable(ctx, db, statement, options...)
		if err != nil {
			return err
		}
		data, err := gojay.MarshalJSONObject(table)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, string(data))
		return err
	}
	affected, err := anAdapter.Exec(ctx, db, statement, options...)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(stdout, "affected: %v\n", affected)
	return err
}

func (c *command) build(anAdapter *adapter.Adapter, ent *entity.Entity, values *param.Bag) (*adapter.Statement, error) {
	set := subset(values, split(c.set))
	where := subset(values, split(c.where))
	switch strings.ToLower(c.op) {
	case "select":
		return anAdapter.BuildSelectWhere(ent, where)
	case "update":
		return anAdapter.BuildUpdateWhere(ent, set, where)
	case "delete":
		return anAdapter.BuildDeleteWhere(ent, where)
	case "insert":
		return anAdapter.BuildInsert(ent, set)
	case "upsert":
		return anAdapter.BuildUpsert(ent, set, where)
	}
	return nil, fmt.Errorf("unsupported op: %v", c.op)
}

func printStatement(stdout goio.Writer, statement *adapter.Statement) error {
	bag := param.NewBag()
	for _, item := range statement.Params {
		bag.Add(item.Name, item.Value)
	}
	data, err := gojay.MarshalJSONObject(bag)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(stdout, "%v\n%s\n", statement.SQL, data)
	return err
}

//subset returns bag with names in order, missing values are nil
func subset(values *param.Bag, names []string) *param.Bag {
	result := param.NewBag()
	for _, name := range names {
		value, _ := values.Get(name)
		result.Add(name, value)
	}
	return result
}

func split(list string) []string {
	var result []string
	for _, item := range strings.Split(list, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}
