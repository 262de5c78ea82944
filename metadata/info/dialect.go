package info

import (
	"database/sql"
	"fmt"
	"github.com/viant/sqlgen/io/errx"
	"github.com/viant/sqlgen/metadata/database"
	"github.com/viant/sqlgen/metadata/info/dialect"
	"github.com/viant/sqlgen/metadata/info/placeholder"
	"strings"
)

//Dialect represents dialect
type Dialect struct {
	database.Product
	QuoteStart          string
	QuoteEnd            string
	Upsert              dialect.UpsertFeatures
	UpsertSince         *database.Product // minimum product version supporting Upsert statement
	Placeholder         string // positional placeholder used when parameters are not named, default '?'
	PlaceholderResolver placeholder.Generator
	NamedParameters     bool // driver binds @name with sql.Named arguments
	Transactional       bool
}

//Dialecter represents a dialect capability, implemented by connections or wrappers that know their dialect
type Dialecter interface {
	Dialect() *Dialect
}

//Lookup returns parameter value for a name
type Lookup func(name string) (interface{}, bool)

//Quote returns identifier wrapped with dialect quote characters
func (d *Dialect) Quote(identifier string) string {
	if d.QuoteStart == "" && d.QuoteEnd == "" {
		return identifier
	}
	return d.QuoteStart + identifier + d.QuoteEnd
}

//QualifiedTable returns quoted schema qualified table
func (d *Dialect) QualifiedTable(schema, table string) string {
	if schema == "" {
		return d.Quote(table)
	}
	return d.Quote(schema) + "." + d.Quote(table)
}

//SupportsUpsert returns true if product version supports dialect upsert statement, unknown version is assumed supported
func (d *Dialect) SupportsUpsert(product *database.Product) bool {
	if d.Upsert == dialect.UpsertTypeUnsupported {
		return false
	}
	if product == nil || product.Major == 0 {
		return true
	}
	return product.Supports(d.UpsertSince)
}

//PlaceholderGetter returns PlaceholderResolver if not nil, otherwise returns function that returns Placeholder
func (d *Dialect) PlaceholderGetter() func() string {
	if d.PlaceholderResolver != nil {
		return d.PlaceholderResolver.Resolver()
	}
	return (&placeholder.DefaultGenerator{}).Resolver()
}

//Bind converts @name parameters to the driver form, returns SQL and arguments in binding order.
//Named dialects keep SQL as is and bind each referenced name once with sql.Named,
//positional dialects replace each reference with a placeholder, numbered placeholders are reused for repeated names.
func (d *Dialect) Bind(SQL string, lookup Lookup) (string, []interface{}, error) {
	refs := parameterRefs(SQL)
	if len(refs) == 0 {
		return SQL, nil, nil
	}
	var args = make([]interface{}, 0, len(refs))
	if d.NamedParameters {
		bound := map[string]bool{}
		for _, ref := range refs {
			if bound[ref.name] {
				continue
			}
			value, ok := lookup(ref.name)
			if !ok {
				return "", nil, unbound(ref.name)
			}
			bound[ref.name] = true
			args = append(args, sql.Named(ref.name, value))
		}
		return SQL, args, nil
	}
	reusable := d.PlaceholderResolver != nil
	getPlaceholder := d.PlaceholderGetter()
	var placeholders = map[string]string{}
	sb := strings.Builder{}
	sb.Grow(len(SQL))
	offset := 0
	for _, ref := range refs {
		sb.WriteString(SQL[offset:ref.start])
		offset = ref.end
		if aPlaceholder, ok := placeholders[ref.name]; ok && reusable {
			sb.WriteString(aPlaceholder)
			continue
		}
		value, ok := lookup(ref.name)
		if !ok {
			return "", nil, unbound(ref.name)
		}
		aPlaceholder := getPlaceholder()
		placeholders[ref.name] = aPlaceholder
		sb.WriteString(aPlaceholder)
		args = append(args, value)
	}
	sb.WriteString(SQL[offset:])
	return sb.String(), args, nil
}

func unbound(name string) error {
	return &errx.Error{Kind: errx.ErrUnboundParameter, Op: "bind", Columns: []string{name}, Cause: fmt.Errorf("no value for %v%v", placeholder.Named, name)}
}

type parameterRef struct {
	name       string
	start, end int
}

//parameterRefs returns @name references outside literals, quoted identifiers and comments
func parameterRefs(SQL string) []parameterRef {
	const (
		sText = iota
		sSQ   // '...'
		sDQ   // "..."
		sBR   // [...]
		sLC   // -- ...
		sBC   // /* ... */
	)
	var result []parameterRef
	state := sText
	for i := 0; i < len(SQL); i++ {
		c := SQL[i]
		switch state {
		case sSQ:
			if c == '\'' {
				state = sText
			}
			continue
		case sDQ:
			if c == '"' {
				state = sText
			}
			continue
		case sBR:
			if c == ']' {
				state = sText
			}
			continue
		case sLC:
			if c == '\n' {
				state = sText
			}
			continue
		case sBC:
			if c == '*' && i+1 < len(SQL) && SQL[i+1] == '/' {
				state = sText
				i++
			}
			continue
		}
		switch c {
		case '\'':
			state = sSQ
		case '"':
			state = sDQ
		case '[':
			state = sBR
		case '-':
			if i+1 < len(SQL) && SQL[i+1] == '-' {
				state = sLC
				i++
			}
		case '/':
			if i+1 < len(SQL) && SQL[i+1] == '*' {
				state = sBC
				i++
			}
		case '@':
			if i+1 < len(SQL) && SQL[i+1] == '@' { //system variable i.e. @@ROWCOUNT
				i++
				for i+1 < len(SQL) && isNameChar(SQL[i+1]) {
					i++
				}
				continue
			}
			if i+1 >= len(SQL) || !isNameStart(SQL[i+1]) {
				continue
			}
			end := i + 2
			for end < len(SQL) && isNameChar(SQL[end]) {
				end++
			}
			result = append(result, parameterRef{name: SQL[i+1 : end], start: i, end: end})
			i = end - 1
		}
	}
	return result
}

func isNameStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameChar(c byte) bool {
	return isNameStart(c) || (c >= '0' && c <= '9')
}
