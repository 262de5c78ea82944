package registry

import (
	"github.com/viant/sqlgen/metadata/info"
	"sort"
	"strings"
	"sync"
)

var _registry = &registry{
	dialects: make(map[string]*info.Dialect),
}

//RegisterDialect register dialect
func RegisterDialect(dialect *info.Dialect) {
	_registry.RegisterDialect(dialect)
}

//LookupDialect lookups dialect by product name, driver name or driver package
func LookupDialect(name string) *info.Dialect {
	return _registry.LookupDialect(name)
}

//Dialects returns registered dialects sorted by product name
func Dialects() []*info.Dialect {
	return _registry.Dialects()
}

type registry struct {
	mux      sync.RWMutex
	dialects map[string]*info.Dialect
}

func (r *registry) LookupDialect(name string) *info.Dialect {
	r.mux.RLock()
	defer r.mux.RUnlock()
	if dialect, ok := r.dialects[strings.ToLower(name)]; ok {
		return dialect
	}
	for _, candidate := range r.dialects {
		if candidate.Product.Matches(name) {
			return candidate
		}
	}
	return nil
}

func (r *registry) RegisterDialect(dialect *info.Dialect) {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.dialects[strings.ToLower(dialect.Name)] = dialect
}

func (r *registry) Dialects() []*info.Dialect {
	r.mux.RLock()
	var result = make([]*info.Dialect, 0, len(r.dialects))
	for _, dialect := range r.dialects {
		result = append(result, dialect)
	}
	r.mux.RUnlock()
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}
