package adapter

import (
	"github.com/minio/highwayhash"
	"strconv"
	"strings"
	"sync"
)

var hashKey = []byte("sqlgen-statement-cache-hash-key!")

//cache memoizes generated SQL by statement kind, table and column lists
type cache struct {
	mux     sync.RWMutex
	entries map[uint64][]*entry
}

type entry struct {
	key string
	SQL string
}

func newCache() *cache {
	return &cache{entries: map[uint64][]*entry{}}
}

//cacheKey writes every part length prefixed so distinct column lists never share a key
func cacheKey(kind, table string, columns ...[]string) string {
	sb := strings.Builder{}
	writePart(&sb, kind)
	writePart(&sb, table)
	for _, group := range columns {
		sb.WriteString(strconv.Itoa(len(group)))
		sb.WriteByte('#')
		for _, column := range group {
			writePart(&sb, column)
		}
	}
	return sb.String()
}

func writePart(sb *strings.Builder, part string) {
	sb.WriteString(strconv.Itoa(len(part)))
	sb.WriteByte(':')
	sb.WriteString(part)
}

func hash(key string) (uint64, error) {
	hasher, err := highwayhash.New64(hashKey)
	if err != nil {
		return 0, err
	}
	_, _ = hasher.Write([]byte(key))
	return hasher.Sum64(), nil
}

//get returns cached SQL or builds and stores it, colliding hashes are resolved by full key
func (c *cache) get(key string, build func() (string, error)) (string, error) {
	sum, err := hash(key)
	if err != nil {
		return build()
	}
	c.mux.RLock()
	for _, candidate := range c.entries[sum] {
		if candidate.key == key {
			c.mux.RUnlock()
			return candidate.SQL, nil
		}
	}
	c.mux.RUnlock()
	SQL, err := build()
	if err != nil {
		return "", err
	}
	c.mux.Lock()
	defer c.mux.Unlock()
	for _, candidate := range c.entries[sum] {
		if candidate.key == key {
			return candidate.SQL, nil
		}
	}
	c.entries[sum] = append(c.entries[sum], &entry{key: key, SQL: SQL})
	return SQL, nil
}

func (c *cache) len() int {
	c.mux.RLock()
	defer c.mux.RUnlock()
	result := 0
	for _, entries := range c.entries {
		result += len(entries)
	}
	return result
}
