package param

import (
	"bytes"
	"encoding/json"
	"fmt"
	"github.com/francoispqt/gojay"
	"time"
)

//Bag represents ordered named parameters, enumeration follows insertion order
type Bag struct {
	names  []string
	values map[string]interface{}
}

//NewBag creates a bag
func NewBag() *Bag {
	return &Bag{values: map[string]interface{}{}}
}

//Add adds or replaces parameter
func (b *Bag) Add(name string, value interface{}) *Bag {
	if b.values == nil {
		b.values = map[string]interface{}{}
	}
	if _, ok := b.values[name]; !ok {
		b.names = append(b.names, name)
	}
	b.values[name] = value
	return b
}

//Get returns parameter value
func (b *Bag) Get(name string) (interface{}, bool) {
	value, ok := b.values[name]
	return value, ok
}

//Names returns parameter names in insertion order
func (b *Bag) Names() []string {
	return b.names
}

//Len returns parameter count
func (b *Bag) Len() int {
	if b == nil {
		return 0
	}
	return len(b.names)
}

//UnmarshalJSONObject decodes JSON object keeping key order
func (b *Bag) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	var value interface{}
	if err := dec.Interface(&value); err != nil {
		return err
	}
	b.Add(key, value)
	return nil
}

//NKeys returns 0 to decode all keys
func (b *Bag) NKeys() int {
	return 0
}

//MarshalJSONObject encodes parameters in insertion order
func (b *Bag) MarshalJSONObject(enc *gojay.Encoder) {
	for _, name := range b.names {
		switch actual := b.values[name].(type) {
		case nil:
			enc.AddNullKey(name)
		case time.Time:
			enc.AddTimeKey(name, &actual, time.RFC3339)
		case []byte:
			enc.AddStringKey(name, string(actual))
		case string, bool, int, int64, int32, int16, int8, uint64, uint32, uint16, uint8, float64, float32, gojay.MarshalerJSONObject, gojay.MarshalerJSONArray:
			enc.AddInterfaceKey(name, actual)
		default:
			enc.AddStringKey(name, fmt.Sprint(actual))
		}
	}
}

//IsNil returns true for nil bag
func (b *Bag) IsNil() bool {
	return b == nil
}

//ParseBag decodes JSON object into a bag, truncated or trailing input is rejected
func ParseBag(data []byte) (*Bag, error) {
	if trimmed := bytes.TrimSpace(data); len(trimmed) == 0 || trimmed[0] != '{' || !json.Valid(trimmed) {
		return nil, fmt.Errorf("invalid JSON object: %s", data)
	}
	bag := NewBag()
	if err := gojay.UnmarshalJSONObject(data, bag); err != nil {
		return nil, err
	}
	return bag, nil
}
