package entity

import (
	"golang.org/x/sync/singleflight"
	"reflect"
	"strings"
	"sync"
)

//Registry represents entity metadata cache
type Registry struct {
	mux         sync.RWMutex
	descriptors map[string]*Descriptor
	pluralizer  Pluralizer
	entities    sync.Map
	group       singleflight.Group
}

var _registry = NewRegistry()

//NewRegistry creates a registry
func NewRegistry() *Registry {
	return &Registry{descriptors: map[string]*Descriptor{}, pluralizer: Suffix}
}

//Lookup returns cached entity for supplied type
func Lookup(t reflect.Type) (*Entity, error) {
	return _registry.Lookup(t)
}

//For returns entity for type parameter
func For[T any]() (*Entity, error) {
	return _registry.Lookup(reflect.TypeOf((*T)(nil)).Elem())
}

//Register registers entity descriptor
func Register(descriptors ...*Descriptor) {
	_registry.Register(descriptors...)
}

//SetPluralizer sets default name pluralizer
func SetPluralizer(pluralizer Pluralizer) {
	_registry.SetPluralizer(pluralizer)
}

//Reset removes registered descriptors and restores default pluralizer
func Reset() {
	_registry.Reset()
}

//Lookup returns cached entity for supplied type
func (r *Registry) Lookup(t reflect.Type) (*Entity, error) {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if cached, ok := r.entities.Load(t); ok {
		return cached.(*Entity), nil
	}
	value, err, _ := r.group.Do(typeKey(t), func() (interface{}, error) {
		if cached, ok := r.entities.Load(t); ok {
			return cached, nil
		}
		r.mux.RLock()
		descriptor := r.descriptor(t)
		pluralizer := r.pluralizer
		r.mux.RUnlock()
		anEntity, err := New(t, descriptor, pluralizer)
		if err != nil {
			return nil, err
		}
		r.entities.Store(t, anEntity)
		return anEntity, nil
	})
	if err != nil {
		return nil, err
	}
	return value.(*Entity), nil
}

//Register registers entity descriptors, matching cached entities are resolved again on next lookup
func (r *Registry) Register(descriptors ...*Descriptor) {
	r.mux.Lock()
	for _, descriptor := range descriptors {
		r.descriptors[strings.ToLower(descriptor.Type)] = descriptor
	}
	r.mux.Unlock()
	r.reset()
}

//SetPluralizer sets default name pluralizer
func (r *Registry) SetPluralizer(pluralizer Pluralizer) {
	if pluralizer == nil {
		pluralizer = Suffix
	}
	r.mux.Lock()
	r.pluralizer = pluralizer
	r.mux.Unlock()
	r.reset()
}

//Reset removes registered descriptors and restores default pluralizer
func (r *Registry) Reset() {
	r.mux.Lock()
	r.descriptors = map[string]*Descriptor{}
	r.pluralizer = Suffix
	r.mux.Unlock()
	r.reset()
}

func (r *Registry) reset() {
	r.entities.Range(func(key, value interface{}) bool {
		r.entities.Delete(key)
		return true
	})
}

func (r *Registry) descriptor(t reflect.Type) *Descriptor {
	if descriptor, ok := r.descriptors[strings.ToLower(t.String())]; ok {
		return descriptor
	}
	if t.Name() == "" {
		return nil
	}
	return r.descriptors[strings.ToLower(t.Name())]
}

func typeKey(t reflect.Type) string {
	return t.PkgPath() + ":" + t.String()
}
