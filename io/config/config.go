package config

import (
	"fmt"
	"github.com/viant/sqlgen/entity"
	"github.com/viant/sqlgen/metadata/registry"
	"github.com/viant/sqlgen/option"
	"sync/atomic"
	"time"
)

//Config represents project wide generation config
type Config struct {
	Dialect   string               `yaml:"dialect,omitempty"`   //default dialect name, i.e. sqlite
	KeyPolicy string               `yaml:"keyPolicy,omitempty"` //exclude or assigned
	Naming    string               `yaml:"naming,omitempty"`    //suffix or inflect
	TimeoutMs int                  `yaml:"timeoutMs,omitempty"`
	Entities  []*entity.Descriptor `yaml:"entities,omitempty"`
}

var _default atomic.Pointer[Config]

//Default returns installed config or nil
func Default() *Config {
	return _default.Load()
}

//Use validates and installs config as process default, registers entity descriptors and naming.
//Use(nil) removes the default config together with registered descriptors and naming.
func Use(config *Config) error {
	if config == nil {
		_default.Store(nil)
		entity.Reset()
		return nil
	}
	if err := config.Validate(); err != nil {
		return err
	}
	pluralizer, _ := entity.PluralizerFor(config.Naming)
	entity.SetPluralizer(pluralizer)
	if len(config.Entities) > 0 {
		entity.Register(config.Entities...)
	}
	_default.Store(config)
	return nil
}

//Validate checks config values
func (c *Config) Validate() error {
	if c.Dialect != "" && registry.LookupDialect(c.Dialect) == nil {
		return fmt.Errorf("unsupported dialect: %v", c.Dialect)
	}
	switch option.KeyPolicy(c.KeyPolicy) {
	case "", option.KeyPolicyExclude, option.KeyPolicyIncludeAssigned:
	default:
		return fmt.Errorf("unsupported keyPolicy: %v", c.KeyPolicy)
	}
	if _, err := entity.PluralizerFor(c.Naming); err != nil {
		return err
	}
	if c.TimeoutMs < 0 {
		return fmt.Errorf("invalid timeoutMs: %v", c.TimeoutMs)
	}
	for i, descriptor := range c.Entities {
		if descriptor == nil || descriptor.Type == "" {
			return fmt.Errorf("entities[%v]: type was empty", i)
		}
	}
	return nil
}

//ApplyOption applies config option
func (c *Config) ApplyOption(options ...option.Option) {
	for _, opt := range options {
		switch actual := opt.(type) {
		case option.DialectName:
			c.Dialect = string(actual)
		case option.KeyPolicy:
			c.KeyPolicy = string(actual)
		case option.Timeout:
			c.TimeoutMs = int(time.Duration(actual) / time.Millisecond)
		case *entity.Descriptor:
			c.Entities = append(c.Entities, actual)
		}
	}
}

//Options returns config as options, explicitly supplied call options take precedence when placed first
func (c *Config) Options() []option.Option {
	if c == nil {
		return nil
	}
	var result []option.Option
	if c.Dialect != "" {
		result = append(result, option.DialectName(c.Dialect))
	}
	if c.KeyPolicy != "" {
		result = append(result, option.KeyPolicy(c.KeyPolicy))
	}
	if c.TimeoutMs > 0 {
		result = append(result, option.Timeout(time.Duration(c.TimeoutMs)*time.Millisecond))
	}
	return result
}
