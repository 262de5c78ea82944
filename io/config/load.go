package config

import (
	"context"
	"fmt"
	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

var fs = afs.New()

//Load loads YAML config from any afs supported URL, i.e. file:///etc/sqlgen.yaml or mem://localhost/sqlgen.yaml
func Load(ctx context.Context, URL string) (*Config, error) {
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to download config %v: %w", URL, err)
	}
	result := &Config{}
	if err = yaml.Unmarshal(data, result); err != nil {
		return nil, fmt.Errorf("failed to decode config %v: %w", URL, err)
	}
	if err = result.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %v: %w", URL, err)
	}
	return result, nil
}
