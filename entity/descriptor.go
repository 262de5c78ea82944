package entity

import "strings"

//Descriptor represents explicitly declared entity metadata, it takes precedence over type based resolution
type Descriptor struct {
	Type      string   `yaml:"type"` //type name, i.e. ExampleTable or model.ExampleTable
	TableName string   `yaml:"table,omitempty"`
	Keys      []string `yaml:"keys,omitempty"`
	Identity  []string `yaml:"identity,omitempty"`
	Computed  []string `yaml:"computed,omitempty"`
}

func (d *Descriptor) role(column string) (Role, bool) {
	if contains(d.Computed, column) {
		return RoleComputed, true
	}
	if contains(d.Keys, column) || contains(d.Identity, column) {
		return RoleKey, true
	}
	return RoleNormal, false
}

func (d *Descriptor) isIdentity(column string) bool {
	return contains(d.Identity, column)
}

func (d *Descriptor) names() []string {
	var result []string
	for _, group := range [][]string{d.Keys, d.Identity, d.Computed} {
		for _, name := range group {
			if !contains(result, name) {
				result = append(result, name)
			}
		}
	}
	return result
}

func contains(names []string, name string) bool {
	for _, candidate := range names {
		if strings.EqualFold(candidate, name) {
			return true
		}
	}
	return false
}
