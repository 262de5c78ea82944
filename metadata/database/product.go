package database

import "strings"

//Product represents database product
type Product struct {
	Name         string
	Driver       string //database/sql driver name
	DriverPkg    string //go package name of the registered driver type
	Aliases      []string
	VersionQuery string
	Major        int
	Minor        int
	Release      int
}

//Equal checks if product are equal
func (p *Product) Equal(product *Product) bool {
	if product == nil {
		return false
	}
	return strings.EqualFold(p.Name, product.Name) && p.Major == product.Major && p.Minor == product.Minor
}

//Matches returns true if name matches product name, driver, driver package or alias
func (p *Product) Matches(name string) bool {
	if name == "" {
		return false
	}
	if strings.EqualFold(p.Name, name) || strings.EqualFold(p.Driver, name) || strings.EqualFold(p.DriverPkg, name) {
		return true
	}
	for _, alias := range p.Aliases {
		if strings.EqualFold(alias, name) {
			return true
		}
	}
	return false
}

//Supports returns true if product version is at least since version
func (p *Product) Supports(since *Product) bool {
	if since == nil {
		return true
	}
	if p.Major != since.Major {
		return p.Major > since.Major
	}
	return p.Minor >= since.Minor
}

//WithVersion returns product copy with supplied version
func (p *Product) WithVersion(version *Product) *Product {
	result := *p
	result.Major, result.Minor, result.Release = version.Major, version.Minor, version.Release
	return &result
}
