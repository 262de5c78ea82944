package param

import "strings"

const (
	//FirstSuffix suffix of merged first set names
	FirstSuffix = "_1"
	//SecondSuffix suffix of merged second set names
	SecondSuffix = "_2"
)

//Param represents named parameter
type Param struct {
	Name  string
	Value interface{}
}

//Set represents ordered parameters with unique names
type Set []Param

//Names returns parameter names in order
func (s Set) Names() []string {
	var result = make([]string, len(s))
	for i := range s {
		result[i] = s[i].Name
	}
	return result
}

//Lookup returns parameter value
func (s Set) Lookup(name string) (interface{}, bool) {
	for i := range s {
		if s[i].Name == name {
			return s[i].Value, true
		}
	}
	return nil, false
}

//Add adds or replaces parameter keeping first position
func (s Set) Add(name string, value interface{}) Set {
	for i := range s {
		if s[i].Name == name {
			s[i].Value = value
			return s
		}
	}
	return append(s, Param{Name: name, Value: value})
}

//Map returns parameters as map
func (s Set) Map() map[string]interface{} {
	var result = make(map[string]interface{}, len(s))
	for _, item := range s {
		result[item.Name] = item.Value
	}
	return result
}

//String returns parameter names
func (s Set) String() string {
	return strings.Join(s.Names(), ",")
}

//Merge combines set and where parameters, first names get _1, second names get _2 suffix
func Merge(first, second Set) Set {
	var result = make(Set, 0, len(first)+len(second))
	for _, item := range first {
		result = append(result, Param{Name: item.Name + FirstSuffix, Value: item.Value})
	}
	for _, item := range second {
		result = append(result, Param{Name: item.Name + SecondSuffix, Value: item.Value})
	}
	return result
}
