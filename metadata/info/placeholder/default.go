package placeholder

const (
	//Default default positional placeholder
	Default = "?"
	//Named prefix of named parameter in generated SQL
	Named = "@"
)

//DefaultGenerator represents DefaultPlaceholderGenerator
type DefaultGenerator struct {
}

//Resolver returns function that returns Default placeholder
func (p *DefaultGenerator) Resolver() func() string {
	return func() string {
		return Default
	}
}
