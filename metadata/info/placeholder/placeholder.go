package placeholder

//Generator represents placeholder generator
type Generator interface {
	Resolver() func() string
}
