package pg

import "strconv"

//PlaceholderGenerator represents placeholder
type PlaceholderGenerator struct {
}

//Resolver returns Postgres placeholder
func (p *PlaceholderGenerator) Resolver() func() string {
	counter := 0
	return func() string {
		counter++
		return "$" + strconv.Itoa(counter)
	}
}
