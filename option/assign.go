package option

import (
	"reflect"
)

//Assign assigns options to supplied pointers of matching or assignable type, returns true if assign at least one
func Assign(options []Option, supplied ...interface{}) bool {
	assigned := false
	for _, target := range supplied {
		targetValue := reflect.ValueOf(target)
		if targetValue.Kind() != reflect.Ptr || targetValue.IsNil() {
			continue
		}
		targetType := targetValue.Type().Elem()
		for _, candidate := range options {
			if candidate == nil {
				continue
			}
			candidateValue := reflect.ValueOf(candidate)
			if !candidateValue.Type().AssignableTo(targetType) {
				continue
			}
			targetValue.Elem().Set(candidateValue)
			assigned = true
			break
		}
	}
	return assigned
}
