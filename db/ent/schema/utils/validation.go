package utils

import "fmt"

// EnumValidator restricts a string column to a fixed vocabulary. The
// input-type and item-status columns use it so a bad writer cannot park
// a record in a state the pipeline will never pick up.
func EnumValidator(allowed ...string) func(string) error {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return func(s string) error {
		if _, ok := set[s]; ok {
			return nil
		}
		return fmt.Errorf("%q is not an allowed value", s)
	}
}
