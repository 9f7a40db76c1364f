// File: variable.go
// Role: immutable variable definitions (name + finite ordered domain).

package factor

import "fmt"

// Variable is a discrete random variable with a finite ordered domain.
// Domain values are mapped to indices 0..k-1 in declared order.
type Variable struct {
	id     int
	name   string
	domain []string
	index  map[string]int
}

func newVariable(id int, name string, domain []string) (*Variable, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(domain) == 0 {
		return nil, fmt.Errorf("%w: %q has an empty domain", ErrInvalidDomain, name)
	}
	v := &Variable{
		id:     id,
		name:   name,
		domain: append([]string(nil), domain...),
		index:  make(map[string]int, len(domain)),
	}
	for i, d := range domain {
		if _, dup := v.index[d]; dup {
			return nil, fmt.Errorf("%w: %q repeats value %q", ErrInvalidDomain, name, d)
		}
		v.index[d] = i
	}

	return v, nil
}

// ID returns the arena index of the variable.
func (v *Variable) ID() int { return v.id }

// Name returns the variable name.
func (v *Variable) Name() string { return v.name }

// Size returns the number of domain values.
func (v *Variable) Size() int { return len(v.domain) }

// Domain returns a copy of the original domain values in declared order.
func (v *Variable) Domain() []string { return append([]string(nil), v.domain...) }

// Value returns the original domain value at index i.
func (v *Variable) Value(i int) string { return v.domain[i] }

// Index maps an original domain value to its index.
// Returns ErrUnknownValue if value is not part of the domain.
func (v *Variable) Index(value string) (int, error) {
	i, ok := v.index[value]
	if !ok {
		return 0, fmt.Errorf("%w: %q for variable %q", ErrUnknownValue, value, v.name)
	}

	return i, nil
}
