package signature

import "fmt"

// Count is the number of parameters of one kind: an exact number, or a range when some of
// them have defaults. The lower bound counts required parameters, the upper bound adds
// the defaulted ones.
type Count struct {
	Required int
	Optional int
}

// Exact returns a Count of n required parameters.
func Exact(n int) Count {
	if n < 0 {
		panic(fmt.Sprintf("negative parameter count %d", n))
	}

	return Count{Required: n}
}

// Range returns a Count between lo and hi parameters, both inclusive.
func Range(lo, hi int) Count {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("invalid parameter count range [%d, %d]", lo, hi))
	}

	return Count{Required: lo, Optional: hi - lo}
}

// Min returns the lower bound, the number of required parameters.
func (c Count) Min() int { return c.Required }

// Max returns the upper bound, required plus defaulted parameters.
func (c Count) Max() int { return c.Required + c.Optional }

// IsRange reports whether some parameters have defaults.
func (c Count) IsRange() bool { return c.Optional > 0 }

// Add returns the sum of two counts; bounds add independently.
func (c Count) Add(other Count) Count {
	return Count{Required: c.Required + other.Required, Optional: c.Optional + other.Optional}
}

func (c Count) String() string {
	if !c.IsRange() {
		return fmt.Sprint(c.Required)
	}

	return fmt.Sprintf("%d..%d", c.Min(), c.Max())
}
