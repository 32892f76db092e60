package puzzle

import "golang.org/x/exp/constraints"

// Number is any integer or float type.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum adds up nums.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// Abs returns |x|.
func Abs[T constraints.Signed | constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// GCD returns the greatest common divisor of a and b (non-negative).
func GCD[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// LCM returns the least common multiple of nums; LCM() is 1 and any zero
// yields 0.
func LCM[T constraints.Integer](nums ...T) T {
	var result T = 1
	for _, n := range nums {
		if n == 0 {
			return 0
		}
		result = result / GCD(result, n) * n
		if result < 0 {
			result = -result
		}
	}
	return result
}
