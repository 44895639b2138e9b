package calc

import (
	"fmt"
	"math"
	"strconv"

	"github.com/samber/lo"
	"golang.org/x/exp/constraints"
)

// Number is any integer or floating point type
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum adds numbers in order starting from zero. An empty slice sums to 0.
func Sum[T Number](numbers []T) T {
	return lo.Sum(numbers)
}

// ParseNumbers parses each argument as a finite float64
func ParseNumbers(args []string) ([]float64, error) {
	numbers := make([]float64, 0, len(args))
	for i, arg := range args {
		n, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d (%q) is not a number: %w", i+1, arg, err)
		}
		if !isFinite(n) {
			return nil, fmt.Errorf("argument %d (%q) is not a finite number", i+1, arg)
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}

// SumFinite sums numbers and fails if the result overflows to an infinity
func SumFinite(numbers []float64) (float64, error) {
	total := Sum(numbers)
	if !isFinite(total) {
		return 0, fmt.Errorf("sum overflows float64")
	}
	return total, nil
}

func isFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
