package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDivisorsOf(t *testing.T) {
	t.Run("Zero", func(t *testing.T) {
		// the trial-divisor scan 1..sqrt(0) is empty, so 0 has no divisors
		assert.Empty(t, divisorsOf(0))
	})

	t.Run("One", func(t *testing.T) {
		assert.Equal(t, []int{1}, divisorsOf(1))
	})

	t.Run("Composite", func(t *testing.T) {
		assert.ElementsMatch(t, []int{1, 2, 3, 4, 6, 12}, divisorsOf(12))
	})

	t.Run("PerfectSquare", func(t *testing.T) {
		// sqrt hit must not be double-counted
		assert.ElementsMatch(t, []int{1, 3, 9}, divisorsOf(9))
	})

	t.Run("Prime", func(t *testing.T) {
		assert.ElementsMatch(t, []int{1, 13}, divisorsOf(13))
	})
}

func TestFindDivisors(t *testing.T) {
	t.Run("ZeroIncrementsToOne", func(t *testing.T) {
		n, divs := findDivisors(0)
		assert.Equal(t, 1, n)
		assert.Equal(t, []int{1}, divs)
	})

	t.Run("OneUnchanged", func(t *testing.T) {
		n, divs := findDivisors(1)
		assert.Equal(t, 1, n)
		assert.Equal(t, []int{1}, divs)
	})

	t.Run("NegativeUsesAbsoluteValue", func(t *testing.T) {
		n, divs := findDivisors(-6)
		assert.Equal(t, -6, n)
		assert.ElementsMatch(t, []int{1, 2, 3, 6}, divs)
	})

	t.Run("TerminatesAcrossRepresentativeRange", func(t *testing.T) {
		for n := -100; n <= 100; n++ {
			adjusted, divs := findDivisors(n)
			assert.NotEmpty(t, divs, "no divisors for %d", n)
			for _, d := range divs {
				assert.Greater(t, d, 0)
				assert.Zero(t, abs(adjusted)%d, "divisor %d of %d", d, adjusted)
			}
		}
	})
}
