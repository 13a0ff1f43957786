package quantize

// Primes are the stride candidates tried by Reduce, smallest first.
var Primes = []int{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47,
	53, 59, 61, 67, 71, 73, 79, 83, 89, 97,
}

// strideFits reports whether every slot off the stride is empty.
func strideFits(values []int, p int) bool {
	if len(values)%p != 0 {
		return false
	}
	for j, v := range values {
		if j%p != 0 && v != 0 {
			return false
		}
	}
	return true
}

// Reduce returns the coarsest resolution of a quantized measure that keeps
// every non-zero slot. After each successful reduction the prime scan starts
// over from 2. The source slice is never modified.
func Reduce(source []int) []int {
	result := make([]int, len(source))
	copy(result, source)

	for len(result) > 1 {
		reduced := false
		for _, p := range Primes {
			if !strideFits(result, p) {
				continue
			}
			next := make([]int, len(result)/p)
			for j := range next {
				next[j] = result[j*p]
			}
			result = next
			reduced = true
			break
		}
		if !reduced {
			break
		}
	}
	return result
}
