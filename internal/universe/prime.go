package universe

// IsPrime reports whether n is a prime number.
// Defined for every int; anything below 2 (negatives included) is not prime.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}

	// d <= n/d rather than d*d <= n, which overflows near math.MaxInt
	for d := 3; d <= n/d; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}
