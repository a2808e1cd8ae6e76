package primality

// IsPrime checks n by trial division with divisors of the form 6k±1 up to √n.
func IsPrime(n int64) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}

	// i <= n/i is i*i <= n without overflowing near math.MaxInt64
	for i := int64(5); i <= n/i; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}

	return true
}
