package random

// ASCIIString generates a random ASCII string with length in [minLen, maxLen)
func ASCIIString(minLen, maxLen int) string {
	const letters = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

	s := make([]byte, IntBetween(minLen, maxLen))
	for i := range s {
		s[i] = letters[rnd.Intn(len(letters))]
	}

	return string(s)
}
