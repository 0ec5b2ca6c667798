package dispatchers

// Tokenize splits line on single spaces, except spaces inside a matched pair
// of double quotes.
//
// A space is a split point only when the number of quote characters on each
// side of it is even. A line with an odd number of quotes therefore has no
// split point at all and comes back as a single token. Consecutive spaces
// produce empty tokens. Quote characters are kept; see Parse for stripping.
func Tokenize(line string) []string {
	total := 0
	for i := 0; i < len(line); i++ {
		if line[i] == '"' {
			total++
		}
	}
	if total%2 != 0 {
		return []string{line}
	}

	var tokens []string
	start, seen := 0, 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '"':
			seen++
		case ' ':
			// total is even, so an even prefix implies an even suffix
			if seen%2 == 0 {
				tokens = append(tokens, line[start:i])
				start = i + 1
			}
		}
	}

	return append(tokens, line[start:])
}
