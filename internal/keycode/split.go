package keycode

// Split breaks a raw command string into atomic keycodes.
//
// Brace-delimited tokens ("{Alt}"), the two-character sequence "+!",
// and the literals "!" and "^" stay whole; every other character is a
// keycode of its own. An unterminated "{" group runs to the end of the
// string and is kept as one token.
func Split(command string) []Keycode {
	var codes []Keycode

	runes := []rune(command)
	for i := 0; i < len(runes); i++ {
		switch r := runes[i]; r {
		case '{':
			j := i + 1
			for j < len(runes) && runes[j] != '}' {
				j++
			}
			if j < len(runes) {
				j++ // include the closing brace
			}
			codes = append(codes, Keycode(runes[i:j]))
			i = j - 1
		case '+':
			if i+1 < len(runes) && runes[i+1] == '!' {
				codes = append(codes, Keycode("+!"))
				i++
			} else {
				codes = append(codes, Keycode("+"))
			}
		default:
			codes = append(codes, Keycode(r))
		}
	}

	return codes
}
