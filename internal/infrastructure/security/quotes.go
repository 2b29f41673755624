package security

// maskQuoted blanks out the interior of balanced quoted regions so that
// detectors never match text that merely documents or echoes a dangerous
// string. The quote characters themselves are kept so token boundaries
// survive. An unterminated quote is left unmasked: when quoting is
// ambiguous the validator fails toward matching, not permitting.
func maskQuoted(command string) string {
	runes := []rune(command)
	out := make([]rune, len(runes))
	copy(out, runes)

	var quote rune
	start := -1
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if quote == 0 {
			switch r {
			case '\\':
				i++ // escaped character, literal
			case '\'', '"':
				quote = r
				start = i
			}
			continue
		}
		// Inside double quotes a backslash still escapes the next rune;
		// inside single quotes nothing does.
		if r == '\\' && quote == '"' {
			i++
			continue
		}
		if r == quote {
			for j := start + 1; j < i; j++ {
				out[j] = ' '
			}
			quote = 0
			start = -1
		}
	}
	return string(out)
}
