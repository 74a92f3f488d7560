package credctx

// The quit flag uses the relaxed git-config boolean vocabulary on read:
// two independent matchers, combined asymmetrically by resolveQuit.
// Encoding always emits the canonical literals "true" and "false".

// parseTrue reports whether value is a recognized true-token.
func parseTrue(value []byte) bool {
	return equalFoldASCII(value, "yes") || equalFoldASCII(value, "on") || equalFoldASCII(value, "true")
}

// parseFalse reports whether value is a recognized false-token. The
// empty value counts as false.
func parseFalse(value []byte) bool {
	return equalFoldASCII(value, "no") || equalFoldASCII(value, "off") || equalFoldASCII(value, "false") ||
		len(value) == 0
}

// resolveQuit maps a quit value to its flag. A recognized true-token is
// true; otherwise the flag is true unless a false-token matches. Any
// unrecognized non-empty value therefore resolves to true, while the
// empty value resolves to false. Producers of the format rely on this
// default, so it must not be collapsed into a strict boolean parse.
func resolveQuit(value []byte) bool {
	if parseTrue(value) {
		return true
	}
	return !parseFalse(value)
}

// equalFoldASCII compares value against an all-lowercase ASCII token,
// ignoring ASCII case only. strings.EqualFold would additionally apply
// Unicode simple folding (e.g. U+017F matches 's'), which the format
// does not allow.
func equalFoldASCII(value []byte, token string) bool {
	if len(value) != len(token) {
		return false
	}
	for i := 0; i < len(value); i++ {
		b := value[i]
		if 'A' <= b && b <= 'Z' {
			b += 'a' - 'A'
		}
		if b != token[i] {
			return false
		}
	}
	return true
}
