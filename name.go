package dirorm

import "strings"

// HumanName turns a type identifier such as "OrganizationalUnit" or "DNSZone"
// into the lower-case phrase used in error messages ("organizational unit",
// "dns zone").
//
// A word is an upper-case letter followed either by lower-case letters, or by
// a run of upper-case letters that ends right before another upper-case
// letter or at the end of the string. Anything that does not start a word is
// skipped.
func HumanName(identifier string) string {
	return strings.ToLower(strings.Join(splitWords(identifier), " "))
}

func splitWords(s string) []string {
	var words []string
	n := len(s)
	for i := 0; i < n; {
		if !isUpper(s[i]) {
			i++
			continue
		}
		j := i + 1
		if j < n && isLower(s[j]) {
			for j < n && isLower(s[j]) {
				j++
			}
			words = append(words, s[i:j])
			i = j
			continue
		}
		k := j
		for k < n && isUpper(s[k]) {
			k++
		}
		switch {
		case k == n:
			words = append(words, s[i:n])
			i = n
		case k > j:
			// Leave the last capital of the run for the next word.
			words = append(words, s[i:k-1])
			i = k - 1
		default:
			// Lone capital followed by a non-letter.
			i++
		}
	}
	return words
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
