package formats

import "net"

// The three field validators are deliberately independent predicates; the
// format parsers sequence them so that each failure surfaces under its own
// ParseFailure kind.

// ValidSpringName reports whether s is a well-formed springname:
// 1 to 63 characters from [a-z0-9-].
func ValidSpringName(s string) bool {
	if len(s) < 1 || len(s) > 63 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '-' {
			continue
		}
		return false
	}
	return true
}

// ValidHostName reports whether s is a well-formed hostname field:
// 1 to 63 characters from [a-z0-9-./]. The dot admits dotted hostnames and
// the slash admits a resource suffix, which node construction strips off.
func ValidHostName(s string) bool {
	if len(s) < 1 || len(s) > 63 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '-' || c == '.' || c == '/' {
			continue
		}
		return false
	}
	return true
}

// ValidAddress reports whether s parses as an IP address. IPv6 is accepted
// by the parser; the rest of the model treats the address as the dotted
// string it arrived as.
func ValidAddress(s string) bool {
	return net.ParseIP(s) != nil
}
