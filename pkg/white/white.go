// Package white removes white space from byte slices. Sequence
// lines are full of it.
package white

var asciiSpace = [256]bool{
	'\t': true, '\n': true, '\v': true, '\f': true, '\r': true, ' ': true,
}

// Remove acts on a byte slice, in place, and removes all the white
// space. The slice comes back with its length adjusted, but the
// capacity unchanged.
func Remove(ps *[]byte) {
	s := *ps
	n := 0
	for _, c := range s {
		if !asciiSpace[c] {
			s[n] = c
			n++
		}
	}
	*ps = s[:n]
}

// Has says if there is any white space at all in s.
func Has(s []byte) bool {
	for _, c := range s {
		if asciiSpace[c] {
			return true
		}
	}
	return false
}
