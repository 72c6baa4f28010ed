package vector

import (
	"fmt"
	"strings"
)

// String renders the live elements as "[a, b, c]"; an empty vector renders
// as "[]". The form is for diagnostics and is not meant to be parsed.
func (v *Vector[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < v.length; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, v.buf[i])
	}
	sb.WriteByte(']')

	return sb.String()
}
