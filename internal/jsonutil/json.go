// internal/jsonutil/json.go
package jsonutil

import (
	"encoding/json"
	"io"

	"github.com/tidwall/pretty"
)

var prettyOpts = &pretty.Options{Width: 80, Prefix: "", Indent: "  ", SortKeys: false}

// Encode writes v as one line of compact JSON, or as indented JSON when
// indent is set.
func Encode(w io.Writer, v any, indent bool) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if indent {
		b = pretty.PrettyOptions(b, prettyOpts)
	} else {
		b = append(b, '\n')
	}
	_, err = w.Write(b)
	return err
}
