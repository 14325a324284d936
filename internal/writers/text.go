// internal/writers/text.go
package writers

import (
	"io"

	"seqload/core/adapters"
)

func init() {
	RegisterTable("text", func(w io.Writer, tables []Table, _ bool) error {
		for _, t := range tables {
			if err := adapters.WriteTable(w, t.Label, t.Bars); err != nil {
				return err
			}
		}
		return nil
	})
}
