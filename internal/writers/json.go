// internal/writers/json.go
package writers

import (
	"bufio"
	"io"

	"seqload/core/adapters"
	"seqload/internal/jsonutil"
	"seqload/pkg/api"
)

func toAPIBar(b adapters.Bar) api.BarV1 {
	return api.BarV1{ID: b.ID, Seq: b.Seq, RevComp: b.RevComp}
}

func toAPITable(t Table) api.TableV1 {
	out := api.TableV1{Label: t.Label, Records: make([]api.BarV1, 0, len(t.Bars))}
	for _, b := range t.Bars {
		out.Records = append(out.Records, toAPIBar(b))
	}
	return out
}

func init() {
	// json: one document holding every table.
	RegisterTable("json", func(w io.Writer, tables []Table, pretty bool) error {
		doc := make([]api.TableV1, 0, len(tables))
		for _, t := range tables {
			doc = append(doc, toAPITable(t))
		}
		return jsonutil.Encode(w, doc, pretty)
	})

	// jsonl: one record per line, tagged with its table label.
	RegisterTable("jsonl", func(w io.Writer, tables []Table, _ bool) error {
		bw := bufio.NewWriterSize(w, 64<<10)
		for _, t := range tables {
			for _, b := range t.Bars {
				rec := toAPIBar(b)
				rec.Table = t.Label
				if err := jsonutil.Encode(bw, rec, false); err != nil {
					return err
				}
			}
		}
		return bw.Flush()
	})
}
