// pkg/api/bars_v1.go
package api

// BarV1 is the stable JSON/JSONL schema for one loaded record.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type BarV1 struct {
	Table   string `json:"table,omitempty"` // set in JSONL only
	ID      string `json:"id"`
	Seq     string `json:"seq"`
	RevComp bool   `json:"rc"`
}

// TableV1 is one labelled collection ("Adapter", "Barcode", ...).
type TableV1 struct {
	Label   string  `json:"label"`
	Records []BarV1 `json:"records"`
}
