// Package writers turns loaded record tables into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (text table, JSON, JSONL).
//   • core/adapters stays domain-only; it knows the text table and nothing else.
//   • JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
