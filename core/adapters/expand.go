// core/adapters/expand.go
package adapters

// RCSuffix is appended to the identifier of reverse-complemented records.
const RCSuffix = "_rc"

// Expand maps one source record to the bars it contributes:
//
//	role     off      on          only
//	adapter  forward  forward+rc  rc
//	barcode  forward  forward     forward
func Expand(id, seq string, role Role, mode RCMode) []Bar {
	if role != RoleAdapter {
		return []Bar{{ID: id, Seq: seq}}
	}
	out := make([]Bar, 0, 2)
	if mode == RCOff || mode == RCOn {
		out = append(out, Bar{ID: id, Seq: seq})
	}
	if mode == RCOn || mode == RCOnly {
		out = append(out, Bar{ID: id + RCSuffix, Seq: ReverseComplement(seq), RevComp: true})
	}
	return out
}
