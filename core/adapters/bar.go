// core/adapters/bar.go
package adapters

import (
	"fmt"
	"strings"
)

// Bar is one loaded sequence entry. Bars are created by Expand and are
// never modified after they are appended to a Store.
type Bar struct {
	ID      string
	Seq     string
	RevComp bool // derived by reverse-complementing the source record
}

// Role tells the loader whether it is reading adapters or barcodes.
type Role int

const (
	RoleAdapter Role = iota
	RoleBarcode
)

func (r Role) String() string {
	switch r {
	case RoleAdapter:
		return "adapter"
	case RoleBarcode:
		return "barcode"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// Plural is used in user-facing messages ("Two adapters have ...").
func (r Role) Plural() string { return r.String() + "s" }

// ParseRole accepts "adapter(s)" or "barcode(s)" in any case.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "adapter", "adapters":
		return RoleAdapter, nil
	case "barcode", "barcodes":
		return RoleBarcode, nil
	}
	return 0, fmt.Errorf("invalid role %q (want adapter | barcode)", s)
}

// RCMode selects which orientations are emitted for adapters.
type RCMode int

const (
	RCOff  RCMode = iota // forward only
	RCOn                 // forward and reverse complement
	RCOnly               // reverse complement replaces forward
)

func (m RCMode) String() string {
	switch m {
	case RCOff:
		return "off"
	case RCOn:
		return "on"
	case RCOnly:
		return "only"
	default:
		return fmt.Sprintf("RCMode(%d)", int(m))
	}
}

// ParseRCMode accepts off | on | only in any case.
func ParseRCMode(s string) (RCMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "":
		return RCOff, nil
	case "on":
		return RCOn, nil
	case "only":
		return RCOnly, nil
	}
	return 0, fmt.Errorf("invalid reverse-complement mode %q (want off | on | only)", s)
}
