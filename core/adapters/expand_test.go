package adapters

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandTable(t *testing.T) {
	fwd := Bar{ID: "x", Seq: "AGGT"}
	rc := Bar{ID: "x_rc", Seq: "ACCT", RevComp: true}

	cases := []struct {
		role Role
		mode RCMode
		want []Bar
	}{
		{RoleAdapter, RCOff, []Bar{fwd}},
		{RoleAdapter, RCOn, []Bar{fwd, rc}},
		{RoleAdapter, RCOnly, []Bar{rc}},
		{RoleBarcode, RCOff, []Bar{fwd}},
		{RoleBarcode, RCOn, []Bar{fwd}},
		{RoleBarcode, RCOnly, []Bar{fwd}},
	}
	for _, tc := range cases {
		t.Run(tc.role.String()+"/"+tc.mode.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, Expand("x", "AGGT", tc.role, tc.mode))
		})
	}
}

func TestExpandRCIdentifier(t *testing.T) {
	for _, id := range []string{"a", "ad 1 desc", "x_rc", "ünï"} {
		out := Expand(id, "ACGT", RoleAdapter, RCOnly)
		if assert.Len(t, out, 1) {
			assert.Equal(t, id+"_rc", out[0].ID)
			assert.True(t, out[0].RevComp)
			assert.True(t, strings.HasSuffix(out[0].ID, RCSuffix))
		}
	}
}

func TestParseRoleAndMode(t *testing.T) {
	r, err := ParseRole("Barcodes")
	assert.NoError(t, err)
	assert.Equal(t, RoleBarcode, r)
	_, err = ParseRole("primer")
	assert.Error(t, err)

	for in, want := range map[string]RCMode{"OFF": RCOff, "on": RCOn, " Only ": RCOnly, "": RCOff} {
		m, err := ParseRCMode(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, m, in)
	}
	_, err = ParseRCMode("both")
	assert.Error(t, err)
}
