package adapters

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTableHeaderPadding(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, "TruSeq", nil))
	assert.Equal(t, "TruSeq:"+strings.Repeat(" ", 16)+"Sequence:\n\n", buf.String())
}

func TestWriteTableLongLabelClamps(t *testing.T) {
	var buf bytes.Buffer
	label := strings.Repeat("L", 30)
	require.NoError(t, WriteTable(&buf, label, nil))
	assert.Equal(t, label+":  Sequence:\n\n", buf.String())
}

func TestWriteTableRows(t *testing.T) {
	long := strings.Repeat("i", 30)
	bars := []Bar{
		{ID: "ad1", Seq: "ACGT"},
		{ID: "ad1_rc", Seq: "ACGT", RevComp: true},
		{ID: long, Seq: "GG"},
		{ID: strings.Repeat("j", 22), Seq: "TT"},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, "Adapter", bars))

	lines := strings.Split(buf.String(), "\n")
	require.Len(t, lines, 7) // header, 4 rows, blank, trailing ""
	assert.Equal(t, "Adapter:"+strings.Repeat(" ", 15)+"Sequence:", lines[0])
	assert.Equal(t, "ad1"+strings.Repeat(" ", 20)+"ACGT", lines[1])
	assert.Equal(t, "ad1_rc"+strings.Repeat(" ", 17)+"ACGT", lines[2])
	assert.Equal(t, long+"  GG", lines[3])
	assert.Equal(t, strings.Repeat("j", 22)+"  TT", lines[4])
	assert.Equal(t, "", lines[5])
}
