// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqload/internal/app"
	"seqload/pkg/api"
)

func write(t *testing.T, fn string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), fn)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func gz(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestEndToEndCompressedInputs(t *testing.T) {
	adapters := write(t, "adapters.fa.gz", gz(t, ">TruSeq_R1\nAGATCGGAAGAGC\nACACGTCT\n>poly\nNNNN\n"))
	barcodes := write(t, "barcodes.fa", []byte(">S1\nACGTAC\n>S2\nTTGGCC\n"))

	var out, errBuf bytes.Buffer
	code := app.Run([]string{
		"--rc", "on",
		"--barcodes", barcodes,
		"--output", "jsonl",
		adapters,
	}, &out, &errBuf)
	require.Equal(t, 0, code, errBuf.String())

	var got []api.BarV1
	for _, line := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		var b api.BarV1
		require.NoError(t, json.Unmarshal([]byte(line), &b))
		got = append(got, b)
	}
	assert.Equal(t, []api.BarV1{
		{Table: "Adapter", ID: "TruSeq_R1", Seq: "AGATCGGAAGAGCACACGTCT"},
		{Table: "Adapter", ID: "TruSeq_R1_rc", Seq: "AGACGTGTGCTCTTCCGATCT", RevComp: true},
		{Table: "Adapter", ID: "poly", Seq: "NNNN"},
		{Table: "Adapter", ID: "poly_rc", Seq: "NNNN", RevComp: true},
		{Table: "Barcode", ID: "S1", Seq: "ACGTAC"},
		{Table: "Barcode", ID: "S2", Seq: "TTGGCC"},
	}, got)
}

func TestTextOutputIsDeterministicAcrossRuns(t *testing.T) {
	fa := write(t, "a.fa", []byte(">a\nACGT\n>b\nGGCC\n"))
	runOnce := func() string {
		var out, errB bytes.Buffer
		code := app.Run([]string{"--rc", "only", fa}, &out, &errB)
		require.Equal(t, 0, code, errB.String())
		return out.String()
	}
	first := runOnce()
	assert.Contains(t, first, "a_rc")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, runOnce())
	}
}

func TestTransactionalFlagStillExits1(t *testing.T) {
	fa := write(t, "dup.fa", []byte(">a\nAC\n>a\nAC\n"))
	var out, errB bytes.Buffer
	code := app.Run([]string{"--transactional", fa}, &out, &errB)
	assert.Equal(t, 1, code)
	assert.Contains(t, errB.String(), "same name")
}
