package adapters

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresetCatalog(t *testing.T) {
	names := PresetNames()
	require.Len(t, names, 6)
	assert.True(t, sort.StringsAreSorted(names))

	for _, n := range names {
		d, err := LookupPreset(n)
		require.NoError(t, err)
		assert.Equal(t, n, d.Name)
		assert.NotEmpty(t, d.Seq1)
		assert.NotEmpty(t, d.Info)
	}

	mp, err := LookupPreset("Nextera-Matepair")
	require.NoError(t, err)
	assert.Equal(t, "CTGTCTCTTATACACATCT", mp.SeqC)
}

func TestPresetLookupReturnsCopy(t *testing.T) {
	d, err := LookupPreset("TruSeq")
	require.NoError(t, err)
	d.Seq1 = "AAAA"
	again, _ := LookupPreset("TruSeq")
	assert.Equal(t, "AGATCGGAAGAGCACACGTCTGAACTCCAGTCA", again.Seq1)
}

func TestPresetUnknown(t *testing.T) {
	_, err := LookupPreset("truseq")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownPreset))
}
