// core/adapters/presets.go
package adapters

import (
	"fmt"
	"sort"
)

// Definition is a built-in adapter preset. Seq2 (read 2) and SeqC
// (common contaminant) are optional.
type Definition struct {
	Name string
	Seq1 string
	Seq2 string
	SeqC string
	Info string
}

// Oligonucleotide sequences © 2018 Illumina, Inc. All rights reserved.
var presets = map[string]Definition{
	"TruSeq": {
		Name: "TruSeq",
		Seq1: "AGATCGGAAGAGCACACGTCTGAACTCCAGTCA",
		Seq2: "AGATCGGAAGAGCGTCGTGTAGGGAAAGAGTGT",
		Info: "TruSeq LT and TruSeq HT-based kits",
	},
	"TrueSeq-Methyl": {
		Name: "TrueSeq-Methyl",
		Seq1: "AGATCGGAAGAGCACACGTCTGAAC",
		Seq2: "AGATCGGAAGAGCGTCGTGTAGGGA",
		Info: "ScriptSeq and TruSeq DNA Methylation",
	},
	"TrueSeq-smallRNA": {
		Name: "TrueSeq-smallRNA",
		Seq1: "TGGAATTCTCGGGTGCCAAGG",
		Info: "TruSeq Small RNA",
	},
	"TrueSeq-Ribo": {
		Name: "TrueSeq-Ribo",
		Seq1: "AGATCGGAAGAGCACACGTCT",
		Info: "TruSeq Ribo Profile",
	},
	"Nextera-TruSight": {
		Name: "Nextera-TruSight",
		Seq1: "CTGTCTCTTATACACATCT",
		Seq2: "CTGTCTCTTATACACATCT",
		Info: "AmpliSeq, Nextera, Nextera DNA Flex, Nextera DNA, Nextera XT, Nextera Enrichment, " +
			"Nextera Rapid Capture Enrichment, TruSight Enrichment, TruSight Rapid Capture Enrichment, TruSight HLA",
	},
	"Nextera-Matepair": {
		Name: "Nextera-Matepair",
		Seq1: "GATCGGAAGAGCACACGTCTGAACTCCAGTCAC",
		Seq2: "GATCGGAAGAGCGTCGTGTAGGGAAAGAGTGT",
		SeqC: "CTGTCTCTTATACACATCT",
		Info: "Nextera Mate Pair",
	},
}

// LookupPreset returns the preset registered under name (exact match).
func LookupPreset(name string) (Definition, error) {
	d, ok := presets[name]
	if !ok {
		return Definition{}, fmt.Errorf("%w %q", ErrUnknownPreset, name)
	}
	return d, nil
}

// PresetNames lists the catalog in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
