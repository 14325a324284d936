package adapters

import (
	"math/rand"
	"testing"
)

func TestReverseComplementSimple(t *testing.T) {
	if got := ReverseComplement("AGTC"); got != "GACT" {
		t.Errorf("ReverseComplement(AGTC) = %s, want GACT", got)
	}
	if got := ReverseComplement("AGGT"); got != "ACCT" {
		t.Errorf("ReverseComplement(AGGT) = %s, want ACCT", got)
	}
}

func TestReverseComplementAmbiguous(t *testing.T) {
	in := "RYSWKMBDHVN"
	want := "NBDHVKMWSRY"
	if got := ReverseComplement(in); got != want {
		t.Errorf("ReverseComplement(%s) = %s, want %s", in, got, want)
	}
}

func TestReverseComplementUnknownBecomesN(t *testing.T) {
	if got := ReverseComplement("A*"); got != "NT" {
		t.Errorf("ReverseComplement(A*) = %s, want NT", got)
	}
}

func TestReverseComplementEmpty(t *testing.T) {
	if got := ReverseComplement(""); got != "" {
		t.Errorf("ReverseComplement(\"\") = %q, want empty", got)
	}
}

func TestReverseComplementInvolution(t *testing.T) {
	const alphabet = "ACGTN"
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		b := make([]byte, rng.Intn(64)+1)
		for j := range b {
			b[j] = alphabet[rng.Intn(len(alphabet))]
		}
		s := string(b)
		if got := ReverseComplement(ReverseComplement(s)); got != s {
			t.Fatalf("rc(rc(%s)) = %s", s, got)
		}
	}
}
