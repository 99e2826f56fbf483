package bpevocab

import "testing"

func TestPackUnpackRoundTrip(t *testing.T) {
	cases := []struct {
		left, right Symbol
	}{
		{0, 0},
		{1, 2},
		{255, 256},
		{4294967295, 0},
		{0, 4294967295},
		{firstCompoundSymbol, firstCompoundSymbol + 1},
	}

	for _, c := range cases {
		p := Pack(c.left, c.right)
		gotLeft, gotRight := Unpack(p)
		if gotLeft != c.left || gotRight != c.right {
			t.Errorf("Pack/Unpack(%d, %d) round-tripped to (%d, %d)", c.left, c.right, gotLeft, gotRight)
		}
	}
}

func TestPackDoesNotCollapseSwappedPairs(t *testing.T) {
	if Pack(1, 2) == Pack(2, 1) {
		t.Fatal("Pack(1, 2) must not equal Pack(2, 1)")
	}
}

func TestBytesToSymbols(t *testing.T) {
	in := []byte("abc\x00\xff")
	got := BytesToSymbols(in)
	want := []Symbol{'a', 'b', 'c', 0, 255}
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %d want %d", i, got[i], want[i])
		}
	}
}

func TestByteRoundTripOnIdentityTable(t *testing.T) {
	table := NewDefaultSymbolTable()
	inputs := [][]byte{
		{},
		[]byte("hello world"),
		{0, 1, 2, 255, 254, 128},
	}

	for _, in := range inputs {
		seq := BytesToSymbols(in)
		out := make([]byte, 0, len(in))
		for _, s := range seq {
			b, ok := table.Expand(s)
			if !ok {
				t.Fatalf("symbol %d missing from default table", s)
			}
			out = append(out, b...)
		}
		if string(out) != string(in) {
			t.Errorf("round trip mismatch: got %q want %q", out, in)
		}
	}
}
