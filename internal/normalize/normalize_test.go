package normalize

import "testing"

func TestCollapseNumbers(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"2021-01-01 ERROR code 42", "@-@-@ ERROR code @"},
		{"pi is 3.14159", "pi is @"},
		{"no digits here", "no digits here"},
		{"1A2B", "@A@B"},
		{"v1.2.3", "v@.@"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := CollapseNumbers(tc.in); got != tc.want {
			t.Errorf("CollapseNumbers(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCollapseHex(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"addr=0x1A2B3C", "addr=@"},
		{"0XDEADBEEF and 0xcafe", "@ and @"},
		{"deadbeef without prefix", "deadbeef without prefix"},
		{"0x", "0x"},
	}
	for _, tc := range cases {
		if got := CollapseHex(tc.in); got != tc.want {
			t.Errorf("CollapseHex(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCollapseBars(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"---- START ----", "=START="},
		{"== header ==\nbody line\n~~~~ footer ~~~~\n", "=header=\nbody line\n=footer=\n"},
		{"middle ---- bars stay", "middle ---- bars stay"},
		{"-no-space-after-bar", "-no-space-after-bar"},
	}
	for _, tc := range cases {
		if got := CollapseBars(tc.in); got != tc.want {
			t.Errorf("CollapseBars(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestApplyChainOrder(t *testing.T) {
	// The hex filter must run before the numeric filter: otherwise the
	// leading 0 of 0x1A2B3C is consumed as a decimal digit and the literal
	// is mangled instead of collapsed.
	got := AllFilters().Apply("addr=0x1A2B3C value=10")
	want := "addr=@ value=@"
	if got != want {
		t.Fatalf("Apply = %q, want %q", got, want)
	}
}

func TestApplyBarsWithNumbers(t *testing.T) {
	a := AllFilters().Apply("---- START 123 ----\n")
	b := AllFilters().Apply("------- START 456 -------\n")
	want := "=START @=\n"
	if a != want {
		t.Fatalf("first document normalized to %q, want %q", a, want)
	}
	if a != b {
		t.Fatalf("bars of different length normalized differently: %q vs %q", a, b)
	}
}

func TestApplySelectsFilters(t *testing.T) {
	in := "---- 0xff 12 ----"
	cases := []struct {
		name    string
		filters FilterSet
		want    string
	}{
		{"none", FilterSet{}, in},
		{"numbers only", FilterSet{Numbers: true}, "---- @xff @ ----"},
		{"hex only", FilterSet{Hex: true}, "---- @ 12 ----"},
		{"bars only", FilterSet{Bars: true}, "=0xff 12="},
		{"all", AllFilters(), "=@ @="},
	}
	for _, tc := range cases {
		if got := tc.filters.Apply(in); got != tc.want {
			t.Errorf("%s: Apply(%q) = %q, want %q", tc.name, in, got, tc.want)
		}
	}
}

func TestApplyIdempotent(t *testing.T) {
	inputs := []string{
		"2021-01-01 ERROR code 42\naddr=0x1A2B3C value=10\n",
		"---- START 123 ----\nplain line\n======= END =======\n",
		"already normalized: @ and = markers\n",
		"",
	}
	sets := []FilterSet{{}, {Numbers: true}, {Hex: true}, {Bars: true}, AllFilters()}
	for _, in := range inputs {
		for _, fs := range sets {
			once := fs.Apply(in)
			twice := fs.Apply(once)
			if once != twice {
				t.Errorf("filters %+v not idempotent on %q: %q != %q", fs, in, once, twice)
			}
		}
	}
}

func TestMask(t *testing.T) {
	seen := map[uint8]FilterSet{}
	for _, hex := range []bool{false, true} {
		for _, num := range []bool{false, true} {
			for _, bars := range []bool{false, true} {
				fs := FilterSet{Hex: hex, Numbers: num, Bars: bars}
				mask := fs.Mask()
				if prior, dup := seen[mask]; dup {
					t.Fatalf("mask %d shared by %+v and %+v", mask, prior, fs)
				}
				seen[mask] = fs
			}
		}
	}
	if AllFilters().Mask() != 7 {
		t.Fatalf("AllFilters mask = %d, want 7", AllFilters().Mask())
	}
}
