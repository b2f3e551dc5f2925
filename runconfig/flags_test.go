package runconfig

import "testing"

func TestSizeFlag(t *testing.T) {
	cases := map[string]int{
		"128":  128,
		"4k":   4 << 10,
		"4Ki":  4 << 10,
		"16Mi": 16 << 20,
		"1Gi":  1 << 30,
	}
	for in, want := range cases {
		var f SizeFlag
		if err := f.Set(in); err != nil {
			t.Fatalf("Set(%q): %v", in, err)
		}
		if got := f.Bytes(); got != want {
			t.Fatalf("Set(%q).Bytes() = %d, want %d", in, got, want)
		}
	}
}

func TestSizeFlagRejectsGarbage(t *testing.T) {
	var f SizeFlag
	if err := f.Set("not-a-size"); err == nil {
		t.Fatalf("Set(garbage) succeeded, want error")
	}
}

func TestHashAlgFlag(t *testing.T) {
	var f HashAlgFlag
	if err := f.Set("blake2b"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if f.Alg() != "blake2b" {
		t.Fatalf("Alg() = %q, want blake2b", f.Alg())
	}
	if err := f.Set("sha1"); err == nil {
		t.Fatalf("Set(sha1) succeeded, want error")
	}
}
