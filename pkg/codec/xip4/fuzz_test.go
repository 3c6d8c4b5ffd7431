package xip4

import (
	"strings"
	"testing"
)

func FuzzLongRoundTrip(f *testing.F) {
	f.Add(uint32(0))
	f.Add(uint32(0x7F000001))
	f.Add(uint32(0xC0A80101))
	f.Add(uint32(0xFFFFFFFF))

	f.Fuzz(func(t *testing.T, v uint32) {
		s, err := FromLong(uint64(v))
		if err != nil {
			t.Fatalf("FromLong(%d) failed: %v", v, err)
		}
		back, err := ToLong(s)
		if err != nil {
			t.Fatalf("ToLong(%q) failed: %v", s, err)
		}
		if back != v {
			t.Errorf("round-trip mismatch: %d → %q → %d", v, s, back)
		}
	})
}

func FuzzValidateIPNeverPanics(f *testing.F) {
	f.Add("127.0.0.1")
	f.Add("127.1")
	f.Add("...")
	f.Add("999.999.999.999")
	f.Add("1/2")

	f.Fuzz(func(t *testing.T, s string) {
		ok := ValidateIP(s)
		if !ok {
			return
		}
		// 有效地址必然可转换，且完整 4 段形式可无损往返
		v, err := ToLong(s)
		if err != nil {
			t.Fatalf("ValidateIP(%q) true but ToLong failed: %v", s, err)
		}
		if strings.Count(s, ".") == 3 && !strings.Contains(s, ".0") {
			back, _ := FromLong(uint64(v))
			norm, _ := ToLong(back)
			if norm != v {
				t.Errorf("canonical form drifted: %q → %d → %q", s, v, back)
			}
		}
	})
}
