package fsutil

import (
	"path/filepath"
	"testing"
)

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home) // windows

	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"/etc/brainball/gateway.yaml", "/etc/brainball/gateway.yaml"},
		{"animals.yaml", "animals.yaml"},
		{"~", home},
		{"~/gateway.yaml", filepath.Join(home, "gateway.yaml")},
		{"~/conf/animals.yaml", filepath.Join(home, "conf", "animals.yaml")},
		{"~other/gateway.yaml", "~other/gateway.yaml"},
	}
	for _, tc := range cases {
		got, err := ExpandHome(tc.in)
		if err != nil {
			t.Fatalf("ExpandHome(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ExpandHome(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
