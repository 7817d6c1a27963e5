package main

import "testing"

func TestSplitCSV(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b , c ", []string{"a", "b", "c"}},
		{"a,,c", []string{"a", "c"}},
		{"", nil},
	}
	for _, c := range cases {
		got := splitCSV(c.in)
		if len(got) != len(c.want) {
			t.Fatalf("%q -> %v, want %v", c.in, got, c.want)
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Fatalf("%q -> %v, want %v", c.in, got, c.want)
			}
		}
	}
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("MECJD_T_STR", "x")
	t.Setenv("MECJD_T_INT", " 42 ")
	t.Setenv("MECJD_T_BAD", "forty")
	t.Setenv("MECJD_T_FLOAT", "2.5")
	t.Setenv("MECJD_T_BOOL", "Yes")
	if envStr("MECJD_T_STR", "d") != "x" || envStr("MECJD_T_UNSET", "d") != "d" {
		t.Fatalf("envStr")
	}
	if envInt("MECJD_T_INT", 0) != 42 || envInt("MECJD_T_BAD", 7) != 7 {
		t.Fatalf("envInt")
	}
	if envFloat("MECJD_T_FLOAT", 0) != 2.5 || envFloat("MECJD_T_BAD", 1) != 1 {
		t.Fatalf("envFloat")
	}
	if !envBool("MECJD_T_BOOL", false) || envBool("MECJD_T_STR", true) {
		t.Fatalf("envBool")
	}
}
