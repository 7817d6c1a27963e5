package query

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Map
	}{
		{"", Map{}},
		{"key=value&key2=value2", Map{"key": "value", "key2": "value2"}},
		{"a=1&b", Map{"a": "1", "b": ""}},
		{"a=1&&b=2", Map{"a": "1", "b": "2"}},
		{"=x&y=", Map{"y": ""}},
		{"eq=a=b", Map{"eq": "a=b"}},
		{"a=1&a=2", Map{"a": "2"}},
		{"s=hello%20world+x", Map{"s": "hello%20world+x"}},
		{"&", Map{}},
	}
	for _, c := range cases {
		got := Parse(c.in)
		if !reflect.DeepEqual(got, c.want) {
			t.Fatalf("Parse(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestLookup(t *testing.T) {
	m := Parse("seq=&x=1")
	if v, ok := m.Lookup("seq"); !ok || v != "" {
		t.Fatalf("seq: got %q ok=%v", v, ok)
	}
	if _, ok := m.Lookup("missing"); ok {
		t.Fatalf("expected missing key to be absent")
	}
}
