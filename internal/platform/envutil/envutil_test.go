package envutil

import (
	"reflect"
	"testing"
)

func TestStrTrimsAndDefaults(t *testing.T) {
	t.Setenv("ENVUTIL_TEST_STR", "  hello  ")
	if got := Str("ENVUTIL_TEST_STR", "fallback"); got != "hello" {
		t.Fatalf("want %q got %q", "hello", got)
	}
	if got := Str("ENVUTIL_TEST_STR_UNSET", "fallback"); got != "fallback" {
		t.Fatalf("want %q got %q", "fallback", got)
	}
}

func TestIntParsesAndFallsBack(t *testing.T) {
	t.Setenv("ENVUTIL_TEST_INT", " 42 ")
	if got := Int("ENVUTIL_TEST_INT", 7); got != 42 {
		t.Fatalf("want 42 got %d", got)
	}
	t.Setenv("ENVUTIL_TEST_INT", "not-a-number")
	if got := Int("ENVUTIL_TEST_INT", 7); got != 7 {
		t.Fatalf("want 7 got %d", got)
	}
	if got := Int("ENVUTIL_TEST_INT_UNSET", 7); got != 7 {
		t.Fatalf("want 7 got %d", got)
	}
}

func TestBoolParsesAndFallsBack(t *testing.T) {
	t.Setenv("ENVUTIL_TEST_BOOL", "FALSE")
	if got := Bool("ENVUTIL_TEST_BOOL", true); got {
		t.Fatalf("want false got true")
	}
	t.Setenv("ENVUTIL_TEST_BOOL", "maybe")
	if got := Bool("ENVUTIL_TEST_BOOL", true); !got {
		t.Fatalf("want true got false")
	}
	if got := Bool("ENVUTIL_TEST_BOOL_UNSET", true); !got {
		t.Fatalf("want true got false")
	}
}

func TestListSplitsAndDropsEmpties(t *testing.T) {
	t.Setenv("ENVUTIL_TEST_LIST", "a, b ,,c")
	want := []string{"a", "b", "c"}
	if got := List("ENVUTIL_TEST_LIST", nil); !reflect.DeepEqual(got, want) {
		t.Fatalf("want %v got %v", want, got)
	}
	def := []string{"x"}
	t.Setenv("ENVUTIL_TEST_LIST", " , ,")
	if got := List("ENVUTIL_TEST_LIST", def); !reflect.DeepEqual(got, def) {
		t.Fatalf("want %v got %v", def, got)
	}
}
