package record_test

import (
	"testing"

	"recordio/internal/record"
)

func TestMerge_OverwritesAndPreserves(t *testing.T) {
	dst := record.Record{"custom": "Y", "shared": "old"}
	src := record.Record{"name": "X", "shared": "new"}

	dst.Merge(src)

	if dst["custom"] != "Y" {
		t.Fatalf("existing key lost: %v", dst)
	}
	if dst["name"] != "X" {
		t.Fatalf("new key missing: %v", dst)
	}
	if dst["shared"] != "new" {
		t.Fatalf("collision not overwritten: %v", dst)
	}
	if len(dst) != 3 {
		t.Fatalf("unexpected size: %v", dst)
	}
}

func TestMerge_EmptySource(t *testing.T) {
	dst := record.Record{"a": 1}
	dst.Merge(record.Record{})
	if len(dst) != 1 || dst["a"] != 1 {
		t.Fatalf("merge with empty source changed dst: %v", dst)
	}
}

func TestHas(t *testing.T) {
	r := record.Record{"present": nil}
	if !r.Has("present") {
		t.Fatal("Has must see keys with nil values")
	}
	if r.Has("absent") {
		t.Fatal("Has reported a missing key")
	}
}
