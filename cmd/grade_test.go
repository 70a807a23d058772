package cmd

import (
	"reflect"
	"testing"
)

func TestSortedKeysIsDeterministic(t *testing.T) {
	m := map[string]int{
		"sheet-c.txt": 1,
		"sheet-a.txt": 2,
		"sheet-b.txt": 3,
	}

	want := []string{"sheet-a.txt", "sheet-b.txt", "sheet-c.txt"}
	for i := 0; i < 10; i++ {
		got := sortedKeys(m)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("sortedKeys = %v, want %v", got, want)
		}
	}
}

func TestSortedKeysEmptyMap(t *testing.T) {
	if got := sortedKeys(map[string]string{}); len(got) != 0 {
		t.Fatalf("sortedKeys = %v, want empty", got)
	}
}
