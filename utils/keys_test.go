package utils

import (
	"net/http"
	"testing"

	"github.com/fulldump/biff"
)

func TestSortedKeys(t *testing.T) {

	biff.AssertEqual(SortedKeys(map[string]int{}), []string{})
	biff.AssertEqual(SortedKeys(map[string]int{"b": 2, "a": 1, "c": 3}), []string{"a", "b", "c"})

	h := http.Header{}
	h.Set("X-Request-Id", "1")
	h.Set("Content-Type", "application/json")
	biff.AssertEqual(SortedKeys(h), []string{"Content-Type", "X-Request-Id"})
}

func TestRemarshal(t *testing.T) {

	type album struct {
		Title string `json:"title"`
		Year  int    `json:"year"`
	}

	a := album{}
	err := Remarshal(map[string]any{"title": "Blue", "year": 1971}, &a)
	biff.AssertNil(err)
	biff.AssertEqual(a, album{Title: "Blue", Year: 1971})

	err = Remarshal(map[string]any{"year": "1971"}, &a)
	biff.AssertNotNil(err)
}
