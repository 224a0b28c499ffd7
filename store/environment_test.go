package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fulldump/musicdiary/entry"
)

// Environment runs f with a backing file holding content.
func Environment(t *testing.T, content string, f func(filename string)) {
	filename := filepath.Join(t.TempDir(), "entries.json")
	err := os.WriteFile(filename, []byte(content), 0666)
	if err != nil {
		t.Fatal(err)
	}

	f(filename)
}

func newEntry(title string) entry.Entry {
	return entry.Entry{
		Title:        title,
		Artist:       "Various Artists",
		Year:         1999,
		Genre:        "Rock",
		Rating:       4,
		ListenDate:   entry.NewDate(2024, time.May, 17),
		Review:       "Good one",
		FavoriteSong: "Track 1",
	}
}

func ids(entries []entry.Entry) []int {
	result := []int{}
	for _, e := range entries {
		result = append(result, e.ID)
	}
	return result
}
