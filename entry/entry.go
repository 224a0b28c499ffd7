package entry

import "fmt"

// Entry is one listening event of the diary: an album, when it was heard and
// what the listener thought about it.
type Entry struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	Artist       string `json:"artist"`
	Year         Year   `json:"year"`
	Genre        string `json:"genre"`
	Rating       int    `json:"rating"`
	ListenDate   Date   `json:"listenDate"`
	Review       string `json:"review"`
	FavoriteSong string `json:"favoriteSong"`
}

// Year is the release year of an album. No range is enforced.
type Year int

func (e Entry) String() string {
	return fmt.Sprintf("Entry [id=%d, title=%s, artist=%s, year=%d, rating=%d, listenDate=%s, review=%s, favoriteSong=%s]",
		e.ID, e.Title, e.Artist, e.Year, e.Rating, e.ListenDate, e.Review, e.FavoriteSong)
}

// WithID returns a copy of e carrying id.
func (e Entry) WithID(id int) Entry {
	e.ID = id
	return e
}
