package entry

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/fulldump/biff"
)

func TestEntry_MarshalJSON(t *testing.T) {

	e := Entry{
		ID:           3,
		Title:        "Kind of Blue",
		Artist:       "Miles Davis",
		Year:         1959,
		Genre:        "Jazz",
		Rating:       5,
		ListenDate:   NewDate(2023, time.March, 1),
		Review:       "Timeless",
		FavoriteSong: "So What",
	}

	data, err := json.Marshal(e)
	biff.AssertNil(err)
	biff.AssertEqual(string(data), `{"id":3,"title":"Kind of Blue","artist":"Miles Davis","year":1959,"genre":"Jazz","rating":5,"listenDate":"2023-03-01","review":"Timeless","favoriteSong":"So What"}`)
}

func TestEntry_UnmarshalJSON(t *testing.T) {

	biff.Alternative("Full document", func(a *biff.A) {
		e := Entry{}
		err := json.Unmarshal([]byte(`{"id":7,"title":"Blue","year":1971,"listenDate":"2024-12-31"}`), &e)
		biff.AssertNil(err)
		biff.AssertEqual(e.ID, 7)
		biff.AssertEqual(e.Year, Year(1971))
		biff.AssertEqual(e.ListenDate, Date{Year: 2024, Month: time.December, Day: 31})
	})

	biff.Alternative("Null listen date", func(a *biff.A) {
		e := Entry{}
		err := json.Unmarshal([]byte(`{"title":"Blue","listenDate":null}`), &e)
		biff.AssertNil(err)
		biff.AssertTrue(e.ListenDate.IsZero())
	})

	biff.Alternative("Malformed listen date", func(a *biff.A) {
		e := Entry{}
		err := json.Unmarshal([]byte(`{"listenDate":"31/12/2024"}`), &e)
		biff.AssertNotNil(err)
	})

	biff.Alternative("Listen date is not a string", func(a *biff.A) {
		e := Entry{}
		err := json.Unmarshal([]byte(`{"listenDate":20241231}`), &e)
		biff.AssertNotNil(err)
	})
}

func TestDate_Zero(t *testing.T) {
	d := Date{}
	data, err := json.Marshal(d)
	biff.AssertNil(err)
	biff.AssertEqual(string(data), `null`)
	biff.AssertEqual(d.String(), "")
}

func TestDateOf(t *testing.T) {
	moment := time.Date(2022, time.August, 15, 23, 59, 0, 0, time.UTC)
	biff.AssertEqual(DateOf(moment), NewDate(2022, time.August, 15))
	biff.AssertEqual(NewDate(2022, time.August, 15).String(), "2022-08-15")
}

func TestEntry_WithID(t *testing.T) {
	original := Entry{ID: 1, Title: "Abbey Road"}
	copied := original.WithID(99)
	biff.AssertEqual(copied.ID, 99)
	biff.AssertEqual(original.ID, 1)
	biff.AssertEqual(copied.Title, "Abbey Road")
}

func TestEntry_String(t *testing.T) {
	e := Entry{ID: 1, Title: "Abbey Road", Artist: "The Beatles", Year: 1969, Rating: 4, ListenDate: NewDate(2020, time.January, 2)}
	biff.AssertEqual(e.String(), "Entry [id=1, title=Abbey Road, artist=The Beatles, year=1969, rating=4, listenDate=2020-01-02, review=, favoriteSong=]")
}
