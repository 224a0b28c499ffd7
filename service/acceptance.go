package service

import (
	"net/http"
	"time"

	"github.com/fulldump/apitest"
	"github.com/fulldump/biff"

	"github.com/fulldump/musicdiary/entry"
	"github.com/fulldump/musicdiary/utils"
)

type JSON = map[string]interface{}

// Acceptance exercises the whole entries API against an empty diary.
func Acceptance(a *biff.A, apiRequest func(method, path string) *apitest.Request) {

	a.Alternative("List entries - empty", func(a *biff.A) {
		resp := apiRequest("GET", "/entries").Do()
		Save(resp, "List entries - empty", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJson(), []JSON{})
	})

	a.Alternative("Create entry - malformed JSON", func(a *biff.A) {
		resp := apiRequest("POST", "/entries").
			WithBodyString(`{"title": "Blue"`).Do()
		Save(resp, "Create entry - malformed JSON", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
	})

	a.Alternative("Create entry - invalid listen date", func(a *biff.A) {
		resp := apiRequest("POST", "/entries").
			WithBodyJson(JSON{
				"title":      "Blue",
				"listenDate": "yesterday",
			}).Do()
		Save(resp, "Create entry - invalid listen date", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
	})

	a.Alternative("Retrieve entry - invalid id", func(a *biff.A) {
		resp := apiRequest("GET", "/entries/abc").Do()
		Save(resp, "Retrieve entry - invalid id", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"error": JSON{
				"message":     "invalid entry id: 'abc'",
				"description": "entry id must be an integer",
			},
		})
	})

	a.Alternative("Create entry", func(a *biff.A) {
		resp := apiRequest("POST", "/entries").
			WithBodyJson(JSON{
				"id":           99,
				"title":        "Kind of Blue",
				"artist":       "Miles Davis",
				"year":         1959,
				"genre":        "Jazz",
				"rating":       5,
				"listenDate":   "2023-03-01",
				"review":       "Timeless",
				"favoriteSong": "So What",
			}).Do()
		Save(resp, "Create entry", `
			The id sent by the client is ignored, a new one is always assigned.
		`)

		expectedEntry := JSON{
			"id":           1,
			"title":        "Kind of Blue",
			"artist":       "Miles Davis",
			"year":         1959,
			"genre":        "Jazz",
			"rating":       5,
			"listenDate":   "2023-03-01",
			"review":       "Timeless",
			"favoriteSong": "So What",
		}

		biff.AssertEqual(resp.StatusCode, http.StatusCreated)
		biff.AssertEqualJson(resp.BodyJson(), expectedEntry)

		a.Alternative("Retrieve entry", func(a *biff.A) {
			resp := apiRequest("GET", "/entries/1").Do()
			Save(resp, "Retrieve entry", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), expectedEntry)

			e := entry.Entry{}
			biff.AssertNil(utils.Remarshal(resp.BodyJson(), &e))
			biff.AssertEqual(e.ListenDate, entry.NewDate(2023, time.March, 1))
			biff.AssertEqual(e.Year, entry.Year(1959))
		})

		a.Alternative("Retrieve entry - not found", func(a *biff.A) {
			resp := apiRequest("GET", "/entries/2").Do()
			Save(resp, "Retrieve entry - not found", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
		})

		a.Alternative("List entries", func(a *biff.A) {
			apiRequest("POST", "/entries").
				WithBodyJson(JSON{"title": "Blue Train", "year": 1957}).Do()

			resp := apiRequest("GET", "/entries").Do()
			Save(resp, "List entries", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			list := resp.BodyJson().([]interface{})
			biff.AssertEqual(len(list), 2)
			biff.AssertEqualJson(list[0], expectedEntry)
			biff.AssertEqualJson(list[1].(JSON)["id"], 2)
		})

		a.Alternative("Search entries", func(a *biff.A) {
			apiRequest("POST", "/entries").
				WithBodyJson(JSON{"title": "Abbey Road"}).Do()

			resp := apiRequest("GET", "/entries").
				WithQuery("title", "Blue").Do()
			Save(resp, "Search entries", `
				Case sensitive match against the title only.
			`)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), []JSON{expectedEntry})
		})

		a.Alternative("Search entries - no match", func(a *biff.A) {
			resp := apiRequest("GET", "/entries").
				WithQuery("title", "blue").Do()
			Save(resp, "Search entries - no match", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
		})

		a.Alternative("Update entry", func(a *biff.A) {
			updated := JSON{
				"id":           1,
				"title":        "Kind of Blue (Legacy Edition)",
				"artist":       "Miles Davis",
				"year":         1959,
				"genre":        "Jazz",
				"rating":       4,
				"listenDate":   "2023-03-05",
				"review":       "Still timeless",
				"favoriteSong": "Blue in Green",
			}
			resp := apiRequest("PUT", "/entries").
				WithBodyJson(updated).Do()
			Save(resp, "Update entry", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), updated)

			resp = apiRequest("GET", "/entries/1").Do()
			biff.AssertEqualJson(resp.BodyJson(), updated)
		})

		a.Alternative("Update entry - not found", func(a *biff.A) {
			resp := apiRequest("PUT", "/entries").
				WithBodyJson(JSON{"id": 7, "title": "Ghost"}).Do()
			Save(resp, "Update entry - not found", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusNotFound)

			resp = apiRequest("GET", "/entries").Do()
			biff.AssertEqualJson(resp.BodyJson(), []JSON{expectedEntry})
		})

		a.Alternative("Delete entry", func(a *biff.A) {
			resp := apiRequest("DELETE", "/entries/1").Do()
			Save(resp, "Delete entry", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)

			a.Alternative("Retrieve deleted entry", func(a *biff.A) {
				resp := apiRequest("GET", "/entries/1").Do()
				biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
			})

			a.Alternative("Ids are not reused", func(a *biff.A) {
				resp := apiRequest("POST", "/entries").
					WithBodyJson(JSON{"title": "Sketches of Spain"}).Do()
				biff.AssertEqual(resp.StatusCode, http.StatusCreated)
				biff.AssertEqualJson(resp.BodyJsonMap()["id"], 2)
			})
		})

		a.Alternative("Delete entry - not found", func(a *biff.A) {
			resp := apiRequest("DELETE", "/entries/42").Do()
			Save(resp, "Delete entry - not found", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
		})
	})
}
