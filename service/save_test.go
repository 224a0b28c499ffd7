package service

import (
	"bytes"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fulldump/apitest"
	"github.com/fulldump/biff"

	"github.com/fulldump/musicdiary/logger"
)

func exampleResponse() *apitest.Response {
	api := apitest.NewWithHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":1,"title":"Blue"}`))
	}))
	return api.Request("GET", "/v1/entries/1").Do()
}

func withExamplesLogger(f func(out *bytes.Buffer)) {
	previous := examplesLogger
	defer func() { examplesLogger = previous }()

	out := &bytes.Buffer{}
	examplesLogger = logger.New(out)
	f(out)
}

func TestSave(t *testing.T) {

	biff.Alternative("Disabled", func(a *biff.A) {
		t.Setenv("API_EXAMPLES_PATH", "")
		withExamplesLogger(func(out *bytes.Buffer) {
			Save(exampleResponse(), "Retrieve entry", ``)
			biff.AssertEqual(out.String(), "")
		})
	})

	biff.Alternative("Written", func(a *biff.A) {
		dir := t.TempDir()
		t.Setenv("API_EXAMPLES_PATH", dir)
		withExamplesLogger(func(out *bytes.Buffer) {
			Save(exampleResponse(), "Retrieve entry", `
				Returns one entry.
			`)

			filename := filepath.Join(dir, "retrieve_entry.md")
			content, err := os.ReadFile(filename)
			biff.AssertNil(err)
			biff.AssertTrue(strings.HasPrefix(string(content), "# Retrieve entry\n"))
			biff.AssertTrue(strings.Contains(string(content), `"title": "Blue"`))
			biff.AssertTrue(strings.Contains(out.String(), "api example saved"))
			biff.AssertTrue(strings.Contains(out.String(), filename))
		})
	})

	biff.Alternative("Write failure is logged", func(a *biff.A) {
		t.Setenv("API_EXAMPLES_PATH", filepath.Join(t.TempDir(), "missing"))
		withExamplesLogger(func(out *bytes.Buffer) {
			Save(exampleResponse(), "Retrieve entry", ``)
			biff.AssertTrue(strings.Contains(out.String(), "save api example"))
		})
	})
}

