package service

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/fulldump/apitest"
	"github.com/fulldump/biff"
)

type JSON = map[string]interface{}

// Acceptance runs the whole API surface against a running handler. It
// expects a workspace holding exactly one table 'people' with fields
// NAME (C,10) and AGE (N,3), 300 records with AGE=i and NAME=person-i,
// where every position multiple of 30 is deleted (10 in total).
func Acceptance(a *biff.A, apiRequest func(method, path string) *apitest.Request) {

	peopleInfo := JSON{
		"name": "people",
		"fields": []JSON{
			{"name": "NAME", "type": "C", "length": 10, "decimals": 0},
			{"name": "AGE", "type": "N", "length": 3, "decimals": 0},
		},
		// the first batch is fetched at open: 255 live rows, having
		// walked past 9 deleted records
		"rows":         255,
		"totalRecords": 300,
		"deletedSeen":  9,
		"canGrow":      true,
		"readOnly":     false,
	}

	a.Alternative("List tables", func(a *biff.A) {
		resp := apiRequest("GET", "/tables").Do()
		Save(resp, "List tables", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJson(), []JSON{peopleInfo})
	})

	a.Alternative("Retrieve table", func(a *biff.A) {
		resp := apiRequest("GET", "/tables/people").Do()
		Save(resp, "Retrieve table", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJson(), peopleInfo)
	})

	a.Alternative("Retrieve missing table", func(a *biff.A) {
		resp := apiRequest("GET", "/tables/nope").Do()
		Save(resp, "Retrieve table - not found", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
	})

	a.Alternative("Grow", func(a *biff.A) {
		resp := apiRequest("POST", "/tables/people:grow").Do()
		Save(resp, "Grow", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"appended": 35,
			"rows":     290,
			"canGrow":  false,
		})

		a.Alternative("Grow an exhausted table", func(a *biff.A) {
			resp := apiRequest("POST", "/tables/people:grow").Do()
			Save(resp, "Grow - exhausted", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), JSON{
				"appended": 0,
				"rows":     290,
				"canGrow":  false,
			})
		})
	})

	a.Alternative("Read rows", func(a *biff.A) {
		resp := apiRequest("POST", "/tables/people:rows").
			WithBodyJson(JSON{
				"skip":  0,
				"limit": 2,
			}).Do()
		Save(resp, "Read rows", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)

		lines := strings.Split(strings.TrimSpace(resp.BodyString()), "\n")
		biff.AssertEqual(len(lines), 2)

		// position 0 is deleted, the first live row sits at position 1
		first := JSON{}
		json.Unmarshal([]byte(lines[0]), &first)
		biff.AssertEqualJson(first, JSON{
			"row":      0,
			"position": 1,
			"values":   []interface{}{"person-1  ", 1},
		})

		a.Alternative("Negative skip reads from the start", func(a *biff.A) {
			resp := apiRequest("POST", "/tables/people:rows").
				WithBodyJson(JSON{
					"skip":  -5,
					"limit": 2,
				}).Do()

			biff.AssertEqual(resp.StatusCode, http.StatusOK)

			lines := strings.Split(strings.TrimSpace(resp.BodyString()), "\n")
			biff.AssertEqual(len(lines), 2)

			first := JSON{}
			json.Unmarshal([]byte(lines[0]), &first)
			biff.AssertEqualJson(first["row"], 0)
		})
	})

	a.Alternative("Read cell", func(a *biff.A) {
		resp := apiRequest("POST", "/tables/people:getCell").
			WithBodyJson(JSON{
				"row":    0,
				"column": 0,
				"role":   "display",
			}).Do()
		Save(resp, "Read cell", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"row":      0,
			"column":   0,
			"value":    "person-1  ", // display keeps the stored padding
			"editable": true,
		})

		a.Alternative("Edit role trims", func(a *biff.A) {
			resp := apiRequest("POST", "/tables/people:getCell").
				WithBodyJson(JSON{
					"row":    0,
					"column": 0,
					"role":   "edit",
				}).Do()

			biff.AssertEqualJson(resp.BodyJsonMap()["value"], "person-1")
		})

		a.Alternative("Out of range yields no value", func(a *biff.A) {
			resp := apiRequest("POST", "/tables/people:getCell").
				WithBodyJson(JSON{
					"row":    1000,
					"column": 0,
				}).Do()

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJsonMap()["value"], nil)
			biff.AssertEqualJson(resp.BodyJsonMap()["editable"], false)
		})
	})

	a.Alternative("Update cell", func(a *biff.A) {
		resp := apiRequest("POST", "/tables/people:updateCell").
			WithBodyJson(JSON{
				"row":    0,
				"column": 0,
				"value":  "renamed",
			}).Do()
		Save(resp, "Update cell", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJsonMap()["value"], "renamed")

		a.Alternative("Read it back", func(a *biff.A) {
			resp := apiRequest("POST", "/tables/people:getCell").
				WithBodyJson(JSON{
					"row":    0,
					"column": 0,
				}).Do()

			biff.AssertEqualJson(resp.BodyJsonMap()["value"], "renamed")
		})
	})

	a.Alternative("Update cell out of range", func(a *biff.A) {
		resp := apiRequest("POST", "/tables/people:updateCell").
			WithBodyJson(JSON{
				"row":    1000,
				"column": 0,
				"value":  "nope",
			}).Do()
		Save(resp, "Update cell - rejected", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusConflict)
	})

	a.Alternative("Headers", func(a *biff.A) {
		resp := apiRequest("POST", "/tables/people:getHeader").
			WithBodyJson(JSON{
				"section": 0,
				"axis":    "columns",
				"role":    "display",
			}).Do()
		Save(resp, "Read header", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJsonMap()["value"], "NAME")

		a.Alternative("Overlay edit value backs display", func(a *biff.A) {
			resp := apiRequest("POST", "/tables/people:setHeader").
				WithBodyJson(JSON{
					"section": 1,
					"axis":    "columns",
					"role":    "edit",
					"value":   "Age (years)",
				}).Do()
			Save(resp, "Write header", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)

			resp = apiRequest("POST", "/tables/people:getHeader").
				WithBodyJson(JSON{
					"section": 1,
					"axis":    "columns",
					"role":    "display",
				}).Do()

			biff.AssertEqualJson(resp.BodyJsonMap()["value"], "Age (years)")
		})

		a.Alternative("Section beyond schema resolves to ordinal", func(a *biff.A) {
			resp := apiRequest("POST", "/tables/people:getHeader").
				WithBodyJson(JSON{
					"section": 5,
					"axis":    "columns",
					"role":    "display",
				}).Do()

			biff.AssertEqualJson(resp.BodyJsonMap()["value"], 6)
		})

		a.Alternative("Row axis resolves to ordinal", func(a *biff.A) {
			resp := apiRequest("POST", "/tables/people:getHeader").
				WithBodyJson(JSON{
					"section": 0,
					"axis":    "rows",
					"role":    "display",
				}).Do()

			biff.AssertEqualJson(resp.BodyJsonMap()["value"], 1)
		})

		a.Alternative("Header write on row axis is rejected", func(a *biff.A) {
			resp := apiRequest("POST", "/tables/people:setHeader").
				WithBodyJson(JSON{
					"section": 0,
					"axis":    "rows",
					"role":    "display",
					"value":   "nope",
				}).Do()

			biff.AssertEqual(resp.StatusCode, http.StatusConflict)
		})
	})

	a.Alternative("Locate record by physical position", func(a *biff.A) {
		resp := apiRequest("POST", "/tables/people:locate").
			WithBodyJson(JSON{
				"position": 45,
			}).Do()
		Save(resp, "Locate record", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJsonMap()["row"], 43)

		a.Alternative("Deleted position is not cached", func(a *biff.A) {
			resp := apiRequest("POST", "/tables/people:locate").
				WithBodyJson(JSON{
					"position": 60,
				}).Do()

			biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
		})
	})
}
