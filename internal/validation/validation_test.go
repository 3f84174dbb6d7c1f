package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"fknsrs.biz/p/videoregistry/models"
)

var validateForCreateTests = []struct {
	name   string
	input  string
	fields []string
}{
	{"minimal", `{"title":"A","author":"B"}`, nil},
	{"complete", `{"title":"A","author":"B","canBeDownloaded":true,"minAgeRestriction":18,"publicationDate":"2024-01-01T00:00:00.000Z","availableResolutions":["P144","P2160"]}`, nil},
	{"null", `null`, []string{"title", "author"}},
	{"array", `[{"title":"A","author":"B"}]`, []string{"title", "author"}},
	{"number", `42`, []string{"title", "author"}},
	{"string", `"title"`, []string{"title", "author"}},
	{"malformed", `{"title":`, []string{"title", "author"}},
	{"empty body", ``, []string{"title", "author"}},
	{"empty object", `{}`, []string{"title", "author"}},
	{"empty title", `{"title":"","author":"B"}`, []string{"title"}},
	{"blank title", `{"title":"   ","author":"B"}`, []string{"title"}},
	{"title not a string", `{"title":5,"author":"B"}`, []string{"title"}},
	{"title 40", `{"title":"` + strings.Repeat("x", 40) + `","author":"B"}`, nil},
	{"title 41", `{"title":"` + strings.Repeat("x", 41) + `","author":"B"}`, []string{"title"}},
	{"title 40 padded", `{"title":"  ` + strings.Repeat("x", 40) + `  ","author":"B"}`, nil},
	{"title 40 multibyte", `{"title":"` + strings.Repeat("ж", 40) + `","author":"B"}`, nil},
	{"author 20", `{"title":"A","author":"` + strings.Repeat("y", 20) + `"}`, nil},
	{"author 21", `{"title":"A","author":"` + strings.Repeat("y", 21) + `"}`, []string{"author"}},
	{"author null", `{"title":"A","author":null}`, []string{"author"}},
	{"bad resolution", `{"title":"A","author":"B","availableResolutions":["P144","P9000"]}`, []string{"availableResolutions"}},
	{"resolution not a string", `{"title":"A","author":"B","availableResolutions":[144]}`, []string{"availableResolutions"}},
	{"resolutions not an array", `{"title":"A","author":"B","availableResolutions":"P144"}`, []string{"availableResolutions"}},
	{"resolutions empty", `{"title":"A","author":"B","availableResolutions":[]}`, nil},
	{"can be downloaded string", `{"title":"A","author":"B","canBeDownloaded":"true"}`, []string{"canBeDownloaded"}},
	{"age 1", `{"title":"A","author":"B","minAgeRestriction":1}`, nil},
	{"age 18", `{"title":"A","author":"B","minAgeRestriction":18}`, nil},
	{"age 0", `{"title":"A","author":"B","minAgeRestriction":0}`, []string{"minAgeRestriction"}},
	{"age 19", `{"title":"A","author":"B","minAgeRestriction":19}`, []string{"minAgeRestriction"}},
	{"age null", `{"title":"A","author":"B","minAgeRestriction":null}`, nil},
	{"age fractional", `{"title":"A","author":"B","minAgeRestriction":12.5}`, []string{"minAgeRestriction"}},
	{"age string", `{"title":"A","author":"B","minAgeRestriction":"12"}`, []string{"minAgeRestriction"}},
	{"publication date number", `{"title":"A","author":"B","publicationDate":20240101}`, []string{"publicationDate"}},
	{
		"everything wrong",
		`{"title":"","author":false,"availableResolutions":["X"],"canBeDownloaded":1,"minAgeRestriction":99,"publicationDate":true}`,
		[]string{"title", "author", "availableResolutions", "canBeDownloaded", "minAgeRestriction", "publicationDate"},
	},
}

func TestValidateForCreate(t *testing.T) {
	for _, tc := range validateForCreateTests {
		t.Run(tc.name, func(t *testing.T) {
			a := assert.New(t)

			errs := ValidateForCreate(ParsePayload([]byte(tc.input)))

			if tc.fields == nil {
				a.Empty(errs)
			} else {
				a.Equal(tc.fields, models.FieldNames(errs))
			}
		})
	}
}

func TestValidateForCreateMessages(t *testing.T) {
	a := assert.New(t)

	errs := ValidateForCreate(ParsePayload([]byte(`{"title":"","author":"B"}`)))

	a.Equal([]models.FieldError{{Message: "Wrong title", Field: "title"}}, errs)
}

var validateForUpdateTests = []struct {
	name   string
	input  string
	fields []string
}{
	{"empty object", `{}`, nil},
	{"title only", `{"title":"X"}`, nil},
	{"author only", `{"author":"Y"}`, nil},
	{"explicit empty title", `{"title":""}`, []string{"title"}},
	{"explicit zero age", `{"minAgeRestriction":0}`, []string{"minAgeRestriction"}},
	{"age null", `{"minAgeRestriction":null}`, nil},
	{"title 41", `{"title":"` + strings.Repeat("x", 41) + `"}`, []string{"title"}},
	{"bad resolution", `{"availableResolutions":["P720","Q1"]}`, []string{"availableResolutions"}},
	{"ignores unknown keys", `{"id":5,"createdAt":"x"}`, nil},
	{"null", `null`, []string{"title", "author"}},
	{"array", `[]`, []string{"title", "author"}},
	{
		"order is stable",
		`{"publicationDate":1,"minAgeRestriction":0,"canBeDownloaded":null,"availableResolutions":{},"author":"","title":""}`,
		[]string{"title", "author", "availableResolutions", "canBeDownloaded", "minAgeRestriction", "publicationDate"},
	},
}

func TestValidateForUpdate(t *testing.T) {
	for _, tc := range validateForUpdateTests {
		t.Run(tc.name, func(t *testing.T) {
			a := assert.New(t)

			errs := ValidateForUpdate(ParsePayload([]byte(tc.input)))

			if tc.fields == nil {
				a.Empty(errs)
			} else {
				a.Equal(tc.fields, models.FieldNames(errs))
			}
		})
	}
}

func TestValidateNilPayload(t *testing.T) {
	a := assert.New(t)

	a.Equal([]string{"title", "author"}, models.FieldNames(ValidateForCreate(nil)))
	a.Equal([]string{"title", "author"}, models.FieldNames(ValidateForUpdate(nil)))
}

func TestNewPayload(t *testing.T) {
	a := assert.New(t)

	p := NewPayload(map[string]interface{}{
		"title":                "A",
		"author":               "B",
		"minAgeRestriction":    7,
		"availableResolutions": []interface{}{"P480"},
	})

	a.True(p.IsObject())
	a.Empty(ValidateForCreate(p))
	a.Equal([]string{"author", "availableResolutions", "minAgeRestriction", "title"}, p.Fields())

	a.False(NewPayload([]interface{}{}).IsObject())
	a.False(NewPayload(nil).IsObject())
}

func TestPayloadPatch(t *testing.T) {
	a := assert.New(t)

	p := ParsePayload([]byte(`{"title":"  A  ","author":"B","canBeDownloaded":true,"minAgeRestriction":16,"publicationDate":"2024-02-02","availableResolutions":["P720","P1080"],"id":99}`))
	a.Empty(ValidateForCreate(p))

	v := p.Patch()

	if a.NotNil(v.Title) {
		a.Equal("  A  ", *v.Title)
	}
	if a.NotNil(v.Author) {
		a.Equal("B", *v.Author)
	}
	if a.NotNil(v.CanBeDownloaded) {
		a.True(*v.CanBeDownloaded)
	}
	if a.NotNil(v.MinAgeRestriction) {
		a.Equal(models.NullInt{Int: 16, Valid: true}, *v.MinAgeRestriction)
	}
	if a.NotNil(v.PublicationDate) {
		a.Equal("2024-02-02", *v.PublicationDate)
	}
	if a.NotNil(v.AvailableResolutions) {
		a.Equal([]models.Resolution{models.P720, models.P1080}, *v.AvailableResolutions)
	}
}

func TestPayloadPatchPresence(t *testing.T) {
	a := assert.New(t)

	v := ParsePayload([]byte(`{"minAgeRestriction":null}`)).Patch()

	a.Nil(v.Title)
	a.Nil(v.Author)
	a.Nil(v.CanBeDownloaded)
	a.Nil(v.PublicationDate)
	a.Nil(v.AvailableResolutions)
	if a.NotNil(v.MinAgeRestriction) {
		a.False(v.MinAgeRestriction.Valid)
	}

	v = ParsePayload([]byte(`{"availableResolutions":[]}`)).Patch()
	if a.NotNil(v.AvailableResolutions) {
		a.Empty(*v.AvailableResolutions)
	}
}

func BenchmarkValidateForCreate(b *testing.B) {
	for _, tc := range validateForCreateTests {
		p := ParsePayload([]byte(tc.input))

		b.Run(tc.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				ValidateForCreate(p)
			}
		})
	}
}
