package validation

import (
	"strings"
	"unicode/utf8"

	"fknsrs.biz/p/videoregistry/models"
)

const (
	FieldTitle                = "title"
	FieldAuthor               = "author"
	FieldAvailableResolutions = "availableResolutions"
	FieldCanBeDownloaded      = "canBeDownloaded"
	FieldMinAgeRestriction    = "minAgeRestriction"
	FieldPublicationDate      = "publicationDate"
)

const (
	MaxTitleLength       = 40
	MaxAuthorLength      = 20
	MinAgeRestrictionMin = 1
	MinAgeRestrictionMax = 18
)

type rule struct {
	field    string
	required bool
	check    func(d interface{}) bool
}

// rules are evaluated in this order, which is also the order of the errors
// returned.
var rules = []rule{
	{FieldTitle, true, checkText(MaxTitleLength)},
	{FieldAuthor, true, checkText(MaxAuthorLength)},
	{FieldAvailableResolutions, false, checkResolutions},
	{FieldCanBeDownloaded, false, checkBool},
	{FieldMinAgeRestriction, false, checkAgeRestriction},
	{FieldPublicationDate, false, checkString},
}

// ValidateForCreate checks a payload for creating a video. Every rule is
// evaluated and every failure reported, at most once per field. A nil or
// empty result means the payload is valid.
func ValidateForCreate(p *Payload) []models.FieldError {
	return validate(p, true)
}

// ValidateForUpdate applies the same predicates as ValidateForCreate but
// only to the fields present in the payload. An explicitly supplied empty
// string or zero is still checked.
func ValidateForUpdate(p *Payload) []models.FieldError {
	return validate(p, false)
}

func validate(p *Payload, create bool) []models.FieldError {
	if !p.IsObject() {
		return []models.FieldError{
			models.NewFieldError(FieldTitle),
			models.NewFieldError(FieldAuthor),
		}
	}

	var errs []models.FieldError

	for _, r := range rules {
		d, ok := p.get(r.field)
		if !ok {
			if create && r.required {
				errs = append(errs, models.NewFieldError(r.field))
			}

			continue
		}

		if !r.check(d) {
			errs = append(errs, models.NewFieldError(r.field))
		}
	}

	return errs
}

func checkText(max int) func(d interface{}) bool {
	return func(d interface{}) bool {
		s, ok := d.(string)
		if !ok {
			return false
		}

		n := utf8.RuneCountInString(strings.TrimSpace(s))

		return n > 0 && n <= max
	}
}

func checkString(d interface{}) bool {
	_, ok := d.(string)
	return ok
}

func checkBool(d interface{}) bool {
	_, ok := d.(bool)
	return ok
}

func checkResolutions(d interface{}) bool {
	a, ok := d.([]interface{})
	if !ok {
		return false
	}

	for _, e := range a {
		s, ok := e.(string)
		if !ok {
			return false
		}

		if !models.Resolution(s).Valid() {
			return false
		}
	}

	return true
}

// null means no restriction
func checkAgeRestriction(d interface{}) bool {
	if d == nil {
		return true
	}

	n, ok := toInt(d)
	if !ok {
		return false
	}

	return n >= MinAgeRestrictionMin && n <= MinAgeRestrictionMax
}
