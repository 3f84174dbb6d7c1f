package validation

import (
	"encoding/json"
	"math"
	"sort"

	"github.com/Jeffail/gabs/v2"

	"fknsrs.biz/p/videoregistry/models"
)

// Payload is a request body after parsing but before validation. Anything
// that is not a JSON object, including malformed input, parses to a
// payload with no fields for which IsObject reports false.
type Payload struct {
	object bool
	fields map[string]*gabs.Container
}

func ParsePayload(d []byte) *Payload {
	c, err := gabs.ParseJSON(d)
	if err != nil {
		return &Payload{}
	}

	return fromContainer(c)
}

// NewPayload wraps an already decoded value, for callers that don't have
// raw JSON to hand.
func NewPayload(v interface{}) *Payload {
	return fromContainer(gabs.Wrap(v))
}

func fromContainer(c *gabs.Container) *Payload {
	if _, ok := c.Data().(map[string]interface{}); !ok {
		return &Payload{}
	}

	return &Payload{object: true, fields: c.ChildrenMap()}
}

func (p *Payload) IsObject() bool {
	return p != nil && p.object
}

func (p *Payload) Has(field string) bool {
	_, ok := p.get(field)
	return ok
}

// Fields lists the keys present in the payload, sorted.
func (p *Payload) Fields() []string {
	if p == nil {
		return nil
	}

	a := make([]string, 0, len(p.fields))
	for k := range p.fields {
		a = append(a, k)
	}
	sort.Strings(a)

	return a
}

func (p *Payload) get(field string) (interface{}, bool) {
	if p == nil || p.fields == nil {
		return nil, false
	}

	c, ok := p.fields[field]
	if !ok {
		return nil, false
	}

	return c.Data(), true
}

// Patch converts the payload into typed values. It should only be called
// on a payload that passed validation; values of the wrong type are
// dropped rather than reported.
func (p *Payload) Patch() models.VideoPatch {
	var v models.VideoPatch

	if s, ok := p.stringField(FieldTitle); ok {
		v.Title = &s
	}
	if s, ok := p.stringField(FieldAuthor); ok {
		v.Author = &s
	}

	if d, ok := p.get(FieldAvailableResolutions); ok {
		if a, ok := d.([]interface{}); ok {
			rs := make([]models.Resolution, 0, len(a))
			for _, e := range a {
				if s, ok := e.(string); ok {
					if r, ok := models.ParseResolution(s); ok {
						rs = append(rs, r)
					}
				}
			}
			v.AvailableResolutions = &rs
		}
	}

	if d, ok := p.get(FieldCanBeDownloaded); ok {
		if b, ok := d.(bool); ok {
			v.CanBeDownloaded = &b
		}
	}

	if d, ok := p.get(FieldMinAgeRestriction); ok {
		if d == nil {
			v.MinAgeRestriction = &models.NullInt{}
		} else if n, ok := toInt(d); ok {
			v.MinAgeRestriction = &models.NullInt{Int: n, Valid: true}
		}
	}

	if s, ok := p.stringField(FieldPublicationDate); ok {
		v.PublicationDate = &s
	}

	return v
}

func (p *Payload) stringField(field string) (string, bool) {
	d, ok := p.get(field)
	if !ok {
		return "", false
	}

	s, ok := d.(string)

	return s, ok
}

// toInt accepts any whole number that fits in an int, whichever way it was
// decoded.
func toInt(d interface{}) (int, bool) {
	var f float64

	switch n := d.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		if n < math.MinInt || n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case float32:
		f = float64(n)
	case float64:
		f = n
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return toInt(i)
		}
		v, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = v
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt32 || f > math.MaxInt32 {
		return 0, false
	}

	return int(f), true
}
