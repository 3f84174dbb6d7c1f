package models

type Video struct {
	ID                   int          `json:"id"`
	Title                string       `json:"title"`
	Author               string       `json:"author"`
	CanBeDownloaded      bool         `json:"canBeDownloaded"`
	MinAgeRestriction    *int         `json:"minAgeRestriction"`
	CreatedAt            string       `json:"createdAt"`
	PublicationDate      *string      `json:"publicationDate"`
	AvailableResolutions []Resolution `json:"availableResolutions"`
}

// Clone returns a copy of v that shares no memory with it.
func (v Video) Clone() Video {
	c := v

	if v.MinAgeRestriction != nil {
		n := *v.MinAgeRestriction
		c.MinAgeRestriction = &n
	}

	if v.PublicationDate != nil {
		s := *v.PublicationDate
		c.PublicationDate = &s
	}

	c.AvailableResolutions = make([]Resolution, len(v.AvailableResolutions))
	copy(c.AvailableResolutions, v.AvailableResolutions)

	return c
}

// Apply overwrites the fields present in p. ID and CreatedAt are never
// touched.
func (v *Video) Apply(p VideoPatch) {
	if p.Title != nil {
		v.Title = *p.Title
	}
	if p.Author != nil {
		v.Author = *p.Author
	}
	if p.CanBeDownloaded != nil {
		v.CanBeDownloaded = *p.CanBeDownloaded
	}
	if p.MinAgeRestriction != nil {
		if p.MinAgeRestriction.Valid {
			n := p.MinAgeRestriction.Int
			v.MinAgeRestriction = &n
		} else {
			v.MinAgeRestriction = nil
		}
	}
	if p.PublicationDate != nil {
		s := *p.PublicationDate
		v.PublicationDate = &s
	}
	if p.AvailableResolutions != nil {
		v.AvailableResolutions = make([]Resolution, len(*p.AvailableResolutions))
		copy(v.AvailableResolutions, *p.AvailableResolutions)
	}
}

type NullInt struct {
	Int   int
	Valid bool
}

// VideoPatch carries the fields supplied by a caller. A nil field was not
// supplied; a non-nil MinAgeRestriction with Valid false was an explicit null.
type VideoPatch struct {
	Title                *string
	Author               *string
	CanBeDownloaded      *bool
	MinAgeRestriction    *NullInt
	PublicationDate      *string
	AvailableResolutions *[]Resolution
}
