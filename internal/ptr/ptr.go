package ptr

import (
	"fknsrs.biz/p/videoregistry/models"
)

func Bool(v bool) *bool       { return &v }
func String(v string) *string { return &v }

func NullInt(v int) *models.NullInt { return &models.NullInt{Int: v, Valid: true} }

func Resolutions(v ...models.Resolution) *[]models.Resolution {
	if v == nil {
		v = []models.Resolution{}
	}

	return &v
}
