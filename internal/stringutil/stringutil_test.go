package stringutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var caseConversionTests = []struct {
	pascalCase string
	snakeCase  string
}{
	{"ID", "id"},
	{"Title", "title"},
	{"LogLevel", "log_level"},
	{"LogDebugLevels", "log_debug_levels"},
	{"ApplicationAddr", "application_addr"},
	{"ApplicationMaxBodyBytes", "application_max_body_bytes"},
	{"CanBeDownloaded", "can_be_downloaded"},
	{"MinAgeRestriction", "min_age_restriction"},
	{"LogJSON", "log_json"},
	{"HTTPServer", "http_server"},
}

func TestPascalToSnake(t *testing.T) {
	for _, tc := range caseConversionTests {
		t.Run(tc.pascalCase, func(t *testing.T) {
			a := assert.New(t)
			a.Equal(tc.snakeCase, PascalToSnake(tc.pascalCase))
		})
	}
}

func BenchmarkPascalToSnake(b *testing.B) {
	for _, tc := range caseConversionTests {
		b.Run(tc.pascalCase, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				PascalToSnake(tc.pascalCase)
			}
		})
	}
}

func TestLooksTrueFalse(t *testing.T) {
	a := assert.New(t)

	for _, s := range []string{"true", "YES", "1", " on "} {
		a.True(LooksTrue(s), s)
		a.False(LooksFalse(s), s)
	}

	for _, s := range []string{"false", "No", "0", "off"} {
		a.False(LooksTrue(s), s)
		a.True(LooksFalse(s), s)
	}

	a.False(LooksTrue("maybe"))
	a.False(LooksFalse("maybe"))
}
