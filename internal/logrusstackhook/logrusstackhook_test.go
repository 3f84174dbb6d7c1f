package logrusstackhook

import (
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func TestStackHook(t *testing.T) {
	a := assert.New(t)

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetLevel(logrus.TraceLevel)
	logger.AddHook(NewStackHook(nil, nil))

	hook := test.NewLocal(logger)

	logger.Info("no stack here")
	logger.Debug("stack here")

	entries := hook.AllEntries()
	if a.Len(entries, 2) {
		a.NotContains(entries[0].Data, "stack.00")

		if a.Contains(entries[1].Data, "stack.00") {
			top := entries[1].Data["stack.00"].(string)
			a.True(strings.Contains(top, "logrusstackhook.TestStackHook"), top)
		}
	}
}
