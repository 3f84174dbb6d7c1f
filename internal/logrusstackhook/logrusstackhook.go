package logrusstackhook

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"

	"fknsrs.biz/p/videoregistry/internal/stackutil"
)

type FilterFunc func(frame runtime.Frame) bool

// RemovePathsContaining drops frames from files whose path contains any of
// values.
func RemovePathsContaining(values ...string) FilterFunc {
	return func(frame runtime.Frame) bool {
		for _, value := range values {
			if strings.Contains(frame.File, value) {
				return false
			}
		}

		return true
	}
}

var (
	DefaultLevels = []logrus.Level{logrus.DebugLevel, logrus.TraceLevel}
	DefaultFilter = RemovePathsContaining("github.com/sirupsen/logrus", "logrusstackhook/logrusstackhook.go")
)

const maxDepth = 25

// StackHook attaches the calling stack to entries at the configured levels,
// one field per frame, keyed stack.00, stack.01 and so on.
type StackHook struct {
	levels []logrus.Level
	filter FilterFunc
}

func NewStackHook(levels []logrus.Level, filter FilterFunc) *StackHook {
	if levels == nil {
		levels = DefaultLevels
	}

	if filter == nil {
		filter = DefaultFilter
	}

	return &StackHook{levels: levels, filter: filter}
}

func (h *StackHook) Levels() []logrus.Level { return h.levels }

func (h *StackHook) Fire(e *logrus.Entry) error {
	i := 0

	for _, frame := range stackutil.GetStack(maxDepth, 0) {
		if !h.filter(frame) {
			continue
		}

		e.Data[fmt.Sprintf("stack.%02d", i)] = stackutil.FormatStackFrame(frame)
		i++
	}

	return nil
}
