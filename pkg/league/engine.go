package league

import (
	"time"

	"github.com/samborkent/uuidv7"

	timehelper "github.com/nvbf/tournament-tracker/pkg/timeHelper"
)

// Engine applies operations to tournaments. It carries the clock and the id
// generator so that nothing in this package depends on process-wide state.
type Engine struct {
	Now   timehelper.Clock
	NewID func() string
}

// NewEngine returns an Engine stamping with clock and uuidv7 identifiers.
func NewEngine(clock timehelper.Clock) *Engine {
	if clock == nil {
		clock = timehelper.System()
	}
	return &Engine{
		Now: clock,
		NewID: func() string {
			return uuidv7.New().String()
		},
	}
}

func (e *Engine) now() time.Time {
	return e.Now().UTC()
}

func (e *Engine) touch(t *Tournament) {
	t.UpdatedAt = e.now()
}
