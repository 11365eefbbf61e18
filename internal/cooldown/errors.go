package cooldown

import (
	"fmt"
	"time"
)

// ErrOnCooldown is returned by EnforceCooldown while action is still cooling down
type ErrOnCooldown struct {
	Action    string
	Remaining time.Duration
}

func (e ErrOnCooldown) Error() string {
	return fmt.Sprintf(ErrFmtOnCooldown, e.Action, e.Remaining.Round(time.Second))
}

// Is matches any ErrOnCooldown regardless of action or remaining time
func (e ErrOnCooldown) Is(target error) bool {
	_, ok := target.(ErrOnCooldown)
	return ok
}
