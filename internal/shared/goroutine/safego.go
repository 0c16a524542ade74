// Package goroutine launches goroutines that log panics instead of crashing the process.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"github.com/ticketsla/ticketsla/internal/shared/logger"
)

// SafeGo runs fn in a new goroutine. A panic is logged with its stack under name.
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer Recover(log, name)
		fn()
	}()
}

// Recover is deferred by SafeGo; it is exported for goroutines started elsewhere.
func Recover(log logger.Interface, name string) {
	if r := recover(); r != nil {
		log.Errorw("goroutine panicked",
			"goroutine", name,
			"panic", fmt.Sprintf("%v", r),
			"stack", string(debug.Stack()),
		)
	}
}
