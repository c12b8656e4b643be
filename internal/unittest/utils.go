package unittest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// DefaultDoneTimeout bounds RequireDone.
const DefaultDoneTimeout = 10 * time.Second

// RequireCallMustReturnWithinTimeout invokes f and fails the test if it has not
// returned after timeout. f runs on another goroutine and must not call
// require itself.
func RequireCallMustReturnWithinTimeout(t *testing.T, f func(), timeout time.Duration, failureMsg string) {
	t.Helper()
	returned := make(chan struct{})
	go func() {
		defer close(returned)
		f()
	}()
	ChannelMustCloseWithinTimeout(t, returned, timeout, "function did not return on time: "+failureMsg)
}

// ChannelMustCloseWithinTimeout fails the test if c is not closed after timeout.
func ChannelMustCloseWithinTimeout(t *testing.T, c <-chan struct{}, timeout time.Duration, failureMsg string) {
	t.Helper()
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-c:
	case <-timer.C:
		require.FailNow(t, failureMsg)
	}
}

// DoneAware is implemented by components with a Done lifecycle channel.
type DoneAware interface {
	Done() <-chan struct{}
}

// RequireDone waits for component to be done within DefaultDoneTimeout.
func RequireDone(t *testing.T, component DoneAware) {
	t.Helper()
	ChannelMustCloseWithinTimeout(t, component.Done(), DefaultDoneTimeout, "component did not become done within timeout")
}
