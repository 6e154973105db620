package game

import (
	"sync"
	"testing"
)

func TestStopEndsRun(t *testing.T) {
	a := &App{}
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		a.Stop()
	}()
	wg.Wait()

	// running checks the stop flag before touching the window
	if a.running() {
		t.Error("running() = true after Stop")
	}
}
