package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"multilight/internal/config"
	"multilight/internal/game"
	"multilight/internal/logging"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
)

// teardownTimeout bounds how long a signal waits for the main loop to
// release GL resources before the process exits anyway.
const teardownTimeout = 2 * time.Second

var (
	running atomic.Pointer[game.App]
	done    = make(chan struct{})
)

func init() {
	runtime.LockOSThread()
}

func main() {
	settings, err := config.Parse(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logging.SetLogger(logging.NewTextLogger(os.Stderr, settings.LogLevel))
	log := logging.Logger()

	// GL and glfw must be torn down on the main thread. On a signal the hook
	// stops the loop and waits for run to finish its deferred cleanup.
	closer.Bind(func() {
		if app := running.Load(); app != nil {
			app.Stop()
		}
		select {
		case <-done:
		case <-time.After(teardownTimeout):
			log.Warn("teardown timed out")
		}
		log.Info("exiting")
	})

	err = run(settings)
	close(done)
	if err != nil {
		log.Error("multilight failed", "err", err)
		closer.Exit(1)
	}
	closer.Close()
}

func run(settings *config.Settings) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	defer glfw.Terminate()

	window, err := game.SetupWindow(settings)
	if err != nil {
		return err
	}
	defer window.Destroy()

	app, err := game.NewApp(window, settings)
	if err != nil {
		return err
	}
	defer app.Dispose()

	running.Store(app)
	defer running.Store(nil)

	app.Run()
	return nil
}
