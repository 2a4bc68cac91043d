package harness

import "errors"

var (
	errPoolShutdown   = errors.New("harness: pool is shut down")
	errPoolSaturated  = errors.New("harness: pool saturated, admission timed out")
	errWorkerPanicked = errors.New("harness: worker panicked")
)
