// Package procpool implements the process-fork-style worker model spec
// §5 requires: a single parent process re-executes itself N times, each
// child re-entering through MaybeRunWorker instead of running main(),
// receiving its job over stdin and reporting one 64-bit result over
// stdout. There is no real fork(2) in Go; self-reexec via os/exec plus an
// environment-variable dispatch flag is the idiomatic substitute, the same
// pattern runc's libcontainer factory uses to re-enter itself as an init
// process.
package procpool

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"sync"

	"github.com/izprime/izsieve"
)

// WorkerEnv is set in a child's environment to the registered worker name
// it should run. Its absence means the process is the parent (or a plain
// CLI invocation).
const WorkerEnv = "IZSIEVE_PROCPOOL_WORKER"

// WorkerFunc computes one job's partial result. job is the raw payload the
// parent sent; the return value is reported back over the result pipe.
type WorkerFunc func(ctx context.Context, job []byte) (uint64, error)

var (
	registryMu sync.Mutex
	registry   = map[string]WorkerFunc{}
)

// Register associates a worker name with the function that runs it. Call
// during package init in the same binary that calls Run, so the re-exec'd
// child has the same registrations available.
func Register(name string, fn WorkerFunc) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = fn
}

// MaybeRunWorker checks whether this process was launched as a procpool
// worker and, if so, never returns: it reads the job from stdin, runs the
// registered WorkerFunc, writes an 8-byte little-endian result to stdout,
// and exits. Call this once, at the very top of main, before any other
// startup work — mirroring the reexec convention of checking the
// dispatch flag before anything else runs.
func MaybeRunWorker() {
	name := os.Getenv(WorkerEnv)
	if name == "" {
		return
	}

	registryMu.Lock()
	fn, ok := registry[name]
	registryMu.Unlock()
	if !ok {
		fmt.Fprintf(os.Stderr, "procpool: unknown worker %q\n", name)
		os.Exit(1)
	}

	job, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "procpool: reading job: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	result, err := fn(ctx, job)
	if err != nil {
		fmt.Fprintf(os.Stderr, "procpool: worker %q: %v\n", name, err)
		os.Exit(1)
	}

	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], result)
	if _, err := os.Stdout.Write(buf[:]); err != nil {
		os.Exit(1)
	}
	os.Exit(0)
}

// CanFork reports whether this platform supports the self-reexec worker
// model well enough to be worth using. js/wasm and Plan 9 have no useful
// child-process model; every other GOOS this module targets does.
func CanFork() bool {
	switch runtime.GOOS {
	case "js", "plan9":
		return false
	default:
		return true
	}
}

// Result is one worker's outcome.
type Result struct {
	Value uint64
	Err   error
}

// Run spawns len(jobs) copies of the current executable under name,
// feeding jobs[i] to worker i over stdin and collecting its 8-byte result
// from stdout. Every child is waited on (reaped) before Run returns,
// regardless of success, failure, or ctx cancellation — spec §5's
// "the driver must reap every child it spawns on every exit path".
func Run(ctx context.Context, name string, jobs [][]byte) []Result {
	results := make([]Result, len(jobs))

	exe, err := os.Executable()
	if err != nil {
		for i := range results {
			results[i] = Result{Err: &izsieve.ChildFailureError{Core: i}}
		}
		return results
	}

	var wg sync.WaitGroup
	for i, job := range jobs {
		wg.Add(1)
		go func(i int, job []byte) {
			defer wg.Done()
			results[i] = runOne(ctx, exe, name, job, i)
		}(i, job)
	}
	wg.Wait()
	return results
}

func runOne(ctx context.Context, exe, name string, job []byte, core int) Result {
	cmd := exec.CommandContext(ctx, exe)
	cmd.Env = append(os.Environ(), WorkerEnv+"="+name)
	cmd.Stdin = bytes.NewReader(job)
	cmd.Stderr = os.Stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return Result{Err: &izsieve.ChildFailureError{Core: core}}
	}
	if err := cmd.Start(); err != nil {
		return Result{Err: &izsieve.ChildFailureError{Core: core}}
	}

	buf := make([]byte, 8)
	n, readErr := io.ReadFull(stdout, buf)
	waitErr := cmd.Wait()

	if waitErr != nil {
		return Result{Err: classifyExit(core, waitErr)}
	}
	if readErr != nil || n != 8 {
		return Result{Err: &izsieve.ChildFailureError{Core: core}}
	}
	return Result{Value: binary.LittleEndian.Uint64(buf)}
}

func classifyExit(core int, err error) error {
	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		return &izsieve.ChildFailureError{Core: core}
	}
	if exitErr.ExitCode() < 0 {
		return &izsieve.ChildFailureError{Core: core, Signal: exitErr.String()}
	}
	return &izsieve.ChildFailureError{Core: core, ExitCode: exitErr.ExitCode()}
}
