package dispatcher

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/rs/zerolog/log"
)

type ClientNotFoundError struct {
	Binary string
}

func (e *ClientNotFoundError) Error() string {
	return fmt.Sprintf("backend client %q not found on PATH", e.Binary)
}

// Dispatcher hands a translated argument vector to a backend client,
// relaying its standard streams and exit code verbatim.
type Dispatcher struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func New() *Dispatcher {
	return &Dispatcher{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
}

// Run executes argv[0] with the remaining arguments and blocks until the
// child exits, returning its exit code unmodified. The binary is looked up
// on PATH first so a missing client is reported before any child starts.
// There is no retry and no timeout: a hung backend hangs the wrapper.
func (d *Dispatcher) Run(argv []string) (int, error) {
	binary := argv[0]
	if _, err := exec.LookPath(binary); err != nil {
		return 0, &ClientNotFoundError{Binary: binary}
	}

	log.Debug().Strs("argv", argv).Msg("Delegating to backend client")

	cmd := exec.Command(binary, argv[1:]...)
	cmd.Stdin = d.stdin
	cmd.Stdout = d.stdout
	cmd.Stderr = d.stderr

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 0, fmt.Errorf("failed to start %s: %w", binary, err)
	}

	return 0, nil
}
