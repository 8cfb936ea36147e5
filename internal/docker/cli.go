// internal/docker/cli.go
package docker

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os/exec"
	"strings"

	"github.com/rusenback/dockersnap/internal/model"
)

const (
	// NotFoundMessage is recorded when the docker executable cannot be resolved.
	NotFoundMessage = "docker executable not found"
	// FallbackMessage is recorded when a failed query produced no diagnostics.
	FallbackMessage = "docker ps failed"
)

// CLI kysyy containerit docker komentoriviohjelmalla
type CLI struct {
	// Binary is the executable name looked up on PATH, or a path to it.
	Binary string
}

// NewCLI luo CLI querierin; tyhjä binary tarkoittaa "docker"
func NewCLI(binary string) *CLI {
	if binary == "" {
		binary = "docker"
	}
	return &CLI{Binary: binary}
}

// QueryContainers runs "docker ps -a" with the ID||Name||Status format and
// returns its trimmed stdout. The command is not timed out.
func (c *CLI) QueryContainers(ctx context.Context) (string, error) {
	path, err := exec.LookPath(c.Binary)
	if err != nil {
		return "", queryFailed(NotFoundMessage)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, "ps", "-a", "--format", model.ListFormat)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		switch {
		case errors.As(err, &exitErr):
			return "", queryFailed(stderr.String())
		case errors.Is(err, exec.ErrNotFound), errors.Is(err, fs.ErrNotExist):
			return "", queryFailed(NotFoundMessage)
		default:
			// esim. permission denied käynnistyksessä
			return "", queryFailed(err.Error())
		}
	}

	return strings.TrimSpace(stdout.String()), nil
}
