// internal/docker/container.go
package docker

import (
	"context"
	"strings"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/rusenback/dockersnap/internal/model"
)

// shortIDLen matches the truncated IDs docker ps prints.
const shortIDLen = 12

// ListContainers palauttaa kaikki containerit (running + stopped)
func (c *Client) ListContainers(ctx context.Context) ([]model.Container, error) {
	containers, err := c.cli.ContainerList(ctx, container.ListOptions{
		All: true, // Näytä myös pysäytetyt
	})
	if err != nil {
		return nil, err
	}
	return toModel(containers), nil
}

func toModel(containers []types.Container) []model.Container {
	result := make([]model.Container, 0, len(containers))
	for _, cont := range containers {
		result = append(result, model.Container{
			ID:     shortID(cont.ID),
			Name:   containerName(cont.Names),
			Status: cont.Status,
		})
	}
	return result
}

func shortID(id string) string {
	if len(id) > shortIDLen {
		return id[:shortIDLen]
	}
	return id
}

// containerName joins names the way docker ps does, with the leading "/"
// removed from each.
func containerName(names []string) string {
	trimmed := make([]string, 0, len(names))
	for _, name := range names {
		trimmed = append(trimmed, strings.TrimPrefix(name, "/"))
	}
	return strings.Join(trimmed, ",")
}

// renderListing produces one ID||Name||Status line per container.
func renderListing(containers []model.Container) string {
	lines := make([]string, 0, len(containers))
	for _, c := range containers {
		lines = append(lines, c.Line())
	}
	return strings.Join(lines, "\n")
}
