package docker

import (
	"context"
	"time"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"
)

// Config sisältää Docker client konfiguraation
type Config struct {
	Host      string
	TLSVerify bool
	CertPath  string
	Timeout   time.Duration
}

func DefaultConfig() Config {
	return Config{
		Host:    client.DefaultDockerHost,
		Timeout: 30 * time.Second,
	}
}

// containerLister is the part of the Engine API client used for snapshots.
type containerLister interface {
	Ping(ctx context.Context) (types.Ping, error)
	ContainerList(ctx context.Context, options container.ListOptions) ([]types.Container, error)
	Close() error
}

// Client kysyy containerit Docker Engine API:n kautta
type Client struct {
	cli     containerLister
	timeout time.Duration
}

// NewClient luo uuden Docker clientin. Yhteyttä ei avata vielä tässä;
// daemonin tavoittamattomuus raportoidaan QueryContainers kutsussa.
func NewClient(cfg Config) (*Client, error) {
	opts := []client.Opt{
		client.WithHost(cfg.Host),
		client.WithAPIVersionNegotiation(),
	}

	if cfg.TLSVerify {
		opts = append(opts, client.WithTLSClientConfig(
			cfg.CertPath+"/ca.pem",
			cfg.CertPath+"/cert.pem",
			cfg.CertPath+"/key.pem",
		))
	}

	cli, err := client.NewClientWithOpts(opts...)
	if err != nil {
		return nil, err
	}

	return &Client{
		cli:     cli,
		timeout: cfg.Timeout,
	}, nil
}

// Close sulkee yhteyden
func (c *Client) Close() error {
	if c.cli != nil {
		return c.cli.Close()
	}
	return nil
}

// QueryContainers lists all containers through the Engine API and renders
// them in the same ID||Name||Status shape the CLI produces.
func (c *Client) QueryContainers(ctx context.Context) (string, error) {
	pingCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	if _, err := c.cli.Ping(pingCtx); err != nil {
		return "", queryFailed(err.Error())
	}

	containers, err := c.ListContainers(ctx)
	if err != nil {
		return "", queryFailed(err.Error())
	}
	return renderListing(containers), nil
}
