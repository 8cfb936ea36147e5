package docker

import (
	"context"
	"errors"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type fakeLister struct {
	pingErr    error
	listErr    error
	containers []types.Container
	listOpts   container.ListOptions
	closed     bool
}

func (f *fakeLister) Ping(context.Context) (types.Ping, error) {
	return types.Ping{}, f.pingErr
}

func (f *fakeLister) ContainerList(_ context.Context, opts container.ListOptions) ([]types.Container, error) {
	f.listOpts = opts
	return f.containers, f.listErr
}

func (f *fakeLister) Close() error {
	f.closed = true
	return nil
}

var _ = Describe("docker API querier", func() {

	ctx := context.Background()

	It("renders containers like docker ps", func() {
		fake := &fakeLister{containers: []types.Container{
			{ID: "0123456789abcdef0123", Names: []string{"/web"}, Status: "Up 3 days"},
			{ID: "short", Names: []string{"/db", "/alias"}, Status: "Exited (0) 2 hours ago"},
		}}
		c := &Client{cli: fake}
		Expect(c.QueryContainers(ctx)).To(Equal(
			"0123456789ab||web||Up 3 days\nshort||db,alias||Exited (0) 2 hours ago"))
		Expect(fake.listOpts.All).To(BeTrue())

		Expect(c.Close()).To(Succeed())
		Expect(fake.closed).To(BeTrue())
	})

	It("returns empty output for no containers", func() {
		c := &Client{cli: &fakeLister{}}
		Expect(c.QueryContainers(ctx)).To(BeEmpty())
	})

	It("reports an unreachable daemon", func() {
		c := &Client{cli: &fakeLister{pingErr: errors.New("Cannot connect to the Docker daemon")}, timeout: 1}
		_, err := c.QueryContainers(ctx)
		Expect(err).To(MatchError("Cannot connect to the Docker daemon"))
	})

	It("reports list failures with a fallback for blank errors", func() {
		c := &Client{cli: &fakeLister{listErr: errors.New(" ")}}
		_, err := c.QueryContainers(ctx)
		Expect(err).To(MatchError(FallbackMessage))
	})

	It("builds a client without contacting the daemon", func() {
		c, err := NewClient(DefaultConfig())
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Close()).To(Succeed())
	})

})
