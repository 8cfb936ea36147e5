package snapshot

import (
	"errors"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/thediveo/success"
)

func tempDir() string {
	GinkgoHelper()
	dir := Successful(os.MkdirTemp("", "dockersnap-*"))
	DeferCleanup(func() { _ = os.RemoveAll(dir) })
	return dir
}

var _ = Describe("log file", func() {

	It("creates the logs directory idempotently", func() {
		base := tempDir()
		path := Successful(ResolveLogPath(base))
		Expect(path).To(Equal(filepath.Join(base, "logs", "docker_monitor.log")))
		Expect(filepath.Join(base, "logs")).To(BeADirectory())
		Expect(ResolveLogPath(base)).To(Equal(path))
	})

	It("creates missing parents", func() {
		base := filepath.Join(tempDir(), "a", "b")
		Expect(ResolveLogPath(base)).Error().NotTo(HaveOccurred())
		Expect(filepath.Join(base, "logs")).To(BeADirectory())
	})

	It("fails when the logs directory cannot be created", func() {
		base := filepath.Join(tempDir(), "file")
		Expect(os.WriteFile(base, nil, 0644)).To(Succeed())
		_, err := ResolveLogPath(base)
		var perr *PersistenceError
		Expect(errors.As(err, &perr)).To(BeTrue())
		Expect(perr.Path).To(Equal(filepath.Join(base, "logs")))
	})

	It("appends without touching earlier bytes", func() {
		path := filepath.Join(tempDir(), "docker_monitor.log")
		Expect(AppendEntry(path, "first\n")).To(Succeed())
		Expect(path).To(BeAnExistingFile())
		Expect(AppendEntry(path, "second\n")).To(Succeed())
		Expect(string(Successful(os.ReadFile(path)))).To(Equal("first\nsecond\n"))
	})

	It("reports files that cannot be opened", func() {
		dir := tempDir()
		err := AppendEntry(dir, "entry\n")
		var perr *PersistenceError
		Expect(errors.As(err, &perr)).To(BeTrue())
		Expect(perr.Path).To(Equal(dir))
		Expect(perr.Unwrap()).To(HaveOccurred())
		Expect(err.Error()).To(HavePrefix(dir + ": "))
	})

})
