// CI functions for the resource cleaner: lint and the three test tiers.
//
// Every function takes the repository root as sourceDir and returns a
// container whose last exec is the check itself, e.g.
//
//	dagger call unit-tests --source-dir=. stdout
package main

import (
	"runtime"

	"resource-cleaner/dagger/internal/dagger"
)

const containerPath = "/go/src/github.com/lerenn/resource-cleaner"

type ResourceCleaner struct{}

// Lint runs golangci-lint on the main module.
func (ci *ResourceCleaner) Lint(sourceDir *dagger.Directory) *dagger.Container {
	c := dag.Container().
		From("golangci/golangci-lint:v2.4.0").
		WithMountedCache("/root/.cache/golangci-lint", dag.CacheVolume("golangci-lint"))

	return ci.withGoCodeAndCacheAsWorkDirectory(c, sourceDir).
		WithExec([]string{"golangci-lint", "run", "--timeout", "10m", "./..."})
}

// UnitTests returns a container that runs the unit tests.
func (ci *ResourceCleaner) UnitTests(sourceDir *dagger.Directory) *dagger.Container {
	return ci.goTests(sourceDir, "unit", "./...")
}

// IntegrationTests returns a container that runs the tests touching the real filesystem.
func (ci *ResourceCleaner) IntegrationTests(sourceDir *dagger.Directory) *dagger.Container {
	return ci.goTests(sourceDir, "integration", "./...")
}

// EndToEndTests returns a container that runs the end-to-end tests.
func (ci *ResourceCleaner) EndToEndTests(sourceDir *dagger.Directory) *dagger.Container {
	return ci.goTests(sourceDir, "e2e", "./test/", "-v")
}

// Build cross-compiles the rc binary for the given platform and returns it.
func (ci *ResourceCleaner) Build(
	sourceDir *dagger.Directory,
	// +default="windows"
	goos string,
	// +default="amd64"
	goarch string,
) *dagger.File {
	binary := "/out/rc"
	if goos == "windows" {
		binary += ".exe"
	}

	c := dag.Container().From("golang:"+goVersion()+"-alpine").
		WithEnvVariable("CGO_ENABLED", "0").
		WithEnvVariable("GOOS", goos).
		WithEnvVariable("GOARCH", goarch)

	return ci.withGoCodeAndCacheAsWorkDirectory(c, sourceDir).
		WithExec([]string{"go", "build", "-o", binary, "./cmd/rc"}).
		File(binary)
}

func (ci *ResourceCleaner) goTests(sourceDir *dagger.Directory, tag string, args ...string) *dagger.Container {
	c := dag.Container().From("golang:" + goVersion() + "-alpine")
	cmd := append([]string{"go", "test", "-tags=" + tag}, args...)
	return ci.withGoCodeAndCacheAsWorkDirectory(c, sourceDir).WithExec(cmd)
}

func (ci *ResourceCleaner) withGoCodeAndCacheAsWorkDirectory(
	c *dagger.Container,
	sourceDir *dagger.Directory,
) *dagger.Container {
	return c.
		// Add Go caches
		WithMountedCache("/root/.cache/go-build", dag.CacheVolume("gobuild")).
		WithMountedCache("/go/pkg/mod", dag.CacheVolume("gocache")).

		// Add source code
		WithMountedDirectory(containerPath, sourceDir).

		// Add workdir
		WithWorkdir(containerPath)
}

func goVersion() string {
	return runtime.Version()[2:]
}
