// Package fstest provides a conformance test suite for validating filesystem
// provider implementations against the core.FileSystem contract.
//
// The test suite is designed to validate interface contracts, not backend-specific
// behavior. Providers must also implement core.WriteFS so the suite can build
// its fixtures; the suite skips when they do not.
//
// Example usage:
//
//	func TestMyProvider(t *testing.T) {
//	    fstest.TestSuite(t, func() core.FileSystem {
//	        return myprovider.New()
//	    })
//	}
package fstest

import (
	"testing"

	"github.com/jmgilman/vfs/fs/core"
)

// Config configures the test suite to match filesystem behavior characteristics.
type Config struct {
	// Permissions indicates the provider reports POSIX permission bits.
	// When false, the suite asserts Metadata reports none.
	Permissions bool

	// SkipTests lists specific test names to skip (for edge cases).
	// Format: "Group" or "Group/SubTest" (e.g., "Read/Directory").
	SkipTests []string
}

// POSIXConfig returns configuration for POSIX-like filesystems (local, memory).
func POSIXConfig() Config {
	return Config{Permissions: true}
}

// TestSuite runs all conformance tests against a filesystem.
// The newFS function should return a fresh, empty filesystem for each group.
// Uses POSIXConfig() by default.
func TestSuite(t *testing.T, newFS func() core.FileSystem) {
	TestSuiteWithConfig(t, newFS, POSIXConfig())
}

// TestSuiteWithConfig runs conformance tests with behavior configuration.
func TestSuiteWithConfig(t *testing.T, newFS func() core.FileSystem, config Config) {
	t.Run("Metadata", func(t *testing.T) {
		if config.skip("Metadata") {
			t.Skip("Skipped by provider configuration")
			return
		}
		TestMetadataWithConfig(t, newFS(), config)
	})

	t.Run("Read", func(t *testing.T) {
		if config.skip("Read") {
			t.Skip("Skipped by provider configuration")
			return
		}
		TestReadWithConfig(t, newFS(), config)
	})

	t.Run("WriteFS", func(t *testing.T) {
		if config.skip("WriteFS") {
			t.Skip("Skipped by provider configuration")
			return
		}
		TestWriteFSWithConfig(t, newFS(), config)
	})
}

func (c Config) skip(name string) bool {
	for _, skip := range c.SkipTests {
		if skip == name {
			return true
		}
	}
	return false
}

// run runs a named subtest unless the configuration skips it.
func (c Config) run(t *testing.T, group, name string, fn func(t *testing.T)) {
	t.Run(name, func(t *testing.T) {
		if c.skip(group + "/" + name) {
			t.Skip("Skipped by provider configuration")
			return
		}
		fn(t)
	})
}

// writable asserts the provider supports fixture setup.
func writable(t *testing.T, filesystem core.FileSystem) core.WriteFS {
	t.Helper()
	wfs, ok := filesystem.(core.WriteFS)
	if !ok {
		t.Skip("core.WriteFS not supported; the suite cannot create fixtures")
	}
	return wfs
}
