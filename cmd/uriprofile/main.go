// Command uriprofile collects CPU and memory profiles of Parse/Build over
// the shared fixture corpus, the way fredbi/uri's profiling/main.go does
// for its own Parse.
package main

import (
	"log"

	"github.com/pkg/profile"
	"github.com/rfc3986/uri"
	"github.com/rfc3986/uri/internal/fixtures"
)

const profDir = "prof"

func main() {
	const n = 100000

	profileCPU(n)
	profileMemory(n)
}

func profileCPU(n int) {
	defer profile.Start(
		profile.CPUProfile,
		profile.ProfilePath(profDir),
		profile.NoShutdownHook,
	).Stop()

	runProfile(n)
}

func profileMemory(n int) {
	defer profile.Start(
		profile.MemProfile,
		profile.ProfilePath(profDir),
		profile.NoShutdownHook,
	).Stop()

	runProfile(n)
}

func runProfile(n int) {
	for i := 0; i < n; i++ {
		for _, generator := range fixtures.All {
			for _, tc := range generator() {
				if !tc.ParseOK {
					continue
				}

				c, err := uri.Parse(tc.Raw)
				if err != nil {
					log.Fatalf("unexpected error for %q: %v", tc.Raw, err)
				}

				_ = uri.Build(c)
			}
		}
	}
}
