// Command resolvecheck prints how the gateway would resolve request paths
// against the configured backend. It reads the same configuration sources as
// the gateway. Paths are taken from the positional arguments, or from a
// built-in list when none are given.
//
//	resolvecheck -b http://localhost:8081/api/v1 /products /api/v1/products
//
// The exit code is 1 when any resolved URL carries the API prefix twice.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/MKhiriev/storefront-gateway/internal/config"
	"github.com/MKhiriev/storefront-gateway/internal/resolver"
)

func main() {
	cfg, err := config.GetGatewayConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("configuration error: "+err.Error()))
		os.Exit(2)
	}

	r, err := resolver.New(cfg.Backend.Origin, cfg.Backend.APIVersion)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("resolver error: "+err.Error()))
		os.Exit(2)
	}

	paths := flag.CommandLine.Args()
	if len(paths) == 0 {
		paths = defaultPaths
	}

	results := check(r, paths)
	fmt.Println(render(r, results))

	if countDuplicates(results) > 0 {
		os.Exit(1)
	}
}
