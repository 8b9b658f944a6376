// Package main provides the entry point for the beacon CLI.
//
// Beacon runs batch website performance audits with the Lighthouse CLI and
// tracks score history across runs.
//
// Usage:
//
//	beacon run --name audit https://example.com
//	beacon history
//	beacon progression --name audit https://example.com
//
// See --help for all available options.
package main

// main is the entry point for beacon.
func main() {
	Execute()
}
