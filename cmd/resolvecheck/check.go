// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/storefront-gateway/internal/resolver"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	helpStyle   = lipgloss.NewStyle().Faint(true)
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// defaultPaths are the request shapes the storefront UI actually sends.
var defaultPaths = []string{
	"",
	"/",
	"/products",
	"products",
	"/products/123",
	"/products/search?q=shoe",
	"/api/products",
	"/api/v1/products",
	"/api/v1/api/v1/products",
	"/api/v2/products",
	"/api/brands/popular",
	"/orders/admin/all?page=1&size=10",
	"/api/v1/orders/guest",
	"/api/categories/tree",
}

type result struct {
	input     string
	resolved  string
	foreign   string
	duplicate bool
}

func check(r *resolver.Resolver, paths []string) []result {
	results := make([]result, 0, len(paths))
	for _, p := range paths {
		res := result{input: p, resolved: r.Resolve(p)}
		res.duplicate = r.HasDuplicatePrefix(res.resolved)
		if v, ok := r.ForeignVersion(p); ok {
			res.foreign = v
		}
		results = append(results, res)
	}
	return results
}

func countDuplicates(results []result) int {
	n := 0
	for _, res := range results {
		if res.duplicate {
			n++
		}
	}
	return n
}

func render(r *resolver.Resolver, results []result) string {
	inputWidth := lipgloss.Width("INPUT")
	for _, res := range results {
		if w := lipgloss.Width(quote(res.input)); w > inputWidth {
			inputWidth = w
		}
	}
	cell := lipgloss.NewStyle().Width(inputWidth + 2)

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Versioned base: "+r.VersionedBase()) + "\n\n")
	sb.WriteString(cell.Render(headerStyle.Render("INPUT")) + headerStyle.Render("RESOLVED") + "\n")

	for _, res := range results {
		status := okStyle.Render("ok")
		switch {
		case res.duplicate:
			status = errorStyle.Render("DUPLICATE PREFIX")
		case res.foreign != "":
			status = warnStyle.Render(fmt.Sprintf("rewrote %s -> %s", res.foreign, r.Version()))
		}
		sb.WriteString(cell.Render(quote(res.input)) + res.resolved + "  " + status + "\n")
	}

	dups := countDuplicates(results)
	summary := okStyle.Render(fmt.Sprintf("%d paths checked, no duplicated prefix", len(results)))
	if dups > 0 {
		summary = errorStyle.Render(fmt.Sprintf("%d of %d paths resolve with a duplicated prefix", dups, len(results)))
	}
	sb.WriteString("\n" + summary + "\n")
	sb.WriteString(helpStyle.Render("configure with BACKEND_API_ENDPOINT or -b"))

	return boxStyle.Render(sb.String())
}

func quote(s string) string {
	return fmt.Sprintf("%q", s)
}
