package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/csheth/wiki/internal/profile"
	"github.com/csheth/wiki/internal/sections"
)

func newTOCCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "toc",
		Short: "Print the site metadata and table of contents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := profile.Load(a.cfg.Content)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), formatTOC(p))
			return err
		},
	}
}

func formatTOC(p *profile.Profile) string {
	var b strings.Builder
	site := p.Site
	b.WriteString(site.Title + "\n")
	if site.Description != "" {
		b.WriteString(site.Description + "\n")
	}
	if site.Author != "" {
		fmt.Fprintf(&b, "Author: %s\n", site.Author)
	}
	if site.Canonical != "" {
		fmt.Fprintf(&b, "URL: %s\n", site.Canonical)
	}
	if len(site.Keywords) > 0 {
		fmt.Fprintf(&b, "Keywords: %s\n", strings.Join(site.Keywords, ", "))
	}
	b.WriteString("\n")
	for i, id := range sections.All() {
		fmt.Fprintf(&b, "%d. %s (#%s)\n", i+1, id.Title(), id)
	}
	return b.String()
}
