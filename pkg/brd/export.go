package brd

import (
	"fmt"
	"strings"

	"brd-studio-be/internal/constant"
	"brd-studio-be/internal/entity"
)

// ExportMarkdown flattens a BRD into a single markdown document:
// populated sections in canonical order, each with its title, content,
// and citation footnotes, separated by horizontal rules. Pure
// transform, no side effects.
func ExportMarkdown(title string, sections []*entity.Section) string {
	byKey := make(map[string]*entity.Section, len(sections))
	for _, s := range sections {
		byKey[s.Key] = s
	}

	var b strings.Builder
	b.WriteString("# " + title + "\n")

	for _, key := range constant.SectionKeys {
		section, ok := byKey[key]
		if !ok || strings.TrimSpace(section.Content) == "" {
			continue
		}

		b.WriteString("\n---\n\n")
		sectionTitle := section.Title
		if sectionTitle == "" {
			sectionTitle = constant.SectionTitles[key]
		}
		b.WriteString("## " + sectionTitle + "\n\n")
		b.WriteString(strings.TrimRight(section.Content, "\n"))
		b.WriteString("\n")

		if len(section.Citations) > 0 {
			b.WriteString("\n**Sources**\n\n")
			for _, c := range section.Citations {
				b.WriteString(fmt.Sprintf("- [%s] %s", c.Id, c.Filename))
				if c.Quote != "" {
					b.WriteString(fmt.Sprintf(": %q", c.Quote))
				}
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}
