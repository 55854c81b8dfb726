package brd

import (
	"fmt"
	"strings"

	"brd-studio-be/pkg/store"
)

// MergeContent computes a section's new canonical content from an
// accepted refiner output. Policy, in order:
//
//  1. Generation output is new material, so it is appended after the
//     existing content with a blank line between.
//  2. When the original seed still appears verbatim, only its first
//     occurrence is replaced. This is the localized-rewrite case.
//  3. Otherwise the whole content is replaced: either there was no
//     literal selection (conflict flows seed synthesized context) or
//     earlier edits already moved the text.
//
// The switch is exhaustive over ResponseKind so a fourth kind fails
// loudly here instead of silently falling into a branch.
func MergeContent(current, original, refined string, kind store.ResponseKind) (string, error) {
	switch kind {
	case store.KindGeneration:
		return current + "\n\n" + refined, nil
	case store.KindRewrite, store.KindAnswer:
		if original != "" && strings.Contains(current, original) {
			return strings.Replace(current, original, refined, 1), nil
		}
		return refined, nil
	default:
		return "", fmt.Errorf("unhandled response kind %q", kind)
	}
}
