package bank

import (
	"fmt"
	"strings"
)

// validateItems performs all structural checks on the seed catalog.
// Returns a combined error describing all problems found, or nil if valid.
func validateItems(items []Item, features map[string]Features) error {
	var errs []string

	knownTags := make(map[CoverageTag]bool)
	for _, t := range CoverageTargets() {
		knownTags[t] = true
	}

	idSet := make(map[string]bool, len(items))
	for _, it := range items {
		if it.ID == "" {
			errs = append(errs, "item with empty ID")
			continue
		}
		if idSet[it.ID] {
			errs = append(errs, fmt.Sprintf("duplicate item ID: %q", it.ID))
		}
		idSet[it.ID] = true

		if it.Text == "" {
			errs = append(errs, fmt.Sprintf("item %q has no stimulus text", it.ID))
		}
		if it.Disc <= 0 {
			errs = append(errs, fmt.Sprintf("item %q has non-positive discrimination %v", it.ID, it.Disc))
		}
		if !knownTags[it.CoverageTag] {
			errs = append(errs, fmt.Sprintf("item %q has unknown coverage tag %q", it.ID, it.CoverageTag))
		}
		if it.SchemaID == "" {
			errs = append(errs, fmt.Sprintf("item %q has no schema ID", it.ID))
		}
		if it.Family == "" {
			errs = append(errs, fmt.Sprintf("item %q has no family", it.ID))
		}
	}

	// Features must not reference schema IDs no item uses.
	schemaSet := make(map[string]bool, len(items))
	for _, it := range items {
		schemaSet[it.SchemaID] = true
	}
	for id := range features {
		if !schemaSet[id] {
			errs = append(errs, fmt.Sprintf("features declared for unused schema %q", id))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("item bank validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// Validate re-runs the structural checks against the loaded catalog.
// Exposed for the CLI's bank subcommand.
func Validate() error {
	return validateItems(c.items, c.features)
}
