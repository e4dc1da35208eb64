package cmd

import (
	"encoding/json"
	"fmt"

	"zimjobs/internal/classify"
)

type CategoriesCmd struct {
	Taxonomy string `help:"Path to a YAML taxonomy file overriding the built-in categories."`
}

func (c *CategoriesCmd) Run(ctx *Context) error {
	classifier, err := resolveClassifier(firstNonEmpty(c.Taxonomy, ctx.Config.TaxonomyPath))
	if err != nil {
		return err
	}

	names := append(classifier.Categories(), classify.Other)

	if ctx.JSONOutput {
		enc := json.NewEncoder(ctx.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(names)
	}

	for _, name := range names {
		if _, err := fmt.Fprintln(ctx.Out, name); err != nil {
			return err
		}
	}
	return nil
}

func resolveClassifier(taxonomyPath string) (*classify.Classifier, error) {
	if taxonomyPath == "" {
		return classify.New(), nil
	}
	return classify.LoadRules(taxonomyPath)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
