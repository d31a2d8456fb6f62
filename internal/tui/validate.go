package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/tuannvm/ultratech/internal/catalog"
)

// NameValidator rejects blank names before they reach the registry.
func NameValidator(cat *catalog.Catalog) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(cat.Label(catalog.KeyPromptNameRequired))
		}
		return nil
	}
}

// RankValidator rejects ranks that do not parse as integers. Primality and
// uniqueness are left to the registry so those proposals are counted.
func RankValidator(cat *catalog.Catalog) func(string) error {
	return func(s string) error {
		if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
			return errors.New(cat.Label(catalog.KeyPromptRankInvalid))
		}
		return nil
	}
}
