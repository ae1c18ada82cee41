// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Locale values that select plain byte ordering instead of a collation table.
const (
	LocaleC     = "C"
	LocalePOSIX = "POSIX"

	defaultLocale = "und"
)

// Collator orders row names case-insensitively for one explicit locale.
// A Collator is not safe for concurrent use.
type Collator struct {
	locale   string
	collator *collate.Collator
}

// NewCollator builds a Collator for locale. It accepts BCP 47 tags ("en",
// "sv", "de-DE") and POSIX names ("en_US.UTF-8"); "C" and "POSIX" select
// byte order of the lower-cased names and match in any case. An empty
// locale means "und".
func NewCollator(locale string) (*Collator, error) {
	locale = normalizeLocale(locale)

	switch {
	case strings.EqualFold(locale, LocaleC):
		return &Collator{locale: LocaleC}, nil
	case strings.EqualFold(locale, LocalePOSIX):
		return &Collator{locale: LocalePOSIX}, nil
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidLocale, locale, err)
	}

	return &Collator{
		locale:   tag.String(),
		collator: collate.New(tag, collate.IgnoreCase),
	}, nil
}

// Locale returns the normalized locale the Collator was built for.
func (c *Collator) Locale() string {
	return c.locale
}

// Compare returns -1, 0 or +1 comparing a and b. Names are lower-cased
// before collation; names that still compare equal are ordered by their
// raw bytes so sorting is deterministic.
func (c *Collator) Compare(a, b string) int {
	la, lb := strings.ToLower(a), strings.ToLower(b)

	var result int
	if c.collator != nil {
		result = c.collator.CompareString(la, lb)
	} else {
		result = strings.Compare(la, lb)
	}

	if result != 0 {
		return result
	}
	return strings.Compare(a, b)
}

func normalizeLocale(locale string) string {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return defaultLocale
	}

	// en_US.UTF-8@euro -> en-US
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	return strings.ReplaceAll(locale, "_", "-")
}
