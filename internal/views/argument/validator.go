// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package argument

import (
	"context"
	"fmt"
	"slices"

	"github.com/taibuivan/tagfilter/internal/platform/dberr"
	"github.com/taibuivan/tagfilter/pkg/convert"
)

// Validator plugin names.
const (
	ValidatorNone         = "none"
	ValidatorNumeric      = "numeric"
	ValidatorTaxonomyTerm = "taxonomy_term"
)

var validatorIDs = []string{ValidatorNone, ValidatorNumeric, ValidatorTaxonomyTerm}

// Validator decides whether an assigned argument is acceptable.
type Validator interface {
	Validate(context context.Context, arg string) (bool, error)
}

// ValidatorFunc adapts a function to [Validator].
type ValidatorFunc func(context context.Context, arg string) (bool, error)

func (f ValidatorFunc) Validate(context context.Context, arg string) (bool, error) {
	return f(context, arg)
}

func newValidator(id string, terms TermStore, vocabularies []string) (Validator, error) {
	switch id {
	case ValidatorNone:
		return ValidatorFunc(func(context.Context, string) (bool, error) { return true, nil }), nil
	case ValidatorNumeric:
		return ValidatorFunc(func(_ context.Context, arg string) (bool, error) { return IsNumeric(arg), nil }), nil
	case ValidatorTaxonomyTerm:
		return &termValidator{terms: terms, vocabularies: vocabularies}, nil
	default:
		return nil, fmt.Errorf("argument: unknown validator %q", id)
	}
}

// termValidator accepts identifiers of existing terms, limited to vocabularies when set.
type termValidator struct {
	terms        TermStore
	vocabularies []string
}

func (validator *termValidator) Validate(context context.Context, arg string) (bool, error) {
	if !IsNumeric(arg) {
		return false, nil
	}

	term, err := validator.terms.GetTermByID(context, convert.ToInt(arg))
	if dberr.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if len(validator.vocabularies) > 0 && !slices.Contains(validator.vocabularies, term.VocabularyID) {
		return false, nil
	}
	return true, nil
}
