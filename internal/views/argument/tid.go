// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package argument

import (
	"context"
	"strconv"

	"github.com/taibuivan/tagfilter/internal/platform/dberr"
	"github.com/taibuivan/tagfilter/pkg/convert"
)

// PluginTaxonomyIndexTid is the registry key of the base term-identifier handler.
const PluginTaxonomyIndexTid = "taxonomy_index_tid"

func init() {
	DefaultRegistry().MustRegister(PluginTaxonomyIndexTid, func(deps Dependencies, options Options) (Handler, error) {
		return NewTaxonomyIndexTid(PluginTaxonomyIndexTid, deps, options)
	})
}

// TaxonomyIndexTid filters a listing by a numeric term identifier.
//
// It owns the behaviour every term argument shares: the exception value,
// integer casting, validation (memoised per instance) and titles.
type TaxonomyIndexTid struct {
	pluginID  string
	options   Options
	terms     TermStore
	validator Validator
	observer  Observer

	raw       string
	value     int
	exception bool
	validated *bool
}

// NewTaxonomyIndexTid builds the base handler. pluginID lets wrapping
// handlers report their own registry key.
func NewTaxonomyIndexTid(pluginID string, deps Dependencies, options Options) (*TaxonomyIndexTid, error) {
	deps = deps.withDefaults()
	options = options.WithDefaults()
	if err := options.Validate(); err != nil {
		return nil, err
	}

	validator, err := newValidator(options.Validator, deps.Terms, options.Vocabularies)
	if err != nil {
		return nil, err
	}

	return &TaxonomyIndexTid{
		pluginID:  pluginID,
		options:   options,
		terms:     deps.Terms,
		validator: validator,
		observer:  deps.Observer,
	}, nil
}

func (handler *TaxonomyIndexTid) PluginID() string { return handler.pluginID }

func (handler *TaxonomyIndexTid) Options() Options { return handler.options }

// IsException reports whether arg equals the enabled exception value.
func (handler *TaxonomyIndexTid) IsException(arg string) bool {
	exception := handler.options.Exception
	return !exception.Disabled && exception.Value != "" && arg == exception.Value
}

// SetArgument stores arg, casts it to the working identifier and validates it.
// Anything that is neither the exception nor numeric is reported as not_found.
func (handler *TaxonomyIndexTid) SetArgument(context context.Context, arg string) (bool, error) {
	switch {
	case handler.IsException(arg):
		handler.observer.ObserveResolution(handler.pluginID, OutcomeException)
	case IsNumeric(arg):
		handler.observer.ObserveResolution(handler.pluginID, OutcomeNumeric)
	default:
		handler.observer.ObserveResolution(handler.pluginID, OutcomeNotFound)
	}

	handler.Assign(arg, convert.ToInt(arg))
	return handler.ValidateArgument(context, arg)
}

// Assign sets the raw argument and the working identifier without validating,
// and clears any memoised validation result.
func (handler *TaxonomyIndexTid) Assign(raw string, value int) {
	handler.raw = raw
	handler.value = value
	handler.exception = handler.IsException(raw)
	handler.validated = nil
}

/*
ValidateArgument runs the configured validator against arg.

The exception value is always valid. Results are memoised until the next
Assign; storage errors are returned and not memoised.
*/
func (handler *TaxonomyIndexTid) ValidateArgument(context context.Context, arg string) (bool, error) {
	if handler.validated != nil {
		return *handler.validated, nil
	}

	valid := true
	if !handler.IsException(arg) {
		var err error
		valid, err = handler.validator.Validate(context, arg)
		if err != nil {
			return false, err
		}
	}

	handler.validated = &valid
	return valid, nil
}

func (handler *TaxonomyIndexTid) Value() int { return handler.value }

func (handler *TaxonomyIndexTid) Raw() string { return handler.raw }

func (handler *TaxonomyIndexTid) Exception() bool { return handler.exception }

// Filter restricts to the working identifier unless the exception value was assigned.
func (handler *TaxonomyIndexTid) Filter() []int {
	if handler.exception {
		return nil
	}
	return []int{handler.value}
}

// Title is the exception title, the term name, or the raw argument when no term matches.
func (handler *TaxonomyIndexTid) Title(context context.Context) (string, error) {
	if handler.exception {
		return handler.options.Exception.Title, nil
	}
	if handler.value == 0 || handler.terms == nil {
		return handler.raw, nil
	}

	term, err := handler.terms.GetTermByID(context, handler.value)
	if dberr.IsNotFound(err) {
		return handler.raw, nil
	}
	if err != nil {
		return "", err
	}
	return term.Name, nil
}

// IsNumeric reports whether arg is a non-empty run of ASCII digits.
func IsNumeric(arg string) bool {
	if arg == "" {
		return false
	}
	for i := 0; i < len(arg); i++ {
		if arg[i] < '0' || arg[i] > '9' {
			return false
		}
	}
	_, err := strconv.Atoi(arg)
	return err == nil
}
