// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package argument implements contextual-filter handlers: the plugins that turn a
raw URL path segment into the term filter a view listing applies.

# Plugins

  - taxonomy_index_tid: the base handler. Handles the exception value, casts the
    argument to a term identifier and runs the configured validator.
  - taxonomy_index_tid_slug: embeds the base handler and, before delegating,
    resolves non-numeric arguments through a single slug lookup.

Handlers are created per request from a [Registry] and are not safe for
concurrent use.
*/
package argument

import (
	"context"
	"log/slog"

	"github.com/taibuivan/tagfilter/internal/platform/constants"
	"github.com/taibuivan/tagfilter/internal/platform/validate"
	"github.com/taibuivan/tagfilter/internal/taxonomy"
)

// # Handler Contract

// Handler is a contextual argument for one path position of a view.
type Handler interface {
	// PluginID returns the registry key the handler was built from.
	PluginID() string

	// Options returns the effective options, defaults applied.
	Options() Options

	// IsException reports whether arg is the configured "no filtering" value.
	IsException(arg string) bool

	// SetArgument assigns arg and validates it. A false result with a nil error
	// means the argument failed validation and the view's fail action applies.
	SetArgument(context context.Context, arg string) (bool, error)

	// Value is the working term identifier (0 when unresolved or exceptional).
	Value() int

	// Raw is the argument as it arrived from the URL.
	Raw() string

	// Exception reports whether the assigned argument was the exception value.
	Exception() bool

	// Filter returns the term identifiers to restrict on, or nil for no restriction.
	Filter() []int

	// Title returns a human-readable label for the assigned argument.
	Title(context context.Context) (string, error)
}

// TermStore is the slice of the taxonomy repository handlers depend on.
type TermStore interface {
	GetTermByID(context context.Context, id int) (*taxonomy.Term, error)
	FindIDsBySlug(context context.Context, slug string, vocabularies []string) ([]int, error)
}

// Observer receives one call per SetArgument with the resolution outcome.
type Observer interface {
	ObserveResolution(plugin, outcome string)
}

// Resolution outcomes reported to [Observer].
const (
	OutcomeException = "exception"
	OutcomeNumeric   = "numeric"
	OutcomeResolved  = "resolved"
	OutcomeNotFound  = "not_found"
	OutcomeError     = "error"
)

// Dependencies are the collaborators shared by every handler a registry builds.
type Dependencies struct {
	Terms    TermStore
	Observer Observer
	Logger   *slog.Logger
}

func (deps Dependencies) withDefaults() Dependencies {
	if deps.Observer == nil {
		deps.Observer = nopObserver{}
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return deps
}

type nopObserver struct{}

func (nopObserver) ObserveResolution(string, string) {}

// # Options

// Action is what a view does when an argument is missing or fails validation.
type Action string

const (
	// ActionIgnore lists everything, as if the position carried no filter.
	ActionIgnore Action = "ignore"
	// ActionDefault substitutes Options.DefaultArgument.
	ActionDefault Action = "default"
	// ActionNotFound answers 404.
	ActionNotFound Action = "not_found"
	// ActionEmpty answers with an empty listing.
	ActionEmpty Action = "empty"
	// ActionAccessDenied answers 403.
	ActionAccessDenied Action = "access_denied"
)

var actions = []string{
	string(ActionIgnore), string(ActionDefault), string(ActionNotFound),
	string(ActionEmpty), string(ActionAccessDenied),
}

// ExceptionOptions configures the "all items" sentinel.
type ExceptionOptions struct {
	Disabled bool   `yaml:"disabled"`
	Value    string `yaml:"value"`
	Title    string `yaml:"title"`
}

// Options is the per-view configuration of an argument position.
type Options struct {
	Exception ExceptionOptions `yaml:"exception"`

	// Validator names the validator plugin: none, numeric or taxonomy_term.
	Validator string `yaml:"validator"`

	// Vocabularies restricts slug resolution and taxonomy_term validation.
	Vocabularies []string `yaml:"vocabularies"`

	DefaultAction   Action `yaml:"default_action"`
	DefaultArgument string `yaml:"default_argument"`
	FailAction      Action `yaml:"fail_action"`

	// Case is applied to slugs before lookup.
	Case Case `yaml:"case"`
}

// WithDefaults fills every unset option.
func (options Options) WithDefaults() Options {
	if options.Exception.Value == "" {
		options.Exception.Value = constants.DefaultExceptionValue
	}
	if options.Exception.Title == "" {
		options.Exception.Title = constants.DefaultExceptionTitle
	}
	if options.Validator == "" {
		options.Validator = ValidatorNone
	}
	if options.DefaultAction == "" {
		options.DefaultAction = ActionIgnore
	}
	if options.FailAction == "" {
		options.FailAction = ActionNotFound
	}
	if options.Case == "" {
		options.Case = CaseNone
	}
	return options
}

// Validate checks option values. Call it on options with defaults applied.
func (options Options) Validate() error {
	v := &validate.Validator{}

	v.OneOf("validator", options.Validator, validatorIDs...).
		OneOf("default_action", string(options.DefaultAction), actions...).
		OneOf("fail_action", string(options.FailAction), actions...).
		OneOf("case", string(options.Case), caseModes...).
		Custom("default_argument",
			(options.DefaultAction == ActionDefault || options.FailAction == ActionDefault) && options.DefaultArgument == "",
			"Required when an action is \"default\"")

	for _, vocabulary := range options.Vocabularies {
		v.MachineName("vocabularies", vocabulary)
	}

	return v.Err()
}
