// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package argument

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/taibuivan/tagfilter/pkg/convert"
)

// PluginTaxonomyIndexTidSlug is the registry key of the slug-resolving handler.
const PluginTaxonomyIndexTidSlug = "taxonomy_index_tid_slug"

func init() {
	DefaultRegistry().MustRegister(PluginTaxonomyIndexTidSlug, func(deps Dependencies, options Options) (Handler, error) {
		return NewSlugResolvingHandler(deps, options)
	})
}

// SlugResolvingHandler accepts either a term identifier or a term slug.
//
// Only SetArgument differs from [TaxonomyIndexTid]: slugs are translated to an
// identifier first, and everything else is the embedded base behaviour.
type SlugResolvingHandler struct {
	*TaxonomyIndexTid

	terms    TermStore
	observer Observer
	logger   *slog.Logger
}

// NewSlugResolvingHandler builds the handler registered as taxonomy_index_tid_slug.
func NewSlugResolvingHandler(deps Dependencies, options Options) (*SlugResolvingHandler, error) {
	deps = deps.withDefaults()

	base, err := NewTaxonomyIndexTid(PluginTaxonomyIndexTidSlug, deps, options)
	if err != nil {
		return nil, err
	}

	return &SlugResolvingHandler{
		TaxonomyIndexTid: base,
		terms:            deps.Terms,
		observer:         deps.Observer,
		logger:           deps.Logger,
	}, nil
}

/*
SetArgument resolves arg to a term identifier and hands it to base validation.

  - The exception value goes to the base SetArgument untouched.
  - Numeric arguments are literal identifiers; no lookup is made.
  - Anything else is looked up by slug (restricted to Options.Vocabularies when
    set). No match resolves to "", which casts to 0.

The working value is the integer cast; validation sees the resolved string.
*/
func (handler *SlugResolvingHandler) SetArgument(context context.Context, arg string) (bool, error) {
	// The base handler reports the exception outcome
	if handler.IsException(arg) {
		return handler.TaxonomyIndexTid.SetArgument(context, arg)
	}

	resolved := arg
	outcome := OutcomeNumeric

	if !IsNumeric(arg) {
		var err error
		resolved, err = handler.resolveSlug(context, arg)
		if err != nil {
			handler.observer.ObserveResolution(handler.PluginID(), OutcomeError)
			return false, err
		}

		outcome = OutcomeResolved
		if resolved == "" {
			outcome = OutcomeNotFound
		}
	}

	handler.observer.ObserveResolution(handler.PluginID(), outcome)

	handler.Assign(arg, convert.ToInt(resolved))
	return handler.ValidateArgument(context, resolved)
}

// resolveSlug returns the first matching identifier as a string, or "" when none match.
func (handler *SlugResolvingHandler) resolveSlug(context context.Context, arg string) (string, error) {
	slug := handler.Options().Case.Apply(arg)

	ids, err := handler.terms.FindIDsBySlug(context, slug, handler.Options().Vocabularies)
	if err != nil {
		return "", err
	}

	if len(ids) == 0 {
		handler.logger.DebugContext(context, "term_slug_unresolved", slog.String("slug", slug))
		return "", nil
	}

	if len(ids) > 1 {
		handler.logger.WarnContext(context, "term_slug_ambiguous",
			slog.String("slug", slug),
			slog.Int("matches", len(ids)),
			slog.Int("term_id", ids[0]),
		)
	}

	return strconv.Itoa(ids[0]), nil
}
