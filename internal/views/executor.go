// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package views

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/taibuivan/tagfilter/internal/content"
	"github.com/taibuivan/tagfilter/internal/platform/apperr"
	"github.com/taibuivan/tagfilter/internal/views/argument"
	"github.com/taibuivan/tagfilter/pkg/pagination"
	"github.com/taibuivan/tagfilter/pkg/pointer"
)

// Execution statuses reported to [Recorder].
const (
	StatusOK           = "ok"
	StatusCached       = "cached"
	StatusEmpty        = "empty"
	StatusNotFound     = "not_found"
	StatusAccessDenied = "access_denied"
	StatusError        = "error"
)

// Recorder observes finished executions.
type Recorder interface {
	ObserveExecution(view, status string, elapsed time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) ObserveExecution(string, string, time.Duration) {}

// ArgumentResult describes how one path position was handled.
type ArgumentResult struct {
	ID        string `json:"id"`
	Plugin    string `json:"plugin"`
	Raw       string `json:"raw"`
	Value     int    `json:"value"`
	Exception bool   `json:"exception"`
	Title     string `json:"title"`
	TermIDs   []int  `json:"term_ids"`
}

// Result is one rendered page of a view.
type Result struct {
	View      string           `json:"view"`
	Title     string           `json:"title"`
	Arguments []ArgumentResult `json:"arguments"`
	Items     []*content.Node  `json:"items"`
	Meta      pagination.Meta  `json:"meta"`
	Cached    bool             `json:"-"`
}

// ExecutorConfig wires an [Executor].
type ExecutorConfig struct {
	Registry  *argument.Registry
	Arguments argument.Dependencies
	Content   content.Repository
	Cache     ResultCache
	Recorder  Recorder
	Logger    *slog.Logger
}

// Executor runs view definitions against the argument plugins and content storage.
type Executor struct {
	registry  *argument.Registry
	arguments argument.Dependencies
	content   content.Repository
	cache     ResultCache
	recorder  Recorder
	logger    *slog.Logger
}

// NewExecutor builds an executor. Nil collaborators fall back to no-ops and the default registry.
func NewExecutor(config ExecutorConfig) *Executor {
	executor := &Executor{
		registry:  config.Registry,
		arguments: config.Arguments,
		content:   config.Content,
		cache:     config.Cache,
		recorder:  config.Recorder,
		logger:    config.Logger,
	}
	if executor.registry == nil {
		executor.registry = argument.DefaultRegistry()
	}
	if executor.cache == nil {
		executor.cache = NopCache{}
	}
	if executor.recorder == nil {
		executor.recorder = nopRecorder{}
	}
	if executor.logger == nil {
		executor.logger = slog.Default()
	}
	if executor.arguments.Logger == nil {
		executor.arguments.Logger = executor.logger
	}
	return executor
}

// errEmpty stops argument processing when an action asks for an empty listing.
var errEmpty = errors.New("views: empty result")

/*
Execute renders one page of a view.

Description: Every argument position is built from the registry and assigned
its path segment. Missing segments follow the position's default action,
segments that fail validation follow its fail action. Only once every position
is resolved is the result cache consulted.

Parameters:
  - context: context.Context
  - definition: *Definition
  - args: []string (decoded path segments; extra segments are ignored)
  - page: pagination.Params

Returns:
  - *Result: The rendered page
  - error: apperr NOT_FOUND / FORBIDDEN from actions, or storage errors
*/
func (executor *Executor) Execute(context context.Context, definition *Definition, args []string, page pagination.Params) (*Result, error) {
	start := time.Now()

	result, err := executor.execute(context, definition, args, page)

	executor.recorder.ObserveExecution(definition.Name, statusOf(result, err), time.Since(start))
	return result, err
}

func (executor *Executor) execute(context context.Context, definition *Definition, args []string, page pagination.Params) (*Result, error) {
	result := &Result{
		View:      definition.Name,
		Arguments: make([]ArgumentResult, 0, len(definition.Arguments)),
		Items:     make([]*content.Node, 0),
	}

	empty := false
	for position, argDefinition := range definition.Arguments {
		var raw *string
		if position < len(args) {
			raw = pointer.To(args[position])
		}

		argResult, err := executor.resolve(context, argDefinition, raw)
		if errors.Is(err, errEmpty) {
			empty = true
		} else if err != nil {
			return nil, err
		}
		result.Arguments = append(result.Arguments, argResult)
	}

	result.Title = substituteTitle(definition.Title, result.Arguments)

	if empty {
		result.Meta = pagination.NewMeta(page.Page, page.Limit, 0)
		return result, nil
	}

	termSets := make([][]int, len(result.Arguments))
	for i, argResult := range result.Arguments {
		termSets[i] = argResult.TermIDs
	}

	cacheKey := resultKey(definition.Name, result.Arguments, page.Page, page.Limit)
	if definition.Cache.Type == CacheTime {
		if cached, ok := executor.readCache(context, cacheKey); ok {
			result.Items = cached.Items
			result.Meta = cached.Meta
			result.Cached = true
			return result, nil
		}
	}

	filter := content.Filter{
		TermSets:      termSets,
		Types:         definition.ContentTypes,
		PublishedOnly: definition.PublishedOnly,
		Sort:          definition.Sort,
	}

	items, total, err := executor.content.List(context, filter, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}

	result.Items = items
	result.Meta = pagination.NewMeta(page.Page, page.Limit, total)

	if definition.Cache.Type == CacheTime {
		executor.writeCache(context, cacheKey, &cachedPage{Items: result.Items, Meta: result.Meta}, definition.Cache.TTL)
	}
	return result, nil
}

// resolve runs one argument position. raw is nil when the path has no segment for it.
func (executor *Executor) resolve(context context.Context, definition ArgumentDefinition, raw *string) (ArgumentResult, error) {
	argResult := ArgumentResult{ID: definition.ID, Plugin: definition.Plugin}

	handler, err := executor.registry.New(definition.Plugin, executor.arguments, definition.Options)
	if err != nil {
		return argResult, apperr.Internal(err)
	}
	options := handler.Options()

	if raw == nil {
		return executor.applyAction(context, handler, argResult, options.DefaultAction)
	}

	valid, err := handler.SetArgument(context, *raw)
	if err != nil {
		return argResult, err
	}
	if !valid {
		executor.logger.DebugContext(context, "view_argument_invalid",
			slog.String("argument", definition.ID),
			slog.String("raw", *raw),
			slog.String("action", string(options.FailAction)),
		)
		return executor.applyAction(context, handler, argResult, options.FailAction)
	}

	return describeArgument(context, handler, argResult)
}

// applyAction handles a missing or invalid argument.
func (executor *Executor) applyAction(context context.Context, handler argument.Handler, argResult ArgumentResult, action argument.Action) (ArgumentResult, error) {
	switch action {
	case argument.ActionIgnore:
		return argResult, nil

	case argument.ActionEmpty:
		return argResult, errEmpty

	case argument.ActionAccessDenied:
		return argResult, apperr.Forbidden("Access denied")

	case argument.ActionDefault:
		valid, err := handler.SetArgument(context, handler.Options().DefaultArgument)
		if err != nil {
			return argResult, err
		}
		if !valid {
			// An invalid default is not retried
			return argResult, apperr.NotFound("Page")
		}
		return describeArgument(context, handler, argResult)

	default:
		return argResult, apperr.NotFound("Page")
	}
}

func describeArgument(context context.Context, handler argument.Handler, argResult ArgumentResult) (ArgumentResult, error) {
	title, err := handler.Title(context)
	if err != nil {
		return argResult, err
	}

	argResult.Raw = handler.Raw()
	argResult.Value = handler.Value()
	argResult.Exception = handler.Exception()
	argResult.Title = title
	argResult.TermIDs = handler.Filter()
	return argResult, nil
}

// substituteTitle replaces %1..%n with argument titles.
func substituteTitle(title string, arguments []ArgumentResult) string {
	if !strings.Contains(title, "%") {
		return title
	}

	// Highest position first so %1 does not eat into %10
	pairs := make([]string, 0, 2*len(arguments))
	for i := len(arguments) - 1; i >= 0; i-- {
		pairs = append(pairs, "%"+strconv.Itoa(i+1), arguments[i].Title)
	}
	return strings.TrimSpace(strings.NewReplacer(pairs...).Replace(title))
}

// cachedPage is what the time cache stores. Title and arguments are always rebuilt per request.
type cachedPage struct {
	Items []*content.Node `json:"items"`
	Meta  pagination.Meta `json:"meta"`
}

func (executor *Executor) readCache(context context.Context, key string) (*cachedPage, bool) {
	payload, ok, err := executor.cache.Get(context, key)
	if err != nil {
		executor.logger.WarnContext(context, "view_cache_read_failed", slog.String("key", key), slog.Any("error", err))
		return nil, false
	}
	if !ok {
		return nil, false
	}

	cached := &cachedPage{}
	if err := json.Unmarshal(payload, cached); err != nil {
		executor.logger.WarnContext(context, "view_cache_decode_failed", slog.String("key", key), slog.Any("error", err))
		return nil, false
	}
	return cached, true
}

func (executor *Executor) writeCache(context context.Context, key string, page *cachedPage, ttl time.Duration) {
	payload, err := json.Marshal(page)
	if err != nil {
		executor.logger.WarnContext(context, "view_cache_encode_failed", slog.String("key", key), slog.Any("error", err))
		return
	}
	if err := executor.cache.Set(context, key, payload, ttl); err != nil {
		executor.logger.WarnContext(context, "view_cache_write_failed", slog.String("key", key), slog.Any("error", err))
	}
}

func statusOf(result *Result, err error) string {
	if err != nil {
		switch apperr.StatusOf(err) {
		case http.StatusNotFound:
			return StatusNotFound
		case http.StatusForbidden:
			return StatusAccessDenied
		default:
			return StatusError
		}
	}
	if result.Cached {
		return StatusCached
	}
	if result.Meta.Total == 0 {
		return StatusEmpty
	}
	return StatusOK
}

// String makes results readable in CLI output.
func (result *Result) String() string {
	return fmt.Sprintf("%s (%d of %d)", result.Title, len(result.Items), result.Meta.Total)
}
