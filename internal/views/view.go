// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package views executes configured content listings whose URL path segments are
contextual arguments.

# Definitions

Views are declared in YAML and loaded once at startup:

	views:
	  - name: tagged
	    title: "Tagged %1"
	    content_types: [article]
	    published_only: true
	    cache: {type: time, ttl: 5m}
	    arguments:
	      - id: term
	        plugin: taxonomy_index_tid_slug
	        options:
	          vocabularies: [tags]

A request to /views/tagged/bunny-wabbit resolves "bunny-wabbit" with the
argument plugin and lists the nodes tagged with the resulting term.
*/
package views

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/taibuivan/tagfilter/internal/content"
	"github.com/taibuivan/tagfilter/internal/platform/apperr"
	"github.com/taibuivan/tagfilter/internal/platform/constants"
	"github.com/taibuivan/tagfilter/internal/platform/validate"
	"github.com/taibuivan/tagfilter/internal/views/argument"
	"github.com/taibuivan/tagfilter/pkg/pagination"
)

// Result cache plugins.
const (
	CacheNone = "none"
	CacheTime = "time"
)

// CacheOptions selects the result cache plugin of a view.
type CacheOptions struct {
	Type string        `yaml:"type" json:"type"`
	TTL  time.Duration `yaml:"ttl" json:"ttl"`
}

// ArgumentDefinition configures one path position.
type ArgumentDefinition struct {
	ID      string           `yaml:"id" json:"id"`
	Plugin  string           `yaml:"plugin" json:"plugin"`
	Options argument.Options `yaml:"options" json:"-"`
}

// Definition is a configured listing.
type Definition struct {
	Name          string               `yaml:"name" json:"name"`
	Title         string               `yaml:"title" json:"title"`
	Description   string               `yaml:"description" json:"description,omitempty"`
	ContentTypes  []string             `yaml:"content_types" json:"content_types,omitempty"`
	PublishedOnly bool                 `yaml:"published_only" json:"published_only"`
	Sort          string               `yaml:"sort" json:"sort"`
	Limit         int                  `yaml:"limit" json:"limit"`
	Cache         CacheOptions         `yaml:"cache" json:"cache"`
	Arguments     []ArgumentDefinition `yaml:"arguments" json:"arguments"`
}

// withDefaults fills unset view and argument options.
func (definition Definition) withDefaults() Definition {
	if definition.Sort == "" {
		definition.Sort = content.SortNewest
	}
	if definition.Limit == 0 {
		definition.Limit = constants.DefaultViewLimit
	}
	if definition.Cache.Type == "" {
		definition.Cache.Type = CacheNone
	}
	if definition.Cache.Type == CacheTime && definition.Cache.TTL == 0 {
		definition.Cache.TTL = constants.DefaultCacheTTL
	}

	arguments := make([]ArgumentDefinition, len(definition.Arguments))
	for i, arg := range definition.Arguments {
		arg.Options = arg.Options.WithDefaults()
		arguments[i] = arg
	}
	definition.Arguments = arguments

	return definition
}

// Validate checks a definition against the plugins known to registry.
func (definition Definition) Validate(registry *argument.Registry) error {
	v := &validate.Validator{}

	v.Required("name", definition.Name).
		Slug("name", definition.Name).
		Required("title", definition.Title).
		Range("limit", definition.Limit, 1, pagination.MaxLimit).
		OneOf("sort", definition.Sort, content.SortOrders...).
		OneOf("cache.type", definition.Cache.Type, CacheNone, CacheTime).
		Custom("cache.ttl", definition.Cache.TTL < 0, "Must not be negative")

	seen := make(map[string]bool, len(definition.Arguments))
	for i, arg := range definition.Arguments {
		field := fmt.Sprintf("arguments[%d]", i)

		v.MachineName(field+".id", arg.ID).
			Custom(field+".id", seen[arg.ID], "Duplicate argument id").
			Custom(field+".plugin", !registry.Has(arg.Plugin), fmt.Sprintf("Unknown plugin %q", arg.Plugin))
		seen[arg.ID] = true

		if err := arg.Options.Validate(); err != nil {
			if appError := apperr.As(err); appError != nil {
				for _, detail := range appError.Details {
					v.Custom(field+".options."+detail.Field, true, detail.Message)
				}
			}
		}
	}

	return v.Err()
}

// # Catalog

// Catalog holds the loaded view definitions keyed by name.
type Catalog struct {
	definitions map[string]*Definition
}

type definitionFile struct {
	Views []Definition `yaml:"views"`
}

// LoadFile reads and validates the YAML view definitions at path.
func LoadFile(path string, registry *argument.Registry) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("views: read %s: %w", path, err)
	}
	return Parse(data, registry)
}

// Parse decodes and validates YAML view definitions.
func Parse(data []byte, registry *argument.Registry) (*Catalog, error) {
	var file definitionFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("views: decode definitions: %w", err)
	}

	catalog := &Catalog{definitions: make(map[string]*Definition, len(file.Views))}
	for _, raw := range file.Views {
		definition := raw.withDefaults()
		if err := definition.Validate(registry); err != nil {
			return nil, fmt.Errorf("views: view %q: %w", definition.Name, describe(err))
		}
		if _, exists := catalog.definitions[definition.Name]; exists {
			return nil, fmt.Errorf("views: duplicate view %q", definition.Name)
		}
		catalog.definitions[definition.Name] = &definition
	}

	return catalog, nil
}

// Get returns the named definition, or a NOT_FOUND error.
func (catalog *Catalog) Get(name string) (*Definition, error) {
	definition, ok := catalog.definitions[name]
	if !ok {
		return nil, apperr.NotFound("View")
	}
	return definition, nil
}

// List returns every definition ordered by name.
func (catalog *Catalog) List() []*Definition {
	definitions := make([]*Definition, 0, len(catalog.definitions))
	for _, definition := range catalog.definitions {
		definitions = append(definitions, definition)
	}
	sort.Slice(definitions, func(i, j int) bool { return definitions[i].Name < definitions[j].Name })
	return definitions
}

// describe flattens validation details into the error text for startup logs.
func describe(err error) error {
	appError := apperr.As(err)
	if appError == nil || len(appError.Details) == 0 {
		return err
	}

	message := appError.Message
	for _, detail := range appError.Details {
		message += fmt.Sprintf("; %s: %s", detail.Field, detail.Message)
	}
	return errors.New(message)
}
