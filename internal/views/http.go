// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package views

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/tagfilter/internal/content"
	"github.com/taibuivan/tagfilter/internal/platform/constants"
	requestutil "github.com/taibuivan/tagfilter/internal/platform/request"
	"github.com/taibuivan/tagfilter/internal/platform/respond"
	"github.com/taibuivan/tagfilter/pkg/pagination"
)

// Handler serves view listings over HTTP.
type Handler struct {
	catalog  *Catalog
	executor *Executor
}

func NewHandler(catalog *Catalog, executor *Executor) *Handler {
	return &Handler{catalog: catalog, executor: executor}
}

/*
Routes returns the view endpoints.

	GET /                 configured views
	GET /{view}           a view with every argument missing
	GET /{view}/{arg}/... a view with contextual arguments, one per segment
*/
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listViews)
	router.Get("/{view}", handler.executeView)
	router.Get("/{view}/*", handler.executeView)

	return router
}

type viewPayload struct {
	View      string           `json:"view"`
	Title     string           `json:"title"`
	Arguments []ArgumentResult `json:"arguments"`
	Items     []*content.Node  `json:"items"`
}

func (handler *Handler) listViews(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.catalog.List())
}

func (handler *Handler) executeView(writer http.ResponseWriter, request *http.Request) {
	definition, err := handler.catalog.Get(requestutil.Param(request, "view"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	page := pagination.FromRequest(request)
	if request.URL.Query().Get("limit") == "" {
		page.Limit = definition.Limit
	}

	result, err := handler.executor.Execute(request.Context(), definition, requestutil.PathSegments(request), page)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if definition.Cache.Type == CacheTime {
		cacheStatus := "MISS"
		if result.Cached {
			cacheStatus = "HIT"
		}
		writer.Header().Set(constants.HeaderXCache, cacheStatus)
	}

	respond.Paginated(writer, viewPayload{
		View:      result.View,
		Title:     result.Title,
		Arguments: result.Arguments,
		Items:     result.Items,
	}, result.Meta)
}
