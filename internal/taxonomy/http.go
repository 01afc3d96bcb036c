// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package taxonomy

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/tagfilter/internal/platform/request"
	"github.com/taibuivan/tagfilter/internal/platform/respond"
	"github.com/taibuivan/tagfilter/pkg/query"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the read-only taxonomy endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/vocabularies", handler.listVocabularies)
	router.Get("/vocabularies/{vid}/terms", handler.listTerms)
	router.Get("/terms/{id}", handler.getTerm)
	router.Get("/terms/by-slug/{slug}", handler.findTermsBySlug)

	return router
}

func (handler *Handler) listVocabularies(writer http.ResponseWriter, request *http.Request) {
	vocabularies, err := handler.service.ListVocabularies(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, vocabularies)
}

func (handler *Handler) listTerms(writer http.ResponseWriter, request *http.Request) {
	terms, err := handler.service.ListTerms(request.Context(), requestutil.Param(request, "vid"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, terms)
}

func (handler *Handler) getTerm(writer http.ResponseWriter, request *http.Request) {
	termID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	term, err := handler.service.GetTerm(request.Context(), termID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, term)
}

// findTermsBySlug handles GET /terms/by-slug/{slug}?vocabulary=tags,categories.
func (handler *Handler) findTermsBySlug(writer http.ResponseWriter, request *http.Request) {
	vocabularies := query.StringSlice(request.URL.Query().Get("vocabulary"))

	terms, err := handler.service.FindBySlug(request.Context(), requestutil.Param(request, "slug"), vocabularies)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, terms)
}
