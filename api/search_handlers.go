package api

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/guide-search/model"
	"github.com/gcbaptista/guide-search/services"
)

// SearchResponse is the JSON body of a successful search.
type SearchResponse struct {
	Results []model.SearchResult `json:"results"`
	Total   int                  `json:"total"`
	Query   string               `json:"query"`
}

// SearchHandler handles GET /search?q=&category=&limit=
func (api *API) SearchHandler(c *gin.Context) {
	query := c.Query("q")

	if IsShortQuery(query) {
		c.JSON(http.StatusOK, SearchResponse{Results: []model.SearchResult{}, Total: 0, Query: query})
		return
	}

	result, err := api.engine.Search(c.Request.Context(), services.SearchQuery{
		Query:    query,
		Category: NormalizeCategory(c.Query("category")),
		Limit:    ParseLimit(c.Query("limit"), api.maxLimit),
	})
	if err != nil {
		requestID, _ := c.Get(requestIDKey)
		log.Printf("Search error (request %v, query %q): %v", requestID, query, err)
		SendSearchUnavailableError(c)
		return
	}

	c.Header("X-Query-ID", result.QueryId)
	c.Header("X-Response-Time-Ms", strconv.FormatInt(result.Took, 10))
	c.JSON(http.StatusOK, SearchResponse{
		Results: result.Results,
		Total:   result.Total,
		Query:   query,
	})
}
