package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cespare/xxhash/v2"
	"github.com/gin-gonic/gin"
	"go.trai.ch/tana/internal/core/domain"
)

// libraryResponse is the payload of GET /api/library. Collections are
// sorted by id so the body, and thus the ETag, is deterministic.
type libraryResponse struct {
	Collections   []collectionResponse `json:"collections"`
	Count         int                  `json:"count"`
	TotalChapters int                  `json:"total_chapters"`
}

type collectionResponse struct {
	ID string `json:"id"`
	domain.CollectionRecord
}

func (s *Server) handleLibrary(c *gin.Context) {
	snap := s.store.Snapshot()

	resp := libraryResponse{
		Collections:   make([]collectionResponse, 0, len(snap)),
		Count:         len(snap),
		TotalChapters: snap.TotalChapters(),
	}
	for _, id := range snap.IDs() {
		resp.Collections = append(resp.Collections, collectionResponse{
			ID:               id,
			CollectionRecord: snap[id],
		})
	}

	body, err := json.Marshal(resp)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	etag := fmt.Sprintf(`"%016x"`, xxhash.Sum64(body))
	c.Header("ETag", etag)

	if c.GetHeader("If-None-Match") == etag {
		c.Status(http.StatusNotModified)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

func (s *Server) handleCollection(c *gin.Context) {
	id := c.Param("id")

	rec, ok := s.store.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": domain.ErrCollectionNotFound.Error(),
			"id":    id,
		})
		return
	}

	c.JSON(http.StatusOK, collectionResponse{
		ID:               id,
		CollectionRecord: rec,
	})
}
