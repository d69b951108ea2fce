package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"signposts/internal/domain"
)

// Admin Handlers for catalog management

// registerPathHandler handles POST /admin/paths
func (s *Server) registerPathHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input domain.NamedPath
		if err := c.ShouldBindJSON(&input); err != nil {
			s.logger.WithError(err).Warn("Invalid path JSON")
			c.JSON(http.StatusBadRequest, gin.H{
				"error": gin.H{
					"code":    "INVALID_JSON",
					"message": "Invalid JSON format",
					"details": gin.H{"error": err.Error()},
				},
			})
			return
		}

		// Parse and validate the entry
		entry, err := domain.ParseNamedPath(input)
		if err != nil {
			s.logger.WithError(err).Warn("Invalid path pattern")
			c.JSON(http.StatusBadRequest, patternErrorBody(err))
			return
		}

		// Names resolve redirects, so they must be unique
		if existing, found := s.store.FindByName(entry.Name); found {
			c.JSON(http.StatusConflict, gin.H{
				"error": gin.H{
					"code":    "NAME_CONFLICT",
					"message": "A path with this name is already registered",
					"details": gin.H{"name": entry.Name, "id": existing.ID},
				},
			})
			return
		}

		// Duplicate patterns are allowed but worth flagging
		if existing := s.store.GetByPattern(entry.Pattern); len(existing) > 0 {
			s.logger.WithFields(map[string]interface{}{
				"pattern":        entry.Pattern,
				"existing_count": len(existing),
			}).Warn("Pattern already registered under another name")
		}

		// Store the entry
		s.store.Add(entry)

		s.logger.InfoCatalogChange("registered", entry.ID, entry.Name, entry.Pattern)

		c.JSON(http.StatusCreated, gin.H{
			"id":      entry.ID,
			"name":    entry.Name,
			"pattern": entry.Pattern,
			"params":  entry.Params,
			"message": "Path registered successfully",
		})
	}
}

// listPathsHandler handles GET /admin/paths
func (s *Server) listPathsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		paths := s.store.List()

		c.JSON(http.StatusOK, gin.H{
			"paths": paths,
		})
	}
}

// getPathHandler handles GET /admin/paths/:id
func (s *Server) getPathHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		entry, exists := s.store.Get(id)
		if !exists {
			c.JSON(http.StatusNotFound, gin.H{
				"error": gin.H{
					"code":    "PATH_NOT_FOUND",
					"message": "Path not found",
					"details": gin.H{"id": id},
				},
			})
			return
		}

		c.JSON(http.StatusOK, entry)
	}
}

// updatePathHandler handles PUT /admin/paths/:id
func (s *Server) updatePathHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		// Check if the entry exists
		if !s.store.Exists(id) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": gin.H{
					"code":    "PATH_NOT_FOUND",
					"message": "Path not found",
					"details": gin.H{"id": id},
				},
			})
			return
		}

		var input domain.NamedPath
		if err := c.ShouldBindJSON(&input); err != nil {
			s.logger.WithError(err).Warn("Invalid path JSON for update")
			c.JSON(http.StatusBadRequest, gin.H{
				"error": gin.H{
					"code":    "INVALID_JSON",
					"message": "Invalid JSON format",
					"details": gin.H{"error": err.Error()},
				},
			})
			return
		}

		// Parse and validate the replacement entry
		input.ID = id // Ensure ID stays the same
		entry, err := domain.ParseNamedPath(input)
		if err != nil {
			s.logger.WithError(err).Warn("Invalid path pattern for update")
			c.JSON(http.StatusBadRequest, patternErrorBody(err))
			return
		}

		// The new name must not collide with a different entry
		if existing, found := s.store.FindByName(entry.Name); found && existing.ID != id {
			c.JSON(http.StatusConflict, gin.H{
				"error": gin.H{
					"code":    "NAME_CONFLICT",
					"message": "A path with this name is already registered",
					"details": gin.H{"name": entry.Name, "id": existing.ID},
				},
			})
			return
		}

		// Update the entry
		if updated := s.store.Update(id, entry); !updated {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": gin.H{
					"code":    "UPDATE_FAILED",
					"message": "Failed to update path",
				},
			})
			return
		}

		s.logger.InfoCatalogChange("updated", entry.ID, entry.Name, entry.Pattern)

		c.JSON(http.StatusOK, gin.H{
			"id":      entry.ID,
			"name":    entry.Name,
			"pattern": entry.Pattern,
			"message": "Path updated successfully",
		})
	}
}

// deletePathHandler handles DELETE /admin/paths/:id
func (s *Server) deletePathHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		if removed := s.store.Remove(id); !removed {
			c.JSON(http.StatusNotFound, gin.H{
				"error": gin.H{
					"code":    "PATH_NOT_FOUND",
					"message": "Path not found",
					"details": gin.H{"id": id},
				},
			})
			return
		}

		s.logger.InfoCatalogChange("deleted", id, "", "")

		c.JSON(http.StatusOK, gin.H{
			"message": "Path deleted successfully",
			"id":      id,
		})
	}
}

// clearPathsHandler handles DELETE /admin/paths
func (s *Server) clearPathsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		count := s.store.Clear()

		s.logger.WithField("count", count).Info("All paths cleared")

		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("All paths cleared successfully (%d deleted)", count),
			"count":   count,
		})
	}
}

// hrefHandler handles POST /admin/paths/:id/href
func (s *Server) hrefHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		entry, exists := s.store.Get(id)
		if !exists {
			c.JSON(http.StatusNotFound, gin.H{
				"error": gin.H{
					"code":    "PATH_NOT_FOUND",
					"message": "Path not found",
					"details": gin.H{"id": id},
				},
			})
			return
		}

		var body struct {
			Params domain.Params `json:"params"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			s.logger.WithError(err).Warn("Invalid params JSON")
			c.JSON(http.StatusBadRequest, gin.H{
				"error": gin.H{
					"code":    "INVALID_JSON",
					"message": "Invalid JSON format",
					"details": gin.H{"error": err.Error()},
				},
			})
			return
		}

		href, err := entry.Path.Expand(body.Params)
		if err != nil {
			c.JSON(http.StatusBadRequest, paramErrorBody(err))
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"id":      entry.ID,
			"name":    entry.Name,
			"pattern": entry.Pattern,
			"href":    href,
		})
	}
}

// subPathHandler handles POST /admin/paths/:id/sub
func (s *Server) subPathHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		parent, exists := s.store.Get(id)
		if !exists {
			c.JSON(http.StatusNotFound, gin.H{
				"error": gin.H{
					"code":    "PATH_NOT_FOUND",
					"message": "Path not found",
					"details": gin.H{"id": id},
				},
			})
			return
		}

		var body struct {
			Name    string `json:"name"`
			Pattern string `json:"pattern"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			s.logger.WithError(err).Warn("Invalid subpath JSON")
			c.JSON(http.StatusBadRequest, gin.H{
				"error": gin.H{
					"code":    "INVALID_JSON",
					"message": "Invalid JSON format",
					"details": gin.H{"error": err.Error()},
				},
			})
			return
		}

		child, err := domain.SubNamedPath(parent, body.Name, body.Pattern)
		if err != nil {
			s.logger.WithError(err).Warn("Invalid subpath pattern")
			c.JSON(http.StatusBadRequest, patternErrorBody(err))
			return
		}

		if existing, found := s.store.FindByName(child.Name); found {
			c.JSON(http.StatusConflict, gin.H{
				"error": gin.H{
					"code":    "NAME_CONFLICT",
					"message": "A path with this name is already registered",
					"details": gin.H{"name": child.Name, "id": existing.ID},
				},
			})
			return
		}

		s.store.Add(child)

		s.logger.InfoCatalogChange("composed", child.ID, child.Name, child.Pattern)

		c.JSON(http.StatusCreated, gin.H{
			"id":       child.ID,
			"name":     child.Name,
			"pattern":  child.Pattern,
			"params":   child.Params,
			"parentId": parent.ID,
			"message":  "Path composed successfully",
		})
	}
}

// serviceInfoHandler handles GET /admin/info
func (s *Server) serviceInfoHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		uptime := s.GetUptime()

		c.JSON(http.StatusOK, gin.H{
			"id":        s.config.ID,
			"name":      s.config.Name,
			"port":      s.config.Port,
			"pathCount": s.GetPathCount(),
			"uptime":    formatUptime(uptime),
		})
	}
}

// Redirect Handler

// redirectHandler handles GET /go/:name by expanding the named path from
// query parameters and redirecting to the result
func (s *Server) redirectHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")

		entry, found := s.store.FindByName(name)
		if !found {
			c.JSON(http.StatusNotFound, gin.H{
				"error": gin.H{
					"code":    "UNKNOWN_NAME",
					"message": "No path registered under this name",
					"details": gin.H{"name": name},
				},
			})
			return
		}

		// Query values become the parameter mapping, first value wins
		params := domain.Params{}
		for key, values := range c.Request.URL.Query() {
			if len(values) > 0 {
				params[key] = values[0]
			}
		}

		location, err := entry.Path.Expand(params)
		if err != nil {
			c.JSON(http.StatusBadRequest, paramErrorBody(err))
			return
		}

		status := s.config.RedirectStatus
		if status == 0 {
			status = http.StatusFound
		}

		c.Redirect(status, location)
	}
}

// notFoundHandler handles all unmatched requests
func (s *Server) notFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": gin.H{
				"code":    "NO_ROUTE",
				"message": "No such endpoint",
				"details": gin.H{
					"method": c.Request.Method,
					"path":   c.Request.URL.Path,
				},
			},
		})
	}
}

// Utility functions

// patternErrorBody maps a construction error to a response body
func patternErrorBody(err error) gin.H {
	var patternErr *domain.PatternError
	if errors.As(err, &patternErr) {
		return gin.H{
			"error": gin.H{
				"code":    "INVALID_PATTERN",
				"message": patternErr.Error(),
				"details": gin.H{"pattern": patternErr.Pattern},
			},
		}
	}

	return gin.H{
		"error": gin.H{
			"code":    "INVALID_PATH",
			"message": err.Error(),
		},
	}
}

// paramErrorBody maps an expansion error to a response body
func paramErrorBody(err error) gin.H {
	var paramErr *domain.ParamError
	if errors.As(err, &paramErr) {
		return gin.H{
			"error": gin.H{
				"code":    "INVALID_PARAMS",
				"message": paramErr.Error(),
				"details": gin.H{
					"param":  paramErr.Name,
					"params": paramErr.Params,
				},
			},
		}
	}

	return gin.H{
		"error": gin.H{
			"code":    "INVALID_PARAMS",
			"message": err.Error(),
		},
	}
}

// formatUptime formats a duration into a human-readable string
func formatUptime(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
