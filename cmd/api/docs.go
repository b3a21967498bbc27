package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Welcome renders the landing page
// GET /
func Welcome(c *gin.Context) {
	c.HTML(http.StatusOK, "welcome.html", nil)
}

// APIDocs returns a static JSON description of the available endpoints.
// Documentation only, no live introspection.
// GET /api-docs
func APIDocs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Task Manager API",
		"version": "1.0",
		"documentation": gin.H{
			"api_root":       "/api/",
			"authentication": "/api-auth/login/",
			"endpoints": gin.H{
				"users": gin.H{
					"list_create":            "GET, POST /api/users/",
					"retrieve_update_delete": "GET, PUT, PATCH, DELETE /api/users/{id}/",
				},
				"tasks": gin.H{
					"list_create":            "GET, POST /api/tasks/",
					"retrieve_update_delete": "GET, PUT, PATCH, DELETE /api/tasks/{id}/",
					"mark_status":            "POST /api/tasks/{id}/mark_status/",
					"filters": gin.H{
						"status":   "?status=Pending or ?status=Completed",
						"priority": "?priority=Low, Medium, or High",
						"due_date": "?due_date=YYYY-MM-DD",
						"sort_by":  "?sort_by=due_date or ?sort_by=priority",
					},
				},
			},
			"note": "All endpoints require authentication. Use /api-auth/login/ to authenticate.",
		},
	})
}
