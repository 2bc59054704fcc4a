package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/bikeshop_backoffice/internal/utils"
	"github.com/gin-gonic/gin"
)

// untrackedPaths are never sent to PostHog.
var untrackedPaths = map[string]bool{
	"/health": true,
}

// PosthogMiddleware records one event per successful authenticated API call,
// named after the route template ("/api/v1/bills/:id/pay" -> "api_v1_bills_:id_pay").
func PosthogMiddleware(client *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil || !client.IsInitialized() || untrackedPaths[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			return
		}
		event := strings.ReplaceAll(strings.TrimPrefix(c.FullPath(), "/"), "/", "_")
		if event == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"status_code": c.Writer.Status(),
		}
		for _, p := range c.Params {
			props["param_"+p.Key] = p.Value
		}
		client.Enqueue(userID, event, props)
	}
}

// PosthogEvent sends a named business event (e.g. "service_order_completed")
// on behalf of the authenticated user.
func PosthogEvent(c *gin.Context, client *utils.PosthogClientWrapper, event string, properties map[string]any) {
	if client == nil || !client.IsInitialized() {
		return
	}
	userID, ok := GetUserIDFromContext(c)
	if !ok {
		return
	}
	if properties == nil {
		properties = make(map[string]any)
	}
	properties["path"] = c.Request.URL.Path
	client.Enqueue(userID, event, properties)
}
