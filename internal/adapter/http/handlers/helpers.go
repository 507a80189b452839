package handlers

import (
	"inprout_docs/pkg"

	"github.com/gin-gonic/gin"
)

// respondError writes the canonical error body, stamping the request path so
// clients can correlate the failure with the call they made.
func respondError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPErrorWithPath(c.Request.URL.Path))
}
