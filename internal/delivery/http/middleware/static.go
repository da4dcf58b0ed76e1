package middleware

import (
	"strings"

	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
)

// StaticAssets serves files from fs under prefix. Paths outside prefix, and
// directory paths, fall through to the router.
func StaticAssets(prefix string, fs static.ServeFileSystem) gin.HandlerFunc {
	serve := static.Serve(prefix, fs)
	prefix = strings.TrimRight(prefix, "/") + "/"

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		// static.Serve reports any unprefixed path that resolves to the embedded root as a hit
		if !strings.HasPrefix(path, prefix) || strings.HasSuffix(path, "/") {
			return
		}
		serve(c)
	}
}
