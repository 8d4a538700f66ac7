package transport

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed static/index.html
var uploadPageHTML []byte

func uploadPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", uploadPageHTML)
}
