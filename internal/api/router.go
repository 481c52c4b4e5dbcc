// api/router.go
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"zaslon/internal/reference"
)

// NewRouter собирает маршруты сервисного режима.
func NewRouter(syn *reference.Synonyms) *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := r.Group("/api")
	{
		apiGroup.POST("/normalize", NormalizeHandler(syn))
		apiGroup.GET("/meta", MetaListHandler())
		apiGroup.GET("/meta/:table", MetaTableHandler())
	}
	return r
}

// RunServer запускает HTTP-сервис нормализации.
func RunServer(addr string, syn *reference.Synonyms) {
	_ = NewRouter(syn).Run(addr)
}
