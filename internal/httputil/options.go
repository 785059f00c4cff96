package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

func allow(c *gin.Context, methods string) {
	c.Header("allow", methods)
	c.Render(http.StatusNoContent, render.JSON{})
}

func OptionsGet(c *gin.Context) {
	allow(c, "OPTIONS, GET")
}

func OptionsPost(c *gin.Context) {
	allow(c, "OPTIONS, POST")
}

func OptionsGetPost(c *gin.Context) {
	allow(c, "OPTIONS, GET, POST")
}

func OptionsGetDelete(c *gin.Context) {
	allow(c, "OPTIONS, GET, DELETE")
}

func OptionsGetPatchDelete(c *gin.Context) {
	allow(c, "OPTIONS, GET, PATCH, DELETE")
}
