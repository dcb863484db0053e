package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Root(ctx *gin.Context) {
	ctx.Redirect(http.StatusFound, "/static/index.html")
}
