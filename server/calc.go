package server

import (
	"net/http"

	"github.com/darkroomtools/easeld/border"
	"github.com/gin-gonic/gin"
)

// CalculateHandler maps a calculator input straight onto the engine. The
// engine never fails, so the only error path is an unreadable body.
func CalculateHandler(engine *border.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in border.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, engine.Calculate(in))
	}
}

// SnapHandler proposes the quarter-inch aligned minimum border, when one
// exists.
func SnapHandler(engine *border.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in border.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		minBorder, ok := engine.SnapMinBorder(in)
		c.JSON(http.StatusOK, gin.H{"minBorder": minBorder, "ok": ok})
	}
}

func PapersHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, border.StandardPapers)
	}
}

func RatiosHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, border.NamedRatios)
	}
}
