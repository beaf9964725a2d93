package server

import (
	"net/http"

	"github.com/darkroomtools/easeld/border"
	"github.com/darkroomtools/easeld/config"
	"github.com/darkroomtools/easeld/share"
	"github.com/gin-gonic/gin"
)

func CreateShareHandler(cfg config.ShareConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in border.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		token, err := share.Encode(in)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"token": token,
			"url":   share.URL(cfg.BaseURL, token),
		})
	}
}

func ResolveShareHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		in, err := share.Decode(c.Param("token"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, in)
	}
}
