package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/muhbabelli/BidBay/services"
)

func respondError(c *gin.Context, err *services.ServiceError) {
	c.JSON(err.StatusCode, gin.H{"error": err.Message})
}

func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
