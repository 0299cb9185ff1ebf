package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/muhbabelli/BidBay/middleware"
	"github.com/muhbabelli/BidBay/services"
)

type AnalyticsController struct {
	analyticsService *services.AnalyticsService
}

func NewAnalyticsController(analyticsService *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{analyticsService: analyticsService}
}

func (ctl *AnalyticsController) TrendingProducts(c *gin.Context) {
	minFavorites, err := strconv.Atoi(c.DefaultQuery("min_favorites", "2"))
	if err != nil || minFavorites < 1 {
		minFavorites = 2
	}

	rows, svcErr := ctl.analyticsService.TrendingProducts(c.Request.Context(), minFavorites)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (ctl *AnalyticsController) SellerBidStats(c *gin.Context) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	rows, svcErr := ctl.analyticsService.SellerBidStats(c.Request.Context(), user)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (ctl *AnalyticsController) OutbidBids(c *gin.Context) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	rows, svcErr := ctl.analyticsService.OutbidBids(c.Request.Context(), user)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (ctl *AnalyticsController) ActiveWithoutBids(c *gin.Context) {
	rows, svcErr := ctl.analyticsService.ActiveWithoutBids(c.Request.Context())
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (ctl *AnalyticsController) TopBidders(c *gin.Context) {
	minBids, err := strconv.Atoi(c.DefaultQuery("min_bids", "2"))
	if err != nil || minBids < 1 {
		minBids = 2
	}

	rows, svcErr := ctl.analyticsService.TopBidders(c.Request.Context(), minBids)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, rows)
}
