package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/muhbabelli/BidBay/controllers"
	"github.com/muhbabelli/BidBay/middleware"
	"github.com/muhbabelli/BidBay/models"
	"github.com/muhbabelli/BidBay/repository"
	"github.com/muhbabelli/BidBay/services"
)

// Controllers bundles every route handler group.
type Controllers struct {
	Auth      *controllers.AuthController
	Address   *controllers.AddressController
	Category  *controllers.CategoryController
	Product   *controllers.ProductController
	Bid       *controllers.BidController
	Favorite  *controllers.FavoriteController
	Order     *controllers.OrderController
	Payment   *controllers.PaymentController
	Analytics *controllers.AnalyticsController
}

// Register wires every endpoint. Public reads stay outside the auth group;
// everything mutating requires a bearer token.
func Register(r *gin.Engine, ctl Controllers, tokenService *services.TokenService, userRepo repository.UserRepository) {
	requireAuth := middleware.RequireAuth(tokenService, userRepo)

	auth := r.Group("/auth", middleware.RateLimitMiddleware())
	{
		auth.POST("/register", ctl.Auth.Register)
		auth.POST("/login", ctl.Auth.Login)
	}

	users := r.Group("/users", requireAuth)
	{
		users.GET("/me", ctl.Auth.GetMe)
		users.PATCH("/me", ctl.Auth.UpdateMe)
	}

	addresses := r.Group("/addresses", requireAuth)
	{
		addresses.GET("", ctl.Address.List)
		addresses.POST("", ctl.Address.Create)
		addresses.DELETE("/:id", ctl.Address.Delete)
	}

	r.GET("/categories", ctl.Category.List)
	r.POST("/categories", requireAuth, ctl.Category.Create)

	r.GET("/products", ctl.Product.List)
	products := r.Group("/products", requireAuth)
	{
		products.GET("/feed", ctl.Product.Feed)
		products.GET("/my-products", ctl.Product.MyProducts)
		products.GET("/favorites", ctl.Product.FavoriteProducts)
		products.POST("", middleware.RequireRole(models.RoleSeller), ctl.Product.Create)
		products.GET("/:id/details", ctl.Product.GetDetails)
		products.PATCH("/:id", ctl.Product.Update)
		products.DELETE("/:id", ctl.Product.Delete)
		products.POST("/:id/close", ctl.Product.Close)
		products.POST("/:id/images", middleware.RequireRole(models.RoleSeller), ctl.Product.AddImage)
	}
	r.GET("/products/:id", ctl.Product.Get)

	bids := r.Group("/bids", requireAuth)
	{
		bids.POST("", ctl.Bid.Place)
		bids.GET("/me", ctl.Bid.ListMine)
		bids.GET("/product/:id", ctl.Bid.ListForProduct)
		bids.POST("/:id/accept", ctl.Bid.Accept)
		bids.POST("/:id/reject", ctl.Bid.Reject)
	}

	favorites := r.Group("/favorites", requireAuth)
	{
		favorites.GET("", ctl.Favorite.List)
		favorites.POST("", ctl.Favorite.Add)
		favorites.DELETE("/:productId", ctl.Favorite.Remove)
	}

	orders := r.Group("/orders", requireAuth)
	{
		orders.GET("/me", ctl.Order.ListMine)
		orders.GET("/sales", ctl.Order.ListSales)
	}

	r.POST("/payments", requireAuth, ctl.Payment.Create)

	analytics := r.Group("/analytics")
	{
		analytics.GET("/trending-products", ctl.Analytics.TrendingProducts)
		analytics.GET("/seller-bid-stats", requireAuth, ctl.Analytics.SellerBidStats)
		analytics.GET("/outbid-bids", requireAuth, ctl.Analytics.OutbidBids)
		analytics.GET("/active-without-bids", ctl.Analytics.ActiveWithoutBids)
		analytics.GET("/top-bidders", ctl.Analytics.TopBidders)
	}
}
