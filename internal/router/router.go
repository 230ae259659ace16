package router

import (
	"moyu/internal/config"
	"moyu/internal/db"
	"moyu/internal/handlers"
	"moyu/internal/middleware"
	"moyu/internal/services"
	"moyu/internal/utils"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, cfg *config.Config) {
	// Services
	listing := services.NewListingService(db.DB)
	follows := services.NewFollowService(db.DB)

	// 首页缓存，只有首页列表走它
	feedCache := utils.NewFeedCache(cfg.CacheTTL)

	// Handlers
	authHandler := handlers.NewAuthHandler()
	postHandler := handlers.NewPostHandler(listing, feedCache, cfg)
	groupHandler := handlers.NewGroupHandler()
	userHandler := handlers.NewUserHandler(listing, follows, cfg)
	followHandler := handlers.NewFollowHandler(listing, follows, cfg)

	// 公共路由 (Public Routes)
	r.GET("/", postHandler.Index)                    // 首页 - 全部文章（带缓存）
	r.GET("/group/:slug", postHandler.GroupPosts)    // 小组下的文章列表
	r.GET("/groups", groupHandler.ListGroups)        // 所有小组列表
	r.GET("/posts/:id", postHandler.Detail)          // 文章详情页
	r.GET("/profile/:username", userHandler.Profile) // 作者主页

	r.GET("/login", authHandler.ShowLogin) // 登录页面
	r.POST("/login", authHandler.Login)    // 提交登录
	r.GET("/logout", authHandler.Logout)   // 退出登录

	// 受保护路由 (Protected Routes)
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/create", postHandler.ShowCreate)                  // 发布文章页面
		authorized.POST("/create", postHandler.Create)                     // 提交发布文章
		authorized.GET("/posts/:id/edit", postHandler.ShowEdit)            // 编辑文章页面
		authorized.POST("/posts/:id/edit", postHandler.Update)             // 提交文章更新
		authorized.POST("/posts/:id/delete", postHandler.Delete)           // 删除文章
		authorized.POST("/posts/:id/comment", postHandler.AddComment)      // 发表评论
		authorized.POST("/comments/:id/delete", postHandler.DeleteComment) // 删除评论

		authorized.GET("/follow", followHandler.FollowIndex)                   // 关注流
		authorized.POST("/profile/:username/follow", followHandler.Follow)     // 关注作者
		authorized.POST("/profile/:username/unfollow", followHandler.Unfollow) // 取消关注
	}
}
