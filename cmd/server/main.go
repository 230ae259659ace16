package main

import (
	"fmt"
	"html/template"
	"log"
	"path/filepath"
	"time"

	"moyu/internal/config"
	"moyu/internal/db"
	"moyu/internal/middleware"
	"moyu/internal/router"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	cfg := config.Load()

	// Initialize Database
	db.Init(cfg.DatabaseURL)

	// Initialize Gin
	r := gin.Default()

	// Setup Sessions
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("moyu_session", store))

	// Load Templates using Multitemplate to avoid collision and allow handler names
	r.HTMLRender = loadTemplates("./web/templates")

	// Static Assets
	r.Static("/static", "./web/static")
	r.Static("/uploads", cfg.UploadDir) // 文章配图

	// Middleware
	r.Use(middleware.LoadUser())

	// Routes
	router.RegisterRoutes(r, cfg)

	log.Printf("MoYu server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

func loadTemplates(templatesDir string) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	layouts, err := filepath.Glob(templatesDir + "/layouts/*.html")
	if err != nil {
		panic(err)
	}

	includes, err := filepath.Glob(templatesDir + "/includes/*.html")
	if err != nil {
		panic(err)
	}

	// Helper to assemble files
	assemble := func(view string) []string {
		files := make([]string, 0)
		files = append(files, layouts...)
		files = append(files, includes...)
		files = append(files, view)
		return files
	}

	// FuncMap
	funcMap := template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
		"safeHTML": func(s string) template.HTML {
			return template.HTML(s)
		},
		"timeAgo": func(t interface{}) string {
			var timeVal time.Time
			switch v := t.(type) {
			case time.Time:
				timeVal = v
			default:
				return ""
			}

			duration := time.Since(timeVal)
			seconds := int(duration.Seconds())

			if seconds < 60 {
				return fmt.Sprintf("%d秒前", seconds)
			} else if seconds < 3600 {
				return fmt.Sprintf("%d分钟前", seconds/60)
			} else if seconds < 86400 {
				return fmt.Sprintf("%d小时前", seconds/3600)
			} else if seconds < 2592000 {
				return fmt.Sprintf("%d天前", seconds/86400)
			} else if seconds < 31536000 {
				return fmt.Sprintf("%d个月前", seconds/2592000)
			}
			return fmt.Sprintf("%d年前", seconds/31536000)
		},
	}

	// Manual registration to ensure keys match handler expectation
	// Auth
	r.AddFromFilesFuncs("auth/login.html", funcMap, assemble(templatesDir+"/views/auth/login.html")...)

	// Posts
	r.AddFromFilesFuncs("posts/index.html", funcMap, assemble(templatesDir+"/views/posts/index.html")...)
	r.AddFromFilesFuncs("posts/group.html", funcMap, assemble(templatesDir+"/views/posts/group.html")...)
	r.AddFromFilesFuncs("posts/detail.html", funcMap, assemble(templatesDir+"/views/posts/detail.html")...)
	r.AddFromFilesFuncs("posts/create.html", funcMap, assemble(templatesDir+"/views/posts/create.html")...)
	r.AddFromFilesFuncs("posts/edit.html", funcMap, assemble(templatesDir+"/views/posts/edit.html")...)
	r.AddFromFilesFuncs("posts/follow.html", funcMap, assemble(templatesDir+"/views/posts/follow.html")...)

	// Users
	r.AddFromFilesFuncs("users/profile.html", funcMap, assemble(templatesDir+"/views/users/profile.html")...)

	// Groups
	r.AddFromFilesFuncs("groups/list.html", funcMap, assemble(templatesDir+"/views/groups/list.html")...)

	// Error
	r.AddFromFilesFuncs("error.html", funcMap, assemble(templatesDir+"/views/error.html")...)

	return r
}
