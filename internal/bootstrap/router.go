package bootstrap

import (
	"database/sql"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	httpapi "github.com/DennisSalmazs/project-service/internal/api/http"
	apimiddleware "github.com/DennisSalmazs/project-service/internal/api/http/middleware"
	authmiddleware "github.com/DennisSalmazs/project-service/internal/auth/middleware"
	projecthttp "github.com/DennisSalmazs/project-service/internal/projects/http"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	AuthMode    string
	AuthClient  *fbauth.Client
	DB          *sql.DB
	Redis       *redis.Client
	Projects    projecthttp.ProjectService
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.Default())
	r.Use(apimiddleware.RequestIDMiddleware())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB, dep.Redis)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")

	if dep.AuthMode == "firebase" {
		api.Use(authmiddleware.FirebaseAuthMiddleware(dep.AuthClient))
	} else {
		api.Use(authmiddleware.HeaderAuthMiddleware())
	}

	projectsGroup := api.Group("/projects")
	projecthttp.New(dep.Projects).Register(projectsGroup)

	return r
}
