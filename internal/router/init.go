package router

import (
	userapp "github.com/sidapp/mongo-user-service/internal/application"
	"github.com/sidapp/mongo-user-service/internal/container"
	repouser "github.com/sidapp/mongo-user-service/internal/domain/repository"
	mongoinfra "github.com/sidapp/mongo-user-service/internal/infrastructure/mongodb"
	handlers "github.com/sidapp/mongo-user-service/internal/interface/http"
	usermodule "github.com/sidapp/mongo-user-service/internal/router/modules"
)

type UserModuleDeps struct {
	Repo    repouser.UserRepository
	Service *userapp.Service
	Handler *handlers.UserHandler
}

func buildUserDeps() UserModuleDeps {
	repo := mongoinfra.NewUserRepository(
		container.GetMongoDB(),
		container.GetConfig().MongoUsersColl,
	)

	audit := userapp.NewAuditPublisher(container.GetRabbitPub(), container.GetLogger())
	service := userapp.NewService(repo, container.GetLogger(), audit)
	handler := handlers.NewUserHandler(service, container.GetLogger())

	return UserModuleDeps{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	userDeps := buildUserDeps()
	r.Add(usermodule.New(userDeps.Handler))
}
