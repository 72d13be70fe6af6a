package router

import (
	userapp "github.com/oksasatya/go-auth-api/internal/application"
	"github.com/oksasatya/go-auth-api/internal/container"
	repouser "github.com/oksasatya/go-auth-api/internal/domain/repository"
	pginfra "github.com/oksasatya/go-auth-api/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/go-auth-api/internal/interface/http"
	usermodule "github.com/oksasatya/go-auth-api/internal/router/modules"
)

type UserModuleDeps struct {
	Repo    repouser.UserRepository
	Service *userapp.Service
	Handler *handlers.UserHandler
}

func buildUserDeps() UserModuleDeps {
	repo := pginfra.NewUserRepository(container.GetPGPool())

	cfg := container.GetConfig()
	service := userapp.NewService(
		repo,
		container.GetJWT(),
		container.GetLogger(),
		container.GetRabbitPub(),
		container.GetES(),
		cfg.ESUsersIndex,
		cfg.MailSendEnabled,
	)

	handler := handlers.NewUserHandler(service, container.GetLogger())

	return UserModuleDeps{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}

// InitModules initializes all application modules and registers them with the
// router registry. Called once during startup.
func InitModules(r *Registry) {
	userDeps := buildUserDeps()
	r.Add(usermodule.New(userDeps.Handler, container.GetJWT()))
}
