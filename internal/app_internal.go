package internal

import (
	"github.com/rios0rios0/localguide/internal/domain/entities"
	"github.com/rios0rios0/localguide/internal/infrastructure/controllers"
)

// AppInternal is the root of the object graph built by the container.
type AppInternal struct {
	controllers        []entities.Controller
	generateController *controllers.GenerateController
}

// NewAppInternal creates the application root.
func NewAppInternal(
	controllerList *[]entities.Controller,
	generateController *controllers.GenerateController,
) *AppInternal {
	return &AppInternal{
		controllers:        *controllerList,
		generateController: generateController,
	}
}

// GetControllers returns every controller mounted as a subcommand.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}

// GetGenerateController returns the controller behind the root command.
func (it *AppInternal) GetGenerateController() *controllers.GenerateController {
	return it.generateController
}
