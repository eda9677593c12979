package service

import "showcase/database"

// Services is the global service container
type Services struct {
	Settings *SettingsService
}

// GlobalServices is the global service instance
var GlobalServices *Services

// InitServices initializes all services
func InitServices(acc *database.Accessor) {
	GlobalServices = &Services{
		Settings: NewSettingsService(acc),
	}
}
