package handlers

// AppHandlers holds every application handler.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	UserHandler         *UserHandler
	NotificationHandler *NotificationHandler
}
