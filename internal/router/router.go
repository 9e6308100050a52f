package router

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"vidchat/internal/auth"
	"vidchat/internal/config"
	"vidchat/internal/handler"
)

// Handlers groups every HTTP handler the API serves.
type Handlers struct {
	Auth         *handler.AuthHandler
	User         *handler.UserHandler
	Room         *handler.RoomHandler
	Conversation *handler.ConversationHandler
	Text         *handler.TextHandler
	Transcript   *handler.TranscriptHandler
}

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	log *slog.Logger,
	h Handlers,
	sessions *auth.SessionService,
	users auth.UserLookup,
) {
	e.HideBanner = true
	e.HTTPErrorHandler = ErrorHandler(log)
	e.Validator = &CustomValidator{validator: validator.New()}

	e.Use(middleware.RequestID())
	e.Use(RequestLogger(log))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/user", h.User.Register)
	api.GET("/login", h.Auth.Login)
	api.POST("/login", h.Auth.Login)

	// Secured routes (valid session of an existing user)
	secured := api.Group("", auth.RequireSession(sessions), auth.RequireUser(users))

	secured.GET("/validateToken", h.Auth.ValidateToken)
	secured.GET("/fetchInfo", h.User.FetchInfo)
	secured.PUT("/user/password", h.User.ChangePassword)

	secured.POST("/createRoom", h.Room.CreateRoom)
	secured.GET("/joinRoom", h.Room.JoinRoom)
	secured.POST("/conversation", h.Conversation.Open)

	secured.GET("/convertText", h.Text.ConvertText)

	secured.POST("/transcript", h.Transcript.Create)
	secured.GET("/transcript", h.Transcript.Get)
	secured.GET("/transcripts", h.Transcript.List)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
