package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	v1 "github.com/mzawadzki/ludoteka-api/internal/api/handler/v1"
	"github.com/mzawadzki/ludoteka-api/internal/api/middleware"
	"github.com/mzawadzki/ludoteka-api/internal/config"
	"github.com/mzawadzki/ludoteka-api/internal/repository"
	"github.com/mzawadzki/ludoteka-api/internal/repository/dao"
	"github.com/mzawadzki/ludoteka-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	userHandler := s.initUserHandler(db)
	gameHandler := s.initBoardGameHandler(db)
	rentalHandler := s.initRentalHandler(db)
	favouriteHandler := s.initFavouriteHandler(db)
	s.MountHandlers(authHandler, userHandler, gameHandler, rentalHandler, favouriteHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initUserHandler(db *gorm.DB) *v1.UserHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewUserService(repo)
	handler := v1.NewUserHandler(svc)

	return handler
}

func (s *Server) initBoardGameHandler(db *gorm.DB) *v1.BoardGameHandler {
	gameDAO := dao.NewBoardGameDAO(db)
	rentalDAO := dao.NewRentalDAO(db)
	repo := repository.NewBoardGameRepository(gameDAO, rentalDAO)
	favRepo := repository.NewFavouriteRepository(dao.NewFavouriteDAO(db))
	svc := service.NewCatalogueService(repo, favRepo)
	handler := v1.NewBoardGameHandler(svc)

	return handler
}

func (s *Server) initRentalHandler(db *gorm.DB) *v1.RentalHandler {
	rentalDAO := dao.NewRentalDAO(db)
	repo := repository.NewRentalRepository(rentalDAO)
	favRepo := repository.NewFavouriteRepository(dao.NewFavouriteDAO(db))
	svc := service.NewRentalService(repo, favRepo)
	handler := v1.NewRentalHandler(svc)

	return handler
}

func (s *Server) initFavouriteHandler(db *gorm.DB) *v1.FavouriteHandler {
	favDAO := dao.NewFavouriteDAO(db)
	repo := repository.NewFavouriteRepository(favDAO)
	svc := service.NewFavouriteService(repo)
	handler := v1.NewFavouriteHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	userHandler *v1.UserHandler,
	gameHandler *v1.BoardGameHandler,
	rentalHandler *v1.RentalHandler,
	favouriteHandler *v1.FavouriteHandler,
) {
	const basePath = "/api/v1"

	public := s.Router.Group(basePath)
	{
		public.POST("/auth/register", authHandler.HandleRegister)
		public.POST("/auth/login", authHandler.HandleLogin)
		public.GET("/auth/confirm/:userID/:token", authHandler.HandleConfirm)
	}

	verifyJWT := middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT()

	authed := s.Router.Group(basePath, verifyJWT)
	{
		authed.GET("/users/:userID", userHandler.HandleGetUser)
		authed.GET("/users/:userID/penalized", userHandler.HandleIsPenalized)
		authed.POST("/users/:userID/password", authHandler.HandleChangePassword)

		authed.GET("/games", gameHandler.HandleListGames)
		authed.GET("/games/:gameID", gameHandler.HandleGetGame)

		// Ownership and pickup-state rules live in the rental service.
		authed.POST("/rentals", rentalHandler.HandleCreateRental)
		authed.PUT("/rentals/:rentalID", rentalHandler.HandleUpdateRental)
		authed.GET("/rentals/mine", rentalHandler.HandleListMyRentals)
		authed.POST("/rentals/:rentalID/archive", rentalHandler.HandleArchiveRental)
		authed.POST("/rentals/:rentalID/extension", rentalHandler.HandleRequestExtension)
		authed.DELETE("/rentals/:rentalID/extension", rentalHandler.HandleWithdrawExtension)

		authed.GET("/history/mine", rentalHandler.HandleListMyHistory)

		authed.PUT("/favourites/:gameID", favouriteHandler.HandleAddFavourite)
		authed.DELETE("/favourites/:gameID", favouriteHandler.HandleRemoveFavourite)
	}

	admin := s.Router.Group(basePath, verifyJWT, middleware.RequireAdmin())
	{
		admin.GET("/users", userHandler.HandleListUsers)
		admin.PUT("/users/:userID", userHandler.HandleUpdateUser)
		admin.DELETE("/users/:userID", userHandler.HandleDeleteUser)
		admin.GET("/users/:userID/rentals", rentalHandler.HandleListUserRentals)
		admin.GET("/users/:userID/history", rentalHandler.HandleListUserHistory)

		admin.GET("/admin/games", gameHandler.HandleListGamesAdmin)
		admin.POST("/games", gameHandler.HandleCreateGame)
		admin.PUT("/games/:gameID", gameHandler.HandleUpdateGame)
		admin.DELETE("/games/:gameID", gameHandler.HandleDeleteGame)

		admin.GET("/rentals", rentalHandler.HandleListRentals)
		admin.DELETE("/rentals/:rentalID", rentalHandler.HandleDeleteRental)
		admin.POST("/rentals/:rentalID/pickup", rentalHandler.HandleMarkPickedUp)
		admin.POST("/rentals/:rentalID/extension/accept", rentalHandler.HandleAcceptExtension)

		admin.GET("/history", rentalHandler.HandleListHistory)
		admin.DELETE("/history/:entryID", rentalHandler.HandleDeleteHistoryEntry)
	}

	s.Router.GET("/", v1.HandleHealthcheck)
}
