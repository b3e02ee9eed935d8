package cmd

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap/zapcore"

	"todoer/internal/config"
	"todoer/internal/core"
	"todoer/internal/db"
	"todoer/internal/http/handler"
	"todoer/internal/http/handler/middleware"
	"todoer/internal/http/payload"
	"todoer/internal/http/server"
	"todoer/internal/repository"
	"todoer/internal/session"
	"todoer/pkg/jwt"
	"todoer/pkg/log"
)

func Start() error {
	logger := log.NewZapLogger("todoer", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	var dbOpts []db.Option
	if config.DebugRollback {
		dbOpts = append(dbOpts, db.WithDebugRollback())
	}
	dbConn, err := db.NewPostgresDB(config.DSN(), dbOpts...)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// repository
	repo := repository.NewTodoRepository(dbConn)

	err = repo.MigrateTables()
	if err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// session store
	tokenService := jwt.NewTokenService([]byte(config.SessionSecret))
	sessions := session.NewStore(tokenService, config.SessionTTL)

	// core service
	todoer := core.NewTodoer(logger, repo, sessions)

	// handlers
	userHlr := handler.NewUserHandler(logger, payload.DecodeValidator{}, todoer, sessions.TTL())
	todoHlr := handler.NewTodoHandler(logger, payload.DecodeValidator{}, todoer)
	systemHlr := handler.NewSystemHandler(logger, dbConn)

	// middleware
	sessionMW := middleware.NewSessionMiddleware(logger, sessions)

	mux := http.NewServeMux()
	hdlr := middleware.NewCORSMiddleware(config.FrontendOrigin).CORS(mux)
	hdlr = middleware.NewLoggingMiddleware(logger).Logging(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.Liveness, systemHlr.HandleLiveness)
	mux.HandleFunc(handler.Health, systemHlr.HandleHealth)

	mux.HandleFunc(handler.RegisterUser, userHlr.HandleRegister)
	mux.HandleFunc(handler.LoginUser, userHlr.HandleLogin)
	mux.HandleFunc(handler.GetUserByID, userHlr.HandleGetUser)
	mux.Handle(handler.LogoutUser, sessionMW.Require(http.HandlerFunc(userHlr.HandleLogout)))
	mux.Handle(handler.UpdateUser, sessionMW.Require(http.HandlerFunc(userHlr.HandleUpdateUser)))
	mux.Handle(handler.DeleteUser, sessionMW.Require(http.HandlerFunc(userHlr.HandleDeleteUser)))

	mux.Handle(handler.ListTodos, sessionMW.Require(http.HandlerFunc(todoHlr.HandleListTodos)))
	mux.Handle(handler.CreateTodo, sessionMW.Require(http.HandlerFunc(todoHlr.HandleCreateTodo)))
	mux.Handle(handler.UpdateTodo, sessionMW.Require(http.HandlerFunc(todoHlr.HandleUpdateTodo)))
	mux.Handle(handler.DeleteTodo, sessionMW.Require(http.HandlerFunc(todoHlr.HandleDeleteTodo)))

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
