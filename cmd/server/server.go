package server

import (
	"fmt"
	"log/slog"

	"ajcc-portal/config"
	"ajcc-portal/internal/global/database"
	"ajcc-portal/internal/global/httpclient"
	"ajcc-portal/internal/global/logger"
	"ajcc-portal/internal/global/middleware"
	"ajcc-portal/internal/global/sentry"
	"ajcc-portal/internal/global/session"
	"ajcc-portal/internal/module"
	"ajcc-portal/tools"

	"github.com/gin-gonic/gin"
)

var log *slog.Logger

func Init() {
	config.Init()
	log = logger.New("Server")

	if err := sentry.Init(); err != nil {
		log.Error("sentry init failed", "error", err)
	}

	database.Init()
	session.Init()
	httpclient.Init()

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Module: %s", m.GetName()))
		m.Init()
	}
}

func Run() {
	gin.SetMode(string(config.Get().Mode))
	r := gin.New()

	switch config.Get().Mode {
	case config.ModeRelease:
		r.Use(middleware.Logger(logger.Get()))
	case config.ModeDebug:
		r.Use(gin.Logger())
	}
	r.Use(middleware.Cors())
	r.Use(sentry.Middleware())
	r.Use(sentry.ErrorReporter())
	r.Use(middleware.Recovery())

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Router: %s", m.GetName()))
		m.InitRouter(r.Group("/" + config.Get().Prefix))
	}
	err := r.Run(config.Get().Host + ":" + config.Get().Port)
	tools.PanicOnErr(err)
}
