package cmd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/robertofierimonte/avocados-and-recipes/configs"
	"github.com/robertofierimonte/avocados-and-recipes/pkg/app"
)

const timeout = 5 * time.Second

type ServeCmd struct {
	ConfigFile string `default:".recipes.toml" help:"Path to config file" short:"c"`
}

func (s *ServeCmd) Run(cliCtx *Context) error {
	logger := buildLogger(zap.NewProductionConfig(), cliCtx.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(s.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	application, err := app.New(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer application.Close()

	address := fmt.Sprintf(":%d", conf.Server.Port)

	corsHandler := configureCORS(application.Handler(), conf.Server.AllowedOrigins)
	serverHandler := h2c.NewHandler(corsHandler, &http2.Server{})

	svr := &http.Server{
		Addr:              address,
		ReadHeaderTimeout: timeout,
		Handler:           serverHandler,
	}

	logger.Info("serving recipes", zap.String("address", address), zap.String("driver", conf.DB.Driver))

	err = svr.ListenAndServe()
	if err != nil {
		logger.Error("failed to start server", zap.Error(err))

		return err
	}

	return nil
}

func configureCORS(handler http.Handler, allowedOrigins []string) http.Handler {
	corsOpts := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD"},
		AllowedHeaders: []string{
			"accept",
			"accept-encoding",
			"accept-language",
			"cache-control",
			"content-length",
			"content-type",
			"origin",
			"referer",
			"user-agent",
			"x-request-id",
		},
		ExposedHeaders:     []string{"x-request-id"},
		MaxAge:             86400, // 24 hours
		OptionsPassthrough: false,
	})

	return corsOpts.Handler(handler)
}
