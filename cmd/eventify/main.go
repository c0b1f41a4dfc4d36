package main

import (
	"fmt"
	"strings"

	"eventify-backend/config"
	c "eventify-backend/context"
	"eventify-backend/logger"
	"eventify-backend/router"
	"eventify-backend/store"

	"github.com/codegangsta/negroni"
	"github.com/rs/cors"
	"github.com/spf13/viper"
)

const defaultCorrelationID = "00000000.00000000"

func main() {
	ctx := c.NewContext(defaultCorrelationID)

	if viper.GetString(config.JWTSecret) == "" {
		logger.Warnf(ctx, "JWT_SECRET is not set; token issuance will fail")
	}

	st, err := store.Connect(ctx)
	if err != nil {
		logger.Fatalf(ctx, "main: error connecting to MongoDB: %+v", err)
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(viper.GetString(config.AllowedOrigins), ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization", "Correlation-Id"},
		AllowCredentials: true,
	})

	n := negroni.New()
	n.Use(corsHandler)
	n.UseHandler(router.Router(st))

	logger.Infof(ctx, "Server is running on port %s", viper.GetString(config.Port))
	n.Run(fmt.Sprintf(":%s", viper.GetString(config.Port)))
}
