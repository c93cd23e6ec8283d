package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/saulo-duarte/quizai/internal/config"
	"github.com/saulo-duarte/quizai/internal/container"
	"github.com/sirupsen/logrus"
)

// The container is built once per cold start and reused across invocations.
func main() {
	settings, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load settings")
	}
	config.InitLogger(settings.Log, settings.Server.Env)

	c, err := container.New(context.Background(), settings)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to build container")
	}

	adapter := httpadapter.New(c.Router)
	lambda.Start(adapter.ProxyWithContext)
}
