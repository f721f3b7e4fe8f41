package main

import (
	"context"
	"log"

	"korabo/infrastructure/config"
	"korabo/infrastructure/di"

	"github.com/aws/aws-lambda-go/lambda"
)

var container *di.Container

// init runs during cold start
func init() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	container, err = di.InitializeContainer(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
}

func main() {
	lambda.Start(container.Consumer.Handle)
}
