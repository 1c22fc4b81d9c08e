package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"

	"github.com/studyloop/studyloop-api/internal/container"
	"github.com/studyloop/studyloop-api/internal/router"
)

var chiLambda *chiadapter.ChiLambda

func main() {
	c := container.New()

	r := router.New(router.RouterConfig{
		QuizGenHandler:  c.QuizGenContainer.Handler,
		MaterialHandler: c.MaterialContainer.Handler,
		AnswerHandler:   c.AnswerContainer.Handler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		chiLambda = chiadapter.New(r)
		lambda.Start(handler)
		return
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("listening on :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return chiLambda.ProxyWithContext(ctx, req)
}
