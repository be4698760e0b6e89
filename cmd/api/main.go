package main

import (
	_ "bidboard/docs"
	"bidboard/internal/adapter/http/routes"
	"bidboard/internal/infrastructure/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Bid Pipeline API
// @version         1.0
// @description     Construction bid estimates: line-item pricing, pipeline status and AI assistance.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run(config.Load())
}
