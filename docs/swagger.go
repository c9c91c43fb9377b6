package docs

import "github.com/swaggo/swag"

// @title           Planview API
// @version         1.0
// @description     API for uploading HacknPlan export packages, browsing the normalized kanban board and exporting filtered JSON/CSV
// @termsOfService  http://swagger.io/terms/

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token

// @tag.name Accounts
// @tag.description Registration and login

// @tag.name Files
// @tag.description Export package upload and status

// @tag.name Board
// @tag.description Normalized project and board views

// @tag.name Export
// @tag.description Filtered JSON/CSV downloads

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Planview API",
	Description:      "API for uploading HacknPlan export packages, browsing the normalized kanban board and exporting filtered JSON/CSV",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
