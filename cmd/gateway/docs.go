// General API documentation for swaggo. Run `swag init -g cmd/gateway/docs.go`
// to regenerate docs.
//
// @title           brainball gateway API
// @version         1.0
// @description     HTTP/JSON gateway in front of the word2animal inference service.
//
// @contact.name   brainball maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
package main
