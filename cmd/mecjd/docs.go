package main

// General API documentation for swaggo. Regenerate internal/httpapi/docs with
// `swag init -g cmd/mecjd/docs.go -o internal/httpapi/docs`.
//
// @title           mecjd API
// @version         1.0
// @description     Prediction gateway for the Pima diabetes and protein-sequence classifiers.
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
