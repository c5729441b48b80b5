// Пакет api — OpenAPI контракт сервиса и генерация кода по нему.
// Сгенерированный сервер и модели лежат в подпакете generated.
package api

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.5.0 -config oapi-codegen.yaml openapi.yaml
