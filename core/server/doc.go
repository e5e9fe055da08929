// Package server holds the HTTP server configuration of the catalog API.
//
// The serve command reads it through core/config (SERVER_HOST, SERVER_PORT,
// SERVER_API_KEY) and listens on Addr.
package server
