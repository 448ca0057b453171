// Package adminsdk provides a typed Go client for the RBAC admin panel
// HTTP API, plus the request/response types the server itself serialises.
// Keeping both halves in one package guarantees the client and server
// never drift on wire shapes.
package adminsdk
