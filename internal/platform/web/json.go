package web

import (
	"encoding/json"
	"net/http"
)

// Códigos estables de error que viajan en el envelope.
// Los clientes hacen match contra estos, no contra el mensaje.
const (
	CodeInvalidRequest   = "invalid_request"
	CodeUnauthorized     = "unauthorized"
	CodeNotFound         = "not_found"
	CodeMethodNotAllowed = "method_not_allowed"
	CodeInternal         = "internal_error"
)

// ErrorBody es el envelope de error de toda la API.
type ErrorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// Antes cada módulo duplicaba su writeJSON; al tercer módulo
// lo movimos acá como helper común.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, code, msg string) {
	WriteJSON(w, status, ErrorBody{Error: msg, Code: code})
}

// NotFoundHandler y MethodNotAllowedHandler reemplazan los defaults
// de chi para que 404/405 también salgan con el envelope JSON.
// chi no pasa estos casos por el middleware de la ruta, así que el
// header de origen se estampa a mano.
func NotFoundHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	WriteError(w, http.StatusNotFound, CodeNotFound, "resource not found")
}

func MethodNotAllowedHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	WriteError(w, http.StatusMethodNotAllowed, CodeMethodNotAllowed, "method not allowed")
}
