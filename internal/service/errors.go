package service

import "errors"

// ErrNoEncontrado is the canonical "row does not exist" signal. Handlers map
// it to 404 with an empty object body, so "missing" is never conflated with a
// store failure.
var ErrNoEncontrado = errors.New("registro no encontrado")
