package contracts

import "github.com/julienschmidt/httprouter"

// Handler mounts a group of routes. pkg/app wraps each group in its own
// middleware chain, so health probes and the booking API are registered
// separately.
type Handler interface {
	RegisterRoutes(router *httprouter.Router)
}
