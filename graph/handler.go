package graph

import (
	"net/http"

	"github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/handler/transport"
)

// NewHandler serves the GraphQL API over GET and POST. The acting member is
// read from the request context, so mount it behind auth.Middleware.
func NewHandler(r *Resolver) http.Handler {
	srv := handler.New(NewExecutableSchema(r))
	srv.AddTransport(transport.Options{})
	srv.AddTransport(transport.GET{})
	srv.AddTransport(transport.POST{})
	return srv
}
