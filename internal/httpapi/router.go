// Package httpapi is the JSON surface of the board.
package httpapi

import (
	"net/http"

	"github.com/VitaminP8/board/internal/auth"
	"github.com/VitaminP8/board/internal/board"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

type Options struct {
	PostsPerPage int
	Logger       *zap.Logger
	// GraphQL is mounted at /query when set.
	GraphQL http.Handler
}

func NewRouter(svc *board.Service, opts Options) chi.Router {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("http")

	perPage := opts.PostsPerPage
	if perPage <= 0 {
		perPage = 10
	}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", requestIDHeader, auth.MemberIDHeader},
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         300,
	}))
	r.Use(auth.Middleware)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if opts.GraphQL != nil {
		r.Handle("/query", opts.GraphQL)
	}

	r.Post("/members", JoinMember(svc, log))
	r.Route("/members/{memberID}", func(r chi.Router) {
		r.Patch("/", UpdateMember(svc, log))
		r.Delete("/", DeleteMember(svc, log))
		r.Get("/posts", MemberPosts(svc, log))
	})

	r.Get("/posts", SearchPosts(svc, log, perPage))
	r.Post("/posts", CreatePost(svc, log))
	r.Route("/posts/{postID}", func(r chi.Router) {
		r.Get("/", GetThread(svc, log))
		r.Patch("/", EditPost(svc, log))
		r.Delete("/", DeletePost(svc, log))

		r.Post("/comments", AddComment(svc, log))
		r.Patch("/comments/{commentID}", EditComment(svc, log))
		r.Delete("/comments/{commentID}", DeleteComment(svc, log))
	})

	return r
}
