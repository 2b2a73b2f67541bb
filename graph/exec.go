package graph

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/VitaminP8/board/internal/auth"
	"github.com/VitaminP8/board/internal/board"
	"github.com/VitaminP8/board/internal/pagination"
	"github.com/VitaminP8/board/internal/storage"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"go.uber.org/zap"
)

//go:embed schema.graphqls
var schemaSource string

var parsedSchema = gqlparser.MustLoadSchema(&ast.Source{Name: "schema.graphqls", Input: schemaSource})

var (
	errBadArgument   = errors.New("bad argument")
	errIntrospection = errors.New("introspection is disabled")
)

// NewExecutableSchema serves the schema in schema.graphqls from r. Field
// resolution is written out by hand in objects.go; gqlgen's handler does the
// parsing, validation and transport around it.
func NewExecutableSchema(r *Resolver) graphql.ExecutableSchema {
	return &executableSchema{resolver: r}
}

type executableSchema struct {
	resolver *Resolver
}

func (e *executableSchema) Schema() *ast.Schema {
	return parsedSchema
}

func (e *executableSchema) Complexity(typeName, field string, childComplexity int, args map[string]any) (int, bool) {
	return 0, false
}

func (e *executableSchema) Exec(ctx context.Context) graphql.ResponseHandler {
	opCtx := graphql.GetOperationContext(ctx)
	done := false

	return func(ctx context.Context) *graphql.Response {
		if done {
			return nil
		}
		done = true

		var root object
		switch opCtx.Operation.Operation {
		case ast.Query:
			root = queryObject{e.resolver.Query()}
		case ast.Mutation:
			root = mutationObject{e.resolver.Mutation()}
		default:
			return graphql.ErrorResponse(ctx, "unsupported operation %s", opCtx.Operation.Operation)
		}

		ex := &executor{opCtx: opCtx, log: e.resolver.logger()}
		data := ex.object(ctx, root, opCtx.Operation.SelectionSet, nil)

		var buf bytes.Buffer
		data.MarshalGQL(&buf)
		return &graphql.Response{Data: buf.Bytes(), Errors: ex.errors}
	}
}

// object is a value of one of the schema's object types.
type object interface {
	typeName() string
	field(ctx context.Context, name string, args map[string]any) (any, error)
}

type executor struct {
	opCtx  *graphql.OperationContext
	log    *zap.Logger
	errors gqlerror.List
}

// object renders the selected fields of obj in selection order. A failed
// non-null field nulls the whole object.
func (ex *executor) object(ctx context.Context, obj object, sel ast.SelectionSet, path ast.Path) graphql.Marshaler {
	fields := graphql.CollectFields(ex.opCtx, sel, []string{obj.typeName()})
	out := graphql.NewFieldSet(fields)
	invalid := false

	for i, f := range fields {
		fieldPath := appendPath(path, ast.PathName(f.Alias))

		if f.Name == "__typename" {
			out.Values[i] = graphql.MarshalString(obj.typeName())
			continue
		}

		v, err := obj.field(ctx, f.Name, f.ArgumentMap(ex.opCtx.Variables))
		if err != nil {
			ex.fail(fieldPath, err)
			out.Values[i] = graphql.Null
			if f.Definition != nil && f.Definition.Type.NonNull {
				invalid = true
			}
			continue
		}
		out.Values[i] = ex.value(ctx, v, f.Selections, fieldPath)
	}

	if invalid {
		return graphql.Null
	}
	return out
}

func (ex *executor) value(ctx context.Context, v any, sel ast.SelectionSet, path ast.Path) graphql.Marshaler {
	switch v := v.(type) {
	case nil:
		return graphql.Null
	case object:
		return ex.object(ctx, v, sel, path)
	case []object:
		list := make(graphql.Array, len(v))
		for i, item := range v {
			list[i] = ex.object(ctx, item, sel, appendPath(path, ast.PathIndex(i)))
		}
		return list
	case graphql.Marshaler:
		return v
	default:
		ex.fail(path, fmt.Errorf("no marshaler for %T", v))
		return graphql.Null
	}
}

func (ex *executor) fail(path ast.Path, err error) {
	code := errorCode(err)
	message := err.Error()
	if code == "INTERNAL" {
		ex.log.Error("resolver failed", zap.String("path", path.String()), zap.Error(err))
		message = "internal error"
	}

	ex.errors = append(ex.errors, &gqlerror.Error{
		Message:    message,
		Path:       path,
		Extensions: map[string]any{"code": code},
	})
}

func appendPath(path ast.Path, elem ast.PathElement) ast.Path {
	out := make(ast.Path, 0, len(path)+1)
	out = append(out, path...)
	return append(out, elem)
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, board.ErrDuplicateLoginID):
		return "DUPLICATE_LOGIN_ID"
	case errors.Is(err, board.ErrInvalidParent):
		return "INVALID_PARENT"
	case errors.Is(err, board.ErrInvalidInput), errors.Is(err, pagination.ErrInvalidPageSize), errors.Is(err, errBadArgument):
		return "INVALID_INPUT"
	case errors.Is(err, auth.ErrNoIdentity):
		return "UNAUTHENTICATED"
	case errors.Is(err, ErrForbidden):
		return "FORBIDDEN"
	case errors.Is(err, errIntrospection):
		return "INTROSPECTION_DISABLED"
	default:
		return "INTERNAL"
	}
}
