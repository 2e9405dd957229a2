package routegeometry

import (
	"context"
	"errors"
	"reflect"

	"github.com/travigo/eventcoach/pkg/dataaggregator/query"
	"github.com/travigo/eventcoach/pkg/dataaggregator/source"
	"github.com/travigo/eventcoach/pkg/geometry"
)

type Source struct {
	Builder *geometry.Builder
}

func (s Source) GetName() string {
	return "Route Geometry"
}

func (s Source) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf(geometry.Path{}),
	}
}

func (s Source) Lookup(q any) (interface{}, error) {
	switch q := q.(type) {
	case query.RoutePath:
		if q.Route == nil {
			return nil, errors.New("no route given")
		}

		ctx := q.Context
		if ctx == nil {
			ctx = context.Background()
		}

		return s.Builder.Path(ctx, q.Route), nil
	default:
		return nil, source.UnsupportedSourceError
	}
}
