package routelookup

import (
	"reflect"

	"github.com/travigo/eventcoach/pkg/dataaggregator/query"
	"github.com/travigo/eventcoach/pkg/dataaggregator/source"
	"github.com/travigo/eventcoach/pkg/routetable"
)

type Source struct {
	Store *routetable.Store
}

func (s Source) GetName() string {
	return "Route Timetable Lookup"
}

func (s Source) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf(routetable.Route{}),
	}
}

func (s Source) Lookup(q any) (interface{}, error) {
	switch q := q.(type) {
	case query.Route:
		route, err := s.Store.Get(q.Identifier)
		if err != nil {
			return nil, err
		}

		return route, nil
	default:
		return nil, source.UnsupportedSourceError
	}
}
