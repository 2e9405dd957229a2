package bookinglookup

import (
	"reflect"

	"github.com/travigo/eventcoach/pkg/booking"
	"github.com/travigo/eventcoach/pkg/dataaggregator/query"
	"github.com/travigo/eventcoach/pkg/dataaggregator/source"
)

type Source struct {
	Store *booking.Store
}

func (s Source) GetName() string {
	return "Booking Lookup"
}

func (s Source) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf([]*booking.Record{}),
	}
}

func (s Source) Lookup(q any) (interface{}, error) {
	switch q := q.(type) {
	case query.Booking:
		return s.Store.Resolve(q.Code)
	case query.BookingDataset:
		return s.Store.Records()
	default:
		return nil, source.UnsupportedSourceError
	}
}
