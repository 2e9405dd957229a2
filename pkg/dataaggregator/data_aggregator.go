package dataaggregator

import (
	"errors"
	"reflect"

	"github.com/rs/zerolog/log"
	"github.com/travigo/eventcoach/pkg/dataaggregator/source"
)

type Aggregator struct {
	Sources []DataSource
}

var GlobalAggregator Aggregator

func (a *Aggregator) RegisterSource(source DataSource) {
	a.Sources = append(a.Sources, source)

	log.Debug().Str("name", source.GetName()).Msg("Registering new Data Source")
}

func Lookup[T any](query any) (T, error) {
	return LookupWith[T](&GlobalAggregator, query)
}

// LookupWith asks each source that supports T in turn, moving on when a
// source reports that it cannot answer this kind of query
func LookupWith[T any](aggregator *Aggregator, query any) (T, error) {
	var empty T

	lookupType := reflect.TypeOf(*new(T))
	if lookupType.Kind() == reflect.Pointer {
		lookupType = lookupType.Elem()
	}

	for _, dataSource := range aggregator.Sources {
		matches := false

		for _, supportedType := range dataSource.Supports() {
			if lookupType == supportedType {
				matches = true
				break
			}
		}

		if !matches {
			continue
		}

		returnValue, err := dataSource.Lookup(query)
		if errors.Is(err, source.UnsupportedSourceError) {
			continue
		}

		if returnValue == nil {
			return empty, err
		}

		return returnValue.(T), err
	}

	return empty, errors.New("Failed to find a matching Data Source for type")
}
