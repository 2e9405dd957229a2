package datacheck

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/sourcegraph/conc/pool"
	"github.com/travigo/eventcoach/pkg/booking"
	"github.com/travigo/eventcoach/pkg/dataaggregator"
	"github.com/travigo/eventcoach/pkg/dataaggregator/query"
	"github.com/travigo/eventcoach/pkg/routetable"
	"github.com/travigo/eventcoach/pkg/util"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

type Problem struct {
	Severity Severity
	Subject  string
	Message  string
}

type Report struct {
	Bookings int
	Routes   []string
	Problems []Problem
}

func (r *Report) HasErrors() bool {
	for _, problem := range r.Problems {
		if problem.Severity == SeverityError {
			return true
		}
	}

	return false
}

// Check loads the bookings table and every route timetable it refers to.
// An error is only returned when the bookings table itself cannot be read.
func Check(ctx context.Context) (*Report, error) {
	records, err := dataaggregator.Lookup[[]*booking.Record](query.BookingDataset{})
	if err != nil {
		return nil, err
	}

	report := &Report{
		Bookings: len(records),
	}

	var routeNumbers []string

	for i, record := range records {
		subject := fmt.Sprintf("bookings row %d", i+1)

		if record.Code == "" {
			report.Problems = append(report.Problems, Problem{SeverityError, subject, "no booking code before this row"})
		}

		if number, ok := routetable.ExtractRouteNumber(record.Route); ok {
			routeNumbers = append(routeNumbers, number)
		} else {
			report.Problems = append(report.Problems, Problem{SeverityWarning, subject, fmt.Sprintf("route %q has no route number", record.Route)})
		}

		if !record.HasLocation() {
			report.Problems = append(report.Problems, Problem{SeverityWarning, subject, "no pickup coordinates"})
		}
	}

	report.Routes = util.RemoveDuplicateStrings(routeNumbers, []string{})
	sort.Strings(report.Routes)

	p := pool.NewWithResults[[]Problem]().WithContext(ctx).WithMaxGoroutines(8)

	for _, routeID := range report.Routes {
		routeID := routeID
		p.Go(func(ctx context.Context) ([]Problem, error) {
			return checkRoute(routeID), nil
		})
	}

	routeProblems, err := p.Wait()
	if err != nil {
		return nil, err
	}

	for _, problems := range routeProblems {
		report.Problems = append(report.Problems, problems...)
	}

	return report, nil
}

func checkRoute(routeID string) []Problem {
	subject := "route " + routeID

	route, err := dataaggregator.Lookup[*routetable.Route](query.Route{Identifier: routeID})
	if errors.Is(err, routetable.ErrRouteNotFound) {
		return []Problem{{SeverityWarning, subject, "no timetable file yet"}}
	}
	if err != nil {
		return []Problem{{SeverityError, subject, err.Error()}}
	}

	var problems []Problem

	if len(route.Stops) == 0 {
		problems = append(problems, Problem{SeverityError, subject, "timetable has no stops"})
	}

	if !route.HasCoordinateColumns {
		problems = append(problems, Problem{SeverityWarning, subject, "no Lat/Lon columns, map will not be shown"})
	} else if missing := len(route.Stops) - len(route.LocatedStops()); missing > 0 {
		problems = append(problems, Problem{SeverityWarning, subject, fmt.Sprintf("%d stops without coordinates", missing)})
	}

	return problems
}
