package event

import (
	"time"

	"github.com/brimdata/columnar"
	"github.com/brimdata/columnar/vector"
	"github.com/segmentio/ksuid"
	"github.com/x448/float16"
)

// Row is an Event rearranged into the value types that columnar shapes
// know how to store.
type Row = vector.Tuple3[Head, Body, Metrics]

type (
	// Head holds the ID, name, and tags of an event.
	Head = vector.Tuple3[ksuid.KSUID, string, []string]
	// Body holds the score and status of an event.
	Body = vector.Tuple2[vector.Option[float64], vector.Either[int64, string]]
	// Metrics holds the elapsed time, weight, and samples of an event.
	Metrics = vector.Tuple3[time.Duration, float16.Float16, [][]int64]
)

type View = vector.Tuple3[HeadView, BodyView, MetricsView]

type (
	HeadView    = vector.Tuple3[ksuid.KSUID, []byte, vector.ArrayView[string, []byte]]
	BodyView    = vector.Tuple2[vector.Option[float64], vector.Either[int64, []byte]]
	MetricsView = vector.Tuple3[time.Duration, float16.Float16, vector.ArrayView[[]int64, vector.ArrayView[int64, int64]]]
)

// Shape returns the shape of rows whose optional and union columns use
// the tag encoding enc.
func Shape(enc vector.TagEncoding) columnar.Shape[Row, View] {
	head := columnar.Tuple3Of(columnar.KSUID, columnar.String, columnar.ArrayOf(columnar.String))
	body := columnar.Tuple2Of(
		columnar.OptionOf(columnar.Float64, enc),
		columnar.UnionOf(columnar.Int64, columnar.String, enc))
	metrics := columnar.Tuple3Of(columnar.Duration, columnar.Float16, columnar.ArrayOf(columnar.ArrayOf(columnar.Int64)))
	return columnar.Tuple3Of(head, body, metrics)
}

// ToRow converts e to a Row.  The returned row shares the Tags and
// Samples slices of e.
func ToRow(e *Event) Row {
	var score vector.Option[float64]
	if e.Score != nil {
		score = vector.Some(*e.Score)
	}
	var status vector.Either[int64, string]
	if e.Status.IsText {
		status = vector.Right[int64](e.Status.Text)
	} else {
		status = vector.Left[int64, string](e.Status.Code)
	}
	return Row{
		First:  Head{First: e.ID, Second: e.Name, Third: e.Tags},
		Second: Body{First: score, Second: status},
		Third:  Metrics{First: e.Elapsed, Second: float16.Fromfloat32(e.Weight), Third: e.Samples},
	}
}

func FromRow(r Row) Event {
	e := Event{
		ID:      r.First.First,
		Name:    r.First.Second,
		Tags:    r.First.Third,
		Elapsed: r.Third.First,
		Weight:  r.Third.Second.Float32(),
		Samples: r.Third.Third,
	}
	if score, ok := r.Second.First.Get(); ok {
		e.Score = &score
	}
	if status := r.Second.Second; status.IsRight {
		e.Status = Text(status.Right)
	} else {
		e.Status = Code(status.Left)
	}
	return e
}

// Materialize copies the row addressed by v out of its store.
func Materialize(v View) Row {
	tags := make([]string, v.First.Third.Len())
	for k := range tags {
		tags[k] = string(v.First.Third.Index(k))
	}
	samples := make([][]int64, v.Third.Third.Len())
	for k := range samples {
		list := v.Third.Third.Index(k)
		samples[k] = make([]int64, list.Len())
		for j := range samples[k] {
			samples[k][j] = list.Index(j)
		}
	}
	var status vector.Either[int64, string]
	if s := v.Second.Second; s.IsRight {
		status = vector.Right[int64](string(s.Right))
	} else {
		status = vector.Left[int64, string](s.Left)
	}
	return Row{
		First:  Head{First: v.First.First, Second: string(v.First.Second), Third: tags},
		Second: Body{First: v.Second.First, Second: status},
		Third:  Metrics{First: v.Third.First, Second: v.Third.Second, Third: samples},
	}
}
