package main

import (
	"fmt"
	"log"

	"github.com/arrowjoin/arrowjoin/frame"
	"github.com/arrowjoin/arrowjoin/internal/datatypes"
	"github.com/arrowjoin/arrowjoin/series"
)

func main() {
	// Example 1: Interval overlap — a classic two-predicate IE-Join.
	fmt.Println("=== Example 1: Overlapping Intervals ===")

	starts, err := frame.NewDataFrame(
		series.NewSeries("start", []int64{1, 5, 10}, datatypes.Int64{}),
		series.NewSeries("end", []int64{4, 9, 20}, datatypes.Int64{}),
	)
	if err != nil {
		log.Fatal(err)
	}

	events, err := frame.NewDataFrame(
		series.NewSeries("event_start", []int64{3, 6, 15}, datatypes.Int64{}),
		series.NewSeries("event_end", []int64{8, 7, 25}, datatypes.Int64{}),
	)
	if err != nil {
		log.Fatal(err)
	}

	// intervals overlap when start <= event_end AND end >= event_start
	result, err := frame.IEJoin(
		starts, events,
		[]string{"start", "end"},
		[]string{"event_end", "event_start"},
		frame.IEJoinOptions{Operator1: frame.OpLe, Operator2: frame.OpGe},
		"",
		nil,
	)
	if err != nil {
		log.Fatal(err)
	}
	printDataFrame(result)

	// Example 2: Sliced output.
	fmt.Println("\n=== Example 2: Sliced Output ===")
	sliced, err := frame.IEJoin(
		starts, events,
		[]string{"start", "end"},
		[]string{"event_end", "event_start"},
		frame.IEJoinOptions{Operator1: frame.OpLe, Operator2: frame.OpGe},
		"",
		&frame.SliceBound{Offset: 0, Len: 1},
	)
	if err != nil {
		log.Fatal(err)
	}
	printDataFrame(sliced)
}

func printDataFrame(df *frame.DataFrame) {
	cols := df.Columns()
	for i, col := range cols {
		if i > 0 {
			fmt.Print("\t")
		}
		fmt.Print(col)
	}
	fmt.Println()

	for i := 0; i < df.Height(); i++ {
		for j, col := range cols {
			if j > 0 {
				fmt.Print("\t")
			}
			s, _ := df.Column(col)
			fmt.Print(s.Get(i))
		}
		fmt.Println()
	}
	fmt.Printf("\n[%d rows x %d columns]\n", df.Height(), len(cols))
}
