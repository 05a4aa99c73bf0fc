package pagereplace_test

import (
	"fmt"

	"github.com/djdv/go-pagereplace"
)

func ExampleRun() {
	const capacity = 3
	sequence := []int{1, 2, 3, 1, 2, 4}
	result, err := pagereplace.Run(sequence, capacity, pagereplace.LRU)
	if err != nil {
		panic(err) // TODO(Anyone): Handle error.
	}
	for _, step := range result.Steps {
		fmt.Printf("%d\t%s\n", step.Page, step.FrameString())
	}
	fmt.Println(result.Summary())
	// Output:
	// 1	1
	// 2	1 2
	// 3	1 2 3
	// 1	1 2 3
	// 2	1 2 3
	// 4	1 2 4
	// LRU: 4 page faults
}

func ExampleCompare() {
	const capacity = 3
	sequence := []int{1, 2, 3, 2, 1, 5, 2, 1, 6, 2, 5, 6, 3, 1, 3, 6, 1, 2, 4, 3}
	results, err := pagereplace.Compare(sequence, capacity)
	if err != nil {
		panic(err) // TODO(Anyone): Handle error.
	}
	for _, result := range results {
		fmt.Println(result.Summary())
	}
	// Output:
	// FIFO: 14 page faults
	// Optimal: 9 page faults
	// LRU: 11 page faults
	// LFU: 11 page faults
}
