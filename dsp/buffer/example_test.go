package buffer_test

import (
	"fmt"

	"github.com/cwbudde/algo-dynamics/dsp/buffer"
)

func ExampleBuffer() {
	b, _ := buffer.FromInterleaved([]float64{0.1, -0.1, 0.5, -0.5, 1, -1}, 2, 48000)

	f, _ := b.Frame(1)

	fmt.Println(b.Frames(), b.Channels())
	fmt.Println(f)
	fmt.Println(b.Span(2, 4))

	// Output:
	// 3 2
	// [0.5 -0.5]
	// [1 -1]
}
