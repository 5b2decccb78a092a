package gaincurve_test

import (
	"fmt"
	"image/color"

	"github.com/cwbudde/algo-dynamics/dsp/envelope"
	"github.com/cwbudde/algo-dynamics/dsp/gaincurve"
	"github.com/cwbudde/algo-dynamics/dsp/volume"
)

func ExampleMap() {
	// A curve that lowers everything above -48 dB towards -48 dB.
	env := envelope.New("limit", color.RGBA{})
	env.AddPoint(envelope.NewPoint(0, 0, envelope.ShapeLinear), true)
	env.AddPoint(envelope.NewPoint(0.5, 0.5, envelope.ShapeLinear), true)
	env.AddPoint(envelope.NewPoint(1, 0.5, envelope.ShapeLinear), true)

	data := volume.Data{WindowSize: 480, Points: []volume.DataPoint{
		{AbsPeak: 1.0, TimeStamp: 0},
		{AbsPeak: 0.001, TimeStamp: 0.01},
	}}

	gains, err := gaincurve.Map(data, env, gaincurve.ModeDecibel)
	if err != nil {
		panic(err)
	}

	for _, g := range gains {
		fmt.Printf("%.5f\n", g)
	}

	// Output:
	// 0.00398
	// 1.00000
}
