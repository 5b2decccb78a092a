// Command dynproc reshapes the dynamics of an audio file with a transfer
// envelope.
//
// The input is analyzed in fixed windows, each window's peak is mapped
// through the envelope of a saved session (or the identity-like default
// curve), and the resulting gains are applied with half-window ramps. The
// result is written as PCM WAV.
//
// Usage:
//
//	dynproc [flags] [-in] input [input...]
//
// Several inputs are processed independently, each written next to its
// source as <name>_dynamics.wav; -jobs sets how many run at once.
//
// Examples:
//
//	dynproc -in take.wav -state curve.json -db
//	dynproc -in song.mp3 -window 100 -out song_dyn.wav -bits 16
//	dynproc -in take.wav -state curve.json -analyze
//	dynproc -state curve.json -jobs 4 takes/*.wav
//	dynproc -sizes
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-dynamics/dsp/buffer"
	"github.com/cwbudde/algo-dynamics/dsp/dynproc"
	"github.com/cwbudde/algo-dynamics/dsp/levels"
	"github.com/cwbudde/algo-dynamics/dsp/volume"
	"github.com/cwbudde/algo-dynamics/internal/audiofile"
)

type options struct {
	in        string
	out       string
	windowMs  float64
	db        bool
	state     string
	saveState string
	workers   int
	jobs      int
	bits      int
	analyze   bool
	sizes     bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, *flag.FlagSet, error) {
	var o options
	fs := flag.NewFlagSet("dynproc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.in, "in", "", "input audio file (wav, mp3, ogg)")
	fs.StringVar(&o.out, "out", "", "output WAV file (default <in>_dynamics.wav)")
	fs.Float64Var(&o.windowMs, "window", 0, "analysis window in ms (default from -state, else 50)")
	fs.BoolVar(&o.db, "db", false, "apply the envelope in the decibel domain")
	fs.StringVar(&o.state, "state", "", "session state JSON to load")
	fs.StringVar(&o.saveState, "save-state", "", "write the session state JSON here")
	fs.IntVar(&o.workers, "workers", 1, "concurrent render workers per file")
	fs.IntVar(&o.jobs, "jobs", 1, "input files processed concurrently")
	fs.IntVar(&o.bits, "bits", audiofile.DefaultBitDepth, "output PCM bit depth (16, 24, 32)")
	fs.BoolVar(&o.analyze, "analyze", false, "print source and transformed window peaks instead of rendering")
	fs.BoolVar(&o.sizes, "sizes", false, "list the selectable window sizes")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: dynproc [flags] [-in] input [input...]\n\n")
		fmt.Fprintf(stderr, "Reshapes the dynamics of an audio file with a transfer envelope.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	err := fs.Parse(args)
	return o, fs, err
}

func run(args []string, stdout, stderr io.Writer) error {
	o, fs, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	if o.sizes {
		for _, ms := range dynproc.WindowSizes() {
			fmt.Fprintf(stdout, "%.1f ms\n", ms)
		}
		return nil
	}

	session, err := newSession(o, fs)
	if err != nil {
		return err
	}

	if o.saveState != "" {
		if err := saveState(session, o.saveState); err != nil {
			return err
		}
	}

	inputs := fs.Args()
	if o.in != "" {
		inputs = append([]string{o.in}, inputs...)
	}
	if len(inputs) == 0 {
		if o.saveState != "" {
			return nil
		}
		fs.Usage()
		return errors.New("no input file given")
	}
	if o.out != "" && len(inputs) > 1 {
		return fmt.Errorf("-out needs a single input, got %d", len(inputs))
	}

	return processAll(o, session, inputs, stdout, stderr)
}

// jobOutput collects what one input writes so that reports of concurrent
// jobs appear in input order.
type jobOutput struct {
	stdout, stderr bytes.Buffer
}

// processAll runs every input through its own copy of base, at most
// o.jobs at a time. The first failing input is reported after all
// started jobs have finished.
func processAll(o options, base *dynproc.Session, inputs []string, stdout, stderr io.Writer) error {
	outputs := make([]jobOutput, len(inputs))

	var g errgroup.Group
	g.SetLimit(max(1, o.jobs))
	for i, path := range inputs {
		g.Go(func() error {
			session, err := cloneSession(base, o.workers)
			if err != nil {
				return err
			}
			if err := processFile(o, session, path, &outputs[i].stdout, &outputs[i].stderr); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			return nil
		})
	}
	err := g.Wait()

	for i := range outputs {
		if _, werr := io.Copy(stderr, &outputs[i].stderr); werr != nil && err == nil {
			err = werr
		}
		if _, werr := io.Copy(stdout, &outputs[i].stdout); werr != nil && err == nil {
			err = werr
		}
	}
	return err
}

func cloneSession(base *dynproc.Session, workers int) (*dynproc.Session, error) {
	return dynproc.NewSession(
		dynproc.WithEnvelope(base.Envelope().Clone()),
		dynproc.WithWindowSizeMs(base.WindowSizeMs()),
		dynproc.WithDecibelMode(base.DecibelMode()),
		dynproc.WithWorkers(workers),
	)
}

func processFile(o options, session *dynproc.Session, path string, stdout, stderr io.Writer) error {
	buf, err := audiofile.Load(path)
	if err != nil {
		return err
	}
	fmt.Fprintf(stderr, "loaded %s: %d frames, %d channels, %.0f Hz\n",
		path, buf.Frames(), buf.Channels(), buf.SampleRate())

	if o.analyze {
		src, err := session.Analyze(buf)
		if err != nil {
			return err
		}
		preview, err := session.Preview()
		if err != nil {
			return err
		}
		return printAnalysis(stdout, src, preview)
	}

	out, err := session.Render(buf)
	if err != nil {
		return err
	}
	src, _ := session.SourceAnalysis()

	dst := o.out
	if dst == "" {
		dst = defaultOutput(path)
	}
	if err := audiofile.SaveWAV(dst, out, o.bits); err != nil {
		return err
	}
	fmt.Fprintf(stderr, "wrote %s (%s domain, %.0f ms windows, %d windows)\n",
		dst, session.Mode(), session.WindowSizeMs(), src.Len())
	return printLevels(stderr, buf, out)
}

func printLevels(w io.Writer, before, after *buffer.Buffer) error {
	in, err := levels.Measure(before)
	if err != nil {
		return err
	}
	out, err := levels.Measure(after)
	if err != nil {
		return err
	}
	d := levels.Compare(in, out)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := []struct {
		name    string
		in, out float64
		delta   float64
	}{
		{"Peak [dB]", in.Total.PeakDB, out.Total.PeakDB, d.PeakDB},
		{"RMS [dB]", in.Total.RMSDB, out.Total.RMSDB, d.RMSDB},
		{"Crest [dB]", in.Total.CrestDB, out.Total.CrestDB, d.CrestDB},
	}
	if _, err := fmt.Fprintf(tw, "Level\tInput\tOutput\tChange\n"); err != nil {
		return fmt.Errorf("failed to write level header: %w", err)
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%.2f\t%.2f\t%+.2f\n", r.name, r.in, r.out, r.delta); err != nil {
			return fmt.Errorf("failed to write level row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush levels: %w", err)
	}
	return nil
}

// newSession builds the session from -state and lets explicit flags
// override the loaded settings.
func newSession(o options, fs *flag.FlagSet) (*dynproc.Session, error) {
	session, err := dynproc.NewSession(dynproc.WithWorkers(o.workers))
	if err != nil {
		return nil, err
	}

	if o.state != "" {
		f, err := os.Open(o.state)
		if err != nil {
			return nil, fmt.Errorf("could not open state: %w", err)
		}
		defer f.Close()
		if err := session.LoadState(f); err != nil {
			return nil, fmt.Errorf("%s: %w", o.state, err)
		}
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["window"] {
		if err := session.SetWindowSizeMs(o.windowMs); err != nil {
			return nil, err
		}
	}
	if set["db"] {
		session.SetDecibelMode(o.db)
	}
	return session, nil
}

func saveState(session *dynproc.Session, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create state: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return session.SaveState(f)
}

func defaultOutput(in string) string {
	ext := filepath.Ext(in)
	return strings.TrimSuffix(in, ext) + "_dynamics.wav"
}

func printAnalysis(w io.Writer, src, dst volume.Data) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Window\tTime [s]\tSource Peak\tResult Peak\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "------\t--------\t-----------\t-----------\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	for i, p := range src.Points {
		if _, err := fmt.Fprintf(tw, "%d\t%.3f\t%.6f\t%.6f\n",
			i, p.TimeStamp, p.AbsPeak, dst.Points[i].AbsPeak); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}
