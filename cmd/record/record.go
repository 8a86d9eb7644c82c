package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/milk9111/boids/system"
	"gopkg.in/yaml.v3"
)

// Config holds the parameters of a recording.
type Config struct {
	Output string  // path of output file, "-" for stdout
	Steps  int     // total number of steps
	Dt     float64 // fixed time step in seconds
	Every  int     // record one frame every Every steps
}

// Validate rejects recordings that cannot run.
func (c Config) Validate() error {
	switch {
	case c.Steps < 0:
		return fmt.Errorf("record: steps %d must not be negative", c.Steps)
	case !(c.Dt >= 0):
		return fmt.Errorf("record: dt %g must not be negative", c.Dt)
	case c.Every <= 0:
		return fmt.Errorf("record: every %d must be positive", c.Every)
	}
	return nil
}

// header is the first document of a recording.
type header struct {
	Steps int         `yaml:"steps"`
	Dt    float64     `yaml:"dt"`
	Every int         `yaml:"every"`
	Spec  interface{} `yaml:"spec"`
}

// Record steps w conf.Steps times and writes a YAML stream to out: a header
// document followed by one document per recorded frame, starting with the
// initial state. Progress is printed to progress as a percentage.
func Record(w *system.World, conf Config, out io.Writer, progress io.Writer) (err error) {
	if err := conf.Validate(); err != nil {
		return err
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	defer checkClose(&err, enc)

	if err := enc.Encode(header{Steps: conf.Steps, Dt: conf.Dt, Every: conf.Every, Spec: w.Spec}); err != nil {
		return err
	}

	for k := 0; k <= conf.Steps; k++ {
		if conf.Steps > 0 {
			// show progress as percentage
			fmt.Fprintf(progress, "\r% 3d%%", 100*k/conf.Steps)
		}
		if k%conf.Every == 0 {
			if err := enc.Encode(w.Frame()); err != nil {
				return err
			}
		}
		if k == conf.Steps {
			break
		}
		if err := w.Step(conf.Dt); err != nil {
			return err
		}
	}
	fmt.Fprintf(progress, "\r100%%\n")
	return nil
}

// RecordFile is Record into conf.Output, creating its directory if needed.
func RecordFile(w *system.World, conf Config, progress io.Writer) (err error) {
	if conf.Output == "-" {
		return Record(w, conf, os.Stdout, progress)
	}
	if err := os.MkdirAll(filepath.Dir(conf.Output), 0755); err != nil {
		return err
	}
	file, err := os.Create(conf.Output)
	if err != nil {
		return err
	}
	defer checkClose(&err, file)
	return Record(w, conf, file, progress)
}

// checkClose is used to check the return from Close in a defer statement.
func checkClose(err *error, c io.Closer) {
	if cerr := c.Close(); *err == nil {
		*err = cerr
	}
}
