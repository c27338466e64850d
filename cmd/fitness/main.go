package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ioann7/go-ftracker/internal/ftracker"
)

// sensorPackage is one completed workout as received from the sensors.
type sensorPackage struct {
	workoutType string
	data        []float64
}

// demoPackages is the recorded sensor output, in recording order.
var demoPackages = []sensorPackage{
	{"SWM", []float64{720, 1, 80, 25, 40}},
	{"RUN", []float64{15000, 1, 75}},
	{"WLK", []float64{9000, 1, 75, 180}},
}

// run prints one summary line per package, in input order. The first
// package that cannot be decoded aborts the whole run.
func run(w io.Writer, packages []sensorPackage) error {
	for _, p := range packages {
		training, err := ftracker.ReadPackage(p.workoutType, p.data)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, training.TrainingInfo()); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("fitness: ")

	if err := run(os.Stdout, demoPackages); err != nil {
		log.Fatal(err)
	}
}
