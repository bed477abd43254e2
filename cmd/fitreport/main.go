// Command fitreport prints a summary line for each sensor package in a
// batch. Without arguments it processes a burned-in sample batch; with
// -f it reads the batch from a JSON file.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"fittrack/internal/domain"
)

var samplePackages = []domain.SensorPackage{
	{Code: "SWM", Data: []float64{720, 1, 80, 25, 40}},
	{Code: "RUN", Data: []float64{15000, 1, 75}},
	{Code: "WLK", Data: []float64{9000, 1, 75, 180}},
}

func main() {
	file := flag.String("f", "", "JSON file with sensor packages (default: built-in samples)")
	flag.Parse()

	packages := samplePackages
	if *file != "" {
		var err error
		packages, err = readPackages(*file)
		if err != nil {
			log.Fatalf("read packages: %v", err)
		}
	}

	for _, p := range packages {
		w, err := domain.BuildWorkout(p.Code, p.Data)
		if err != nil {
			log.Fatalf("build workout: %v", err)
		}
		fmt.Println(domain.FormatMessage(w.Summarize()))
	}
}

func readPackages(path string) ([]domain.SensorPackage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var packages []domain.SensorPackage
	if err := json.Unmarshal(data, &packages); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return packages, nil
}
