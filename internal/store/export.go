package store

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/qsim/internal/evolve"
)

type ExportData struct {
	System      string             `json:"system"`
	Stepper     string             `json:"stepper"`
	Dt          float64            `json:"dt"`
	Duration    float64            `json:"duration"`
	Steps       int                `json:"steps"`
	TraceDrift  float64            `json:"trace_drift"`
	Times       []float64          `json:"times"`
	Populations [][]float64        `json:"populations"`
	Metrics     map[string]float64 `json:"metrics"`
}

func ExportJSON(path, system, stepper string, dt, duration float64, result *evolve.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return exportJSON(file, system, stepper, dt, duration, result)
}

func ExportJSONStdout(system, stepper string, dt, duration float64, result *evolve.Result) error {
	return exportJSON(os.Stdout, system, stepper, dt, duration, result)
}

func exportJSON(w io.Writer, system, stepper string, dt, duration float64, result *evolve.Result) error {
	data := ExportData{
		System:      system,
		Stepper:     stepper,
		Dt:          dt,
		Duration:    duration,
		Steps:       result.StepsTaken,
		TraceDrift:  result.TraceDrift,
		Times:       result.Times,
		Populations: result.Populations,
		Metrics:     result.Metrics,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
