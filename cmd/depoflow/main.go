// depoflow is a command-line tool for reflowing line-numbered OCR documents
// into a linear text stream with an exact page/line/word offset mapping.
//
// It reads the JSON analysis result produced by Azure Content Understanding
// for a paginated, line-numbered document (legal transcripts, depositions),
// re-associates the margin line numbers with their body text lines, and
// emits the reflowed text together with an offset mapping that downstream
// citation and highlighting systems can rely on: every recorded [start, end)
// interval is an exact substring of the emitted text.
//
// Configuration:
//
// An optional YAML configuration file tunes the reflow behavior:
//
//	separator: " | "
//	min_overlap: 0.5
//	y_tolerance: 0.15
//
// Usage:
//
//	depoflow -input result.json [options]
//
// Required flags:
//
//	-input string   Path to the Content Understanding JSON result file
//
// Output options:
//
//	-text string     Path to save the reflowed text (default: print to stdout)
//	-mapping string  Path to save the offset mapping JSON
//	-report string   Path to save the verification report JSON
//
// Processing options:
//
//	-config string     Path to a YAML configuration file
//	-page int          Process only this page number (1-indexed)
//	-separator string  Separator between line number and content (default " | ")
//	-verify            Verify the mapping against the text and print the report
//	-quiet             Suppress warnings
//
// Example:
//
//	depoflow -input deposition.json -page 4 -text reflowed.md -mapping offsets.json -verify
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/depoflow/depoflow/pkg/cu"
	"github.com/depoflow/depoflow/pkg/reflow"
)

type yamlConfig struct {
	Separator  string  `yaml:"separator"`
	MinOverlap float64 `yaml:"min_overlap"`
	YTolerance float64 `yaml:"y_tolerance"`
}

// loadConfig reads a YAML file with reflow tuning parameters.
func loadConfig(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return nil, err
	}
	return &yc, nil
}

func main() {
	inputPath := flag.String("input", "", "Path to the Content Understanding JSON result file (required)")

	textPath := flag.String("text", "", "Path to save the reflowed text (default: print to stdout)")
	mappingPath := flag.String("mapping", "", "Path to save the offset mapping JSON")
	reportPath := flag.String("report", "", "Path to save the verification report JSON")

	configPath := flag.String("config", "", "Path to a YAML configuration file")
	targetPage := flag.Int("page", 0, "Process only this page number (1-indexed)")
	separator := flag.String("separator", "", `Separator between line number and content (default " | ")`)
	verify := flag.Bool("verify", false, "Verify the mapping against the text and print the report")
	quiet := flag.Bool("quiet", false, "Suppress warnings")

	flag.Parse()

	if *inputPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -input flag is required")
		fmt.Fprintln(os.Stderr, "Usage:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	convertCfg := cu.DefaultConvertConfig()
	convertCfg.LogWarnings = !*quiet
	convertCfg.Logger = os.Stderr

	opts := reflow.DefaultOptions()
	opts.TargetPage = *targetPage

	if *configPath != "" {
		yc, err := loadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		if yc.Separator != "" {
			opts.Separator = yc.Separator
		}
		if yc.MinOverlap > 0 {
			opts.Matcher = reflow.SpatialMatcher{MinOverlap: yc.MinOverlap}
		}
		if yc.YTolerance > 0 {
			convertCfg.YTolerance = yc.YTolerance
		}
	}
	// Command line separator wins over the config file.
	if *separator != "" {
		opts.Separator = *separator
	}

	f, err := os.Open(*inputPath)
	if err != nil {
		log.Fatalf("Failed to open input file: %v", err)
	}
	defer f.Close()

	result, err := cu.Decode(f)
	if err != nil {
		log.Fatalf("Failed to read analysis result: %v", err)
	}

	doc, err := result.Document(convertCfg)
	if err != nil {
		log.Fatalf("Failed to build document: %v", err)
	}

	text, mapping, err := reflow.Reflow(doc, opts)
	if err != nil {
		log.Fatalf("Failed to reflow document: %v", err)
	}

	if *textPath != "" {
		if err := os.WriteFile(*textPath, []byte(text), 0644); err != nil {
			log.Fatalf("Failed to write text output: %v", err)
		}
		fmt.Fprintln(os.Stderr, "Reflowed text saved to:", *textPath)
	} else {
		fmt.Print(text)
	}

	if *mappingPath != "" {
		mappingJSON, err := json.MarshalIndent(mapping, "", "  ")
		if err != nil {
			log.Fatalf("Failed to convert offset mapping to JSON: %v", err)
		}
		if err := os.WriteFile(*mappingPath, mappingJSON, 0644); err != nil {
			log.Fatalf("Failed to write offset mapping JSON: %v", err)
		}
		fmt.Fprintln(os.Stderr, "Offset mapping saved to:", *mappingPath)
	}

	if *verify || *reportPath != "" {
		report := reflow.Verify(text, mapping)

		reportJSON, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			log.Fatalf("Failed to convert verification report to JSON: %v", err)
		}
		if *reportPath != "" {
			if err := os.WriteFile(*reportPath, reportJSON, 0644); err != nil {
				log.Fatalf("Failed to write verification report JSON: %v", err)
			}
			fmt.Fprintln(os.Stderr, "Verification report saved to:", *reportPath)
		}
		if *verify {
			fmt.Fprintf(os.Stderr, "Verification: %d passed, %d failed\n", report.Passed, report.Failed)
			if !report.Ok() {
				fmt.Fprintln(os.Stderr, string(reportJSON))
				os.Exit(1)
			}
		}
	}
}
