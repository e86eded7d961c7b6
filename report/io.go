package report

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Sentinel errors returned while reading analyzer payloads.
var (
	ErrEmptyReport   = errors.New("empty report")
	ErrInvalidReport = errors.New("invalid report")
)

const reportSchemaURL = "https://formulyst.local/schemas/report.schema.json"

//go:embed schema/report.schema.json
var reportSchemaJSON string

var (
	reportSchemaOnce sync.Once
	reportSchema     *jsonschema.Schema
	reportSchemaErr  error
)

func compiledReportSchema() (*jsonschema.Schema, error) {
	reportSchemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		c.Draft = jsonschema.Draft2020
		if err := c.AddResource(reportSchemaURL, strings.NewReader(reportSchemaJSON)); err != nil {
			reportSchemaErr = fmt.Errorf("report schema load failed: %w", err)
			return
		}
		reportSchema, reportSchemaErr = c.Compile(reportSchemaURL)
		if reportSchemaErr != nil {
			reportSchemaErr = fmt.Errorf("report schema compile failed: %w", reportSchemaErr)
		}
	})
	return reportSchema, reportSchemaErr
}

// DecodeReport reads an analyzer payload. Both {"analysis": [...]} and a bare
// array of records are accepted; a null analysis decodes as an empty list.
// The payload is validated before decoding.
func DecodeReport(r io.Reader) (Report, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Report{}, fmt.Errorf("read report: %w", err)
	}
	data = bytes.TrimSpace(bytes.TrimPrefix(data, []byte("\ufeff")))
	if len(data) == 0 {
		return Report{}, ErrEmptyReport
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return Report{}, fmt.Errorf("%w: %v", ErrInvalidReport, err)
	}
	schema, err := compiledReportSchema()
	if err != nil {
		return Report{}, err
	}
	if err := schema.Validate(doc); err != nil {
		return Report{}, fmt.Errorf("%w: %v", ErrInvalidReport, err)
	}

	var out Report
	if _, isArray := doc.([]any); isArray {
		if err := json.Unmarshal(data, &out.Analysis); err != nil {
			return Report{}, fmt.Errorf("%w: %v", ErrInvalidReport, err)
		}
		return out, nil
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return Report{}, fmt.Errorf("%w: %v", ErrInvalidReport, err)
	}
	if out.Analysis == nil {
		out.Analysis = []IngredientRecord{}
	}
	return out, nil
}

// ParseReportFile reads and decodes an analyzer payload from disk.
func ParseReportFile(path string) (Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return Report{}, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()
	rep, err := DecodeReport(f)
	if err != nil {
		return Report{}, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return rep, nil
}

// WriteReportJSON encodes a report as indented JSON.
func WriteReportJSON(w io.Writer, rep Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

var csvHeader = []string{
	"name", "matched_alias", "hazard_level", "recommendation", "categories", "cas",
	"prop65", "confidence",
	"aquatic_toxicity", "aquatic_toxicity_note",
	"bioaccumulation", "bioaccumulation_note",
	"persistence", "persistence_note",
	"health_weight", "environment_weight", "sources",
}

// WriteCSV writes normalized records as CSV with a header row.
func WriteCSV(w io.Writer, items []NormalizedRecord) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, it := range items {
		rec := it.Record
		row := []string{
			rec.Name,
			rec.MatchedAlias,
			rec.HazardLevel,
			rec.Recommendation,
			strings.Join(rec.Categories, "; "),
			strings.Join(rec.CASNumbers, "; "),
			strconv.FormatBool(rec.Prop65Listed),
			strconv.Itoa(it.ConfidencePercent) + "%",
			it.AquaticToxicity.Label, it.AquaticToxicity.Note,
			it.Bioaccumulation.Label, it.Bioaccumulation.Note,
			it.Persistence.Label, it.Persistence.Note,
			fmt.Sprintf("%.3f", it.HealthWeight),
			fmt.Sprintf("%.3f", it.EnvironmentWeight),
			strings.Join(it.Sources, "; "),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush result: %w", err)
	}
	return nil
}
