package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed settings.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// ValidationResult contains the outcome of a schema validation.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue is one schema violation, e.g. {"/dir_mode", "'0999' does not match pattern ..."}.
type ValidationIssue struct {
	Path    string
	Message string
}

func settingsSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("settings.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("settings.schema.json")
	})
	return compiledSchema, compileErr
}

// Validate reads a YAML settings document through Viper and checks the
// resolved values against the settings schema. The error return is for
// unreadable documents; schema violations are reported in the result.
func Validate(data []byte) (*ValidationResult, error) {
	v, err := readSettings(data)
	if err != nil {
		return nil, err
	}
	return checkSettings(v.AllSettings())
}

// checkSettings validates the values Viper resolved, which are the values
// the run will use.
func checkSettings(values map[string]interface{}) (*ValidationResult, error) {
	schema, err := settingsSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	// The validator wants JSON-native types.
	jsonData, err := json.Marshal(values)
	if err != nil {
		return nil, fmt.Errorf("converting settings to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("preparing settings for validation: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return &ValidationResult{Valid: true}, nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return nil, fmt.Errorf("validating settings: %w", err)
	}

	var issues []ValidationIssue
	leafIssues(ve, &issues)
	if len(issues) == 0 {
		issues = append(issues, ValidationIssue{Message: ve.Error()})
	}
	sort.SliceStable(issues, func(i, j int) bool { return issues[i].Path < issues[j].Path })
	return &ValidationResult{Issues: issues}, nil
}

func leafIssues(ve *jsonschema.ValidationError, issues *[]ValidationIssue) {
	if len(ve.Causes) > 0 {
		for _, cause := range ve.Causes {
			leafIssues(cause, issues)
		}
		return
	}
	if ve.ErrorKind == nil {
		return
	}

	path := ""
	if len(ve.InstanceLocation) > 0 {
		path = "/" + strings.Join(ve.InstanceLocation, "/")
	}
	*issues = append(*issues, ValidationIssue{
		Path:    path,
		Message: ve.ErrorKind.LocalizedString(printer),
	})
}
