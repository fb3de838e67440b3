package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

const fileType = "yaml"

//go:embed defaults.yaml
var defaultsYAML []byte

// Settings holds the resolved settings for one run.
type Settings struct {
	DirMode        os.FileMode
	FileMode       os.FileMode
	LogLevel       string
	SuccessMessage string
}

// Load reads the embedded settings document.
func Load() (*Settings, error) {
	return LoadFrom(defaultsYAML)
}

// LoadFrom resolves a YAML settings document through Viper and checks the
// resolved values against the settings schema.
func LoadFrom(data []byte) (*Settings, error) {
	v, err := readSettings(data)
	if err != nil {
		return nil, err
	}

	result, err := checkSettings(v.AllSettings())
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, &InvalidSettingsError{Issues: result.Issues}
	}

	// The schema guarantees the mode patterns; parseMode only converts.
	dirMode, err := parseMode(v.GetString("dir_mode"))
	if err != nil {
		return nil, fmt.Errorf("dir_mode: %w", err)
	}
	fileMode, err := parseMode(v.GetString("file_mode"))
	if err != nil {
		return nil, fmt.Errorf("file_mode: %w", err)
	}

	return &Settings{
		DirMode:        dirMode,
		FileMode:       fileMode,
		LogLevel:       v.GetString("log_level"),
		SuccessMessage: v.GetString("success_message"),
	}, nil
}

func readSettings(data []byte) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigType(fileType)
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}
	return v, nil
}

// InvalidSettingsError lists schema violations in a settings document.
type InvalidSettingsError struct {
	Issues []ValidationIssue
}

func (e *InvalidSettingsError) Error() string {
	msgs := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		msg := issue.Message
		if issue.Path != "" {
			msg = issue.Path + ": " + msg
		}
		msgs = append(msgs, msg)
	}
	return "invalid settings: " + strings.Join(msgs, "; ")
}

// parseMode parses an octal permission string such as "0755".
func parseMode(s string) (os.FileMode, error) {
	n, err := strconv.ParseUint(s, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("parsing mode %q: %w", s, err)
	}
	return os.FileMode(n).Perm(), nil
}
