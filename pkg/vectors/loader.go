package vectors

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed known.yaml
var knownVectors []byte

// DefaultSuite returns the built-in known vectors.
func DefaultSuite() (*Suite, error) {
	return LoadSuiteFromBytes(knownVectors)
}

// LoadSuiteFromFile reads and parses a vector file from disk.
func LoadSuiteFromFile(filePath string) (*Suite, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read vector file: %w", err)
	}

	suite, err := LoadSuiteFromBytes(data)
	if err != nil {
		return nil, err
	}
	if suite.Name == "" {
		suite.Name = filePath
	}
	return suite, nil
}

// LoadSuiteFromBytes parses a vector file from memory and validates it.
func LoadSuiteFromBytes(data []byte) (*Suite, error) {
	var suite Suite

	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("failed to parse vector YAML: %w", err)
	}

	if err := suite.Validate(); err != nil {
		return nil, fmt.Errorf("vector validation failed: %w", err)
	}

	return &suite, nil
}

// SerializeSuite converts a Suite into YAML bytes.
func SerializeSuite(suite *Suite) ([]byte, error) {
	if err := suite.Validate(); err != nil {
		return nil, fmt.Errorf("cannot serialize invalid suite: %w", err)
	}

	data, err := yaml.Marshal(suite)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal suite to YAML: %w", err)
	}

	return data, nil
}
