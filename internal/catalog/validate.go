package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed data/schema.json
var schemaJSON []byte

const schemaURL = "schema://catalog/bank.json"

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	var def any
	if err := json.Unmarshal(schemaJSON, &def); err != nil {
		return nil, fmt.Errorf("parse bank schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return compiled, nil
})

// validateSchema checks raw bank JSON against the embedded schema.
func validateSchema(raw []byte) error {
	var parsed any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compileSchema()
	if err != nil {
		return err
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// validateBank performs the cross-record checks the schema cannot express.
// Returns a combined error describing all problems found, or nil if valid.
func validateBank(b bank) error {
	var errs []string

	categories := make(map[string]bool, len(b.Categories))
	for _, c := range b.Categories {
		if categories[c.ID] {
			errs = append(errs, fmt.Sprintf("duplicate category ID: %q", c.ID))
		}
		categories[c.ID] = true
	}

	passages := make(map[string]bool, len(b.Passages))
	questions := make(map[string]string)
	for _, p := range b.Passages {
		if passages[p.ID] {
			errs = append(errs, fmt.Sprintf("duplicate passage ID: %q", p.ID))
		}
		passages[p.ID] = true
		if !categories[p.CategoryID] {
			errs = append(errs, fmt.Sprintf("passage %q references unknown category %q", p.ID, p.CategoryID))
		}
		for _, q := range p.Questions {
			if owner, ok := questions[q.ID]; ok {
				errs = append(errs, fmt.Sprintf("question %q in %q already used by %q", q.ID, p.ID, owner))
			}
			questions[q.ID] = p.ID
		}
	}

	vocab := make(map[string]bool, len(b.Vocab))
	for _, v := range b.Vocab {
		if vocab[v.ID] {
			errs = append(errs, fmt.Sprintf("duplicate vocab ID: %q", v.ID))
		}
		vocab[v.ID] = true
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
