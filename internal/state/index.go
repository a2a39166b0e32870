// Package state persists the machine index: which machines a project
// has brought up, and under which provider. The index is the source of
// truth for active-provider resolution.
package state

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/machkit/mach/internal/errors"
)

const stateDir = ".mach"
const stateFile = "machines.yaml"

// Record is one entry in the machine index. A record exists from the
// moment a machine is created until it is destroyed, so its presence
// marks the machine as active under Record.Provider.
type Record struct {
	Name      string    `yaml:"name"`
	Provider  string    `yaml:"provider"`
	ID        string    `yaml:"id,omitempty"`
	State     string    `yaml:"state,omitempty"`
	CreatedAt time.Time `yaml:"created_at,omitempty"`
}

// Index is the on-disk machine index for one project.
// Records keep insertion order, which is the activation order.
type Index struct {
	path    string
	Records []Record
}

// Open reads the index from <projectRoot>/.mach/machines.yaml.
// A missing file yields an empty index (nothing brought up yet).
func Open(projectRoot string) (*Index, error) {
	path := filepath.Join(projectRoot, stateDir, stateFile)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Index{path: path}, nil
		}
		return nil, errors.WrapWithCode(err, errors.ErrState,
			"Failed to read machine state",
			"Check permissions on "+path)
	}

	var records []Record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrState,
			"Machine state file is corrupt",
			"Fix or remove "+path)
	}

	return &Index{path: path, Records: records}, nil
}

// Empty returns an index with no backing file. Save is a no-op on it.
func Empty() *Index {
	return &Index{}
}

// Lookup returns the record for a machine name, if any.
func (i *Index) Lookup(name string) (Record, bool) {
	for _, r := range i.Records {
		if r.Name == name {
			return r, true
		}
	}
	return Record{}, false
}

// Put adds or updates a record. A machine already active under a
// different provider is rejected so two providers never manage the
// same machine.
func (i *Index) Put(rec Record) error {
	for idx, r := range i.Records {
		if r.Name != rec.Name {
			continue
		}
		if r.Provider != rec.Provider {
			return errors.New(errors.ErrProviderConflict,
				fmt.Sprintf("Machine '%s' is already active under provider '%s'", rec.Name, r.Provider),
				fmt.Sprintf("Destroy it first, or use --provider %s", r.Provider))
		}
		i.Records[idx] = rec
		return nil
	}
	i.Records = append(i.Records, rec)
	return nil
}

// Remove deletes the record for a machine name. Removing an absent
// name is not an error.
func (i *Index) Remove(name string) {
	out := i.Records[:0]
	for _, r := range i.Records {
		if r.Name != name {
			out = append(out, r)
		}
	}
	i.Records = out
}

// Save writes the index back to disk, creating .mach/ if needed.
func (i *Index) Save() error {
	if i.path == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(i.path), 0755); err != nil {
		return errors.WrapWithCode(err, errors.ErrState,
			"Failed to create state directory",
			"Check permissions on "+filepath.Dir(i.path))
	}

	data, err := yaml.Marshal(i.Records)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrState,
			"Failed to encode machine state", "")
	}

	return os.WriteFile(i.path, data, 0644)
}
