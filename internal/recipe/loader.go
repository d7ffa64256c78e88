package recipe

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/google/uuid"

	domainerrors "github.com/grocerapp/grocer/internal/errors"
	"github.com/grocerapp/grocer/internal/validation"
)

// Loader reads and validates recipe files.
type Loader struct {
	validator *validation.Validator
}

// NewLoader creates a recipe file loader.
func NewLoader(v *validation.Validator) *Loader {
	return &Loader{validator: v}
}

// Load reads a single recipe file. The format follows the extension:
// .json parses as JSON, everything else as YAML. Recipes without an ID get
// a generated one so shopping list entries can always cite their sources.
func (l *Loader) Load(path string) (*Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domainerrors.NotFoundf("recipe file %s does not exist", path)
		}
		return nil, domainerrors.Internalf("read recipe file %s", path).WithCause(err)
	}

	var r Recipe
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &r)
	} else {
		err = yaml.Unmarshal(data, &r)
	}
	if err != nil {
		return nil, domainerrors.Parsef("parse recipe file %s", path).WithCause(err)
	}

	if err := l.validator.Validate(r); err != nil {
		return nil, err
	}

	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return &r, nil
}

// LoadAll reads every path in order, failing on the first bad file.
func (l *Loader) LoadAll(paths []string) ([]*Recipe, error) {
	recipes := make([]*Recipe, 0, len(paths))
	for _, path := range paths {
		r, err := l.Load(path)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, r)
	}
	return recipes, nil
}
