package seeder

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Fixtures is the YAML document the seeder loads. Categories are inserted
// in file order, so a parent must appear before its children unless it
// already exists in the database.
type Fixtures struct {
	Categories []CategoryFixture `yaml:"categories"`
	Foods      []FoodFixture     `yaml:"foods"`
}

// CategoryFixture describes one food type. Parent is a category name.
type CategoryFixture struct {
	Name   string `yaml:"name"`
	Parent string `yaml:"parent"`
}

// FoodFixture describes one food. Category is a category name.
type FoodFixture struct {
	Name        string  `yaml:"name"`
	Category    string  `yaml:"category"`
	Image1      *string `yaml:"image1"`
	Image2      *string `yaml:"image2"`
	Image3      *string `yaml:"image3"`
	Description *string `yaml:"description"`
	Price       int64   `yaml:"price"`
	ItemsLeft   int     `yaml:"items_left"`
}

// LoadFixtures reads and validates a fixtures file.
func LoadFixtures(path string) (*Fixtures, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixtures: %w", err)
	}
	defer f.Close()

	return ParseFixtures(f)
}

// ParseFixtures decodes a fixtures document. Unknown keys are rejected.
func ParseFixtures(r io.Reader) (*Fixtures, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var fx Fixtures
	if err := dec.Decode(&fx); err != nil {
		if errors.Is(err, io.EOF) {
			return &fx, nil
		}
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}

	if err := fx.validate(); err != nil {
		return nil, err
	}
	return &fx, nil
}

func (fx *Fixtures) validate() error {
	var errs []error
	seen := make(map[string]bool, len(fx.Categories))

	for i, c := range fx.Categories {
		name := strings.TrimSpace(c.Name)
		switch {
		case name == "":
			errs = append(errs, fmt.Errorf("categories[%d]: name is required", i))
		case seen[name]:
			errs = append(errs, fmt.Errorf("categories[%d]: duplicate name %q", i, name))
		case strings.TrimSpace(c.Parent) == name:
			errs = append(errs, fmt.Errorf("categories[%d]: %q is its own parent", i, name))
		}
		seen[name] = true
	}

	for i, f := range fx.Foods {
		if strings.TrimSpace(f.Name) == "" {
			errs = append(errs, fmt.Errorf("foods[%d]: name is required", i))
		}
		if strings.TrimSpace(f.Category) == "" {
			errs = append(errs, fmt.Errorf("foods[%d]: category is required", i))
		}
		if f.Price < 0 {
			errs = append(errs, fmt.Errorf("foods[%d]: price must not be negative", i))
		}
		if f.ItemsLeft < 0 {
			errs = append(errs, fmt.Errorf("foods[%d]: items_left must not be negative", i))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid fixtures: %w", errors.Join(errs...))
	}
	return nil
}
