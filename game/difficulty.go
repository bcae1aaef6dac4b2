package game

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

type Difficulty struct {
	Name     string `yaml:"name"`
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	NumMines int    `yaml:"mines"`
}

func (difficulty Difficulty) String() string {
	return fmt.Sprintf("%s (%dx%d, %d mines)", difficulty.Name, difficulty.Width, difficulty.Height, difficulty.NumMines)
}

func (difficulty Difficulty) Apply(config *GameConfig) {
	config.Width = difficulty.Width
	config.Height = difficulty.Height
	config.NumMines = difficulty.NumMines
}

const (
	DefaultWidth  = 10
	DefaultHeight = 10

	// Largest width or height a board can have.
	MaxDimension = 500
)

var Difficulties = []Difficulty{
	{Name: "easy", Width: DefaultWidth, Height: DefaultHeight, NumMines: 10},
	{Name: "medium", Width: DefaultWidth, Height: DefaultHeight, NumMines: 20},
	{Name: "hard", Width: DefaultWidth, Height: DefaultHeight, NumMines: 30},
	{Name: "extreme", Width: DefaultWidth, Height: DefaultHeight, NumMines: 40},
}

func FindDifficulty(difficulties []Difficulty, name string) (Difficulty, bool) {
	for _, difficulty := range difficulties {
		if strings.EqualFold(difficulty.Name, name) {
			return difficulty, true
		}
	}
	return Difficulty{}, false
}

type difficultyFile struct {
	Difficulties []Difficulty `yaml:"difficulties"`
}

// ParseDifficulties reads a YAML list of difficulty presets. Omitted
// dimensions fall back to the default board size.
func ParseDifficulties(in []byte) ([]Difficulty, error) {
	var file difficultyFile
	if err := yaml.UnmarshalStrict(in, &file); err != nil {
		return nil, err
	}
	if len(file.Difficulties) == 0 {
		return nil, fmt.Errorf("%w: no difficulties defined", ErrInvalidConfig)
	}

	seen := make(map[string]struct{})
	for i := range file.Difficulties {
		difficulty := &file.Difficulties[i]
		if difficulty.Name == "" {
			return nil, fmt.Errorf("%w: difficulty %d has no name", ErrInvalidConfig, i+1)
		}
		key := strings.ToLower(difficulty.Name)
		if _, dupe := seen[key]; dupe {
			return nil, fmt.Errorf("%w: duplicate difficulty %q", ErrInvalidConfig, difficulty.Name)
		}
		seen[key] = struct{}{}

		if difficulty.Width == 0 {
			difficulty.Width = DefaultWidth
		}
		if difficulty.Height == 0 {
			difficulty.Height = DefaultHeight
		}
		if err := validateDimensions(difficulty.Width, difficulty.Height, difficulty.NumMines); err != nil {
			return nil, fmt.Errorf("difficulty %q: %w", difficulty.Name, err)
		}
	}
	return file.Difficulties, nil
}

func LoadDifficulties(path string) ([]Difficulty, error) {
	in, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseDifficulties(in)
}

func validateDimensions(width, height, numMines int) error {
	if width <= 0 || height <= 0 || width > MaxDimension || height > MaxDimension ||
		numMines < 0 || numMines >= width*height {
		return &InvalidConfigError{Width: width, Height: height, NumMines: numMines}
	}
	return nil
}
