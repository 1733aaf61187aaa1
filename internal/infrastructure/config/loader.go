package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all loaded configurations
type Config struct {
	Simulation *SimulationConfig
	Modes      *ModesConfig
	Characters *CharactersConfig
}

// Loader loads simulation configuration from JSON or YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// extensions are tried in order when a name has no extension
var extensions = []string{".json", ".yaml", ".yml"}

// load reads name (without extension) and decodes it into out
func (l *Loader) load(name string, out any) (string, error) {
	var (
		data []byte
		file string
		err  error
	)
	for _, ext := range extensions {
		file = name + ext
		data, err = fs.ReadFile(l.fsys, file)
		if err == nil {
			break
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return file, fmt.Errorf("failed to read %s: %w", file, err)
		}
	}
	if err != nil {
		return name, fmt.Errorf("failed to read %s: %w", name, err)
	}

	if err := decode(file, data, out); err != nil {
		return file, fmt.Errorf("failed to parse %s: %w", file, err)
	}
	return file, nil
}

func decode(file string, data []byte, out any) error {
	switch strings.ToLower(path.Ext(file)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, out)
	default:
		return json.Unmarshal(data, out)
	}
}

// LoadSimulation loads simulation.json
func (l *Loader) LoadSimulation() (*SimulationConfig, error) {
	var cfg SimulationConfig
	if _, err := l.load("simulation", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadModes loads modes.json or modes.yaml
func (l *Loader) LoadModes() (*ModesConfig, error) {
	var cfg ModesConfig
	if _, err := l.load("modes", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadCharacters loads characters.json
func (l *Loader) LoadCharacters() (*CharactersConfig, error) {
	var cfg CharactersConfig
	if _, err := l.load("characters", &cfg); err != nil {
		return nil, err
	}
	for i := range cfg.Characters {
		cfg.Characters[i] = cfg.Characters[i].WithDefaults()
	}
	return &cfg, nil
}

// LoadStage loads a stage file
func (l *Loader) LoadStage(name string) (*StageConfig, error) {
	var cfg StageConfig
	if _, err := l.load("stages/"+name, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load stage %s: %w", name, err)
	}
	if cfg.ID == "" {
		cfg.ID = name
	}
	return &cfg, nil
}

// LoadAll loads all base configurations (simulation, modes, characters) and validates them
func (l *Loader) LoadAll() (*Config, error) {
	sim, err := l.LoadSimulation()
	if err != nil {
		return nil, err
	}

	modes, err := l.LoadModes()
	if err != nil {
		return nil, err
	}

	chars, err := l.LoadCharacters()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Simulation: sim,
		Modes:      modes,
		Characters: chars,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
