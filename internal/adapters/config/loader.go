// Package config provides the configuration loader for cull.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/cull/internal/core/domain"
	"go.trai.ch/cull/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load discovers cull.yaml from cwd upward and returns the resolved
// configuration: every pattern compiled, every enum parsed, every path
// anchored at the project root.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	configPath, err := l.findConfiguration(cwd)
	if err != nil {
		return nil, err
	}

	var cullfile Cullfile
	if err := readAndUnmarshalYAML(configPath, &cullfile); err != nil {
		return nil, err
	}

	return l.build(configPath, &cullfile)
}

// DiscoverRoot walks up from cwd and returns the directory holding the
// configuration file.
func (l *Loader) DiscoverRoot(cwd string) (string, error) {
	configPath, err := l.findConfiguration(cwd)
	if err != nil {
		return "", err
	}
	return filepath.Dir(configPath), nil
}

func (l *Loader) findConfiguration(cwd string) (string, error) {
	currentDir := cwd

	for {
		configPath := filepath.Join(currentDir, domain.CullFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

func (l *Loader) build(configPath string, cullfile *Cullfile) (*domain.Config, error) {
	root := filepath.Dir(configPath)

	strategy, err := resolveStrategy(cullfile.Strategy)
	if err != nil {
		return nil, err
	}

	mode, err := domain.ParseStubMode(cullfile.Stub)
	if err != nil {
		return nil, err
	}

	rules, err := domain.CompileRules(cullfile.Exclude)
	if err != nil {
		return nil, err
	}

	features, err := buildFeatureTable(cullfile.Features)
	if err != nil {
		return nil, err
	}

	workers := cullfile.Workers
	if workers < 0 {
		l.Logger.Warn(fmt.Sprintf("'workers: %d' has no effect, using one worker per CPU", workers))
		workers = 0
	}

	return &domain.Config{
		Root:      root,
		LockPath:  resolvePath(root, cullfile.Lock, domain.LockFileName),
		VendorDir: resolvePath(root, cullfile.Vendor, domain.VendorDirName),
		StorePath: resolvePath(root, cullfile.Store, domain.DefaultStorePath()),
		Strategy:  strategy,
		StubMode:  mode,
		Rules:     rules,
		Features:  features,
		Workers:   workers,
	}, nil
}

// resolveStrategy reduces the configured strategy list to the single
// strategy a run is allowed to have. An empty field defaults to lock
// filtering, the one strategy that keeps document and vendor tree
// consistent.
func resolveStrategy(configured StringList) (domain.Strategy, error) {
	distinct := slices.Clone(configured)
	slices.Sort(distinct)
	distinct = slices.Compact(distinct)
	switch len(distinct) {
	case 0:
		return domain.StrategyLockFilter, nil
	case 1:
		return domain.ParseStrategy(distinct[0])
	default:
		err := zerr.With(domain.ErrStrategyConflict, "strategies", fmt.Sprintf("%v", distinct))
		return "", err
	}
}

func buildFeatureTable(dtos []FeatureDTO) (domain.FeatureTable, error) {
	rows := make([]domain.FeatureRow, 0, len(dtos))
	for _, dto := range dtos {
		rule, err := domain.CompileRule(dto.Match)
		if err != nil {
			return domain.FeatureTable{}, zerr.With(err, "features_entry", dto.Match)
		}
		rows = append(rows, domain.FeatureRow{Rule: rule, Features: dto.Provide})
	}
	return domain.NewFeatureTable(rows), nil
}

// resolvePath anchors a configured path at the project root, falling back
// to the default when the field is empty. Absolute paths are kept as is.
func resolvePath(root, configured, fallback string) string {
	if configured == "" {
		configured = fallback
	}
	if filepath.IsAbs(configured) {
		return filepath.Clean(configured)
	}
	return filepath.Clean(filepath.Join(root, configured))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is validated by caller
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
