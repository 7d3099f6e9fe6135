package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ahogen/cppcheck-codequality/internal/model"
)

// DefaultFile é procurado no diretório corrente quando --config não é passado.
const DefaultFile = ".cppcheck-codequality.yaml"

// Config é o arquivo YAML opcional da ferramenta. Flags de linha de comando
// têm precedência sobre o que vier daqui.
type Config struct {
	// BaseDirs lista prefixos de checkout a remover dos caminhos
	// (ex: /builds/grupo/projeto).
	BaseDirs []string `yaml:"base_dirs"`
	// SeverityOverrides força a severidade de regras específicas,
	// id da regra -> nível Code Climate.
	SeverityOverrides map[string]string `yaml:"severity_overrides"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ler config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config %s inválida: %w", path, err)
	}

	for rule, sev := range cfg.SeverityOverrides {
		if !model.Severity(sev).Valid() {
			return nil, fmt.Errorf("config %s: severidade %q da regra %q não existe (use info, minor, major, critical ou blocker)", path, sev, rule)
		}
	}
	return &cfg, nil
}

// Overrides converte o mapa do YAML para o tipo do pipeline.
func (c *Config) Overrides() map[string]model.Severity {
	if len(c.SeverityOverrides) == 0 {
		return nil
	}
	out := make(map[string]model.Severity, len(c.SeverityOverrides))
	for rule, sev := range c.SeverityOverrides {
		out[rule] = model.Severity(sev)
	}
	return out
}
