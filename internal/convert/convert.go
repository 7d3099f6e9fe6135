// Package convert amarra o pipeline: leitura do XML, classificação,
// fingerprint, normalização e emissão do JSON. É a operação única que
// camadas de CLI/CI embrulham.
package convert

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ahogen/cppcheck-codequality/internal/adapters"
	"github.com/ahogen/cppcheck-codequality/internal/codeclimate"
	"github.com/ahogen/cppcheck-codequality/internal/parser"
)

// Bytes converte um relatório XML do cppcheck em um documento code quality
// JSON. Determinístico: entrada idêntica, saída idêntica, byte a byte.
// Em caso de ParseError nenhum byte de saída é produzido.
func Bytes(xmlIn []byte, opts adapters.Options) ([]byte, adapters.Stats, error) {
	rep, err := parser.Parse(xmlIn)
	if err != nil {
		return nil, adapters.Stats{}, err
	}

	issues, stats := adapters.Normalize(rep, opts)

	out, err := codeclimate.Marshal(issues)
	if err != nil {
		return nil, stats, err
	}
	return out, stats, nil
}

// File lê o XML de inPath e grava o JSON em outPath. A escrita só acontece
// depois do documento completo estar montado em memória: ou o arquivo de
// saída é válido, ou não existe.
func File(inPath, outPath string, opts adapters.Options) (adapters.Stats, error) {
	xmlIn, err := os.ReadFile(inPath)
	if err != nil {
		return adapters.Stats{}, fmt.Errorf("ler relatório %s: %w", inPath, err)
	}

	out, stats, err := Bytes(xmlIn, opts)
	if err != nil {
		return stats, err
	}

	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return stats, fmt.Errorf("criar dir de saída: %w", err)
		}
	}
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return stats, fmt.Errorf("escrever %s: %w", outPath, err)
	}
	return stats, nil
}
