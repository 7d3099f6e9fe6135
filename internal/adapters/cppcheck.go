package adapters

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ahogen/cppcheck-codequality/internal/fingerprint"
	"github.com/ahogen/cppcheck-codequality/internal/model"
	"github.com/ahogen/cppcheck-codequality/internal/parser"
)

// Separador entre id da regra e mensagem na descrição. Consumidores podem
// fazer parse desse formato, então ele é estável.
const descSeparator = ": "

// FallbackPath é o local atribuído a findings sem location no XML.
const FallbackPath = "."

// Tabela única severidade nativa cppcheck -> Code Climate. Fonte de verdade:
// severidade nova no cppcheck significa uma linha nova aqui, nada mais.
var severityMap = map[string]model.Severity{
	"error":       model.SevCritical,
	"warning":     model.SevMajor,
	"style":       model.SevMinor,
	"performance": model.SevMajor,
	"portability": model.SevMinor,
	"information": model.SevInfo,
}

// Categorias Code Climate por severidade nativa. A severidade nativa é
// anexada à lista na saída para não perder informação na conversão.
var categoryMap = map[string]string{
	"error":       "Bug Risk",
	"warning":     "Bug Risk",
	"style":       "Style",
	"performance": "Performance",
	"portability": "Compatibility",
	"information": "Style",
}

// MapSeverity classifica a severidade nativa. Valor desconhecido cai em
// "info" em vez de derrubar a conversão inteira.
func MapSeverity(native string) model.Severity {
	if s, ok := severityMap[strings.ToLower(strings.TrimSpace(native))]; ok {
		return s
	}
	return model.SevInfo
}

type Options struct {
	// BaseDirs são prefixos específicos do checkout (ex: /builds/grupo/proj)
	// removidos dos caminhos antes da normalização e do hash.
	BaseDirs []string
	// SeverityOverrides força a severidade de regras específicas (id -> nível).
	SeverityOverrides map[string]model.Severity
}

// Stats expõe o que aconteceu numa conversão sem interromper a execução.
type Stats struct {
	Findings        int    // total de <error> no XML
	Degenerate      int    // findings sem location (receberam o fallback)
	CppcheckVersion string // atributo version do elemento <cppcheck>
}

// Normalize monta um Issue por RawFinding, sempre: nenhum finding é
// descartado, então len(saída) == len(rep.Findings).
func Normalize(rep *parser.Report, opts Options) ([]model.Issue, Stats) {
	stats := Stats{
		Findings:        len(rep.Findings),
		CppcheckVersion: rep.Cppcheck.Version,
	}

	issues := make([]model.Issue, 0, len(rep.Findings))
	for _, f := range rep.Findings {
		issues = append(issues, normalizeOne(f, opts, &stats))
	}
	return issues, stats
}

func normalizeOne(f parser.RawFinding, opts Options, stats *Stats) model.Issue {
	msg := sanitizeUTF8(firstNonEmpty(f.Msg, f.Verbose))

	sev, ok := opts.SeverityOverrides[f.ID]
	if !ok {
		sev = MapSeverity(f.Severity)
	}

	native := strings.ToLower(strings.TrimSpace(f.Severity))
	category, ok := categoryMap[native]
	if !ok {
		category = "Style"
	}
	cats := []string{category}
	if native != "" {
		cats = append(cats, native)
	}

	iss := model.Issue{
		RuleID:      f.ID,
		Description: composeDescription(f.ID, msg),
		Severity:    sev,
		Categories:  cats,
		CWE:         f.CWE,
	}

	if len(f.Locations) == 0 {
		// Finding degenerado: recebe o local fallback, é sinalizado e
		// contado, nunca descartado.
		iss.Degenerate = true
		iss.Categories = append(iss.Categories, "no-location")
		iss.Location = model.Location{Path: FallbackPath, Line: 1}
		stats.Degenerate++
	} else {
		primary := f.Locations[0]
		iss.Location = model.Location{
			Path:   NormalizePath(primary.File, opts.BaseDirs),
			Line:   safeLine(primary.Line),
			Column: primary.Column,
		}
		// file0 é a unidade de tradução; quando difere do arquivo apontado,
		// vale mencionar na descrição.
		if primary.File0 != "" && primary.File0 != primary.File {
			iss.Description += fmt.Sprintf(" (translation unit: %s)", NormalizePath(primary.File0, opts.BaseDirs))
		}
		for _, loc := range f.Locations[1:] {
			iss.OtherLocations = append(iss.OtherLocations, model.Location{
				Path:   NormalizePath(loc.File, opts.BaseDirs),
				Line:   safeLine(loc.Line),
				Column: loc.Column,
			})
		}
	}

	if f.CWE != "" {
		iss.Description = fmt.Sprintf("[CWE-%s] %s", f.CWE, iss.Description)
		iss.Content = fmt.Sprintf("Refer to [CWE-%s](https://cwe.mitre.org/data/definitions/%s.html)", f.CWE, f.CWE)
	}

	// Hash sobre os campos normalizados, antes dos enfeites de descrição:
	// o prefixo CWE e a menção ao file0 não alteram a identidade do finding.
	iss.Fingerprint = fingerprint.Issue(f.ID, iss.Location.Path, iss.Location.Line, msg)

	return iss
}

func composeDescription(ruleID, msg string) string {
	if ruleID == "" {
		return msg
	}
	return ruleID + descSeparator + msg
}

// NormalizePath deixa o caminho estável entre máquinas: separador "/",
// prefixos de base dir e relativos ("./", "../") removidos. Essencial para o
// fingerprint não mudar quando só o diretório do checkout muda.
func NormalizePath(p string, baseDirs []string) string {
	p = filepath.ToSlash(strings.TrimSpace(p))
	for _, base := range baseDirs {
		base = filepath.ToSlash(strings.TrimSpace(base))
		if base == "" {
			continue
		}
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		if strings.HasPrefix(p, base) {
			p = strings.TrimPrefix(p, base)
			break
		}
	}
	for strings.HasPrefix(p, "../") {
		p = strings.TrimPrefix(p, "../")
	}
	return strings.TrimPrefix(p, "./")
}

// sanitizeUTF8 troca bytes inválidos pelo placeholder U+FFFD: conteúdo ruim
// na mensagem nunca derruba a emissão do JSON.
func sanitizeUTF8(s string) string {
	return strings.ToValidUTF8(s, "�")
}
