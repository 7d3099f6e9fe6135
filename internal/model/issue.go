package model

// Severity é a escala fixa do Code Climate exigida pelo GitLab.
type Severity string

const (
	SevInfo     Severity = "info"
	SevMinor    Severity = "minor"
	SevMajor    Severity = "major"
	SevCritical Severity = "critical"
	SevBlocker  Severity = "blocker"
)

// Valid informa se s é um dos cinco níveis aceitos pelo schema.
func (s Severity) Valid() bool {
	switch s {
	case SevInfo, SevMinor, SevMajor, SevCritical, SevBlocker:
		return true
	}
	return false
}

// Location aponta para um trecho do código analisado. Imutável após a leitura.
type Location struct {
	Path   string // caminho normalizado (separador "/")
	Line   int    // 1-based
	Column int    // 0 = desconhecida
}

type Issue struct {
	RuleID         string     // id do check no cppcheck (ex: "nullPointer")
	Description    string     // "regra: mensagem", separador estável
	Severity       Severity   // severidade normalizada
	Categories     []string   // categorias Code Climate + severidade nativa
	Fingerprint    string     // hex estável, identifica o issue entre execuções
	Location       Location   // local primário
	OtherLocations []Location // locais secundários, nunca viram issues próprios
	CWE            string     // id numérico, se reportado (ex: "476")
	Content        string     // markdown extra (link CWE)
	Degenerate     bool       // finding veio sem location no XML
}
