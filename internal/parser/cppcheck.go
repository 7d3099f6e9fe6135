package parser

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"os"
	"strings"
)

// ParseError indica XML malformado ou fora do schema do cppcheck.
// Fatal para a conversão: nenhuma saída parcial é emitida.
type ParseError struct {
	Reason  string
	Content string // trecho do conteúdo ofensivo
	Err     error
}

func (e *ParseError) Error() string {
	if e.Content != "" {
		return fmt.Sprintf("relatório cppcheck inválido: %s (conteúdo: %q)", e.Reason, e.Content)
	}
	return fmt.Sprintf("relatório cppcheck inválido: %s", e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Report espelha o XML do cppcheck:
// <results version="2"><cppcheck version="2.13"/><errors><error .../></errors></results>
type Report struct {
	XMLName  xml.Name `xml:"results"`
	Version  string   `xml:"version,attr"`
	Cppcheck struct {
		Version string `xml:"version,attr"`
	} `xml:"cppcheck"`
	Findings []RawFinding `xml:"errors>error"`
}

// RawFinding representa <error id=... severity=... msg=... verbose=... cwe=...>.
// Atributos opcionais ausentes ficam com o zero value, nunca viram erro.
type RawFinding struct {
	ID        string        `xml:"id,attr"`
	Severity  string        `xml:"severity,attr"`
	Msg       string        `xml:"msg,attr"`
	Verbose   string        `xml:"verbose,attr"`
	CWE       string        `xml:"cwe,attr"`
	Locations []RawLocation `xml:"location"`
}

// RawLocation representa <location file=... line=... column=...>.
// file0, quando presente, é a unidade de tradução que gerou o finding.
type RawLocation struct {
	File   string `xml:"file,attr"`
	File0  string `xml:"file0,attr"`
	Line   int    `xml:"line,attr"`
	Column int    `xml:"column,attr"`
	Info   string `xml:"info,attr"`
}

// Parse decodifica o XML bruto preservando a ordem do documento.
// Transformação pura: bytes de entrada -> findings, sem efeitos colaterais.
func Parse(b []byte) (*Report, error) {
	if len(strings.TrimSpace(string(b))) == 0 {
		return nil, &ParseError{Reason: "entrada vazia"}
	}

	var rep Report
	if err := xml.Unmarshal(b, &rep); err != nil {
		return nil, &ParseError{
			Reason:  "XML malformado ou elemento raiz <results> ausente",
			Content: snippet(b),
			Err:     err,
		}
	}
	return &rep, nil
}

// IsCppcheckReport inspeciona o início do arquivo para verificar se ele
// aparenta ser um relatório XML do cppcheck.
func IsCppcheckReport(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for i := 0; scanner.Scan() && i < 10; i++ {
		if strings.Contains(scanner.Text(), "<results") {
			return true
		}
	}
	return false
}

func snippet(b []byte) string {
	s := strings.TrimSpace(string(b))
	if len(s) > 80 {
		s = s[:80] + "..."
	}
	return s
}
