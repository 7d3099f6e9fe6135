// Package fingerprint deriva o identificador estável que o GitLab usa para
// reconhecer o mesmo issue entre execuções. A string de entrada é
// "regra|caminho|linha|mensagem" com "|" escapado dentro dos campos; mudar
// esse formato invalida todos os fingerprints já armazenados, então qualquer
// alteração exige um bump de versão explícito da ferramenta.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// Issue calcula o hash do finding a partir dos campos já normalizados.
// Mesma entrada, mesmo hash, sempre: o caminho deve chegar aqui sem prefixos
// específicos do checkout (ver adapters.NormalizePath).
func Issue(ruleID, path string, line int, message string) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%s|%d|%s", escape(ruleID), escape(path), line, escape(message))
	return hex.EncodeToString(h.Sum(nil))
}

// escape impede que um "|" dentro de um campo colida com o separador.
func escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, "|", `\|`)
}
