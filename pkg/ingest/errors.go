package ingest

import (
	"errors"
	"fmt"
	"strings"
)

// Input-format errors abort the whole batch before any session is created.
// Per-field problems (bad date, missing optional column) never surface here;
// they degrade to absent values during row parsing.
var (
	ErrUnsupportedFormat = errors.New("formato de arquivo não suportado: envie um arquivo .csv ou .json")
	ErrUndecodableUpload = errors.New("erro de decodificação: o arquivo não é um texto UTF-8 válido")
	ErrEmptyUpload       = errors.New("arquivo vazio ou malformado")

	ErrMissingTextField = fmt.Errorf(
		"o arquivo precisa ter uma coluna para o feedback. Nenhuma das colunas esperadas foi encontrada: %s",
		strings.Join(TextFieldNames, ", "),
	)
)

// IsInputError reports whether err belongs to the batch-level input taxonomy,
// so controllers can map it to a 400 response.
func IsInputError(err error) bool {
	return errors.Is(err, ErrUnsupportedFormat) ||
		errors.Is(err, ErrUndecodableUpload) ||
		errors.Is(err, ErrEmptyUpload) ||
		errors.Is(err, ErrMissingTextField)
}
