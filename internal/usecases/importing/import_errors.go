package importing

import (
	"errors"
	"fmt"
)

// Erros de validação do lançamento. Todos são detectados antes de qualquer
// escrita no banco.
var (
	ErrEntryDateRequired    = errors.New("data do lançamento é obrigatória")
	ErrAgentNameRequired    = errors.New("nome do agente é obrigatório")
	ErrCategoryNameRequired = errors.New("nome da categoria é obrigatório")
	ErrInvalidEntryDate     = errors.New("data do lançamento inválida, use o formato AAAA-MM-DD")
	ErrInvalidQuotes        = errors.New("quantidade de cotações inválida")
	ErrInvalidSales         = errors.New("quantidade de vendas inválida")
	ErrInvalidPremium       = errors.New("valor de prêmio inválido")

	// ErrDatabaseOperation indica falha na transação de importação
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// ValidationError é um erro de validação com o campo que o causou
type ValidationError struct {
	Err   error  // Erro base
	Field string // Campo da submissão envolvido
}

// Error implementa a interface error
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: campo %s", e.Err.Error(), e.Field)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ValidationError) Unwrap() error {
	return e.Err
}

func newValidationError(err error, field string) *ValidationError {
	return &ValidationError{Err: err, Field: field}
}

// IsValidationError verifica se o erro veio da validação da submissão, e não
// de uma falha de armazenamento
func IsValidationError(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}
