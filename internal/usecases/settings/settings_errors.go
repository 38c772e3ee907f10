package settings

import "errors"

var (
	// Erros de validação
	ErrInvalidGoal  = errors.New("valor de meta inválido")
	ErrNegativeGoal = errors.New("meta não pode ser negativa")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)
