package sale

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyItems       = errors.New("a venda deve conter ao menos um item")
	ErrEmptyReturn      = errors.New("não há produtos para devolver")
	ErrInvalidQuantity  = errors.New("quantidade deve ser maior que zero")
	ErrInvalidUnitPrice = errors.New("preço unitário não pode ser negativo")
	ErrSaleNotFound     = errors.New("venda não encontrada")
)

// ProductNotFoundError indica que um item referencia um produto inexistente,
// inativo ou pertencente a outro negócio.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("produto não encontrado ou inativo: %s", e.ProductID)
}

// InsufficientStockError indica que a quantidade solicitada excede o estoque
// disponível do produto no momento da venda.
type InsufficientStockError struct {
	ProductName string
	Available   int
	Requested   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("estoque insuficiente para %q: disponível %d, solicitado %d",
		e.ProductName, e.Available, e.Requested)
}

// IsDomainConflict informa se o erro pertence ao conjunto de conflitos de domínio
// que devem ser reportados ao cliente com a mensagem original (equivalentes a 4xx).
func IsDomainConflict(err error) bool {
	var pnf *ProductNotFoundError
	var ins *InsufficientStockError

	return errors.As(err, &pnf) ||
		errors.As(err, &ins) ||
		errors.Is(err, ErrEmptyItems) ||
		errors.Is(err, ErrEmptyReturn) ||
		errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrInvalidUnitPrice)
}
