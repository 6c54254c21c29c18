package shared

import "fmt"

// DomainError is the base error type for all domain errors
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

// Economy errors

type InsufficientFundsError struct {
	*DomainError
	Required  float64
	Available float64
}

func NewInsufficientFundsError(required, available float64) *InsufficientFundsError {
	return &InsufficientFundsError{
		DomainError: NewDomainError(fmt.Sprintf("insufficient funds: need %.0f, have %.0f", required, available)),
		Required:    required,
		Available:   available,
	}
}

type InsufficientStockError struct {
	*DomainError
	Resource  ResourceType
	Required  int
	Available int
}

func NewInsufficientStockError(resource ResourceType, required, available int) *InsufficientStockError {
	return &InsufficientStockError{
		DomainError: NewDomainError(fmt.Sprintf("insufficient %s: need %d, have %d", resource, required, available)),
		Resource:    resource,
		Required:    required,
		Available:   available,
	}
}

// Lookup errors

type UnknownIDError struct {
	*DomainError
	Kind string
	ID   string
}

func NewUnknownIDError(kind, id string) *UnknownIDError {
	return &UnknownIDError{
		DomainError: NewDomainError(fmt.Sprintf("unknown %s: %s", kind, id)),
		Kind:        kind,
		ID:          id,
	}
}

// Workshop errors

type InvalidMachineMatchError struct {
	*DomainError
	SlotIndex int
	RecipeID  string
	Automated bool
}

func NewInvalidMachineMatchError(slotIndex int, recipeID, installed, required string, automated bool) *InvalidMachineMatchError {
	return &InvalidMachineMatchError{
		DomainError: NewDomainError(fmt.Sprintf("slot %d has %s installed, recipe %s needs %s", slotIndex, installed, recipeID, required)),
		SlotIndex:   slotIndex,
		RecipeID:    recipeID,
		Automated:   automated,
	}
}

// PreconditionError reports an operation that is not allowed in the current state
// (already unlocked, wrong discovery phase, ship not operational, ...)
type PreconditionError struct {
	*DomainError
}

func NewPreconditionError(format string, args ...interface{}) *PreconditionError {
	return &PreconditionError{DomainError: NewDomainError(fmt.Sprintf(format, args...))}
}

// Validation error

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Research errors

type InsufficientResearchPointsError struct {
	*DomainError
	Required  float64
	Available float64
}

func NewInsufficientResearchPointsError(required, available float64) *InsufficientResearchPointsError {
	return &InsufficientResearchPointsError{
		DomainError: NewDomainError(fmt.Sprintf("insufficient research points: need %.0f, have %.0f", required, available)),
		Required:    required,
		Available:   available,
	}
}
