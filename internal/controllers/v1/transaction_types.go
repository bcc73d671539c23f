package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/pennyflow/backend/internal/models"
)

// TransactionEditable represents all user configurable parameters of a
// transaction.
type TransactionEditable struct {
	Type        models.TransactionType `json:"type" binding:"required" example:"expense" enums:"income,expense"`
	Amount      Amount                 `json:"amount" example:"14.50"`
	Date        Date                   `json:"date" example:"2024-01-15" swaggertype:"string"` // Defaults to today
	Category    string                 `json:"category" example:"Food"`                        // Required for expenses, must be empty for income
	Description string                 `json:"description" example:"Lunch at the corner deli"`
	AccountID   *uuid.UUID             `json:"account_id" example:"d090a0ee-52ce-41b7-a234-8401b108a16c"`
	ImportID    string                 `json:"import_id" example:"simplefin:TX-90134"` // External ID used for duplicate detection
}

func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		Type:        editable.Type,
		Amount:      editable.Amount.Decimal,
		Date:        editable.Date.Time,
		Category:    editable.Category,
		Description: editable.Description,
		AccountID:   editable.AccountID,
		ImportID:    editable.ImportID,
	}
}

// TransactionUpdate is the only mutation allowed on a recorded
// transaction: reassigning its category.
type TransactionUpdate struct {
	Category string `json:"category" binding:"required" example:"Food"`
}

// Transaction is a recorded income or expense as it is returned by the
// API.
type Transaction struct {
	ID          uuid.UUID              `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Type        models.TransactionType `json:"type" example:"expense"`
	Amount      Amount                 `json:"amount" example:"14.50"`
	Date        Date                   `json:"date" example:"2024-01-15" swaggertype:"string"`
	Category    string                 `json:"category,omitempty" example:"Food"`
	Description string                 `json:"description,omitempty" example:"Lunch at the corner deli"`
	AccountID   *uuid.UUID             `json:"account_id,omitempty" example:"d090a0ee-52ce-41b7-a234-8401b108a16c"`
	CreatedAt   time.Time              `json:"created_at" example:"2024-01-15T14:43:27.89977Z"`
}

func newTransaction(t models.Transaction) Transaction {
	return Transaction{
		ID:          t.ID,
		Type:        t.Type,
		Amount:      newAmount(t.Amount),
		Date:        newDate(t.Date),
		Category:    t.Category,
		Description: t.Description,
		AccountID:   t.AccountID,
		CreatedAt:   t.CreatedAt,
	}
}

type TransactionResponse struct {
	Data  Transaction `json:"data"`  // The transaction data
	Error *string     `json:"error"` // The error, if any occurred
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`       // List of transactions
	Error      *string       `json:"error"`      // The error, if any occurred
	Pagination *Pagination   `json:"pagination"` // Pagination information
}

// TransactionQueryFilter contains the filters for transaction listing.
type TransactionQueryFilter struct {
	Type      models.TransactionType `form:"type" example:"expense"`
	Category  string                 `form:"category" example:"Food"`
	AccountID string                 `form:"account" example:"d090a0ee-52ce-41b7-a234-8401b108a16c"`
	Start     time.Time              `form:"start" time_format:"2006-01-02" time_utc:"1"`
	End       time.Time              `form:"end" time_format:"2006-01-02" time_utc:"1"`
	Offset    uint                   `form:"offset" example:"50"`
	Limit     int                    `form:"limit,default=50" example:"25"`
}
