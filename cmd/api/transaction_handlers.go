package main

import (
	"net/http"
	"time"

	"payamigo/internal/helpers"
	"payamigo/internal/model"

	"github.com/shopspring/decimal"
)

type transactionRequest struct {
	Amount              decimal.Decimal `json:"amount"`
	CommissionPercent   decimal.Decimal `json:"commission_percent"`
	CommissionAmount    decimal.Decimal `json:"commission_amount"`
	Currency            string          `json:"currency"`
	CreatedAt           time.Time       `json:"created_at"`
	SourceWalletID      int64           `json:"source_wallet_id"`
	DestinationWalletID int64           `json:"destination_wallet_id"`
}

// toTransaction resolves the referenced wallets and builds the transaction. An
// unknown or zero wallet id leaves the wallet nil; the validator reports it
// as missing rather than the handler failing the lookup.
func (app *application) toTransaction(r *http.Request, req *transactionRequest) (*model.Transaction, error) {
	var source, destination *model.Wallet
	var err error
	if req.SourceWalletID != 0 {
		source, err = app.wallets.GetByID(r.Context(), req.SourceWalletID)
		if err != nil {
			return nil, err
		}
	}
	if req.DestinationWalletID != 0 {
		destination, err = app.wallets.GetByID(r.Context(), req.DestinationWalletID)
		if err != nil {
			return nil, err
		}
	}

	currency, _ := model.ParseCurrency(req.Currency)
	return &model.Transaction{
		Amount:            req.Amount,
		CommissionPercent: req.CommissionPercent,
		CommissionAmount:  req.CommissionAmount,
		Currency:          currency,
		CreatedAt:         req.CreatedAt,
		SourceWallet:      source,
		DestinationWallet: destination,
	}, nil
}

// createTransaction handles POST /transactions
func (app *application) createTransaction(w http.ResponseWriter, r *http.Request) {
	var req transactionRequest
	if err := readJSON(r, &req); err != nil {
		helpers.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	transaction, err := app.toTransaction(r, &req)
	if err != nil {
		app.writeServiceError(w, err)
		return
	}

	created, err := app.transactions.Create(r.Context(), transaction)
	if err != nil {
		app.writeServiceError(w, err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, created)
}

// listTransactions handles GET /transactions
func (app *application) listTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := app.transactions.GetAll(r.Context())
	if err != nil {
		app.writeServiceError(w, err)
		return
	}
	if transactions == nil {
		transactions = []model.Transaction{}
	}
	helpers.WriteJSON(w, http.StatusOK, transactions)
}

// getTransaction handles GET /transactions/{id}
func (app *application) getTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.ParseID(r)
	if err != nil {
		helpers.WriteError(w, http.StatusBadRequest, "invalid transaction id")
		return
	}

	transaction, err := app.transactions.GetByID(r.Context(), id)
	if err != nil {
		app.writeServiceError(w, err)
		return
	}
	if transaction == nil {
		helpers.WriteError(w, http.StatusNotFound, "transaction not found")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, transaction)
}

// updateTransaction handles PUT /transactions/{id}
func (app *application) updateTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.ParseID(r)
	if err != nil {
		helpers.WriteError(w, http.StatusBadRequest, "invalid transaction id")
		return
	}

	var req transactionRequest
	if err := readJSON(r, &req); err != nil {
		helpers.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	transaction, err := app.toTransaction(r, &req)
	if err != nil {
		app.writeServiceError(w, err)
		return
	}

	updated, err := app.transactions.Update(r.Context(), id, transaction)
	if err != nil {
		app.writeServiceError(w, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, updated)
}

// deleteTransaction handles DELETE /transactions/{id}
func (app *application) deleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.ParseID(r)
	if err != nil {
		helpers.WriteError(w, http.StatusBadRequest, "invalid transaction id")
		return
	}

	if err := app.transactions.Delete(r.Context(), id); err != nil {
		app.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
