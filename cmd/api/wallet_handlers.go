package main

import (
	"net/http"

	"payamigo/internal/helpers"
	"payamigo/internal/model"

	"github.com/shopspring/decimal"
)

type walletRequest struct {
	Name     string          `json:"name"`
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency"`
	UserID   int64           `json:"user_id"`
}

// toModel converts the request, leaving the currency unset when the wire
// value is not a supported code so the service reports it as missing.
func (req *walletRequest) toModel() *model.Wallet {
	currency, _ := model.ParseCurrency(req.Currency)
	return &model.Wallet{
		Name:     req.Name,
		Balance:  req.Balance,
		Currency: currency,
		UserID:   req.UserID,
	}
}

// createWallet handles POST /wallets
func (app *application) createWallet(w http.ResponseWriter, r *http.Request) {
	var req walletRequest
	if err := readJSON(r, &req); err != nil {
		helpers.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	wallet, err := app.wallets.Create(r.Context(), req.toModel())
	if err != nil {
		app.writeServiceError(w, err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, wallet)
}

// listWallets handles GET /wallets
func (app *application) listWallets(w http.ResponseWriter, r *http.Request) {
	wallets, err := app.wallets.GetAll(r.Context())
	if err != nil {
		app.writeServiceError(w, err)
		return
	}
	if wallets == nil {
		wallets = []model.Wallet{}
	}
	helpers.WriteJSON(w, http.StatusOK, wallets)
}

// getWallet handles GET /wallets/{id}
func (app *application) getWallet(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.ParseID(r)
	if err != nil {
		helpers.WriteError(w, http.StatusBadRequest, "invalid wallet id")
		return
	}

	wallet, err := app.wallets.GetByID(r.Context(), id)
	if err != nil {
		app.writeServiceError(w, err)
		return
	}
	if wallet == nil {
		helpers.WriteError(w, http.StatusNotFound, "wallet not found")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, wallet)
}

// updateWallet handles PUT /wallets/{id}
func (app *application) updateWallet(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.ParseID(r)
	if err != nil {
		helpers.WriteError(w, http.StatusBadRequest, "invalid wallet id")
		return
	}

	var req walletRequest
	if err := readJSON(r, &req); err != nil {
		helpers.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	wallet, err := app.wallets.Update(r.Context(), id, req.toModel())
	if err != nil {
		app.writeServiceError(w, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, wallet)
}

// deleteWallet handles DELETE /wallets/{id}
func (app *application) deleteWallet(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.ParseID(r)
	if err != nil {
		helpers.WriteError(w, http.StatusBadRequest, "invalid wallet id")
		return
	}

	if err := app.wallets.Delete(r.Context(), id); err != nil {
		app.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
