package main

import "net/http"

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", app.healthCheck)

	mux.HandleFunc("POST /users", app.createUser)
	mux.HandleFunc("GET /users", app.listUsers)
	mux.HandleFunc("GET /users/{id}", app.getUser)
	mux.HandleFunc("PUT /users/{id}", app.updateUser)
	mux.HandleFunc("DELETE /users/{id}", app.deleteUser)

	mux.HandleFunc("POST /wallets", app.createWallet)
	mux.HandleFunc("GET /wallets", app.listWallets)
	mux.HandleFunc("GET /wallets/{id}", app.getWallet)
	mux.HandleFunc("PUT /wallets/{id}", app.updateWallet)
	mux.HandleFunc("DELETE /wallets/{id}", app.deleteWallet)

	mux.HandleFunc("POST /transactions", app.createTransaction)
	mux.HandleFunc("GET /transactions", app.listTransactions)
	mux.HandleFunc("GET /transactions/{id}", app.getTransaction)
	mux.HandleFunc("PUT /transactions/{id}", app.updateTransaction)
	mux.HandleFunc("DELETE /transactions/{id}", app.deleteTransaction)

	return app.logRequest(mux)
}
