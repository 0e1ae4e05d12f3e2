package main

import (
	"net/http"

	"payamigo/internal/helpers"
	"payamigo/internal/model"
)

type userRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (req *userRequest) toModel() *model.User {
	return &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}
}

// createUser handles POST /users
func (app *application) createUser(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := readJSON(r, &req); err != nil {
		helpers.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := app.users.Create(r.Context(), req.toModel())
	if err != nil {
		app.writeServiceError(w, err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, user)
}

// listUsers handles GET /users
func (app *application) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := app.users.GetAll(r.Context())
	if err != nil {
		app.writeServiceError(w, err)
		return
	}
	if users == nil {
		users = []model.User{}
	}
	helpers.WriteJSON(w, http.StatusOK, users)
}

// getUser handles GET /users/{id}
func (app *application) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.ParseID(r)
	if err != nil {
		helpers.WriteError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	user, err := app.users.GetByID(r.Context(), id)
	if err != nil {
		app.writeServiceError(w, err)
		return
	}
	if user == nil {
		helpers.WriteError(w, http.StatusNotFound, "user not found")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, user)
}

// updateUser handles PUT /users/{id}
func (app *application) updateUser(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.ParseID(r)
	if err != nil {
		helpers.WriteError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req userRequest
	if err := readJSON(r, &req); err != nil {
		helpers.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := app.users.Update(r.Context(), id, req.toModel())
	if err != nil {
		app.writeServiceError(w, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, user)
}

// deleteUser handles DELETE /users/{id}
func (app *application) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.ParseID(r)
	if err != nil {
		helpers.WriteError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	if err := app.users.Delete(r.Context(), id); err != nil {
		app.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
