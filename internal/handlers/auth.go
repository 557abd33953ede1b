package handlers

import (
	"net/http"

	"github.com/vaughan-dsouza/bistro/internal/utils"
)

type AuthHandler struct {
	base
	svc Accounts
}

type signUpReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// -------------- SIGN UP ----------------------

func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}

	res, err := h.svc.Signup(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	utils.JSON(w, http.StatusCreated, res)
}

// -------------- LOGIN ------------------------

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}

	res, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	utils.JSON(w, http.StatusOK, res)
}
