package handlers

import (
	"net/http"

	"transportledger/models"
	"transportledger/services"
)

type SettingsHandler struct {
	Settings *services.SettingsService
}

func (h *SettingsHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := h.Settings.GetProfile(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if p == nil {
		p = &models.ProfileData{}
	}
	writeData(w, http.StatusOK, p)
}

func (h *SettingsHandler) SaveProfile(w http.ResponseWriter, r *http.Request) {
	var p models.ProfileData
	if err := decodeBody(r, &p); err != nil {
		badRequest(w, "Invalid request payload: "+err.Error())
		return
	}
	if err := h.Settings.SaveProfile(r.Context(), &p); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, p)
}

func (h *SettingsHandler) GetBank(w http.ResponseWriter, r *http.Request) {
	b, err := h.Settings.GetBank(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if b == nil {
		b = &models.BankData{}
	}
	writeData(w, http.StatusOK, b)
}

func (h *SettingsHandler) SaveBank(w http.ResponseWriter, r *http.Request) {
	var b models.BankData
	if err := decodeBody(r, &b); err != nil {
		badRequest(w, "Invalid request payload: "+err.Error())
		return
	}
	if err := h.Settings.SaveBank(r.Context(), &b); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, b)
}

type profileImage struct {
	Image string `json:"image"`
}

func (h *SettingsHandler) GetProfileImage(w http.ResponseWriter, r *http.Request) {
	img, err := h.Settings.GetProfileImage(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, profileImage{Image: img})
}

func (h *SettingsHandler) SaveProfileImage(w http.ResponseWriter, r *http.Request) {
	var body profileImage
	if err := decodeBody(r, &body); err != nil {
		badRequest(w, "Invalid request payload: "+err.Error())
		return
	}
	if err := h.Settings.SaveProfileImage(r.Context(), body.Image); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, "Profile image saved")
}
