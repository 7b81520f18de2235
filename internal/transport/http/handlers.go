package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"gymtrack/internal/domain"
	"gymtrack/internal/dto"
	"gymtrack/internal/observability/metrics"
)

// lastSetsCount is fixed by the deployed route, not caller-tunable.
const lastSetsCount = 3

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		badRequest(w, "bad form")
		return
	}
	creds := domain.Credentials{
		UserName: r.PostFormValue("user_name"),
		Password: r.PostFormValue("password"),
	}

	identity, err := h.auth.Authenticate(r.Context(), creds.UserName, creds.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		writeError(w, err)
		return
	}
	token, err := h.sessions.Login(identity)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		writeError(w, err)
		return
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, dto.LoginResponse{Name: identity.Name})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		h.sessions.Logout(cookie.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "bad request")
		return
	}
	user, err := h.auth.Register(r.Context(), req.Name, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.CreateUserResponse{ID: user.ID.Hex(), Name: user.Name})
}

func (h *Handler) getUserSessions(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	user, err := h.users.GetByName(r.Context(), name)
	if err != nil {
		writeError(w, err)
		return
	}
	sessions := user.GymSessions
	if sessions == nil {
		sessions = []domain.GymSession{}
	}
	writeJSON(w, http.StatusOK, sessions)
}

func (h *Handler) addUserSession(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	var session domain.GymSession
	if err := json.NewDecoder(r.Body).Decode(&session); err != nil {
		badRequest(w, "bad request")
		return
	}
	if err := session.Validate(); err != nil {
		badRequest(w, err.Error())
		return
	}
	if err := h.users.AppendSession(r.Context(), name, session); err != nil {
		metrics.WorkoutAppendsTotal.WithLabelValues("failure").Inc()
		writeError(w, err)
		return
	}
	metrics.WorkoutAppendsTotal.WithLabelValues("success").Inc()
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	identity := identityFromContext(r.Context())
	if identity == nil || identity.Name != name {
		writeJSON(w, http.StatusForbidden, errorBody{Error: "forbidden"})
		return
	}
	var req dto.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "bad request")
		return
	}
	if err := h.auth.ChangePassword(r.Context(), name, req.OldPassword, req.NewPassword); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) lastThreeSets(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	exercise := chi.URLParam(r, "exercise")
	sets, err := h.users.LastSets(r.Context(), name, exercise, lastSetsCount)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sets)
}

func (h *Handler) listExercises(w http.ResponseWriter, r *http.Request) {
	exercises, err := h.exercises.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, exercises)
}

func (h *Handler) addExercise(w http.ResponseWriter, r *http.Request) {
	var ex domain.Exercise
	if err := json.NewDecoder(r.Body).Decode(&ex); err != nil {
		badRequest(w, "bad request")
		return
	}
	if err := ex.Validate(); err != nil {
		badRequest(w, err.Error())
		return
	}
	if err := h.exercises.Add(r.Context(), ex); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ex)
}
