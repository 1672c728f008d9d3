package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/gamefest/gamefest-api/internal/httputil"
	"github.com/gamefest/gamefest-api/internal/middleware"
	"github.com/gamefest/gamefest-api/internal/service"
	"github.com/gamefest/gamefest-api/internal/store"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

func newRouter(database *sqlx.DB, sessionManager *scs.SessionManager) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(sessionManager.LoadAndSave)

	participantStore := store.NewParticipantStore(database)

	registrations := service.NewRegistrationService(database, participantStore)
	stats := service.NewStatsService(participantStore)
	tournaments := service.NewTournamentService(store.NewTournamentStore(database))
	admins := service.NewAdminService(store.NewAdminStore(database))

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", func(w http.ResponseWriter, req *http.Request) {
			var input service.RegisterInput
			if err := json.NewDecoder(req.Body).Decode(&input); err != nil {
				httputil.BadRequest(w, "invalid JSON body", err)
				return
			}
			participant, err := registrations.Register(req.Context(), input)
			if err != nil {
				respondServiceError(w, "Failed to register participant", err)
				return
			}
			httputil.JSON(w, http.StatusCreated, map[string]any{
				"id":      participant.ID,
				"message": "registration confirmed",
			})
		})

		r.Get("/participants", func(w http.ResponseWriter, req *http.Request) {
			participants, err := registrations.ListActive(req.Context())
			if err != nil {
				httputil.InternalServerError(w, "Failed to list participants", err)
				return
			}
			httputil.JSON(w, http.StatusOK, participants)
		})

		r.Get("/stats", func(w http.ResponseWriter, req *http.Request) {
			result, err := stats.PublicStats(req.Context())
			if err != nil {
				httputil.InternalServerError(w, "Failed to compute stats", err)
				return
			}
			httputil.JSON(w, http.StatusOK, result)
		})

		r.Get("/tournaments", func(w http.ResponseWriter, req *http.Request) {
			result, err := tournaments.List(req.Context())
			if err != nil {
				httputil.InternalServerError(w, "Failed to list tournaments", err)
				return
			}
			httputil.JSON(w, http.StatusOK, result)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", func(w http.ResponseWriter, req *http.Request) {
				var creds struct {
					Username string `json:"username"`
					Password string `json:"password"`
				}
				if err := json.NewDecoder(req.Body).Decode(&creds); err != nil {
					httputil.Unauthorized(w, service.ErrInvalidCredentials.Error())
					return
				}
				admin, err := admins.Login(req.Context(), creds.Username, creds.Password)
				if err != nil {
					respondServiceError(w, "Failed to log in", err)
					return
				}
				if err := middleware.SignIn(req.Context(), sessionManager, admin); err != nil {
					httputil.InternalServerError(w, "Failed to establish session", err)
					return
				}
				httputil.JSON(w, http.StatusOK, map[string]any{
					"message": "logged in",
					"admin":   map[string]any{"id": admin.ID, "username": admin.Username},
				})
			})

			r.Get("/me", func(w http.ResponseWriter, req *http.Request) {
				id, username, ok := middleware.AdminIdentity(req.Context(), sessionManager)
				if !ok {
					httputil.JSON(w, http.StatusOK, map[string]any{"authenticated": false})
					return
				}
				httputil.JSON(w, http.StatusOK, map[string]any{
					"authenticated": true,
					"admin":         map[string]any{"id": id, "username": username},
				})
			})

			// Logout destroys whatever session is present, so it stays
			// idempotent instead of failing the guard on a second call.
			r.Post("/logout", func(w http.ResponseWriter, req *http.Request) {
				if err := middleware.SignOut(req.Context(), sessionManager); err != nil {
					httputil.InternalServerError(w, "Failed to destroy session", err)
					return
				}
				httputil.JSON(w, http.StatusOK, map[string]any{"message": "logged out"})
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin(sessionManager))

				r.Get("/participants", func(w http.ResponseWriter, req *http.Request) {
					participants, err := registrations.ListAll(req.Context())
					if err != nil {
						httputil.InternalServerError(w, "Failed to list participants", err)
						return
					}
					httputil.JSON(w, http.StatusOK, participants)
				})

				r.Delete("/participants/{id}", func(w http.ResponseWriter, req *http.Request) {
					id, err := uuid.Parse(chi.URLParam(req, "id"))
					if err != nil {
						httputil.BadRequest(w, "invalid participant id", err)
						return
					}
					if err := registrations.Delete(req.Context(), id); err != nil {
						httputil.InternalServerError(w, "Failed to delete participant", err)
						return
					}
					httputil.JSON(w, http.StatusOK, map[string]any{"message": "participant deleted"})
				})

				r.Patch("/participants/{id}", func(w http.ResponseWriter, req *http.Request) {
					id, err := uuid.Parse(chi.URLParam(req, "id"))
					if err != nil {
						httputil.BadRequest(w, "invalid participant id", err)
						return
					}
					var input service.UpdateParticipantInput
					if err := json.NewDecoder(req.Body).Decode(&input); err != nil {
						httputil.BadRequest(w, "invalid JSON body", err)
						return
					}
					if err := registrations.Update(req.Context(), id, input); err != nil {
						respondServiceError(w, "Failed to update participant", err)
						return
					}
					httputil.JSON(w, http.StatusOK, map[string]any{"message": "participant updated"})
				})

				r.Get("/dashboard", func(w http.ResponseWriter, req *http.Request) {
					result, err := stats.Dashboard(req.Context())
					if err != nil {
						httputil.InternalServerError(w, "Failed to compute dashboard", err)
						return
					}
					httputil.JSON(w, http.StatusOK, result)
				})

				r.Post("/tournaments", func(w http.ResponseWriter, req *http.Request) {
					var input service.TournamentInput
					if err := json.NewDecoder(req.Body).Decode(&input); err != nil {
						httputil.BadRequest(w, "invalid JSON body", err)
						return
					}
					tournament, err := tournaments.Create(req.Context(), input)
					if err != nil {
						respondServiceError(w, "Failed to create tournament", err)
						return
					}
					httputil.JSON(w, http.StatusCreated, tournament)
				})

				r.Delete("/tournaments/{id}", func(w http.ResponseWriter, req *http.Request) {
					id, err := uuid.Parse(chi.URLParam(req, "id"))
					if err != nil {
						httputil.BadRequest(w, "invalid tournament id", err)
						return
					}
					if err := tournaments.Delete(req.Context(), id); err != nil {
						httputil.InternalServerError(w, "Failed to delete tournament", err)
						return
					}
					httputil.JSON(w, http.StatusOK, map[string]any{"message": "tournament deleted"})
				})

				r.Patch("/tournaments/{id}", func(w http.ResponseWriter, req *http.Request) {
					id, err := uuid.Parse(chi.URLParam(req, "id"))
					if err != nil {
						httputil.BadRequest(w, "invalid tournament id", err)
						return
					}
					var input struct {
						Status string `json:"status"`
					}
					if err := json.NewDecoder(req.Body).Decode(&input); err != nil {
						httputil.BadRequest(w, "invalid JSON body", err)
						return
					}
					if err := tournaments.UpdateStatus(req.Context(), id, input.Status); err != nil {
						respondServiceError(w, "Failed to update tournament", err)
						return
					}
					httputil.JSON(w, http.StatusOK, map[string]any{"message": "tournament updated"})
				})

				r.Get("/export/csv", func(w http.ResponseWriter, req *http.Request) {
					var buf bytes.Buffer
					if err := registrations.ExportCSV(req.Context(), &buf); err != nil {
						httputil.InternalServerError(w, "Failed to export participants", err)
						return
					}
					w.Header().Set("Content-Type", "text/csv; charset=utf-8")
					w.Header().Set("Content-Disposition", `attachment; filename="participants.csv"`)
					w.Write(buf.Bytes())
				})

				r.Post("/change-password", func(w http.ResponseWriter, req *http.Request) {
					var input struct {
						CurrentPassword string `json:"currentPassword"`
						NewPassword     string `json:"newPassword"`
					}
					if err := json.NewDecoder(req.Body).Decode(&input); err != nil {
						httputil.BadRequest(w, "invalid JSON body", err)
						return
					}
					adminID, _, _ := middleware.AdminIdentity(req.Context(), sessionManager)
					if err := admins.ChangePassword(req.Context(), adminID, input.CurrentPassword, input.NewPassword); err != nil {
						respondServiceError(w, "Failed to change password", err)
						return
					}
					httputil.JSON(w, http.StatusOK, map[string]any{"message": "password updated"})
				})
			})
		})
	})

	return r
}

// respondServiceError maps service errors onto the JSON error surface:
// validation 400, bad credentials 401, duplicate registration 409,
// everything else 500.
func respondServiceError(w http.ResponseWriter, msg string, err error) {
	var validation service.ValidationError
	switch {
	case errors.As(err, &validation):
		httputil.BadRequest(w, validation.Error(), nil)
	case errors.Is(err, service.ErrInvalidCredentials):
		httputil.Unauthorized(w, err.Error())
	case errors.Is(err, service.ErrDuplicateRegistration):
		httputil.Conflict(w, err.Error())
	default:
		httputil.InternalServerError(w, msg, err)
	}
}
