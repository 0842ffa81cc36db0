package httptransport

import (
	"net/http"

	"churchapp/internal/config"
	"churchapp/internal/httpx"
	"churchapp/internal/service"
	"churchapp/internal/storage/providers"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
)

func Router(db *pgxpool.Pool, cfg *config.Config) *mux.Router {
	router := mux.NewRouter()

	allProviders := providers.New(db)
	authService := service.NewAuthService(allProviders.AuthProvider, cfg.JWT.Secret)
	templateService := service.NewTemplateService(allProviders.TemplateProvider)
	letterService := service.NewLetterService(allProviders.LetterProvider, allProviders.TemplateProvider, allProviders.MemberProvider, allProviders.ChurchProvider)
	memberService := service.NewMemberService(allProviders.MemberProvider)
	churchService := service.NewChurchService(allProviders.ChurchProvider)

	authHandler := NewAuthHandlers(authService)
	templateHandler := NewTemplateHandlers(templateService)
	letterHandler := NewLetterHandlers(letterService)
	memberHandler := NewMemberHandlers(memberService)
	churchHandler := NewChurchHandlers(churchService)

	api := router.PathPrefix("/api").Subrouter()

	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh", authHandler.Refresh).Methods(http.MethodPost)
	auth.HandleFunc("/me", authHandler.Me).Methods(http.MethodGet)

	protected := api.NewRoute().Subrouter()
	protected.Use(httpx.Protected(cfg.JWT.Secret))

	protected.HandleFunc("/templates", templateHandler.ListTemplates).Methods(http.MethodGet)
	protected.HandleFunc("/templates", templateHandler.CreateTemplate).Methods(http.MethodPost)
	protected.HandleFunc("/templates/{id}", templateHandler.UpdateTemplate).Methods(http.MethodPut)
	protected.HandleFunc("/templates/{id}", templateHandler.DeleteTemplate).Methods(http.MethodDelete)

	protected.HandleFunc("/members", memberHandler.ListMembers).Methods(http.MethodGet)
	protected.HandleFunc("/members/{id}", memberHandler.GetMemberById).Methods(http.MethodGet)

	protected.HandleFunc("/church", churchHandler.GetChurch).Methods(http.MethodGet)
	protected.HandleFunc("/church", churchHandler.UpdateChurch).Methods(http.MethodPut)

	letters := protected.NewRoute().Subrouter()
	letters.Use(httpx.Account(allProviders.AuthProvider))
	letters.HandleFunc("/letters/generate", letterHandler.GenerateLetter).Methods(http.MethodPost)
	letters.HandleFunc("/letters", letterHandler.ListGeneratedLetters).Methods(http.MethodGet)

	return router
}
