package routes

import (
	"database/sql"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"foodfund/internal/handlers"
	"foodfund/internal/interfaces"
	"foodfund/internal/repository"
	"foodfund/internal/validation"
)

func RegisterCampaignRoutes(router chi.Router, db *sql.DB, v *validation.CampaignValidator, coverImages interfaces.CoverImageChecker, log *zap.Logger) {
	campaignRepo := repository.NewCampaignRepository(db)
	campaignHandler := handlers.NewCampaignHandler(campaignRepo, v, coverImages, log)

	router.Route("/campaigns", func(r chi.Router) {
		r.Get("/", campaignHandler.ListCampaigns)
		r.Post("/", campaignHandler.CreateCampaign)
		r.Post("/validate", campaignHandler.ValidateCampaign)
		r.Get("/summary", campaignHandler.CampaignSummary)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", campaignHandler.GetCampaign)
			r.Patch("/", campaignHandler.UpdateCampaign)
			r.Delete("/", campaignHandler.DeleteCampaign)
		})
	})
}
