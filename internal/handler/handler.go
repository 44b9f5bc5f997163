package handler

import (
	"context"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
	"github.com/sysu-ecnc-dev/duty-roster/backend/internal/config"
	"github.com/sysu-ecnc-dev/duty-roster/backend/internal/domain"
)

// RosterCache 缓存按年生成的排班表，为 nil 时每次请求都重新计算
type RosterCache interface {
	Get(ctx context.Context, rosterType domain.RosterType, year int, dst any) (bool, error)
	Set(ctx context.Context, rosterType domain.RosterType, year int, v any) error
}

type Handler struct {
	validate   *validator.Validate
	config     *config.Config
	translator ut.Translator
	cache      RosterCache
	now        func() time.Time

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, cache RosterCache) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	zh := zh.New()
	uni := ut.New(zh, zh)
	trans, _ := uni.GetTranslator("zh")
	if err := zh_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:   validate,
		config:     cfg,
		translator: trans,
		cache:      cache,
		now:        time.Now,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Get("/", h.Index)
	h.Mux.Get("/years", h.GetYears)
	h.Mux.Get("/duty", h.GetDuty)

	h.Mux.Route("/international/{year}", func(r chi.Router) {
		r.Use(h.year)
		r.Get("/", h.GetInternationalRoster)
	})
	h.Mux.Route("/domestic/{year}", func(r chi.Router) {
		r.Use(h.year)
		r.Get("/", h.GetDomesticRoster)
	})
}
