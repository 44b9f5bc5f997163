package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/sysu-ecnc-dev/duty-roster/backend/internal/domain"
	"github.com/sysu-ecnc-dev/duty-roster/backend/internal/roster"
)

const dateLayout = "2006-01-02"

type RosterPage struct {
	RosterType     domain.RosterType `json:"rosterType"`
	Year           int               `json:"year"`
	PrevYear       int               `json:"prevYear"`
	NextYear       int               `json:"nextYear"`
	Years          []int             `json:"years"`
	Today          string            `json:"today"`
	CurrentHour    int               `json:"currentHour"`
	ActiveDutyDate string            `json:"activeDutyDate,omitempty"`
	Rows           any               `json:"rows"`
}

func (h *Handler) newRosterPage(rosterType domain.RosterType, year int, now time.Time) *RosterPage {
	return &RosterPage{
		RosterType:  rosterType,
		Year:        year,
		PrevYear:    year - 1,
		NextYear:    year + 1,
		Years:       roster.YearsWindow(now.Year()),
		Today:       now.Format(dateLayout),
		CurrentHour: now.Hour(),
	}
}

// loadRoster 优先从缓存读取排班表，缓存出错时只记录日志并直接计算
func loadRoster[T any](h *Handler, r *http.Request, rosterType domain.RosterType, year int, build func(int) []T) []T {
	if h.cache == nil {
		return build(year)
	}

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Redis.OperationTimeout)*time.Second)
	defer cancel()

	var rows []T
	hit, err := h.cache.Get(ctx, rosterType, year, &rows)
	if err != nil {
		slog.Warn("读取排班表缓存失败", "type", rosterType, "year", year, "error", err)
	}
	if hit {
		return rows
	}

	rows = build(year)
	if err := h.cache.Set(ctx, rosterType, year, rows); err != nil {
		slog.Warn("写入排班表缓存失败", "type", rosterType, "year", year, "error", err)
	}
	return rows
}

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, fmt.Sprintf("/international/%d", h.now().Year()), http.StatusFound)
}

func (h *Handler) GetInternationalRoster(w http.ResponseWriter, r *http.Request) {
	year := r.Context().Value(YearCtx).(int)
	now := h.now()

	rows := loadRoster(h, r, domain.RosterInternational, year, roster.International)
	rows = roster.MarkActiveDuty(rows, now)

	page := h.newRosterPage(domain.RosterInternational, year, now)
	page.ActiveDutyDate = roster.EffectiveDutyDate(now).Format(dateLayout)
	page.Rows = rows

	h.successResponse(w, r, "获取国际排班表成功", page)
}

func (h *Handler) GetDomesticRoster(w http.ResponseWriter, r *http.Request) {
	year := r.Context().Value(YearCtx).(int)
	now := h.now()

	page := h.newRosterPage(domain.RosterDomestic, year, now)
	page.Rows = loadRoster(h, r, domain.RosterDomestic, year, roster.Domestic)

	h.successResponse(w, r, "获取国内排班表成功", page)
}

func (h *Handler) GetYears(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "获取年份列表成功", roster.YearsWindow(h.now().Year()))
}

// GetDuty 查询某一天的值班情况，不传日期时返回当前正在值班的班组
func (h *Handler) GetDuty(w http.ResponseWriter, r *http.Request) {
	req := struct {
		Date string `validate:"omitempty,datetime=2006-01-02"`
	}{Date: r.URL.Query().Get("date")}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Date == "" {
		h.successResponse(w, r, "获取当前值班成功", roster.CurrentDuty(h.now()))
		return
	}

	d, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}
	h.successResponse(w, r, "获取值班成功", roster.DutyOn(d))
}
