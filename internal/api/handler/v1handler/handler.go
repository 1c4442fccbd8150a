// Package v1handler implements the v1 API and the dashboard page.
package v1handler

import (
	"context"
	"net/http"
	"popdash/internal/api/specs/v1specs"
	"popdash/internal/app"
	"popdash/internal/archive"
	"popdash/internal/dashboard"
	"popdash/pkg/logger"
	"popdash/pkg/serrors"

	"go.uber.org/zap"
)

// Deps are the services behind the handlers.
type Deps struct {
	// State is the snapshot served by the dashboard and the read endpoints.
	State *app.State
	// Archive is nil when the archive is disabled.
	Archive archive.Archive
}

type Handler struct {
	deps Deps
}

// Ensure Handler implements v1specs.Handler.
var _ v1specs.Handler = (*Handler)(nil)

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Dashboard serves the HTML page in the theme named by the theme query
// parameter. Theme names are matched case-insensitively.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	theme, err := h.deps.State.Dashboard.Resolve(r.URL.Query().Get("theme"))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.deps.State.Dashboard.WritePage(w, theme); err != nil {
		logger.Warn(r.Context(), "could not write dashboard page", zap.Error(err))
	}
}

func (h *Handler) GetCharts(ctx context.Context, params v1specs.GetChartsParams) (*v1specs.Charts, error) {
	theme := h.deps.State.Dashboard.DefaultTheme()
	if t, ok := params.Theme.Get(); ok {
		theme = dashboard.Theme(t)
	}

	m, ok := h.deps.State.Dashboard.Model(theme)
	if !ok {
		return nil, serrors.With(serrors.ErrNotFound, "theme %q is not rendered", theme)
	}

	return DashboardModelToV1Specs(m), nil
}

func (h *Handler) GetSnapshot(ctx context.Context) (*v1specs.Snapshot, error) {
	return DomainSnapshotToV1Specs(h.deps.State.Snapshot), nil
}

func (h *Handler) GetView(ctx context.Context, params v1specs.GetViewParams) (v1specs.View, error) {
	views := h.deps.State.Views
	switch params.Name {
	case v1specs.ViewNameTopPopulation:
		return DomainRecordsToV1Specs(views.TopByPopulation), nil
	case v1specs.ViewNameMigration:
		return DomainMigrationToV1Specs(views.Migration), nil
	case v1specs.ViewNameWorldShare:
		return DomainRecordsToV1Specs(views.TopByWorldShare), nil
	case v1specs.ViewNameUrban:
		return DomainRecordsToV1Specs(views.TopByUrbanPct), nil
	default:
		return nil, serrors.With(serrors.ErrNotFound, "unknown view %q", params.Name)
	}
}

func (h *Handler) GetSummary(ctx context.Context) (v1specs.Summary, error) {
	return DomainMetricsToV1Specs(h.deps.State.Summary), nil
}
