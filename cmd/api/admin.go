package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"nonprofit-cms-backend/internal/shared/export"
	"nonprofit-cms-backend/internal/shared/response"
	"nonprofit-cms-backend/pkg/container"
)

// exportStatsHandler handles GET /api/admin/export — downloads an xlsx
// workbook with per-resource statistics.
func exportStatsHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		reqCtx := ctx.Request.Context()

		stats := export.SiteStats{}
		var err error

		if stats.Content, err = c.ContentService.Stats(reqCtx); err != nil {
			response.InternalServerError(ctx, "Failed to collect content stats")
			return
		}
		if stats.Gallery, err = c.GalleryService.Stats(reqCtx); err != nil {
			response.InternalServerError(ctx, "Failed to collect gallery stats")
			return
		}
		if stats.Program, err = c.ProgramService.Stats(reqCtx); err != nil {
			response.InternalServerError(ctx, "Failed to collect program stats")
			return
		}
		if stats.Project, err = c.ProjectService.Stats(reqCtx); err != nil {
			response.InternalServerError(ctx, "Failed to collect project stats")
			return
		}
		if stats.About, err = c.AboutService.Stats(reqCtx); err != nil {
			response.InternalServerError(ctx, "Failed to collect about stats")
			return
		}

		buf, err := export.BuildStatsWorkbook(stats)
		if err != nil {
			response.InternalServerError(ctx, "Failed to build export")
			return
		}

		filename := fmt.Sprintf("site-stats-%s.xlsx", time.Now().Format("2006-01-02"))
		ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		ctx.Data(http.StatusOK,
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			buf.Bytes())
	}
}
