package handler

import (
	"github.com/99minutos/returns-dashboard/internal/core/domain"
	"github.com/99minutos/returns-dashboard/internal/core/ports"
)

// --- Service result → HTTP response ---

func toRowResponse(r domain.Row) rowResponse {
	return rowResponse{
		TrackingNumber:         r.TrackingNumber,
		CarrierLabel:           r.CarrierLabel,
		StatusTag:              r.StatusTag,
		OrderID:                r.OrderID,
		SalesOfficeID:          r.SalesOfficeID,
		Source:                 r.Source,
		LastCheckpointTime:     r.LastCheckpointTime,
		LastCheckpointLocation: r.LastCheckpointLocation,
		UpdatedAt:              r.UpdatedAt,
	}
}

func toListResponse(res *ports.QueryResult) listRecordsResponse {
	items := make([]rowResponse, len(res.Rows))
	for i, row := range res.Rows {
		items[i] = toRowResponse(row)
	}
	return listRecordsResponse{
		Status:      string(res.Status),
		GeneratedAt: res.GeneratedAt,
		Tag:         res.Tag,
		ExportCount: res.ExportCount,
		Total:       res.Total,
		Truncated:   res.Truncated,
		Items:       items,
	}
}

func toStatusResponse(res *ports.StatusResult) statusResponse {
	return statusResponse{
		Status:       string(res.Status),
		Caption:      res.Caption,
		GeneratedAt:  res.GeneratedAt,
		Tag:          res.Tag,
		ExportCount:  res.ExportCount,
		VisibleCount: res.VisibleCount,
	}
}
