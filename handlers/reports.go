// handlers/reports.go
package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"

	"plantmaint/config"
	"plantmaint/models"
)

type countRow struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

// WorkOrderSummary aggregates open work orders by status and by priority.
// The two group-bys are independent queries so they run concurrently.
func WorkOrderSummary(w http.ResponseWriter, r *http.Request) {
	var byStatus, byPriority []countRow
	var overdue int64

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		return config.DB.WithContext(ctx).Model(&models.WorkOrder{}).
			Select("status AS key, COUNT(*) AS count").
			Group("status").Scan(&byStatus).Error
	})
	g.Go(func() error {
		return config.DB.WithContext(ctx).Model(&models.WorkOrder{}).
			Select("priority AS key, COUNT(*) AS count").
			Group("priority").Scan(&byPriority).Error
	})
	g.Go(func() error {
		return config.DB.WithContext(ctx).Model(&models.WorkOrder{}).
			Where("status IN ?", []string{models.WorkOrderStatusPending, models.WorkOrderStatusInProgress}).
			Where("due_date < ?", time.Now()).
			Count(&overdue).Error
	})
	if err := g.Wait(); err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"by_status":   byStatus,
		"by_priority": byPriority,
		"overdue":     overdue,
	})
}

// LowStock lists inventory items at or below the threshold (default 10).
func LowStock(w http.ResponseWriter, r *http.Request) {
	threshold := 10
	if v := r.URL.Query().Get("threshold"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			http.Error(w, "invalid threshold", http.StatusBadRequest)
			return
		}
		threshold = n
	}

	var items []models.Inventory
	if err := config.DB.Preload("Vendor").
		Where("quantity <= ?", threshold).
		Order("quantity").Find(&items).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"threshold": threshold,
		"items":     items,
	})
}

// OverdueMaintenance lists schedules whose next_due has passed.
func OverdueMaintenance(w http.ResponseWriter, r *http.Request) {
	var schedules []models.MaintenanceSchedule
	if err := config.DB.Preload("Machine").
		Where("next_due < ?", time.Now()).
		Order("next_due").Find(&schedules).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, schedules)
}

// ExportWorkOrders streams the full work-order list as an .xlsx workbook.
func ExportWorkOrders(w http.ResponseWriter, r *http.Request) {
	var orders []models.WorkOrder
	if err := config.DB.Preload("Machine").Preload("Assignee").
		Order("created_at").Find(&orders).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "WorkOrders"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Title", "Status", "Priority", "Machine", "Assignee", "Due Date", "Completed Date", "Created At"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	fmtDate := func(t *models.JSONTime) string {
		if t == nil {
			return ""
		}
		return t.Time().Format("2006-01-02")
	}
	for i, wo := range orders {
		row := i + 2
		machine := ""
		if wo.Machine != nil {
			machine = wo.Machine.Name
		}
		assignee := ""
		if wo.Assignee != nil {
			assignee = wo.Assignee.Username
		}
		values := []interface{}{
			wo.ID.String(), wo.Title, wo.Status, wo.Priority,
			machine, assignee,
			fmtDate(wo.DueDate), fmtDate(wo.CompletedDate),
			wo.CreatedAt.Format("2006-01-02"),
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			f.SetCellValue(sheet, cell, v)
		}
	}

	filename := fmt.Sprintf("work_orders_%s.xlsx", time.Now().Format("20060102"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	if err := f.Write(w); err != nil {
		http.Error(w, "error writing workbook", http.StatusInternalServerError)
	}
}
