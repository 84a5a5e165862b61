package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plantmaint/models"
)

func TestWorkOrderSummary(t *testing.T) {
	db := setupDB(t)
	srv := newServer(t)
	_, token := newUser(t, db, models.RoleTechnician)

	mk := func(status, priority string) {
		wo := models.WorkOrder{Title: "wo", Status: status, Priority: priority}
		require.NoError(t, db.Create(&wo).Error)
	}
	mk(models.WorkOrderStatusPending, models.PriorityHigh)
	mk(models.WorkOrderStatusPending, models.PriorityLow)
	mk(models.WorkOrderStatusCompleted, models.PriorityHigh)

	var summary struct {
		ByStatus []struct {
			Key   string `json:"key"`
			Count int64  `json:"count"`
		} `json:"by_status"`
		ByPriority []struct {
			Key   string `json:"key"`
			Count int64  `json:"count"`
		} `json:"by_priority"`
		Overdue int64 `json:"overdue"`
	}
	code := doJSON(t, srv, "GET", "/api/v1/reports/work-order-summary", token, nil, &summary)
	require.Equal(t, http.StatusOK, code)

	counts := map[string]int64{}
	for _, row := range summary.ByStatus {
		counts[row.Key] = row.Count
	}
	assert.Equal(t, int64(2), counts[models.WorkOrderStatusPending])
	assert.Equal(t, int64(1), counts[models.WorkOrderStatusCompleted])

	counts = map[string]int64{}
	for _, row := range summary.ByPriority {
		counts[row.Key] = row.Count
	}
	assert.Equal(t, int64(2), counts[models.PriorityHigh])
}

func TestLowStockReport(t *testing.T) {
	db := setupDB(t)
	srv := newServer(t)
	_, token := newUser(t, db, models.RoleTechnician)

	seedInventory(t, db, 3)
	seedInventory(t, db, 10)
	seedInventory(t, db, 50)

	var report struct {
		Threshold int                `json:"threshold"`
		Items     []models.Inventory `json:"items"`
	}
	code := doJSON(t, srv, "GET", "/api/v1/reports/low-stock", token, nil, &report)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 10, report.Threshold)
	assert.Len(t, report.Items, 2)

	code = doJSON(t, srv, "GET", "/api/v1/reports/low-stock?threshold=5", token, nil, &report)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, report.Items, 1)

	code = doJSON(t, srv, "GET", "/api/v1/reports/low-stock?threshold=-2", token, nil, nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestOverdueMaintenanceReport(t *testing.T) {
	db := setupDB(t)
	srv := newServer(t)
	_, token := newUser(t, db, models.RoleTechnician)

	machine := seedMachine(t, db, nil)
	late := models.MaintenanceSchedule{
		MachineID: machine.ID, Name: "Late", FrequencyDays: 30,
		NextDue: models.JSONTime(time.Now().AddDate(0, 0, -5)),
	}
	require.NoError(t, db.Create(&late).Error)
	seedSchedule(t, db, machine.ID, 30) // due in the future

	var schedules []models.MaintenanceSchedule
	code := doJSON(t, srv, "GET", "/api/v1/reports/overdue-maintenance", token, nil, &schedules)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, schedules, 1)
	assert.Equal(t, late.ID, schedules[0].ID)
}

func TestExportWorkOrders(t *testing.T) {
	db := setupDB(t)
	srv := newServer(t)
	_, token := newUser(t, db, models.RoleTechnician)
	seedWorkOrder(t, db)

	req, err := http.NewRequest("GET", srv.URL+"/api/v1/reports/work-orders/export", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), ".xlsx")
}
